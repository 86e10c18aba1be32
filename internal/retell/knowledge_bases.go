package retell

import (
	"context"
	"encoding/json"
	"strconv"
)

// KnowledgeBaseText is an inline text document.
type KnowledgeBaseText struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// KnowledgeBaseSources groups documents to upload. Files are paths inside
// the client's upload directory.
type KnowledgeBaseSources struct {
	Texts []KnowledgeBaseText
	URLs  []string
	Files []string
}

// Empty reports whether no source is set.
func (s KnowledgeBaseSources) Empty() bool {
	return len(s.Texts) == 0 && len(s.URLs) == 0 && len(s.Files) == 0
}

func (s KnowledgeBaseSources) addTo(f *Form) *Form {
	if len(s.Texts) > 0 {
		f.JSONField("knowledge_base_texts", s.Texts)
	}
	if len(s.URLs) > 0 {
		f.JSONField("knowledge_base_urls", s.URLs)
	}
	for _, path := range s.Files {
		f.File("knowledge_base_files", path)
	}
	return f
}

// CreateKnowledgeBaseRequest names a new knowledge base and its initial sources.
type CreateKnowledgeBaseRequest struct {
	Name              string
	EnableAutoRefresh *bool
	Sources           KnowledgeBaseSources
}

func (c *Client) ListKnowledgeBases(ctx context.Context) (json.RawMessage, error) {
	return c.Do(ctx, RouteListKnowledgeBases.Endpoint())
}

// CreateKnowledgeBase uploads the request as multipart/form-data.
func (c *Client) CreateKnowledgeBase(ctx context.Context, req CreateKnowledgeBaseRequest) (json.RawMessage, error) {
	form := NewForm().Within(c.uploadDir).Field("knowledge_base_name", req.Name)
	if req.EnableAutoRefresh != nil {
		form.Field("enable_auto_refresh", strconv.FormatBool(*req.EnableAutoRefresh))
	}
	req.Sources.addTo(form)
	return c.Do(ctx, RouteCreateKnowledgeBase.Endpoint().WithBody(form))
}

func (c *Client) GetKnowledgeBase(ctx context.Context, kbID string) (json.RawMessage, error) {
	return c.Do(ctx, RouteGetKnowledgeBase.Endpoint(kbID))
}

func (c *Client) DeleteKnowledgeBase(ctx context.Context, kbID string) error {
	_, err := c.Do(ctx, RouteDeleteKnowledgeBase.Endpoint(kbID))
	return err
}

// AddKnowledgeBaseSources uploads sources into an existing knowledge base.
func (c *Client) AddKnowledgeBaseSources(ctx context.Context, kbID string, sources KnowledgeBaseSources) (json.RawMessage, error) {
	return c.Do(ctx, RouteAddKnowledgeBaseSources.Endpoint(kbID).WithBody(sources.addTo(NewForm().Within(c.uploadDir))))
}
