package tools

import (
	"context"
	"fmt"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

func source() schema.Param {
	return schema.Tagged("", "", "type",
		schema.Case("url", schema.String("url", "Page to crawl").Require()),
		schema.Case("text",
			schema.String("content", "Text content").Require(),
			schema.String("title", "Title of the text document"),
		),
		schema.Case("file", schema.String("file_path", "Path of the file to upload, inside the server's configured upload directory").Require()),
	)
}

type sourceArg struct {
	Type     string `json:"type"`
	URL      string `json:"url"`
	Content  string `json:"content"`
	Title    string `json:"title"`
	FilePath string `json:"file_path"`
}

func decodeSources(args schema.Args) (retell.KnowledgeBaseSources, error) {
	var in struct {
		Sources []sourceArg `json:"sources"`
	}
	if err := args.Decode(&in); err != nil {
		return retell.KnowledgeBaseSources{}, err
	}

	var out retell.KnowledgeBaseSources
	for i, s := range in.Sources {
		switch s.Type {
		case "url":
			out.URLs = append(out.URLs, s.URL)
		case "text":
			title := s.Title
			if title == "" {
				title = fmt.Sprintf("text-%d", i+1)
			}
			out.Texts = append(out.Texts, retell.KnowledgeBaseText{Title: title, Text: s.Content})
		case "file":
			out.Files = append(out.Files, s.FilePath)
		}
	}
	return out, nil
}

func knowledgeBaseOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "list_knowledge_bases",
			Description: "Lists all knowledge bases",
			Effect:      EffectRead,
			Params:      []schema.Param{},
			Handler: func(ctx context.Context, _ schema.Args) (any, error) {
				return c.ListKnowledgeBases(ctx)
			},
		},
		{
			Name:        "create_knowledge_base",
			Description: "Creates a new knowledge base. Pricing: $0.005/min per call + $8/month per KB (10 free/workspace)",
			Effect:      EffectCreate,
			Params: []schema.Param{
				schema.String("name", "Name of the knowledge base").Require(),
				schema.Bool("enableAutoRefresh", "Re-crawl URL sources periodically"),
				schema.Array("sources", "Initial sources", source()),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				sources, err := decodeSources(args)
				if err != nil {
					return nil, err
				}
				req := retell.CreateKnowledgeBaseRequest{Name: args.String("name"), Sources: sources}
				if args.Has("enableAutoRefresh") {
					refresh := args.Get("enableAutoRefresh") == true
					req.EnableAutoRefresh = &refresh
				}
				return c.CreateKnowledgeBase(ctx, req)
			},
		},
		{
			Name:        "get_knowledge_base",
			Description: "Gets a knowledge base by ID",
			Effect:      EffectRead,
			Params:      []schema.Param{id("knowledgeBaseId", "The ID of the knowledge base to retrieve")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetKnowledgeBase(ctx, args.String("knowledgeBaseId"))
			},
		},
		{
			Name:          "delete_knowledge_base",
			Description:   "Deletes a knowledge base",
			Effect:        EffectDelete,
			Params:        []schema.Param{id("knowledgeBaseId", "The ID of the knowledge base to delete")},
			DeleteMessage: "Knowledge base {knowledgeBaseId} deleted successfully",
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return nil, c.DeleteKnowledgeBase(ctx, args.String("knowledgeBaseId"))
			},
		},
		{
			Name:        "add_knowledge_base_sources",
			Description: "Adds sources (URLs, files, text) to a knowledge base",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("knowledgeBaseId", "The ID of the knowledge base"),
				schema.Array("sources", "Array of sources to add to the knowledge base", source()).Bounds(1, 0).Require(),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				sources, err := decodeSources(args)
				if err != nil {
					return nil, err
				}
				return c.AddKnowledgeBaseSources(ctx, args.String("knowledgeBaseId"), sources)
			},
		},
		{
			Name:        "delete_knowledge_base_source",
			Description: "Deletes a specific source from a knowledge base",
			Effect:      EffectDelete,
			Params: []schema.Param{
				id("knowledgeBaseId", "The ID of the knowledge base"),
				id("sourceId", "The ID of the source to delete"),
			},
			DeleteMessage: "Source {sourceId} deleted from KB {knowledgeBaseId}",
			Handler:       Passthrough(c, retell.RouteDeleteKnowledgeBaseSource),
		},
	}
}
