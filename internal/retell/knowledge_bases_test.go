package retell

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

func TestCreateKnowledgeBase_Multipart(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "faq.md")
	require.NoError(t, os.WriteFile(doc, []byte("# Opening hours"), 0644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create-knowledge-base", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Support", r.FormValue("knowledge_base_name"))
		assert.Equal(t, "true", r.FormValue("enable_auto_refresh"))
		assert.JSONEq(t, `[{"title":"Policy","text":"No refunds"}]`, r.FormValue("knowledge_base_texts"))
		assert.JSONEq(t, `["https://example.com/faq"]`, r.FormValue("knowledge_base_urls"))

		files := r.MultipartForm.File["knowledge_base_files"]
		require.Len(t, files, 1)
		assert.Equal(t, "faq.md", files[0].Filename)
		f, err := files[0].Open()
		require.NoError(t, err)
		defer f.Close()
		content, _ := io.ReadAll(f)
		assert.Equal(t, "# Opening hours", string(content))

		w.Write([]byte(`{"knowledge_base_id":"kb_1","knowledge_base_name":"Support","status":"in_progress"}`))
	}, WithUploadDir(dir))

	refresh := true
	kb, err := client.CreateKnowledgeBase(context.Background(), CreateKnowledgeBaseRequest{
		Name:              "Support",
		EnableAutoRefresh: &refresh,
		Sources: KnowledgeBaseSources{
			Texts: []KnowledgeBaseText{{Title: "Policy", Text: "No refunds"}},
			URLs:  []string{"https://example.com/faq"},
			Files: []string{doc},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "kb_1", gjson.GetBytes(kb, "knowledge_base_id").String())
	assert.Equal(t, "in_progress", gjson.GetBytes(kb, "status").String())
}

func TestAddKnowledgeBaseSources_MissingFile(t *testing.T) {
	dir := t.TempDir()
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, WithUploadDir(dir))

	_, err := client.AddKnowledgeBaseSources(context.Background(), "kb_1", KnowledgeBaseSources{
		Files: []string{filepath.Join(dir, "absent.pdf")},
	})
	require.Error(t, err)
	assert.NotEqual(t, toolerr.KindValidation, toolerr.KindOf(err))
	assert.False(t, called, "request must not be sent when a file cannot be read")
}

func TestAddKnowledgeBaseSources_RelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "menu.txt"), []byte("soup"), 0644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["knowledge_base_files"]
		require.Len(t, files, 1)
		assert.Equal(t, "menu.txt", files[0].Filename)
		w.Write([]byte(`{"knowledge_base_id":"kb_1"}`))
	}, WithUploadDir(dir))

	_, err := client.AddKnowledgeBaseSources(context.Background(), "kb_1", KnowledgeBaseSources{
		Files: []string{"docs/menu.txt"},
	})
	require.NoError(t, err)
}

func TestAddKnowledgeBaseSources_FileOutsideUploadDir(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("token"), 0600))

	uploads := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(uploads, "link.txt")))

	tests := []struct {
		name string
		opts []Option
		path string
	}{
		{name: "absolute path outside", opts: []Option{WithUploadDir(uploads)}, path: outside},
		{name: "relative traversal", opts: []Option{WithUploadDir(uploads)}, path: "../" + filepath.Base(filepath.Dir(outside)) + "/secret.txt"},
		{name: "symlink escaping", opts: []Option{WithUploadDir(uploads)}, path: "link.txt"},
		{name: "no upload directory", path: outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				called = true
			}, tt.opts...)

			_, err := client.AddKnowledgeBaseSources(context.Background(), "kb_1", KnowledgeBaseSources{
				Files: []string{tt.path},
			})
			require.Error(t, err)
			assert.Equal(t, toolerr.KindValidation, toolerr.KindOf(err))
			assert.False(t, called)
		})
	}
}

func TestListKnowledgeBases(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`[{"knowledge_base_id":"kb_1","knowledge_base_name":"A","status":"complete",
			"knowledge_base_sources":[{"type":"url","source_id":"s1","url":"https://example.com"}]}]`))
	})

	kbs, err := client.ListKnowledgeBases(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.GetBytes(kbs, "#").Int())
	assert.Equal(t, "s1", gjson.GetBytes(kbs, "0.knowledge_base_sources.0.source_id").String())
}
