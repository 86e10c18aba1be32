package tools

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/flow"
	"github.com/bobmcallan/retell-mcp/internal/retell"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

type reply struct {
	status int
	body   string
}

// fakePlatform answers platform routes from a fixed table and records every
// request it receives.
type fakePlatform struct {
	mu       sync.Mutex
	replies  map[string]reply
	requests []recordedRequest
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{replies: make(map[string]reply)}
}

func (p *fakePlatform) on(method, path string, status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies[method+" "+path] = reply{status: status, body: body}
}

func (p *fakePlatform) recorded() []recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]recordedRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

func (p *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	p.requests = append(p.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
	rep, ok := p.replies[r.Method+" "+r.URL.Path]
	p.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"route not stubbed"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	w.Write([]byte(rep.body))
}

// newTestRegistry builds the full catalog against a fake platform.
func newTestRegistry(t *testing.T, platform *fakePlatform, metrics *Metrics) *Registry {
	t.Helper()
	srv := httptest.NewServer(platform)
	t.Cleanup(srv.Close)

	client := retell.NewClient(srv.URL, "key_test", 5*time.Second, common.NewSilentLogger())
	patcher := flow.NewPatcher(client, common.NewSilentLogger())

	r, err := NewRegistry(common.NewSilentLogger(), metrics, Catalog(client, patcher, "retell-mcp")...)
	require.NoError(t, err)
	return r
}
