package retell

import (
	"net/url"
	"strings"
)

// Route is a verb and a path template such as /get-agent/{agentId}.
type Route struct {
	Method string
	Path   string
}

// Params returns the placeholder names in template order.
func (r Route) Params() []string {
	var names []string
	rest := r.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return names
		}
		names = append(names, rest[open+1:open+end])
		rest = rest[open+end+1:]
	}
}

// Endpoint substitutes ids into the placeholders in order. Each id is path
// escaped. Missing ids leave their placeholder empty.
func (r Route) Endpoint(ids ...string) Endpoint {
	var b strings.Builder
	rest := r.Path
	i := 0
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		if i < len(ids) {
			b.WriteString(url.PathEscape(ids[i]))
		}
		i++
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return Endpoint{Method: r.Method, Path: b.String()}
}

// Endpoint is one concrete request: verb, resolved path, query and body.
type Endpoint struct {
	Method string
	Path   string
	Query  url.Values
	Body   Body
}

// WithQuery returns a copy of e carrying q.
func (e Endpoint) WithQuery(q url.Values) Endpoint {
	e.Query = q
	return e
}

// WithBody returns a copy of e carrying b.
func (e Endpoint) WithBody(b Body) Endpoint {
	e.Body = b
	return e
}

// WithJSON returns a copy of e carrying v encoded as JSON.
func (e Endpoint) WithJSON(v any) Endpoint {
	e.Body = JSON(v)
	return e
}

func (e Endpoint) target() string {
	if len(e.Query) == 0 {
		return e.Path
	}
	return e.Path + "?" + e.Query.Encode()
}
