// Package tools holds the operation catalog and routes tool invocations
// through validation, the platform client and response normalization.
package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

// Effect classifies what an operation does to remote state.
type Effect string

const (
	EffectRead   Effect = "read"
	EffectCreate Effect = "create"
	EffectUpdate Effect = "update"
	EffectDelete Effect = "delete"
)

// HandlerFunc executes an operation with validated arguments.
type HandlerFunc func(ctx context.Context, args schema.Args) (any, error)

// Operation is one tool: its contract, side effect and handler.
type Operation struct {
	Name        string
	Description string
	Effect      Effect
	Params      []schema.Param
	Handler     HandlerFunc

	// DeleteMessage is the confirmation returned by delete operations.
	// {param} placeholders are replaced with argument values.
	DeleteMessage string
}

// Doer executes a resolved platform request.
type Doer interface {
	Do(ctx context.Context, ep retell.Endpoint) (json.RawMessage, error)
}

// Passthrough returns a handler that fills route placeholders from the
// arguments of the same name and forwards query and body arguments as-is.
func Passthrough(d Doer, route retell.Route) HandlerFunc {
	names := route.Params()
	return func(ctx context.Context, args schema.Args) (any, error) {
		ids := make([]string, len(names))
		for i, name := range names {
			ids[i] = args.String(name)
		}

		ep := route.Endpoint(ids...)
		if q := args.Query(); len(q) > 0 {
			ep = ep.WithQuery(q)
		}
		if body := args.Body(); len(body) > 0 {
			ep = ep.WithJSON(body)
		}

		raw, err := d.Do(ctx, ep)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}
}

// expand replaces {name} placeholders in template with argument values.
func expand(template string, args schema.Args) string {
	var b strings.Builder
	rest := template
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
		b.WriteString(args.String(rest[open+1 : open+end]))
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return b.String()
}
