package schema

import (
	"maps"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Args are validated, normalized tool arguments keyed by parameter name.
type Args struct {
	values map[string]any
	params []Param
}

// Has reports whether the argument was supplied or defaulted.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Get returns the raw argument value.
func (a Args) Get(name string) any {
	return a.values[name]
}

// String returns the argument coerced to a string.
func (a Args) String(name string) string {
	return cast.ToString(a.values[name])
}

// Values returns a copy of all arguments.
func (a Args) Values() map[string]any {
	return maps.Clone(a.values)
}

// Query returns the query-located arguments under their wire names.
func (a Args) Query() url.Values {
	q := url.Values{}
	for _, p := range a.params {
		if p.location() != InQuery {
			continue
		}
		if v, ok := a.values[p.Name]; ok && v != nil {
			q.Set(p.wireName(), cast.ToString(v))
		}
	}
	return q
}

// Body returns the body-located arguments under their wire names.
func (a Args) Body() map[string]any {
	body := make(map[string]any, len(a.values))
	for _, p := range a.params {
		if p.location() != InBody {
			continue
		}
		if v, ok := a.values[p.Name]; ok {
			body[p.wireName()] = v
		}
	}
	return body
}

// Decode copies the body arguments into v, matching json struct tags.
func (a Args) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  v,
	})
	if err != nil {
		return errors.Wrap(err, "create decoder")
	}
	if err := dec.Decode(a.Body()); err != nil {
		return errors.Wrap(err, "decode arguments")
	}
	return nil
}

// normalizeObject keeps declared fields, applies defaults and recurses into
// nested objects, arrays and records. An explicit null survives only for
// nullable and untyped fields.
func normalizeObject(params []Param, in map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for _, p := range params {
		v, ok := in[p.Name]
		switch {
		case ok && v != nil:
			out[p.Name] = normalizeValue(p, v)
		case ok && (p.Nullable || p.Type == TypeAny):
			out[p.Name] = nil
		case p.Default != nil:
			out[p.Name] = p.Default
		}
	}
	return out
}

func normalizeValue(p Param, v any) any {
	switch p.Type {
	case TypeObject:
		m, ok := v.(map[string]any)
		if !ok {
			return v
		}
		fields, _ := p.fields(m)
		return normalizeObject(fields, m)
	case TypeArray:
		items, ok := v.([]any)
		if !ok || p.Items == nil {
			return v
		}
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = normalizeValue(*p.Items, item)
		}
		return out
	case TypeRecord:
		m, ok := v.(map[string]any)
		if !ok || p.Items == nil {
			return v
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = normalizeValue(*p.Items, item)
		}
		return out
	}
	return v
}
