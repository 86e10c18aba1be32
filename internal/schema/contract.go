package schema

import (
	"bytes"
	"encoding/json"
	"slices"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

const schemaBaseURL = "https://retell-mcp.local/tools/"

var printer = message.NewPrinter(language.English)

// Contract is a compiled input contract for one tool.
type Contract struct {
	name     string
	params   []Param
	raw      json.RawMessage
	compiled *jsonschema.Schema
}

// Compile checks the parameter declarations and compiles their JSON Schema.
func Compile(name string, params []Param) (*Contract, error) {
	if err := checkParams(params); err != nil {
		return nil, errors.Wrapf(err, "contract %s", name)
	}

	raw, err := json.Marshal(render(params))
	if err != nil {
		return nil, errors.Wrapf(err, "render schema for %s", name)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "load schema for %s", name)
	}

	url := schemaBaseURL + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, errors.Wrapf(err, "add schema for %s", name)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "compile schema for %s", name)
	}

	return &Contract{name: name, params: params, raw: raw, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(name string, params []Param) *Contract {
	c, err := Compile(name, params)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the tool name the contract was compiled for.
func (c *Contract) Name() string { return c.name }

// Params returns the declared parameters.
func (c *Contract) Params() []Param { return c.params }

// InputSchema returns the rendered JSON Schema document.
func (c *Contract) InputSchema() json.RawMessage { return c.raw }

// Validate checks raw arguments against the contract. On failure it returns a
// *toolerr.ValidationError listing every offending field. On success the
// returned Args carry defaults and omit undeclared keys.
func (c *Contract) Validate(raw map[string]any) (Args, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	// Round-trip so numbers arrive as json.Number whatever the caller decoded.
	b, err := json.Marshal(raw)
	if err != nil {
		return Args{}, toolerr.Validation(c.name, toolerr.FieldError{Message: "arguments are not valid JSON: " + err.Error()})
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return Args{}, toolerr.Validation(c.name, toolerr.FieldError{Message: "arguments are not valid JSON: " + err.Error()})
	}

	if err := c.compiled.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return Args{}, toolerr.Validation(c.name, fieldErrors(ve)...)
		}
		return Args{}, errors.Wrapf(err, "validate %s", c.name)
	}

	obj, _ := inst.(map[string]any)
	return Args{values: normalizeObject(c.params, obj), params: c.params}, nil
}

func checkParams(params []Param) error {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if p.Name == "" {
			return errors.New("parameter without a name")
		}
		if seen[p.Name] {
			return errors.Newf("duplicate parameter %q", p.Name)
		}
		seen[p.Name] = true

		if p.location() == InPath && (p.Type != TypeString || !p.Required) {
			return errors.Newf("path parameter %q must be a required string", p.Name)
		}
		if (p.Type == TypeArray || p.Type == TypeRecord) && p.Items == nil {
			return errors.Newf("parameter %q has no element declaration", p.Name)
		}
		if err := checkParams(p.Properties); err != nil {
			return errors.Wrapf(err, "in %s", p.Name)
		}
		if p.Items != nil && p.Items.Type == TypeObject {
			if err := checkNested(*p.Items); err != nil {
				return errors.Wrapf(err, "in %s", p.Name)
			}
		}
		if p.Variants != nil {
			if err := checkNested(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkNested(p Param) error {
	if err := checkParams(p.Properties); err != nil {
		return err
	}
	if p.Variants == nil {
		return nil
	}
	if p.Variants.Tag == "" || len(p.Variants.Cases) == 0 {
		return errors.Newf("tagged parameter %q needs a tag and at least one case", p.Name)
	}
	values := make(map[string]bool, len(p.Variants.Cases))
	for _, c := range p.Variants.Cases {
		if values[c.Value] {
			return errors.Newf("tagged parameter %q repeats case %q", p.Name, c.Value)
		}
		values[c.Value] = true
		if err := checkParams(c.Fields); err != nil {
			return errors.Wrapf(err, "in %s case %s", p.Name, c.Value)
		}
	}
	return nil
}

// fieldErrors flattens a validation error tree into one entry per leaf.
func fieldErrors(ve *jsonschema.ValidationError) []toolerr.FieldError {
	var out []toolerr.FieldError
	seen := make(map[toolerr.FieldError]bool)

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}
			return
		}
		for _, fe := range leafErrors(e) {
			if !seen[fe] {
				seen[fe] = true
				out = append(out, fe)
			}
		}
	}
	walk(ve)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func leafErrors(e *jsonschema.ValidationError) []toolerr.FieldError {
	switch k := e.ErrorKind.(type) {
	case *kind.Required:
		out := make([]toolerr.FieldError, 0, len(k.Missing))
		for _, name := range k.Missing {
			out = append(out, toolerr.FieldError{
				Field:   fieldPath(append(slices.Clone(e.InstanceLocation), name)),
				Message: "required field is missing",
			})
		}
		return out
	case *kind.AdditionalProperties:
		out := make([]toolerr.FieldError, 0, len(k.Properties))
		for _, name := range k.Properties {
			out = append(out, toolerr.FieldError{
				Field:   fieldPath(append(slices.Clone(e.InstanceLocation), name)),
				Message: "field is not allowed here",
			})
		}
		return out
	}
	return []toolerr.FieldError{{
		Field:   fieldPath(e.InstanceLocation),
		Message: e.ErrorKind.LocalizedString(printer),
	}}
}

// fieldPath renders instance tokens as general_tools[0].transfer_destination.
func fieldPath(tokens []string) string {
	var b strings.Builder
	for _, t := range tokens {
		if isIndex(t) {
			b.WriteString("[" + t + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(t)
	}
	return b.String()
}

func isIndex(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
