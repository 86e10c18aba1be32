// Package schema declares tool input contracts and validates raw tool
// arguments against them.
//
// A contract is a list of Params. Compile renders the list as a JSON Schema
// document, which is both advertised to MCP clients and used to validate
// incoming arguments.
package schema

// Type is the JSON type of a parameter.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
	TypeRecord  Type = "record"
	TypeAny     Type = "any"
)

// Location is where a parameter travels in the outbound request.
type Location string

const (
	InBody  Location = "body"
	InPath  Location = "path"
	InQuery Location = "query"
)

// Param declares one input field.
type Param struct {
	Name        string
	Type        Type
	Description string
	Required    bool
	Nullable    bool
	Location    Location // defaults to body
	Wire        string   // outbound field name when it differs from Name
	Enum        []any
	Default     any
	Items       *Param  // array elements, record values
	Properties  []Param // object fields
	MinItems    int
	MaxItems    int
	Variants    *Variants
}

// Variants declares a tagged union: the Tag field selects exactly one Case.
type Variants struct {
	Tag   string
	Cases []Variant
}

// Variant lists the fields allowed when the tag equals Value.
type Variant struct {
	Value  string
	Fields []Param
}

// String declares a string parameter.
func String(name, description string) Param {
	return Param{Name: name, Type: TypeString, Description: description}
}

// Number declares a numeric parameter.
func Number(name, description string) Param {
	return Param{Name: name, Type: TypeNumber, Description: description}
}

// Integer declares an integer parameter.
func Integer(name, description string) Param {
	return Param{Name: name, Type: TypeInteger, Description: description}
}

// Bool declares a boolean parameter.
func Bool(name, description string) Param {
	return Param{Name: name, Type: TypeBoolean, Description: description}
}

// Any declares a parameter accepting any JSON value.
func Any(name, description string) Param {
	return Param{Name: name, Type: TypeAny, Description: description}
}

// Array declares an array parameter with the given element declaration.
func Array(name, description string, items Param) Param {
	return Param{Name: name, Type: TypeArray, Description: description, Items: &items}
}

// Object declares an object parameter with fixed properties.
func Object(name, description string, properties ...Param) Param {
	return Param{Name: name, Type: TypeObject, Description: description, Properties: properties}
}

// Record declares a string-keyed map whose values match values.
func Record(name, description string, values Param) Param {
	return Param{Name: name, Type: TypeRecord, Description: description, Items: &values}
}

// Tagged declares an object whose shape is selected by the tag field.
func Tagged(name, description, tag string, cases ...Variant) Param {
	return Param{Name: name, Type: TypeObject, Description: description,
		Variants: &Variants{Tag: tag, Cases: cases}}
}

// Case declares one variant of a tagged object.
func Case(value string, fields ...Param) Variant {
	return Variant{Value: value, Fields: fields}
}

// Require marks the parameter as required.
func (p Param) Require() Param {
	p.Required = true
	return p
}

// OrNull accepts an explicit null, which is forwarded to clear the field.
func (p Param) OrNull() Param {
	p.Nullable = true
	return p
}

// At sets the request location.
func (p Param) At(loc Location) Param {
	p.Location = loc
	return p
}

// WireAs sets the outbound field name.
func (p Param) WireAs(name string) Param {
	p.Wire = name
	return p
}

// OneOf restricts the parameter to the given values.
func (p Param) OneOf(values ...any) Param {
	p.Enum = values
	return p
}

// WithDefault sets the value applied when the argument is absent.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	return p
}

// Bounds sets array length limits. Zero means unbounded.
func (p Param) Bounds(min, max int) Param {
	p.MinItems = min
	p.MaxItems = max
	return p
}

func (p Param) location() Location {
	if p.Location == "" {
		return InBody
	}
	return p.Location
}

func (p Param) wireName() string {
	if p.Wire == "" {
		return p.Name
	}
	return p.Wire
}

// fields returns the declared fields for an object value, resolving variants
// by the tag found in v.
func (p Param) fields(v map[string]any) ([]Param, bool) {
	if p.Variants == nil {
		return p.Properties, false
	}
	tag, _ := v[p.Variants.Tag].(string)
	for _, c := range p.Variants.Cases {
		if c.Value == tag {
			out := make([]Param, 0, len(p.Properties)+len(c.Fields)+1)
			out = append(out, String(p.Variants.Tag, "").Require())
			out = append(out, p.Properties...)
			return append(out, c.Fields...), true
		}
	}
	return p.Properties, true
}
