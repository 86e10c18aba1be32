package schema

// render builds the JSON Schema document for a top-level parameter list.
func render(params []Param) map[string]any {
	return objectSchema(params)
}

func objectSchema(props []Param) map[string]any {
	properties := make(map[string]any, len(props))
	required := make([]string, 0, len(props))
	for _, p := range props {
		properties[p.Name] = p.schema()
		if p.Required {
			required = append(required, p.Name)
		}
	}
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func (p Param) schema() map[string]any {
	var s map[string]any
	switch p.Type {
	case TypeArray:
		s = map[string]any{"type": "array"}
		if p.Items != nil {
			s["items"] = p.Items.schema()
		}
		if p.MinItems > 0 {
			s["minItems"] = p.MinItems
		}
		if p.MaxItems > 0 {
			s["maxItems"] = p.MaxItems
		}
	case TypeObject:
		if p.Variants != nil {
			s = p.variantSchema()
		} else {
			s = objectSchema(p.Properties)
		}
	case TypeRecord:
		s = map[string]any{"type": "object"}
		if p.Items != nil {
			s["additionalProperties"] = p.Items.schema()
		}
	case TypeAny:
		s = map[string]any{}
	default:
		s = map[string]any{"type": string(p.Type)}
	}
	if p.Description != "" {
		s["description"] = p.Description
	}
	if len(p.Enum) > 0 {
		s["enum"] = p.Enum
	}
	if p.Default != nil {
		s["default"] = p.Default
	}
	if t, ok := s["type"].(string); ok && p.Nullable {
		s["type"] = []any{t, "null"}
		if enum, ok := s["enum"].([]any); ok {
			s["enum"] = append(append([]any{}, enum...), nil)
		}
	}
	return s
}

// variantSchema renders a tagged union as one if/then branch per case. Each
// branch closes the object so fields of other cases are rejected.
func (p Param) variantSchema() map[string]any {
	tag := p.Variants.Tag
	values := make([]any, 0, len(p.Variants.Cases))
	branches := make([]any, 0, len(p.Variants.Cases))

	for _, c := range p.Variants.Cases {
		values = append(values, c.Value)

		fields, _ := p.fields(map[string]any{tag: c.Value})
		then := objectSchema(fields)
		then["properties"].(map[string]any)[tag] = map[string]any{"const": c.Value}
		then["additionalProperties"] = false

		branches = append(branches, map[string]any{
			"if": map[string]any{
				"properties": map[string]any{tag: map[string]any{"const": c.Value}},
				"required":   []string{tag},
			},
			"then": then,
		})
	}

	s := objectSchema(p.Properties)
	s["properties"].(map[string]any)[tag] = map[string]any{"type": "string", "enum": values}
	required, _ := s["required"].([]string)
	s["required"] = append(required, tag)
	s["allOf"] = branches
	return s
}
