package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

func callParams() []Param {
	return []Param{
		String("callId", "call").Require().At(InPath),
		String("fromNumber", "from").Require().WireAs("from_number"),
		String("toNumber", "to").Require().WireAs("to_number"),
		Integer("overrideAgentVersion", "version").WireAs("override_agent_version"),
		String("direction", "direction").OneOf("inbound", "outbound").WithDefault("outbound"),
		Record("metadata", "metadata", String("", "")),
		Integer("version", "version").At(InQuery),
	}
}

func destination() Param {
	return Tagged("transfer_destination", "where to transfer", "type",
		Case("predefined",
			String("value", "").OneOf("voicemail", "operator").Require(),
			String("number", "").Require(),
		),
		Case("inferred",
			String("description", "").Require(),
			String("prompt", "").Require(),
		),
	)
}

func toolParams() []Param {
	return []Param{
		Array("general_tools", "tools", Tagged("", "", "type",
			Case("end_call",
				String("name", "").Require(),
				String("description", "").Require(),
			),
			Case("transfer_call",
				String("name", "").Require(),
				String("description", "").Require(),
				destination().Require(),
			),
			Case("press_digit",
				String("name", "").Require(),
				String("description", "").Require(),
				String("digit", "").Require(),
			),
		)),
		Array("ids", "ids", String("", "")).Bounds(1, 3),
	}
}

func validationError(t *testing.T, err error) *toolerr.ValidationError {
	t.Helper()
	var ve *toolerr.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve
}

func fieldNames(ve *toolerr.ValidationError) []string {
	names := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_AppliesDefaultsAndDropsUndeclared(t *testing.T) {
	c := MustCompile("create_phone_call", callParams())

	args, err := c.Validate(map[string]any{
		"callId":     "call_1",
		"fromNumber": "+14155550100",
		"toNumber":   "+14155550101",
		"unexpected": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "outbound", args.Get("direction"))
	assert.False(t, args.Has("unexpected"))
	assert.False(t, args.Has("metadata"))
}

func TestValidate_KeepsExplicitEnumValue(t *testing.T) {
	c := MustCompile("create_phone_call", callParams())

	args, err := c.Validate(map[string]any{
		"callId": "c", "fromNumber": "a", "toNumber": "b", "direction": "inbound",
	})
	require.NoError(t, err)
	assert.Equal(t, "inbound", args.Get("direction"))
}

func TestValidate_ReportsEveryField(t *testing.T) {
	c := MustCompile("create_phone_call", callParams())

	_, err := c.Validate(map[string]any{
		"callId":    "c",
		"toNumber":  42,
		"direction": "sideways",
	})
	ve := validationError(t, err)

	assert.Equal(t, "create_phone_call", ve.Tool)
	assert.ElementsMatch(t, []string{"direction", "fromNumber", "toNumber"}, fieldNames(ve))
	for _, f := range ve.Fields {
		if f.Field == "toNumber" {
			assert.Contains(t, f.Message, "want string")
		}
		if f.Field == "fromNumber" {
			assert.Equal(t, "required field is missing", f.Message)
		}
	}
	assert.ErrorIs(t, err, toolerr.ErrValidation)
}

func TestValidate_NilArguments(t *testing.T) {
	c := MustCompile("create_phone_call", callParams())

	_, err := c.Validate(nil)
	ve := validationError(t, err)
	assert.ElementsMatch(t, []string{"callId", "fromNumber", "toNumber"}, fieldNames(ve))
}

func TestValidate_TaggedVariants(t *testing.T) {
	c := MustCompile("create_retell_llm", toolParams())

	tests := []struct {
		name   string
		tool   map[string]any
		fields []string
	}{
		{
			name: "predefined destination",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "predefined", "value": "operator", "number": "+1"}},
		},
		{
			name: "inferred destination",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "inferred", "description": "x", "prompt": "p"}},
		},
		{
			name: "predefined without number",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "predefined", "value": "voicemail"}},
			fields: []string{"general_tools[0].transfer_destination.number"},
		},
		{
			name: "inferred without prompt",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "inferred", "description": "x"}},
			fields: []string{"general_tools[0].transfer_destination.prompt"},
		},
		{
			name: "inferred destination with number",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "inferred", "description": "x", "prompt": "p", "number": "+1"}},
			fields: []string{"general_tools[0].transfer_destination.number"},
		},
		{
			name: "inferred destination with value",
			tool: map[string]any{"type": "transfer_call", "name": "t", "description": "d",
				"transfer_destination": map[string]any{"type": "inferred", "description": "x", "prompt": "p", "value": "operator"}},
			fields: []string{"general_tools[0].transfer_destination.value"},
		},
		{
			name: "field from another variant",
			tool: map[string]any{"type": "end_call", "name": "t", "description": "d", "digit": "1"},
			fields: []string{"general_tools[0].digit"},
		},
		{
			name:   "transfer without destination",
			tool:   map[string]any{"type": "transfer_call", "name": "t", "description": "d"},
			fields: []string{"general_tools[0].transfer_destination"},
		},
		{
			name:   "unknown tag",
			tool:   map[string]any{"type": "fax", "name": "t", "description": "d"},
			fields: []string{"general_tools[0].type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Validate(map[string]any{"general_tools": []any{tt.tool}})
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			ve := validationError(t, err)
			assert.Equal(t, tt.fields, fieldNames(ve))
		})
	}
}

func TestValidate_ArrayBounds(t *testing.T) {
	c := MustCompile("create_batch_test", toolParams())

	_, err := c.Validate(map[string]any{"ids": []any{}})
	assert.Equal(t, []string{"ids"}, fieldNames(validationError(t, err)))

	_, err = c.Validate(map[string]any{"ids": []any{"a", "b", "c", "d"}})
	assert.Equal(t, []string{"ids"}, fieldNames(validationError(t, err)))

	_, err = c.Validate(map[string]any{"ids": []any{"a", "b", "c"}})
	assert.NoError(t, err)
}

func TestArgs_BodyQueryAndDecode(t *testing.T) {
	c := MustCompile("create_phone_call", callParams())

	args, err := c.Validate(map[string]any{
		"callId":               "call/1",
		"fromNumber":           "+1",
		"toNumber":             "+2",
		"overrideAgentVersion": 3,
		"metadata":             map[string]any{"source": "crm"},
		"version":              7,
	})
	require.NoError(t, err)

	body := args.Body()
	assert.Equal(t, "+1", body["from_number"])
	assert.NotContains(t, body, "callId")
	assert.NotContains(t, body, "version")
	assert.Equal(t, "7", args.Query().Get("version"))
	assert.Equal(t, "call/1", args.String("callId"))

	var req struct {
		FromNumber   string            `json:"from_number"`
		ToNumber     string            `json:"to_number"`
		AgentVersion *int              `json:"override_agent_version,omitempty"`
		Direction    string            `json:"direction"`
		Metadata     map[string]string `json:"metadata"`
	}
	require.NoError(t, args.Decode(&req))
	assert.Equal(t, "+2", req.ToNumber)
	require.NotNil(t, req.AgentVersion)
	assert.Equal(t, 3, *req.AgentVersion)
	assert.Equal(t, "outbound", req.Direction)
	assert.Equal(t, map[string]string{"source": "crm"}, req.Metadata)
}

func TestCompile_RejectsBadDeclarations(t *testing.T) {
	_, err := Compile("dup", []Param{String("a", ""), String("a", "")})
	assert.Error(t, err)

	_, err = Compile("optional_path", []Param{String("id", "").At(InPath)})
	assert.Error(t, err)

	_, err = Compile("bare_array", []Param{{Name: "xs", Type: TypeArray}})
	assert.Error(t, err)

	_, err = Compile("repeat_case", []Param{Tagged("t", "", "type", Case("a"), Case("a"))})
	assert.Error(t, err)
}

func TestInputSchema_IsAdvertisable(t *testing.T) {
	c := MustCompile("create_retell_llm", toolParams())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(c.InputSchema(), &doc))
	assert.Equal(t, "object", doc["type"])

	props := doc["properties"].(map[string]any)
	tools := props["general_tools"].(map[string]any)
	items := tools["items"].(map[string]any)
	assert.Len(t, items["allOf"], 3)
}

func TestValidate_NullableFields(t *testing.T) {
	c := MustCompile("update_phone_number", []Param{
		String("phoneNumber", "").Require().At(InPath),
		String("inboundAgentId", "").WireAs("inbound_agent_id").OrNull(),
		String("nickname", ""),
		String("sttMode", "").OneOf("fast", "accurate").OrNull(),
	})

	args, err := c.Validate(map[string]any{
		"phoneNumber":    "+14155550100",
		"inboundAgentId": nil,
		"sttMode":        nil,
	})
	require.NoError(t, err)
	assert.True(t, args.Has("inboundAgentId"))

	body := args.Body()
	require.Contains(t, body, "inbound_agent_id")
	assert.Nil(t, body["inbound_agent_id"])
	assert.NotContains(t, body, "nickname")

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inbound_agent_id":null,"sttMode":null}`, string(raw))

	_, err = c.Validate(map[string]any{"phoneNumber": "+14155550100", "nickname": nil})
	assert.Equal(t, []string{"nickname"}, fieldNames(validationError(t, err)))
}

func TestInputSchema_Nullable(t *testing.T) {
	c := MustCompile("update_agent", []Param{
		String("webhook_url", "").OrNull(),
		String("stt_mode", "").OneOf("fast", "accurate").OrNull(),
	})

	var doc map[string]any
	require.NoError(t, json.Unmarshal(c.InputSchema(), &doc))
	props := doc["properties"].(map[string]any)
	assert.Equal(t, []any{"string", "null"}, props["webhook_url"].(map[string]any)["type"])
	assert.Equal(t, []any{"fast", "accurate", nil}, props["stt_mode"].(map[string]any)["enum"])
}
