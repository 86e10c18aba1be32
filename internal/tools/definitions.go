package tools

import "github.com/bobmcallan/retell-mcp/internal/schema"

// Parameter fragments shared by several operations.

func named() []schema.Param {
	return []schema.Param{
		schema.String("name", "Name of the tool").Require(),
		schema.String("description", "When the model should call the tool").Require(),
	}
}

func calendarFields() []schema.Param {
	return append(named(),
		schema.String("calendar_url", "Cal.com calendar URL").Require(),
		schema.String("cal_api_key", "Cal.com API key").Require(),
		schema.Number("event_type_id", "Cal.com event type ID").Require(),
	)
}

func transferDestination() schema.Param {
	return schema.Tagged("transfer_destination", "Where the call is transferred", "type",
		schema.Case("predefined",
			schema.String("value", "Predefined destination").OneOf("voicemail", "operator").Require(),
			schema.String("number", "Phone number to transfer to").Require(),
		),
		schema.Case("inferred",
			schema.String("description", "Describes the inferred destination").Require(),
			schema.String("prompt", "Prompt used to infer the destination").Require(),
		),
	).Require()
}

// toolDefinitions declares an array of LLM tool definitions tagged by type.
func toolDefinitions(name, description string) schema.Param {
	return schema.Array(name, description, schema.Tagged("", "", "type",
		schema.Case("end_call", named()...),
		schema.Case("transfer_call", append(named(), transferDestination())...),
		schema.Case("check_availability_cal", calendarFields()...),
		schema.Case("book_appointment_cal", calendarFields()...),
		schema.Case("press_digit", append(named(),
			schema.String("digit", "Digit to press").Require(),
		)...),
		schema.Case("custom", append(named(),
			schema.Bool("speak_after_execution", "Speak once the tool returns").Require(),
			schema.Bool("speak_during_execution", "Speak while the tool runs").Require(),
			schema.String("url", "Endpoint the platform calls").Require(),
		)...),
	))
}

func states() schema.Param {
	return schema.Array("states", "States of the LLM", schema.Object("", "",
		schema.String("name", "State name").Require(),
		schema.String("state_prompt", "Prompt for this state").Require(),
		schema.Array("edges", "Transitions to other states", schema.Object("", "",
			schema.String("destination_state_name", "Target state").Require(),
			schema.String("description", "When to transition").Require(),
			schema.Object("parameters", "Arguments collected on transition",
				schema.String("type", "").OneOf("object").Require(),
				schema.Record("properties", "", schema.Any("", "")).Require(),
				schema.Array("required", "", schema.String("", "")).Require(),
			),
		)),
		toolDefinitions("tools", "Tools available in this state"),
	))
}

// responseEngine declares the agent response engine binding. When strict,
// the engine ID for the chosen type is required.
func responseEngine(strict bool) schema.Param {
	llmID := schema.String("llm_id", "ID of the Retell LLM response engine")
	flowID := schema.String("conversation_flow_id", "ID of the conversation flow")
	if strict {
		llmID = llmID.Require()
		flowID = flowID.Require()
	}
	version := schema.Integer("version", "Pin to a specific version")
	return schema.Tagged("response_engine", "Response engine the agent runs on", "type",
		schema.Case("retell-llm", llmID, version),
		schema.Case("conversation-flow", flowID, version),
	)
}

func analysisData() schema.Param {
	base := func(extra ...schema.Param) []schema.Param {
		return append([]schema.Param{
			schema.String("name", "Variable name").Require(),
			schema.String("description", "What to extract").Require(),
			schema.Array("examples", "Example values", schema.String("", "")).Require(),
		}, extra...)
	}
	return schema.Array("post_call_analysis_data", "Data to extract after each call",
		schema.Tagged("", "", "type",
			schema.Case("string", base()...),
			schema.Case("enum", base(schema.Array("choices", "Allowed values", schema.String("", "")).Require())...),
			schema.Case("boolean", base()...),
			schema.Case("number", base()...),
		))
}

func pronunciationDictionary() schema.Param {
	return schema.Array("pronunciation_dictionary", "Custom pronunciations", schema.Object("", "",
		schema.String("word", "Word to pronounce").Require(),
		schema.String("alphabet", "Phonetic alphabet").OneOf("ipa", "cmu").Require(),
		schema.String("phoneme", "Pronunciation").Require(),
	))
}

func stringMap(name, description string) schema.Param {
	return schema.Record(name, description, schema.String("", ""))
}

func id(name, description string) schema.Param {
	return schema.String(name, description).Require().At(schema.InPath)
}

// nodes declares an opaque flow node list. Node shapes vary by type and
// pass through unvalidated beyond being objects.
func nodes(description string) schema.Param {
	return schema.Array("nodes", description, schema.Record("", "", schema.Any("", "")))
}
