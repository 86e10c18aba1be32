package tools

import (
	"context"

	"github.com/bobmcallan/retell-mcp/internal/retell"
	"github.com/bobmcallan/retell-mcp/internal/schema"
)

var voiceModels = []any{
	"eleven_turbo_v2", "eleven_flash_v2", "eleven_turbo_v2_5", "eleven_flash_v2_5",
	"eleven_multilingual_v2", "Play3.0-mini", "PlayDialog",
}

var languages = []any{
	"en-US", "en-IN", "en-GB", "en-AU", "en-NZ", "de-DE", "es-ES", "es-419", "hi-IN",
	"fr-FR", "fr-CA", "ja-JP", "pt-PT", "pt-BR", "zh-CN", "ru-RU", "it-IT", "ko-KR",
}

func agentOperations(c *retell.Client) []Operation {
	return []Operation{
		{
			Name:        "create_agent",
			Description: "Creates a new voice agent bound to a Retell LLM or conversation flow. If no llm_id is given by the user, create a Retell LLM first.",
			Effect:      EffectCreate,
			Params: []schema.Param{
				responseEngine(true).Require(),
				schema.String("voice_id", "ID of the voice to use").Require(),
				schema.String("agent_name", "Name of the agent"),
				schema.String("voice_model", "Voice model").OneOf(voiceModels...),
				schema.String("language", "Language and dialect for speech recognition").OneOf(languages...),
				schema.String("webhook_url", "Webhook for call events"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				var req retell.CreateAgentRequest
				if err := args.Decode(&req); err != nil {
					return nil, err
				}
				return c.CreateAgent(ctx, req)
			},
		},
		{
			Name:        "get_agent",
			Description: "Gets a voice agent by ID",
			Effect:      EffectRead,
			Params:      []schema.Param{id("agentId", "The ID of the agent to retrieve")},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.GetAgent(ctx, args.String("agentId"))
			},
		},
		{
			Name:        "update_agent",
			Description: "Updates an existing voice agent. Only the supplied fields change.",
			Effect:      EffectUpdate,
			Params: []schema.Param{
				id("agentId", "The ID of the agent to update"),
				responseEngine(false),
				schema.String("voice_id", "ID of the voice to use"),
				schema.String("agent_name", "Name of the agent"),
				schema.String("voice_model", "Voice model"),
				schema.Array("fallback_voice_ids", "Voices used when the primary provider fails, null to clear", schema.String("", "")).OrNull(),
				schema.Number("voice_temperature", "Voice stability, [0,2]"),
				schema.Number("voice_speed", "Speech rate, [0.5,2]"),
				schema.Number("volume", "Output volume, [0,2]"),
				schema.Number("responsiveness", "How fast the agent responds, [0,1]"),
				schema.Number("interruption_sensitivity", "How easily the user can interrupt, [0,1]"),
				schema.Bool("enable_backchannel", "Interject acknowledgements while the user speaks"),
				schema.Number("backchannel_frequency", "How often to backchannel, [0,1]"),
				schema.Array("backchannel_words", "Words used for backchanneling", schema.String("", "")),
				schema.Integer("reminder_trigger_ms", "Silence before the agent prompts the user"),
				schema.Integer("reminder_max_count", "Maximum number of reminders"),
				schema.String("ambient_sound", "Background ambience, null to remove").OrNull(),
				schema.Number("ambient_sound_volume", "Ambience volume, [0,2]"),
				schema.String("language", "Language and dialect for speech recognition"),
				schema.String("webhook_url", "Webhook for call events, null to remove").OrNull(),
				schema.Array("boosted_keywords", "Keywords biased in transcription, null to clear", schema.String("", "")).OrNull(),
				schema.Bool("enable_transcription_formatting", "Format transcripts"),
				schema.Bool("opt_out_sensitive_data_storage", "Do not store transcripts and recordings"),
				schema.Bool("opt_in_signed_url", "Return signed URLs for call artifacts"),
				pronunciationDictionary(),
				schema.Bool("normalize_for_speech", "Normalize numbers and dates before synthesis"),
				schema.Integer("end_call_after_silence_ms", "End the call after this much silence"),
				schema.Integer("max_call_duration_ms", "Maximum call length"),
				schema.Bool("enable_voicemail_detection", "Detect voicemail on outbound calls"),
				schema.String("voicemail_message", "Message left on voicemail, null to hang up silently").OrNull(),
				schema.Integer("voicemail_detection_timeout_ms", "How long to listen for voicemail"),
				analysisData(),
				schema.String("post_call_analysis_model", "Model used for post call analysis").OneOf("gpt-4o-mini", "gpt-4o"),
				schema.Integer("begin_message_delay_ms", "Delay before the first utterance"),
				schema.Integer("ring_duration_ms", "How long outbound calls ring"),
				schema.String("stt_mode", "Speech recognition mode").OneOf("fast", "accurate"),
			},
			Handler: func(ctx context.Context, args schema.Args) (any, error) {
				return c.UpdateAgent(ctx, args.String("agentId"), args.Body())
			},
		},
	}
}
