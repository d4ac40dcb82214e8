package ttv

import "encoding/base64"

// designVoiceBody is the wire shape for the design endpoint. Optional fields
// are pointers so only what the caller configured is serialized; output_format
// is absent because it travels as a query parameter.
type designVoiceBody struct {
	VoiceDescription           string   `json:"voice_description"`
	ModelID                    *string  `json:"model_id,omitempty"`
	Text                       *string  `json:"text,omitempty"`
	AutoGenerateText           *bool    `json:"auto_generate_text,omitempty"`
	Loudness                   *float64 `json:"loudness,omitempty"`
	Seed                       *uint    `json:"seed,omitempty"`
	GuidanceScale              *uint    `json:"guidance_scale,omitempty"`
	StreamPreviews             *bool    `json:"stream_previews,omitempty"`
	RemixingSessionID          *string  `json:"remixing_session_id,omitempty"`
	RemixingSessionIterationID *string  `json:"remixing_session_iteration_id,omitempty"`
	Quality                    *float64 `json:"quality,omitempty"`
	ReferenceAudioBase64       *string  `json:"reference_audio_base64,omitempty"`
	PromptStrength             *float64 `json:"prompt_strength,omitempty"`
}

// createVoiceBody is the wire shape for the create endpoint.
type createVoiceBody struct {
	VoiceName                 string            `json:"voice_name"`
	VoiceDescription          string            `json:"voice_description"`
	GeneratedVoiceID          string            `json:"generated_voice_id"`
	Labels                    map[string]string `json:"labels,omitempty"`
	PlayedNotSelectedVoiceIDs []string          `json:"played_not_selected_voice_ids,omitempty"`
}

// DesignVoiceResponse holds the candidate previews generated for a voice
// description. The API returns at least one preview on success.
type DesignVoiceResponse struct {
	Previews []VoicePreview `json:"previews"`

	// Text is the sample text the previews were rendered with, whether it
	// was supplied in the request or auto-generated.
	Text string `json:"text"`
}

// designVoiceEnvelope mirrors DesignVoiceResponse with a pointer slice so a
// body that omits the previews key entirely can be told apart from an empty
// list.
type designVoiceEnvelope struct {
	Previews *[]VoicePreview `json:"previews"`
	Text     string          `json:"text"`
}

// VoicePreview is one generated candidate. Its GeneratedVoiceID is the handle
// passed to CreateVoice to persist this candidate.
type VoicePreview struct {
	AudioBase64      string  `json:"audio_base_64"`
	GeneratedVoiceID string  `json:"generated_voice_id"`
	MediaType        string  `json:"media_type"`
	DurationSecs     float64 `json:"duration_secs"`
	Language         *string `json:"language,omitempty"`
}

// Audio decodes the preview's base64 payload into raw audio bytes. The bytes
// are empty when the request asked for streamed previews.
func (p *VoicePreview) Audio() ([]byte, error) {
	return base64.StdEncoding.DecodeString(p.AudioBase64)
}
