package mockapi

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/curaious/ttv/internal/utils"
	"github.com/curaious/ttv/pkg/ttv"
)

// cannedPreviewText is served when the request doesn't bring its own preview
// text. It sits inside the 100-1000 character window the service enforces.
const cannedPreviewText = "The old lighthouse keeper climbed the spiral staircase one last time, lantern in hand, while the storm rattled the windows and the sea threw itself against the rocks far below. Tomorrow the light would be automated, but tonight the beam still needed him."

// previewAudio is the dummy payload previews carry; an ID3 header followed by
// filler so decoded bytes look like the start of an MP3 file.
var previewAudio = []byte("ID3\x04\x00\x00\x00\x00\x00\x00ttv mock preview audio payload")

var validOutputFormats = map[string]struct{}{
	ttv.OutputFormatMP3_22050_32:  {},
	ttv.OutputFormatMP3_44100_32:  {},
	ttv.OutputFormatMP3_44100_64:  {},
	ttv.OutputFormatMP3_44100_96:  {},
	ttv.OutputFormatMP3_44100_128: {},
	ttv.OutputFormatMP3_44100_192: {},
	ttv.OutputFormatPCM_8000:      {},
	ttv.OutputFormatPCM_16000:     {},
	ttv.OutputFormatPCM_22050:     {},
	ttv.OutputFormatPCM_24000:     {},
	ttv.OutputFormatPCM_44100:     {},
	ttv.OutputFormatPCM_48000:     {},
	ttv.OutputFormatULaw_8000:     {},
	ttv.OutputFormatALaw_8000:     {},
	ttv.OutputFormatOpus_48000_32: {},
	ttv.OutputFormatOpus_48000_64: {},
	ttv.OutputFormatOpus_48000_96: {},
}

type designVoiceRequest struct {
	VoiceDescription           string   `json:"voice_description"`
	ModelID                    *string  `json:"model_id"`
	Text                       *string  `json:"text"`
	AutoGenerateText           *bool    `json:"auto_generate_text"`
	Loudness                   *float64 `json:"loudness"`
	Seed                       *uint    `json:"seed"`
	GuidanceScale              *uint    `json:"guidance_scale"`
	StreamPreviews             *bool    `json:"stream_previews"`
	RemixingSessionID          *string  `json:"remixing_session_id"`
	RemixingSessionIterationID *string  `json:"remixing_session_iteration_id"`
	Quality                    *float64 `json:"quality"`
	ReferenceAudioBase64       *string  `json:"reference_audio_base64"`
	PromptStrength             *float64 `json:"prompt_strength"`
}

type createVoiceRequest struct {
	VoiceName                 string            `json:"voice_name"`
	VoiceDescription          string            `json:"voice_description"`
	GeneratedVoiceID          string            `json:"generated_voice_id"`
	Labels                    map[string]string `json:"labels"`
	PlayedNotSelectedVoiceIDs []string          `json:"played_not_selected_voice_ids"`
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return sonic.Unmarshal(body, target)
}

func (s *Server) handleDesignVoice(ctx *fasthttp.RequestCtx) {
	var body designVoiceRequest
	if err := parseBody(ctx, &body); err != nil {
		writeAPIError(ctx, fasthttp.StatusBadRequest, "bad_request", "Invalid request body.")
		return
	}

	if strings.TrimSpace(body.VoiceDescription) == "" {
		writeAPIError(ctx, fasthttp.StatusUnprocessableEntity, "invalid_prompt", "voice_description must not be empty.")
		return
	}

	outputFormat := string(ctx.QueryArgs().Peek("output_format"))
	if outputFormat == "" {
		outputFormat = ttv.OutputFormatDefault
	}
	if _, ok := validOutputFormats[outputFormat]; !ok {
		writeAPIError(ctx, fasthttp.StatusBadRequest, "invalid_output_format", fmt.Sprintf("Unknown output format %q.", outputFormat))
		return
	}

	if body.Text != nil && (len(*body.Text) < 100 || len(*body.Text) > 1000) {
		writeAPIError(ctx, fasthttp.StatusUnprocessableEntity, "invalid_prompt", "text must be between 100 and 1000 characters.")
		return
	}

	text := cannedPreviewText
	if body.Text != nil {
		text = *body.Text
	}

	streaming := body.StreamPreviews != nil && *body.StreamPreviews

	durations := []float64{2.94, 3.12, 2.61}
	previews := make([]ttv.VoicePreview, 0, len(durations))
	for i, duration := range durations {
		preview := ttv.VoicePreview{
			GeneratedVoiceID: previewID(body.Seed, i),
			MediaType:        mediaTypeFor(outputFormat),
			DurationSecs:     duration,
			Language:         utils.Ptr("en"),
		}
		if !streaming {
			preview.AudioBase64 = base64.StdEncoding.EncodeToString(previewAudio)
		}

		previews = append(previews, preview)
	}

	writeJSON(ctx, fasthttp.StatusOK, ttv.DesignVoiceResponse{
		Previews: previews,
		Text:     text,
	})
}

func (s *Server) handleCreateVoice(ctx *fasthttp.RequestCtx) {
	generatedVoiceID := ctx.UserValue("generated_voice_id").(string)

	var body createVoiceRequest
	if err := parseBody(ctx, &body); err != nil {
		writeAPIError(ctx, fasthttp.StatusBadRequest, "bad_request", "Invalid request body.")
		return
	}

	switch {
	case strings.TrimSpace(body.VoiceName) == "":
		writeAPIError(ctx, fasthttp.StatusUnprocessableEntity, "invalid_prompt", "voice_name must not be empty.")
		return
	case strings.TrimSpace(body.VoiceDescription) == "":
		writeAPIError(ctx, fasthttp.StatusUnprocessableEntity, "invalid_prompt", "voice_description must not be empty.")
		return
	}

	voice := ttv.Voice{
		VoiceID:       uuid.NewString(),
		Name:          utils.Ptr(body.VoiceName),
		Description:   utils.Ptr(body.VoiceDescription),
		Category:      utils.Ptr(ttv.VoiceCategoryGenerated),
		Labels:        body.Labels,
		Settings:      ttv.DefaultVoiceSettings(),
		SafetyControl: utils.Ptr(ttv.SafetyControlNone),
		IsOwner:       utils.Ptr(true),
		IsLegacy:      utils.Ptr(false),
		IsMixed:       utils.Ptr(false),
		CreatedAtUnix: utils.Ptr(time.Now().Unix()),
		PreviewURL:    utils.Ptr("https://storage.mock.invalid/previews/" + generatedVoiceID + ".mp3"),
		VoiceVerification: &ttv.VoiceVerification{
			RequiresVerification:      false,
			IsVerified:                false,
			VerificationFailures:      []string{},
			VerificationAttemptsCount: 0,
		},
	}

	writeJSON(ctx, fasthttp.StatusOK, voice)
}

// previewID derives stable IDs from the request seed so repeat design calls
// with the same seed reproduce the same candidates, like the real service
// aims to.
func previewID(seed *uint, n int) string {
	if seed == nil {
		return uuid.NewString()
	}

	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "ttv-preview-%d-%d", *seed, n)).String()
}

func mediaTypeFor(format string) string {
	switch {
	case strings.HasPrefix(format, "mp3_"):
		return "audio/mpeg"
	case strings.HasPrefix(format, "opus_"):
		return "audio/ogg"
	case strings.HasPrefix(format, "pcm_"):
		return "audio/wav"
	default:
		return "audio/basic"
	}
}
