package ttv

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DesignVoiceRequest accumulates the configuration for one design call.
// Every setter overwrites its field and returns the builder, so calls chain
// and the last write wins. Only fields that were explicitly set are
// serialized. Numeric ranges mentioned below are documented for reference;
// the service validates them and rejects out-of-range values with an
// *APIError rather than the client second-guessing them locally.
//
// A builder belongs to the goroutine that made it. Execute never mutates it,
// so the same builder may be executed again, e.g. after a timeout.
type DesignVoiceRequest struct {
	client *Client

	voiceDescription           string
	outputFormat               *string
	modelID                    *string
	text                       *string
	autoGenerateText           *bool
	loudness                   *float64
	seed                       *uint
	guidanceScale              *uint
	streamPreviews             *bool
	remixingSessionID          *string
	remixingSessionIterationID *string
	quality                    *float64
	referenceAudioBase64       *string
	promptStrength             *float64
}

// OutputFormat selects the preview audio encoding, one of the OutputFormat*
// constants. It travels as a query parameter, not in the JSON body.
func (r *DesignVoiceRequest) OutputFormat(format string) *DesignVoiceRequest {
	r.outputFormat = &format
	return r
}

// Model selects the design model, ModelMultilingualTTVv2 or ModelTTVv3.
func (r *DesignVoiceRequest) Model(modelID string) *DesignVoiceRequest {
	r.modelID = &modelID
	return r
}

// Text supplies the exact text the previews will speak, 100 to 1000
// characters.
func (r *DesignVoiceRequest) Text(text string) *DesignVoiceRequest {
	r.text = &text
	return r
}

// AutoGenerateText lets the service write preview text that suits the voice
// description instead of supplying one via Text.
func (r *DesignVoiceRequest) AutoGenerateText(autoGenerate bool) *DesignVoiceRequest {
	r.autoGenerateText = &autoGenerate
	return r
}

// Loudness controls preview volume, -1 to 1 where 0 is roughly -24 LUFS.
func (r *DesignVoiceRequest) Loudness(loudness float64) *DesignVoiceRequest {
	r.loudness = &loudness
	return r
}

// Seed pins the random source so identical requests reproduce the same
// previews, best effort.
func (r *DesignVoiceRequest) Seed(seed uint) *DesignVoiceRequest {
	r.seed = &seed
	return r
}

// GuidanceScale sets how literally the voice description is followed, 0 to
// 100; lower values leave the model more creative freedom.
func (r *DesignVoiceRequest) GuidanceScale(scale uint) *DesignVoiceRequest {
	r.guidanceScale = &scale
	return r
}

// StreamPreviews asks for previews without inline audio, to be fetched via
// the streaming endpoint instead.
func (r *DesignVoiceRequest) StreamPreviews(stream bool) *DesignVoiceRequest {
	r.streamPreviews = &stream
	return r
}

// RemixingSessionID continues a remixing session.
func (r *DesignVoiceRequest) RemixingSessionID(id string) *DesignVoiceRequest {
	r.remixingSessionID = &id
	return r
}

// RemixingSessionIterationID picks the iteration within a remixing session.
func (r *DesignVoiceRequest) RemixingSessionIterationID(id string) *DesignVoiceRequest {
	r.remixingSessionIterationID = &id
	return r
}

// Quality trades variety for fidelity, -1 to 1.
func (r *DesignVoiceRequest) Quality(quality float64) *DesignVoiceRequest {
	r.quality = &quality
	return r
}

// ReferenceAudioBase64 supplies a base64-encoded audio clip for the design to
// imitate.
func (r *DesignVoiceRequest) ReferenceAudioBase64(audio string) *DesignVoiceRequest {
	r.referenceAudioBase64 = &audio
	return r
}

// PromptStrength balances the text description against reference audio, 0 to
// 1; only meaningful together with ReferenceAudioBase64.
func (r *DesignVoiceRequest) PromptStrength(strength float64) *DesignVoiceRequest {
	r.promptStrength = &strength
	return r
}

// Execute sends the design request and returns the generated previews.
// Failures come back as *ConfigurationError, *APIError, *DecodeError or
// *TransportError; the builder is left untouched either way.
func (r *DesignVoiceRequest) Execute(ctx context.Context) (*DesignVoiceResponse, error) {
	ctx, span := tracer.Start(ctx, "TTV.DesignVoice")
	defer span.End()

	if strings.TrimSpace(r.voiceDescription) == "" {
		err := &ConfigurationError{Field: "voice_description", Reason: "must not be empty"}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if r.modelID != nil {
		span.SetAttributes(attribute.String("ttv.model", *r.modelID))
	}
	if r.outputFormat != nil {
		span.SetAttributes(attribute.String("ttv.output_format", *r.outputFormat))
	}

	payload, err := sonic.Marshal(designVoiceBody{
		VoiceDescription:           r.voiceDescription,
		ModelID:                    r.modelID,
		Text:                       r.text,
		AutoGenerateText:           r.autoGenerateText,
		Loudness:                   r.loudness,
		Seed:                       r.seed,
		GuidanceScale:              r.guidanceScale,
		StreamPreviews:             r.streamPreviews,
		RemixingSessionID:          r.remixingSessionID,
		RemixingSessionIterationID: r.remixingSessionIterationID,
		Quality:                    r.quality,
		ReferenceAudioBase64:       r.referenceAudioBase64,
		PromptStrength:             r.promptStrength,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	endpoint := r.client.baseURL + "/v1/text-to-voice/design"
	if r.outputFormat != nil {
		endpoint += "?output_format=" + url.QueryEscape(*r.outputFormat)
	}

	resBody, status, err := r.client.post(ctx, endpoint, payload)
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var envelope designVoiceEnvelope
	if err := sonic.Unmarshal(resBody, &envelope); err != nil {
		decodeErr := &DecodeError{Body: resBody, Err: err}
		span.RecordError(decodeErr)
		span.SetStatus(codes.Error, decodeErr.Error())
		return nil, decodeErr
	}

	if envelope.Previews == nil {
		decodeErr := &DecodeError{Body: resBody, Err: errors.New("response has no previews field")}
		span.RecordError(decodeErr)
		span.SetStatus(codes.Error, decodeErr.Error())
		return nil, decodeErr
	}

	out := &DesignVoiceResponse{
		Previews: *envelope.Previews,
		Text:     envelope.Text,
	}

	span.SetAttributes(attribute.Int("ttv.previews_count", len(out.Previews)))

	return out, nil
}
