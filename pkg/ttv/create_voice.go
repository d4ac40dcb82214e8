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

// CreateVoiceRequest persists one preview from an earlier design call as a
// permanent voice. Name, description and the preview's generated voice ID are
// fixed at construction; labels and the played-but-not-selected list are
// optional, and re-setting either replaces the previous value wholesale.
//
// Like DesignVoiceRequest, the builder is single-goroutine and Execute leaves
// it untouched, so it can be re-executed after a transport failure.
type CreateVoiceRequest struct {
	client *Client

	voiceName                 string
	voiceDescription          string
	generatedVoiceID          string
	labels                    map[string]string
	playedNotSelectedVoiceIDs []string
}

// Labels attaches metadata labels to the voice, e.g. accent or age. The whole
// map replaces any previously set labels.
func (r *CreateVoiceRequest) Labels(labels map[string]string) *CreateVoiceRequest {
	r.labels = labels
	return r
}

// PlayedNotSelectedVoiceIDs reports which other previews the user listened to
// before choosing this one; the service uses it as feedback.
func (r *CreateVoiceRequest) PlayedNotSelectedVoiceIDs(ids []string) *CreateVoiceRequest {
	r.playedNotSelectedVoiceIDs = ids
	return r
}

// Execute persists the voice and returns the full voice object. Failures come
// back as *ConfigurationError, *APIError, *DecodeError or *TransportError.
func (r *CreateVoiceRequest) Execute(ctx context.Context) (*Voice, error) {
	ctx, span := tracer.Start(ctx, "TTV.CreateVoice")
	defer span.End()

	if err := r.validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("ttv.generated_voice_id", r.generatedVoiceID))

	payload, err := sonic.Marshal(createVoiceBody{
		VoiceName:                 r.voiceName,
		VoiceDescription:          r.voiceDescription,
		GeneratedVoiceID:          r.generatedVoiceID,
		Labels:                    r.labels,
		PlayedNotSelectedVoiceIDs: r.playedNotSelectedVoiceIDs,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	endpoint := r.client.baseURL + "/v1/text-to-voice/create/" + url.PathEscape(r.generatedVoiceID)

	resBody, status, err := r.client.post(ctx, endpoint, payload)
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var voice Voice
	if err := sonic.Unmarshal(resBody, &voice); err != nil {
		decodeErr := &DecodeError{Body: resBody, Err: err}
		span.RecordError(decodeErr)
		span.SetStatus(codes.Error, decodeErr.Error())
		return nil, decodeErr
	}

	if voice.VoiceID == "" {
		decodeErr := &DecodeError{Body: resBody, Err: errors.New("response has no voice_id field")}
		span.RecordError(decodeErr)
		span.SetStatus(codes.Error, decodeErr.Error())
		return nil, decodeErr
	}

	span.SetAttributes(attribute.String("ttv.voice_id", voice.VoiceID))

	return &voice, nil
}

func (r *CreateVoiceRequest) validate() error {
	switch {
	case strings.TrimSpace(r.voiceName) == "":
		return &ConfigurationError{Field: "voice_name", Reason: "must not be empty"}
	case strings.TrimSpace(r.voiceDescription) == "":
		return &ConfigurationError{Field: "voice_description", Reason: "must not be empty"}
	case strings.TrimSpace(r.generatedVoiceID) == "":
		return &ConfigurationError{Field: "generated_voice_id", Reason: "must not be empty"}
	}

	return nil
}
