package ttv

import (
	"context"
	"net/http"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, req *http.Request) map[string]any {
	t.Helper()

	defer req.Body.Close()
	var payload map[string]any
	require.NoError(t, sonic.ConfigDefault.NewDecoder(req.Body).Decode(&payload))

	return payload
}

func payloadKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}

	return keys
}

func TestDesignVoicePayloadHasOnlySetFields(t *testing.T) {
	assert := assert.New(t)

	var captured map[string]any
	var capturedURL string
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = decodeBody(t, req)
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	_, err := client.DesignVoice("A calm, deep narrator").
		Text("Once upon a time, in a quiet village by the sea, there lived a clockmaker who repaired more than clocks.").
		Loudness(0).
		Seed(42).
		Execute(t.Context())
	assert.NoError(err)

	assert.ElementsMatch([]string{"voice_description", "text", "loudness", "seed"}, payloadKeys(captured))
	assert.Equal("A calm, deep narrator", captured["voice_description"])
	assert.Equal(float64(0), captured["loudness"])
	assert.Equal(float64(42), captured["seed"])

	// No query string when no output format was chosen
	assert.Equal("https://api.elevenlabs.io/v1/text-to-voice/design", capturedURL)
}

func TestDesignVoiceOutputFormatIsQueryOnly(t *testing.T) {
	assert := assert.New(t)

	var captured map[string]any
	var capturedURL string
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = decodeBody(t, req)
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	_, err := client.DesignVoice("A calm, deep narrator").
		OutputFormat(OutputFormatMP3_44100_128).
		Execute(t.Context())
	assert.NoError(err)

	assert.Equal("https://api.elevenlabs.io/v1/text-to-voice/design?output_format=mp3_44100_128", capturedURL)
	assert.NotContains(captured, "output_format")
	assert.ElementsMatch([]string{"voice_description"}, payloadKeys(captured))
}

func TestDesignVoiceLastWriteWins(t *testing.T) {
	assert := assert.New(t)

	var captured map[string]any
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = decodeBody(t, req)
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	req := client.DesignVoice("A calm, deep narrator").
		Model(ModelMultilingualTTVv2).
		Loudness(0.2).
		Model(ModelTTVv3).
		Loudness(0.7)

	require.NotNil(t, req.modelID)
	assert.Equal(ModelTTVv3, *req.modelID)

	_, err := req.Execute(t.Context())
	assert.NoError(err)

	assert.Equal(ModelTTVv3, captured["model_id"])
	assert.Equal(0.7, captured["loudness"])
}

func TestDesignVoiceFullConfiguration(t *testing.T) {
	assert := assert.New(t)

	var captured map[string]any
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		captured = decodeBody(t, req)
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	_, err := client.DesignVoice("Bright, energetic narrator").
		Model(ModelMultilingualTTVv2).
		AutoGenerateText(true).
		GuidanceScale(20).
		StreamPreviews(false).
		RemixingSessionID("session-1").
		RemixingSessionIterationID("iter-2").
		Quality(0.9).
		ReferenceAudioBase64("UklGRg==").
		PromptStrength(0.4).
		Execute(t.Context())
	assert.NoError(err)

	assert.Equal(true, captured["auto_generate_text"])
	assert.Equal(float64(20), captured["guidance_scale"])
	assert.Equal(false, captured["stream_previews"])
	assert.Equal("session-1", captured["remixing_session_id"])
	assert.Equal("iter-2", captured["remixing_session_iteration_id"])
	assert.Equal(0.9, captured["quality"])
	assert.Equal("UklGRg==", captured["reference_audio_base64"])
	assert.Equal(0.4, captured["prompt_strength"])
}

func TestDesignVoiceSuccess(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	res, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())
	require.NoError(t, err)

	require.Len(t, res.Previews, 1)
	preview := res.Previews[0]
	assert.Equal("gen-123", preview.GeneratedVoiceID)
	assert.Equal("audio/mpeg", preview.MediaType)
	assert.Equal(2.94, preview.DurationSecs)
	require.NotNil(t, preview.Language)
	assert.Equal("en", *preview.Language)
	assert.Equal("A sample passage read aloud.", res.Text)

	audio, err := preview.Audio()
	assert.NoError(err)
	assert.NotEmpty(audio)
}

func TestDesignVoiceEmptyDescription(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	_, err := client.DesignVoice("  ").Execute(t.Context())

	var confErr *ConfigurationError
	assert.ErrorAs(err, &confErr)
	assert.Equal("voice_description", confErr.Field)
	assert.Zero(calls, "no request should be sent")
}

func TestDesignVoiceAPIError(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity, `{"message": "invalid prompt"}`), nil
	})

	res, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())
	assert.Nil(res)

	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.Equal(http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal("invalid prompt", apiErr.Message)
}

func TestDesignVoiceAPIErrorDetailEnvelope(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"detail": {"status": "invalid_output_format", "message": "Unknown output format."}}`), nil
	})

	_, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())

	var apiErr *APIError
	assert.ErrorAs(err, &apiErr)
	assert.Equal(http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal("invalid_output_format", apiErr.Code)
	assert.Equal("Unknown output format.", apiErr.Message)
}

func TestDesignVoiceMissingPreviews(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"text": "no previews here"}`), nil
	})

	res, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())
	assert.Nil(res)

	var decodeErr *DecodeError
	assert.ErrorAs(err, &decodeErr)
	assert.JSONEq(`{"text": "no previews here"}`, string(decodeErr.Body))
}

func TestDesignVoiceMalformedSuccessBody(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"previews": [`), nil
	})

	_, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())

	var decodeErr *DecodeError
	assert.ErrorAs(err, &decodeErr)
	assert.Equal(`{"previews": [`, string(decodeErr.Body))
}

func TestDesignVoiceEmptyPreviewsListDecodes(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"previews": [], "text": ""}`), nil
	})

	res, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())
	assert.NoError(err)
	assert.Empty(res.Previews)
}

func TestDesignVoiceTimeoutLeavesBuilderReusable(t *testing.T) {
	assert := assert.New(t)

	failing := true
	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if failing {
			return nil, context.DeadlineExceeded
		}
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	req := client.DesignVoice("A calm, deep narrator").
		Text("Once upon a time, in a quiet village by the sea, there lived a clockmaker who repaired more than clocks.").
		Seed(7)

	_, err := req.Execute(t.Context())

	var transportErr *TransportError
	assert.ErrorAs(err, &transportErr)
	assert.ErrorIs(err, context.DeadlineExceeded)

	// Configured fields survive the failure untouched
	assert.Equal("A calm, deep narrator", req.voiceDescription)
	require.NotNil(t, req.seed)
	assert.Equal(uint(7), *req.seed)

	// Same builder can be executed again once the transport recovers
	failing = false
	res, err := req.Execute(t.Context())
	assert.NoError(err)
	assert.Len(res.Previews, 1)
}

func TestDesignVoiceContextCancelled(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		if err := req.Context().Err(); err != nil {
			return nil, err
		}
		return jsonResponse(http.StatusOK, designSuccessBody), nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := client.DesignVoice("A calm, deep narrator").Execute(ctx)

	var transportErr *TransportError
	assert.ErrorAs(err, &transportErr)
	assert.ErrorIs(err, context.Canceled)
}

func TestDesignVoiceUnparseableErrorBody(t *testing.T) {
	assert := assert.New(t)

	client := newTestClient(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, "Internal Server Error"), nil
	})

	_, err := client.DesignVoice("A calm, deep narrator").Execute(t.Context())

	var transportErr *TransportError
	assert.ErrorAs(err, &transportErr)
	assert.Equal(http.StatusInternalServerError, transportErr.StatusCode)
	assert.Contains(transportErr.Body, "Internal Server Error")
}
