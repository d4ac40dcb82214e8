package mockapi_test

import (
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaious/ttv/internal/mockapi"
	"github.com/curaious/ttv/pkg/ttv"
)

func startServer(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := mockapi.New(ln.Addr().String())
	go func() {
		_ = srv.Serve(ln)
	}()

	t.Cleanup(func() {
		_ = srv.Shutdown()
	})

	return "http://" + ln.Addr().String()
}

func newClient(t *testing.T, baseURL string) *ttv.Client {
	t.Helper()

	client, err := ttv.New("dev-key", ttv.WithBaseURL(baseURL), ttv.WithTimeout(5*time.Second))
	require.NoError(t, err)

	return client
}

func TestDesignAndCreateFlow(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	designed, err := client.DesignVoice("Warm, gravelly storyteller with a slow cadence.").
		Seed(7).
		Execute(t.Context())
	require.NoError(t, err)

	require.Len(t, designed.Previews, 3)
	assert.NotEmpty(designed.Text)
	for _, preview := range designed.Previews {
		assert.NotEmpty(preview.GeneratedVoiceID)
		assert.Equal("audio/mpeg", preview.MediaType)
		assert.Greater(preview.DurationSecs, 0.0)

		audio, err := preview.Audio()
		assert.NoError(err)
		assert.NotEmpty(audio)
	}

	voice, err := client.CreateVoice("Storyteller", "Warm, gravelly storyteller", designed.Previews[0].GeneratedVoiceID).
		Labels(map[string]string{"accent": "american", "age": "old"}).
		PlayedNotSelectedVoiceIDs([]string{designed.Previews[1].GeneratedVoiceID}).
		Execute(t.Context())
	require.NoError(t, err)

	assert.NotEmpty(voice.VoiceID)
	require.NotNil(t, voice.Category)
	assert.Equal(ttv.VoiceCategoryGenerated, *voice.Category)
	assert.Equal("american", voice.Labels["accent"])
	require.NotNil(t, voice.Settings)
	assert.True(voice.IsReady())
}

func TestDesignSeedIsDeterministic(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	first, err := client.DesignVoice("Warm, gravelly storyteller.").Seed(21).Execute(t.Context())
	require.NoError(t, err)
	second, err := client.DesignVoice("Warm, gravelly storyteller.").Seed(21).Execute(t.Context())
	require.NoError(t, err)
	other, err := client.DesignVoice("Warm, gravelly storyteller.").Seed(22).Execute(t.Context())
	require.NoError(t, err)

	for i := range first.Previews {
		assert.Equal(first.Previews[i].GeneratedVoiceID, second.Previews[i].GeneratedVoiceID)
		assert.NotEqual(first.Previews[i].GeneratedVoiceID, other.Previews[i].GeneratedVoiceID)
	}
}

func TestDesignStreamPreviewsOmitsAudio(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	designed, err := client.DesignVoice("Warm, gravelly storyteller.").
		StreamPreviews(true).
		Execute(t.Context())
	require.NoError(t, err)

	for _, preview := range designed.Previews {
		assert.Empty(preview.AudioBase64)
	}
}

func TestDesignEchoesProvidedText(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	text := "Once upon a time, in a quiet village by the sea, there lived a clockmaker who repaired far more than clocks."
	designed, err := client.DesignVoice("Warm, gravelly storyteller.").Text(text).Execute(t.Context())
	require.NoError(t, err)

	assert.Equal(text, designed.Text)
}

func TestDesignRejectsShortText(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	_, err := client.DesignVoice("Warm, gravelly storyteller.").Text("too short").Execute(t.Context())

	var apiErr *ttv.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal("invalid_prompt", apiErr.Code)
}

func TestDesignRejectsUnknownOutputFormat(t *testing.T) {
	assert := assert.New(t)

	client := newClient(t, startServer(t))

	_, err := client.DesignVoice("Warm, gravelly storyteller.").OutputFormat("mp3_1_1").Execute(t.Context())

	var apiErr *ttv.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal("invalid_output_format", apiErr.Code)
}

func TestRequestsWithoutAPIKeyAreRejected(t *testing.T) {
	assert := assert.New(t)

	baseURL := startServer(t)

	res, err := http.Post(baseURL+"/v1/text-to-voice/design", "application/json", strings.NewReader(`{"voice_description": "x"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(http.StatusUnauthorized, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	assert.NoError(err)
	assert.Contains(string(body), "invalid_api_key")
}

func TestEmptyDescriptionRejected(t *testing.T) {
	assert := assert.New(t)

	baseURL := startServer(t)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/text-to-voice/design", strings.NewReader(`{"voice_description": ""}`))
	require.NoError(t, err)
	req.Header.Set("xi-api-key", "dev-key")
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	assert := assert.New(t)

	baseURL := startServer(t)

	res, err := http.Get(baseURL + "/api/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	assert.NoError(err)
	assert.Equal("OK", string(body))
}
