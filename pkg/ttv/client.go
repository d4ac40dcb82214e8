// Package ttv is a client for the ElevenLabs Text-to-Voice API: design a
// voice from a text description, then persist one of the generated previews
// as a reusable voice.
//
// The flow is always two steps. DesignVoice returns candidate previews, the
// caller picks one by its generated voice ID, and CreateVoice turns that
// candidate into a permanent voice:
//
//	client, err := ttv.New(os.Getenv("ELEVENLABS_API_KEY"))
//	...
//	design, err := client.DesignVoice("An old storyteller with a warm, gravelly tone").
//		Model(ttv.ModelMultilingualTTVv2).
//		AutoGenerateText(true).
//		Execute(ctx)
//	...
//	voice, err := client.CreateVoice("Storyteller", "Warm, gravelly narrator", design.Previews[0].GeneratedVoiceID).
//		Execute(ctx)
package ttv

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("TTVClient")

const defaultBaseURL = "https://api.elevenlabs.io"

// Option configures a Client at construction time.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. a regional
// endpoint or a local stub. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to add tracing
// middleware or a proxy. The supplied client's own timeout applies as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout bounds each request when no custom HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeader adds a header to every request the client sends.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = map[string]string{}
		}
		c.headers[key] = value
	}
}

// Client talks to the Text-to-Voice endpoints. It holds only credentials and
// transport configuration, never per-request state, so a single Client is
// safe for concurrent use and any number of requests.
type Client struct {
	apiKey     string
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	timeout    time.Duration
}

// New builds a Client authenticated with the given API key. The key is the
// only required configuration; it fails with a *ConfigurationError when empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ConfigurationError{Field: "api_key", Reason: "must not be empty"}
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		if c.timeout > 0 {
			c.httpClient = &http.Client{Timeout: c.timeout}
		} else {
			c.httpClient = http.DefaultClient
		}
	}

	return c, nil
}

// DesignVoice starts a design request for the given voice description. The
// returned builder carries no connection state; configure it and call Execute.
func (c *Client) DesignVoice(voiceDescription string) *DesignVoiceRequest {
	return &DesignVoiceRequest{
		client:           c,
		voiceDescription: voiceDescription,
	}
}

// CreateVoice starts a request to persist a previously designed voice.
// generatedVoiceID must come from a preview returned by DesignVoice.
func (c *Client) CreateVoice(voiceName, voiceDescription, generatedVoiceID string) *CreateVoiceRequest {
	return &CreateVoiceRequest{
		client:           c,
		voiceName:        voiceName,
		voiceDescription: voiceDescription,
		generatedVoiceID: generatedVoiceID,
	}
}

// post sends a JSON payload and returns the response body on 2xx. Everything
// else comes back as one of the package's typed errors.
func (c *Client) post(ctx context.Context, url string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, 0, &TransportError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, res.StatusCode, &TransportError{StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, res.StatusCode, parseAPIError(res, body)
	}

	return body, res.StatusCode, nil
}
