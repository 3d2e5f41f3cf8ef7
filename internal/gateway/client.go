// Package gateway talks to the Gemini generative language REST API. It
// builds the hub's prompts, runs single-shot generations, streams chat
// replies and requests text-to-speech audio. Callers get errors back;
// turning them into friendly text is the advisor's job.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/config"
)

var (
	ErrNoAPIKey      = errors.New("gemini API key not configured")
	ErrEmptyResponse = errors.New("empty response from gemini")
	ErrNoAudio       = errors.New("no audio data received from gemini")
	ErrEmptyHistory  = errors.New("chat history is empty")
)

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini returned %d: %s", e.StatusCode, e.Body)
}

type Options struct {
	APIKey   string
	BaseURL  string
	Model    string
	TTSModel string
	Voice    string
	Timeout  time.Duration
}

// Client holds two HTTP clients. Single-shot calls are bounded by
// Options.Timeout end to end; streams only wait that long for the response
// headers and otherwise run until the caller's ctx ends.
type Client struct {
	opts   Options
	client *http.Client
	stream *http.Client
}

func New(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.TTSModel == "" {
		opts.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if opts.Voice == "" {
		opts.Voice = "Kore"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = opts.Timeout
	return &Client{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		stream: &http.Client{Transport: transport},
	}
}

// FromConfig builds a Client from the process configuration.
func FromConfig(cfg *config.Config) *Client {
	return New(Options{
		APIKey:   cfg.GeminiAPIKey,
		BaseURL:  cfg.GeminiAPIURL,
		Model:    cfg.GeminiModel,
		TTSModel: cfg.GeminiTTSModel,
		Voice:    cfg.GeminiVoice,
		Timeout:  cfg.AITimeout,
	})
}

// post sends req to {base}/models/{model}:{method} through hc. The caller
// closes the body of a successful response.
func (c *Client) post(ctx context.Context, hc *http.Client, model, method string, req generateRequest) (*http.Response, error) {
	if c.opts.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := c.opts.BaseURL + "/models/" + model + ":" + method
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.opts.APIKey)

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	return resp, nil
}

func (c *Client) generate(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	resp, err := c.post(ctx, c.client, model, "generateContent", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	return &out, nil
}

// generateText runs a single text generation with the hub's sampling
// settings.
func (c *Client) generateText(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.generate(ctx, c.opts.Model, textRequest(system, []content{userContent(prompt)}))
	if err != nil {
		return "", err
	}
	text := resp.text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
