package tweetsmith

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Environment variable names
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvBaseURL = "OPENAI_BASE_URL"
)

// Role constants that represent the role of the message sender
const (
	RoleUser   = "user"
	RoleBot    = "assistant"
	RoleSystem = "system"
)

// TweetClient turns one UserInput into one generated tweet. It owns the
// completion client, the terminal streams and the transcript.
type TweetClient struct {
	client        *openai.Client
	token         string
	baseURL       string
	httpClient    *http.Client
	model         string
	input         io.Reader
	lines         LineReader
	output        io.Writer
	errorStream   io.Writer
	transcript    io.Writer
	fixedResponse string
}

// ClientOption configures a TweetClient.
type ClientOption func(*TweetClient) *TweetClient

// WithToken uses the provided token instead of looking one up in the environment.
func WithToken(token string) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.token = token
		return c
	}
}

// WithBaseURL points the client at a different OpenAI-compatible API root,
// e.g. "http://127.0.0.1:8080/v1".
func WithBaseURL(baseURL string) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.baseURL = baseURL
		return c
	}
}

// WithHTTPClient replaces the transport used for the completion call.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.httpClient = hc
		return c
	}
}

// WithModel overrides DefaultModel.
func WithModel(model string) ClientOption {
	return func(c *TweetClient) *TweetClient {
		if model != "" {
			c.model = model
		}
		return c
	}
}

// WithOutput sets where results and errors are written.
func WithOutput(output, err io.Writer) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.output = output
		c.errorStream = err
		return c
	}
}

// WithInput sets the reader scripted sources such as "-" read from.
func WithInput(input io.Reader) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.input = input
		return c
	}
}

// WithLineReader supplies the prompt reader for interactive input. Without
// it, an interactive run opens a liner session on the terminal.
func WithLineReader(lines LineReader) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.lines = lines
		return c
	}
}

// WithTranscript records every instruction, reply and failure to audit.
func WithTranscript(audit io.Writer) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.transcript = audit
		return c
	}
}

// WithFixedResponse skips the API call and returns response instead.
func WithFixedResponse(response string) ClientOption {
	return func(c *TweetClient) *TweetClient {
		c.fixedResponse = response
		return c
	}
}

// NewTweetClient applies opts and resolves the credential. It fails with
// ErrMissingCredential before anything is sent when no token is available.
func NewTweetClient(opts ...ClientOption) (*TweetClient, error) {
	c := &TweetClient{
		model:       DefaultModel,
		input:       os.Stdin,
		output:      os.Stdout,
		errorStream: os.Stderr,
		transcript:  io.Discard,
	}
	for _, opt := range opts {
		c = opt(c)
	}
	if c.token == "" {
		token, err := ResolveCredential(os.LookupEnv)
		if err != nil {
			return nil, err
		}
		c.token = token
	}
	if c.baseURL == "" {
		c.baseURL = os.Getenv(EnvBaseURL)
	}
	config := openai.DefaultConfig(c.token)
	if c.baseURL != "" {
		config.BaseURL = strings.TrimSuffix(c.baseURL, "/")
	}
	hc := &http.Client{}
	if c.httpClient != nil {
		copied := *c.httpClient
		hc = &copied
	}
	hc.Transport = statusTransport{base: hc.Transport}
	config.HTTPClient = hc
	c.client = openai.NewClientWithConfig(config)
	return c, nil
}

// ResolveCredential reads the API key through lookup. A blank value counts
// as missing.
func ResolveCredential(lookup func(string) (string, bool)) (string, error) {
	token, ok := lookup(EnvAPIKey)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingCredential
	}
	return strings.TrimSpace(token), nil
}

// Generate sends the instruction built from in and returns the first
// choice's content. Errors are one of *StatusError, *NetworkError,
// ErrDecode or ErrInvalidInput for a model the endpoint does not serve.
func (c *TweetClient) Generate(ctx context.Context, in UserInput) (string, error) {
	req := NewCompletionRequest(c.model, in)
	c.Log(RoleUser, req.Messages[0].Content)
	if c.fixedResponse != "" {
		c.Log(RoleBot, c.fixedResponse)
		return c.fixedResponse, nil
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		err = classifyError(err)
		c.Log(RoleSystem, err.Error())
		return "", err
	}
	text, err := FirstChoice(resp)
	if err != nil {
		c.Log(RoleSystem, err.Error())
		return "", err
	}
	c.Log(RoleBot, text)
	return text, nil
}

// FirstChoice returns the content of the first choice in resp unchanged.
func FirstChoice(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// TranscriptPath names the file the transcript is written to, or "" when it
// is not a file.
func (c *TweetClient) TranscriptPath() string {
	if file, ok := c.transcript.(*os.File); ok {
		return file.Name()
	}
	return ""
}

// statusTransport fails 1xx and 3xx replies with a *StatusError; the openai
// client itself only rejects 4xx and 5xx.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || (resp.StatusCode >= 300 && resp.StatusCode < 400) {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	return resp, nil
}
