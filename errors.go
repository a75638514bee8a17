package tweetsmith

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrMissingCredential = errors.New("missing credential: set " + EnvAPIKey + " env var or pass a token explicitly")
	ErrInteractiveInput  = errors.New("interactive input could not be completed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDecode            = errors.New("could not decode completion response")
	ErrNoChoices         = fmt.Errorf("%w: response contained no choices", ErrDecode)
)

// StatusError reports a completion request answered with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status code: %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status code: %d (%s)", e.StatusCode, e.Message)
}

// NetworkError wraps a failure to reach the completion endpoint at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network failure: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// classifyError sorts an error returned by the openai client into one of
// the error kinds the command knows how to report. Errors raised before
// anything was sent are returned as they are.
func classifyError(err error) error {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &StatusError{StatusCode: reqErr.HTTPStatusCode}
	}
	if errors.Is(err, openai.ErrChatCompletionInvalidModel) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &NetworkError{Err: err}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return err
}
