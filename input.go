package tweetsmith

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// LineReader reads one line of operator input after showing prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Interactive collects UserInput by asking the operator three questions.
type Interactive struct {
	client *TweetClient
}

func (s Interactive) Collect(ctx context.Context) (UserInput, error) {
	c := s.client
	lines := c.lines
	if lines == nil {
		state := liner.NewLiner()
		defer state.Close()
		state.SetCtrlCAborts(true)
		lines = state
	}

	c.Prompt(color.FgYellow, "Enter your message?")
	message, err := c.ReadMessage(lines)
	if err != nil {
		return UserInput{}, err
	}
	tone, err := c.Select(lines, color.FgBlue, "What tone do you choose?", Tones)
	if err != nil {
		return UserInput{}, err
	}
	tweetType, err := c.Select(lines, color.FgMagenta, "What tweet type do you choose?", TweetTypes)
	if err != nil {
		return UserInput{}, err
	}
	return UserInput{
		Message:   message,
		Tone:      Tones[tone],
		TweetType: TweetTypes[tweetType],
	}, nil
}

// ReadMessage prompts until the operator enters a non-blank line.
func (c *TweetClient) ReadMessage(lines LineReader) (string, error) {
	for {
		line, err := lines.Prompt("> ")
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInteractiveInput, err)
		}
		message := strings.TrimSpace(line)
		if message != "" {
			return message, nil
		}
		fmt.Fprintln(c.output, "Message cannot be empty.")
	}
}

// Select lists items under prompt and returns the zero-based index of the
// one the operator picks, by number or by name.
func (c *TweetClient) Select(lines LineReader, attr color.Attribute, prompt string, items []string) (int, error) {
	c.Prompt(attr, prompt)
	for i, item := range items {
		fmt.Fprintf(c.output, "  %2d) %s\n", i+1, item)
	}
	if state, ok := lines.(*liner.State); ok {
		state.SetCompleter(completeFrom(items))
	}
	for {
		line, err := lines.Prompt(fmt.Sprintf("[1-%d] > ", len(items)))
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInteractiveInput, err)
		}
		if i, ok := parseChoice(strings.TrimSpace(line), items); ok {
			return i, nil
		}
		fmt.Fprintf(c.output, "Please enter a number between 1 and %d or one of the names above.\n", len(items))
	}
}

func parseChoice(answer string, items []string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(items) {
			return n - 1, true
		}
		return 0, false
	}
	i := indexOf(items, strings.ToLower(answer))
	return i, i >= 0
}

func completeFrom(items []string) liner.Completer {
	return func(line string) []string {
		var out []string
		prefix := strings.ToLower(line)
		for _, item := range items {
			if strings.HasPrefix(item, prefix) {
				out = append(out, item)
			}
		}
		return out
	}
}
