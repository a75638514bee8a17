package tweetsmith

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Log records a message under the given role in the transcript, as
// "ROLE) message".
func (c *TweetClient) Log(role string, message string) {
	fmt.Fprintf(c.transcript, "%s) %s\n", strings.ToUpper(role), message)
}

// LogOut writes to the output stream and mirrors it to the transcript.
func (c *TweetClient) LogOut(message ...any) {
	fmt.Fprintln(c.output, message...)
	fmt.Fprintln(c.transcript, message...)
}

// LogErr reports err on the error stream in red.
func (c *TweetClient) LogErr(err error) {
	color.New(color.FgRed).Fprintln(c.errorStream, err)
}

// Prompt prints a colored question ahead of a read.
func (c *TweetClient) Prompt(attr color.Attribute, prompt string) {
	color.New(attr).Fprintln(c.output, prompt)
}

// CreateTranscript opens a new transcript file at path, creating parent
// directories as needed.
func CreateTranscript(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create transcript directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}
	return file, nil
}
