// Package tweetsmith drafts a single tweet with a hosted chat model from a
// message, a tone and a tweet type.
package tweetsmith

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded into the environment before the credential lookup.
const DotEnvFile = ".env"

// Main runs the command with args and returns the process exit code. A
// .env file in the working directory is loaded first if present.
func Main(args []string) int {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return 1
	}
	cmd := NewCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

// LoadDotEnv adds the variables in path to the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// Run collects the input, asks for the tweet and presents the outcome.
// Every error is reported once before it is returned.
func (c *TweetClient) Run(ctx context.Context, f Flags) error {
	in, err := c.GetSource(f).Collect(ctx)
	if err != nil {
		c.LogErr(err)
		return err
	}
	if path := c.TranscriptPath(); path != "" {
		defer fmt.Fprintf(c.output, "Transcript written to %s\n", path)
	}
	p := NewPresenter(c.output)
	p.Wait()
	text, err := c.Generate(ctx, in)
	if err != nil {
		p.Fail(err)
		return err
	}
	p.Succeed(text)
	return nil
}
