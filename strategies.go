package tweetsmith

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied to scripted input that leaves a selection out.
const (
	DefaultTone      = "standard"
	DefaultTweetType = "random"
)

// Source produces the UserInput for one run.
type Source interface {
	Collect(ctx context.Context) (UserInput, error)
}

// Flags are the non-interactive inputs given on the command line.
type Flags struct {
	Message     string
	Tone        string
	TweetType   string
	InputFile   string
	MessageFile string
	URL         string
}

// Scripted builds UserInput from flags, taking the message from the
// command line, a file or a web page.
type Scripted struct {
	client *TweetClient
	flags  Flags
}

func (s Scripted) Collect(ctx context.Context) (UserInput, error) {
	set := 0
	for _, v := range []string{s.flags.Message, s.flags.MessageFile, s.flags.URL} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return UserInput{}, fmt.Errorf("%w: use only one of --message, --file or --url", ErrInvalidInput)
	}
	in := UserInput{
		Message:   s.flags.Message,
		Tone:      s.flags.Tone,
		TweetType: s.flags.TweetType,
	}
	switch {
	case s.flags.MessageFile != "":
		msg, err := s.client.MessageFromFiles(s.flags.MessageFile)
		if err != nil {
			return UserInput{}, err
		}
		in.Message = msg
	case s.flags.URL != "":
		msg, tl, err := MessageFromURL(ctx, s.client.httpClient, s.flags.URL)
		if err != nil {
			return UserInput{}, err
		}
		s.client.Log(RoleSystem, fmt.Sprintf("Tokens: %d -> %s", tl, s.flags.URL))
		in.Message = msg
	}
	return withDefaults(in)
}

// InputFile reads UserInput from a YAML document such as
//
//	message: We just shipped dark mode
//	tone: joyful
//	tweet_type: viral
type InputFile struct {
	path string
}

func (s InputFile) Collect(ctx context.Context) (UserInput, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return UserInput{}, err
	}
	var in UserInput
	if err := yaml.Unmarshal(b, &in); err != nil {
		return UserInput{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, s.path, err)
	}
	return withDefaults(in)
}

// GetSource picks how this run collects its input. Without any scripted
// flag the operator is asked interactively.
func (c *TweetClient) GetSource(f Flags) Source {
	if f.InputFile != "" {
		return InputFile{f.InputFile}
	} else if f.Message != "" || f.MessageFile != "" || f.URL != "" {
		return Scripted{c, f}
	} else {
		return Interactive{c}
	}
}

func withDefaults(in UserInput) (UserInput, error) {
	if in.Tone == "" {
		in.Tone = DefaultTone
	}
	if in.TweetType == "" {
		in.TweetType = DefaultTweetType
	}
	return in, in.Validate()
}
