package tweetsmith

import (
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// DefaultModel is the chat model every request targets unless overridden.
const DefaultModel = "gpt-3.5-turbo-0613"

// InstructionTemplate is filled with tone, tweet type and message, in that order.
const InstructionTemplate = "Create a tweet for Twitter with an %s tone and a %s tweet type based on the following text: %s"

// Tones are the stylistic registers the operator can pick from.
var Tones = []string{
	"emotional",
	"energetic",
	"professional",
	"funny",
	"standard",
	"friendly",
	"empathetic",
	"enthusiastic",
	"inspirational",
	"thoughtful",
	"joyful",
	"humble",
}

// TweetTypes are the kinds of tweet the operator can ask for.
var TweetTypes = []string{
	"question",
	"viral",
	"helpful tip",
	"fun fact",
	"educational",
	"joke",
	"random",
}

// UserInput is everything the operator supplies for a single tweet.
type UserInput struct {
	Message   string `yaml:"message"`
	Tone      string `yaml:"tone"`
	TweetType string `yaml:"tweet_type"`
}

// Validate reports ErrInvalidInput when the message is blank or either
// label is not one of the known choices.
func (u UserInput) Validate() error {
	if strings.TrimSpace(u.Message) == "" {
		return fmt.Errorf("%w: message must not be empty", ErrInvalidInput)
	}
	if indexOf(Tones, u.Tone) < 0 {
		return fmt.Errorf("%w: unknown tone %q (choose one of: %s)", ErrInvalidInput, u.Tone, strings.Join(Tones, ", "))
	}
	if indexOf(TweetTypes, u.TweetType) < 0 {
		return fmt.Errorf("%w: unknown tweet type %q (choose one of: %s)", ErrInvalidInput, u.TweetType, strings.Join(TweetTypes, ", "))
	}
	return nil
}

// Instruction renders the natural-language prompt sent to the model.
// Values are substituted verbatim.
func Instruction(in UserInput) string {
	return fmt.Sprintf(InstructionTemplate, in.Tone, in.TweetType, in.Message)
}

// NewCompletionRequest wraps the instruction for in as the single user
// message of a chat completion request for model.
func NewCompletionRequest(model string, in UserInput) openai.ChatCompletionRequest {
	if model == "" {
		model = DefaultModel
	}
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: Instruction(in),
			},
		},
	}
}

func indexOf(items []string, item string) int {
	for i, v := range items {
		if v == item {
			return i
		}
	}
	return -1
}
