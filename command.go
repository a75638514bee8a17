package tweetsmith

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X ...tweetsmith.Version=...".
var Version = "0.1.0"

// NewCommand returns the root command. opts are applied to the client
// after the command's own streams, so callers can replace them.
func NewCommand(opts ...ClientOption) *cobra.Command {
	var (
		flags          Flags
		model          string
		transcriptPath string
		showVersion    bool
	)
	cmd := &cobra.Command{
		Use:   "tweetsmith",
		Short: "Draft a tweet from a message, a tone and a tweet type",
		Long:  "tweetsmith asks for a message, a tone and a tweet type, then has a chat model write the tweet.\nRun without flags to be asked interactively.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				PrintVersion(cmd.OutOrStdout(), Version)
				return nil
			}
			clientOpts := []ClientOption{
				WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
				WithInput(cmd.InOrStdin()),
			}
			clientOpts = append(clientOpts, opts...)
			clientOpts = append(clientOpts, WithModel(model))
			if transcriptPath != "" {
				file, err := CreateTranscript(transcriptPath)
				if err != nil {
					color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
					return err
				}
				defer file.Close()
				clientOpts = append(clientOpts, WithTranscript(file))
			}
			client, err := NewTweetClient(clientOpts...)
			if err != nil {
				color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			return client.Run(cmd.Context(), flags)
		},
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		color.New(color.FgRed).Fprintln(c.ErrOrStderr(), err)
		fmt.Fprintf(c.ErrOrStderr(), "Run '%s --help' for usage.\n", c.CommandPath())
		return err
	})

	f := cmd.Flags()
	f.BoolVarP(&showVersion, "version", "v", false, "print the version and exit")
	f.StringVarP(&flags.Message, "message", "m", "", "message to base the tweet on (skips the interactive prompts)")
	f.StringVar(&flags.Tone, "tone", "", "tone of the tweet when not prompting (default \""+DefaultTone+"\")")
	f.StringVar(&flags.TweetType, "type", "", "tweet type when not prompting (default \""+DefaultTweetType+"\")")
	f.StringVarP(&flags.InputFile, "input", "i", "", "YAML file with message, tone and tweet_type")
	f.StringVarP(&flags.MessageFile, "file", "f", "", "read the message from a file or every file under a directory, or - for stdin")
	f.StringVarP(&flags.URL, "url", "u", "", "use the readable text of a web page as the message")
	f.StringVar(&model, "model", DefaultModel, "chat model to use")
	f.StringVar(&transcriptPath, "transcript", "", "record the instruction and reply to this file")
	return cmd
}
