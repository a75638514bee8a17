package tweetsmith

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Frames the progress indicator cycles through while waiting.
var Frames = []string{
	"▹▹▹▹▹",
	"▸▹▹▹▹",
	"▹▸▹▹▹",
	"▹▹▸▹▹",
	"▹▹▹▸▹",
	"▹▹▹▹▸",
	"▪▪▪▪▪",
}

// Presenter shows progress while the completion call is outstanding and
// then exactly one outcome.
type Presenter struct {
	output  io.Writer
	spinner *spinner.Spinner
	once    sync.Once
}

func NewPresenter(output io.Writer) *Presenter {
	frames := make([]string, len(Frames))
	for i, f := range Frames {
		frames[i] = color.BlueString(f)
	}
	s := spinner.New(frames, 120*time.Millisecond, spinner.WithWriter(output))
	s.Suffix = " Waiting for HTTP response..."
	return &Presenter{output: output, spinner: s}
}

// Wait starts the progress indicator.
func (p *Presenter) Wait() {
	p.spinner.Start()
}

// Succeed stops the indicator and prints the generated text.
func (p *Presenter) Succeed(text string) {
	p.once.Do(func() {
		p.spinner.Stop()
		fmt.Fprintln(p.output, "HTTP request successful")
		fmt.Fprintf(p.output, "Your content: %s\n", color.New(color.FgGreen, color.Bold).Sprint(text))
	})
}

// Fail stops the indicator and prints what went wrong. Non-2xx replies
// are reported by status code alone.
func (p *Presenter) Fail(err error) {
	p.once.Do(func() {
		p.spinner.Stop()
		fmt.Fprintln(p.output, "HTTP request failed")
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			fmt.Fprintf(p.output, "Request failed with status code: %d\n", statusErr.StatusCode)
			return
		}
		color.New(color.FgRed).Fprintln(p.output, err)
	})
}

// PrintVersion writes the version line.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintf(w, "Version: %s\n", color.HiGreenString(version))
}
