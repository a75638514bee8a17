package tweetsmith

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/cixtor/readability"
)

// MessageFromFile returns the trimmed contents of path. A path of "-"
// reads from input instead.
func MessageFromFile(path string, input io.Reader) (message string, tokenLen int, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(input)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", 0, err
	}
	message = strings.TrimSpace(string(data))
	return message, GuessTokens(message), nil
}

// MessageFromFiles loads the message from path. A directory is walked and
// every non-hidden file is added under a "--name--" header; per-file and
// total token estimates go to the transcript.
func (c *TweetClient) MessageFromFiles(path string) (string, error) {
	info, err := os.Stat(path)
	if path == "-" || (err == nil && !info.IsDir()) {
		message, tl, err := MessageFromFile(path, c.input)
		if err != nil {
			return "", err
		}
		c.Log(RoleSystem, fmt.Sprintf("Tokens: %d -> %s", tl, path))
		return message, nil
	}
	if err != nil {
		return "", err
	}

	var message strings.Builder
	totalTokenLength := 0
	root := path
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		// Skip hidden files and directories
		if path != root && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		m, tl, err := MessageFromFile(path, nil)
		if err != nil {
			return err
		}
		c.Log(RoleSystem, fmt.Sprintf("Tokens: %d -> %s", tl, path))
		fmt.Fprintf(&message, "--%s--\n%s\n", path, m)
		totalTokenLength += tl
		return nil
	})
	if err != nil {
		return "", err
	}
	c.Log(RoleSystem, fmt.Sprintf("Estimated Total Tokens: %d", totalTokenLength))
	return strings.TrimSpace(message.String()), nil
}

// MessageFromURL fetches address and returns the readable text of the page.
func MessageFromURL(ctx context.Context, hc *http.Client, address string) (message string, tokenLen int, err error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return "", 0, err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, fmt.Errorf("fetching %s: status code %d", address, resp.StatusCode)
	}
	r := readability.New()
	article, err := r.Parse(resp.Body, address)
	if err != nil {
		return "", 0, fmt.Errorf("reading %s: %w", address, err)
	}
	message = strings.Join(strings.Fields(article.TextContent), " ")
	return message, GuessTokens(message), nil
}

func GuessTokens(input string) int {
	return len(input) / 4
}
