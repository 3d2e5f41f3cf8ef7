package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/ahmetcoskunkizilkaya/soulful-hub/internal/appdata"
)

var ErrStreamConsumed = errors.New("chat stream already consumed")

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type ChatMessage struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

func chatRequest(history []ChatMessage, ob *appdata.Onboarding) generateRequest {
	contents := make([]content, 0, len(history))
	for _, m := range history {
		contents = append(contents, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	return textRequest(chatInstruction(ob), contents)
}

// StreamChat sends history, whose last entry is the new user message, and
// yields reply fragments as they arrive. The request starts when the
// sequence is first ranged over; the sequence can be consumed only once.
// Stopping the range early closes the connection.
func (c *Client) StreamChat(ctx context.Context, history []ChatMessage, ob *appdata.Onboarding) iter.Seq2[string, error] {
	var used atomic.Bool
	return func(yield func(string, error) bool) {
		if used.Swap(true) {
			yield("", ErrStreamConsumed)
			return
		}
		if len(history) == 0 {
			yield("", ErrEmptyHistory)
			return
		}

		resp, err := c.post(ctx, c.stream, c.opts.Model, "streamGenerateContent?alt=sse", chatRequest(history, ob))
		if err != nil {
			yield("", err)
			return
		}
		defer resp.Body.Close()

		for data, err := range events(resp.Body) {
			if err != nil {
				yield("", err)
				return
			}
			var chunk generateResponse
			if err := json.Unmarshal(data, &chunk); err != nil {
				slog.Warn("skipping malformed stream chunk", "error", err)
				continue
			}
			text := chunk.text()
			if text == "" {
				continue
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}

// Accumulate folds a fragment sequence into one message. On error the
// text received so far is returned with it.
func Accumulate(seq iter.Seq2[string, error]) (string, error) {
	var b strings.Builder
	for text, err := range seq {
		if err != nil {
			return b.String(), err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}
