package gateway

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"iter"
	"log/slog"
	"strings"
)

const maxEventSize = 1 << 20

type textChunk struct {
	Text string `json:"text"`
}

// SSEFrame encodes one chat fragment as a server-sent event:
// data: {"text":"..."}\n\n
func SSEFrame(text string) []byte {
	var buf bytes.Buffer
	buf.WriteString("data: ")
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// a string always encodes
	_ = enc.Encode(textChunk{Text: text})
	buf.Truncate(buf.Len() - 1)
	buf.WriteString("\n\n")
	return buf.Bytes()
}

// ParseSSE decodes a stream of SSEFrame events back into text fragments.
// Events that are not valid chunks are skipped with a warning.
func ParseSSE(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for data, err := range events(r) {
			if err != nil {
				yield("", err)
				return
			}
			var chunk textChunk
			if err := json.Unmarshal(data, &chunk); err != nil {
				slog.Warn("skipping malformed stream chunk", "error", err)
				continue
			}
			if chunk.Text == "" {
				continue
			}
			if !yield(chunk.Text, nil) {
				return
			}
		}
	}
}

// events yields the data payload of each event in r. Multi-line data is
// joined with newlines; comments and other fields are ignored.
func events(r io.Reader) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxEventSize)

		var data []string
		flush := func() bool {
			if len(data) == 0 {
				return true
			}
			payload := []byte(strings.Join(data, "\n"))
			data = data[:0]
			return yield(payload, nil)
		}

		for sc.Scan() {
			line := strings.TrimSuffix(sc.Text(), "\r")
			if line == "" {
				if !flush() {
					return
				}
				continue
			}
			field, value, _ := strings.Cut(line, ":")
			if field != "data" {
				continue
			}
			data = append(data, strings.TrimPrefix(value, " "))
		}
		if err := sc.Err(); err != nil {
			yield(nil, err)
			return
		}
		flush()
	}
}
