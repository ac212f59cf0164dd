package widgets

import (
	"bytes"
	"strings"
)

// DefaultMaxMessages bounds a Log created with a non-positive limit.
const DefaultMaxMessages = 50

// Log is a wrapping List of messages that keeps at most MaxMessages,
// dropping the oldest, and keeps the cursor on the newest.
type Log struct {
	*List
	MaxMessages int

	partial []byte
}

// NewLog returns an empty log holding up to maxMessages lines.
func NewLog(maxMessages int) *Log {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	l := &Log{List: NewList(), MaxMessages: maxMessages}
	l.Wrap = true
	return l
}

// Append adds a message and follows the tail.
func (l *Log) Append(msg string) {
	l.items = append(l.items, Item{Label: msg, Value: msg})
	if extra := len(l.items) - l.MaxMessages; extra > 0 {
		l.items = append(l.items[:0], l.items[extra:]...)
		l.offset = max(l.offset-extra, 0)
	}
	l.MoveToEnd()
	l.touch()
}

// Messages returns the retained messages, oldest first.
func (l *Log) Messages() []string {
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.Label
	}
	return out
}

// Write appends each complete line of p, so a Log can back a slog handler.
func (l *Log) Write(p []byte) (int, error) {
	l.partial = append(l.partial, p...)
	for {
		i := bytes.IndexByte(l.partial, '\n')
		if i < 0 {
			break
		}
		if line := strings.TrimRight(string(l.partial[:i]), "\r"); line != "" {
			l.Append(line)
		}
		l.partial = l.partial[i+1:]
	}
	return len(p), nil
}
