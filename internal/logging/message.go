package logging

import (
	"strings"
	"time"
)

// Message is the event payload for a log message
type Message struct {
	Time       time.Time
	Level      string
	Message    string `json:"msg"`
	Attributes []Attr

	// Serial uniquely identifies the message (within the scope of the logger it
	// was emitted from). The higher the Serial number the newer the message.
	Serial uint
}

type Attr struct {
	Key   string
	Value string
}

// String renders the message and its attributes on a single line.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Message)
	for _, attr := range m.Attributes {
		b.WriteRune(' ')
		b.WriteString(attr.Key)
		b.WriteRune('=')
		b.WriteString(attr.Value)
	}
	return b.String()
}
