// Package responder computes the agent's reply text for an inbound message.
// The interface is deliberately narrow so a real response strategy (an LLM,
// a rules engine) can replace the canned one without touching HTTP handling.
package responder

import (
	"context"
	"fmt"
)

// Message is one inbound conversation message from the platform.
type Message struct {
	// Text is the message content. May be empty.
	Text string
	// UserID identifies the sender when the platform provides one.
	UserID string
	// UserName is the sender's display name when provided.
	UserName string
}

// Responder turns an inbound message into reply text.
type Responder interface {
	Reply(ctx context.Context, msg Message) (string, error)
}

const cannedReplyFormat = "Haruhi Agent here — I received your message: %s"

// Canned is a Responder that acknowledges every message with a fixed
// template. It has no state and is safe for concurrent use.
type Canned struct{}

// NewCanned returns the canned Responder.
func NewCanned() *Canned {
	return &Canned{}
}

// Reply echoes the message text inside the fixed acknowledgment. An absent
// message yields the template with an empty substitution rather than an error.
func (c *Canned) Reply(_ context.Context, msg Message) (string, error) {
	return fmt.Sprintf(cannedReplyFormat, msg.Text), nil
}
