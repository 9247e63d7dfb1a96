package device

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Kind names the human input a device asks for.
type Kind int

const (
	KindPin Kind = iota + 1
	KindPassphrase
	KindButton
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindPin:
		return "pin"
	case KindPassphrase:
		return "passphrase"
	case KindButton:
		return "button"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Request is a suspended device operation waiting for human input.
// The operation resumes once Continuation is invoked.
type Request struct {
	DeviceID     string
	Kind         Kind
	Message      string
	Continuation *Continuation
}

type answer struct {
	value     string
	abandoned bool
}

// Continuation resumes a suspended operation. It can be invoked once.
type Continuation struct {
	used    atomic.Bool
	answers chan<- answer
}

func newContinuation(answers chan<- answer) *Continuation {
	return &Continuation{answers: answers}
}

// Resume answers the request.
func (c *Continuation) Resume(value string) error {
	return c.send(answer{value: value})
}

// Abandon answers the request with an explicit empty answer; the operation fails.
func (c *Continuation) Abandon() error {
	return c.send(answer{abandoned: true})
}

func (c *Continuation) send(a answer) error {
	if !c.used.CompareAndSwap(false, true) {
		return ErrContinuationReused
	}
	// buffered for exactly one answer
	c.answers <- a
	return nil
}

// Prompt suspends the calling session operation until the request it publishes is answered.
func (c *Controller) Prompt(ctx context.Context, kind Kind, message string) (string, error) {
	answers := make(chan answer, 1)
	req := Request{
		DeviceID:     c.id,
		Kind:         kind,
		Message:      message,
		Continuation: newContinuation(answers),
	}
	c.logger.Debug("device requests input", zap.Stringer("kind", kind))

	select {
	case c.requests <- req:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case a := <-answers:
		if a.abandoned {
			return "", ErrInteractionAbandoned
		}
		return a.value, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Requests delivers interaction requests of this device.
func (c *Controller) Requests() <-chan Request {
	return c.requests
}
