package events

import (
	"context"
	"time"
)

// Publisher delivers lifecycle events to a sink. Implementations must not
// block the caller for longer than the context allows.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// ChannelPublisher hands events to an in-process worker over a channel.
type ChannelPublisher struct {
	outbox chan<- Event
}

func NewChannelPublisher(outbox chan<- Event) *ChannelPublisher {
	return &ChannelPublisher{outbox: outbox}
}

func (p *ChannelPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.outbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Worker consumes lifecycle events from a channel and persists them. It
// keeps background processing testable without wiring queue implementations.
type Worker struct {
	store Store
	inbox <-chan Event
}

func NewWorker(store Store, inbox <-chan Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}
