package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/wotr-save-editor/internal/core/domain"
)

// Notifications is a single-subscriber progress stream between a running
// pipeline and whoever displays it. It buffers one event, so the producer
// runs at most one event ahead of the consumer.
//
// The producer calls Send and, once finished, Finish. The consumer ranges
// over C and may call Close to stop listening, after which Send fails with
// domain.ErrNotificationsClosed.
type Notifications[T any] struct {
	ch     chan T
	closed chan struct{}

	closeOnce  sync.Once
	finishOnce sync.Once
}

// NewNotifications creates an open stream.
func NewNotifications[T any]() *Notifications[T] {
	return &Notifications[T]{
		ch:     make(chan T, 1),
		closed: make(chan struct{}),
	}
}

// C returns the receiving end.
func (n *Notifications[T]) C() <-chan T {
	return n.ch
}

// Send delivers v, blocking while an earlier event is still undelivered.
// Its signature matches the pipeline observer types.
func (n *Notifications[T]) Send(ctx context.Context, v T) error {
	select {
	case <-n.closed:
		return domain.ErrNotificationsClosed
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-n.closed:
		return domain.ErrNotificationsClosed
	case n.ch <- v:
		return nil
	}
}

// Finish closes the receiving end. Only the producer may call it, and not
// concurrently with Send.
func (n *Notifications[T]) Finish() {
	n.finishOnce.Do(func() { close(n.ch) })
}

// Close tells the producer nobody is listening anymore.
func (n *Notifications[T]) Close() {
	n.closeOnce.Do(func() { close(n.closed) })
}
