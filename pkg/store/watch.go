package store

import (
	"context"
)

// Op names the mutation that produced a notification.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpAssign Op = "assign"
	OpMove   Op = "move"
	OpView   Op = "view"
)

// Notification is emitted by Watch after a mutation completes. The event id
// is empty for view-state changes.
type Notification struct {
	Op Op
	ID string
}

// Watch streams mutation notifications until ctx is cancelled. Callers should
// drain the returned channel; if the consumer is not ready a notification is
// dropped rather than blocking the writer, and a subsequent refresh will pick
// up the changes. The channel is closed once ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan Notification, error) {
	ch := make(chan Notification, 64)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	go func() {
		<-ctx.Done()
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (s *Store) notify(op Op, id string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- Notification{Op: op, ID: id}:
		default:
		}
	}
}
