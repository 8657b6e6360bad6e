package service

import "sync"

// ChangeNotifier is the record-change signal between the write path and
// anything holding derived state. A notification carries no payload; it
// only means "rows changed for this user, re-fetch". The transport is
// an implementation detail: in-process fan-out here, but a push channel
// or polling loop satisfies the same contract.
type ChangeNotifier interface {
	// Notify signals that records changed for the user.
	Notify(userID string)
	// Subscribe registers a callback for the user's changes and returns
	// an unsubscribe func. Callbacks run synchronously on the notifying
	// goroutine and must not block.
	Subscribe(userID string, fn func()) (unsubscribe func())
}

type inProcessNotifier struct {
	mu   sync.RWMutex
	subs map[string]map[int]func()
	next int
}

// NewInProcessNotifier creates a notifier that fans out within the
// process.
func NewInProcessNotifier() ChangeNotifier {
	return &inProcessNotifier{subs: make(map[string]map[int]func())}
}

func (n *inProcessNotifier) Notify(userID string) {
	n.mu.RLock()
	fns := make([]func(), 0, len(n.subs[userID]))
	for _, fn := range n.subs[userID] {
		fns = append(fns, fn)
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

func (n *inProcessNotifier) Subscribe(userID string, fn func()) func() {
	n.mu.Lock()
	if n.subs[userID] == nil {
		n.subs[userID] = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[userID][id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.subs[userID], id)
		if len(n.subs[userID]) == 0 {
			delete(n.subs, userID)
		}
		n.mu.Unlock()
	}
}
