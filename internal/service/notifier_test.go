package service

import "testing"

func TestNotifierDeliversPerUser(t *testing.T) {
	n := NewInProcessNotifier()

	var a, b int
	unsubA := n.Subscribe("user-a", func() { a++ })
	defer unsubA()
	unsubB := n.Subscribe("user-b", func() { b++ })
	defer unsubB()

	n.Notify("user-a")
	n.Notify("user-a")
	n.Notify("user-b")

	if a != 2 {
		t.Errorf("user-a notifications = %d, want 2", a)
	}
	if b != 1 {
		t.Errorf("user-b notifications = %d, want 1", b)
	}
}

func TestNotifierUnsubscribe(t *testing.T) {
	n := NewInProcessNotifier()

	calls := 0
	unsubscribe := n.Subscribe("user-a", func() { calls++ })

	n.Notify("user-a")
	unsubscribe()
	n.Notify("user-a")

	if calls != 1 {
		t.Errorf("notifications after unsubscribe = %d, want 1", calls)
	}
}

func TestNotifierNoSubscribers(t *testing.T) {
	n := NewInProcessNotifier()
	// Must not panic.
	n.Notify("nobody-home")
}
