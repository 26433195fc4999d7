package web

import "sync"

// Flash is one transient notification rendered on the next page load,
// the server-rendered stand-in for a toast.
type Flash struct {
	Kind string // "success" or "error"
	Text string
}

// flashNotifier queues notifications from the client core until a page
// render drains them.
type flashNotifier struct {
	mu   sync.Mutex
	msgs []Flash
}

func newFlashNotifier() *flashNotifier {
	return &flashNotifier{}
}

func (n *flashNotifier) Success(msg string) { n.push("success", msg) }

func (n *flashNotifier) Error(msg string) { n.push("error", msg) }

func (n *flashNotifier) push(kind, text string) {
	n.mu.Lock()
	n.msgs = append(n.msgs, Flash{Kind: kind, Text: text})
	n.mu.Unlock()
}

// drain returns the queued notifications and clears the queue.
func (n *flashNotifier) drain() []Flash {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := n.msgs
	n.msgs = nil
	return msgs
}
