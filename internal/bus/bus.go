// Package bus is the in-process change notification fan-out. Publishing is
// synchronous: every registered listener runs, in registration order, before
// Publish returns. There is no queueing and no delivery across processes;
// cross-client propagation happens through the remote feed subscription.
package bus

import (
	"sync"

	"kevina/internal/domain"
)

type Kind string

const (
	CartChanged     Kind = "cart-changed"
	ProductsChanged Kind = "products-changed"
	ContentChanged  Kind = "content-changed"
)

// Event is the typed union of change notifications. Exactly one payload
// field is set, selected by Kind.
type Event struct {
	Kind     Kind
	Cart     []domain.CartItem
	Products []domain.Product
	Content  *domain.SiteContent
}

type subscriber struct {
	id int
	fn func(Event)
}

type Bus struct {
	mu   sync.Mutex
	next int
	subs []subscriber
}

func New() *Bus { return &Bus{} }

// Subscribe registers fn for all events and returns an unsubscribe func.
// Listeners are invoked in registration order.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every listener registered at call time. Listeners
// registered or removed by a listener take effect for the next publish.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		s.fn(e)
	}
}
