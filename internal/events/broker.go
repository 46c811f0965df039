// Package events carries typed change notifications from the services to
// whoever renders them: the SSE stream and the optional AMQP forwarder.
package events

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/metrics"
)

// Kind names the entity that changed.
type Kind string

const (
	KindAccount  Kind = "account"
	KindCategory Kind = "category"
	KindSource   Kind = "source"
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindBudget   Kind = "budget"
	KindReport   Kind = "report"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Change is one mutation of an owner's data.
type Change struct {
	Kind    Kind      `json:"kind"`
	Action  Action    `json:"action"`
	OwnerID uuid.UUID `json:"owner_id"`
	ID      uuid.UUID `json:"id"`
	At      time.Time `json:"at"`
}

const subscriptionBuffer = 32

// Broker fans changes out to subscriptions. Publish never blocks: a
// subscriber whose buffer is full misses the change.
type Broker struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	logger *logrus.Logger
	now    func() time.Time
}

func NewBroker(logger *logrus.Logger) *Broker {
	return &Broker{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
		now:    time.Now,
	}
}

// Subscription receives the changes matching its owner and kinds on C.
type Subscription struct {
	C <-chan Change

	ch     chan Change
	owner  uuid.UUID
	kinds  map[Kind]bool
	broker *Broker
	once   sync.Once
}

// Subscribe registers interest in the owner's changes of the given kinds.
// No kinds means every kind; uuid.Nil as owner means every owner.
func (b *Broker) Subscribe(owner uuid.UUID, kinds ...Kind) *Subscription {
	ch := make(chan Change, subscriptionBuffer)
	sub := &Subscription{
		C:      ch,
		ch:     ch,
		owner:  owner,
		kinds:  make(map[Kind]bool, len(kinds)),
		broker: b,
	}
	for _, k := range kinds {
		sub.kinds[k] = true
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	return sub
}

// Close unregisters the subscription and closes C. It is safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.broker.mu.Lock()
		delete(s.broker.subs, s)
		close(s.ch)
		s.broker.mu.Unlock()
	})
}

func (s *Subscription) matches(c Change) bool {
	if s.owner != uuid.Nil && s.owner != c.OwnerID {
		return false
	}
	return len(s.kinds) == 0 || s.kinds[c.Kind]
}

// Publish delivers the change to every matching subscription.
func (b *Broker) Publish(c Change) {
	if c.At.IsZero() {
		c.At = b.now().UTC()
	}
	metrics.ChangesPublished.WithLabelValues(string(c.Kind)).Inc()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for sub := range b.subs {
		if !sub.matches(c) {
			continue
		}
		select {
		case sub.ch <- c:
		default:
			b.logger.WithFields(logrus.Fields{
				"kind":   c.Kind,
				"action": c.Action,
			}).Warn("Broker.Publish.SubscriberFull")
		}
	}
}

// Notify is a shorthand for Publish.
func (b *Broker) Notify(kind Kind, action Action, ownerID, id uuid.UUID) {
	b.Publish(Change{Kind: kind, Action: action, OwnerID: ownerID, ID: id})
}
