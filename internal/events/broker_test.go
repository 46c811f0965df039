package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker() *Broker {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewBroker(logger)
}

func receive(t *testing.T, sub *Subscription) Change {
	t.Helper()
	select {
	case c := <-sub.C:
		return c
	case <-time.After(time.Second):
		t.Fatal("no change received")
		return Change{}
	}
}

func assertEmpty(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case c := <-sub.C:
		t.Fatalf("unexpected change %+v", c)
	default:
	}
}

func TestBroker_FiltersByOwnerAndKind(t *testing.T) {
	b := newTestBroker()
	owner := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())

	expenses := b.Subscribe(owner, KindExpense)
	defer expenses.Close()
	everything := b.Subscribe(owner)
	defer everything.Close()

	b.Notify(KindIncome, ActionCreated, owner, uuid.Must(uuid.NewV4()))
	b.Notify(KindExpense, ActionDeleted, other, uuid.Must(uuid.NewV4()))
	expenseID := uuid.Must(uuid.NewV4())
	b.Notify(KindExpense, ActionUpdated, owner, expenseID)

	got := receive(t, expenses)
	assert.Equal(t, KindExpense, got.Kind)
	assert.Equal(t, ActionUpdated, got.Action)
	assert.Equal(t, expenseID, got.ID)
	assert.False(t, got.At.IsZero())
	assertEmpty(t, expenses)

	assert.Equal(t, KindIncome, receive(t, everything).Kind)
	assert.Equal(t, KindExpense, receive(t, everything).Kind)
	assertEmpty(t, everything)
}

func TestBroker_AllOwners(t *testing.T) {
	b := newTestBroker()
	sub := b.Subscribe(uuid.Nil)
	defer sub.Close()

	b.Notify(KindReport, ActionCreated, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.Equal(t, KindReport, receive(t, sub).Kind)
}

func TestBroker_FullSubscriberDoesNotBlock(t *testing.T) {
	b := newTestBroker()
	owner := uuid.Must(uuid.NewV4())
	sub := b.Subscribe(owner)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriptionBuffer*2; i++ {
			b.Notify(KindIncome, ActionCreated, owner, uuid.Nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked")
	}
	assert.Len(t, sub.ch, subscriptionBuffer)
}

func TestSubscription_CloseTwice(t *testing.T) {
	b := newTestBroker()
	sub := b.Subscribe(uuid.Nil)

	sub.Close()
	sub.Close()

	_, ok := <-sub.C
	assert.False(t, ok)
	b.Notify(KindIncome, ActionCreated, uuid.Nil, uuid.Nil)
}

type recordingPublisher struct {
	mu       sync.Mutex
	keys     []string
	messages []amqp091.Publishing
	err      error
}

func (p *recordingPublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp091.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, exchange+":"+key)
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}

func TestForwarder_PublishesChanges(t *testing.T) {
	b := newTestBroker()
	pub := &recordingPublisher{}
	f := NewForwarder(pub, "finance.changes", b.logger)

	sub := b.Subscribe(uuid.Nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.Run(ctx, sub)
		close(done)
	}()

	owner := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	b.Notify(KindExpense, ActionCreated, owner, id)

	require.Eventually(t, func() bool { return pub.count() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done
	sub.Close()

	assert.Equal(t, "finance.changes:expense.created", pub.keys[0])
	assert.Equal(t, "application/json", pub.messages[0].ContentType)

	var change Change
	require.NoError(t, json.Unmarshal(pub.messages[0].Body, &change))
	assert.Equal(t, owner, change.OwnerID)
	assert.Equal(t, id, change.ID)
}

func TestForwarder_StopsWhenSubscriptionCloses(t *testing.T) {
	b := newTestBroker()
	f := NewForwarder(&recordingPublisher{err: errors.New("channel closed")}, "x", b.logger)
	sub := b.Subscribe(uuid.Nil)

	done := make(chan struct{})
	go func() {
		f.Run(context.Background(), sub)
		close(done)
	}()

	b.Notify(KindIncome, ActionCreated, uuid.Nil, uuid.Nil)
	sub.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwarder did not stop")
	}
}
