package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var invoices, clients int
	bus.Subscribe(TopicInvoicesChanged, func(Event) { invoices++ })
	bus.Subscribe(TopicInvoicesChanged, func(Event) { invoices++ })
	bus.Subscribe(TopicClientsChanged, func(Event) { clients++ })

	bus.Publish(TopicInvoicesChanged)

	assert.Equal(t, 2, invoices)
	assert.Equal(t, 0, clients)
}

func TestBusCancel(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var calls int
	sub := bus.Subscribe(TopicClientsChanged, func(Event) { calls++ })

	bus.Publish(TopicClientsChanged)
	sub.Cancel()
	sub.Cancel() // idempotent
	bus.Publish(TopicClientsChanged)

	assert.Equal(t, 1, calls)
}

func TestBusEventCarriesTopic(t *testing.T) {
	bus := NewBus(zap.NewNop())

	var got Topic
	bus.Subscribe(TopicInvoicesChanged, func(e Event) { got = e.Topic })
	bus.Publish(TopicInvoicesChanged)

	assert.Equal(t, TopicInvoicesChanged, got)
}
