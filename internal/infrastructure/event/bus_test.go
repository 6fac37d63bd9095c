package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

type recordingHandler struct {
	mu       sync.Mutex
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler blew up")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = append(h.received, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.received)
}

func newItemCreatedEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	item, err := stock.NewStockItem(
		uuid.New(), "Guinness Keg", "DRA-001",
		stock.CategoryDraught, stock.SubcategoryNone,
		decimal.NewFromFloat(52.8), decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)
	events := item.GetDomainEvents()
	require.Len(t, events, 1)
	return events[0]
}

func TestInMemoryEventBus_PublishDispatchesToSubscribedHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{stock.EventTypeStockItemCreated}}
	bus.Subscribe(handler)

	err := bus.Publish(context.Background(), newItemCreatedEvent(t))
	require.NoError(t, err)

	assert.Equal(t, 1, handler.count())
	assert.Equal(t, stock.EventTypeStockItemCreated, handler.received[0].EventType())
}

func TestInMemoryEventBus_WildcardHandlerReceivesAllEvents(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newItemCreatedEvent(t)))
	require.NoError(t, bus.Publish(context.Background(), newItemCreatedEvent(t)))

	assert.Equal(t, 2, handler.count())
}

func TestInMemoryEventBus_UnsubscribedHandlerStopsReceiving(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{stock.EventTypeStockItemCreated}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newItemCreatedEvent(t)))

	assert.Equal(t, 0, handler.count())
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	failing := &recordingHandler{
		types: []string{stock.EventTypeStockItemCreated},
		err:   errors.New("boom"),
	}
	healthy := &recordingHandler{types: []string{stock.EventTypeStockItemCreated}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), newItemCreatedEvent(t))
	require.NoError(t, err)

	assert.Equal(t, 1, healthy.count())
}

func TestInMemoryEventBus_HandlerPanicIsRecovered(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := &recordingHandler{
		types:  []string{stock.EventTypeStockItemCreated},
		panics: true,
	}
	healthy := &recordingHandler{types: []string{stock.EventTypeStockItemCreated}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NotPanics(t, func() {
		_ = bus.Publish(context.Background(), newItemCreatedEvent(t))
	})
	assert.Equal(t, 1, healthy.count())
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Stop(context.Background()))
}
