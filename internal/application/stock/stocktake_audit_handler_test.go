package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

func auditTestStocktake() *stock.Stocktake {
	st := &stock.Stocktake{
		TakingNumber:       "STK-20260801-001",
		CreatedByID:        uuid.New(),
		CreatedByName:      "Nik",
		ApprovedByName:     "Maria",
		TotalItems:         12,
		VarianceItems:      3,
		TotalVarianceValue: decimal.NewFromFloat(-42.50),
	}
	st.ID = uuid.New()
	st.HotelID = uuid.New()
	return st
}

func TestStocktakeAuditHandler_EventTypes(t *testing.T) {
	handler := NewStocktakeAuditHandler(zap.NewNop())

	types := handler.EventTypes()

	assert.Contains(t, types, stock.EventTypeStocktakeCreated)
	assert.Contains(t, types, stock.EventTypeStocktakeApproved)
	assert.Len(t, types, 6)
}

func TestStocktakeAuditHandler_Handle(t *testing.T) {
	st := auditTestStocktake()

	tests := []struct {
		name    string
		event   shared.DomainEvent
		message string
	}{
		{"created", stock.NewStocktakeCreatedEvent(st), "stocktake created"},
		{"started", stock.NewStocktakeStartedEvent(st), "stocktake counting started"},
		{"submitted", stock.NewStocktakeSubmittedEvent(st), "stocktake submitted for approval"},
		{"approved", stock.NewStocktakeApprovedEvent(st), "stocktake approved"},
		{"rejected", stock.NewStocktakeRejectedEvent(st), "stocktake rejected"},
		{"cancelled", stock.NewStocktakeCancelledEvent(st), "stocktake cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			handler := NewStocktakeAuditHandler(zap.New(core))

			err := handler.Handle(context.Background(), tt.event)

			require.NoError(t, err)
			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.message, entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, tt.event.EventType(), fields["event_type"])
			assert.Equal(t, st.ID.String(), fields["aggregate_id"])
			assert.Equal(t, st.HotelID.String(), fields["hotel_id"])
			assert.Equal(t, st.TakingNumber, fields["taking_number"])
		})
	}
}

func TestStocktakeAuditHandler_Handle_UnexpectedEvent(t *testing.T) {
	handler := NewStocktakeAuditHandler(zap.NewNop())

	item, err := stock.NewStockItem(uuid.New(), "Guinness Keg", "DRA-001",
		stock.CategoryDraught, stock.SubcategoryNone,
		decimal.NewFromFloat(52.8), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	event := stock.NewStockItemCreatedEvent(item)

	err = handler.Handle(context.Background(), event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected event type")
}
