package stock

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// StocktakeAuditHandler writes an audit trail entry for every stocktake
// lifecycle transition. The log stream is the audit record; approvals and
// rejections carry the variance outcome so it survives later edits.
type StocktakeAuditHandler struct {
	logger *zap.Logger
}

// NewStocktakeAuditHandler creates a new audit handler for stocktake events
func NewStocktakeAuditHandler(logger *zap.Logger) *StocktakeAuditHandler {
	return &StocktakeAuditHandler{logger: logger}
}

// EventTypes returns the event types this handler is interested in
func (h *StocktakeAuditHandler) EventTypes() []string {
	return []string{
		stock.EventTypeStocktakeCreated,
		stock.EventTypeStocktakeStarted,
		stock.EventTypeStocktakeSubmitted,
		stock.EventTypeStocktakeApproved,
		stock.EventTypeStocktakeRejected,
		stock.EventTypeStocktakeCancelled,
	}
}

// Handle records an audit entry for a stocktake lifecycle event
func (h *StocktakeAuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	base := []zap.Field{
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.String("hotel_id", event.HotelID().String()),
	}

	switch e := event.(type) {
	case *stock.StocktakeCreatedEvent:
		h.logger.Info("stocktake created", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.String("created_by", e.CreatedByName),
		)...)

	case *stock.StocktakeStartedEvent:
		h.logger.Info("stocktake counting started", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.Int("total_items", e.TotalItems),
		)...)

	case *stock.StocktakeSubmittedEvent:
		h.logger.Info("stocktake submitted for approval", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.Int("total_items", e.TotalItems),
			zap.Int("variance_items", e.VarianceItems),
			zap.String("total_variance_value", e.TotalVarianceValue.String()),
		)...)

	case *stock.StocktakeApprovedEvent:
		h.logger.Info("stocktake approved", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.String("approved_by", e.ApprovedByName),
			zap.String("total_variance_value", e.TotalVarianceValue.String()),
		)...)

	case *stock.StocktakeRejectedEvent:
		h.logger.Info("stocktake rejected", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.String("reason", e.Reason),
		)...)

	case *stock.StocktakeCancelledEvent:
		h.logger.Info("stocktake cancelled", append(base,
			zap.String("taking_number", e.TakingNumber),
			zap.String("reason", e.Reason),
		)...)

	default:
		h.logger.Error("unexpected event type",
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	return nil
}

// Ensure StocktakeAuditHandler implements shared.EventHandler
var _ shared.EventHandler = (*StocktakeAuditHandler)(nil)
