package stock

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// Aggregate type constant for Stocktake
const AggregateTypeStocktake = "Stocktake"

// Stocktake event type constants
const (
	EventTypeStocktakeCreated   = "StocktakeCreated"
	EventTypeStocktakeStarted   = "StocktakeStarted"
	EventTypeStocktakeSubmitted = "StocktakeSubmitted"
	EventTypeStocktakeApproved  = "StocktakeApproved"
	EventTypeStocktakeRejected  = "StocktakeRejected"
	EventTypeStocktakeCancelled = "StocktakeCancelled"
)

// StocktakeCreatedEvent is raised when a stocktake is created
type StocktakeCreatedEvent struct {
	shared.BaseDomainEvent
	StocktakeID   uuid.UUID `json:"stocktake_id"`
	TakingNumber  string    `json:"taking_number"`
	CreatedByID   uuid.UUID `json:"created_by_id"`
	CreatedByName string    `json:"created_by_name"`
}

// NewStocktakeCreatedEvent creates a new StocktakeCreatedEvent
func NewStocktakeCreatedEvent(st *Stocktake) *StocktakeCreatedEvent {
	return &StocktakeCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStocktakeCreated, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:     st.ID,
		TakingNumber:    st.TakingNumber,
		CreatedByID:     st.CreatedByID,
		CreatedByName:   st.CreatedByName,
	}
}

// EventType returns the event type name
func (e *StocktakeCreatedEvent) EventType() string {
	return EventTypeStocktakeCreated
}

// StocktakeStartedEvent is raised when counting starts
type StocktakeStartedEvent struct {
	shared.BaseDomainEvent
	StocktakeID  uuid.UUID `json:"stocktake_id"`
	TakingNumber string    `json:"taking_number"`
	TotalItems   int       `json:"total_items"`
}

// NewStocktakeStartedEvent creates a new StocktakeStartedEvent
func NewStocktakeStartedEvent(st *Stocktake) *StocktakeStartedEvent {
	return &StocktakeStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStocktakeStarted, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:     st.ID,
		TakingNumber:    st.TakingNumber,
		TotalItems:      st.TotalItems,
	}
}

// EventType returns the event type name
func (e *StocktakeStartedEvent) EventType() string {
	return EventTypeStocktakeStarted
}

// StocktakeSubmittedEvent is raised when a stocktake is submitted for approval
type StocktakeSubmittedEvent struct {
	shared.BaseDomainEvent
	StocktakeID        uuid.UUID       `json:"stocktake_id"`
	TakingNumber       string          `json:"taking_number"`
	TotalItems         int             `json:"total_items"`
	VarianceItems      int             `json:"variance_items"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`
}

// NewStocktakeSubmittedEvent creates a new StocktakeSubmittedEvent
func NewStocktakeSubmittedEvent(st *Stocktake) *StocktakeSubmittedEvent {
	return &StocktakeSubmittedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeStocktakeSubmitted, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:        st.ID,
		TakingNumber:       st.TakingNumber,
		TotalItems:         st.TotalItems,
		VarianceItems:      st.VarianceItems,
		TotalVarianceValue: st.TotalVarianceValue,
	}
}

// EventType returns the event type name
func (e *StocktakeSubmittedEvent) EventType() string {
	return EventTypeStocktakeSubmitted
}

// StocktakeApprovedEvent is raised when a stocktake is approved
type StocktakeApprovedEvent struct {
	shared.BaseDomainEvent
	StocktakeID        uuid.UUID       `json:"stocktake_id"`
	TakingNumber       string          `json:"taking_number"`
	ApprovedByID       uuid.UUID       `json:"approved_by_id"`
	ApprovedByName     string          `json:"approved_by_name"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`
}

// NewStocktakeApprovedEvent creates a new StocktakeApprovedEvent
func NewStocktakeApprovedEvent(st *Stocktake) *StocktakeApprovedEvent {
	e := &StocktakeApprovedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeStocktakeApproved, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:        st.ID,
		TakingNumber:       st.TakingNumber,
		ApprovedByName:     st.ApprovedByName,
		TotalVarianceValue: st.TotalVarianceValue,
	}
	if st.ApprovedByID != nil {
		e.ApprovedByID = *st.ApprovedByID
	}
	return e
}

// EventType returns the event type name
func (e *StocktakeApprovedEvent) EventType() string {
	return EventTypeStocktakeApproved
}

// StocktakeRejectedEvent is raised when a stocktake is rejected
type StocktakeRejectedEvent struct {
	shared.BaseDomainEvent
	StocktakeID  uuid.UUID `json:"stocktake_id"`
	TakingNumber string    `json:"taking_number"`
	Reason       string    `json:"reason"`
}

// NewStocktakeRejectedEvent creates a new StocktakeRejectedEvent
func NewStocktakeRejectedEvent(st *Stocktake) *StocktakeRejectedEvent {
	return &StocktakeRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStocktakeRejected, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:     st.ID,
		TakingNumber:    st.TakingNumber,
		Reason:          st.ApprovalNote,
	}
}

// EventType returns the event type name
func (e *StocktakeRejectedEvent) EventType() string {
	return EventTypeStocktakeRejected
}

// StocktakeCancelledEvent is raised when a stocktake is cancelled
type StocktakeCancelledEvent struct {
	shared.BaseDomainEvent
	StocktakeID  uuid.UUID `json:"stocktake_id"`
	TakingNumber string    `json:"taking_number"`
	Reason       string    `json:"reason"`
}

// NewStocktakeCancelledEvent creates a new StocktakeCancelledEvent
func NewStocktakeCancelledEvent(st *Stocktake) *StocktakeCancelledEvent {
	return &StocktakeCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStocktakeCancelled, st.ID, AggregateTypeStocktake, st.HotelID),
		StocktakeID:     st.ID,
		TakingNumber:    st.TakingNumber,
		Reason:          st.Remark,
	}
}

// EventType returns the event type name
func (e *StocktakeCancelledEvent) EventType() string {
	return EventTypeStocktakeCancelled
}
