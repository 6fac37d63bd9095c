package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// StocktakeStatus represents the status of a stocktake document
type StocktakeStatus string

const (
	StocktakeStatusDraft           StocktakeStatus = "DRAFT"
	StocktakeStatusCounting        StocktakeStatus = "COUNTING"
	StocktakeStatusPendingApproval StocktakeStatus = "PENDING_APPROVAL"
	StocktakeStatusApproved        StocktakeStatus = "APPROVED"
	StocktakeStatusRejected        StocktakeStatus = "REJECTED"
	StocktakeStatusCancelled       StocktakeStatus = "CANCELLED"
)

// IsValid checks if the status is a valid StocktakeStatus
func (s StocktakeStatus) IsValid() bool {
	switch s {
	case StocktakeStatusDraft, StocktakeStatusCounting, StocktakeStatusPendingApproval,
		StocktakeStatusApproved, StocktakeStatusRejected, StocktakeStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of StocktakeStatus
func (s StocktakeStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s StocktakeStatus) CanTransitionTo(target StocktakeStatus) bool {
	switch s {
	case StocktakeStatusDraft:
		return target == StocktakeStatusCounting || target == StocktakeStatusCancelled
	case StocktakeStatusCounting:
		return target == StocktakeStatusPendingApproval || target == StocktakeStatusCancelled
	case StocktakeStatusPendingApproval:
		return target == StocktakeStatusApproved || target == StocktakeStatusRejected
	case StocktakeStatusApproved, StocktakeStatusRejected, StocktakeStatusCancelled:
		return false // Terminal states
	}
	return false
}

// StocktakeLine is one item on a stocktake. It snapshots the item's
// unit configuration and valuation cost at the moment it is added, so
// later item edits never change this stocktake's numbers.
type StocktakeLine struct {
	ID          uuid.UUID
	StocktakeID uuid.UUID
	ItemID      uuid.UUID
	ItemName    string
	ItemCode    string

	// frozen configuration snapshot
	Category      Category
	Subcategory   MineralSubcategory
	UOM           decimal.Decimal
	SizeValueML   decimal.Decimal
	ServingSizeML decimal.Decimal
	ValuationCost decimal.NullDecimal

	Movements      Movements
	CountedFull    decimal.Decimal
	CountedPartial decimal.Decimal
	Counted        bool

	Derived  LineDerived
	Cocktail CocktailUsage
	Remark   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStocktakeLine snapshots an item onto a stocktake. The item keeps
// evolving independently; this line does not.
func NewStocktakeLine(stocktakeID uuid.UUID, item *StockItem, openingQty decimal.Decimal) *StocktakeLine {
	now := time.Now()
	return &StocktakeLine{
		ID:            uuid.New(),
		StocktakeID:   stocktakeID,
		ItemID:        item.ID,
		ItemName:      item.Name,
		ItemCode:      item.Code,
		Category:      item.Category,
		Subcategory:   item.Subcategory,
		UOM:           item.UOM,
		SizeValueML:   item.SizeValueML,
		ServingSizeML: item.ServingSizeML,
		ValuationCost: item.ValuationCost,
		Movements:     Movements{OpeningQty: openingQty},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Spec resolves the line's frozen unit configuration.
func (l *StocktakeLine) Spec() (UnitSpec, error) {
	return ResolveUnitSpec(l.Category, l.Subcategory, l.UOM, l.SizeValueML, l.ServingSizeML)
}

// SetMovements replaces the line's movement fields and recomputes the
// derived state if the line was already counted.
func (l *StocktakeLine) SetMovements(m Movements) error {
	l.Movements = m
	l.UpdatedAt = time.Now()
	if l.Counted {
		return l.recompute()
	}
	return nil
}

// RecordCount records the physical count in display units and derives
// quantities, values and display pairs.
func (l *StocktakeLine) RecordCount(full, partial decimal.Decimal, remark string) error {
	if full.IsNegative() || partial.IsNegative() {
		return shared.NewDomainError("INVALID_QUANTITY", "Counted quantities cannot be negative")
	}

	l.CountedFull = full
	l.CountedPartial = partial
	l.Counted = true
	l.Remark = remark
	l.UpdatedAt = time.Now()

	return l.recompute()
}

func (l *StocktakeLine) recompute() error {
	spec, err := l.Spec()
	if err != nil {
		return err
	}

	derived, err := ComputeLine(LineInputs{
		Spec:           spec,
		Movements:      l.Movements,
		CountedFull:    l.CountedFull,
		CountedPartial: l.CountedPartial,
		ValuationCost:  l.ValuationCost,
	})
	if err != nil {
		return err
	}

	l.Derived = derived
	return nil
}

// SetCocktailUsage attaches the cocktail draw-down overlay. It is
// informational only and never touches the derived quantities.
func (l *StocktakeLine) SetCocktailUsage(usage CocktailUsage) {
	l.Cocktail = usage
	l.UpdatedAt = time.Now()
}

// HasVariance returns true if the counted quantity differs from expected
func (l *StocktakeLine) HasVariance() bool {
	return l.Counted && !l.Derived.VarianceQty.IsZero()
}

// Stocktake represents a full-bar inventory count for one hotel.
// It is the aggregate root for stocktake operations.
type Stocktake struct {
	shared.HotelAggregateRoot
	TakingNumber   string
	Status         StocktakeStatus
	TakingDate     time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	ApprovedAt     *time.Time
	ApprovedByID   *uuid.UUID
	ApprovedByName string
	CreatedByID    uuid.UUID
	CreatedByName  string

	TotalItems    int
	CountedItems  int
	VarianceItems int

	TotalValue         decimal.Decimal // sum of expected_value over lines
	TotalCountedValue  decimal.Decimal
	TotalVarianceValue decimal.Decimal

	ApprovalNote string
	Remark       string
	Lines        []StocktakeLine
}

// NewStocktake creates a new stocktake document
func NewStocktake(hotelID uuid.UUID, takingNumber string, takingDate time.Time, createdByID uuid.UUID, createdByName string) (*Stocktake, error) {
	if hotelID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_HOTEL", "Hotel ID cannot be empty")
	}
	if takingNumber == "" {
		return nil, shared.NewDomainError("INVALID_TAKING_NUMBER", "Taking number cannot be empty")
	}
	if createdByID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CREATOR", "Creator ID cannot be empty")
	}

	st := &Stocktake{
		HotelAggregateRoot: shared.NewHotelAggregateRoot(hotelID),
		TakingNumber:       takingNumber,
		Status:             StocktakeStatusDraft,
		TakingDate:         takingDate,
		CreatedByID:        createdByID,
		CreatedByName:      createdByName,
		TotalValue:         decimal.Zero,
		TotalCountedValue:  decimal.Zero,
		TotalVarianceValue: decimal.Zero,
		Lines:              make([]StocktakeLine, 0),
	}

	st.AddDomainEvent(NewStocktakeCreatedEvent(st))

	return st, nil
}

// AddLine snapshots an item onto the stocktake
func (st *Stocktake) AddLine(item *StockItem, openingQty decimal.Decimal) error {
	if st.Status != StocktakeStatusDraft {
		return shared.NewDomainError("INVALID_STATUS", "Can only add lines in DRAFT status")
	}
	if item == nil || item.ID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Item cannot be empty")
	}
	if item.HotelID != st.HotelID {
		return shared.NewDomainError("INVALID_ITEM", "Item belongs to a different hotel")
	}
	if !item.Active {
		return shared.NewDomainError("INVALID_ITEM", "Item is not active")
	}

	for _, line := range st.Lines {
		if line.ItemID == item.ID {
			return shared.NewDomainError("DUPLICATE_ITEM", "Item already exists in stocktake")
		}
	}

	line := NewStocktakeLine(st.ID, item, openingQty)
	st.Lines = append(st.Lines, *line)
	st.TotalItems++
	st.UpdatedAt = time.Now()
	st.IncrementVersion()

	return nil
}

// RemoveLine removes an item from the stocktake
func (st *Stocktake) RemoveLine(itemID uuid.UUID) error {
	if st.Status != StocktakeStatusDraft {
		return shared.NewDomainError("INVALID_STATUS", "Can only remove lines in DRAFT status")
	}

	for i, line := range st.Lines {
		if line.ItemID == itemID {
			st.Lines = append(st.Lines[:i], st.Lines[i+1:]...)
			st.TotalItems--
			st.UpdatedAt = time.Now()
			st.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Item not found in stocktake")
}

// StartCounting transitions the stocktake to counting status
func (st *Stocktake) StartCounting() error {
	if !st.Status.CanTransitionTo(StocktakeStatusCounting) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to COUNTING", st.Status))
	}
	if st.TotalItems == 0 {
		return shared.NewDomainError("NO_LINES", "Cannot start counting with no lines")
	}

	now := time.Now()
	st.Status = StocktakeStatusCounting
	st.StartedAt = &now
	st.UpdatedAt = now
	st.IncrementVersion()

	st.AddDomainEvent(NewStocktakeStartedEvent(st))

	return nil
}

// RecordLineMovements replaces the movement fields of a line. Allowed
// in DRAFT and COUNTING, since purchasing data often lands late.
func (st *Stocktake) RecordLineMovements(itemID uuid.UUID, m Movements) error {
	if st.Status != StocktakeStatusDraft && st.Status != StocktakeStatusCounting {
		return shared.NewDomainError("INVALID_STATUS", "Can only record movements in DRAFT or COUNTING status")
	}

	for i := range st.Lines {
		if st.Lines[i].ItemID == itemID {
			if err := st.Lines[i].SetMovements(m); err != nil {
				return err
			}
			st.recalculateTotals()
			st.UpdatedAt = time.Now()
			st.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Item not found in stocktake")
}

// RecordLineCount records the physical count for a line
func (st *Stocktake) RecordLineCount(itemID uuid.UUID, full, partial decimal.Decimal, remark string) error {
	if st.Status != StocktakeStatusCounting {
		return shared.NewDomainError("INVALID_STATUS", "Can only record counts in COUNTING status")
	}

	for i := range st.Lines {
		if st.Lines[i].ItemID == itemID {
			wasCounted := st.Lines[i].Counted

			if err := st.Lines[i].RecordCount(full, partial, remark); err != nil {
				return err
			}

			if !wasCounted {
				st.CountedItems++
			}

			st.recalculateTotals()
			st.UpdatedAt = time.Now()
			st.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Item not found in stocktake")
}

// RecordCocktailUsage attaches the cocktail overlay to a line. Totals
// are untouched; the overlay is reporting metadata.
func (st *Stocktake) RecordCocktailUsage(itemID uuid.UUID, usage CocktailUsage) error {
	for i := range st.Lines {
		if st.Lines[i].ItemID == itemID {
			st.Lines[i].SetCocktailUsage(usage)
			st.UpdatedAt = time.Now()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Item not found in stocktake")
}

// recalculateTotals sums the derived values over counted lines. Sums
// stay exact decimals, so the document totals always equal the sum of
// their lines.
func (st *Stocktake) recalculateTotals() {
	st.VarianceItems = 0
	st.TotalValue = decimal.Zero
	st.TotalCountedValue = decimal.Zero
	st.TotalVarianceValue = decimal.Zero

	for _, line := range st.Lines {
		if !line.Counted {
			continue
		}
		st.TotalValue = st.TotalValue.Add(line.Derived.ExpectedValue)
		st.TotalCountedValue = st.TotalCountedValue.Add(line.Derived.CountedValue)
		st.TotalVarianceValue = st.TotalVarianceValue.Add(line.Derived.VarianceValue)
		if line.HasVariance() {
			st.VarianceItems++
		}
	}
}

// SubmitForApproval transitions the stocktake to pending approval status
func (st *Stocktake) SubmitForApproval() error {
	if !st.Status.CanTransitionTo(StocktakeStatusPendingApproval) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to PENDING_APPROVAL", st.Status))
	}
	if st.CountedItems != st.TotalItems {
		return shared.NewDomainError("INCOMPLETE_COUNT", fmt.Sprintf("Not all lines have been counted (%d/%d)", st.CountedItems, st.TotalItems))
	}

	now := time.Now()
	st.Status = StocktakeStatusPendingApproval
	st.CompletedAt = &now
	st.UpdatedAt = now
	st.IncrementVersion()

	st.AddDomainEvent(NewStocktakeSubmittedEvent(st))

	return nil
}

// Approve approves the stocktake, fixing its numbers for good
func (st *Stocktake) Approve(approverID uuid.UUID, approverName, note string) error {
	if !st.Status.CanTransitionTo(StocktakeStatusApproved) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to APPROVED", st.Status))
	}
	if approverID == uuid.Nil {
		return shared.NewDomainError("INVALID_APPROVER", "Approver ID cannot be empty")
	}

	now := time.Now()
	st.Status = StocktakeStatusApproved
	st.ApprovedAt = &now
	st.ApprovedByID = &approverID
	st.ApprovedByName = approverName
	st.ApprovalNote = note
	st.UpdatedAt = now
	st.IncrementVersion()

	st.AddDomainEvent(NewStocktakeApprovedEvent(st))

	return nil
}

// Reject rejects the stocktake
func (st *Stocktake) Reject(approverID uuid.UUID, approverName, reason string) error {
	if !st.Status.CanTransitionTo(StocktakeStatusRejected) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to REJECTED", st.Status))
	}
	if approverID == uuid.Nil {
		return shared.NewDomainError("INVALID_APPROVER", "Approver ID cannot be empty")
	}
	if reason == "" {
		return shared.NewDomainError("INVALID_REASON", "Rejection reason is required")
	}

	now := time.Now()
	st.Status = StocktakeStatusRejected
	st.ApprovedAt = &now
	st.ApprovedByID = &approverID
	st.ApprovedByName = approverName
	st.ApprovalNote = reason
	st.UpdatedAt = now
	st.IncrementVersion()

	st.AddDomainEvent(NewStocktakeRejectedEvent(st))

	return nil
}

// Cancel cancels the stocktake
func (st *Stocktake) Cancel(reason string) error {
	if !st.Status.CanTransitionTo(StocktakeStatusCancelled) {
		return shared.NewDomainError("INVALID_TRANSITION", fmt.Sprintf("Cannot transition from %s to CANCELLED", st.Status))
	}

	st.Status = StocktakeStatusCancelled
	st.Remark = reason
	st.UpdatedAt = time.Now()
	st.IncrementVersion()

	st.AddDomainEvent(NewStocktakeCancelledEvent(st))

	return nil
}

// SetRemark sets the remark for the stocktake
func (st *Stocktake) SetRemark(remark string) {
	st.Remark = remark
	st.UpdatedAt = time.Now()
}

// IsComplete returns true if all lines have been counted
func (st *Stocktake) IsComplete() bool {
	return st.CountedItems == st.TotalItems && st.TotalItems > 0
}

// GetProgress returns the counting progress as a percentage
func (st *Stocktake) GetProgress() float64 {
	if st.TotalItems == 0 {
		return 0
	}
	return float64(st.CountedItems) / float64(st.TotalItems) * 100
}

// GetLinesWithVariance returns lines whose count differs from expected
func (st *Stocktake) GetLinesWithVariance() []StocktakeLine {
	result := make([]StocktakeLine, 0)
	for _, line := range st.Lines {
		if line.HasVariance() {
			result = append(result, line)
		}
	}
	return result
}

// GetUncountedLines returns lines that have not been counted yet
func (st *Stocktake) GetUncountedLines() []StocktakeLine {
	result := make([]StocktakeLine, 0)
	for _, line := range st.Lines {
		if !line.Counted {
			result = append(result, line)
		}
	}
	return result
}
