package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// StocktakeService provides application services for stocktake operations
type StocktakeService struct {
	stocktakeRepo stock.StocktakeRepository
	itemRepo      stock.StockItemRepository
	eventBus      shared.EventBus
}

// NewStocktakeService creates a new StocktakeService
func NewStocktakeService(
	stocktakeRepo stock.StocktakeRepository,
	itemRepo stock.StockItemRepository,
	eventBus shared.EventBus,
) *StocktakeService {
	return &StocktakeService{
		stocktakeRepo: stocktakeRepo,
		itemRepo:      itemRepo,
		eventBus:      eventBus,
	}
}

// ===================== Query Methods =====================

// GetByID retrieves a stocktake by ID
func (s *StocktakeService) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// GetByTakingNumber retrieves a stocktake by its number
func (s *StocktakeService) GetByTakingNumber(ctx context.Context, hotelID uuid.UUID, takingNumber string) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByTakingNumber(ctx, hotelID, takingNumber)
	if err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// List retrieves a paginated list of stocktakes
func (s *StocktakeService) List(ctx context.Context, hotelID uuid.UUID, filter StocktakeListFilter) ([]StocktakeListResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	var (
		sts []stock.Stocktake
		err error
	)
	switch {
	case filter.Status != "":
		sts, err = s.stocktakeRepo.FindByStatus(ctx, hotelID, stock.StocktakeStatus(filter.Status), domainFilter)
	case filter.StartDate != nil && filter.EndDate != nil:
		sts, err = s.stocktakeRepo.FindByDateRange(ctx, hotelID, *filter.StartDate, *filter.EndDate, domainFilter)
	default:
		sts, err = s.stocktakeRepo.FindAllForHotel(ctx, hotelID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.stocktakeRepo.CountForHotel(ctx, hotelID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStocktakeListResponses(sts), total, nil
}

// GetProgress retrieves the counting progress of a stocktake
func (s *StocktakeService) GetProgress(ctx context.Context, hotelID, id uuid.UUID) (*StocktakeProgressResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	response := ToStocktakeProgressResponse(st)
	return &response, nil
}

// GetVarianceLines retrieves only the lines whose count differs from expected
func (s *StocktakeService) GetVarianceLines(ctx context.Context, hotelID, id uuid.UUID) ([]StocktakeLineResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	return ToStocktakeLineResponses(st.GetLinesWithVariance()), nil
}

// ===================== Command Methods =====================

// Create creates a new stocktake
func (s *StocktakeService) Create(ctx context.Context, hotelID uuid.UUID, req CreateStocktakeRequest) (*StocktakeResponse, error) {
	takingNumber, err := s.stocktakeRepo.GenerateTakingNumber(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	takingDate := time.Now()
	if req.TakingDate != nil {
		takingDate = *req.TakingDate
	}

	st, err := stock.NewStocktake(hotelID, takingNumber, takingDate, req.CreatedByID, req.CreatedByName)
	if err != nil {
		return nil, err
	}

	if req.Remark != "" {
		st.SetRemark(req.Remark)
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// Update updates a stocktake remark (only in DRAFT status)
func (s *StocktakeService) Update(ctx context.Context, hotelID, id uuid.UUID, req UpdateStocktakeRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if st.Status != stock.StocktakeStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATUS", "Can only update stocktake in DRAFT status")
	}

	st.SetRemark(req.Remark)

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// Delete deletes a stocktake (only in DRAFT status)
func (s *StocktakeService) Delete(ctx context.Context, hotelID, id uuid.UUID) error {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return err
	}

	if st.Status != stock.StocktakeStatusDraft {
		return shared.NewDomainError("INVALID_STATUS", "Can only delete stocktake in DRAFT status")
	}

	return s.stocktakeRepo.DeleteForHotel(ctx, hotelID, id)
}

// AddLine snapshots one item onto a stocktake
func (s *StocktakeService) AddLine(ctx context.Context, hotelID, stocktakeID uuid.UUID, req AddStocktakeLineRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, req.ItemID)
	if err != nil {
		return nil, err
	}

	if err := st.AddLine(item, req.OpeningQty); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// AddLines snapshots multiple items onto a stocktake
func (s *StocktakeService) AddLines(ctx context.Context, hotelID, stocktakeID uuid.UUID, req AddStocktakeLinesRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(req.Lines))
	for i, line := range req.Lines {
		ids[i] = line.ItemID
	}

	items, err := s.itemRepo.FindByIDs(ctx, hotelID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*stock.StockItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	for _, line := range req.Lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Stock item not found")
		}
		if err := st.AddLine(item, line.OpeningQty); err != nil {
			return nil, err
		}
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// RemoveLine removes an item from a stocktake
func (s *StocktakeService) RemoveLine(ctx context.Context, hotelID, stocktakeID, itemID uuid.UUID) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	if err := st.RemoveLine(itemID); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// StartCounting transitions a stocktake into COUNTING
func (s *StocktakeService) StartCounting(ctx context.Context, hotelID, id uuid.UUID) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := st.StartCounting(); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// RecordMovements sets the movement fields for one line
func (s *StocktakeService) RecordMovements(ctx context.Context, hotelID, stocktakeID uuid.UUID, req RecordMovementsRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	err = st.RecordLineMovements(req.ItemID, stock.Movements{
		OpeningQty:           req.OpeningQty,
		Purchases:            req.Purchases,
		Sales:                req.Sales,
		Waste:                req.Waste,
		TransfersIn:          req.TransfersIn,
		TransfersOut:         req.TransfersOut,
		Adjustments:          req.Adjustments,
		ManualPurchasesValue: req.ManualPurchasesValue,
		ManualWasteValue:     req.ManualWasteValue,
		ManualSalesValue:     req.ManualSalesValue,
	})
	if err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// RecordCount records the physical count for one line
func (s *StocktakeService) RecordCount(ctx context.Context, hotelID, stocktakeID uuid.UUID, req RecordCountRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	if err := st.RecordLineCount(req.ItemID, req.FullUnits, req.PartialUnits, req.Remark); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// RecordCounts records physical counts for multiple lines
func (s *StocktakeService) RecordCounts(ctx context.Context, hotelID, stocktakeID uuid.UUID, req RecordCountsRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	for _, count := range req.Counts {
		if err := st.RecordLineCount(count.ItemID, count.FullUnits, count.PartialUnits, count.Remark); err != nil {
			return nil, err
		}
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// RecordCocktailUsage attaches the cocktail draw-down overlay to a line
func (s *StocktakeService) RecordCocktailUsage(ctx context.Context, hotelID, stocktakeID uuid.UUID, req RecordCocktailUsageRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	err = st.RecordCocktailUsage(req.ItemID, stock.CocktailUsage{
		AvailableQty: req.AvailableQty,
		MergedQty:    req.MergedQty,
	})
	if err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	response := ToStocktakeResponse(st)
	return &response, nil
}

// SubmitForApproval transitions a stocktake into PENDING_APPROVAL
func (s *StocktakeService) SubmitForApproval(ctx context.Context, hotelID, id uuid.UUID) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := st.SubmitForApproval(); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// Approve approves a stocktake
func (s *StocktakeService) Approve(ctx context.Context, hotelID, id uuid.UUID, req ApproveStocktakeRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := st.Approve(req.ApproverID, req.ApproverName, req.Note); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// Reject rejects a stocktake
func (s *StocktakeService) Reject(ctx context.Context, hotelID, id uuid.UUID, req RejectStocktakeRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := st.Reject(req.ApproverID, req.ApproverName, req.Reason); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// Cancel cancels a stocktake
func (s *StocktakeService) Cancel(ctx context.Context, hotelID, id uuid.UUID, req CancelStocktakeRequest) (*StocktakeResponse, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := st.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.stocktakeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, st)

	response := ToStocktakeResponse(st)
	return &response, nil
}

// publishEvents publishes domain events from the aggregate
func (s *StocktakeService) publishEvents(ctx context.Context, st *stock.Stocktake) {
	if s.eventBus == nil {
		return
	}

	for _, event := range st.GetDomainEvents() {
		_ = s.eventBus.Publish(ctx, event)
	}
	st.ClearDomainEvents()
}
