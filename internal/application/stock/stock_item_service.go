package stock

import (
	"context"

	"github.com/google/uuid"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// StockItemService provides application services for stock item setup
type StockItemService struct {
	itemRepo stock.StockItemRepository
	eventBus shared.EventBus
}

// NewStockItemService creates a new StockItemService
func NewStockItemService(itemRepo stock.StockItemRepository, eventBus shared.EventBus) *StockItemService {
	return &StockItemService{
		itemRepo: itemRepo,
		eventBus: eventBus,
	}
}

// ===================== Query Methods =====================

// GetByID retrieves a stock item by ID
func (s *StockItemService) GetByID(ctx context.Context, hotelID, id uuid.UUID) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// GetByCode retrieves a stock item by its code
func (s *StockItemService) GetByCode(ctx context.Context, hotelID uuid.UUID, code string) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByCode(ctx, hotelID, code)
	if err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// List retrieves a paginated list of stock items
func (s *StockItemService) List(ctx context.Context, hotelID uuid.UUID, filter StockItemListFilter) ([]StockItemResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	var (
		items []stock.StockItem
		err   error
	)
	switch {
	case filter.Category != "":
		items, err = s.itemRepo.FindByCategory(ctx, hotelID, stock.Category(filter.Category), domainFilter)
	case filter.ActiveOnly:
		items, err = s.itemRepo.FindActiveForHotel(ctx, hotelID, domainFilter)
	default:
		items, err = s.itemRepo.FindAllForHotel(ctx, hotelID, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.CountForHotel(ctx, hotelID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockItemResponses(items), total, nil
}

// ===================== Command Methods =====================

// Create creates a new stock item
func (s *StockItemService) Create(ctx context.Context, hotelID uuid.UUID, req CreateStockItemRequest) (*StockItemResponse, error) {
	exists, err := s.itemRepo.ExistsByCode(ctx, hotelID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "An item with this code already exists")
	}

	item, err := stock.NewStockItem(
		hotelID,
		req.Name,
		req.Code,
		stock.Category(req.Category),
		stock.MineralSubcategory(req.Subcategory),
		req.UOM,
		req.SizeValueML,
		req.ServingSizeML,
	)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToStockItemResponse(item)
	return &response, nil
}

// Update renames a stock item
func (s *StockItemService) Update(ctx context.Context, hotelID, id uuid.UUID, req UpdateStockItemRequest) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := item.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToStockItemResponse(item)
	return &response, nil
}

// UpdateConfiguration changes an item's unit configuration
func (s *StockItemService) UpdateConfiguration(ctx context.Context, hotelID, id uuid.UUID, req UpdateConfigurationRequest) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := item.UpdateConfiguration(req.UOM, req.SizeValueML, req.ServingSizeML); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToStockItemResponse(item)
	return &response, nil
}

// AssignCost assigns the purchase cost and derives the valuation cost
func (s *StockItemService) AssignCost(ctx context.Context, hotelID, id uuid.UUID, req AssignCostRequest) (*StockItemResponse, error) {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	if err := item.AssignCost(req.UnitCost); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToStockItemResponse(item)
	return &response, nil
}

// Deactivate hides the item from new stocktakes
func (s *StockItemService) Deactivate(ctx context.Context, hotelID, id uuid.UUID) error {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return err
	}

	item.Deactivate()

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return err
	}

	s.publishEvents(ctx, item)
	return nil
}

// Activate makes an item available again
func (s *StockItemService) Activate(ctx context.Context, hotelID, id uuid.UUID) error {
	item, err := s.itemRepo.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return err
	}

	item.Activate()

	return s.itemRepo.Save(ctx, item)
}

// publishEvents publishes domain events from the aggregate
func (s *StockItemService) publishEvents(ctx context.Context, item *stock.StockItem) {
	if s.eventBus == nil {
		return
	}

	for _, event := range item.GetDomainEvents() {
		_ = s.eventBus.Publish(ctx, event)
	}
	item.ClearDomainEvents()
}
