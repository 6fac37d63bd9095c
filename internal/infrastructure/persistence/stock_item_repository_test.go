package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func itemRows(itemID, hotelID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "hotel_id", "name", "code", "category", "subcategory",
		"uom", "size_value_ml", "serving_size_ml", "unit_cost", "valuation_cost", "active",
	}).AddRow(
		itemID, hotelID, "Guinness Keg", "DRA-001", "D", "",
		decimal.NewFromFloat(52.8), decimal.Zero, decimal.Zero,
		decimal.NewFromFloat(2.64), decimal.NewFromFloat(0.05), true,
	)
}

func TestGormStockItemRepository_FindByID(t *testing.T) {
	t.Run("finds existing item", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockItemRepository(db)

		itemID := uuid.New()
		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(itemID, 1).
			WillReturnRows(itemRows(itemID, hotelID))

		item, err := repo.FindByID(context.Background(), itemID)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, "DRA-001", item.Code)
		assert.Equal(t, stock.CategoryDraught, item.Category)
		assert.True(t, item.ValuationCost.Valid)
		assert.True(t, decimal.NewFromFloat(0.05).Equal(item.ValuationCost.Decimal))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record not found to domain error", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockItemRepository(db)

		itemID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(itemID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindByID(context.Background(), itemID)

		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockItemRepository_FindByIDForHotel(t *testing.T) {
	t.Run("scopes lookup by hotel", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockItemRepository(db)

		itemID := uuid.New()
		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "stock_items" WHERE hotel_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(hotelID, itemID, 1).
			WillReturnRows(itemRows(itemID, hotelID))

		item, err := repo.FindByIDForHotel(context.Background(), hotelID, itemID)

		require.NoError(t, err)
		assert.Equal(t, hotelID, item.HotelID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockItemRepository_ExistsByCode(t *testing.T) {
	t.Run("returns true when code exists", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockItemRepository(db)

		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "stock_items" WHERE hotel_id = \$1 AND code = \$2`).
			WithArgs(hotelID, "DRA-001").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByCode(context.Background(), hotelID, "DRA-001")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when code does not exist", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStockItemRepository(db)

		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "stock_items" WHERE hotel_id = \$1 AND code = \$2`).
			WithArgs(hotelID, "MIN-999").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByCode(context.Background(), hotelID, "MIN-999")

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStocktakeRepository_GenerateTakingNumber(t *testing.T) {
	t.Run("starts the sequence at 001", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStocktakeRepository(db)

		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT "taking_number" FROM "stocktakes" WHERE hotel_id = \$1 AND taking_number LIKE \$2 ORDER BY taking_number DESC LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"taking_number"}))

		number, err := repo.GenerateTakingNumber(context.Background(), hotelID)

		require.NoError(t, err)
		assert.Regexp(t, `^STK-\d{8}-001$`, number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("increments the highest existing number", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormStocktakeRepository(db)

		hotelID := uuid.New()

		mock.ExpectQuery(`SELECT "taking_number" FROM "stocktakes" WHERE hotel_id = \$1 AND taking_number LIKE \$2 ORDER BY taking_number DESC LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"taking_number"}).AddRow("STK-20260829-007"))

		number, err := repo.GenerateTakingNumber(context.Background(), hotelID)

		require.NoError(t, err)
		assert.Regexp(t, `-008$`, number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStocktakeRepository_CountByStatus(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormStocktakeRepository(db)

	hotelID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "stocktakes" WHERE hotel_id = \$1 AND status = \$2`).
		WithArgs(hotelID, stock.StocktakeStatusCounting).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByStatus(context.Background(), hotelID, stock.StocktakeStatusCounting)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
