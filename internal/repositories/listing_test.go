package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var listingCols = []string{"id", "type", "status", "seller_id", "price", "quantity", "expires_at", "game_id", "item_id", "created_at", "updated_at"}

func listingRow(id, sellerID, gameID uuid.UUID, status models.ListingStatus, now time.Time) []driver.Value {
	return []driver.Value{id.String(), "GAME_LICENSE", string(status), sellerID.String(), "100.00", 1, nil, gameID.String(), nil, now, now}
}

func TestListingRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	gameID := uuid.New()
	l := &models.Listing{
		ID:       uuid.New(),
		Type:     models.ListingTypeGameLicense,
		Status:   models.ListingStatusActive,
		SellerID: uuid.New(),
		Price:    decimal.NewFromInt(100),
		Quantity: 1,
		GameID:   &gameID,
	}
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WithArgs(l.ID, "GAME_LICENSE", "ACTIVE", l.SellerID, "100", int64(1), nil, gameID, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(context.Background(), l)
	assert.NoError(t, err)
	assert.Equal(t, now, l.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	id, sellerID, gameID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(listingCols).AddRow(listingRow(id, sellerID, gameID, models.ListingStatusActive, now)...))

		l, err := repo.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, id, l.ID)
		assert.Equal(t, models.ListingStatusActive, l.Status)
		assert.True(t, l.Price.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, gameID, *l.GameID)
		assert.Nil(t, l.ItemID)
		assert.Nil(t, l.ExpiresAt)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM listings WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		l, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, l)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(listingCols).AddRow(listingRow(id, uuid.New(), uuid.New(), models.ListingStatusActive, time.Now())...))

	l, err := repo.GetForUpdate(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	now := time.Now()
	status := models.ListingStatusActive
	minPrice := decimal.NewFromInt(10)
	f := models.ListingFilter{Status: &status, MinPrice: &minPrice, Page: 2, Limit: 1}

	cols := append(append([]string{}, listingCols...), "total")
	first := append(listingRow(uuid.New(), uuid.New(), uuid.New(), status, now), 3)

	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) OVER() AS total")).
		WithArgs(nil, "ACTIVE", nil, nil, nil, "10", nil, int64(1), int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(first...))

	listings, total, err := repo.List(context.Background(), f)
	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	cols := append(append([]string{}, listingCols...), "total")
	mock.ExpectQuery(regexp.QuoteMeta("FROM listings")).
		WillReturnRows(sqlmock.NewRows(cols))

	listings, total, err := repo.List(context.Background(), models.ListingFilter{Page: 1, Limit: 20})
	assert.NoError(t, err)
	assert.Empty(t, listings)
	assert.NotNil(t, listings)
	assert.Equal(t, 0, total)
}

func TestListingRepository_MarkSold(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	id := uuid.New()

	t.Run("active listing is sold", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'SOLD'")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(listingCols).AddRow(listingRow(id, uuid.New(), uuid.New(), models.ListingStatusSold, time.Now())...))

		l, err := repo.MarkSold(context.Background(), id)
		assert.NoError(t, err)
		assert.Equal(t, models.ListingStatusSold, l.Status)
	})

	t.Run("listing no longer active", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'SOLD'")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(listingCols))

		l, err := repo.MarkSold(context.Background(), id)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, l)
	})

	t.Run("serialization failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET status = 'SOLD'")).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "40001"})

		_, err := repo.MarkSold(context.Background(), id)
		assert.ErrorIs(t, err, models.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_UpdateAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	now := time.Now()
	l := &models.Listing{ID: uuid.New(), Status: models.ListingStatusCancelled, Price: decimal.NewFromInt(5), Quantity: 2}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE listings")).
		WithArgs(l.ID, "5", int64(2), nil, "CANCELLED", "ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listings WHERE id = $1 AND status = $2")).
		WithArgs(l.ID, "DRAFT").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), l, models.ListingStatusActive))
	assert.Equal(t, now, l.UpdatedAt)
	assert.NoError(t, repo.Delete(context.Background(), l.ID, models.ListingStatusDraft))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_StatusChangedConcurrently(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, nil)

	l := &models.Listing{ID: uuid.New(), Status: models.ListingStatusActive, Price: decimal.NewFromInt(5), Quantity: 1}

	t.Run("update of sold listing matches no row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND status = $6")).
			WithArgs(l.ID, "5", int64(1), nil, "ACTIVE", "DRAFT").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.Update(context.Background(), l, models.ListingStatusDraft)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("delete of published draft matches no row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listings WHERE id = $1 AND status = $2")).
			WithArgs(l.ID, "DRAFT").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), l.ID, models.ListingStatusDraft)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_UsesContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewListingRepository(db, GetTxFromContext)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listings")).WithArgs(id, "DRAFT").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Delete(ctx, id, models.ListingStatusDraft); err != nil {
			return err
		}
		return sql.ErrTxDone
	})

	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}
