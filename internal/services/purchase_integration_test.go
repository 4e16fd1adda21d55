package services_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-marketplace/internal/migrations"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/repositories"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type marketplaceEnv struct {
	db        *sqlx.DB
	wallets   *repositories.WalletRepository
	listings  *repositories.ListingRepository
	ownership *repositories.OwnershipRepository
	users     *repositories.UserWriteRepository
	purchases *services.PurchaseService
}

func startPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { pgContainer.Terminate(ctx) })

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://user:password@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Up(db.DB))
	return db
}

func newMarketplaceEnv(t *testing.T) *marketplaceEnv {
	db := startPostgres(t)

	env := &marketplaceEnv{
		db:        db,
		wallets:   repositories.NewWalletRepository(db, repositories.GetTxFromContext),
		listings:  repositories.NewListingRepository(db, repositories.GetTxFromContext),
		ownership: repositories.NewOwnershipRepository(db, repositories.GetTxFromContext),
		users:     repositories.NewUserWriteRepository(db),
	}
	env.purchases = services.NewPurchaseService(
		repositories.NewTxManager(db),
		env.listings,
		env.wallets,
		repositories.NewTransactionRepository(db, repositories.GetTxFromContext),
		env.ownership,
		env.ownership,
		nil,
		nil,
	)
	return env
}

func (e *marketplaceEnv) user(t *testing.T, name string) policy.Actor {
	t.Helper()
	u, err := e.users.Save(context.Background(), name, "hash", name+"@example.com", "USER")
	require.NoError(t, err)
	return policy.Actor{UserID: u.UserID, Role: policy.RoleUser}
}

func (e *marketplaceEnv) wallet(t *testing.T, owner policy.Actor, balance string) *models.WalletDB {
	t.Helper()
	w := &models.WalletDB{
		WalletID:     uuid.New(),
		UserID:       owner.UserID,
		BlockchainID: "ethereum",
		Address:      "0x" + uuid.NewString(),
		Balance:      decimal.RequireFromString(balance),
		IsDefault:    true,
	}
	require.NoError(t, e.wallets.Create(context.Background(), w))
	return w
}

func (e *marketplaceEnv) listing(t *testing.T, seller policy.Actor, l models.Listing) *models.Listing {
	t.Helper()
	l.ID = uuid.New()
	l.Status = models.ListingStatusActive
	l.SellerID = seller.UserID
	if l.Quantity == 0 {
		l.Quantity = 1
	}
	require.NoError(t, e.listings.Create(context.Background(), &l))
	return &l
}

func (e *marketplaceEnv) balance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()
	w, err := e.wallets.GetByID(context.Background(), id)
	require.NoError(t, err)
	return w.Balance
}

func TestPurchaseService_Postgres(t *testing.T) {
	env := newMarketplaceEnv(t)
	ctx := context.Background()

	seller := env.user(t, "seller")
	buyer := env.user(t, "buyer")
	rival := env.user(t, "rival")
	sellerWallet := env.wallet(t, seller, "0")
	buyerWallet := env.wallet(t, buyer, "150")
	rivalWallet := env.wallet(t, rival, "500")

	gameID := uuid.New()
	license := env.listing(t, seller, models.Listing{
		Type:   models.ListingTypeGameLicense,
		Price:  decimal.NewFromInt(100),
		GameID: &gameID,
	})

	t.Run("license purchase moves money and ownership", func(t *testing.T) {
		result, err := env.purchases.Purchase(ctx, buyer, license.ID, buyerWallet.WalletID)
		require.NoError(t, err)
		assert.Equal(t, models.ListingStatusSold, result.Listing.Status)
		assert.True(t, result.Transaction.Fee.Equal(decimal.NewFromInt(5)))

		assert.True(t, env.balance(t, buyerWallet.WalletID).Equal(decimal.NewFromInt(50)))
		assert.True(t, env.balance(t, sellerWallet.WalletID).Equal(decimal.NewFromInt(95)))

		owned, err := env.ownership.HasLicense(ctx, buyer.UserID, gameID)
		require.NoError(t, err)
		assert.True(t, owned)
	})

	t.Run("sold listing cannot be bought again", func(t *testing.T) {
		_, err := env.purchases.Purchase(ctx, rival, license.ID, rivalWallet.WalletID)
		assert.ErrorIs(t, err, services.ErrListingUnavailable)
		assert.True(t, env.balance(t, rivalWallet.WalletID).Equal(decimal.NewFromInt(500)))
	})

	t.Run("stale edit cannot revive a sold listing", func(t *testing.T) {
		stale := *license
		stale.Status = models.ListingStatusCancelled

		err := env.listings.Update(ctx, &stale, models.ListingStatusActive)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		stored, err := env.listings.GetByID(ctx, license.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ListingStatusSold, stored.Status)
	})

	t.Run("owned license rolls back every effect", func(t *testing.T) {
		_, err := env.wallets.Credit(ctx, buyerWallet.WalletID, decimal.NewFromInt(100))
		require.NoError(t, err)
		again := env.listing(t, rival, models.Listing{
			Type:   models.ListingTypeGameLicense,
			Price:  decimal.NewFromInt(10),
			GameID: &gameID,
		})

		_, err = env.purchases.Purchase(ctx, buyer, again.ID, buyerWallet.WalletID)
		assert.ErrorIs(t, err, services.ErrLicenseAlreadyOwned)

		stored, err := env.listings.GetByID(ctx, again.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ListingStatusActive, stored.Status)
		assert.True(t, env.balance(t, buyerWallet.WalletID).Equal(decimal.NewFromInt(150)))
		assert.True(t, env.balance(t, rivalWallet.WalletID).Equal(decimal.NewFromInt(500)))
	})

	t.Run("item purchases accumulate", func(t *testing.T) {
		itemID := uuid.New()
		for i := 0; i < 2; i++ {
			l := env.listing(t, seller, models.Listing{
				Type:     models.ListingTypeGameItem,
				Price:    decimal.NewFromInt(1),
				Quantity: 2,
				ItemID:   &itemID,
			})
			_, err := env.purchases.Purchase(ctx, buyer, l.ID, buyerWallet.WalletID)
			require.NoError(t, err)
		}

		qty, err := env.ownership.ItemQuantity(ctx, buyer.UserID, itemID)
		require.NoError(t, err)
		assert.Equal(t, 4, qty)
	})

	t.Run("concurrent buyers, one winner", func(t *testing.T) {
		itemID := uuid.New()
		contested := env.listing(t, seller, models.Listing{
			Type:   models.ListingTypeGameItem,
			Price:  decimal.NewFromInt(20),
			ItemID: &itemID,
		})

		buyers := []struct {
			actor  policy.Actor
			wallet uuid.UUID
		}{
			{buyer, buyerWallet.WalletID},
			{rival, rivalWallet.WalletID},
		}

		var wg sync.WaitGroup
		errs := make([]error, len(buyers))
		for i, b := range buyers {
			wg.Add(1)
			go func(i int, actor policy.Actor, walletID uuid.UUID) {
				defer wg.Done()
				_, errs[i] = env.purchases.Purchase(ctx, actor, contested.ID, walletID)
			}(i, b.actor, b.wallet)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, models.ErrConflict)
		}
		assert.Equal(t, 1, succeeded)
	})
}
