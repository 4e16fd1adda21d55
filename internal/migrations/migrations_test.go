package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	assert.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	assert.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)
}

func TestInitMigrationCreatesMarketplaceTables(t *testing.T) {
	data, err := fs.ReadFile(files, "sql/000001_init.up.sql")
	assert.NoError(t, err)

	schema := string(data)
	for _, table := range []string{"users", "wallets", "listings", "transactions", "game_licenses", "license_transactions", "item_ownerships", "item_transactions"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	assert.Contains(t, schema, "UNIQUE (wallet_id, game_id)")
	assert.Contains(t, schema, "CHECK (balance >= 0)")
}
