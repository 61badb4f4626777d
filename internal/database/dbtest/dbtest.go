// Package dbtest opens throwaway migrated databases for tests.
package dbtest

import (
	"fmt"
	"testing"

	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/contacts-api/internal/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config returns settings for a private in-memory SQLite database. The pool is
// held at one connection so every query sees the same memory store.
func Config() *config.Config {
	return &config.Config{
		DBDriver:         "sqlite",
		SQLitePath:       fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpen:        1,
		DBMaxIdle:        1,
		ContactPageSize:  10,
		BcryptCost:       4,
		LogRetentionDays: 30,
	}
}

// New connects to the database described by cfg, migrates it, and closes it
// when the test ends.
func New(t testing.TB, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
