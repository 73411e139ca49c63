// Package dbtest opens throwaway databases for package tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/awaleed99/bite-back0/internal/db"
)

// New returns a migrated in-memory SQLite database.
// A single connection is kept open so the in-memory schema survives between queries;
// code under test must therefore run transactional work through the tx handle only.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}
