// Package testutil содержит общие фикстуры для тестов.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lessonbook/internal/app"
)

// NewDB открывает свежую файловую базу во временной директории теста
// и применяет миграции. База закрывается по окончании теста.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := app.OpenDB(filepath.Join(t.TempDir(), "lessons.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator, err := app.NewMigrator(db)
	require.NoError(t, err)
	require.NoError(t, migrator.Run(context.Background()))

	return db
}
