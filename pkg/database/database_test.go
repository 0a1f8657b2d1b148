package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectDBSQLite(t *testing.T) {
	db, err := ConnectDB("sqlite", filepath.Join(t.TempDir(), "demo.db"), zap.NewNop())
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}

func TestConnectDBUnknownDriver(t *testing.T) {
	_, err := ConnectDB("oracle", "", zap.NewNop())
	assert.ErrorContains(t, err, `unsupported database driver "oracle"`)
}
