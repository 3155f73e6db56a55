package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceContainsOrderedMigrations(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)

	_, err = src.Next(next)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEveryMigrationHasDown(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	for _, version := range []uint{1, 2} {
		up, _, err := src.ReadUp(version)
		require.NoError(t, err, "up %d", version)
		_ = up.Close()

		down, _, err := src.ReadDown(version)
		require.NoError(t, err, "down %d", version)
		_ = down.Close()
	}
}

func TestMigrationDSNEnablesMultiStatements(t *testing.T) {
	dsn, err := MigrationDSN("yatube:secret@tcp(127.0.0.1:3306)/yatube?charset=utf8mb4")
	require.NoError(t, err)
	assert.Contains(t, dsn, "multiStatements=true")
	assert.Contains(t, dsn, "parseTime=true")

	_, err = MigrationDSN("not a dsn")
	assert.Error(t, err)
}
