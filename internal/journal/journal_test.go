package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calculator"
)

// createTestJournal opens a journal in a temporary directory.
func createTestJournal(t *testing.T, path string) *Journal {
	t.Helper()
	j, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestOpenSetsPragmas(t *testing.T) {
	j := createTestJournal(t, filepath.Join(t.TempDir(), "history.db"))

	var mode string
	require.NoError(t, j.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var version int
	require.NoError(t, j.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)

	_, err := uuid.Parse(j.Session())
	assert.NoError(t, err)
}

func TestAppendLoad(t *testing.T) {
	ctx := context.Background()
	j := createTestJournal(t, filepath.Join(t.TempDir(), "history.db"))

	pairs, err := j.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	require.NoError(t, j.Append(ctx, "1+1", "2"))
	require.NoError(t, j.Append(ctx, "2*3", "6"))
	require.NoError(t, j.Append(ctx, "1+1", "2"))

	pairs, err = j.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []calculator.ResultPair{
		{Key: "1+1", Value: "2"},
		{Key: "2*3", Value: "6"},
		{Key: "1+1", Value: "2"},
	}, pairs)
}

func TestSessionsPersist(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, "1+1", "2"))
	session := first.Session()
	require.NoError(t, first.Close())

	second := createTestJournal(t, path)
	assert.NotEqual(t, session, second.Session())
	require.NoError(t, second.Append(ctx, "2^10", "1024"))

	var h calculator.History
	n, err := second.Replay(ctx, &h)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []calculator.ResultPair{
		{Key: "1+1", Value: "2"},
		{Key: "2^10", Value: "1024"},
	}, h.All())

	var sessions int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(DISTINCT session) FROM evaluations").Scan(&sessions))
	assert.Equal(t, 2, sessions)
}

func TestOpenRejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	j, err := Open(path)
	require.NoError(t, err)
	_, err = j.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, j.Close())

	_, err = Open(path)
	assert.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	var j Journal
	assert.NoError(t, j.Close())
}
