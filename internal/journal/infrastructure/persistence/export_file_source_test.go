package persistence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/quill/internal/journal/infrastructure/persistence"
)

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExportFileSource_ListByUser(t *testing.T) {
	userID := uuid.MustParse("3f8a1c2e-6b4d-4a9f-9c3e-1d2b5a7e9f01")
	path := writeExport(t, `[
		{
			"id": "a1b2c3d4-0000-0000-0000-000000000001",
			"timestamp": "2026-08-29T09:00:00Z",
			"wordCount": 800,
			"moodRating": 4,
			"tags": ["work"]
		},
		{
			"id": "a1b2c3d4-0000-0000-0000-000000000002",
			"timestamp": "2026-08-30T21:30:00Z",
			"wordCount": 350
		}
	]`)

	entries, err := persistence.NewExportFileSource(path).ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, userID, first.UserID)
	assert.Equal(t, 800, first.WordCount)
	require.NotNil(t, first.Mood)
	assert.Equal(t, 4, *first.Mood)
	assert.Equal(t, []string{"work"}, first.Tags)

	second := entries[1]
	assert.Equal(t, 350, second.WordCount)
	assert.Nil(t, second.Mood)
	assert.Empty(t, second.Tags)
}

func TestExportFileSource_SkipsOtherUsers(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	path := writeExport(t, `[
		{"id": "`+uuid.NewString()+`", "userId": "`+userID.String()+`", "timestamp": "2026-08-29T09:00:00Z", "wordCount": 100},
		{"id": "`+uuid.NewString()+`", "userId": "`+otherID.String()+`", "timestamp": "2026-08-29T10:00:00Z", "wordCount": 200}
	]`)

	entries, err := persistence.NewExportFileSource(path).ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].WordCount)
}

func TestExportFileSource_MissingFile(t *testing.T) {
	_, err := persistence.NewExportFileSource("/nonexistent/export.json").
		ListByUser(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read export file")
}

func TestExportFileSource_MalformedJSON(t *testing.T) {
	path := writeExport(t, `{"not": "an array"}`)

	_, err := persistence.NewExportFileSource(path).ListByUser(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse export file")
}
