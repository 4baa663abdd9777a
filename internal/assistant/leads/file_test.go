package leads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oreana/assistant-server/internal/assistant/model"
)

func strPtr(s string) *string { return &s }

func newTestFileStore(t *testing.T) *FileStore {
	return NewFileStore(filepath.Join(t.TempDir(), "leads.json"))
}

func TestFileStoreAppendAndLoadAll(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	records := []model.EntityRecord{
		{Name: strPtr("Priya"), Email: strPtr("priya@x.com")},
		{Phone: strPtr("9876543210")},
		{Name: strPtr("John Smith")},
	}
	for _, rec := range records {
		require.NoError(t, store.Append(ctx, rec))
	}

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got, "records must come back in append order")
}

func TestFileStoreLoadAllMissingFile(t *testing.T) {
	store := newTestFileStore(t)

	got, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStoreLoadAllCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)

	got, err := store.LoadAll(ctx)
	require.NoError(t, err, "corruption must degrade to empty, not error")
	assert.Empty(t, got)

	// the store stays usable: the next append starts a fresh collection
	require.NoError(t, store.Append(ctx, model.EntityRecord{Name: strPtr("Eve")}))
	got, err = store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestFileStoreClearAll(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Append(ctx, model.EntityRecord{Name: strPtr("Priya")}))
	require.NoError(t, store.ClearAll(ctx))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// clearing an already-empty store is fine
	require.NoError(t, store.ClearAll(ctx))
}

func TestFileStoreWritesNullMarkers(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.json")
	store := NewFileStore(path)

	require.NoError(t, store.Append(ctx, model.EntityRecord{Name: strPtr("Priya")}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// absent fields are explicit nulls, not omitted keys, so tabular
	// consumers always see the full column set
	assert.True(t, strings.Contains(string(b), `"email"`), "email key must be present: %s", b)
	assert.True(t, strings.Contains(string(b), `"phone"`), "phone key must be present: %s", b)
	assert.Contains(t, string(b), "null")
}
