package recent_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/filesystem"
	"github.com/arthur-debert/reskin/pkg/recent"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledger = "/home/u/.config/reskin/recent.json"

func tickingClock() func() time.Time {
	t := time.Unix(1700000000, 0)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func names(entries []types.RecentTheme) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestUpsert_Bound(t *testing.T) {
	fs := filesystem.NewMemory()
	store := recent.NewFileStore(fs, ledger, recent.WithClock(tickingClock()))

	for i := 1; i <= 5; i++ {
		_, err := store.Upsert(types.Manifest{Name: fmt.Sprintf("T%d", i)})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"T5", "T4", "T3", "T2"}, names(store.List()))
}

func TestUpsert_Dedup(t *testing.T) {
	fs := filesystem.NewMemory()
	store := recent.NewFileStore(fs, ledger, recent.WithClock(tickingClock()))

	for _, name := range []string{"A", "B", "A"} {
		_, err := store.Upsert(types.Manifest{Name: name, Author: "x", Description: "d"})
		require.NoError(t, err)
	}

	entries := store.List()
	assert.Equal(t, []string{"A", "B"}, names(entries))
	assert.Equal(t, int64(1700000180), entries[0].InstalledAt)
	assert.Equal(t, "x", entries[0].Author)
	assert.Equal(t, "d", entries[0].Description)
}

func TestUpsert_MaxEntries(t *testing.T) {
	fs := filesystem.NewMemory()
	store := recent.NewFileStore(fs, ledger, recent.WithMaxEntries(2))

	for _, name := range []string{"A", "B", "C"} {
		_, err := store.Upsert(types.Manifest{Name: name})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"C", "B"}, names(store.List()))
}

func TestList_ReadFailures(t *testing.T) {
	fs := filesystem.NewMemory()
	store := recent.NewFileStore(fs, ledger)

	assert.Empty(t, store.List())
	assert.NotNil(t, store.List())

	require.NoError(t, afero.WriteFile(fs, ledger, []byte("{not json"), 0644))
	assert.Empty(t, store.List())

	require.NoError(t, afero.WriteFile(fs, ledger, []byte("null"), 0644))
	assert.NotNil(t, store.List())

	// a malformed ledger is replaced on the next install
	_, err := store.Upsert(types.Manifest{Name: "Nord"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Nord"}, names(store.List()))
}

func TestList_FileFormat(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fs, ledger, []byte(
		`[{"name":"Nord","author":"arctic","description":"blue","installedAt":1700000000}]`), 0644))

	entries := recent.NewFileStore(fs, ledger).List()
	require.Len(t, entries, 1)
	assert.Equal(t, types.RecentTheme{Name: "Nord", Author: "arctic", Description: "blue", InstalledAt: 1700000000}, entries[0])
}

func TestUpsert_WriteFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(filesystem.NewMemory())
	store := recent.NewFileStore(fs, ledger)

	_, err := store.Upsert(types.Manifest{Name: "Nord"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO), "got %v", err)
}
