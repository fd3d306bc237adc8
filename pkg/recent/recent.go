// Package recent keeps the bounded list of recently installed themes.
package recent

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/arthur-debert/reskin/pkg/types"
	"github.com/spf13/afero"
)

// DefaultMaxEntries is the ledger size when none is configured
const DefaultMaxEntries = 4

// Store is the recent-install ledger
type Store interface {
	// List returns the entries newest first. It never fails: an unreadable
	// ledger is an empty one.
	List() []types.RecentTheme

	// Upsert records m as the newest install, dropping any older entry with
	// the same name and trimming the list to its bound.
	Upsert(m types.Manifest) ([]types.RecentTheme, error)
}

// FileStore is a Store backed by a JSON array on disk
type FileStore struct {
	fs         afero.Fs
	path       string
	maxEntries int
	now        func() time.Time
}

// Option configures a FileStore
type Option func(*FileStore)

// WithMaxEntries bounds the ledger size
func WithMaxEntries(n int) Option {
	return func(s *FileStore) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithClock replaces the clock used to stamp entries
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore creates a ledger stored at path
func NewFileStore(fs afero.Fs, path string, opts ...Option) *FileStore {
	s := &FileStore{
		fs:         fs,
		path:       path,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the ledger file location
func (s *FileStore) Path() string {
	return s.path
}

// List returns the stored entries, newest first
func (s *FileStore) List() []types.RecentTheme {
	logger := logging.GetLogger("recent")

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		logger.Trace().Err(err).Str("path", s.path).Msg("no recent ledger")
		return []types.RecentTheme{}
	}

	var entries []types.RecentTheme
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("ignoring malformed recent ledger")
		return []types.RecentTheme{}
	}
	if entries == nil {
		entries = []types.RecentTheme{}
	}
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	return entries
}

// Upsert records an install of m and persists the ledger
func (s *FileStore) Upsert(m types.Manifest) ([]types.RecentTheme, error) {
	entry := types.RecentTheme{
		Name:        m.Name,
		Author:      m.Author,
		Description: m.Description,
		InstalledAt: s.now().Unix(),
	}

	entries := []types.RecentTheme{entry}
	for _, e := range s.List() {
		if e.Name == entry.Name {
			continue
		}
		if len(entries) == s.maxEntries {
			break
		}
		entries = append(entries, e)
	}

	if err := s.write(entries); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("recent")
	logger.Debug().
		Str("name", entry.Name).
		Int("entries", len(entries)).
		Msg("recorded install")

	return entries, nil
}

// write replaces the ledger through a temporary sibling so readers never
// see a half-written file
func (s *FileStore) write(entries []types.RecentTheme) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode recent ledger")
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return errors.IO(err, "create directory", dir)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0644); err != nil {
		return errors.IO(err, "write", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.IO(err, "rename", tmp)
	}
	return nil
}
