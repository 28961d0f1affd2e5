package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	pkgerrors "github.com/fishweb-iq/fishweb-backend/pkg/errors"
	"github.com/fishweb-iq/fishweb-backend/pkg/logger"
)

// Storage keys, one per store. The wishlist key is versioned because the
// stored shape changed once and old payloads are not worth migrating.
const (
	CartStorageKey     = "fish-web-cart"
	WishlistStorageKey = "fish-web-wishlist-v2"
)

// FileStore persists JSON collections under fixed keys, one file per key.
// Saves are last-writer-wins; there is no concurrency check between
// processes sharing the same state directory.
type FileStore struct {
	dir         string
	logg        *logger.Logger
	broadcaster *Broadcaster
}

// NewFileStore creates the state directory if needed. The broadcaster is
// optional; when set, every successful save publishes the key and payload.
func NewFileStore(dir string, logg *logger.Logger, broadcaster *Broadcaster) (*FileStore, error) {
	if dir == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "file store requires a state directory")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "file store requires a logger")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating storefront state directory")
	}
	return &FileStore{dir: dir, logg: logg, broadcaster: broadcaster}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the collection stored under key into dest. Missing or corrupt
// content leaves dest untouched: the caller keeps its empty collection and
// the failure is logged, never returned.
func (s *FileStore) Load(ctx context.Context, key string, dest any) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logg.Warn(ctx, fmt.Sprintf("failed to read stored %s state: %v", key, err))
		}
		return
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("failed to parse stored %s state: %v", key, err))
	}
}

// Save serializes v and overwrites the stored value unconditionally.
func (s *FileStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "serializing storefront state")
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing storefront state")
	}
	if s.broadcaster != nil {
		s.broadcaster.Publish(Event{Key: key, Payload: raw})
	}
	return nil
}
