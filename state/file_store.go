package state

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// FileStore keeps a JSON snapshot of the record at an afs URL (file://, mem://, gs://, s3:// ...).
type FileStore struct {
	URL string
	fs  afs.Service
	mu  sync.Mutex
}

// NewFileStore creates a snapshot store for the supplied URL
func NewFileStore(URL string) *FileStore {
	return &FileStore{URL: URL, fs: afs.New()}
}

func (s *FileStore) Load(ctx context.Context) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check state snapshot %v: %w", s.URL, err)
	}
	if !exists {
		return New(), nil
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download state snapshot %v: %w", s.URL, err)
	}
	ret := New()
	if len(bytes.TrimSpace(data)) == 0 {
		return ret, nil
	}
	if err = json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid state snapshot %v: %w", s.URL, err)
	}
	if ret.Pending == nil {
		ret.Pending = NewQueue()
	}
	return ret, nil
}

func (s *FileStore) Save(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, s.URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to upload state snapshot %v: %w", s.URL, err)
	}
	return nil
}
