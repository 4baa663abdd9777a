package leads

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/oreana/assistant-server/internal/assistant/model"
	errx "github.com/oreana/assistant-server/internal/core/error"
	logx "github.com/oreana/assistant-server/pkg/logger"
)

// FileStore persists leads as a single JSON array, rewritten wholesale on
// every append. The read-modify-write is not synchronised: concurrent appends
// can interleave and silently drop earlier writes. Acceptable for the
// intended single-writer usage; swap in the Redis backend when concurrent
// request handling matters.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(ctx context.Context, record model.EntityRecord) error {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	records = append(records, record)

	b, err := sonic.MarshalIndent(records, "", "  ")
	if err != nil {
		return errx.WrapStore(fmt.Errorf("marshal leads: %w", err))
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return errx.WrapStore(fmt.Errorf("write leads file: %w", err))
	}
	return nil
}

// LoadAll returns the persisted collection. A missing or corrupt file is
// treated as an empty collection and never surfaced as an error.
func (s *FileStore) LoadAll(_ context.Context) ([]model.EntityRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warn().Err(err).Str("path", s.path).Msg("failed to read leads file, treating as empty")
		}
		return []model.EntityRecord{}, nil
	}

	var records []model.EntityRecord
	if err := sonic.Unmarshal(b, &records); err != nil {
		logx.Warn().Err(err).Str("path", s.path).Msg("corrupt leads file, treating as empty")
		return []model.EntityRecord{}, nil
	}
	if records == nil {
		records = []model.EntityRecord{}
	}
	return records, nil
}

func (s *FileStore) ClearAll(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errx.WrapStore(fmt.Errorf("remove leads file: %w", err))
	}
	return nil
}

var _ model.LeadRepository = (*FileStore)(nil)
