package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the single opaque session token across process restarts.
// Absent token is not an error: Get returns ("", false, nil).
type Store interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type FileStore struct {
	filePath string
	mu       sync.Mutex
}

type tokenData struct {
	Token string `json:"token"`
}

func NewFileStore(filePath string) *FileStore {
	return &FileStore{filePath: filePath}
}

func (s *FileStore) Get(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to open token file: %w", err)
	}
	defer file.Close()

	var data tokenData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return "", false, fmt.Errorf("failed to decode token file: %w", err)
	}
	if data.Token == "" {
		return "", false, nil
	}
	return data.Token, true, nil
}

func (s *FileStore) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	raw, err := json.Marshal(tokenData{Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(s.filePath, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
