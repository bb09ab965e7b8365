package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps a copy of exported bundles on the local filesystem so a
// finished run survives a service restart even though sessions do not.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("export: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("export: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Save persists an archive under the session id and returns the
// canonicalized key. Keys are cleaned to prevent directory traversal.
func (s *FileStore) Save(ctx context.Context, sessionID string, archive []byte) (string, error) {
	if s == nil {
		return "", errors.New("export: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key, err := sanitizeKey(sessionID + ".zip")
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("export: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, archive, 0o644); err != nil {
		return "", fmt.Errorf("export: write archive: %w", err)
	}
	return key, nil
}

func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("export: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("export: invalid key")
	}
	return cleaned, nil
}
