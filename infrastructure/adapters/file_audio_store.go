package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
)

type fileAudioStore struct {
	logger  outbound.LoggerPort
	dir     string
	baseURL string
}

// NewFileAudioStore persists audio artifacts on local disk, for running
// against the local fake provider without an S3 bucket. The directory is
// expected to be served under baseURL.
func NewFileAudioStore(logger outbound.LoggerPort, dir string, baseURL string) (outbound.AudioStorePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}
	return &fileAudioStore{
		logger:  logger,
		dir:     dir,
		baseURL: baseURL,
	}, nil
}

func (s *fileAudioStore) Upload(_ context.Context, content []byte, name string) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		s.logger.ErrorWithFields(err, "failed to write audio file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}

	url := s.baseURL + "/" + name
	s.logger.DebugWithFields("stored audio file", map[string]interface{}{
		"path": path,
		"url":  url,
	})
	return url, nil
}
