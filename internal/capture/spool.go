package capture

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Spool keeps captured photos on local disk until they are durable.
type Spool struct {
	dir string
}

func NewSpool(dir string) (*Spool, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool dir: %w", err)
	}
	return &Spool{dir: dir}, nil
}

func (s *Spool) Save(r io.Reader) (string, error) {
	handle := uuid.New().String()

	f, err := os.Create(s.path(handle))
	if err != nil {
		return "", fmt.Errorf("create spool file: %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write spool file: %w", err)
	}

	return handle, nil
}

func (s *Spool) Read(handle string) ([]byte, error) {
	if !validHandle(handle) {
		return nil, fmt.Errorf("invalid spool handle %q", handle)
	}
	return os.ReadFile(s.path(handle))
}

func (s *Spool) Remove(handle string) error {
	if !validHandle(handle) {
		return fmt.Errorf("invalid spool handle %q", handle)
	}
	if err := os.Remove(s.path(handle)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove spool file: %w", err)
	}
	return nil
}

func (s *Spool) path(handle string) string {
	return filepath.Join(s.dir, handle+".img")
}

func validHandle(h string) bool {
	return h != "" && !strings.ContainsAny(h, `/\.`)
}
