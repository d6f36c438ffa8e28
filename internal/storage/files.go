package storage

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/danielokoye/meddocs/constants"
	"github.com/danielokoye/meddocs/internal/imaging"
)

// FileStore abstracts the uploaded-file store. The pipeline only ever reads;
// writes happen once at ingestion.
type FileStore interface {
	Exists(path string) bool
	ReadBytes(path string) ([]byte, error)
	ReadImage(path string) (image.Image, error)
	Save(r io.Reader, originalName string) (path string, size int, err error)
}

// LocalStore keeps uploads on local disk under a single root directory.
type LocalStore struct {
	root   string
	logger *slog.Logger
}

func NewLocalStore(root string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %q: %w", root, err)
	}
	return &LocalStore{root: root, logger: logger}, nil
}

func (s *LocalStore) Exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

func (s *LocalStore) ReadBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *LocalStore) ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("close upload file", "path", path, "error", cerr)
		}
	}()
	return imaging.Decode(f)
}

// Save writes the upload under a fresh UUID name, keeping the original
// extension. Size limits are the caller's concern; Save reads to EOF.
func (s *LocalStore) Save(r io.Reader, originalName string) (string, int, error) {
	ext := constants.NormalizeExt(filepath.Ext(originalName))
	name := uuid.New().String()
	if ext != "" {
		name += "." + ext
	}
	path := filepath.Join(s.root, name)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create upload file: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write upload file: %w", err)
	}
	s.logger.Debug("upload stored", "path", path, "bytes", n)
	return path, int(n), nil
}
