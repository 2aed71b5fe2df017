package uploads

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
)

// Store keeps uploaded files in a single flat directory.
type Store struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// New creates the upload directory when missing and returns a Store rooted at it.
func New(dir string, logger *slog.Logger) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: abs, now: time.Now, logger: logger}, nil
}

// Dir returns the absolute upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes r to "{unix}_{originalName}" and returns the stored name.
// A file with the same name is overwritten.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d_%s", s.now().Unix(), baseName(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	s.logger.Debug("upload stored", slog.String("filename", name))
	return name, nil
}

// List returns the names of regular files currently in the upload directory.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Locate resolves name to a path inside the upload directory.
// Names that could address anything outside the directory are rejected.
func (s *Store) Locate(name string) (string, error) {
	if !ValidName(name) {
		return "", domainErrors.ErrInvalidFilename
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domainErrors.ErrNotFound
		}
		return "", fmt.Errorf("stat upload: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", domainErrors.ErrNotFound
	}
	return path, nil
}

// baseName drops any client-side directory part of the original name.
func baseName(original string) string {
	if i := strings.LastIndexAny(original, `/\`); i >= 0 {
		original = original[i+1:]
	}
	if original == "" || original == "." || original == ".." {
		return "upload"
	}
	return original
}

// ValidName reports whether name is a plain file name inside the upload directory.
// Without separators only "." and ".." can point elsewhere; "my..photo.jpg" is fine.
func ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`+"\x00")
}
