// Package sink provides the destinations generated Go files are written to.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// OutputSink receives generated file content. path is slash separated and
// relative; the sink decides where it ends up.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// checkWrite validates path and ctx before a write.
func checkWrite(ctx context.Context, path string) error {
	if err := ValidatePath(path); err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	return ctx.Err()
}

// FilesystemSink writes files below a root directory. Each file is written
// to a temporary name first and moved into place, so readers never see a
// partial file.
type FilesystemSink struct {
	// Root is the output directory. It is created on first write.
	Root string

	// Mode is the permission of written files; zero means 0644.
	Mode os.FileMode

	// Overwrite allows replacing existing files.
	Overwrite bool
}

// NewFilesystemSink returns a sink that writes below root and replaces
// existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0o644, Overwrite: true}
}

// WriteFile writes content to path below Root.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := checkWrite(ctx, path); err != nil {
		return err
	}

	dst, err := s.resolve(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := s.writeTemp(dir, content)
	if err != nil {
		return err
	}
	// The temp file is gone after a successful rename; removing it again
	// is harmless.
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Overwrite {
		if err := os.Rename(tmp, dst); err != nil {
			return fmt.Errorf("failed to move %s into place: %w", path, err)
		}
		return nil
	}
	// Link fails if dst exists, which a stat followed by rename cannot
	// guarantee.
	if err := os.Link(tmp, dst); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("file already exists: %q", path)
		}
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}

// resolve joins path to Root and rejects results outside Root.
func (s *FilesystemSink) resolve(path string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root directory: %w", err)
	}
	dst := filepath.Join(root, filepath.FromSlash(path))
	if dst != root && !strings.HasPrefix(dst, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", path)
	}
	return dst, nil
}

func (s *FilesystemSink) writeTemp(dir string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".jsonstruct-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	name := f.Name()

	_, werr := f.Write(content)
	cerr := f.Close()
	mode := s.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Chmod(name, mode); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to set file mode: %w", err)
	}
	return name, nil
}

// MemorySink keeps generated files in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := checkWrite(ctx, path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = slices.Clone(content)
	return nil
}

// Files returns a copy of every stored file.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		out[path] = slices.Clone(content)
	}
	return out
}

// Paths returns the stored paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Get returns a copy of one file, or nil if it was never written.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.files[path]
	if !ok {
		return nil
	}
	return slices.Clone(content)
}

// Reset drops all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}

// WriterSink streams every file to one writer, each preceded by a
// "// file: <path>" line. Writes are serialized.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteFile writes the header line and content to the underlying writer.
func (s *WriterSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := checkWrite(ctx, path); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "// file: %s\n", path); err != nil {
		return err
	}
	if _, err := s.w.Write(content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		_, err := io.WriteString(s.w, "\n")
		return err
	}
	return nil
}

// ValidatePath reports whether path is a clean, relative, slash separated
// path that stays inside the output root.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New("path is empty")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") || hasDriveLetter(path) {
		return errors.New("absolute paths not allowed")
	}
	slashed := filepath.ToSlash(path)
	for _, part := range strings.Split(slashed, "/") {
		if part == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := filepath.ToSlash(filepath.Clean(slashed)); cleaned != slashed {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, path)
	}
	return nil
}

func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
