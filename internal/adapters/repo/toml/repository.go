package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/ledgerline/internal/domain"
	"github.com/bnema/ledgerline/internal/ports"
	"github.com/bnema/ledgerline/internal/story"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ContentPathKey  = "content.path"
	EmbeddedSource  = "embedded"
	contentFileMode = 0o644
	contentDirMode  = 0o755
	tempFilePattern = ".content-*.toml.tmp"
)

var ErrReadOnlyContent = errors.New("embedded content is read-only")

// Repository loads the story from a TOML file, or from the story compiled into
// the binary when no path is configured.
type Repository struct {
	contentPath string
	validate    *validator.Validate
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ContentRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	return NewFileRepository(cfg.GetString(ContentPathKey))
}

// NewFileRepository reads and writes the content file at path. An empty path
// selects the embedded story.
func NewFileRepository(path string) (*Repository, error) {
	repo := &Repository{validate: validator.New()}
	if path == "" {
		repo.mu = lockForPath(EmbeddedSource)
		return repo, nil
	}

	contentPath, err := normalizeContentPath(path)
	if err != nil {
		return nil, err
	}
	repo.contentPath = contentPath
	repo.mu = lockForPath(contentPath)

	return repo, nil
}

// Source names where content comes from: a file path or "embedded".
func (r *Repository) Source() string {
	if r.contentPath == "" {
		return EmbeddedSource
	}
	return r.contentPath
}

func (r *Repository) Load(ctx context.Context) (domain.Content, error) {
	if err := ctx.Err(); err != nil {
		return domain.Content{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Content{}, err
	}

	content, err := fromSchema(file)
	if err != nil {
		return domain.Content{}, fmt.Errorf("convert content from %s: %w", r.Source(), err)
	}

	return content, nil
}

// Save writes content to the repository's file, replacing it atomically.
func (r *Repository) Save(ctx context.Context, content domain.Content) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.contentPath == "" {
		return ErrReadOnlyContent
	}

	file, err := toSchema(content)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data := story.Default()
	if r.contentPath != "" {
		raw, err := os.ReadFile(r.contentPath)
		if err != nil {
			return fileSchema{}, fmt.Errorf("read content file: %w", err)
		}
		data = raw
	}

	return r.decode(data)
}

func (r *Repository) decode(data []byte) (fileSchema, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode content file %s: %w", r.Source(), err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	if err := r.validate.Struct(file); err != nil {
		return fileSchema{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidContent, r.Source(), err)
	}

	return file, nil
}

func normalizeContentPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve content path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.contentPath), contentDirMode); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode content file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.contentPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp content file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp content file: %w", err)
	}

	if err := tempFile.Chmod(contentFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp content file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp content file: %w", err)
	}

	if err := os.Rename(tempName, r.contentPath); err != nil {
		return fmt.Errorf("replace content file: %w", err)
	}

	cleanup = false
	return nil
}
