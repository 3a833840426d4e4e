package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"servi-search/internal/domain/category"
	"servi-search/internal/search"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

var (
	ErrInvalidCatalog = errors.New("invalid catalog")

	validate = validator.New()
)

// Document is the on-disk catalog format.
type Document struct {
	Version    string          `yaml:"version"`
	Categories []DocumentEntry `yaml:"categories" validate:"dive"`
}

type DocumentEntry struct {
	ID       int      `yaml:"id" validate:"required,gt=0"`
	Key      string   `yaml:"key" validate:"omitempty,max=100"`
	Name     string   `yaml:"name" validate:"required,max=150"`
	Synonyms []string `yaml:"synonyms"`
}

// Parse decodes and validates a YAML catalog and builds the immutable search
// catalog from it.
func Parse(b []byte) (*search.Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, describeValidation(err))
	}

	entries := make([]category.Entry, 0, len(doc.Categories))
	for _, it := range doc.Categories {
		entries = append(entries, category.Entry{
			Category: category.Category{ID: it.ID, Key: it.Key, Name: it.Name},
			Synonyms: it.Synonyms,
		})
	}

	c, err := search.NewCatalog(doc.Version, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return c, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+":"+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

// FileSource loads a YAML catalog from Path, or the bundled catalog when Path
// is empty.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	if strings.TrimSpace(s.Path) == "" {
		return "embedded"
	}
	return "file:" + s.Path
}

func (s FileSource) Load(_ context.Context) (*search.Catalog, error) {
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return Parse(defaultCatalog)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Default returns the bundled catalog.
func Default() (*search.Catalog, error) {
	return Parse(defaultCatalog)
}
