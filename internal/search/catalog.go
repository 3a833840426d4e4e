package search

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"servi-search/internal/domain/category"

	"github.com/gosimple/slug"
)

var (
	ErrInvalidID    = errors.New("category id must be positive")
	ErrEmptyName    = errors.New("category name is empty")
	ErrDuplicateID  = errors.New("duplicate category id")
	ErrDuplicateKey = errors.New("duplicate category key")
)

// Collision records a synonym keyword declared by more than one category.
// The earlier category in catalog order keeps it.
type Collision struct {
	Keyword           string
	KeptCategoryID    int
	DroppedCategoryID int
}

type keyword struct {
	raw  string
	norm string
}

type entry struct {
	category category.Category
	name     string
	synonyms []keyword
}

// Catalog is an immutable, pre-normalized set of categories and their
// synonyms. Build one with NewCatalog; it is safe for concurrent use.
type Catalog struct {
	version    string
	entries    []entry
	byID       map[int]int
	byName     map[string]int
	collisions []Collision
}

// NewCatalog validates entries and precomputes the normalized forms used by
// Search. Entry order is the catalog order. When version is empty a content
// hash is used instead.
func NewCatalog(version string, entries []category.Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]entry, 0, len(entries)),
		byID:    make(map[int]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	owner := make(map[string]int)
	keys := make(map[string]int, len(entries))

	for _, in := range entries {
		cat := in.Category
		cat.Name = strings.TrimSpace(cat.Name)
		cat.Key = strings.TrimSpace(cat.Key)

		if cat.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, cat.ID)
		}
		if cat.Name == "" {
			return nil, fmt.Errorf("%w: id=%d", ErrEmptyName, cat.ID)
		}
		if _, ok := c.byID[cat.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, cat.ID)
		}
		if cat.Key == "" {
			cat.Key = slug.Make(cat.Name)
		}
		if other, ok := keys[cat.Key]; ok {
			return nil, fmt.Errorf("%w: %q used by %d and %d", ErrDuplicateKey, cat.Key, other, cat.ID)
		}
		keys[cat.Key] = cat.ID

		e := entry{category: cat, name: Normalize(cat.Name)}

		seen := make(map[string]struct{}, len(in.Synonyms))
		for _, raw := range in.Synonyms {
			raw = strings.TrimSpace(raw)
			n := Normalize(raw)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}

			if keptBy, taken := owner[n]; taken {
				c.collisions = append(c.collisions, Collision{
					Keyword:           raw,
					KeptCategoryID:    keptBy,
					DroppedCategoryID: cat.ID,
				})
				continue
			}
			owner[n] = cat.ID
			e.synonyms = append(e.synonyms, keyword{raw: raw, norm: n})
		}

		c.byID[cat.ID] = len(c.entries)
		if _, ok := c.byName[e.name]; !ok {
			c.byName[e.name] = len(c.entries)
		}
		c.entries = append(c.entries, e)
	}

	c.version = strings.TrimSpace(version)
	if c.version == "" {
		c.version = c.contentHash()
	}
	return c, nil
}

func (c *Catalog) contentHash() string {
	h := sha256.New()
	for _, e := range c.entries {
		h.Write([]byte(strconv.Itoa(e.category.ID)))
		h.Write([]byte{0})
		h.Write([]byte(e.category.Key))
		h.Write([]byte{0})
		h.Write([]byte(e.category.Name))
		for _, k := range e.synonyms {
			h.Write([]byte{0})
			h.Write([]byte(k.raw))
		}
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Categories returns a copy of the categories in catalog order.
func (c *Catalog) Categories() []category.Category {
	if c == nil {
		return []category.Category{}
	}
	out := make([]category.Category, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.category)
	}
	return out
}

// Entries returns categories with the synonyms each one kept after collision
// resolution.
func (c *Catalog) Entries() []category.Entry {
	if c == nil {
		return []category.Entry{}
	}
	out := make([]category.Entry, 0, len(c.entries))
	for _, e := range c.entries {
		syns := make([]string, 0, len(e.synonyms))
		for _, k := range e.synonyms {
			syns = append(syns, k.raw)
		}
		out = append(out, category.Entry{Category: e.category, Synonyms: syns})
	}
	return out
}

func (c *Catalog) ByID(id int) (category.Category, bool) {
	if c == nil {
		return category.Category{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return category.Category{}, false
	}
	return c.entries[i].category, true
}

// LookupName resolves a display name case- and accent-insensitively.
func (c *Catalog) LookupName(name string) (category.Category, bool) {
	if c == nil {
		return category.Category{}, false
	}
	i, ok := c.byName[Normalize(name)]
	if !ok {
		return category.Category{}, false
	}
	return c.entries[i].category, true
}

func (c *Catalog) Collisions() []Collision {
	if c == nil {
		return nil
	}
	out := make([]Collision, len(c.collisions))
	copy(out, c.collisions)
	return out
}
