package search

import (
	"fmt"
	"testing"

	"servi-search/internal/domain/category"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog("test", []category.Entry{
		{Category: category.Category{ID: 1, Name: "Plomería"}, Synonyms: []string{"grifo", "fuga de agua", "tubería"}},
		{Category: category.Category{ID: 2, Name: "Plomería y Grifería"}, Synonyms: []string{"griferías", "llave de paso"}},
		{Category: category.Category{ID: 3, Name: "Electricidad"}, Synonyms: []string{"enchufe", "cortocircuito", "luz"}},
		{Category: category.Category{ID: 4, Name: "Carpintería"}, Synonyms: []string{"mueble", "puerta de madera"}},
		{Category: category.Category{ID: 5, Name: "Jardinería"}, Synonyms: []string{"césped", "poda"}},
	})
	require.NoError(t, err)
	return c
}

func ids(cats []category.Category) []int {
	out := make([]int, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.ID)
	}
	return out
}

func synonymIDs(ms []SynonymMatch) []int {
	out := make([]int, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Category.ID)
	}
	return out
}

func TestSearch_ShortQueryIsEmpty(t *testing.T) {
	c := testCatalog(t)
	for _, q := range []string{"", " ", "a", "  a  ", "é", "\t\n"} {
		res := Search(q, c)
		assert.Empty(t, res.Direct, "query %q", q)
		assert.Empty(t, res.Synonyms, "query %q", q)
		assert.NotNil(t, res.Direct)
		assert.NotNil(t, res.Synonyms)
	}
}

func TestSearch_ShortAfterNormalizationIsEmpty(t *testing.T) {
	c := testCatalog(t)
	// Each of these folds to a single letter.
	for _, q := range []string{"a.", "a!", "-e", "e\u0301", " ¿a? "} {
		res := Search(q, c)
		assert.Empty(t, res.Direct, "query %q", q)
		assert.Empty(t, res.Synonyms, "query %q", q)
	}

	res := Search("e\u0301l", c)
	assert.Equal(t, []int{3}, ids(res.Direct))
}

func TestSearch_SynonymOnly(t *testing.T) {
	c, err := NewCatalog("", []category.Entry{
		{Category: category.Category{ID: 1, Name: "Plomería"}, Synonyms: []string{"grifo"}},
	})
	require.NoError(t, err)

	res := Search("grif", c)
	assert.Empty(t, res.Direct)
	require.Len(t, res.Synonyms, 1)
	assert.Equal(t, 1, res.Synonyms[0].Category.ID)
	assert.Equal(t, "Plomería", res.Synonyms[0].Category.Name)
	assert.Equal(t, "grifo", res.Synonyms[0].MatchedKeyword)
}

func TestSearch_DirectExcludesSynonym(t *testing.T) {
	c := testCatalog(t)

	res := Search("grif", c)
	assert.Equal(t, []int{2}, ids(res.Direct))
	assert.Equal(t, []int{1}, synonymIDs(res.Synonyms))
	assert.Equal(t, "grifo", res.Synonyms[0].MatchedKeyword)
}

func TestSearch_AccentAndCaseInsensitive(t *testing.T) {
	c := testCatalog(t)

	a := Search("plomeria", c)
	b := Search("Plomería", c)
	d := Search("PLOMERÍA", c)
	assert.Empty(t, cmp.Diff(a, b))
	assert.Empty(t, cmp.Diff(a, d))
	assert.Equal(t, []int{1, 2}, ids(a.Direct))

	syn := Search("cesped", c)
	assert.Equal(t, []int{5}, synonymIDs(syn.Synonyms))
	assert.Equal(t, "césped", syn.Synonyms[0].MatchedKeyword)
}

func TestSearch_TrimsWhitespace(t *testing.T) {
	c := testCatalog(t)
	assert.Empty(t, cmp.Diff(Search("plomeria", c), Search("  plomeria  ", c)))
}

func TestSearch_DirectRankedByMatchPosition(t *testing.T) {
	c, err := NewCatalog("", []category.Entry{
		{Category: category.Category{ID: 1, Name: "Reparación de techos"}},
		{Category: category.Category{ID: 2, Name: "Techos y canaletas"}},
		{Category: category.Category{ID: 3, Name: "Limpieza de techos"}},
		{Category: category.Category{ID: 4, Name: "Techado industrial"}},
	})
	require.NoError(t, err)

	res := Search("tech", c)
	// offset 0 for 2 and 4 (catalog order), then 3 (offset 12), then 1 (offset 14)
	assert.Equal(t, []int{2, 4, 3, 1}, ids(res.Direct))
}

func TestSearch_FirstMatchingKeywordPerCategory(t *testing.T) {
	c, err := NewCatalog("", []category.Entry{
		{Category: category.Category{ID: 1, Name: "Pintura"}, Synonyms: []string{"pared", "paredes interiores", "parquet"}},
	})
	require.NoError(t, err)

	res := Search("par", c)
	require.Len(t, res.Synonyms, 1)
	assert.Equal(t, "pared", res.Synonyms[0].MatchedKeyword)
}

func TestSearch_CapsBothGroups(t *testing.T) {
	entries := make([]category.Entry, 0, 30)
	for i := 1; i <= 15; i++ {
		entries = append(entries, category.Entry{
			Category: category.Category{ID: i, Name: fmt.Sprintf("Servicio de limpieza %02d", i)},
		})
	}
	for i := 16; i <= 30; i++ {
		entries = append(entries, category.Entry{
			Category: category.Category{ID: i, Name: fmt.Sprintf("Oficio %02d", i)},
			Synonyms: []string{fmt.Sprintf("limpieza profunda %02d", i)},
		})
	}
	c, err := NewCatalog("", entries)
	require.NoError(t, err)

	res := Search("limpieza", c)
	assert.Len(t, res.Direct, MaxResultsPerGroup)
	assert.Len(t, res.Synonyms, MaxResultsPerGroup)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, ids(res.Direct))
	assert.Equal(t, []int{16, 17, 18, 19, 20, 21, 22, 23}, synonymIDs(res.Synonyms))
}

func TestSearch_TruncatedDirectStillExcludedFromSynonyms(t *testing.T) {
	entries := make([]category.Entry, 0, 10)
	for i := 1; i <= 10; i++ {
		entries = append(entries, category.Entry{
			Category: category.Category{ID: i, Name: fmt.Sprintf("Mudanza %02d", i)},
			Synonyms: []string{fmt.Sprintf("mudanza express %02d", i)},
		})
	}
	c, err := NewCatalog("", entries)
	require.NoError(t, err)

	res := Search("mudanza", c)
	assert.Len(t, res.Direct, MaxResultsPerGroup)
	assert.Empty(t, res.Synonyms)
}

func TestSearch_Invariants(t *testing.T) {
	c := testCatalog(t)
	queries := []string{"pl", "ri", "er", "ía", "de", "grif", "luz", "madera", "zz", "??", "a b", "🙂🙂", "ñandú"}

	for _, q := range queries {
		res := Search(q, c)

		assert.LessOrEqual(t, len(res.Direct), MaxResultsPerGroup)
		assert.LessOrEqual(t, len(res.Synonyms), MaxResultsPerGroup)

		direct := map[int]struct{}{}
		for _, d := range res.Direct {
			_, dup := direct[d.ID]
			assert.False(t, dup, "query %q: duplicate direct %d", q, d.ID)
			direct[d.ID] = struct{}{}
		}
		syn := map[int]struct{}{}
		for _, s := range res.Synonyms {
			_, inDirect := direct[s.Category.ID]
			assert.False(t, inDirect, "query %q: %d in both lists", q, s.Category.ID)
			_, dup := syn[s.Category.ID]
			assert.False(t, dup, "query %q: duplicate synonym %d", q, s.Category.ID)
			syn[s.Category.ID] = struct{}{}
		}

		again := Search(q, c)
		assert.Empty(t, cmp.Diff(res, again), "query %q not deterministic", q)
	}
}

func TestSearch_PunctuationOnlyQuery(t *testing.T) {
	res := Search("--", testCatalog(t))
	assert.Empty(t, res.Direct)
	assert.Empty(t, res.Synonyms)
}

func TestSearch_NilCatalog(t *testing.T) {
	res := Search("plomeria", nil)
	assert.Empty(t, res.Direct)
	assert.Empty(t, res.Synonyms)
}
