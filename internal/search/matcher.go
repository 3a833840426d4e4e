package search

import (
	"sort"
	"strings"

	"servi-search/internal/domain/category"
)

// MaxResultsPerGroup caps each result list.
const MaxResultsPerGroup = 8

// SynonymMatch is a category reached through one of its synonym keywords.
type SynonymMatch struct {
	Category       category.Category
	MatchedKeyword string
}

// Results holds the two groups returned by Search. A category never appears
// in both lists, nor twice in one list.
type Results struct {
	Direct   []category.Category
	Synonyms []SynonymMatch
}

func emptyResults() Results {
	return Results{Direct: []category.Category{}, Synonyms: []SynonymMatch{}}
}

// Search matches query against category names and synonym keywords.
//
// Direct matches are ordered by the position of the first occurrence of the
// query in the normalized name, then by catalog order. Synonym matches follow
// catalog order and carry the first matching keyword of each category.
// Queries shorter than MinQueryLength once normalized match nothing.
func Search(query string, c *Catalog) Results {
	if c == nil {
		return emptyResults()
	}

	q := Normalize(query)
	if tooShort(q) {
		return emptyResults()
	}

	type hit struct {
		idx int
		pos int
	}

	hits := make([]hit, 0, 8)
	direct := make(map[int]struct{}, 8)
	for i := range c.entries {
		pos := strings.Index(c.entries[i].name, q)
		if pos < 0 {
			continue
		}
		hits = append(hits, hit{idx: i, pos: pos})
		direct[i] = struct{}{}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].pos < hits[j].pos
	})

	res := emptyResults()
	for _, h := range hits {
		if len(res.Direct) == MaxResultsPerGroup {
			break
		}
		res.Direct = append(res.Direct, c.entries[h.idx].category)
	}

	for i := range c.entries {
		if len(res.Synonyms) == MaxResultsPerGroup {
			break
		}
		if _, ok := direct[i]; ok {
			continue
		}
		for _, k := range c.entries[i].synonyms {
			if !strings.Contains(k.norm, q) {
				continue
			}
			res.Synonyms = append(res.Synonyms, SynonymMatch{
				Category:       c.entries[i].category,
				MatchedKeyword: k.raw,
			})
			break
		}
	}

	return res
}
