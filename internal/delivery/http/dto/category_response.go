package dto

import (
	"servi-search/internal/domain/category"
	"servi-search/internal/search"
	"servi-search/internal/usecase"
)

const (
	SectionDirect  = "direct"
	SectionRelated = "related"

	SectionDirectLabel  = "Categorías"
	SectionRelatedLabel = "Categorías relacionadas"
)

type CategoryResponse struct {
	ID           int    `json:"id"`
	CategoryKey  string `json:"category_key"`
	CategoryName string `json:"category_name"`
}

type CategoryItemResponse struct {
	CategoryResponse
	MatchedKeyword string `json:"matched_keyword,omitempty"`
}

type SearchSectionResponse struct {
	Key   string                 `json:"key"`
	Label string                 `json:"label"`
	Items []CategoryItemResponse `json:"items"`
}

type CategorySearchResponse struct {
	Query          string                  `json:"query"`
	CatalogVersion string                  `json:"catalog_version"`
	Sections       []SearchSectionResponse `json:"sections"`
}

type CategoryListResponse struct {
	CatalogVersion string             `json:"catalog_version"`
	Categories     []CategoryResponse `json:"categories"`
}

func NewCategoryResponse(c category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, CategoryKey: c.Key, CategoryName: c.Name}
}

func NewCategorySearchResponse(r usecase.CategorySearchResult) CategorySearchResponse {
	direct := make([]CategoryItemResponse, 0, len(r.Results.Direct))
	for _, c := range r.Results.Direct {
		direct = append(direct, CategoryItemResponse{CategoryResponse: NewCategoryResponse(c)})
	}

	related := make([]CategoryItemResponse, 0, len(r.Results.Synonyms))
	for _, m := range r.Results.Synonyms {
		related = append(related, CategoryItemResponse{
			CategoryResponse: NewCategoryResponse(m.Category),
			MatchedKeyword:   m.MatchedKeyword,
		})
	}

	return CategorySearchResponse{
		Query:          r.Query,
		CatalogVersion: r.CatalogVersion,
		Sections: []SearchSectionResponse{
			{Key: SectionDirect, Label: SectionDirectLabel, Items: direct},
			{Key: SectionRelated, Label: SectionRelatedLabel, Items: related},
		},
	}
}

func NewCategoryListResponse(c *search.Catalog) CategoryListResponse {
	cats := c.Categories()
	out := make([]CategoryResponse, 0, len(cats))
	for _, it := range cats {
		out = append(out, NewCategoryResponse(it))
	}
	return CategoryListResponse{CatalogVersion: c.Version(), Categories: out}
}
