package category

// Category is a top-level service classification shown to clients.
type Category struct {
	ID   int
	Key  string
	Name string
}

// Tag is a synonym keyword attached to a category. Position keeps the
// author's declaration order.
type Tag struct {
	CategoryID int
	Keyword    string
	Position   int
}

// Entry is a category together with its synonym keywords, in declared order.
type Entry struct {
	Category Category
	Synonyms []string
}
