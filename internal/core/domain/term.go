package domain

// Taxonomy names an index of terms.
type Taxonomy string

// Indexed taxonomies.
const (
	TaxonomyCategory Taxonomy = "category"
	TaxonomyTag      Taxonomy = "post_tag"
	TaxonomyAuthor   Taxonomy = "author"
)

// Term is a category, tag or author entry used to resolve IDs referenced by
// content records.
type Term struct {
	ID       int64
	Name     string
	Slug     string
	Parent   int64 // 0 when the term has no parent
	Taxonomy Taxonomy
}

// Author is a WordPress user as exposed by the users collection.
type Author struct {
	ID   int64
	Name string
	Slug string

	// Fields holds the decoded API object for data file output.
	Fields map[string]any
}

// Term returns the index entry for the author.
func (a Author) Term() Term {
	return Term{
		ID:       a.ID,
		Name:     a.Name,
		Slug:     a.Slug,
		Taxonomy: TaxonomyAuthor,
	}
}
