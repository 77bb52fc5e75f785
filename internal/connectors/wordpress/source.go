package wordpress

import (
	"context"
	"fmt"
	"iter"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Collection names of the wp/v2 namespace.
const (
	CollectionCategories = "categories"
	CollectionTags       = "tags"
	CollectionUsers      = "users"
)

// Source exposes a WordPress site as a driven.ContentSource.
type Source struct {
	client *Client
}

// NewSource creates a content source backed by client.
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// Records yields the posts or pages of a content type.
func (s *Source) Records(ctx context.Context, contentType domain.ContentType) iter.Seq2[domain.ContentRecord, error] {
	return func(yield func(domain.ContentRecord, error) bool) {
		for raw, err := range s.client.Each(ctx, contentType.Collection()) {
			if err != nil {
				yield(domain.ContentRecord{}, err)
				return
			}
			if !yield(decodeRecord(raw, contentType), nil) {
				return
			}
		}
	}
}

// Terms yields every category or tag.
func (s *Source) Terms(ctx context.Context, taxonomy domain.Taxonomy) iter.Seq2[domain.Term, error] {
	return func(yield func(domain.Term, error) bool) {
		collection, err := taxonomyCollection(taxonomy)
		if err != nil {
			yield(domain.Term{}, err)
			return
		}

		for raw, err := range s.client.Each(ctx, collection) {
			if err != nil {
				yield(domain.Term{}, err)
				return
			}
			if !yield(decodeTerm(raw, taxonomy), nil) {
				return
			}
		}
	}
}

// Authors yields every user.
func (s *Source) Authors(ctx context.Context) iter.Seq2[domain.Author, error] {
	return func(yield func(domain.Author, error) bool) {
		for raw, err := range s.client.Each(ctx, CollectionUsers) {
			if err != nil {
				yield(domain.Author{}, err)
				return
			}
			if !yield(decodeAuthor(raw), nil) {
				return
			}
		}
	}
}

func taxonomyCollection(taxonomy domain.Taxonomy) (string, error) {
	switch taxonomy {
	case domain.TaxonomyCategory:
		return CollectionCategories, nil
	case domain.TaxonomyTag:
		return CollectionTags, nil
	default:
		return "", fmt.Errorf("%w: taxonomy %q has no collection", domain.ErrInvalidInput, taxonomy)
	}
}
