package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

// ContentSource reads collections from a content API.
//
// Every method returns a lazy, forward-only sequence. Pages are fetched on
// demand as the sequence is ranged over; ranging again restarts from the
// first page. A fetch failure is yielded once as a non-nil error (a
// *domain.FetchError) and ends the sequence.
type ContentSource interface {
	// Records yields the posts or pages of the given content type in
	// ascending ID order.
	Records(ctx context.Context, contentType domain.ContentType) iter.Seq2[domain.ContentRecord, error]

	// Terms yields every term of a taxonomy (categories or tags).
	Terms(ctx context.Context, taxonomy domain.Taxonomy) iter.Seq2[domain.Term, error]

	// Authors yields every user visible to the client.
	Authors(ctx context.Context) iter.Seq2[domain.Author, error]
}
