// Package wordpress implements a content source for the WordPress REST API.
//
// The connector reads the wp/v2 namespace of a single site and exposes every
// collection it needs (posts, pages, categories, tags and users) as a lazy
// sequence of domain values.
//
// # Architecture
//
// The connector follows the driven port pattern defined in [driven.ContentSource].
// It comprises the following components:
//
//   - Source: adapts API objects to domain records, terms and authors
//   - Client: handles HTTP communication and pagination
//   - RateLimiter: optional client-side request throttle
//   - Config: parses and validates connection settings
//
// # Pagination
//
// Collections are read with per_page (at most 100), page, orderby=id and
// order=asc so that the order is stable between runs. A collection ends when:
//
//  1. the page number reaches X-WP-TotalPages, or
//  2. the server returns an empty page, or
//  3. X-WP-TotalPages is absent and the Link header has no rel="next" entry.
//
// Pages are fetched on demand while the sequence is ranged over. Breaking out
// of the range stops fetching; ranging again starts over from page 1.
//
// # Authentication
//
// Public content needs no credentials. When a token is configured it is sent
// as a bearer token using a static oauth2 token source, which works with JWT
// plugins and reverse proxies that accept bearer auth.
//
// # Error Handling
//
// Nothing is retried. A transport failure or non-2xx response is yielded
// once as a [domain.FetchError] and ends the sequence. Non-2xx responses wrap
// an [APIError] carrying the WordPress error code and message when the body
// is the standard {"code","message","data"} envelope.
//
// # Example Usage
//
//	cfg, _ := wordpress.ParseConfig(settings)
//	source := wordpress.NewSource(wordpress.NewClient(cfg))
//
//	for rec, err := range source.Records(ctx, domain.ContentPost) {
//	    if err != nil {
//	        return err
//	    }
//	    // Process record
//	}
package wordpress
