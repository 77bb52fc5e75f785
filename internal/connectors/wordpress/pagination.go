package wordpress

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// Pagination headers sent by the WordPress REST API.
const (
	HeaderTotal      = "X-WP-Total"
	HeaderTotalPages = "X-WP-TotalPages"
	HeaderLink       = "Link"
)

// linkRegex matches Link header entries: <url>; rel="type".
var linkRegex = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// ParseNextLink extracts the "next" URL from a Link header.
// Returns empty string if no next link is found.
func ParseNextLink(linkHeader string) string {
	return ParseAllLinks(linkHeader)["next"]
}

// ParseAllLinks extracts all URLs from a Link header by relationship type.
// Returns a map of rel type to URL.
func ParseAllLinks(linkHeader string) map[string]string {
	links := make(map[string]string)
	if linkHeader == "" {
		return links
	}

	for _, part := range strings.Split(linkHeader, ",") {
		matches := linkRegex.FindStringSubmatch(strings.TrimSpace(part))
		if len(matches) == 3 {
			links[matches[2]] = matches[1]
		}
	}

	return links
}

// Page is one page of a collection.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// Items are the decoded objects in server order.
	Items []map[string]any

	// Total is X-WP-Total, or -1 when the header is absent.
	Total int

	// TotalPages is X-WP-TotalPages, or -1 when the header is absent.
	TotalPages int

	// Next is the rel="next" URL from the Link header.
	Next string
}

// HasNext reports whether another page should be requested.
func (p *Page) HasNext() bool {
	if len(p.Items) == 0 {
		return false
	}
	if p.TotalPages >= 0 {
		return p.Number < p.TotalPages
	}
	return p.Next != ""
}

// readPagination fills the header-derived fields of p.
func readPagination(p *Page, header http.Header) {
	p.Total = headerInt(header, HeaderTotal)
	p.TotalPages = headerInt(header, HeaderTotalPages)
	p.Next = ParseNextLink(header.Get(HeaderLink))
}

func headerInt(header http.Header, key string) int {
	raw := strings.TrimSpace(header.Get(key))
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return -1
	}
	return n
}
