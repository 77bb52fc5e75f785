package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

// fakeSite serves collections split into pages of perPage items.
type fakeSite struct {
	collections map[string][]map[string]any
	perPage     int
	omitTotals  bool
	requests    atomic.Int32
	lastQuery   atomic.Value
	lastHeader  atomic.Value
}

func newFakeSite(perPage int) *fakeSite {
	return &fakeSite{collections: make(map[string][]map[string]any), perPage: perPage}
}

func (f *fakeSite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	f.lastQuery.Store(r.URL.Query())
	f.lastHeader.Store(r.Header.Clone())

	name := r.URL.Path[len("/wp-json/wp/v2/"):]
	items, ok := f.collections[name]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"rest_no_route","message":"No route was found matching the URL and request method.","data":{"status":404}}`))
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + f.perPage - 1) / f.perPage
	if page > totalPages && totalPages > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"rest_post_invalid_page_number","message":"The page number requested is larger than the number of pages available.","data":{"status":400}}`))
		return
	}

	start := (page - 1) * f.perPage
	end := min(start+f.perPage, len(items))
	chunk := items[start:end]

	if !f.omitTotals {
		w.Header().Set(HeaderTotal, strconv.Itoa(len(items)))
		w.Header().Set(HeaderTotalPages, strconv.Itoa(totalPages))
	}
	if page < totalPages {
		next := fmt.Sprintf("http://%s%s?page=%d", r.Host, r.URL.Path, page+1)
		w.Header().Set(HeaderLink, fmt.Sprintf(`<%s>; rel="next"`, next))
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(chunk)
}

func posts(n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		id := i + 1
		out[i] = map[string]any{
			"id":      id,
			"type":    "post",
			"slug":    fmt.Sprintf("post-%d", id),
			"link":    fmt.Sprintf("https://example.org/post-%d/", id),
			"title":   map[string]any{"rendered": fmt.Sprintf("Post %d", id)},
			"content": map[string]any{"rendered": "<p>Body</p>"},
		}
	}
	return out
}

func newTestClient(t *testing.T, site http.Handler, mutate func(*Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(site)
	t.Cleanup(srv.Close)

	cfg, err := ParseConfig(domain.Settings{BaseURL: srv.URL, PerPage: 2})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}
	return NewClient(cfg)
}

func collect(t *testing.T, c *Client, collection string) ([]map[string]any, error) {
	t.Helper()
	var items []map[string]any
	for item, err := range c.Each(context.Background(), collection) {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}

func TestClient_Each_FollowsTotalPages(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(5)
	client := newTestClient(t, site, nil)

	items, err := collect(t, client, "posts")

	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, int64(1), items[0]["id"])
	assert.Equal(t, int64(5), items[4]["id"])
	assert.Equal(t, int32(3), site.requests.Load())
}

func TestClient_Each_FollowsLinkHeaderWithoutTotals(t *testing.T) {
	site := newFakeSite(2)
	site.omitTotals = true
	site.collections["pages"] = posts(4)
	client := newTestClient(t, site, nil)

	items, err := collect(t, client, "pages")

	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, int32(2), site.requests.Load())
}

func TestClient_Each_EmptyCollection(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = []map[string]any{}
	client := newTestClient(t, site, nil)

	items, err := collect(t, client, "posts")

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int32(1), site.requests.Load())
}

func TestClient_Each_SendsPaginationParams(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(1)
	client := newTestClient(t, site, func(cfg *Config) {
		cfg.UserAgent = "wpmigrate-test"
	})

	_, err := collect(t, client, "posts")
	require.NoError(t, err)

	q := site.lastQuery.Load().(url.Values)
	assert.Equal(t, []string{"2"}, q["per_page"])
	assert.Equal(t, []string{"1"}, q["page"])
	assert.Equal(t, []string{"id"}, q["orderby"])
	assert.Equal(t, []string{"asc"}, q["order"])

	header := site.lastHeader.Load().(http.Header)
	assert.Equal(t, "wpmigrate-test", header.Get("User-Agent"))
	assert.Empty(t, header.Get("Authorization"))
}

func TestClient_Each_SendsBearerToken(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(1)
	client := newTestClient(t, site, func(cfg *Config) {
		cfg.Token = "s3cret"
	})

	_, err := collect(t, client, "posts")
	require.NoError(t, err)

	header := site.lastHeader.Load().(http.Header)
	assert.Equal(t, "Bearer s3cret", header.Get("Authorization"))
}

func TestClient_Each_SendsBasicAuth(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(1)
	client := newTestClient(t, site, func(cfg *Config) {
		cfg.User = "editor"
		cfg.Token = "abcd efgh ijkl"
	})

	_, err := collect(t, client, "posts")
	require.NoError(t, err)

	req := &http.Request{Header: site.lastHeader.Load().(http.Header)}
	user, pass, ok := req.BasicAuth()
	require.True(t, ok, "expected Basic credentials")
	assert.Equal(t, "editor", user)
	assert.Equal(t, "abcd efgh ijkl", pass)
}

func TestClient_Each_APIErrorIsFetchError(t *testing.T) {
	site := newFakeSite(2)
	client := newTestClient(t, site, nil)

	items, err := collect(t, client, "missing")

	assert.Empty(t, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.True(t, IsNotFound(err))

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "missing", fetchErr.Collection)
	assert.Equal(t, 1, fetchErr.Page)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "rest_no_route", apiErr.Code)
}

func TestClient_Each_ServerErrorMidway(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 2 {
			http.Error(w, "upstream down", http.StatusBadGateway)
			return
		}
		w.Header().Set(HeaderTotalPages, "3")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	})
	client := newTestClient(t, handler, nil)

	items, err := collect(t, client, "posts")

	assert.Len(t, items, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_Each_MalformedPayload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})
	client := newTestClient(t, handler, nil)

	_, err := collect(t, client, "posts")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestClient_Each_BreakStopsFetching(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(6)
	client := newTestClient(t, site, nil)

	for range client.Each(context.Background(), "posts") {
		break
	}

	assert.Equal(t, int32(1), site.requests.Load())
}

func TestClient_Each_Restartable(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(3)
	client := newTestClient(t, site, nil)

	seq := client.Each(context.Background(), "posts")
	var first, second []any
	for item, err := range seq {
		require.NoError(t, err)
		first = append(first, item["id"])
	}
	for item, err := range seq {
		require.NoError(t, err)
		second = append(second, item["id"])
	}

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestClient_Each_CancelledContext(t *testing.T) {
	site := newFakeSite(2)
	site.collections["posts"] = posts(3)
	client := newTestClient(t, site, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var gotErr error
	for _, err := range client.Each(ctx, "posts") {
		gotErr = err
	}

	assert.ErrorIs(t, gotErr, context.Canceled)
	assert.ErrorIs(t, gotErr, domain.ErrFetch)
	assert.Equal(t, int32(0), site.requests.Load())
}

func TestClient_Each_NormalisesNumbers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderTotalPages, "1")
		_, _ = w.Write([]byte(`[{"id":7,"score":1.5,"tags":[3,4],"meta":{"views":12}}]`))
	})
	client := newTestClient(t, handler, nil)

	items, err := collect(t, client, "posts")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0]["id"])
	assert.Equal(t, 1.5, items[0]["score"])
	assert.Equal(t, []any{int64(3), int64(4)}, items[0]["tags"])
	assert.Equal(t, map[string]any{"views": int64(12)}, items[0]["meta"])
}
