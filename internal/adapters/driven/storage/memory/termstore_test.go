package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wpmigrate/internal/core/domain"
)

func TestTermStore_AddAndGet(t *testing.T) {
	store := NewTermStore()

	err := store.Add(domain.Term{ID: 1, Name: "News", Slug: "news", Taxonomy: domain.TaxonomyCategory})
	require.NoError(t, err)

	term, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "news", term.Slug)
	assert.Equal(t, 1, store.Len())
}

func TestTermStore_Get_NotFound(t *testing.T) {
	store := NewTermStore()

	_, err := store.Get(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTermStore_Add_Duplicate(t *testing.T) {
	store := NewTermStore()
	require.NoError(t, store.Add(domain.Term{ID: 5, Taxonomy: domain.TaxonomyTag}))

	err := store.Add(domain.Term{ID: 5, Taxonomy: domain.TaxonomyTag})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Equal(t, 1, store.Len())
}

func TestTermStore_IsFiltered(t *testing.T) {
	store := NewTermStore("usdatagov", "hidden")
	require.NoError(t, store.Add(domain.Term{ID: 1, Name: "usdatagov"}))
	require.NoError(t, store.Add(domain.Term{ID: 2, Name: "open-data"}))
	require.NoError(t, store.Add(domain.Term{ID: 3, Name: "hidden"}))

	tests := []struct {
		name string
		ids  []int64
		want bool
	}{
		{name: "no tags", ids: nil, want: false},
		{name: "unfiltered tag", ids: []int64{2}, want: false},
		{name: "filtered tag", ids: []int64{2, 1}, want: true},
		{name: "second filter name", ids: []int64{3}, want: true},
		{name: "unknown id", ids: []int64{42}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsFiltered(tt.ids))
		})
	}
}

func TestPathRegistry_Claim(t *testing.T) {
	reg := NewPathRegistry()

	require.NoError(t, reg.Claim("about/index.md", "page 2"))
	require.NoError(t, reg.Claim("about/index.md", "page 2"))

	err := reg.Claim("about/index.md", "post 7")
	assert.ErrorIs(t, err, domain.ErrPathCollision)
	assert.Contains(t, err.Error(), "page 2")

	require.NoError(t, reg.Claim("contact/index.md", "post 7"))
}
