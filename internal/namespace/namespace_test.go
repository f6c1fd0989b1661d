package namespace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_ListOrder(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, []Namespace{
		{ID: "default", Name: "Default"},
		{ID: "production", Name: "Production"},
		{ID: "staging", Name: "Staging"},
		{ID: "development", Name: "Development"},
	}, r.List())
}

func TestRegistry_ListIsACopy(t *testing.T) {
	r := NewRegistry()

	list := r.List()
	list[0].ID = "mutated"

	require.Equal(t, "default", r.List()[0].ID)
	require.True(t, r.IsValid("default"))
}

func TestRegistry_IsValid(t *testing.T) {
	r := NewRegistry()

	for _, id := range []string{"default", "production", "staging", "development"} {
		require.True(t, r.IsValid(id), id)
	}
	for _, id := range []string{"", "Default", "prod", "qa"} {
		require.False(t, r.IsValid(id), id)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	ns, ok := r.Lookup("staging")
	require.True(t, ok)
	require.Equal(t, "Staging", ns.Name)

	_, ok = r.Lookup("qa")
	require.False(t, ok)
}

func TestRegistry_NextPrevWrap(t *testing.T) {
	r := NewRegistry()

	require.Equal(t, "production", r.Next("default").ID)
	require.Equal(t, "default", r.Next("development").ID)
	require.Equal(t, "development", r.Prev("default").ID)
	require.Equal(t, "staging", r.Prev("development").ID)

	require.Equal(t, "default", r.Next("unknown").ID)
	require.Equal(t, "development", r.Prev("unknown").ID)
}

func TestRegistry_Suggest(t *testing.T) {
	r := NewRegistry()

	got, ok := r.Suggest("stagin")
	require.True(t, ok)
	require.Equal(t, "staging", got)

	got, ok = r.Suggest("productoin")
	require.True(t, ok)
	require.Equal(t, "production", got)

	_, ok = r.Suggest("something-else-entirely")
	require.False(t, ok)

	_, ok = r.Suggest("default")
	require.False(t, ok, "an exact match is not a suggestion")
}
