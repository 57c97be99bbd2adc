package service

import (
	"testing"

	"github.com/futurexhq/futurex/internal/lms/store"
	"github.com/stretchr/testify/require"
)

func TestCatalogAll(t *testing.T) {
	t.Parallel()

	catalog := &CatalogService{}

	all := catalog.All()
	require.Len(t, all, 4)
	require.Equal(t, "c1", all[0].ID)
	require.Equal(t, "Full Stack React Development", all[0].Title)
}

func TestCatalogGet(t *testing.T) {
	t.Parallel()

	catalog := &CatalogService{}

	course, err := catalog.Get("c2")
	require.NoError(t, err)
	require.Equal(t, "Data Science with Python", course.Title)

	_, err = catalog.Get("c99")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalogByCategory(t *testing.T) {
	t.Parallel()

	catalog := &CatalogService{}

	design := catalog.ByCategory("design")
	require.Len(t, design, 1)
	require.Equal(t, "c4", design[0].ID)

	require.Empty(t, catalog.ByCategory("cooking"))
}
