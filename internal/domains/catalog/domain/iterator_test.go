package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(it *Iterator) []string {
	var names []string
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		names = append(names, p.Name())
	}
	return names
}

func TestIterator_YieldsInInsertionOrder(t *testing.T) {
	c, err := NewCategory("C", "", []Product{
		newTestItem(t, "Product 1", 100, 5),
		newTestItem(t, "Product 2", 200, 3),
	}, WithCategoryStats(NewStats()))
	require.NoError(t, err)

	it := c.Iterate()
	require.Equal(t, []string{"Product 1", "Product 2"}, collect(it))

	p, ok := it.Next()
	require.False(t, ok)
	require.Nil(t, p)
}

func TestIterator_Independent(t *testing.T) {
	c, err := NewCategory("C", "", []Product{
		newTestItem(t, "a", 1, 1),
		newTestItem(t, "b", 1, 1),
	}, WithCategoryStats(NewStats()))
	require.NoError(t, err)

	first := c.Iterate()
	p, ok := first.Next()
	require.True(t, ok)
	require.Equal(t, "a", p.Name())

	second := c.Iterate()
	require.Equal(t, []string{"a", "b"}, collect(second))
	require.Equal(t, []string{"b"}, collect(first))
}

func TestIterator_EmptyCategory(t *testing.T) {
	c, err := NewCategory("Empty", "", nil, WithCategoryStats(NewStats()))
	require.NoError(t, err)

	_, ok := c.Iterate().Next()
	require.False(t, ok)
}

func TestIterator_SnapshotIgnoresLaterAdditions(t *testing.T) {
	c, err := NewCategory("C", "", []Product{newTestItem(t, "a", 1, 1)}, WithCategoryStats(NewStats()))
	require.NoError(t, err)

	it := c.Iterate()
	require.NoError(t, c.AddProduct(newTestItem(t, "b", 1, 1)))

	require.Equal(t, []string{"a"}, collect(it))
	require.Equal(t, []string{"a", "b"}, collect(c.Iterate()))
}

func TestCategory_All(t *testing.T) {
	c, err := NewCategory("C", "", []Product{
		newTestItem(t, "a", 1, 1),
		newTestItem(t, "b", 1, 1),
		newTestItem(t, "c", 1, 1),
	}, WithCategoryStats(NewStats()))
	require.NoError(t, err)

	var names []string
	for p := range c.All() {
		names = append(names, p.Name())
		if len(names) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, names)
}

func TestStats_SnapshotAndReset(t *testing.T) {
	s := NewStats()
	_, err := NewCategory("C", "", []Product{newTestItem(t, "a", 1, 2)}, WithCategoryStats(s))
	require.NoError(t, err)
	p := newTestItem(t, "b", 1, 2)
	_, err = NewOrder(p, 1, WithOrderStats(s))
	require.NoError(t, err)

	require.Equal(t, Snapshot{Categories: 1, Products: 1, Orders: 1}, s.Snapshot())
	s.Reset()
	require.Equal(t, Snapshot{}, s.Snapshot())
}
