package xml2excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildPersons(t *testing.T) {
	sheets := []Sheet{{
		Name: "persons",
		Records: []*RowRecord{
			record("id", "1", "name", "John Doe", "email", "j@x.com"),
			record("id", "2", "name", "Jane Smith"),
		},
	}}

	root := Rebuild(sheets)
	assert.Equal(t, "root", root.Name)
	require.Len(t, root.Children, 1)

	container := root.Children[0]
	assert.Equal(t, "persons", container.Name)
	require.Len(t, container.Children, 2)

	first := container.Children[0]
	assert.Equal(t, "person", first.Name)
	require.Len(t, first.Children, 3)
	assert.Equal(t, "id", first.Children[0].Name)
	assert.Equal(t, "1", first.Children[0].Text)
	assert.Equal(t, "email", first.Children[2].Name)
	assert.Equal(t, "j@x.com", first.Children[2].Text)

	second := container.Children[1]
	require.Len(t, second.Children, 2)
	for _, c := range second.Children {
		assert.NotEqual(t, "email", c.Name, "blank field must not produce an element")
	}
}

func TestRebuildOmitsEmptyValues(t *testing.T) {
	rec := record("a", "x", "b", "")
	root := Rebuild([]Sheet{{Name: "rows", Records: []*RowRecord{rec}}})

	row := root.Children[0].Children[0]
	require.Len(t, row.Children, 1)
	assert.Equal(t, "a", row.Children[0].Name)
}

func TestRebuildSanitizesNames(t *testing.T) {
	rec := record("first name", "John", "1st", "x")
	root := Rebuild([]Sheet{{Name: "my rows", Records: []*RowRecord{rec}}})

	container := root.Children[0]
	assert.Equal(t, "my_x0020_rows", container.Name)
	row := container.Children[0]
	assert.Equal(t, "my_x0020_row", row.Name)
	assert.Equal(t, "first_x0020_name", row.Children[0].Name)
	assert.Equal(t, "_1st", row.Children[1].Name)
}

func TestRebuildAlwaysSingleRoot(t *testing.T) {
	assert.Equal(t, &ElementNode{Name: "root"}, Rebuild(nil))

	root := Rebuild([]Sheet{{Name: "as"}, {Name: "bs"}, {Name: "cs"}})
	require.Len(t, root.Children, 3)
	assert.Equal(t, "as", root.Children[0].Name)
	assert.Equal(t, "cs", root.Children[2].Name)
}

func TestRebuildWithOverrides(t *testing.T) {
	root := RebuildWith(
		[]Sheet{{Name: "people", Records: []*RowRecord{record("id", "1")}}},
		RebuildOptions{
			RootName:    "dataset",
			Singularize: func(string) string { return "person" },
		},
	)
	assert.Equal(t, "dataset", root.Name)
	assert.Equal(t, "people", root.Children[0].Name)
	assert.Equal(t, "person", root.Children[0].Children[0].Name)
}
