package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	xml2excel "github.com/yassir56069/XML2Excel"
)

func personGroup() *xml2excel.RowGroup {
	r1 := xml2excel.NewRowRecord()
	r1.Set("id", "1")
	r1.Set("name", "John Doe")
	r1.Set("email", "j@x.com")
	r2 := xml2excel.NewRowRecord()
	r2.Set("id", "2")
	r2.Set("name", "Jane Smith")
	return &xml2excel.RowGroup{Name: "person", Records: []*xml2excel.RowRecord{r1, r2}}
}

func TestWorkbookPersons(t *testing.T) {
	bs, err := Workbook([]*xml2excel.RowGroup{personGroup()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(bs))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"person"}, f.GetSheetList())

	rows, err := f.GetRows("person")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "email"}, rows[0])
	assert.Equal(t, []string{"1", "John Doe", "j@x.com"}, rows[1])
	assert.Equal(t, []string{"2", "Jane Smith"}, rows[2], "absent field renders blank")
}

func TestWorkbookMultipleSheets(t *testing.T) {
	a := xml2excel.NewRowRecord()
	a.Set("x", "1")
	groups := []*xml2excel.RowGroup{
		personGroup(),
		{Name: "order.item", Records: []*xml2excel.RowRecord{a}},
	}

	bs, err := Workbook(groups)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(bs))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"person", "order.item"}, f.GetSheetList())
}

func TestWorkbookEmptyGroupList(t *testing.T) {
	bs, err := Workbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(bs))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 1, "a workbook needs at least one sheet")
}

func TestSheetName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"person", "person"},
		{"a/b:c", "abc"},
		{"[*?]", "Sheet"},
		{strings.Repeat("x", 40), strings.Repeat("x", 31)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SheetName(c.in), "input %q", c.in)
	}
}

func TestSheetNamerResolvesCollisions(t *testing.T) {
	n := newSheetNamer()

	long := strings.Repeat("Invoices2024ArchiveNorth", 2) // 48 chars
	first := n.claim(long)
	second := n.claim(long)
	third := n.claim(long)

	assert.Equal(t, long[:31], first)
	assert.Equal(t, long[:30]+"2", second)
	assert.Equal(t, long[:30]+"3", third)
	for _, name := range []string{first, second, third} {
		assert.LessOrEqual(t, len(name), maxSheetName)
	}

	// Different inputs whose fitted forms collide also get suffixes.
	assert.Equal(t, "abc", n.claim("a/b/c"))
	assert.Equal(t, "abc2", n.claim("ab[c"))
}
