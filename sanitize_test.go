package xml2excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"person", "person"},
		{"first-name", "first-name"},
		{"order.item", "order.item"},
		{"_hidden", "_hidden"},
		{"", "_"},
		{"1st", "_1st"},
		{"first name", "first_x0020_name"},
		{"a:b", "a_x003A_b"},
		{"tag/with/slash", "tag_x002F_with_x002F_slash"},
		{"100%", "_100_x0025_"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SanitizeName(c.in), "input %q", c.in)
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{"person", "1st", "first name", "a:b", "", "···", "100%"}
	for _, in := range inputs {
		once := SanitizeName(in)
		assert.Equal(t, once, SanitizeName(once), "input %q", in)
	}
}

func TestSingularName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"persons", "person"},
		{"person", "person"},
		{"items", "item"},
		{"s", "s"},
		{"status", "statu"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SingularName(c.in))
	}
}
