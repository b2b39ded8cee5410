package xml2excel

import "fmt"

// Options control how a tree is flattened into row groups.
type Options struct {
	// MergeByName collapses same-named groups from different positions in
	// the tree into a single group, matching the historical behavior. The
	// default instead names nested groups by their dot-separated path, so
	// an "item" under "order" becomes "order.item" rather than merging
	// with every other "item" in the document.
	MergeByName bool

	// Separator joins the path segments of nested group names. Defaults
	// to ".", which is legal in both element and worksheet names.
	Separator string
}

// Flatten decomposes a tree into named row groups, one group per repeated
// element name, in first-seen document order. For each grouped element,
// attributes and leaf children become record fields; non-leaf children are
// flattened recursively into their own groups. The function is pure: equal
// trees flatten to equal groups.
func Flatten(root *ElementNode) []*RowGroup {
	return FlattenWith(root, Options{})
}

// FlattenWith is Flatten with explicit options.
func FlattenWith(root *ElementNode, opts Options) []*RowGroup {
	if opts.Separator == "" {
		opts.Separator = "."
	}
	f := &flattener{opts: opts, byName: make(map[string]*RowGroup)}
	f.walk(root, "")
	if len(f.groups) == 0 && !root.IsLeaf() {
		// A document of nothing but leaf children has no repeating shape;
		// the root itself becomes the single row.
		g := f.group(root.Name)
		g.Records = append(g.Records, flattenElement(root))
	}
	return f.groups
}

type flattener struct {
	opts   Options
	groups []*RowGroup
	byName map[string]*RowGroup
}

func (f *flattener) group(name string) *RowGroup {
	if g, ok := f.byName[name]; ok {
		return g
	}
	g := &RowGroup{Name: name}
	f.byName[name] = g
	f.groups = append(f.groups, g)
	return g
}

// walk visits one non-leaf node, turning each name-group of its non-leaf
// children into rows and descending into every grouped element.
func (f *flattener) walk(node *ElementNode, prefix string) {
	for _, cg := range childGroups(node) {
		name := cg.name
		if !f.opts.MergeByName && prefix != "" {
			name = prefix + f.opts.Separator + cg.name
		}
		g := f.group(name)
		for _, child := range cg.elems {
			g.Records = append(g.Records, flattenElement(child))
		}
		childPrefix := cg.name
		if !f.opts.MergeByName {
			childPrefix = name
		}
		for _, child := range cg.elems {
			f.walk(child, childPrefix)
		}
	}
}

type childGroup struct {
	name  string
	elems []*ElementNode
}

// childGroups groups the non-leaf children of node by name, preserving
// both group order and member order as they appear in the document. Leaf
// children are not grouped; they are inlined into their parent's record.
// A node with no children yields no groups.
func childGroups(node *ElementNode) []childGroup {
	var groups []childGroup
	index := make(map[string]int)
	for _, c := range node.Children {
		if c.IsLeaf() {
			continue
		}
		i, ok := index[c.Name]
		if !ok {
			i = len(groups)
			index[c.Name] = i
			groups = append(groups, childGroup{name: c.Name})
		}
		groups[i].elems = append(groups[i].elems, c)
	}
	return groups
}

// flattenElement builds the flat record for one element: attributes first,
// then one field per leaf child. Duplicate field names get a numeric
// suffix so every value stays addressable.
func flattenElement(e *ElementNode) *RowRecord {
	rec := NewRowRecord()
	for _, a := range e.Attr {
		setUnique(rec, a.Key, a.Value)
	}
	if e.IsLeaf() {
		if e.Text != "" {
			setUnique(rec, "value", e.Text)
		}
		return rec
	}
	for _, c := range e.Children {
		if !c.IsLeaf() {
			continue
		}
		setUnique(rec, c.Name, c.Text)
	}
	return rec
}

func setUnique(rec *RowRecord, key, value string) {
	if !rec.Has(key) {
		rec.Set(key, value)
		return
	}
	for i := 2; ; i++ {
		k := fmt.Sprintf("%s%d", key, i)
		if !rec.Has(k) {
			rec.Set(k, value)
			return
		}
	}
}
