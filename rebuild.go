package xml2excel

// RebuildOptions control tree reconstruction from worksheet rows.
type RebuildOptions struct {
	// RootName names the synthetic document root. Defaults to "root".
	RootName string

	// Singularize derives a row element name from a worksheet name.
	// Defaults to SingularName.
	Singularize func(string) string
}

// Rebuild reconstructs a single element tree from ordered worksheet rows.
// Each record becomes one element named by the singularized sheet name,
// with one leaf child per non-empty field; the row elements for one sheet
// sit under a container named after the sheet, and the containers sit
// under one synthetic root. The result is always a single well-formed
// tree, whatever the input's shape.
func Rebuild(sheets []Sheet) *ElementNode {
	return RebuildWith(sheets, RebuildOptions{})
}

// RebuildWith is Rebuild with explicit options.
func RebuildWith(sheets []Sheet, opts RebuildOptions) *ElementNode {
	if opts.RootName == "" {
		opts.RootName = "root"
	}
	if opts.Singularize == nil {
		opts.Singularize = SingularName
	}

	root := &ElementNode{Name: SanitizeName(opts.RootName)}
	for _, sheet := range sheets {
		container := &ElementNode{Name: SanitizeName(sheet.Name)}
		rowName := SanitizeName(opts.Singularize(sheet.Name))
		for _, rec := range sheet.Records {
			row := &ElementNode{Name: rowName}
			for _, key := range rec.Keys() {
				value, _ := rec.Get(key)
				if value == "" {
					continue
				}
				row.AddChild(&ElementNode{Name: SanitizeName(key), Text: value})
			}
			container.AddChild(row)
		}
		root.AddChild(container)
	}
	return root
}
