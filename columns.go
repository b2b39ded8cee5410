package xml2excel

// Columns returns the ordered, de-duplicated union of field names across
// the group's records: every record is scanned in order and each
// previously unseen key is appended. The result is deterministic for a
// given group, and empty for an empty group.
func (g *RowGroup) Columns() []string {
	var cols []string
	seen := make(map[string]bool)
	for _, rec := range g.Records {
		for _, key := range rec.Keys() {
			if seen[key] {
				continue
			}
			seen[key] = true
			cols = append(cols, key)
		}
	}
	return cols
}
