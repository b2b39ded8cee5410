package xml2excel

// RowRecord is one flat row: field names mapped to cell text. Field order
// is insertion order. A missing key means "no value for this row", which is
// distinct from a key holding the empty string.
type RowRecord struct {
	keys   []string
	values map[string]string
}

// NewRowRecord returns an empty record.
func NewRowRecord() *RowRecord {
	return &RowRecord{values: make(map[string]string)}
}

// Set stores a field value. A repeated key keeps its original position and
// takes the new value.
func (r *RowRecord) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether the key is present.
func (r *RowRecord) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether the key is present.
func (r *RowRecord) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the field names in insertion order. The returned slice is
// shared; callers must not modify it.
func (r *RowRecord) Keys() []string { return r.keys }

// Len returns the number of fields.
func (r *RowRecord) Len() int { return len(r.keys) }

// RowGroup is a named collection of records destined for one worksheet.
// Record order is document order of the source elements.
type RowGroup struct {
	Name    string
	Records []*RowRecord
}

// Sheet pairs a worksheet name with its rows, in workbook order. It is the
// reader-side counterpart of RowGroup.
type Sheet struct {
	Name    string
	Records []*RowRecord
}
