// Package pipeline glues the conversion engine to the filesystem: one call
// converts one source file into one destination file, written atomically.
package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	xml2excel "github.com/yassir56069/XML2Excel"
	"github.com/yassir56069/XML2Excel/excel"
)

// Result reports the outcome of converting one file. Err carries a
// ParseError or WriteError when the file failed; callers inspect it rather
// than unwinding, so a batch run continues past any one failure.
type Result struct {
	Source string
	Dest   string
	Sheets int
	Rows   int

	// Document is the serialized XML the conversion touched: the source
	// document when flattening, the rebuilt one when unflattening. It is
	// what a logging sink records.
	Document []byte

	Err error
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Flatten converts one XML document into a workbook. The destination is
// the source base name with the extension swapped, placed in dstDir, or
// alongside the source when dstDir is empty.
func Flatten(src, dstDir string) Result {
	res := Result{Source: src, Dest: OutputPath(src, dstDir, ".xlsx")}

	root, err := xml2excel.ParseXMLFile(src)
	if err != nil {
		res.Err = err
		return res
	}
	if res.Document, err = xml2excel.MarshalXML(root); err != nil {
		res.Err = &xml2excel.ParseError{Path: src, Err: err}
		return res
	}

	groups := xml2excel.Flatten(root)
	res.Sheets = len(groups)
	for _, g := range groups {
		res.Rows += len(g.Records)
	}

	bs, err := excel.Workbook(groups)
	if err != nil {
		res.Err = &xml2excel.WriteError{Path: res.Dest, Err: err}
		return res
	}
	res.Err = WriteFileAtomic(res.Dest, bs)
	return res
}

// Unflatten converts one workbook back into an XML document.
func Unflatten(src, dstDir string) Result {
	res := Result{Source: src, Dest: OutputPath(src, dstDir, ".xml")}

	sheets, err := excel.ReadFile(src)
	if err != nil {
		res.Err = err
		return res
	}
	res.Sheets = len(sheets)
	for _, s := range sheets {
		res.Rows += len(s.Records)
	}

	root := xml2excel.Rebuild(sheets)
	bs, err := xml2excel.MarshalXML(root)
	if err != nil {
		res.Err = &xml2excel.WriteError{Path: res.Dest, Err: err}
		return res
	}
	res.Document = bs
	res.Err = WriteFileAtomic(res.Dest, bs)
	return res
}

// OutputPath derives the destination path from the source base name with
// the extension swapped to ext.
func OutputPath(src, dstDir, ext string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ext
	if dstDir == "" {
		dstDir = filepath.Dir(src)
	}
	return filepath.Join(dstDir, base)
}

// WriteFileAtomic writes data to a temporary file in the destination
// directory and renames it into place, so a failed write never leaves a
// partial file visible under the final name.
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &xml2excel.WriteError{Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &xml2excel.WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &xml2excel.WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &xml2excel.WriteError{Path: path, Err: err}
	}
	return nil
}
