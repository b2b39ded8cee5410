package xml2excel // import "github.com/yassir56069/XML2Excel"

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding/htmlindex"
)

// Attr is one attribute of an element. Attribute order is the order of
// appearance in the source document.
type Attr struct {
	Key   string
	Value string
}

// ElementNode is one node in the document tree. A node with no children is
// a leaf and carries its text value; a node with children carries no text
// of its own. Names are local names only, namespace prefixes are dropped.
type ElementNode struct {
	Name     string
	Attr     []Attr
	Children []*ElementNode
	Text     string
}

// IsLeaf reports whether the node has no child elements.
func (e *ElementNode) IsLeaf() bool { return len(e.Children) == 0 }

// SetAttr appends an attribute, or updates it in place when the key is
// already present.
func (e *ElementNode) SetAttr(key, value string) {
	for i := range e.Attr {
		if e.Attr[i].Key == key {
			e.Attr[i].Value = value
			return
		}
	}
	e.Attr = append(e.Attr, Attr{Key: key, Value: value})
}

// AddChild appends a child element.
func (e *ElementNode) AddChild(c *ElementNode) {
	e.Children = append(e.Children, c)
}

// ParseXML reads a well-formed XML document into an ElementNode tree.
// Documents in legacy encodings are decoded through their declared charset.
// Malformed input yields a ParseError and no partial tree.
func ParseXML(r io.Reader) (*ElementNode, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &ParseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: errors.New("document has no root element")}
	}
	return fromEtree(root), nil
}

// ParseXMLFile is ParseXML over a file path.
func ParseXMLFile(path string) (*ElementNode, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer fd.Close()

	root, err := ParseXML(fd)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return root, nil
}

// MarshalXML serializes the tree as an indented XML document. Identical
// trees serialize to identical bytes.
func MarshalXML(root *ElementNode) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	toEtree(&doc.Element, root)
	doc.Indent(2)
	return doc.WriteToBytes()
}

func fromEtree(el *etree.Element) *ElementNode {
	node := &ElementNode{Name: el.Tag}
	for _, a := range el.Attr {
		if a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") {
			continue
		}
		node.Attr = append(node.Attr, Attr{Key: a.Key, Value: a.Value})
	}
	children := el.ChildElements()
	if len(children) == 0 {
		node.Text = strings.TrimSpace(el.Text())
		return node
	}
	for _, c := range children {
		node.Children = append(node.Children, fromEtree(c))
	}
	return node
}

func toEtree(parent *etree.Element, node *ElementNode) {
	el := parent.CreateElement(node.Name)
	for _, a := range node.Attr {
		el.CreateAttr(a.Key, a.Value)
	}
	if node.IsLeaf() {
		if node.Text != "" {
			el.SetText(node.Text)
		}
		return
	}
	for _, c := range node.Children {
		toEtree(el, c)
	}
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}
