// Loads SVG documents into a mutable element tree,
// selects elements and attributes, and writes the
// tree back as indented XML.
package svgtree

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"
	"golang.org/x/net/html/charset"
)

// ErrNoElement is returned when the input holds no XML element at all.
var ErrNoElement = errors.New("invalid svg xml document: no element found")

// ReadTreeStream parses the whole stream into a document tree.
// Encodings other than UTF-8 are decoded according to the XML declaration.
func ReadTreeStream(stream io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(stream); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoElement
	}
	return doc, nil
}

// ReadTree reads the document tree from the named file.
func ReadTree(file string) (*etree.Document, error) {
	fin, errf := os.Open(file)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadTreeStream(fin)
}

// Walk calls fn for root and every descendant element, in document order.
func Walk(root *etree.Element, fn func(e *etree.Element)) {
	if root == nil {
		return
	}
	fn(root)
	for _, child := range root.ChildElements() {
		Walk(child, fn)
	}
}

// Elements returns, in document order, the elements under root
// (root included) whose local name is tag.
func Elements(root *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	Walk(root, func(e *etree.Element) {
		if e.Tag == tag {
			out = append(out, e)
		}
	})
	return out
}

// Find returns the first element named tag in document order, or nil.
func Find(doc *etree.Document, tag string) *etree.Element {
	var found *etree.Element
	Walk(doc.Root(), func(e *etree.Element) {
		if found == nil && e.Tag == tag {
			found = e
		}
	})
	return found
}

// LookupAttr returns the unprefixed attribute key of e, or nil.
// The returned pointer aliases the element storage, so
// assigning to its Value updates the tree.
func LookupAttr(e *etree.Element, key string) *etree.Attr {
	for i := range e.Attr {
		if e.Attr[i].Space == "" && e.Attr[i].Key == key {
			return &e.Attr[i]
		}
	}
	return nil
}

// Marshal serializes the document, indenting nested elements
// by indent spaces.
func Marshal(doc *etree.Document, indent int) ([]byte, error) {
	doc.Indent(indent)
	var b bytes.Buffer
	if _, err := doc.WriteTo(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// WriteFile atomically creates or replaces path with data.
// path is left untouched if an error occurs.
func WriteFile(path string, data []byte) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return err
	}
	defer pending.Cleanup() // no-op once replaced

	if _, err := pending.Write(data); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}
