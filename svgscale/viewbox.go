package svgscale

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/benoitkugler/svgscale/svgtree"
)

// ScaleViewBox multiplies the width and height of the viewBox of the
// first svg element, rounded to 2 decimals. min-x and min-y keep
// their original text. A missing viewBox is not an error.
func ScaleViewBox(doc *etree.Document, factor float64) error {
	root := svgtree.Find(doc, "svg")
	if root == nil {
		return ErrNoSVG
	}
	attr := svgtree.LookupAttr(root, "viewBox")
	if attr == nil {
		return nil
	}
	fields := strings.Fields(attr.Value)
	if len(fields) != 4 {
		return &ParseError{Element: root.Tag, Attr: "viewBox", Value: attr.Value,
			Err: fmt.Errorf("%w, got %d", ErrViewBox, len(fields))}
	}
	var values [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return &ParseError{Element: root.Tag, Attr: "viewBox", Value: attr.Value, Err: err}
		}
		values[i] = v
	}
	fields[2] = FormatRepr(round2(values[2] * factor))
	fields[3] = FormatRepr(round2(values[3] * factor))
	attr.Value = strings.Join(fields, " ")
	return nil
}
