package svgscale

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/benoitkugler/svgscale/svgtree"
)

// DefaultAttributes lists the attributes holding a single length
// or coordinate, which are scaled as a whole.
var DefaultAttributes = []string{"cx", "cy", "width", "height", "x", "y", "r"}

// ScaleAttributes multiplies, for each name, every matching numeric attribute
// found under root (root included). Values which are not a plain number,
// like "100%" or "2em", are left untouched. Surrounding whitespace
// is accepted and dropped from rewritten values.
// It returns the number of attributes rewritten.
func ScaleAttributes(root *etree.Element, names []string, factor float64) (int, error) {
	var (
		count int
		err   error
	)
	for _, name := range names {
		svgtree.Walk(root, func(e *etree.Element) {
			if err != nil {
				return
			}
			attr := svgtree.LookupAttr(e, name)
			if attr == nil {
				return
			}
			value := strings.TrimSpace(attr.Value)
			if !IsNumber(value) {
				return
			}
			var v float64
			v, err = strconv.ParseFloat(value, 64)
			if err != nil {
				err = &ParseError{Element: e.Tag, Attr: name, Value: attr.Value, Err: err}
				return
			}
			attr.Value = FormatNumber(v * factor)
			count++
		})
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
