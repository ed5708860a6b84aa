package svgscale

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/benoitkugler/svgscale/svgtree"
)

// ScaleFontSizes multiplies the font-size of every text element under root.
// A text element without font-size is an error, unless skipMissing is true.
// It returns the number of attributes rewritten.
func ScaleFontSizes(root *etree.Element, factor float64, skipMissing bool) (int, error) {
	count := 0
	for _, e := range svgtree.Elements(root, "text") {
		attr := svgtree.LookupAttr(e, "font-size")
		if attr == nil {
			if skipMissing {
				continue
			}
			return count, &ParseError{Element: e.Tag, Attr: "font-size", Err: ErrMissingFontSize}
		}
		size, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
		if err != nil {
			return count, &ParseError{Element: e.Tag, Attr: "font-size", Value: attr.Value, Err: err}
		}
		attr.Value = FormatNumber(size * factor)
		count++
	}
	return count, nil
}
