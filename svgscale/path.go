package svgscale

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/benoitkugler/svgscale/svgpath"
	"github.com/benoitkugler/svgscale/svgtree"
)

// PathMode selects how path data is rewritten.
type PathMode uint8

const (
	// PathLexical multiplies every number found in the data,
	// whatever command it belongs to. Arc rotations and
	// flags are scaled too.
	PathLexical PathMode = iota
	// PathGeometric parses the path commands, and keeps arc
	// rotations and flags.
	PathGeometric
)

func (m PathMode) String() string {
	switch m {
	case PathLexical:
		return "lexical"
	case PathGeometric:
		return "geometric"
	default:
		return "PathMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ScalePathData multiplies every number of d by factor.
// All the other characters are copied unchanged.
// The tokens are scanned once, so replacement text is never rescanned.
func ScalePathData(d string, factor float64) (string, error) {
	tokens := ScanNumbers(d)
	if len(tokens) == 0 {
		return d, nil
	}
	var sb strings.Builder
	sb.Grow(len(d))
	last := 0
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return "", err
		}
		sb.WriteString(d[last:tok.Start])
		sb.WriteString(FormatNumber(v * factor))
		last = tok.End
	}
	sb.WriteString(d[last:])
	return sb.String(), nil
}

func scalePathGeometric(d string, factor float64) (string, error) {
	p, err := svgpath.Parse(d)
	if err != nil {
		return "", err
	}
	return p.Scale(factor).ToSVGPath(FormatNumber), nil
}

// ScalePaths rewrites the "d" attribute of every path element under root.
// Paths without data are skipped.
// It returns the number of attributes rewritten.
func ScalePaths(root *etree.Element, factor float64, mode PathMode) (int, error) {
	scale := ScalePathData
	if mode == PathGeometric {
		scale = scalePathGeometric
	}
	count := 0
	for _, e := range svgtree.Elements(root, "path") {
		attr := svgtree.LookupAttr(e, "d")
		if attr == nil {
			continue
		}
		scaled, err := scale(attr.Value, factor)
		if err != nil {
			return count, &ParseError{Element: e.Tag, Attr: "d", Value: attr.Value, Err: err}
		}
		attr.Value = scaled
		count++
	}
	return count, nil
}
