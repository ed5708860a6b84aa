// Scales the geometry of SVG documents by a uniform factor.
//
// Each scalable quantity (the positional attributes listed in
// DefaultAttributes, the root viewBox, path data and text font sizes)
// is rewritten in place; the structure of the document is kept.
package svgscale

import (
	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/benoitkugler/svgscale/svgtree"
)

// Options configures a Scaler. The zero value uses
// DefaultAttributes, lexical path scaling, fails on text without
// font-size and discards log events.
type Options struct {
	// Attributes scaled as a whole; nil means DefaultAttributes.
	Attributes []string
	PathMode   PathMode
	// SkipMissingFontSize ignores text elements without font-size,
	// instead of failing.
	SkipMissingFontSize bool
	Logger              *zerolog.Logger
}

type pass struct {
	name string
	run  func(doc *etree.Document, factor float64) (int, error)
}

// Scaler applies a fixed sequence of passes to a document.
// The passes touch disjoint sets of attributes.
type Scaler struct {
	passes []pass
	logger zerolog.Logger
}

// NewScaler builds the passes described by opts.
func NewScaler(opts Options) *Scaler {
	attributes := opts.Attributes
	if attributes == nil {
		attributes = DefaultAttributes
	}
	s := &Scaler{logger: zerolog.Nop()}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	}
	s.passes = []pass{
		{"attributes", func(doc *etree.Document, factor float64) (int, error) {
			return ScaleAttributes(doc.Root(), attributes, factor)
		}},
		{"viewBox", func(doc *etree.Document, factor float64) (int, error) {
			if err := ScaleViewBox(doc, factor); err != nil {
				return 0, err
			}
			if svgtree.LookupAttr(svgtree.Find(doc, "svg"), "viewBox") == nil {
				return 0, nil
			}
			return 1, nil
		}},
		{"paths", func(doc *etree.Document, factor float64) (int, error) {
			return ScalePaths(doc.Root(), factor, opts.PathMode)
		}},
		{"text", func(doc *etree.Document, factor float64) (int, error) {
			return ScaleFontSizes(doc.Root(), factor, opts.SkipMissingFontSize)
		}},
	}
	return s
}

// Scale runs every pass on doc, stopping at the first error.
// On error, doc is left partially scaled.
func (s *Scaler) Scale(doc *etree.Document, factor float64) error {
	for _, p := range s.passes {
		n, err := p.run(doc, factor)
		if err != nil {
			s.logger.Debug().Str("pass", p.name).Err(err).Msg("scaling failed")
			return err
		}
		s.logger.Debug().Str("pass", p.name).Int("rewritten", n).Float64("factor", factor).Msg("pass done")
	}
	return nil
}
