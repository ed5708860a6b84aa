package svgscale

import (
	"errors"
	"fmt"
)

var (
	// ErrViewBox is returned for a viewBox which is not made of four numbers.
	ErrViewBox = errors.New("viewBox must hold exactly four numbers")
	// ErrMissingFontSize is returned for a text element without font-size.
	ErrMissingFontSize = errors.New("text element has no font-size attribute")
	// ErrNoSVG is returned when the document has no svg element.
	ErrNoSVG = errors.New("document has no svg element")
)

// ParseError reports an attribute whose value could not be scaled.
type ParseError struct {
	Element string // tag of the element holding the attribute
	Attr    string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("svgscale: <%s %s=%q>: %s", e.Element, e.Attr, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
