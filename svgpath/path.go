// Implements an abstract representation of
// svg path data (the "d" attribute), which can be
// scaled and written back.
package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tstrconv "github.com/tdewolff/parse/v2/strconv"
)

// ErrBadPath is wrapped by every error returned by Parse.
var ErrBadPath = errors.New("bad path")

// number of arguments of each command
var arity = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// Segment is a command letter followed by its arguments.
// An implicitly repeated command keeps all its argument
// sets in Args, so "L1 2 3 4" is a single segment.
type Segment struct {
	Command byte
	Args    []float64
}

// Path describes a sequence of path commands, in the
// order they appear in the data.
type Path []Segment

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func startsNumber(b []byte, i int) bool {
	if i >= len(b) {
		return false
	}
	c := b[i]
	return '0' <= c && c <= '9' || c == '.' || c == '-' || c == '+'
}

// Parse splits path data into segments. Relative and absolute
// commands are kept as written.
func Parse(d string) (Path, error) {
	b := []byte(d)
	var p Path
	i := 0
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}
		cmd := b[i]
		n, ok := arity[upper(cmd)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrBadPath, cmd, i+1)
		}
		i++
		seg := Segment{Command: cmd}
		for j := 0; n > 0; j++ {
			i += skipCommaWhitespace(b[i:])
			k := j % n
			if k == 0 && j >= n && !startsNumber(b, i) {
				break // no more repetitions
			}
			if upper(cmd) == 'A' && (k == 3 || k == 4) {
				// largeArc and sweep flags may be written without separator
				if i < len(b) && (b[i] == '0' || b[i] == '1') {
					seg.Args = append(seg.Args, float64(b[i]-'0'))
					i++
					continue
				}
				return nil, fmt.Errorf("%w: arc flags should be 0 or 1 in command '%c' at position %d", ErrBadPath, cmd, i+1)
			}
			num, size := tstrconv.ParseFloat(b[i:])
			if size == 0 {
				return nil, fmt.Errorf("%w: sets of %d numbers should follow command '%c' at position %d", ErrBadPath, n, cmd, i+1)
			}
			seg.Args = append(seg.Args, num)
			i += size
		}
		p = append(p, seg)
	}
	return p, nil
}

// Scale returns a copy of p with every coordinate and length
// multiplied by f. Arc radii are multiplied by |f|, arc rotations
// and flags are kept.
func (p Path) Scale(f float64) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		args := make([]float64, len(seg.Args))
		isArc := upper(seg.Command) == 'A'
		for j, v := range seg.Args {
			switch {
			case !isArc:
				args[j] = v * f
			case j%7 < 2: // rx, ry
				args[j] = v * math.Abs(f)
			case j%7 < 5: // rotation, large arc, sweep
				args[j] = v
			default:
				args[j] = v * f
			}
		}
		out[i] = Segment{Command: seg.Command, Args: args}
	}
	return out
}

// ToSVGPath writes the path data back, using format for the arguments.
// Arc flags are always written 0 or 1.
func (p Path) ToSVGPath(format func(float64) string) string {
	chunks := make([]string, len(p))
	for i, seg := range p {
		var sb strings.Builder
		sb.WriteByte(seg.Command)
		isArc := upper(seg.Command) == 'A'
		for j, v := range seg.Args {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if isArc && (j%7 == 3 || j%7 == 4) {
				if v != 0 {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('0')
				}
				continue
			}
			sb.WriteString(format(v))
		}
		chunks[i] = sb.String()
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath(func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
}
