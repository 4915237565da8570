package keyed

import "fmt"

// Span is a half-open byte-offset range within a source text.
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Contains reports whether the offset falls within the span.
func (s Span) Contains(i int) bool {
	return i >= s.Start && i < s.End
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// --------------------------------------------------------------------

// Location is a span together with its line/column coordinates. Lines and
// columns are zero-based.
type Location struct {
	Span      Span
	Line      int
	EndLine   int
	Column    int
	EndColumn int
}

// Union returns the smallest location covering both l and o.
func (l Location) Union(o Location) Location {
	u := Location{
		Span: Span{
			Start: min(l.Span.Start, o.Span.Start),
			End:   max(l.Span.End, o.Span.End),
		},
	}

	if l.Line < o.Line || (l.Line == o.Line && l.Column <= o.Column) {
		u.Line, u.Column = l.Line, l.Column
	} else {
		u.Line, u.Column = o.Line, o.Column
	}

	if l.EndLine > o.EndLine || (l.EndLine == o.EndLine && l.EndColumn >= o.EndColumn) {
		u.EndLine, u.EndColumn = l.EndLine, l.EndColumn
	} else {
		u.EndLine, u.EndColumn = o.EndLine, o.EndColumn
	}

	return u
}

// Compare orders locations by starting line, then column.
func (l Location) Compare(o Location) int {
	if l.Line != o.Line {
		if l.Line < o.Line {
			return -1
		}
		return 1
	}
	if l.Column != o.Column {
		if l.Column < o.Column {
			return -1
		}
		return 1
	}
	return 0
}

// --------------------------------------------------------------------

// SpanConverter converts byte-offset spans of a source text into line/column
// locations.
type SpanConverter struct {
	lineSpans []Span
}

// NewSpanConverter indexes the line boundaries of source.
func NewSpanConverter(source string) *SpanConverter {
	var lineSpans []Span
	prevStart := 0

	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			lineSpans = append(lineSpans, Span{Start: prevStart, End: i + 1})
			prevStart = i + 1
		}
	}
	lineSpans = append(lineSpans, Span{Start: prevStart, End: len(source)})

	return &SpanConverter{lineSpans: lineSpans}
}

// NumLines returns the number of indexed lines.
func (c *SpanConverter) NumLines() int {
	return len(c.lineSpans)
}

// Convert maps a byte-offset span to a Location. A span ending exactly at
// the end of the source is attributed to the final line. It panics if the
// span falls outside the source.
func (c *SpanConverter) Convert(span Span) Location {
	loc := Location{Span: span, Line: -1, EndLine: -1}

	for i, ls := range c.lineSpans {
		if ls.Contains(span.Start) {
			loc.Line, loc.Column = i, span.Start-ls.Start
		}
		if ls.Contains(span.End) {
			loc.EndLine, loc.EndColumn = i, span.End-ls.Start
			break
		}
	}

	// the exclusive end may point one past the last byte
	if loc.EndLine < 0 && len(c.lineSpans) > 0 {
		if last := c.lineSpans[len(c.lineSpans)-1]; span.End == last.End {
			loc.EndLine, loc.EndColumn = len(c.lineSpans)-1, span.End-last.Start
			if loc.Line < 0 && last.Contains(span.Start) {
				loc.Line, loc.Column = len(c.lineSpans)-1, span.Start-last.Start
			}
		}
	}

	if loc.Line < 0 || loc.EndLine < 0 {
		panic(fmt.Sprintf("keyed: span [%d, %d) out of source range", span.Start, span.End))
	}
	return loc
}
