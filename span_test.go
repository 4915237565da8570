package keyed_test

import (
	"github.com/bsm/keyed"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Span", func() {
	It("should contain offsets", func() {
		span := keyed.NewSpan(2, 5)
		Expect(span.Contains(1)).To(BeFalse())
		Expect(span.Contains(2)).To(BeTrue())
		Expect(span.Contains(4)).To(BeTrue())
		Expect(span.Contains(5)).To(BeFalse())
		Expect(span.Len()).To(Equal(3))
	})
})

var _ = Describe("Location", func() {
	It("should union", func() {
		a := keyed.Location{Span: keyed.NewSpan(0, 3), Line: 0, EndLine: 0, Column: 0, EndColumn: 3}
		b := keyed.Location{Span: keyed.NewSpan(8, 12), Line: 1, EndLine: 2, Column: 2, EndColumn: 1}

		u := a.Union(b)
		Expect(u.Span).To(Equal(keyed.NewSpan(0, 12)))
		Expect(u.Line).To(Equal(0))
		Expect(u.Column).To(Equal(0))
		Expect(u.EndLine).To(Equal(2))
		Expect(u.EndColumn).To(Equal(1))

		// union is symmetric
		Expect(b.Union(a)).To(Equal(u))
	})

	It("should compare line-major", func() {
		a := keyed.Location{Line: 1, Column: 4}
		b := keyed.Location{Line: 2, Column: 0}
		c := keyed.Location{Line: 1, Column: 7}

		Expect(a.Compare(b)).To(Equal(-1))
		Expect(b.Compare(a)).To(Equal(1))
		Expect(a.Compare(c)).To(Equal(-1))
		Expect(a.Compare(a)).To(Equal(0))
	})
})

var _ = Describe("SpanConverter", func() {
	var subject *keyed.SpanConverter

	// offsets:     0123 4567890 12345
	const source = "abc\ndefgh\nij"

	BeforeEach(func() {
		subject = keyed.NewSpanConverter(source)
	})

	It("should index lines", func() {
		Expect(subject.NumLines()).To(Equal(3))
	})

	It("should convert single-line spans", func() {
		loc := subject.Convert(keyed.NewSpan(1, 3))
		Expect(loc.Line).To(Equal(0))
		Expect(loc.Column).To(Equal(1))
		Expect(loc.EndLine).To(Equal(0))
		Expect(loc.EndColumn).To(Equal(3))
		Expect(loc.Span).To(Equal(keyed.NewSpan(1, 3)))
	})

	It("should convert multi-line spans", func() {
		loc := subject.Convert(keyed.NewSpan(2, 7))
		Expect(loc.Line).To(Equal(0))
		Expect(loc.Column).To(Equal(2))
		Expect(loc.EndLine).To(Equal(1))
		Expect(loc.EndColumn).To(Equal(3))
	})

	It("should convert spans ending at the end of the source", func() {
		loc := subject.Convert(keyed.NewSpan(10, 12))
		Expect(loc.Line).To(Equal(2))
		Expect(loc.Column).To(Equal(0))
		Expect(loc.EndLine).To(Equal(2))
		Expect(loc.EndColumn).To(Equal(2))
	})

	It("should panic on out-of-range spans", func() {
		Expect(func() { subject.Convert(keyed.NewSpan(0, 20)) }).To(Panic())
		Expect(func() { subject.Convert(keyed.NewSpan(20, 22)) }).To(Panic())
	})
})
