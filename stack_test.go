package keyed_test

import (
	"github.com/bsm/keyed"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Stack", func() {
	var subject *keyed.Stack[int]

	BeforeEach(func() {
		subject = keyed.NewStack[int](8)
	})

	It("should push and pop in LIFO order", func() {
		subject.Push(1)
		subject.Push(2)
		subject.Push(3)
		Expect(subject.Len()).To(Equal(3))

		value, ok := subject.Pop()
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(3))

		value, ok = subject.Pop()
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(2))

		value, ok = subject.Pop()
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(1))

		_, ok = subject.Pop()
		Expect(ok).To(BeFalse())
	})

	It("should peek without removing", func() {
		_, ok := subject.Peek()
		Expect(ok).To(BeFalse())

		subject.Push(7)
		value, ok := subject.Peek()
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal(7))
		Expect(subject.Len()).To(Equal(1))
	})

	It("should index from the top", func() {
		subject.Push(10)
		subject.Push(20)
		subject.Push(30)

		Expect(*subject.At(0)).To(Equal(30))
		Expect(*subject.At(1)).To(Equal(20))
		Expect(*subject.At(2)).To(Equal(10))

		*subject.At(1) = 25
		value, _ := subject.Pop()
		Expect(value).To(Equal(30))
		value, _ = subject.Pop()
		Expect(value).To(Equal(25))
	})

	It("should panic on out-of-range index", func() {
		Expect(func() { subject.At(0) }).To(Panic())

		subject.Push(1)
		Expect(func() { subject.At(1) }).To(Panic())
		Expect(func() { subject.At(-1) }).To(Panic())
	})

	It("should iterate from the top down", func() {
		subject.Push(1)
		subject.Push(2)
		subject.Push(3)

		var values []int
		for iter := subject.Iter(); iter.Next(); {
			values = append(values, iter.Value())
		}
		Expect(values).To(Equal([]int{3, 2, 1}))
	})

	It("should clear", func() {
		subject.Push(1)
		subject.Push(2)
		subject.Clear()

		Expect(subject.Len()).To(Equal(0))
		_, ok := subject.Pop()
		Expect(ok).To(BeFalse())
	})

	It("should work from its zero value", func() {
		var stack keyed.Stack[string]
		stack.Push("x")
		value, ok := stack.Pop()
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("x"))
	})
})
