package keyed_test

import (
	"fmt"

	"github.com/bsm/keyed"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("KeyedVec", func() {
	var subject *keyed.KeyedVec[instrID, string]

	BeforeEach(func() {
		subject = new(keyed.KeyedVec[instrID, string])
	})

	It("should issue keys in insertion order", func() {
		Expect(subject.Insert("add")).To(Equal(instrID(0)))
		Expect(subject.Insert("mul")).To(Equal(instrID(1)))
		Expect(subject.Insert("ret")).To(Equal(instrID(2)))
		Expect(subject.Len()).To(Equal(3))
	})

	It("should retain every value ever inserted", func() {
		keys := make([]instrID, 0, 100)
		for i := 0; i < 100; i++ {
			keys = append(keys, subject.Insert(fmt.Sprintf("instr-%03d", i)))
		}

		for i, key := range keys {
			Expect(subject.Get(key)).To(Equal(fmt.Sprintf("instr-%03d", i)))
		}
		Expect(subject.Len()).To(Equal(100))
	})

	It("should mutate in place", func() {
		key := subject.Insert("add")
		*subject.Ptr(key) = "sub"
		Expect(subject.Get(key)).To(Equal("sub"))
	})

	It("should panic on out-of-range access", func() {
		Expect(func() { subject.Get(instrID(0)) }).To(Panic())

		key := subject.Insert("add")
		Expect(subject.Get(key)).To(Equal("add"))
		Expect(func() { subject.Get(key + 1) }).To(Panic())
		Expect(func() { subject.Get(instrID(-1)) }).To(Panic())
		Expect(func() { subject.Get(keyed.Invalid[instrID]()) }).To(Panic())
	})
})
