package analyzer_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/passkit/analyzer"
)

var _ = Describe("Classes", func() {
	It("detects each class independently", func() {
		Expect(analyzer.Classes("aB3$")).To(Equal(analyzer.CharacterClasses{
			Lower:  true,
			Upper:  true,
			Digit:  true,
			Symbol: true,
		}))
	})

	It("counts whitespace as a symbol", func() {
		Expect(analyzer.Classes("a b").Symbol).To(BeTrue())
	})

	Describe("PoolSize", func() {
		It("adds the size of every class present", func() {
			Expect(analyzer.Classes("abc").PoolSize()).To(Equal(26))
			Expect(analyzer.Classes("aB").PoolSize()).To(Equal(52))
			Expect(analyzer.Classes("a1").PoolSize()).To(Equal(36))
			Expect(analyzer.Classes("aB3$").PoolSize()).To(Equal(95))
		})

		It("never drops below 1", func() {
			Expect(analyzer.Classes("").PoolSize()).To(Equal(1))
		})
	})
})
