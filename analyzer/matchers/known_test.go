package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/passkit/analyzer/matchers"
)

var _ = Describe("Known", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.Known("password", "qwerty")
	})

	It("matches the whole input when it is a known word", func() {
		matched, start, end := matcher.Match("qwerty")
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(0))
		Expect(end).To(Equal(6))
	})

	It("does not match inputs that only contain a known word", func() {
		matched, _, _ := matcher.Match("password1")
		Expect(matched).To(BeFalse())
	})

	It("is case-sensitive", func() {
		matched, _, _ := matcher.Match("Password")
		Expect(matched).To(BeFalse())
	})

	Context("with no words", func() {
		BeforeEach(func() {
			matcher = matchers.Known()
		})

		It("never matches, not even the empty string", func() {
			matched, _, _ := matcher.Match("")
			Expect(matched).To(BeFalse())
		})
	})
})
