package matchers_test

import (
	"github.com/pivotal-cf/passkit/analyzer/matchers"
	"github.com/pivotal-cf/passkit/analyzer/matchers/matchersfakes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LowercasedMulti", func() {
	var (
		matcher      *matchersfakes.FakeMatcher
		multimatcher matchers.Matcher

		matches    bool
		start, end int
	)

	BeforeEach(func() {
		matcher = new(matchersfakes.FakeMatcher)
		multimatcher = matchers.LowercasedMulti(matcher)
	})

	JustBeforeEach(func() {
		matches, start, end = multimatcher.Match("This Is A Password")
	})

	It("calls each matcher with the lowercased input", func() {
		Expect(matcher.MatchCallCount()).To(Equal(1))
		Expect(matcher.MatchArgsForCall(0)).To(Equal("this is a password"))
	})

	It("returns false", func() {
		Expect(matches).To(BeFalse())
	})

	Context("when at least one of the matchers returns true", func() {
		BeforeEach(func() {
			trueMatcher := new(matchersfakes.FakeMatcher)
			trueMatcher.MatchReturns(true, 3, 7)

			multimatcher = matchers.LowercasedMulti(trueMatcher, matcher)
		})

		It("returns true with the range of the first match", func() {
			Expect(matches).To(BeTrue())
			Expect(start).To(Equal(3))
			Expect(end).To(Equal(7))
		})

		It("doesn't call the later matchers", func() {
			Expect(matcher.MatchCallCount()).To(BeZero())
		})
	})
})
