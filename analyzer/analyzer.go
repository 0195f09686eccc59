// Package analyzer estimates password strength with a heuristic entropy
// model. The estimate is not information-theoretic: it starts from
// length x log2(pool size) and subtracts fixed penalties for patterns that
// make a password easier to guess.
package analyzer

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pivotal-cf/passkit/analyzer/matchers"
)

const (
	minLength = 8

	sequenceWidth = 4
	repetitionRun = 3

	sequencePenalty   = 10
	repetitionPenalty = 7
	commonPenalty     = 12
)

type Analyzer interface {
	Analyze(password string, personalInputs []string) Result
	Findings(password string, personalInputs []string) []Finding
}

type Options struct {
	// CheckPersonalInfo reports ContainsPersonalInfo when a personal input
	// occurs in the password. It never changes the entropy estimate.
	CheckPersonalInfo bool
}

type analyzer struct {
	sequence   matchers.Matcher
	repetition matchers.Matcher
	common     matchers.Matcher

	checkPersonalInfo bool
}

func New(opts Options) Analyzer {
	return &analyzer{
		sequence:          matchers.Sequence(sequenceWidth),
		repetition:        matchers.Repetition(repetitionRun),
		common:            matchers.LowercasedMulti(matchers.Known(commonPasswords...)),
		checkPersonalInfo: opts.CheckPersonalInfo,
	}
}

// NewDefaultAnalyzer ignores personal inputs.
func NewDefaultAnalyzer() Analyzer {
	return New(Options{})
}

var defaultAnalyzer = NewDefaultAnalyzer()

// Analyze runs the default analyzer. personalInputs is accepted for
// interface stability and currently has no effect.
func Analyze(password string, personalInputs []string) Result {
	return defaultAnalyzer.Analyze(password, personalInputs)
}

func (a *analyzer) Analyze(password string, personalInputs []string) Result {
	length := utf8.RuneCountInString(password)

	sequence, _, _ := a.sequence.Match(password)
	repetition, _, _ := a.repetition.Match(password)
	common, _, _ := a.common.Match(password)

	entropy := float64(length) * math.Log2(float64(Classes(password).PoolSize()))
	if sequence {
		entropy -= sequencePenalty
	}
	if repetition {
		entropy -= repetitionPenalty
	}
	if common {
		entropy -= commonPenalty
	}
	entropy = math.Max(entropy, 0)

	issues := []Issue{}
	if length < minLength {
		issues = append(issues, TooShort)
	}
	if common {
		issues = append(issues, CommonPassword)
	}
	if sequence {
		issues = append(issues, ContainsSequence)
	}
	if repetition {
		issues = append(issues, ContainsRepetition)
	}
	if a.checkPersonalInfo {
		if personal, _, _ := personalMatcher(personalInputs).Match(password); personal {
			issues = append(issues, ContainsPersonalInfo)
		}
	}

	return Result{
		Password:       password,
		Length:         length,
		EntropyBits:    entropy,
		Classification: Classify(entropy),
		Issues:         issues,
	}
}

// Findings locates the first occurrence of every pattern Analyze penalizes,
// in issue order. Length is not a located issue and is never reported here.
func (a *analyzer) Findings(password string, personalInputs []string) []Finding {
	lowered := strings.ToLower(password)

	checks := []check{
		{CommonPassword, lowered, a.common},
		{ContainsSequence, password, a.sequence},
		{ContainsRepetition, password, a.repetition},
	}
	if a.checkPersonalInfo {
		checks = append(checks, check{ContainsPersonalInfo, lowered, personalMatcher(personalInputs)})
	}

	var findings []Finding
	for _, c := range checks {
		if match, start, end := c.matcher.Match(password); match {
			findings = append(findings, Finding{
				Issue: c.issue,
				Input: c.input,
				Start: utf8.RuneCountInString(c.input[:start]),
				End:   utf8.RuneCountInString(c.input[:end]),
			})
		}
	}

	return findings
}

type check struct {
	issue   Issue
	input   string
	matcher matchers.Matcher
}

func personalMatcher(personalInputs []string) matchers.Matcher {
	var substrings []matchers.Matcher
	for _, input := range personalInputs {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		substrings = append(substrings, matchers.Substring(strings.ToLower(input)))
	}

	if len(substrings) == 0 {
		return matchers.Null()
	}

	return matchers.LowercasedMulti(substrings...)
}
