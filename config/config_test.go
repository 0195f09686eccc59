package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/passkit/config"
)

var _ = Describe("Config", func() {
	var (
		tmpDir     string
		configPath string
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = ioutil.TempDir("", "passkit-config")
		Expect(err).NotTo(HaveOccurred())

		configPath = filepath.Join(tmpDir, "passkit.yml")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	writeConfig := func(contents string) {
		Expect(ioutil.WriteFile(configPath, []byte(contents), 0600)).To(Succeed())
	}

	Describe("Load", func() {
		It("returns the defaults without a path", func() {
			c, err := config.Load("")
			Expect(err).NotTo(HaveOccurred())
			Expect(c).To(Equal(config.Default()))
			Expect(c.Wordlist.Suffixes).To(Equal([]string{"!", "@", "123", "2024", "2025"}))
			Expect(c.Wordlist.MaxSeedLength).To(Equal(config.DefaultMaxSeedLength))
			Expect(c.Analyzer.CheckPersonalInfo).To(BeFalse())
		})

		It("overrides the defaults with the file contents", func() {
			writeConfig(`
wordlist:
  suffixes: ["!", "99"]
  max_leet_variants: 100
analyzer:
  check_personal_info: true
`)
			c, err := config.Load(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.Wordlist.Suffixes).To(Equal([]string{"!", "99"}))
			Expect(c.Wordlist.MaxLeetVariants).To(Equal(100))
			Expect(c.Wordlist.MaxSeedLength).To(Equal(config.DefaultMaxSeedLength))
			Expect(c.Analyzer.CheckPersonalInfo).To(BeTrue())

			opts := c.WordlistOptions()
			Expect(opts.Suffixes).To(Equal([]string{"!", "99"}))
			Expect(opts.MaxLeetVariants).To(Equal(100))
		})

		It("fails when the file is missing", func() {
			_, err := config.Load(filepath.Join(tmpDir, "missing.yml"))
			Expect(err).To(HaveOccurred())
		})

		It("fails on malformed YAML", func() {
			writeConfig("wordlist: [")
			_, err := config.Load(configPath)
			Expect(err).To(MatchError(ContainSubstring("parsing")))
		})

		It("reports every validation failure", func() {
			writeConfig(`
wordlist:
  suffixes: ["!", "", "!"]
  max_seed_length: -1
  max_leet_variants: -1
`)
			_, err := config.Load(configPath)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("must not be empty"))
			Expect(err.Error()).To(ContainSubstring(`duplicate wordlist suffix "!"`))
			Expect(err.Error()).To(ContainSubstring("max_seed_length must be positive"))
			Expect(err.Error()).To(ContainSubstring("max_leet_variants must not be negative"))
		})
	})

	Describe("Validate", func() {
		It("accepts the defaults", func() {
			Expect(config.Default().Validate()).To(Succeed())
		})

		It("rejects an empty suffix list", func() {
			c := config.Default()
			c.Wordlist.Suffixes = nil
			Expect(c.Validate()).To(MatchError(ContainSubstring("no wordlist suffixes specified")))
		})
	})
})
