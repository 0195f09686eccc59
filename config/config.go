package config

import (
	"errors"
	"fmt"
	"io/ioutil"

	multierror "github.com/hashicorp/go-multierror"
	yaml "gopkg.in/yaml.v2"

	"github.com/pivotal-cf/passkit/wordlist"
)

const DefaultMaxSeedLength = 32

type Config struct {
	Wordlist struct {
		Suffixes        []string `yaml:"suffixes"`
		MaxSeedLength   int      `yaml:"max_seed_length"`
		MaxLeetVariants int      `yaml:"max_leet_variants"`
	} `yaml:"wordlist"`

	Analyzer struct {
		CheckPersonalInfo bool `yaml:"check_personal_info"`
	} `yaml:"analyzer"`
}

func Default() *Config {
	c := &Config{}
	c.Wordlist.Suffixes = wordlist.DefaultSuffixes()
	c.Wordlist.MaxSeedLength = DefaultMaxSeedLength

	return c
}

// Load reads the YAML file at configPath over the defaults. An empty path
// returns the defaults.
func Load(configPath string) (*Config, error) {
	c := Default()
	if configPath == "" {
		return c, nil
	}

	bs, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bs, c)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) Validate() error {
	var result error

	if len(c.Wordlist.Suffixes) == 0 {
		result = multierror.Append(result, errors.New("no wordlist suffixes specified"))
	}

	seen := map[string]bool{}
	for _, suffix := range c.Wordlist.Suffixes {
		if suffix == "" {
			result = multierror.Append(result, errors.New("wordlist suffixes must not be empty"))
			continue
		}
		if seen[suffix] {
			result = multierror.Append(result, fmt.Errorf("duplicate wordlist suffix %q", suffix))
		}
		seen[suffix] = true
	}

	if c.Wordlist.MaxSeedLength <= 0 {
		result = multierror.Append(result, errors.New("max_seed_length must be positive"))
	}

	if c.Wordlist.MaxLeetVariants < 0 {
		result = multierror.Append(result, errors.New("max_leet_variants must not be negative"))
	}

	return result
}

func (c *Config) WordlistOptions() wordlist.Options {
	return wordlist.Options{
		Suffixes:        c.Wordlist.Suffixes,
		MaxLeetVariants: c.Wordlist.MaxLeetVariants,
	}
}
