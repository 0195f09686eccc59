package commands

import (
	"fmt"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/passkit/config"
	"github.com/pivotal-cf/passkit/wordlist"
)

type WordlistCommand struct {
	Seeds  []string `long:"seeds" required:"true" description:"seed words such as names or dates (repeatable, extra arguments are seeds too)" value-name:"WORD"`
	Max    int      `long:"max" default:"20" description:"maximum number of entries"`
	Output string   `short:"o" long:"output" description:"save the wordlist to FILE (.tar, .tgz and .tar.gz are archived)" value-name:"FILE"`
	Config string   `long:"config" description:"path to a passkit YAML config" value-name:"PATH"`
	Debug  bool     `long:"debug" description:"enables debug logging"`
}

func (command *WordlistCommand) Execute(args []string) error {
	logger := newLogger("wordlist", command.Debug)

	cfg, err := config.Load(command.Config)
	if err != nil {
		logger.Error("failed-to-load-config", err)
		return err
	}

	seeds := append(append([]string(nil), command.Seeds...), args...)
	if err := checkSeeds(seeds, cfg.Wordlist.MaxSeedLength); err != nil {
		return err
	}

	logger = logger.Session("generate", lager.Data{"seeds": len(seeds), "max": command.Max})
	logger.Debug("starting")

	opts := cfg.WordlistOptions()
	opts.MaxLeetVariants = leetVariantCap(opts.MaxLeetVariants, command.Max)

	entries := wordlist.New(opts).Generate(seeds, command.Max)

	logger.Debug("done", lager.Data{"entries": len(entries)})

	if command.Output == "" {
		fmt.Println("\nGenerated Wordlist:")
		for _, entry := range entries {
			fmt.Println(entry)
		}

		return nil
	}

	if err := writeWordlist(logger, command.Output, entries); err != nil {
		logger.Error("failed-to-write-wordlist", err)
		return err
	}

	fmt.Printf("\n%s Wordlist saved to %s with %d entries.\n", green("[OK]"), command.Output, len(entries))

	return nil
}

// leetVariantCap bounds the leet expansion of each seed by maxItems. No
// more than maxItems base words are ever emitted, and a capped expansion is
// a prefix of the full one, so the wordlist is unchanged.
func leetVariantCap(configured, maxItems int) int {
	if maxItems <= 0 {
		return configured
	}
	if configured == 0 || configured > maxItems {
		return maxItems
	}

	return configured
}

// checkSeeds rejects seeds longer than maxLength runes.
func checkSeeds(seeds []string, maxLength int) error {
	var result error

	for _, seed := range seeds {
		if n := utf8.RuneCountInString(seed); n > maxLength {
			result = multierror.Append(result, fmt.Errorf("seed %q is %d characters long, the maximum is %d", seed, n, maxLength))
		}
	}

	return result
}
