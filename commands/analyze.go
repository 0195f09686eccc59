package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/passkit/analyzer"
	"github.com/pivotal-cf/passkit/config"
)

var errNoPassword = errors.New("please provide a password with -p or use --stdin")

type AnalyzeCommand struct {
	Password          string   `short:"p" long:"password" description:"password to analyze (ends up in your shell history)" value-name:"PASSWORD"`
	Stdin             bool     `long:"stdin" description:"read the password from STDIN without echoing it"`
	UserInputs        []string `long:"user-inputs" description:"personal information to check the password against (repeatable)" value-name:"TEXT"`
	CheckPersonalInfo bool     `long:"check-personal-info" description:"report passwords that contain any --user-inputs value"`
	Detailed          bool     `long:"detailed" description:"show the character classes and the location of each issue"`
	JSON              string   `long:"json" description:"save the result as JSON" value-name:"PATH"`
	Config            string   `long:"config" description:"path to a passkit YAML config" value-name:"PATH"`
	Debug             bool     `long:"debug" description:"enables debug logging"`
}

func (command *AnalyzeCommand) Execute(args []string) error {
	logger := newLogger("analyze", command.Debug)

	cfg, err := config.Load(command.Config)
	if err != nil {
		logger.Error("failed-to-load-config", err)
		return err
	}

	password, err := command.password()
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.Options{
		CheckPersonalInfo: command.CheckPersonalInfo || cfg.Analyzer.CheckPersonalInfo,
	})

	result := a.Analyze(password, command.UserInputs)
	logger.Debug("analyzed", lager.Data{
		"length":         result.Length,
		"classification": result.Classification.String(),
		"issues":         result.Issues,
	})

	printResult(os.Stdout, result)

	if command.Detailed {
		printDetails(os.Stdout, analyzer.Classes(password), a.Findings(password, command.UserInputs))
	}

	if command.JSON != "" {
		if err := writeJSON(logger, command.JSON, result); err != nil {
			logger.Error("failed-to-write-json", err)
			return err
		}
		fmt.Printf("\n%s Results saved to %s\n", green("[OK]"), command.JSON)
	}

	return nil
}

func (command *AnalyzeCommand) password() (string, error) {
	switch {
	case command.Password != "":
		return command.Password, nil
	case command.Stdin:
		return readSecret(os.Stdin, os.Stderr)
	default:
		return "", errNoPassword
	}
}

func printResult(w io.Writer, result analyzer.Result) {
	fmt.Fprintln(w, "\nPassword Analysis Result:")
	fmt.Fprintf(w, "  Password: %s\n", result.Password)
	fmt.Fprintf(w, "  Length: %d\n", result.Length)
	fmt.Fprintf(w, "  Entropy: %.2f bits\n", analyzer.RoundBits(result.EntropyBits))
	fmt.Fprintf(w, "  Strength: %s\n", colorClassification(result.Classification))

	if len(result.Issues) > 0 {
		issues := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			issues[i] = string(issue)
		}
		fmt.Fprintf(w, "  Issues: %s\n", strings.Join(issues, ", "))
	} else {
		fmt.Fprintf(w, "  Issues: %s\n", green("None"))
	}

	if suggestions := Suggestions(result); len(suggestions) > 0 {
		fmt.Fprintln(w, "\nSuggestions:")
		for _, s := range suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}

func printDetails(w io.Writer, classes analyzer.CharacterClasses, findings []analyzer.Finding) {
	fmt.Fprintln(w, "\nDetailed Report:")
	fmt.Fprintf(w, "  Contains Uppercase: %t\n", classes.Upper)
	fmt.Fprintf(w, "  Contains Lowercase: %t\n", classes.Lower)
	fmt.Fprintf(w, "  Contains Digits: %t\n", classes.Digit)
	fmt.Fprintf(w, "  Contains Special: %t\n", classes.Symbol)

	for _, f := range findings {
		fmt.Fprintf(w, "  %s: %q at %d-%d\n", f.Issue, f.Fragment(), f.Start, f.End)
	}
}
