package commands

type PassKitCommand struct {
	Analyze  AnalyzeCommand  `command:"analyze" description:"Estimate the strength of a password"`
	Wordlist WordlistCommand `command:"wordlist" description:"Generate a wordlist from seed words"`
	Version  VersionCommand  `command:"version" description:"Displays passkit version" alias:"V"`
}

var PassKit PassKitCommand
