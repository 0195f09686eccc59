package analyzer

type Issue string

const (
	TooShort           Issue = "Too short"
	CommonPassword     Issue = "Common password"
	ContainsSequence   Issue = "Contains sequence"
	ContainsRepetition Issue = "Contains repetition"

	// Only reported by analyzers built with Options.CheckPersonalInfo.
	ContainsPersonalInfo Issue = "Contains personal information"
)
