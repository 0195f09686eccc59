package analyzer

// Finding locates one detected issue. Start and End are rune offsets into
// Input, which is the password as the detector saw it (lowercased for the
// common-password and personal-information checks).
type Finding struct {
	Issue Issue
	Input string

	Start int
	End   int
}

func (f Finding) Fragment() string {
	return string([]rune(f.Input)[f.Start:f.End])
}
