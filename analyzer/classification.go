package analyzer

// Classification is one of five ordered strength tiers.
type Classification int

const (
	VeryWeak Classification = iota
	Weak
	Fair
	Strong
	VeryStrong
)

// Lower bounds, in bits, of every tier above VeryWeak.
const (
	weakBits       = 28
	fairBits       = 36
	strongBits     = 60
	veryStrongBits = 80
)

// Classify maps an entropy estimate onto its tier. Each tier includes its
// lower bound.
func Classify(entropyBits float64) Classification {
	switch {
	case entropyBits < weakBits:
		return VeryWeak
	case entropyBits < fairBits:
		return Weak
	case entropyBits < strongBits:
		return Fair
	case entropyBits < veryStrongBits:
		return Strong
	default:
		return VeryStrong
	}
}

func (c Classification) String() string {
	switch c {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Fair:
		return "Fair"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsWeak is true for the two lowest tiers.
func (c Classification) IsWeak() bool {
	return c <= Weak
}
