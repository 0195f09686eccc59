package analyzer

import (
	"encoding/json"
	"math"
)

type Result struct {
	Password       string         `json:"password"`
	Length         int            `json:"length"`
	EntropyBits    float64        `json:"entropy_bits"`
	Classification Classification `json:"classification"`
	Issues         []Issue        `json:"issues"`
}

// HasIssue reports whether issue was detected.
func (r Result) HasIssue(issue Issue) bool {
	for _, i := range r.Issues {
		if i == issue {
			return true
		}
	}

	return false
}

// MarshalJSON rounds the entropy estimate to two decimals.
func (r Result) MarshalJSON() ([]byte, error) {
	type result Result

	out := result(r)
	out.EntropyBits = RoundBits(r.EntropyBits)
	if out.Issues == nil {
		out.Issues = []Issue{}
	}

	return json.Marshal(out)
}

func RoundBits(bits float64) float64 {
	return math.Round(bits*100) / 100
}
