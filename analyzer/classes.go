package analyzer

import "unicode"

// CharacterClasses records which classes of characters occur in a password.
// A symbol is anything that is neither a letter nor a number.
type CharacterClasses struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

func Classes(password string) CharacterClasses {
	var c CharacterClasses

	for _, r := range password {
		if unicode.IsLower(r) {
			c.Lower = true
		}
		if unicode.IsUpper(r) {
			c.Upper = true
		}
		if unicode.IsDigit(r) {
			c.Digit = true
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			c.Symbol = true
		}
	}

	return c
}

// PoolSize estimates the alphabet a password was drawn from. It is never
// less than 1.
func (c CharacterClasses) PoolSize() int {
	pool := 0
	if c.Lower {
		pool += 26
	}
	if c.Upper {
		pool += 26
	}
	if c.Digit {
		pool += 10
	}
	if c.Symbol {
		pool += 33
	}

	if pool < 1 {
		return 1
	}
	return pool
}
