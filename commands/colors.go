package commands

import (
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/passkit/analyzer"
)

var (
	red    = ansi.ColorFunc("red+b")
	yellow = ansi.ColorFunc("yellow+b")
	green  = ansi.ColorFunc("green+b")
)

func colorClassification(c analyzer.Classification) string {
	switch c {
	case analyzer.VeryWeak, analyzer.Weak:
		return red(c.String())
	case analyzer.Fair:
		return yellow(c.String())
	default:
		return green(c.String())
	}
}
