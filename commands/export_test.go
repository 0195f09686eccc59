package commands

var (
	WriteWordlist  = writeWordlist
	WriteJSON      = writeJSON
	CheckSeeds     = checkSeeds
	LeetVariantCap = leetVariantCap
	PrintResult    = printResult
	PrintDetails   = printDetails
)
