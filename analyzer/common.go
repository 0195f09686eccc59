package analyzer

var commonPasswords = []string{
	"password",
	"123456",
	"qwerty",
	"admin",
	"welcome",
}

// CommonPasswords returns a copy of the built-in list of known-weak
// passwords, all lowercase.
func CommonPasswords() []string {
	return append([]string(nil), commonPasswords...)
}
