package mimetype

import (
	"strings"
)

const (
	Tar = "application/x-tar"
	Tgz = "application/x-gtar"
)

// IsArchive reports whether filename names a tarball passkit can write.
func IsArchive(filename string) (string, bool) {
	lower := strings.ToLower(filename)

	if strings.HasSuffix(lower, ".tar.gz") ||
		strings.HasSuffix(lower, ".tgz") {
		return Tgz, true
	} else if strings.HasSuffix(lower, ".tar") {
		return Tar, true
	} else {
		return "", false
	}
}
