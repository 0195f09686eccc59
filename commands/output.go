package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/lager"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/passkit/mimetype"
)

const archivedWordlistName = "wordlist.txt"

func writeJSON(logger lager.Logger, path string, v interface{}) error {
	logger = logger.Session("write-json", lager.Data{"path": path})
	logger.Debug("starting")
	defer logger.Debug("done")

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var result error

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(v); err != nil {
		result = multierror.Append(result, err)
	}

	if err := f.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

// writeWordlist writes one entry per line. Tarball paths get a single
// wordlist.txt member.
func writeWordlist(logger lager.Logger, path string, entries []string) error {
	logger = logger.Session("write-wordlist", lager.Data{"path": path, "entries": len(entries)})
	logger.Debug("starting")
	defer logger.Debug("done")

	mime, isArchive := mimetype.IsArchive(path)
	if !isArchive {
		return writeLines(path, entries)
	}

	workDir, err := ioutil.TempDir("", "passkit-wordlist")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)

	listPath := filepath.Join(workDir, archivedWordlistName)
	if err := writeLines(listPath, entries); err != nil {
		return err
	}

	logger.Debug("compressing", lager.Data{"mime": mime})

	switch mime {
	case mimetype.Tgz:
		return compressor.NewTgz().Compress(listPath, path)
	case mimetype.Tar:
		return writeTar(listPath, path)
	default:
		return fmt.Errorf("unsupported archive type: %s", mime)
	}
}

func writeTar(src, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return err
	}

	var result error

	if err := compressor.WriteTar(src, f); err != nil {
		result = multierror.Append(result, err)
	}

	if err := f.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var result error

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			result = multierror.Append(result, err)
			break
		}
	}

	if err := w.Flush(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := f.Close(); err != nil {
		result = multierror.Append(result, err)
	}

	return result
}
