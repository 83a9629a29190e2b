package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/relloyd/tdch/constants"
	"github.com/relloyd/tdch/helper"
	"github.com/relloyd/tdch/logger"
)

// ResolveWildcardSpecs expands the comma separated list of specs into a comma separated list of files.
// Each spec is of the form [<dir>/]<pattern>, relative to root unless it is an absolute path.
// The pattern uses filepath.Match syntax and is applied to the names of regular files found in <dir>.
// Specs without a pattern are kept if the file they name exists.
// Files are returned in spec order and then in directory listing order (lexical) within each spec.
// Paths are built by concatenation so they keep the spec as supplied e.g. /work/./lib/a.jar.
// Missing directories contribute nothing; an empty string is returned if nothing matches.
func ResolveWildcardSpecs(log logger.Logger, root string, specs string) string {
	files := make([]string, 0)
	for _, spec := range helper.CsvToStringSliceSkipBlanks(specs) { // for each spec...
		files = append(files, resolveSpec(log, root, spec)...)
	}
	return strings.Join(files, constants.LibJarDelimiter)
}

// CheckSpecsWithinRoot returns an error if any of the comma separated specs is absolute
// or names a directory outside root. Use it before resolving specs from untrusted input.
func CheckSpecsWithinRoot(root string, specs string) error {
	if root == "" {
		root = "."
	}
	for _, spec := range helper.CsvToStringSliceSkipBlanks(specs) { // for each spec...
		if filepath.IsAbs(spec) {
			return errors.Errorf("library path %q must be relative to the work directory", spec)
		}
		rel, err := filepath.Rel(root, filepath.Join(root, spec))
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return errors.Errorf("library path %q is outside the work directory", spec)
		}
	}
	return nil
}

func resolveSpec(log logger.Logger, root string, spec string) []string {
	full := spec
	if root != "" && !filepath.IsAbs(spec) { // if the spec is relative to root...
		full = strings.TrimRight(root, "/") + "/" + spec
	}
	dir, pattern := helper.SplitRight(full, "/")
	if pattern == "" && !strings.Contains(full, "/") { // if there is no directory component...
		dir, pattern = ".", full
	} else if dir == "" { // if the spec is a file in the file system root...
		dir = "/"
	}
	if !hasMeta(pattern) { // if there's nothing to expand...
		if info, err := os.Stat(full); err == nil && info.Mode().IsRegular() {
			return []string{full}
		}
		log.Debug("skipping library path that does not exist: ", full)
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		log.Warn("skipping library path with bad pattern ", full, ": ", err)
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("library folder does not exist: ", dir)
		} else {
			log.Warn("unable to list library folder ", dir, ": ", err)
		}
		return nil
	}
	prefix := dir
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	retval := make([]string, 0, len(entries))
	for _, e := range entries { // for each directory entry...
		if ok, _ := filepath.Match(pattern, e.Name()); !ok {
			continue
		}
		if isRegularFile(e, prefix+e.Name()) {
			retval = append(retval, prefix+e.Name())
		}
	}
	return retval
}

// isRegularFile reports whether the entry is a regular file, following symlinks.
func isRegularFile(e os.DirEntry, path string) bool {
	if e.Type()&os.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}
