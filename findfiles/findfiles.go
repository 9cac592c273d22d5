// Package findfiles finds files by name suffix anywhere beneath a directory.
package findfiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Find returns the path of every regular file beneath the directory root on
// the local filesystem whose name ends with suffix.  The returned paths
// start with root and are sorted.  An empty suffix matches every file.
//
// A root that is empty, does not exist, or is not a directory yields an
// empty result.
func Find(root, suffix string) ([]string, error) {
	if root == "" {
		return []string{}, nil
	}
	matches, err := FindFS(os.DirFS(root), ".", suffix)
	if err != nil {
		return nil, err
	}
	for index, match := range matches {
		matches[index] = filepath.Join(root, filepath.FromSlash(match))
	}
	return matches, nil
}

// FindFS is Find for an arbitrary fs.FS.  The root and the returned paths
// use the slash-separated path syntax of io/fs.
func FindFS(fsys fs.FS, root, suffix string) ([]string, error) {
	info, err := fs.Stat(fsys, root)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("findfiles: %w", err)
	}
	if !info.IsDir() {
		return []string{}, nil
	}

	matches := make([]string, 0)
	stack := []string{root}
	for len(stack) != 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("findfiles: %w", err)
		}

		for _, entry := range entries {
			full := path.Join(dir, entry.Name())
			switch {
			case entry.IsDir():
				stack = append(stack, full)
			case entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), suffix):
				matches = append(matches, full)
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}
