package project

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extract unpacks the zip archive at src into dir and returns the number of
// files written. Entries that would land outside dir are rejected.
func extract(src, dir string) (int, error) {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	dir = filepath.Clean(dir)
	n := 0
	for _, entry := range zr.File {
		target := filepath.Join(dir, filepath.FromSlash(entry.Name))
		if target != dir && !strings.HasPrefix(target, dir+string(os.PathSeparator)) {
			return n, fmt.Errorf("entry %q escapes the extraction directory", entry.Name)
		}
		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return n, err
			}
			continue
		}
		if err := writeEntry(entry, target); err != nil {
			return n, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		n++
	}
	return n, nil
}

func writeEntry(entry *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
