// Package storage reads and writes the plain-line backing file. Every call
// opens and closes its own handle; nothing is held between calls.
//
// Rewrite truncates in place: a crash part way through can leave a short file.
// There is no temp-file rename and no backup.
package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	filePerm = 0644
	// maxLineSize bounds a single row; the default bufio.Scanner limit is 64KiB.
	maxLineSize = 1 << 20
)

// Load makes sure path exists, creating an empty file if needed, and returns
// its lines in order without line terminators.
func Load(path string) ([]string, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, filePerm)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return lines, nil
}

// Read returns the lines of an existing file. Unlike Load it never creates
// path.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// Append writes rows after the existing content, one per line.
func Append(path string, rows []string) error {
	return write(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, rows)
}

// Rewrite replaces the whole file with rows. Rows not passed in are gone.
func Rewrite(path string, rows []string) error {
	return write(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, rows)
}

func write(path string, flag int, rows []string) (err error) {
	f, err := os.OpenFile(path, flag, filePerm)
	if err != nil {
		return fmt.Errorf("storage: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("storage: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(row + "\n"); err != nil {
			return fmt.Errorf("storage: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	return nil
}

// File binds the operations above to one path.
type File struct {
	Path string
}

func (f File) Load() ([]string, error)     { return Load(f.Path) }
func (f File) Append(rows []string) error  { return Append(f.Path, rows) }
func (f File) Rewrite(rows []string) error { return Rewrite(f.Path, rows) }
