package health

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/jeanpaul/phonebook/internal/records"
	"github.com/jeanpaul/phonebook/internal/storage"
)

type Status struct {
	Path      string
	Exists    bool
	Readable  bool
	Writable  bool
	Lines     int
	Records   int
	Malformed int
	Blank     int
	Error     string
	Latency   time.Duration
}

// Healthy reports whether the directory can be both loaded and saved.
func (s Status) Healthy() bool {
	return s.Exists && s.Readable && s.Writable
}

// Check inspects the data file at path without modifying it. A missing file
// is reported, not created.
func Check(path string) (s Status) {
	s.Path = path
	start := time.Now()
	defer func() { s.Latency = time.Since(start) }()

	info, err := os.Stat(path)
	if err != nil {
		s.Error = friendlyError(err)
		return s
	}
	s.Exists = true
	if info.IsDir() {
		s.Error = "is a directory, not a data file"
		return s
	}

	lines, err := storage.Read(path)
	if err != nil {
		s.Error = friendlyError(err)
	} else {
		s.Readable = true
		s.Lines = len(lines)
		s.Records = records.New(lines).Len()
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				s.Blank++
			}
		}
		s.Malformed = s.Lines - s.Blank - s.Records
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		if s.Error == "" {
			s.Error = friendlyError(err)
		}
		return s
	}
	f.Close()
	s.Writable = true

	return s
}

// Summary is the one-line report printed after the check mark.
func (s Status) Summary() string {
	if !s.Readable {
		return s.Error
	}
	msg := fmt.Sprintf("%d records", s.Records)
	if s.Malformed > 0 {
		msg += fmt.Sprintf(", %d malformed lines skipped", s.Malformed)
	}
	if s.Blank > 0 {
		msg += fmt.Sprintf(", %d blank lines", s.Blank)
	}
	return msg
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not found (it is created on first run)"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied (check file mode and owner)"
	}
	return err.Error()
}
