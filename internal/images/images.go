// Package images associates chart screenshots on disk with trades. Filenames
// follow the journal's convention "dd-MM-yyyy - SYMBOL - note.png".
package images

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rgleason/trading-journal/internal/models"
)

const fileDateLayout = "02-01-2006"

var imagePattern = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)

// Lister exposes the flat list of available image filenames.
type Lister interface {
	List() ([]string, error)
}

// DirLister lists image files from a local directory.
type DirLister struct {
	dir string
}

// NewDirLister creates a DirLister for the given directory.
func NewDirLister(dir string) *DirLister {
	return &DirLister{dir: dir}
}

// List returns the png/jpg/jpeg filenames in the directory.
func (l *DirLister) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imagePattern.MatchString(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// ForTrade returns the filenames whose embedded date and symbol match the
// trade. The date token is reformatted to yyyy-MM-dd before comparing on the
// normalized day string; symbols match exactly, case-sensitive. No match is
// not an error.
func ForTrade(trade models.Trade, files []string) []string {
	day := trade.Day()

	matches := make([]string, 0)
	for _, file := range files {
		tokens := strings.SplitN(file, " - ", 3)
		if len(tokens) < 3 {
			continue
		}
		fileDate, err := time.Parse(fileDateLayout, tokens[0])
		if err != nil {
			continue
		}
		if fileDate.Format("2006-01-02") != day {
			continue
		}
		if tokens[1] != trade.Symbol {
			continue
		}
		matches = append(matches, file)
	}
	return matches
}
