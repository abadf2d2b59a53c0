package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Uncategorized labels messages discovered in a flat root with no category
// subdirectories.
const Uncategorized = "uncategorized"

const messageExt = ".eml"

// Message locates one raw message file on disk. Category is the name of its
// parent directory under the corpus root.
type Message struct {
	Filename string
	Category string
	Path     string
}

// Locator discovers message files under a category-partitioned root.
type Locator struct {
	maxPerCategory int
	logger         *log.Logger
}

func NewLocator(maxPerCategory int, logger *log.Logger) *Locator {
	return &Locator{maxPerCategory: maxPerCategory, logger: logger}
}

// Collect returns the capped, lexicographically ordered message list. Each
// subdirectory of root that holds message files becomes a category; when no
// subdirectory does, the root itself is scanned as a single uncategorized
// collection. A missing or unreadable root yields an empty list, not an
// error.
func (l *Locator) Collect(root string) []Message {
	entries, err := os.ReadDir(root)
	if err != nil {
		l.logger.Warn("Corpus root not readable", "root", root, "error", err)
		return nil
	}

	var out []Message
	categorized := false
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		files := l.messageFiles(dir)
		if len(files) == 0 {
			continue
		}
		categorized = true
		for _, f := range files {
			out = append(out, Message{Filename: f, Category: e.Name(), Path: filepath.Join(dir, f)})
		}
		l.logger.Debug("Collected category", "category", e.Name(), "files", len(files))
	}
	if categorized {
		return out
	}

	for _, f := range l.messageFiles(root) {
		out = append(out, Message{Filename: f, Category: Uncategorized, Path: filepath.Join(root, f)})
	}
	return out
}

// messageFiles lists the recognized message files in dir, sorted by name,
// keeping at most maxPerCategory of the earliest.
func (l *Locator) messageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Warn("Skipping unreadable directory", "dir", dir, "error", err)
		return nil
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), messageExt) {
			continue
		}
		files = append(files, e.Name())
		if l.maxPerCategory > 0 && len(files) >= l.maxPerCategory {
			break
		}
	}
	return files
}
