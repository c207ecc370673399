package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/filing"
)

// maxCollisionSuffix bounds the search for a free destination name.
const maxCollisionSuffix = 10000

// Lifecycle moves processed filings out of the import directory.
type Lifecycle struct {
	ProcessedDir string
	ReviewDir    string
}

// Destination returns where a filing with the given outcome belongs, before
// collision handling.
func (l Lifecycle) Destination(path string, outcome filing.Outcome) string {
	name := filepath.Base(path)
	if outcome.Accepted() {
		return filepath.Join(l.ProcessedDir, name)
	}
	return filepath.Join(l.ReviewDir, filing.RejectedFileName(name, outcome))
}

// Move relocates a filing according to its outcome and returns the final path.
// An existing file at the destination is never overwritten; a numeric suffix
// is added instead (name_1.fec, name_2.fec, ...).
func (l Lifecycle) Move(path string, outcome filing.Outcome) (string, error) {
	dest := l.Destination(path, outcome)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}

	free, err := freeName(dest)
	if err != nil {
		return "", err
	}
	if err := os.Rename(path, free); err != nil {
		return "", fmt.Errorf("move %s: %w", filepath.Base(path), err)
	}
	return free, nil
}

// freeName returns dest, or dest with the first unused numeric suffix.
func freeName(dest string) (string, error) {
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)

	candidate := dest
	for i := 1; i <= maxCollisionSuffix; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		candidate = base + "_" + strconv.Itoa(i) + ext
	}
	return "", fmt.Errorf("no free name for %s", filepath.Base(dest))
}
