package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// ValidateWordList performs cheap sanity checks on a word list file before a
// load is attempted: it must exist, be a regular file, and be non-empty.
// Content problems (overlong lines, junk) are handled during the load itself.
func ValidateWordList(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("word list %s not accessible: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("word list %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("word list %s is empty", path)
	}
	log.Debugf("Word list %s validated: %d bytes", path, info.Size())
	return nil
}
