package fig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Setup creates the fig file at path with content unless something already
// exists there, then registers path in the ignore file at ignorePath unless
// skipIgnore is set. Empty arguments fall back to DefaultFilePath,
// DefaultContent and DefaultIgnorePath.
//
// An existing fig file is never overwritten. The ignore file gets
// EOL+path+EOL appended only if it does not already contain path.
//
// Setup is not atomic: the existence check and the write are separate steps,
// and a failure while updating the ignore file leaves the new fig file in
// place.
func Setup(path, content, ignorePath string, skipIgnore bool, opts ...Option) error {
	o := newOptions(opts)
	if path == "" {
		path = DefaultFilePath
	}
	if content == "" {
		content = DefaultContent
	}
	if ignorePath == "" {
		ignorePath = DefaultIgnorePath
	}

	exists, err := fileExists(path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		o.logger.Warn(path + " already exists, we will not overwrite")
	} else {
		o.logger.Info("Creating " + path)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return fmt.Errorf("creating fig file: %w", err)
		}
	}

	if skipIgnore {
		return nil
	}

	exists, err = fileExists(ignorePath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", ignorePath, err)
	}
	if !exists {
		return createIgnoreFile(o, ignorePath, path)
	}
	return appendToIgnoreFile(o, ignorePath, path)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func ignoreEntry(path string) string {
	return EOL + path + EOL
}

func createIgnoreFile(o options, ignorePath, path string) error {
	o.logger.Info("creating " + ignorePath + " and adding " + path)
	if err := os.WriteFile(ignorePath, []byte(ignoreEntry(path)), 0o644); err != nil {
		return fmt.Errorf("creating ignore file: %w", err)
	}
	return nil
}

func appendToIgnoreFile(o options, ignorePath, path string) error {
	existing, err := os.ReadFile(ignorePath)
	if err != nil {
		return fmt.Errorf("reading ignore file: %w", err)
	}
	if strings.Contains(string(existing), path) {
		o.logger.Info(ignorePath + " already ignores " + path)
		return nil
	}

	o.logger.Info("adding to " + ignorePath + " " + path)
	f, err := os.OpenFile(ignorePath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("opening ignore file: %w", err)
	}
	if _, err := f.WriteString(ignoreEntry(path)); err != nil {
		f.Close()
		return fmt.Errorf("appending to ignore file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing ignore file: %w", err)
	}
	return nil
}
