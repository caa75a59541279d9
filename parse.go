package fig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidJSON is returned when the fig file is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotObject is returned when the fig file holds valid JSON that is not an object.
	ErrNotObject = errors.New("top-level JSON value is not an object")
	// ErrInvalidKey is returned for keys that cannot name an environment variable.
	ErrInvalidKey = errors.New("invalid environment variable name")
	// ErrInvalidValue is returned for values the environment cannot hold.
	ErrInvalidValue = errors.New("invalid environment variable value")
)

// Read reads the fig file at path and returns its entries coerced to strings.
// It does not touch any environment.
//
// Strings are returned verbatim. Numbers are written the way JavaScript
// prints them in plain notation (1e2 -> 100, 1.50 -> 1.5); integer literals
// are kept digit for digit. Booleans, null and nested arrays and objects are
// returned as their compact JSON text.
func Read(path string) (map[string]string, error) {
	if path == "" {
		path = DefaultFilePath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fig file: %w", err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("parsing %s: %w", path, ErrNotObject)
		}
		return nil, fmt.Errorf("parsing %s: %w: %w", path, ErrInvalidJSON, err)
	}
	// json.Unmarshal leaves the map nil for a literal null.
	if raw == nil {
		return nil, fmt.Errorf("parsing %s: %w", path, ErrNotObject)
	}

	entries := make(map[string]string, len(raw))
	for key, value := range raw {
		if err := validateKey(key); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		s, err := coerce(value)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: key %q: %w: %w", path, key, ErrInvalidJSON, err)
		}
		if strings.ContainsRune(s, 0) {
			return nil, fmt.Errorf("parsing %s: key %q: %w: contains NUL", path, key, ErrInvalidValue)
		}
		entries[key] = s
	}
	return entries, nil
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func coerce(value json.RawMessage) (string, error) {
	if len(value) > 0 && value[0] == '"' {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if isNumber(value) {
		return formatNumber(string(value)), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isNumber(value json.RawMessage) bool {
	return len(value) > 0 && (value[0] == '-' || (value[0] >= '0' && value[0] <= '9'))
}

// formatNumber keeps out-of-range literals such as 1e400 as written.
func formatNumber(lit string) string {
	if strings.IndexAny(lit, ".eE") < 0 {
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Load reads the fig file at path and sets one environment variable per
// entry. An empty path means DefaultFilePath.
//
// Read, JSON, key and value errors are all returned before any variable is set, so
// a failed Load leaves the environment unchanged. Entries are applied in key
// order; repeated loads overwrite and accumulate.
func Load(path string, opts ...Option) error {
	o := newOptions(opts)
	if path == "" {
		path = DefaultFilePath
	}

	entries, err := Read(path)
	if err != nil {
		o.logger.Error("loading fig file failed", "path", path, "error", err)
		return err
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := o.env.Setenv(k, entries[k]); err != nil {
			o.logger.Error("setting environment variable failed", "key", k, "error", err)
			return fmt.Errorf("setting %s: %w", k, err)
		}
		o.logger.Info("Added " + k + " to the environment")
	}
	return nil
}

// Parse runs Load in its own goroutine. The returned channel receives the
// result exactly once and is then closed.
func Parse(path string, opts ...Option) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- Load(path, opts...)
	}()
	return done
}
