// Package envfile inspects the dotenv file a descriptor points at. It never
// exports values into the process environment; the host platform does that.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry represents a single key-value pair from a .env file.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Resolve resolves a descriptor-relative reference (env or readmePath).
// Relative refs are joined to the directory holding descriptorPath; an empty
// descriptorPath resolves against the working directory.
func Resolve(descriptorPath, ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	base := "."
	if descriptorPath != "" {
		base = filepath.Dir(descriptorPath)
	}
	return filepath.Join(base, ref)
}

// Parse reads a .env file and returns key-value entries in file order.
// It skips blank lines, lines starting with #, and lines without "=".
// An optional "export " prefix is dropped and one layer of matching quotes
// is stripped from values.
func Parse(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: unquote(strings.TrimSpace(value)),
			Line:  lineNo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Missing returns the keys from want that are absent or empty in entries,
// preserving the order of want. Later entries override earlier ones.
func Missing(entries []Entry, want ...string) []string {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}
	var missing []string
	for _, k := range want {
		if values[k] == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// Redact returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func Redact(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
