package utils

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	uuid "github.com/satori/go.uuid"
)

func DefaultIfZero[T any](v T, fallback T) T {
	if reflect.ValueOf(v).IsZero() {
		return fallback
	}
	return v
}

func UUID() string {
	return uuid.NewV4().String()
}

func IsValidUUID(id string) bool {
	_, err := uuid.FromString(id)
	return err == nil
}

// ResolveAlias expands aliases recursively, keeping the order in which names
// are first seen. Duplicates are dropped.
func ResolveAlias(aliasMap map[string][]string, aliases []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool)
	var resolve func(names []string, path []string) error
	resolve = func(names []string, path []string) error {
		for _, name := range names {
			v, ok := aliasMap[name]
			if !ok {
				if !seen[name] {
					seen[name] = true
					resolved = append(resolved, name)
				}
				continue
			}
			for _, p := range path {
				if p == name {
					return fmt.Errorf("alias cycle: %s", strings.Join(append(path, name), " -> "))
				}
			}
			if err := resolve(v, append(path, name)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := resolve(aliases, nil); err != nil {
		return nil, err
	}
	return resolved, nil
}

// ReadLines returns the lines of r with surrounding whitespace removed,
// skipping blank lines and lines starting with '#'.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
