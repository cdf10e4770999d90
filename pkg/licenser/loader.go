package licenser

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrMissingKey = errors.New("license key is missing")

// EnvKey holds a license key given through the environment.
const EnvKey = "LIBLICENSE_KEY"

// ReadKey reads a license key from a file. Surrounding whitespace, including
// the trailing newline most editors add, is removed.
func ReadKey(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read license key: %w", err)
	}
	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", ErrMissingKey
	}
	return key, nil
}

// Load returns the license key from the first source that provides one: the
// argument, the file, then the environment.
func Load(key string, filename string) (string, error) {
	if key != "" {
		return key, nil
	}
	if filename != "" {
		return ReadKey(filename)
	}
	if key := os.Getenv(EnvKey); key != "" {
		return key, nil
	}
	return "", ErrMissingKey
}
