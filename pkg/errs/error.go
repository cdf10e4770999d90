package errs

import (
	"fmt"
	"sort"
	"strings"
)

// ValidateError carries the failed fields of a struct validation as a tree
// keyed by field name.
type ValidateError struct {
	err     error
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields"`
}

func NewValidateError(err error) *ValidateError {
	return &ValidateError{
		err:     err,
		Message: err.Error(),
		Fields:  make(map[string]interface{}),
	}
}

func (e *ValidateError) Unwrap() error {
	return e.err
}

// Error renders the message followed by every failed field path, sorted.
func (e *ValidateError) Error() string {
	var details []string
	flatten("", e.Fields, &details)
	if len(details) == 0 {
		return e.Message
	}
	sort.Strings(details)
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(details, "; "))
}

func flatten(path string, fields map[string]interface{}, details *[]string) {
	for name, v := range fields {
		p := name
		if path != "" {
			p = path + "." + name
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flatten(p, nested, details)
			continue
		}
		*details = append(*details, fmt.Sprintf("%s: %v", p, v))
	}
}
