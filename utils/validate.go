package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/liblicense/liblicense/pkg/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var ErrValidation = errors.New("validation")

// Validate checks the `validate` tags of v. Failures are reported as an
// *errs.ValidateError keyed by yaml field names.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	validateErr := errs.NewValidateError(ErrValidation)
	t := reflect.ValueOf(v).Type()
	for _, e := range validationErrors {
		fields := strings.Split(e.StructNamespace(), ".")
		node := validateErr.Fields
		parentT := t
		for i := 1; i < len(fields); i++ {
			name, index := splitIndex(fields[i])
			f, ok := getField(parentT, name)
			if !ok {
				continue
			}

			key := fieldName(f) + index
			if i < len(fields)-1 {
				if node[key] == nil {
					node[key] = make(map[string]interface{})
				}
				node = node[key].(map[string]interface{})
			} else {
				node[key] = formatError(e)
			}
			parentT = f.Type
		}
	}
	return validateErr
}

func formatError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field missing"
	case "oneof":
		return fmt.Sprintf("invalid value: %v", fe.Value())
	case "gt":
		return fmt.Sprintf("value must be > %s", fe.Param())
	case "gte":
		return fmt.Sprintf("value must be >= %s", fe.Param())
	case "lt":
		return fmt.Sprintf("value must be < %s", fe.Param())
	case "lte":
		return fmt.Sprintf("value must be <= %s", fe.Param())
	case "min":
		return fmt.Sprintf("length must be at least %s", fe.Param())
	case "excludes":
		return fmt.Sprintf("must not contain '%s'", fe.Param())
	case "unique":
		return "values must be unique"
	}
	return fe.Error()
}

// splitIndex separates "Algorithms[1]" into "Algorithms" and "[1]".
func splitIndex(field string) (string, string) {
	if i := strings.IndexByte(field, '['); i != -1 {
		return field[:i], field[i:]
	}
	return field, ""
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}

func getField(t reflect.Type, field string) (reflect.StructField, bool) {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Map {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	return t.FieldByName(field)
}
