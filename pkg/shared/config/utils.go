package config

import (
	"reflect"
	"strings"
)

// GetBoolValue retrieves a boolean from a nested struct following a
// dot-separated field path. It returns defaultValue when the field is not
// present or not explicitly set (nil pointer).
func GetBoolValue(cfg interface{}, fieldPath string, defaultValue bool) bool {
	if cfg == nil {
		return defaultValue
	}

	val := reflect.ValueOf(cfg)
	for _, field := range strings.Split(fieldPath, ".") {
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return defaultValue
			}
			val = val.Elem()
		}
		val = val.FieldByName(field)
		if !val.IsValid() {
			return defaultValue
		}
	}

	if val.Kind() == reflect.Ptr && !val.IsNil() {
		return val.Elem().Bool()
	}
	if val.Kind() == reflect.Bool {
		return val.Bool()
	}
	return defaultValue
}

// SetThen returns value when it is set, otherwise defaultValue.
func SetThen[T any](value T, defaultValue T) T {
	if reflect.ValueOf(value).IsZero() {
		return defaultValue
	}
	return value
}
