// FILE: embedconf/convenience.go
package embedconf

import "fmt"

// Package-level helpers for the common case of default discovery options.
// Each call runs a complete resolution.

// String resolves field from the discovered document as a string.
func String(field string) (string, error) {
	return NewResolver().String(field)
}

// Int64 resolves field from the discovered document as an integer.
func Int64(field string) (int64, error) {
	return NewResolver().Int64(field)
}

// Float64 resolves field from the discovered document as a float.
func Float64(field string) (float64, error) {
	return NewResolver().Float64(field)
}

// Bool resolves field from the discovered document as a boolean.
func Bool(field string) (bool, error) {
	return NewResolver().Bool(field)
}

// MustString is like String but panics on error. Intended for values a
// program cannot start without.
func MustString(field string) string {
	val, err := String(field)
	if err != nil {
		panic(fmt.Sprintf("resolving %q failed: %v", field, err))
	}
	return val
}

// MustInt64 is like Int64 but panics on error.
func MustInt64(field string) int64 {
	val, err := Int64(field)
	if err != nil {
		panic(fmt.Sprintf("resolving %q failed: %v", field, err))
	}
	return val
}

// MustFloat64 is like Float64 but panics on error.
func MustFloat64(field string) float64 {
	val, err := Float64(field)
	if err != nil {
		panic(fmt.Sprintf("resolving %q failed: %v", field, err))
	}
	return val
}

// MustBool is like Bool but panics on error.
func MustBool(field string) bool {
	val, err := Bool(field)
	if err != nil {
		panic(fmt.Sprintf("resolving %q failed: %v", field, err))
	}
	return val
}

// LookupString resolves field, reporting absence instead of failing when
// the field is missing.
func LookupString(field string) (string, bool, error) {
	return NewResolver().LookupString(field)
}

// LookupInt64 is the optional variant of Int64.
func LookupInt64(field string) (int64, bool, error) {
	return NewResolver().LookupInt64(field)
}

// LookupFloat64 is the optional variant of Float64.
func LookupFloat64(field string) (float64, bool, error) {
	return NewResolver().LookupFloat64(field)
}

// LookupBool is the optional variant of Bool.
func LookupBool(field string) (bool, bool, error) {
	return NewResolver().LookupBool(field)
}
