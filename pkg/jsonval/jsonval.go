// Package jsonval provides typed field extraction over the generic values
// produced by decoding JSON into any (map[string]any, []any, string,
// float64, bool, nil). Decode functions use it to keep field access short;
// every accessor returns a descriptive error instead of panicking.
package jsonval

import (
	"fmt"
	"math"
)

// Object asserts that doc is a JSON object.
func Object(doc any) (map[string]any, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected json object, got %T", doc)
	}
	return obj, nil
}

// Array asserts that doc is a JSON array.
func Array(doc any) ([]any, error) {
	arr, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected json array, got %T", doc)
	}
	return arr, nil
}

// At returns element i of a JSON array.
func At(doc any, i int) (any, error) {
	arr, err := Array(doc)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(arr) {
		return nil, fmt.Errorf("index %d out of range (len %d)", i, len(arr))
	}
	return arr[i], nil
}

// Field returns the value of key in a JSON object, erroring when the key is
// absent.
func Field(doc any, key string) (any, error) {
	obj, err := Object(doc)
	if err != nil {
		return nil, err
	}
	v, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("field %q not found", key)
	}
	return v, nil
}

// Has reports whether doc is a JSON object containing key.
func Has(doc any, key string) bool {
	obj, ok := doc.(map[string]any)
	if !ok {
		return false
	}
	_, ok = obj[key]
	return ok
}

// String extracts a string field.
func String(doc any, key string) (string, error) {
	v, err := Field(doc, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}
	return s, nil
}

// Float extracts a numeric field.
func Float(doc any, key string) (float64, error) {
	v, err := Field(doc, key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("field %q: expected number, got %T", key, v)
	}
	return f, nil
}

// Int extracts an integral numeric field, rejecting fractional values.
func Int(doc any, key string) (int64, error) {
	f, err := Float(doc, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("field %q: expected integer, got %v", key, f)
	}
	return int64(f), nil
}

// Bool extracts a boolean field.
func Bool(doc any, key string) (bool, error) {
	v, err := Field(doc, key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("field %q: expected bool, got %T", key, v)
	}
	return b, nil
}
