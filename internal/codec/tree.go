package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// toTree converts a typed value into the plain map/array/scalar tree form by
// round-tripping through JSON.
func toTree(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// fromTree decodes a document subtree into a typed value, attaching the
// subtree's path to any type mismatch.
func fromTree(path string, tree any, dst any) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			p := path
			if typeErr.Field != "" {
				p = path + "." + typeErr.Field
			}
			return &TypeMismatchError{Path: p, Want: typeErr.Type.String(), Got: typeErr.Value}
		}
		return fmt.Errorf("field %q: %w", path, err)
	}
	return nil
}

// joinPath appends a key to a dotted path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// requireMap fetches a required object field.
func requireMap(doc map[string]any, path, key string) (map[string]any, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, &MissingFieldError{Path: joinPath(path, key)}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Path: joinPath(path, key), Want: "object", Got: fmt.Sprintf("%T", raw)}
	}
	return m, nil
}

// optionalMap fetches an object field that may be absent or null.
func optionalMap(doc map[string]any, path, key string) (map[string]any, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &TypeMismatchError{Path: joinPath(path, key), Want: "object", Got: fmt.Sprintf("%T", raw)}
	}
	return m, nil
}

// requireString fetches a required string field.
func requireString(doc map[string]any, path, key string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", &MissingFieldError{Path: joinPath(path, key)}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &TypeMismatchError{Path: joinPath(path, key), Want: "string", Got: fmt.Sprintf("%T", raw)}
	}
	return s, nil
}

// optionalString fetches a string field that may be absent or null.
func optionalString(doc map[string]any, path, key string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &TypeMismatchError{Path: joinPath(path, key), Want: "string", Got: fmt.Sprintf("%T", raw)}
	}
	return s, nil
}

// optionalBool fetches a boolean field that may be absent or null.
func optionalBool(doc map[string]any, path, key string) (bool, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, &TypeMismatchError{Path: joinPath(path, key), Want: "boolean", Got: fmt.Sprintf("%T", raw)}
	}
	return b, nil
}
