package httpapi

import (
	"errors"
	"fmt"

	insaneJSON "github.com/ozontech/insane-json"
)

var errBadRequest = errors.New("bad request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

func stringField(req *insaneJSON.Root, name string) (string, error) {
	node := req.Dig(name)
	if node == nil {
		return "", badRequest("field %q is required", name)
	}
	if !node.IsString() {
		return "", badRequest("field %q must be a string", name)
	}
	return node.AsString(), nil
}

// stringsField accepts a missing field as an empty list.
func stringsField(req *insaneJSON.Root, name string) ([]string, error) {
	node := req.Dig(name)
	if node == nil {
		return nil, nil
	}
	if !node.IsArray() {
		return nil, badRequest("field %q must be an array of strings", name)
	}
	items := node.AsArray()
	res := make([]string, 0, len(items))
	for i, item := range items {
		if !item.IsString() {
			return nil, badRequest("%s[%d] must be a string", name, i)
		}
		res = append(res, item.AsString())
	}
	return res, nil
}

// bindingsField reads an object of literals, e.g. {"A":"1","B":"false"}.
func bindingsField(req *insaneJSON.Root, name string) (map[string]string, error) {
	node := req.Dig(name)
	if node == nil {
		return map[string]string{}, nil
	}
	if !node.IsObject() {
		return nil, badRequest("field %q must be an object", name)
	}
	fields := node.AsFields()
	res := make(map[string]string, len(fields))
	for _, field := range fields {
		value := field.AsFieldValue()
		if !value.IsString() {
			return nil, badRequest("%s.%s must be a string", name, field.AsString())
		}
		res[field.AsString()] = value.AsString()
	}
	return res, nil
}
