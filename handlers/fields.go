package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// looseInt64 and looseString accept the scalar spellings SQLite would coerce
// into an INTEGER or TEXT column, so "1" is an id and 42 is a label.

type looseInt64 int64

func (v *looseInt64) UnmarshalJSON(data []byte) error {
	raw, err := decodeScalar(data)
	if err != nil {
		return err
	}

	var text string
	switch x := raw.(type) {
	case json.Number:
		text = x.String()
	case string:
		text = strings.TrimSpace(x)
	default:
		return typeError(raw, int64(0))
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*v = looseInt64(n)
		return nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		*v = looseInt64(f)
		return nil
	}
	return typeError(raw, int64(0))
}

func (v *looseInt64) int64Ptr() *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

type looseString string

func (v *looseString) UnmarshalJSON(data []byte) error {
	raw, err := decodeScalar(data)
	if err != nil {
		return err
	}

	switch x := raw.(type) {
	case string:
		*v = looseString(x)
	case json.Number:
		*v = looseString(x.String())
	case bool:
		if x {
			*v = "1"
		} else {
			*v = "0"
		}
	default:
		return typeError(raw, "")
	}
	return nil
}

func (v *looseString) stringPtr() *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func decodeScalar(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// typeError is filled in with the field name by encoding/json.
func typeError(raw interface{}, target interface{}) error {
	kind := "value"
	switch raw.(type) {
	case string:
		kind = "string"
	case json.Number:
		kind = "number"
	case bool:
		kind = "bool"
	case []interface{}:
		kind = "array"
	case map[string]interface{}:
		kind = "object"
	}
	return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(target)}
}
