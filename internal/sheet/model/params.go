package model

import (
	"errors"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotAnObject is returned for a request body that is not a JSON object.
var ErrNotAnObject = errors.New("request body must be a JSON object")

// Params is a decoded action request. Field readers are lenient the way a
// spreadsheet is: numbers may arrive as strings and missing fields read as
// zero values.
type Params struct {
	raw jsoniter.Any
}

// ParseParams decodes an action request body.
func ParseParams(body []byte) (Params, error) {
	if !json.Valid(body) {
		return Params{}, ErrNotAnObject
	}
	v := json.Get(body)
	if v.ValueType() != jsoniter.ObjectValue {
		return Params{}, ErrNotAnObject
	}
	return Params{raw: v}, nil
}

// Action returns the action discriminator.
func (p Params) Action() string {
	return p.Str("action")
}

// IdempotencyKey returns the key a write carries, "" for reads.
func (p Params) IdempotencyKey() string {
	return p.Str("idempotencyKey")
}

// Has reports whether key is present with a non-null value.
func (p Params) Has(key string) bool {
	if p.raw == nil {
		return false
	}
	t := p.raw.Get(key).ValueType()
	return t != jsoniter.InvalidValue && t != jsoniter.NilValue
}

// Str returns a scalar field as trimmed text.
func (p Params) Str(key string) string {
	if p.raw == nil {
		return ""
	}
	v := p.raw.Get(key)
	switch v.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue, jsoniter.BoolValue:
		return strings.TrimSpace(v.ToString())
	default:
		return ""
	}
}

// Int returns a numeric field, 0 when empty or unparseable.
func (p Params) Int(key string) int {
	if n := p.OptInt(key); n != nil {
		return *n
	}
	return 0
}

// OptInt returns a numeric field, nil when empty or unparseable.
func (p Params) OptInt(key string) *int {
	s := p.Str(key)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	return &n
}

// Strings returns a list field with blank entries dropped, nil when the
// field is not a list.
func (p Params) Strings(key string) []string {
	if p.raw == nil {
		return nil
	}
	v := p.raw.Get(key)
	if v.ValueType() != jsoniter.ArrayValue {
		return nil
	}
	out := make([]string, 0, v.Size())
	for i := 0; i < v.Size(); i++ {
		if s := strings.TrimSpace(v.Get(i).ToString()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
