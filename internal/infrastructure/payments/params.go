package payments

import (
	"net/url"
	"strings"
)

// Value is either a Scalar or a Nested group of parameters.
type Value interface {
	isValue()
}

// Scalar is a single string value.
type Scalar string

// Nested is an ordered group flattened as key[sub]=value.
type Nested []Param

func (Scalar) isValue() {}
func (Nested) isValue() {}

// Param is one ordered key/value pair of the outbound request.
type Param struct {
	Key   string
	Value Value
}

// Params keeps insertion order so the query string is stable.
type Params []Param

func (p *Params) Set(key string, v Value) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = v
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: v})
}

func (p *Params) SetString(key, v string) { p.Set(key, Scalar(v)) }

func (p Params) Get(key string) (Value, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

// Encode renders the params as a query string. Top-level scalars are always
// written, even when empty. Blank members of nested groups are dropped.
// Every key segment is escaped; only the brackets joining segments stay literal.
func (p Params) Encode() string {
	parts := make([]string, 0, len(p))
	for _, kv := range p {
		if s := encodeValue(url.QueryEscape(kv.Key), kv.Value); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "&")
}

// encodeValue expects key already escaped.
func encodeValue(key string, v Value) string {
	switch val := v.(type) {
	case Scalar:
		return key + "=" + url.QueryEscape(string(val))
	case Nested:
		parts := make([]string, 0, len(val))
		for _, sub := range val {
			if isBlank(sub.Value) {
				continue
			}
			if s := encodeValue(key+"["+url.QueryEscape(sub.Key)+"]", sub.Value); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "&")
	}
	return key + "="
}

func isBlank(v Value) bool {
	switch val := v.(type) {
	case nil:
		return true
	case Scalar:
		return strings.TrimSpace(string(val)) == ""
	case Nested:
		for _, sub := range val {
			if !isBlank(sub.Value) {
				return false
			}
		}
		return true
	}
	return false
}
