package cms

import (
	"net/url"
	"strings"
)

// Param is a single query parameter. Keys are sent verbatim so the bracketed
// filter syntax of the content API stays readable in logs.
type Param struct {
	Key   string
	Value string
}

// Params keeps query parameters in insertion order.
type Params []Param

func Sort(value string) Param {
	return Param{Key: "sort", Value: value}
}

func Populate(field string) Param {
	return Param{Key: "populate", Value: field}
}

// FilterEq matches records whose field equals value.
func FilterEq(field, value string) Param {
	return Param{Key: "filters[" + field + "][$eq]", Value: value}
}

// Encode renders the parameters as a query string without the leading "?".
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p))
	for _, param := range p {
		parts = append(parts, param.Key+"="+escapeValue(param.Value))
	}
	return strings.Join(parts, "&")
}

// escapeValue escapes a value while leaving the characters the content API
// uses in sort expressions untouched.
func escapeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "%3A", ":")
}
