package entities

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// The content API answers in two shapes depending on its major version:
// flat records ({"id":1,"title":"…"}) or records wrapping their fields in
// "attributes" ({"id":1,"attributes":{"title":"…"}}). Media relations are
// either the file object itself or {"data":{"attributes":{…}}}. Every record
// type below accepts both.

func (s *SiteSettings) UnmarshalJSON(data []byte) error {
	type plain SiteSettings
	return decodeRecord(data, (*plain)(s))
}

func (s *Section) UnmarshalJSON(data []byte) error {
	type plain Section
	return decodeRecord(data, (*plain)(s))
}

func (p *PortfolioItem) UnmarshalJSON(data []byte) error {
	type plain PortfolioItem
	return decodeRecord(data, (*plain)(p))
}

func (c *PortfolioCategory) UnmarshalJSON(data []byte) error {
	type plain PortfolioCategory
	return decodeRecord(data, (*plain)(c))
}

func (p *BlogPost) UnmarshalJSON(data []byte) error {
	type plain BlogPost
	return decodeRecord(data, (*plain)(p))
}

func (l *SocialLink) UnmarshalJSON(data []byte) error {
	type plain SocialLink
	return decodeRecord(data, (*plain)(l))
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var relation struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &relation); err == nil && len(relation.Data) > 0 {
		data = relation.Data
	}
	if isNull(data) {
		*m = Media{}
		return nil
	}

	type plain Media
	return decodeRecord(data, (*plain)(m))
}

func decodeRecord(data []byte, v any) error {
	flat, err := flatten(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(flat, v)
}

// flatten lifts the fields of a nested "attributes" object to the top level.
// Top-level keys win over attribute keys with the same name.
func flatten(data []byte) ([]byte, error) {
	if isNull(data) {
		return data, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	attrs, ok := fields["attributes"]
	if !ok || isNull(attrs) {
		return data, nil
	}

	var inner map[string]json.RawMessage
	if err := json.Unmarshal(attrs, &inner); err != nil {
		return nil, err
	}
	delete(fields, "attributes")
	for k, v := range inner {
		if _, exists := fields[k]; !exists {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

func isNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Timestamp accepts RFC 3339 date-times and plain YYYY-MM-DD dates. Values
// that parse as neither decode to the zero time instead of failing the
// enclosing record.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses s with the layouts the content API emits.
func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, true
		}
	}
	return Timestamp{}, false
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = Timestamp{}
		return nil
	}
	parsed, _ := ParseTimestamp(s)
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Valid reports whether t holds a parsed time.
func (t *Timestamp) Valid() bool {
	return t != nil && !t.IsZero()
}
