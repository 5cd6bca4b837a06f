// Package sample normalizes the heterogeneous sample payloads returned by the
// query-execution service into the single shape the binding resolver, the
// calculation engine and the preview renderer consume.
package sample

import (
	"encoding/json"
	"sort"
)

// DataType declares the shape of a content-detail source.
type DataType string

const (
	DataTypeObject DataType = "object"
	DataTypeArray  DataType = "array"
)

// Header is the single bill-header object plus its declared field names.
type Header struct {
	Fields []string       `json:"fields"`
	Data   map[string]any `json:"data"`
}

// HasField reports whether the header declares the named field.
func (h Header) HasField(name string) bool {
	for _, f := range h.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Items is the legacy item-row array backing the items table.
type Items struct {
	Fields      []string         `json:"fields"`
	Rows        []map[string]any `json:"rows"`
	SampleCount int              `json:"sampleCount"`
}

// Source is one named content-detail entry.
type Source struct {
	Data        any      `json:"data"`
	Fields      []string `json:"fields"`
	SampleCount int      `json:"sampleCount"`
	DataType    DataType `json:"dataType"`
}

// HasField reports whether the source declares the named field.
func (s Source) HasField(name string) bool {
	for _, f := range s.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Rows returns the source data as row objects when it is array-typed.
func (s Source) Rows() []map[string]any {
	arr, ok := s.Data.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(arr))
	for _, entry := range arr {
		if row, ok := entry.(map[string]any); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Object returns the source data as a single object when it is object-typed.
func (s Source) Object() map[string]any {
	obj, _ := s.Data.(map[string]any)
	return obj
}

// Payload is the normalized lookup surface over one sample-data response.
type Payload struct {
	Header         Header            `json:"header"`
	Items          Items             `json:"items"`
	ContentDetails map[string]Source `json:"contentDetails"`
}

// ContentDetail looks up a named content-detail source.
func (p Payload) ContentDetail(name string) (Source, bool) {
	src, ok := p.ContentDetails[name]
	return src, ok
}

// ContentDetailNames returns the source names in stable order.
func (p Payload) ContentDetailNames() []string {
	names := make([]string, 0, len(p.ContentDetails))
	for name := range p.ContentDetails {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RawPayload mirrors the wire shape delivered by the query-execution
// collaborator before normalization.
type RawPayload struct {
	Header         map[string]any       `json:"header"`
	Items          []map[string]any     `json:"items"`
	ContentDetails map[string]RawSource `json:"contentDetails"`
}

// RawSource is one content-detail entry as delivered. DataType may be absent,
// in which case it is inferred from the data's shape.
type RawSource struct {
	Data        any      `json:"data"`
	Fields      []string `json:"fields,omitempty"`
	SampleCount int      `json:"sampleCount,omitempty"`
	DataType    DataType `json:"dataType,omitempty"`
}

// Normalize converts a raw payload into the uniform Payload shape. Missing
// parts yield empty (never nil-map) sections, declared field lists win over
// inferred ones, and an absent dataType is inferred from whether the data is
// an array.
func Normalize(raw RawPayload) Payload {
	p := Payload{
		Header: Header{
			Fields: fieldNames(raw.Header),
			Data:   raw.Header,
		},
		Items: Items{
			Rows:        raw.Items,
			SampleCount: len(raw.Items),
		},
		ContentDetails: make(map[string]Source, len(raw.ContentDetails)),
	}
	if len(raw.Items) > 0 {
		p.Items.Fields = fieldNames(raw.Items[0])
	}

	for name, src := range raw.ContentDetails {
		normalized := Source{
			Data:        src.Data,
			Fields:      src.Fields,
			SampleCount: src.SampleCount,
			DataType:    src.DataType,
		}
		if normalized.DataType == "" {
			normalized.DataType = inferDataType(src.Data)
		}
		if len(normalized.Fields) == 0 {
			normalized.Fields = inferFields(src.Data)
		}
		if normalized.SampleCount == 0 {
			if arr, ok := src.Data.([]any); ok {
				normalized.SampleCount = len(arr)
			}
		}
		p.ContentDetails[name] = normalized
	}
	return p
}

// ParseRaw decodes a raw JSON payload and normalizes it.
func ParseRaw(data []byte) (Payload, error) {
	var raw RawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}, err
	}
	return Normalize(raw), nil
}

func inferDataType(data any) DataType {
	if _, ok := data.([]any); ok {
		return DataTypeArray
	}
	return DataTypeObject
}

func inferFields(data any) []string {
	switch typed := data.(type) {
	case map[string]any:
		return fieldNames(typed)
	case []any:
		if len(typed) == 0 {
			return nil
		}
		if row, ok := typed[0].(map[string]any); ok {
			return fieldNames(row)
		}
	}
	return nil
}

func fieldNames(obj map[string]any) []string {
	if len(obj) == 0 {
		return nil
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
