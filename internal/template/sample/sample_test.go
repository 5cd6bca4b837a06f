package sample

import "testing"

func TestNormalizeInfersDataType(t *testing.T) {
	raw := RawPayload{
		ContentDetails: map[string]RawSource{
			"payments": {Data: []any{map[string]any{"Amount": 10.0}}},
			"company":  {Data: map[string]any{"Name": "Acme"}},
			"declared": {Data: map[string]any{"Name": "Acme"}, DataType: DataTypeArray},
		},
	}

	p := Normalize(raw)

	if got := p.ContentDetails["payments"].DataType; got != DataTypeArray {
		t.Fatalf("expected payments inferred as array, got %s", got)
	}
	if got := p.ContentDetails["company"].DataType; got != DataTypeObject {
		t.Fatalf("expected company inferred as object, got %s", got)
	}
	// A declared dataType is authoritative even when the data disagrees.
	if got := p.ContentDetails["declared"].DataType; got != DataTypeArray {
		t.Fatalf("expected declared tag to win, got %s", got)
	}
}

func TestNormalizeInfersFieldsAndCounts(t *testing.T) {
	raw := RawPayload{
		Header: map[string]any{"Name": "Acme", "Amount": 100.0},
		Items: []map[string]any{
			{"rate": 5.0, "qty": 2.0},
			{"rate": 7.0, "qty": 1.0},
		},
		ContentDetails: map[string]RawSource{
			"payments": {Data: []any{
				map[string]any{"Amount": 10.0, "Mode": "cash"},
				map[string]any{"Amount": 20.0, "Mode": "card"},
			}},
		},
	}

	p := Normalize(raw)

	if got := p.Header.Fields; len(got) != 2 || got[0] != "Amount" || got[1] != "Name" {
		t.Fatalf("expected sorted header fields [Amount Name], got %v", got)
	}
	if !p.Header.HasField("Name") || p.Header.HasField("Missing") {
		t.Fatalf("header field lookup broken")
	}
	if p.Items.SampleCount != 2 || len(p.Items.Fields) != 2 {
		t.Fatalf("expected 2 item rows with 2 fields, got %+v", p.Items)
	}

	payments := p.ContentDetails["payments"]
	if payments.SampleCount != 2 {
		t.Fatalf("expected payments sampleCount 2, got %d", payments.SampleCount)
	}
	if !payments.HasField("Mode") {
		t.Fatalf("expected inferred field Mode, got %v", payments.Fields)
	}
	rows := payments.Rows()
	if len(rows) != 2 || rows[1]["Mode"] != "card" {
		t.Fatalf("unexpected rows %v", rows)
	}
}

func TestNormalizeToleratesEmptyPayload(t *testing.T) {
	p := Normalize(RawPayload{})
	if p.ContentDetails == nil {
		t.Fatalf("expected non-nil contentDetails map")
	}
	if p.Header.HasField("anything") {
		t.Fatalf("empty header should have no fields")
	}
}

func TestParseRaw(t *testing.T) {
	data := []byte(`{
		"header": {"Name": "Acme"},
		"items": [{"rate": 3}],
		"contentDetails": {"terms": {"data": {"Text": "Net 30"}, "dataType": "object"}}
	}`)
	p, err := ParseRaw(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Header.Data["Name"] != "Acme" {
		t.Fatalf("header not decoded: %v", p.Header)
	}
	src, ok := p.ContentDetail("terms")
	if !ok || src.Object()["Text"] != "Net 30" {
		t.Fatalf("terms source not decoded: %+v", src)
	}
}
