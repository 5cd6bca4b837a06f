package calc

import (
	"testing"

	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

func calcPayload() sample.Payload {
	return sample.Normalize(sample.RawPayload{
		Items: []map[string]any{
			{"rate": 5.0, "qty": 2.0},
			{"rate": 7.0, "qty": 1.0},
			{"rate": 3.0, "note": "no qty"},
		},
		ContentDetails: map[string]sample.RawSource{
			"charges": {Data: []any{
				map[string]any{"Fee": 3.0},
				map[string]any{"Fee": 9.0},
			}},
			"company": {Data: map[string]any{"Name": "Acme"}},
		},
	})
}

func TestCompleteness(t *testing.T) {
	incomplete := domain.Calculation{Type: domain.CalcSum, Source: ItemsSource}
	if Complete(incomplete) {
		t.Fatalf("sum without field must be incomplete")
	}

	incomplete.Field = "rate"
	if !Complete(incomplete) {
		t.Fatalf("sum with source and field must be complete")
	}

	custom := domain.Calculation{Type: domain.CalcCustom, Formula: "sum(items.rate) * header.exchangeRate"}
	if !Complete(custom) {
		t.Fatalf("custom with formula must be complete")
	}
	if Complete(domain.Calculation{Type: domain.CalcCustom}) {
		t.Fatalf("custom without formula must be incomplete")
	}
	if Complete(domain.Calculation{Type: domain.CalcNone, Source: ItemsSource, Field: "rate"}) {
		t.Fatalf("none is never complete")
	}
}

func TestNormalizeClearsIrrelevantFields(t *testing.T) {
	d := domain.Calculation{Type: domain.CalcSum, Source: ItemsSource, Field: "rate", Formula: "stale"}
	if got := Normalize(d); got.Formula != "" || got.Source != ItemsSource {
		t.Fatalf("aggregate normalize wrong: %+v", got)
	}

	d.Type = domain.CalcCustom
	d.Formula = "sum(items.rate)"
	if got := Normalize(d); got.Source != "" || got.Field != "" || got.Formula != "sum(items.rate)" {
		t.Fatalf("custom normalize must keep only the formula: %+v", got)
	}

	d.Type = domain.CalcNone
	if got := Normalize(d); got != (domain.Calculation{Type: domain.CalcNone}) {
		t.Fatalf("none normalize must clear everything: %+v", got)
	}
}

func TestSourcesDiscovery(t *testing.T) {
	options := Sources(calcPayload())
	if len(options) != 2 {
		t.Fatalf("expected items + charges, got %+v", options)
	}
	if options[0].Path != ItemsSource {
		t.Fatalf("expected items first, got %s", options[0].Path)
	}
	if options[1].Path != "contentDetails.charges" {
		t.Fatalf("expected array content detail, got %s", options[1].Path)
	}
	// Object-typed details never appear as calculation sources.
	for _, opt := range options {
		if opt.Path == "contentDetails.company" {
			t.Fatalf("object-typed source must not be selectable")
		}
	}
}

func TestEvaluateAggregates(t *testing.T) {
	p := calcPayload()

	cases := []struct {
		typ  domain.CalculationType
		want float64
	}{
		{domain.CalcSum, 15},
		{domain.CalcAvg, 5},
		{domain.CalcCount, 3},
		{domain.CalcMin, 3},
		{domain.CalcMax, 7},
	}
	for _, tc := range cases {
		got, ok := Evaluate(domain.Calculation{Type: tc.typ, Source: ItemsSource, Field: "rate"}, p)
		if !ok || got != tc.want {
			t.Fatalf("%s(items.rate): expected %v, got %v (ok=%v)", tc.typ, tc.want, got, ok)
		}
	}

	// qty is absent from one row; count only counts rows carrying the field.
	got, ok := Evaluate(domain.Calculation{Type: domain.CalcCount, Source: ItemsSource, Field: "qty"}, p)
	if !ok || got != 2 {
		t.Fatalf("count(items.qty): expected 2, got %v", got)
	}

	got, ok = Evaluate(domain.Calculation{Type: domain.CalcSum, Source: "contentDetails.charges", Field: "Fee"}, p)
	if !ok || got != 12 {
		t.Fatalf("sum(charges.Fee): expected 12, got %v", got)
	}
}

func TestEvaluateSkipsIncompleteAndCustom(t *testing.T) {
	p := calcPayload()

	if _, ok := Evaluate(domain.Calculation{Type: domain.CalcSum, Source: ItemsSource}, p); ok {
		t.Fatalf("incomplete descriptor must not evaluate")
	}
	if _, ok := Evaluate(domain.Calculation{Type: domain.CalcCustom, Formula: "sum(items.rate)"}, p); ok {
		t.Fatalf("custom descriptor is carried, never evaluated here")
	}
	if _, ok := Evaluate(domain.Calculation{Type: domain.CalcSum, Source: "contentDetails.company", Field: "Name"}, p); ok {
		t.Fatalf("object-typed source must not evaluate")
	}
}
