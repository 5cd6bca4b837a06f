// Package calc defines the aggregation contract for table columns and
// final-row cells: which calculation types exist, when a descriptor is ready
// for evaluation, and which data sources a calculation may draw from.
//
// The engine carries custom formulas as opaque strings; evaluating them is
// the print engine's job.
package calc

import (
	"github.com/smallbiznis/billcanvas/internal/template/domain"
	"github.com/smallbiznis/billcanvas/internal/template/sample"
)

// ItemsSource is the path naming the legacy item-row source.
const ItemsSource = "items"

const contentDetailPrefix = "contentDetails."

// Complete reports whether the descriptor carries everything its type needs
// for evaluation. Incomplete descriptors may exist mid-edit; consumers must
// skip them.
func Complete(c domain.Calculation) bool {
	switch c.Type {
	case domain.CalcNone, "":
		return false
	case domain.CalcCustom:
		return c.Formula != ""
	default:
		return c.Source != "" && c.Field != ""
	}
}

// Normalize clears the fields that are not meaningful for the descriptor's
// type: none keeps nothing, custom keeps only the formula, aggregate types
// keep source and field.
func Normalize(c domain.Calculation) domain.Calculation {
	switch c.Type {
	case domain.CalcNone, "":
		return domain.Calculation{Type: domain.CalcNone}
	case domain.CalcCustom:
		return domain.Calculation{Type: domain.CalcCustom, Formula: c.Formula}
	default:
		return domain.Calculation{Type: c.Type, Source: c.Source, Field: c.Field}
	}
}

// SourceOption is one selectable data source with its field list.
type SourceOption struct {
	Path   string   `json:"path"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
}

// Sources enumerates the data sources a calculation may aggregate over: the
// items array (when it has fields) and every array-typed content detail.
func Sources(p sample.Payload) []SourceOption {
	var options []SourceOption
	if len(p.Items.Fields) > 0 {
		options = append(options, SourceOption{
			Path:   ItemsSource,
			Label:  "Items",
			Fields: p.Items.Fields,
		})
	}
	for _, name := range p.ContentDetailNames() {
		src := p.ContentDetails[name]
		if src.DataType != sample.DataTypeArray {
			continue
		}
		options = append(options, SourceOption{
			Path:   contentDetailPrefix + name,
			Label:  name,
			Fields: src.Fields,
		})
	}
	return options
}

// SourceRows resolves a calculation source path to its sample rows. The
// second return is false when the path names no known array source.
func SourceRows(path string, p sample.Payload) ([]map[string]any, bool) {
	if path == ItemsSource {
		return p.Items.Rows, true
	}
	if len(path) > len(contentDetailPrefix) && path[:len(contentDetailPrefix)] == contentDetailPrefix {
		src, ok := p.ContentDetail(path[len(contentDetailPrefix):])
		if !ok || src.DataType != sample.DataTypeArray {
			return nil, false
		}
		return src.Rows(), true
	}
	return nil, false
}

// Evaluate computes a complete aggregate descriptor over sample data. The
// second return is false for incomplete or custom descriptors and for
// unresolvable sources; callers render nothing in that case.
func Evaluate(c domain.Calculation, p sample.Payload) (float64, bool) {
	if !Complete(c) || c.Type == domain.CalcCustom {
		return 0, false
	}
	rows, ok := SourceRows(c.Source, p)
	if !ok {
		return 0, false
	}

	var (
		sum   float64
		count int
		min   float64
		max   float64
	)
	for _, row := range rows {
		value, ok := numeric(row[c.Field])
		if !ok {
			continue
		}
		if count == 0 {
			min, max = value, value
		} else {
			if value < min {
				min = value
			}
			if value > max {
				max = value
			}
		}
		sum += value
		count++
	}

	switch c.Type {
	case domain.CalcCount:
		return float64(count), true
	case domain.CalcSum:
		return sum, true
	case domain.CalcAvg:
		if count == 0 {
			return 0, false
		}
		return sum / float64(count), true
	case domain.CalcMin:
		if count == 0 {
			return 0, false
		}
		return min, true
	case domain.CalcMax:
		if count == 0 {
			return 0, false
		}
		return max, true
	default:
		return 0, false
	}
}

func numeric(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	default:
		return 0, false
	}
}
