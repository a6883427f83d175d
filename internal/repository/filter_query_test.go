package repository

import (
	"reflect"
	"strings"
	"testing"

	"bigmanpc/api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildFilterQueryEmpty(t *testing.T) {
	query, args := buildFilterQuery(models.ProductFilter{})

	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	if strings.Contains(query, "AND") {
		t.Errorf("empty filter produced conditions: %s", query)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Errorf("missing ordering: %s", query)
	}
}

func TestBuildFilterQueryAllCriteria(t *testing.T) {
	filter := models.ProductFilter{
		Processor: "intel-i5",
		RAM:       "8gb",
		Graphics:  "integrated",
		Storage:   "ssd-512",
		Purpose:   "office",
		MinPrice:  floatPtr(100),
		MaxPrice:  floatPtr(900),
	}

	query, args := buildFilterQuery(filter)

	want := []any{"intel-i5", "8gb", "integrated", "ssd-512", "office", 100.0, 900.0}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("args = %v, want %v", args, want)
	}
	for _, clause := range []string{
		"processor = $1", "ram = $2", "graphics = $3", "storage = $4",
		"purpose = $5", "price >= $6", "price <= $7",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("query missing %q: %s", clause, query)
		}
	}
}

func TestBuildFilterQueryPriceBoundsOnly(t *testing.T) {
	query, args := buildFilterQuery(models.ProductFilter{MinPrice: floatPtr(250)})

	if len(args) != 1 || args[0] != 250.0 {
		t.Errorf("args = %v, want [250]", args)
	}
	if !strings.Contains(query, "price >= $1") {
		t.Errorf("missing min bound: %s", query)
	}
	if strings.Contains(query, "price <=") {
		t.Errorf("unexpected max bound: %s", query)
	}
}

func TestBuildFilterQuerySkipsOmitted(t *testing.T) {
	query, args := buildFilterQuery(models.ProductFilter{Purpose: "gaming"})

	if len(args) != 1 || args[0] != "gaming" {
		t.Errorf("args = %v, want [gaming]", args)
	}
	for _, absent := range []string{"processor =", "ram =", "graphics =", "storage ="} {
		if strings.Contains(query, absent) {
			t.Errorf("query has omitted criterion %q: %s", absent, query)
		}
	}
}
