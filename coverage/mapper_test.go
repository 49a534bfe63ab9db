// SPDX-License-Identifier: GPL-3.0-only

package coverage

import (
	"context"
	"errors"
	"testing"
)

type fakeMappingStore struct {
	mappings []TypeMapping
	err      error
}

func (f *fakeMappingStore) ActiveMappings(ctx context.Context, technicalTypes []string) ([]TypeMapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []TypeMapping
	for _, m := range f.mappings {
		for _, tt := range technicalTypes {
			if m.TechnicalType == tt {
				matched = append(matched, m)
			}
		}
	}
	return matched, nil
}

func TestMapToCategories(t *testing.T) {
	store := &fakeMappingStore{mappings: []TypeMapping{
		{TechnicalType: "fibre", ProductCategory: "fibre", Priority: 10, Active: true},
		{TechnicalType: "fixed_lte", ProductCategory: "fixed-lte", Priority: 20, Active: true},
		{TechnicalType: "5g", ProductCategory: "fixed-5g", Priority: 15, Active: true},
	}}

	outcome, err := MapToCategories(context.Background(), store, []string{"fibre", "fixed_lte"})
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Mapped {
		t.Error("Expected a mapped outcome")
	}
	if len(outcome.Categories) != 2 {
		t.Fatalf("Expected two categories, got %v", outcome.Categories)
	}
}

func TestMapToCategoriesLookupMissPassesThrough(t *testing.T) {
	// Inputs with no mapping rows are treated as already being product
	// categories, not rejected.
	store := &fakeMappingStore{}
	outcome, err := MapToCategories(context.Background(), store, []string{"fibre", "wireless"})
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Mapped {
		t.Error("Expected the pass-through fallback, not a mapped outcome")
	}
	if len(outcome.Categories) != 2 || outcome.Categories[0] != "fibre" || outcome.Categories[1] != "wireless" {
		t.Errorf("Expected input passed through unchanged, got %v", outcome.Categories)
	}
}

func TestMapToCategoriesEmptyInput(t *testing.T) {
	outcome, err := MapToCategories(context.Background(), &fakeMappingStore{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcome.Categories) != 0 {
		t.Errorf("Expected no categories for empty input, got %v", outcome.Categories)
	}
}

func TestMapToCategoriesDeduplicates(t *testing.T) {
	store := &fakeMappingStore{mappings: []TypeMapping{
		{TechnicalType: "fibre", ProductCategory: "fibre", Priority: 10, Active: true},
		{TechnicalType: "5g", ProductCategory: "fibre", Priority: 20, Active: true},
	}}
	outcome, err := MapToCategories(context.Background(), store, []string{"fibre", "5g"})
	if err != nil {
		t.Fatal(err)
	}
	if len(outcome.Categories) != 1 {
		t.Errorf("Expected one distinct category, got %v", outcome.Categories)
	}
}

func TestMapToCategoriesStoreError(t *testing.T) {
	store := &fakeMappingStore{err: errors.New("db down")}
	if _, err := MapToCategories(context.Background(), store, []string{"fibre"}); err == nil {
		t.Error("Expected the store error to propagate")
	}
}

func TestPackageableServices(t *testing.T) {
	services := []ServiceAvailability{
		{ServiceType: ServiceFibre, Available: true},
		{ServiceType: ServiceLicensedWireless, Available: true},
		{ServiceType: ServiceLTE, Available: false},
	}
	packageable, hasLicensed := PackageableServices(services)
	if !hasLicensed {
		t.Error("Expected licensed wireless to be flagged")
	}
	if len(packageable) != 1 || packageable[0] != "fibre" {
		t.Errorf("Expected only fibre to be packageable, got %v", packageable)
	}
}
