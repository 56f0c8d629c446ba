package cmd

import (
	"encoding/json"
	"os"

	"github.com/vidinfra/pricing-engine/internal/domain/plan"
	"github.com/vidinfra/pricing-engine/internal/domain/region"
	ierr "github.com/vidinfra/pricing-engine/internal/errors"
)

// planCatalogFile is the on disk shape of a plan catalog.
type planCatalogFile struct {
	Plans []plan.Plan `json:"plans"`
}

// regionCatalogFile is the on disk shape of a region catalog.
type regionCatalogFile struct {
	Regions []region.Region `json:"regions"`
}

// loadPlanCatalog reads a plan catalog file and validates every plan in it.
func loadPlanCatalog(path string) ([]plan.Plan, error) {
	if path == "" {
		return nil, ierr.NewError("plan catalog is required").
			WithHint("Pass a plan catalog file with --catalog").
			Mark(ierr.ErrValidation)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to read plan catalog %s", path).
			Mark(ierr.ErrSystem)
	}

	var catalog planCatalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Plan catalog %s is not valid JSON", path).
			Mark(ierr.ErrValidation)
	}

	for _, p := range catalog.Plans {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return catalog.Plans, nil
}

// findPlan resolves a plan slug against the catalog.
func findPlan(plans []plan.Plan, slug string) (plan.Plan, error) {
	for _, p := range plans {
		if p.Slug == slug {
			return p, nil
		}
	}
	return plan.Plan{}, ierr.NewError("plan not found").
		WithHintf("No plan with slug %s in the catalog", slug).
		Mark(ierr.ErrNotFound)
}

// loadRegionCatalog reads a region catalog file, falling back to the
// built-in table when no path is given.
func loadRegionCatalog(path string) (*region.Catalog, error) {
	if path == "" {
		return region.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to read region catalog %s", path).
			Mark(ierr.ErrSystem)
	}

	var catalog regionCatalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Region catalog %s is not valid JSON", path).
			Mark(ierr.ErrValidation)
	}

	return region.NewCatalog(catalog.Regions)
}
