package memory

import (
	"context"

	"mobi-voucher-gateway/internal/core/domain"
)

// CatalogRepo implements ports.CatalogRepository over the static voucher
// catalog. The catalog is loaded once and never mutated.
type CatalogRepo struct {
	denominations []domain.Denomination
	byID          map[string]domain.Denomination
}

// NewCatalogRepo creates a catalog repo seeded with the standard
// denomination set.
func NewCatalogRepo() *CatalogRepo {
	return NewCatalogRepoWith(defaultDenominations())
}

// NewCatalogRepoWith creates a catalog repo over a custom denomination list
// (used by tests).
func NewCatalogRepoWith(denominations []domain.Denomination) *CatalogRepo {
	byID := make(map[string]domain.Denomination, len(denominations))
	for _, d := range denominations {
		byID[d.ID] = d
	}
	return &CatalogRepo{denominations: denominations, byID: byID}
}

// ListDenominations returns the catalog in display order.
func (r *CatalogRepo) ListDenominations(_ context.Context) ([]domain.Denomination, error) {
	out := make([]domain.Denomination, len(r.denominations))
	copy(out, r.denominations)
	return out, nil
}

// GetDenomination returns a denomination by id, nil if unknown.
func (r *CatalogRepo) GetDenomination(_ context.Context, id string) (*domain.Denomination, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func defaultDenominations() []domain.Denomination {
	return []domain.Denomination{
		{ID: "m100", MobiValue: 100, NGNPrice: 150, Tier: domain.TierStandard},
		{ID: "m200", MobiValue: 200, NGNPrice: 300, Tier: domain.TierStandard},
		{ID: "m500", MobiValue: 500, NGNPrice: 750, Tier: domain.TierStandard, IsPopular: true},
		{ID: "m1000", MobiValue: 1000, NGNPrice: 1500, Tier: domain.TierPremium, IsPopular: true},
		{ID: "m2000", MobiValue: 2000, NGNPrice: 3000, Tier: domain.TierPremium},
		{ID: "m5000", MobiValue: 5000, NGNPrice: 7500, Tier: domain.TierElite},
		{ID: "m10000", MobiValue: 10000, NGNPrice: 15000, Tier: domain.TierElite},
	}
}
