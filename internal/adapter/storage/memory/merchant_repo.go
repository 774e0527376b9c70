package memory

import (
	"context"
	"fmt"

	"mobi-voucher-gateway/internal/core/domain"
)

// MerchantRepo implements ports.MerchantDirectory over the static
// country -> sub-merchant directory.
type MerchantRepo struct {
	countries []domain.Country
}

// NewMerchantRepo creates a directory seeded with the default markets.
func NewMerchantRepo() *MerchantRepo {
	return NewMerchantRepoWith(defaultCountries())
}

// NewMerchantRepoWith creates a directory over a custom country list.
// Exactly one country must be local.
func NewMerchantRepoWith(countries []domain.Country) *MerchantRepo {
	return &MerchantRepo{countries: countries}
}

// ListCountries returns every country in display order.
func (r *MerchantRepo) ListCountries(_ context.Context) ([]domain.Country, error) {
	out := make([]domain.Country, len(r.countries))
	copy(out, r.countries)
	return out, nil
}

// GetCountry returns a country by id, nil if unknown.
func (r *MerchantRepo) GetCountry(_ context.Context, id string) (*domain.Country, error) {
	for i := range r.countries {
		if r.countries[i].ID == id {
			c := r.countries[i]
			return &c, nil
		}
	}
	return nil, nil
}

// ListMerchants returns a country's sub-merchants in directory order.
func (r *MerchantRepo) ListMerchants(ctx context.Context, countryID string) ([]domain.SubMerchant, error) {
	country, err := r.GetCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, fmt.Errorf("unknown country %q", countryID)
	}
	out := make([]domain.SubMerchant, len(country.Merchants))
	copy(out, country.Merchants)
	return out, nil
}

// GetMerchant returns a sub-merchant by id across all countries, nil if
// unknown.
func (r *MerchantRepo) GetMerchant(_ context.Context, merchantID string) (*domain.SubMerchant, error) {
	for i := range r.countries {
		for j := range r.countries[i].Merchants {
			if r.countries[i].Merchants[j].ID == merchantID {
				m := r.countries[i].Merchants[j]
				return &m, nil
			}
		}
	}
	return nil, nil
}

// FirstActiveLocalMerchant returns the local country and its first active
// sub-merchant. Used when the wizard is entered with a merchant
// pre-selection.
func (r *MerchantRepo) FirstActiveLocalMerchant(_ context.Context) (*domain.Country, *domain.SubMerchant, error) {
	for i := range r.countries {
		if !r.countries[i].IsLocal {
			continue
		}
		for j := range r.countries[i].Merchants {
			if r.countries[i].Merchants[j].IsActive {
				c := r.countries[i]
				m := r.countries[i].Merchants[j]
				return &c, &m, nil
			}
		}
		return nil, nil, fmt.Errorf("local country %q has no active merchant", r.countries[i].ID)
	}
	return nil, nil, fmt.Errorf("no local country in directory")
}

func defaultCountries() []domain.Country {
	return []domain.Country{
		{
			ID: "ng", Name: "Nigeria", CurrencyCode: "NGN", CurrencySymbol: "₦", Flag: "🇳🇬", IsLocal: true,
			Merchants: []domain.SubMerchant{
				{ID: "sm-lagos-hub", Name: "Lagos Voucher Hub", DiscountPercent: 20, Rating: 4.8, IsActive: true, IsVerified: true, IsSubMerchant: true, StateID: "LA", LGAID: "ikeja", City: "Ikeja"},
				{ID: "sm-abuja-mart", Name: "Abuja Mobi Mart", DiscountPercent: 15, Rating: 4.5, IsActive: true, IsVerified: true, IsSubMerchant: true, StateID: "FC", LGAID: "amac", City: "Abuja"},
				{ID: "sm-ph-depot", Name: "PH Voucher Depot", DiscountPercent: 10, Rating: 4.1, IsActive: false, IsVerified: false, IsSubMerchant: true, StateID: "RI", LGAID: "phalga", City: "Port Harcourt"},
			},
		},
		{
			ID: "gh", Name: "Ghana", CurrencyCode: "GHS", CurrencySymbol: "₵", Flag: "🇬🇭",
			Merchants: []domain.SubMerchant{
				{ID: "sm-accra-point", Name: "Accra Mobi Point", DiscountPercent: 12, Rating: 4.3, IsActive: true, IsVerified: true, IsSubMerchant: true, City: "Accra"},
			},
		},
		{
			ID: "ke", Name: "Kenya", CurrencyCode: "KES", CurrencySymbol: "KSh", Flag: "🇰🇪",
			Merchants: []domain.SubMerchant{
				{ID: "sm-nairobi-store", Name: "Nairobi Voucher Store", DiscountPercent: 18, Rating: 4.6, IsActive: true, IsVerified: true, IsSubMerchant: true, City: "Nairobi"},
			},
		},
	}
}
