package provider

import (
	"math"

	"github.com/avtanos/provider-map/internal/database"
	"github.com/avtanos/provider-map/internal/models"
)

// ListProviders returns active providers, optionally narrowed by exact
// category match. Category comparison is case-sensitive with no
// normalization. No ordering is guaranteed.
func ListProviders(category string) ([]models.ServiceProvider, error) {
	q := database.DB.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	providers := []models.ServiceProvider{}
	if err := q.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

// FilterByRadius keeps providers within radius of (lat, lng), measured
// as planar Euclidean distance in raw degrees. This is intentionally
// not great-circle distance: the uncorrected degree-grid formula is
// part of the API contract and must not be replaced with haversine.
// A radius of 0 keeps exact coordinate matches only.
func FilterByRadius(providers []models.ServiceProvider, lat, lng, radius float64) []models.ServiceProvider {
	filtered := []models.ServiceProvider{}
	for _, p := range providers {
		distance := math.Sqrt(math.Pow(p.Latitude-lat, 2) + math.Pow(p.Longitude-lng, 2))
		if distance <= radius {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetProvider fetches one provider by id. Inactive providers are still
// fetchable; the active flag only filters listings.
func GetProvider(id uint) (*models.ServiceProvider, error) {
	var p models.ServiceProvider
	if err := database.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
