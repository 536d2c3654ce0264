package repositories

import (
	"context"

	"github.com/paulmach/orb"
	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
	"tripwise/pkg/utils"
)

type AttractionRepository interface {
	// WithinRadius returns attractions whose stored point lies within
	// radiusKm of center, ordered by latitude then longitude. An empty
	// category means no category filter.
	WithinRadius(ctx context.Context, center orb.Point, radiusKm float64, category string) ([]db_models.Attraction, error)
	FindByName(ctx context.Context, name string) ([]db_models.Attraction, error)
	ListAll(ctx context.Context) ([]db_models.Attraction, error)
	UpdateCoordinates(ctx context.Context, id uint, point orb.Point) error
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) WithinRadius(ctx context.Context, center orb.Point, radiusKm float64, category string) ([]db_models.Attraction, error) {
	query := `SELECT * FROM attractions
		WHERE ST_DWithin(location::geography, ST_MakePoint(?, ?)::geography, ? * 1000)`
	args := []interface{}{center.Lon(), center.Lat(), radiusKm}

	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY latitude, longitude`

	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) FindByName(ctx context.Context, name string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListAll(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) UpdateCoordinates(ctx context.Context, id uint, point orb.Point) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE attractions
		 SET latitude = ?, longitude = ?, location = ?::geography
		 WHERE id = ?`,
		point.Lat(), point.Lon(), utils.PointEWKT(point), id,
	).Error
}
