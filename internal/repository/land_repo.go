package repository

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openland/internal/domain"
)

// PublicFilters are the predicates of the public listing query. All are
// optional and conjunctive. The radius search applies only when Lat, Lng
// and RadiusKm are all present; partial geo input is ignored.
type PublicFilters struct {
	Wilaya      string
	Baladia     string
	Type        string
	ServiceType string
	MinPrice    *float64
	MaxPrice    *float64
	MinArea     *float64
	MaxArea     *float64
	Lat         *float64
	Lng         *float64
	RadiusKm    *float64
}

func (f PublicFilters) hasGeo() bool {
	return f.Lat != nil && f.Lng != nil && f.RadiusKm != nil
}

type LandRepository struct {
	db *gorm.DB
}

func NewLandRepository(db *gorm.DB) *LandRepository {
	return &LandRepository{db: db}
}

func (r *LandRepository) DB() *gorm.DB { return r.db }

func (r *LandRepository) Create(ctx context.Context, land *domain.Land) error {
	return r.db.WithContext(ctx).Create(land).Error
}

// Update persists the land row only; attached media and documents are
// append-only and written through their own repositories.
func (r *LandRepository) Update(ctx context.Context, land *domain.Land) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(land).Error
}

// GetByID fetches a land with its media only. Owner identity is
// deliberately not loaded; the public detail view must never expose it.
func (r *LandRepository) GetByID(ctx context.Context, id int64) (*domain.Land, error) {
	var land domain.Land
	err := r.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		First(&land, id).Error
	if err != nil {
		return nil, err
	}
	return &land, nil
}

// GetByIDForAdmin fetches a land with owner identity and documents, for
// the moderation detail view.
func (r *LandRepository) GetByIDForAdmin(ctx context.Context, id int64) (*domain.Land, error) {
	var land domain.Land
	err := r.db.WithContext(ctx).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Documents").
		Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "full_name", "email", "phone")
		}).
		First(&land, id).Error
	if err != nil {
		return nil, err
	}
	return &land, nil
}

// PublicList returns verified listings matching the filters, newest
// first. Listings in any other status are never returned here.
func (r *LandRepository) PublicList(ctx context.Context, f PublicFilters) ([]domain.Land, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Land{}).
		Where("status = ?", domain.StatusVerified)

	if f.Wilaya != "" {
		q = q.Where("LOWER(wilaya) LIKE ?", "%"+strings.ToLower(f.Wilaya)+"%")
	}
	if f.Baladia != "" {
		q = q.Where("LOWER(baladia) LIKE ?", "%"+strings.ToLower(f.Baladia)+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinArea != nil {
		q = q.Where("area_m2 >= ?", *f.MinArea)
	}
	if f.MaxArea != nil {
		q = q.Where("area_m2 <= ?", *f.MaxArea)
	}

	if f.hasGeo() {
		// Bounding box in SQL, exact haversine below. Keeps the query
		// portable across postgres and sqlite.
		latDelta := *f.RadiusKm / 111.0
		lngDelta := *f.RadiusKm / (111.0 * math.Cos(*f.Lat*math.Pi/180))
		q = q.Where("lat IS NOT NULL AND lng IS NOT NULL").
			Where("lat BETWEEN ? AND ?", *f.Lat-latDelta, *f.Lat+latDelta).
			Where("lng BETWEEN ? AND ?", *f.Lng-lngDelta, *f.Lng+lngDelta)
	}

	var lands []domain.Land
	err := q.
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Order("created_at DESC").
		Find(&lands).Error
	if err != nil {
		return nil, err
	}

	if f.hasGeo() {
		filtered := lands[:0]
		for _, l := range lands {
			if l.Lat == nil || l.Lng == nil {
				continue
			}
			if haversineKm(*f.Lat, *f.Lng, *l.Lat, *l.Lng) <= *f.RadiusKm {
				filtered = append(filtered, l)
			}
		}
		lands = filtered
	}

	return lands, nil
}

// ListByOwner returns all listings of one owner regardless of status,
// newest first.
func (r *LandRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Land, error) {
	var lands []domain.Land
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Order("created_at DESC").
		Find(&lands).Error
	return lands, err
}

// ListPending returns the moderation queue, oldest submissions first,
// with owner identity and documents for review.
func (r *LandRepository) ListPending(ctx context.Context) ([]domain.Land, error) {
	var lands []domain.Land
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusPending).
		Preload("Media", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC, id ASC") }).
		Preload("Documents").
		Preload("Owner").
		Order("created_at ASC").
		Find(&lands).Error
	return lands, err
}

// AdminSearch matches a free-text query against title, wilaya and
// baladia across all statuses, newest first. An empty query returns
// everything.
func (r *LandRepository) AdminSearch(ctx context.Context, search string) ([]domain.Land, error) {
	q := r.db.WithContext(ctx).Model(&domain.Land{})

	if s := strings.TrimSpace(search); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(wilaya) LIKE ? OR LOWER(baladia) LIKE ?", sv, sv, sv)
	}

	var lands []domain.Land
	err := q.
		Preload("Owner").
		Order("created_at DESC").
		Find(&lands).Error
	return lands, err
}

// Delete removes a land and its attached media and documents in one
// transaction.
func (r *LandRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("land_id = ?", id).Delete(&domain.LandMedia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("land_id = ?", id).Delete(&domain.Document{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Land{}, id).Error
	})
}

func (r *LandRepository) CountByStatus(ctx context.Context, status domain.LandStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Land{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *LandRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Land{}).Count(&count).Error
	return count, err
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
