package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openland/internal/database"
	"openland/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func setupDB(t *testing.T) *LandRepository {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	owner := &domain.User{Email: "seller@example.com", PasswordHash: "x", FullName: "كريم", Phone: "+213555"}
	require.NoError(t, db.Create(owner).Error)

	lands := []domain.Land{
		{
			OwnerID: owner.ID, Title: "أرض فلاحية في البليدة", Description: "وصف",
			Price: 1000000, AreaM2: 20000,
			Type: domain.LandAgricultural, ServiceType: domain.ServiceSale,
			Wilaya: "البليدة", Baladia: "موزاية",
			Lat: ptr(36.50), Lng: ptr(2.83),
			Status: domain.StatusVerified,
		},
		{
			OwnerID: owner.ID, Title: "أرض سكنية في الجزائر", Description: "وصف",
			Price: 5000000, AreaM2: 400,
			Type: domain.LandPrivate, ServiceType: domain.ServiceSale,
			Wilaya: "الجزائر", Baladia: "الدرارية",
			Lat: ptr(36.75), Lng: ptr(3.06),
			Status: domain.StatusVerified,
		},
		{
			OwnerID: owner.ID, Title: "أرض للكراء في وهران", Description: "وصف",
			Price: 300000, AreaM2: 10000,
			Type: domain.LandAgricultural, ServiceType: domain.ServiceRent,
			Wilaya: "وهران", Baladia: "السانية",
			Status: domain.StatusPending,
		},
		{
			OwnerID: owner.ID, Title: "أرض امتياز في أدرار", Description: "وصف",
			Price: 700000, AreaM2: 100000,
			Type: domain.LandConcession, ServiceType: domain.ServiceSale,
			Wilaya: "أدرار", Baladia: "رقان",
			Status: domain.StatusRejected, RejectionReason: "وثائق ناقصة",
		},
	}
	for i := range lands {
		require.NoError(t, db.Create(&lands[i]).Error)
	}

	return NewLandRepository(db)
}

func TestLandRepository_PublicList_OnlyVerified(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.PublicList(context.Background(), PublicFilters{})

	require.NoError(t, err)
	assert.Len(t, lands, 2)
	for _, l := range lands {
		assert.Equal(t, domain.StatusVerified, l.Status)
	}
}

func TestLandRepository_PublicList_WilayaPartialMatch(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.PublicList(context.Background(), PublicFilters{Wilaya: "بليدة"})

	require.NoError(t, err)
	require.Len(t, lands, 1)
	assert.Equal(t, "البليدة", lands[0].Wilaya)
}

func TestLandRepository_PublicList_PriceRange(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.PublicList(context.Background(), PublicFilters{
		MinPrice: ptr(2000000),
		MaxPrice: ptr(9000000),
	})

	require.NoError(t, err)
	require.Len(t, lands, 1)
	assert.Equal(t, 5000000.0, lands[0].Price)
}

func TestLandRepository_PublicList_TypeExactMatch(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.PublicList(context.Background(), PublicFilters{Type: "agricultural"})

	require.NoError(t, err)
	require.Len(t, lands, 1)
	assert.Equal(t, domain.LandAgricultural, lands[0].Type)
}

func TestLandRepository_PublicList_RadiusSearch(t *testing.T) {
	repo := setupDB(t)

	// centered on Algiers; Blida is ~35km away, so a 10km radius keeps
	// only the Algiers listing and 60km catches both
	near, err := repo.PublicList(context.Background(), PublicFilters{
		Lat: ptr(36.7538), Lng: ptr(3.0588), RadiusKm: ptr(10.0),
	})
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "الجزائر", near[0].Wilaya)

	wide, err := repo.PublicList(context.Background(), PublicFilters{
		Lat: ptr(36.7538), Lng: ptr(3.0588), RadiusKm: ptr(60.0),
	})
	require.NoError(t, err)
	assert.Len(t, wide, 2)
}

func TestLandRepository_GetByID_DoesNotLoadOwner(t *testing.T) {
	repo := setupDB(t)

	land, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, land.Owner)
}

func TestLandRepository_GetByIDForAdmin_LoadsOwnerIdentity(t *testing.T) {
	repo := setupDB(t)

	land, err := repo.GetByIDForAdmin(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, land.Owner)
	assert.Equal(t, "seller@example.com", land.Owner.Email)
	assert.Empty(t, land.Owner.PasswordHash)
}

func TestLandRepository_AdminSearch_MatchesAllStatuses(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.AdminSearch(context.Background(), "وهران")

	require.NoError(t, err)
	require.Len(t, lands, 1)
	assert.Equal(t, domain.StatusPending, lands[0].Status)
}

func TestLandRepository_ListPending_OldestFirst(t *testing.T) {
	repo := setupDB(t)

	lands, err := repo.ListPending(context.Background())

	require.NoError(t, err)
	require.Len(t, lands, 1)
	assert.Equal(t, domain.StatusPending, lands[0].Status)
}

func TestLandRepository_Delete_CascadesMediaAndDocuments(t *testing.T) {
	repo := setupDB(t)
	db := repo.DB()

	require.NoError(t, db.Create(&domain.LandMedia{LandID: 1, URL: "/uploads/images/a.jpg"}).Error)
	require.NoError(t, db.Create(&domain.Document{LandID: 1, URL: "/uploads/documents/deed.pdf", DocType: domain.DocOwnershipDeed}).Error)

	require.NoError(t, repo.Delete(context.Background(), 1))

	var mediaCount, docCount int64
	db.Model(&domain.LandMedia{}).Where("land_id = ?", 1).Count(&mediaCount)
	db.Model(&domain.Document{}).Where("land_id = ?", 1).Count(&docCount)
	assert.Zero(t, mediaCount)
	assert.Zero(t, docCount)

	_, err := repo.GetByID(context.Background(), 1)
	assert.Error(t, err)
}

func TestLandRepository_CountByStatus(t *testing.T) {
	repo := setupDB(t)

	verified, err := repo.CountByStatus(context.Background(), domain.StatusVerified)
	require.NoError(t, err)
	assert.Equal(t, int64(2), verified)

	rejected, err := repo.CountByStatus(context.Background(), domain.StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rejected)
}
