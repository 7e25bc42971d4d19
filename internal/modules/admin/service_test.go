package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"openland/internal/domain"
)

type mockLandRepo struct {
	mock.Mock
}

func (m *mockLandRepo) GetByID(ctx context.Context, id int64) (*domain.Land, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Land), args.Error(1)
}

func (m *mockLandRepo) GetByIDForAdmin(ctx context.Context, id int64) (*domain.Land, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Land), args.Error(1)
}

func (m *mockLandRepo) Update(ctx context.Context, land *domain.Land) error {
	args := m.Called(ctx, land)
	return args.Error(0)
}

func (m *mockLandRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLandRepo) ListPending(ctx context.Context) ([]domain.Land, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Land), args.Error(1)
}

func (m *mockLandRepo) AdminSearch(ctx context.Context, search string) ([]domain.Land, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Land), args.Error(1)
}

func (m *mockLandRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLandRepo) CountByStatus(ctx context.Context, status domain.LandStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockDocumentRepo struct {
	mock.Mock
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *mockDocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) LandVerified(ctx context.Context, ownerID, landID int64, landTitle string) error {
	args := m.Called(ctx, ownerID, landID, landTitle)
	return args.Error(0)
}

func (m *mockNotifier) LandRejected(ctx context.Context, ownerID, landID int64, landTitle, reason string) error {
	args := m.Called(ctx, ownerID, landID, landTitle, reason)
	return args.Error(0)
}

func newTestService() (*Service, *mockLandRepo, *mockUserRepo, *mockDocumentRepo, *mockNotifier) {
	lands := new(mockLandRepo)
	users := new(mockUserRepo)
	documents := new(mockDocumentRepo)
	notifs := new(mockNotifier)
	return NewService(lands, users, documents, notifs), lands, users, documents, notifs
}

func TestService_Moderate_VerifyClearsReasonAndNotifies(t *testing.T) {
	svc, lands, _, _, notifs := newTestService()

	land := &domain.Land{
		ID:              10,
		OwnerID:         7,
		Title:           "أرض فلاحية",
		Status:          domain.StatusRejected,
		RejectionReason: "سبب قديم",
	}
	lands.On("GetByID", mock.Anything, int64(10)).Return(land, nil)
	lands.On("Update", mock.Anything, mock.MatchedBy(func(l *domain.Land) bool {
		return l.Status == domain.StatusVerified && l.RejectionReason == ""
	})).Return(nil)
	notifs.On("LandVerified", mock.Anything, int64(7), int64(10), "أرض فلاحية").Return(nil)

	updated, err := svc.Moderate(context.Background(), 10, "verified", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, updated.Status)
	assert.Empty(t, updated.RejectionReason)
	notifs.AssertExpectations(t)
}

func TestService_Moderate_RejectStoresReason(t *testing.T) {
	svc, lands, _, _, notifs := newTestService()

	land := &domain.Land{ID: 10, OwnerID: 7, Title: "أرض", Status: domain.StatusPending}
	lands.On("GetByID", mock.Anything, int64(10)).Return(land, nil)
	lands.On("Update", mock.Anything, mock.Anything).Return(nil)
	notifs.On("LandRejected", mock.Anything, int64(7), int64(10), "أرض", "وثائق ناقصة").Return(nil)

	updated, err := svc.Moderate(context.Background(), 10, "rejected", "وثائق ناقصة")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	assert.Equal(t, "وثائق ناقصة", updated.RejectionReason)
	notifs.AssertExpectations(t)
}

func TestService_Moderate_RejectRequiresReason(t *testing.T) {
	svc, lands, _, _, _ := newTestService()

	_, err := svc.Moderate(context.Background(), 10, "rejected", "   ")

	assert.ErrorIs(t, err, ErrReasonRequired)
	lands.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Moderate_InvalidStatus(t *testing.T) {
	svc, lands, _, _, _ := newTestService()

	for _, status := range []string{"pending", "sold", "approved", ""} {
		_, err := svc.Moderate(context.Background(), 10, status, "")
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
	lands.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Moderate_NotFound(t *testing.T) {
	svc, lands, _, _, _ := newTestService()

	lands.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Moderate(context.Background(), 404, "verified", "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Moderate_NotificationFailureIsSwallowed(t *testing.T) {
	svc, lands, _, _, notifs := newTestService()

	land := &domain.Land{ID: 10, OwnerID: 7, Title: "أرض", Status: domain.StatusPending}
	lands.On("GetByID", mock.Anything, int64(10)).Return(land, nil)
	lands.On("Update", mock.Anything, mock.Anything).Return(nil)
	notifs.On("LandVerified", mock.Anything, int64(7), int64(10), "أرض").
		Return(errors.New("notification store down"))

	updated, err := svc.Moderate(context.Background(), 10, "verified", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusVerified, updated.Status)
}

func TestService_UpdateLand_DoesNotChangeStatus(t *testing.T) {
	svc, lands, _, _, _ := newTestService()

	land := &domain.Land{ID: 10, Title: "قديم", Status: domain.StatusVerified}
	lands.On("GetByID", mock.Anything, int64(10)).Return(land, nil)
	lands.On("Update", mock.Anything, mock.MatchedBy(func(l *domain.Land) bool {
		return l.Status == domain.StatusVerified
	})).Return(nil)

	updated, err := svc.UpdateLand(context.Background(), 10, UpdateLandRequest{Title: "عنوان جديد"})

	assert.NoError(t, err)
	assert.Equal(t, "عنوان جديد", updated.Title)
	assert.Equal(t, domain.StatusVerified, updated.Status)
}

func TestService_DeleteLand_NotFound(t *testing.T) {
	svc, lands, _, _, _ := newTestService()

	lands.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteLand(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	lands.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_VerifyDocument_SetsFlagAndTimestamp(t *testing.T) {
	svc, _, _, documents, _ := newTestService()

	doc := &domain.Document{ID: 3, LandID: 10}
	documents.On("GetByID", mock.Anything, int64(3)).Return(doc, nil)
	documents.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.VerifyDocument(context.Background(), 3, true)

	assert.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.NotNil(t, updated.VerifiedAt)
}

func TestService_Stats(t *testing.T) {
	svc, lands, users, _, _ := newTestService()

	users.On("Count", mock.Anything).Return(int64(12), nil)
	lands.On("Count", mock.Anything).Return(int64(30), nil)
	lands.On("CountByStatus", mock.Anything, domain.StatusPending).Return(int64(4), nil)
	lands.On("CountByStatus", mock.Anything, domain.StatusVerified).Return(int64(20), nil)
	lands.On("CountByStatus", mock.Anything, domain.StatusRejected).Return(int64(6), nil)

	stats, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(30), stats.TotalLands)
	assert.Equal(t, int64(4), stats.PendingLands)
	assert.Equal(t, int64(20), stats.VerifiedLands)
	assert.Equal(t, int64(6), stats.RejectedLands)
}
