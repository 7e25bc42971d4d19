package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"openland/internal/domain"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) MarkRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *mockRepo) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestService_LandRejected_EmbedsReason(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifLandRejected &&
			n.UserID == 7 &&
			*n.RelatedLandID == 10 &&
			strings.Contains(n.Message, "وثائق ناقصة")
	})).Return(nil)

	err := svc.LandRejected(context.Background(), 7, 10, "أرض فلاحية", "وثائق ناقصة")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_LandVerified(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifLandVerified && strings.Contains(n.Message, "أرض فلاحية")
	})).Return(nil)

	err := svc.LandVerified(context.Background(), 7, 10, "أرض فلاحية")

	assert.NoError(t, err)
}

func TestService_NewMessage_FallbackSenderName(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return strings.Contains(n.Message, "مستخدم")
	})).Return(nil)

	err := svc.NewMessage(context.Background(), 2, "", nil)

	assert.NoError(t, err)
}

func TestService_List_ClampsPageAndComputesTotals(t *testing.T) {
	repo := new(mockRepo)
	svc := NewService(repo)

	repo.On("ListByUser", mock.Anything, int64(1), 10, 0).Return([]domain.Notification{{ID: 1}}, int64(25), nil)
	repo.On("CountUnread", mock.Anything, int64(1)).Return(int64(3), nil)

	result, err := svc.List(context.Background(), 1, 0, -5)

	assert.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, int64(3), result.TotalPages)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, int64(3), result.UnreadCount)
}
