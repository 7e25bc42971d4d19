package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"openland/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	svc := NewService(users, jwtSvc)

	users.On("ExistsByEmail", mock.Anything, "karim@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleSeller && u.PasswordHash != "secret123"
	})).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "seller").Return("fake-jwt-token", nil)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Karim@Example.com",
		Password: "secret123",
		FullName: "كريم بوعلام",
		Role:     "seller",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", result.Token)
	assert.Equal(t, "karim@example.com", result.User.Email)
	assert.Equal(t, "seller", result.User.Role)
	users.AssertExpectations(t)
}

func TestService_Register_DefaultsToVisitor(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	svc := NewService(users, jwtSvc)

	users.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleVisitor
	})).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "visitor").Return("token", nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "samir@example.com",
		Password: "secret123",
		FullName: "سمير حداد",
	})

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestService_Register_RejectsAdminRole(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWTService))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "evil@example.com",
		Password: "secret123",
		FullName: "Someone",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWTService))

	users.On("ExistsByEmail", mock.Anything, "karim@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "karim@example.com",
		Password: "secret123",
		FullName: "كريم",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(mockUserRepo)
	jwtSvc := new(mockJWTService)
	svc := NewService(users, jwtSvc)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &domain.User{ID: 7, Email: "karim@example.com", PasswordHash: string(hash), Role: domain.RoleSeller}
	users.On("GetByEmail", mock.Anything, "karim@example.com").Return(user, nil)
	jwtSvc.On("GenerateToken", int64(7), "seller").Return("fake-jwt-token", nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "karim@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", result.Token)
	assert.Equal(t, int64(7), result.User.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	user := &domain.User{ID: 7, Email: "karim@example.com", PasswordHash: string(hash)}
	users.On("GetByEmail", mock.Anything, "karim@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "karim@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWTService))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_GetProfile_StripsPasswordHash(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWTService))

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)

	user, err := svc.GetProfile(context.Background(), 7)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
