package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "qatest-api/internal/domain/user"
	apperrors "qatest-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByMSISDN(ctx context.Context, msisdn string) (*domain.User, error) {
	args := m.Called(ctx, msisdn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupTestUsecase(t *testing.T) (Usecase, *MockRepository) {
	mockRepo := new(MockRepository)
	uc := New(mockRepo, zaptest.NewLogger(t))
	return uc, mockRepo
}

// ==================== CREATE USER TESTS ====================

func TestCreateUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	name := "Test User"
	created := &domain.User{ID: 11, Name: &name, MSISDN: "79998887766"}

	mockRepo.On("GetByMSISDN", ctx, "79998887766").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name != nil && *u.Name == "Test User" && u.MSISDN == "79998887766"
	})).Return(created, nil)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"name":   "Test User",
		"msisdn": "79998887766",
	}})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(11), resp.User.ID)
	require.NotNil(t, resp.User.Name)
	assert.Equal(t, "Test User", *resp.User.Name)

	mockRepo.AssertExpectations(t)
}

func TestCreateUser_WithoutName(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	created := &domain.User{ID: 11, MSISDN: "79998887755"}

	mockRepo.On("GetByMSISDN", ctx, "79998887755").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == nil && u.MSISDN == "79998887755"
	})).Return(created, nil)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"msisdn": "79998887755",
	}})

	require.NoError(t, err)
	assert.Nil(t, resp.User.Name)
}

func TestCreateUser_NameEmptyAfterTrimStoredAsAbsent(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByMSISDN", ctx, "79998887755").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == nil
	})).Return(&domain.User{ID: 11, MSISDN: "79998887755"}, nil)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"name":   "   ",
		"msisdn": "79998887755",
	}})

	require.NoError(t, err)
	assert.Nil(t, resp.User.Name)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_ExtraFields(t *testing.T) {
	uc, _ := setupTestUsecase(t)
	ctx := context.Background()

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"msisdn":      "79998887733",
		"name":        "Test User",
		"extra_field": "should not be here",
		"another":     1,
	}})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.IsType(t, &apperrors.ValidationError{}, err)
	assert.Equal(t, "Extra fields not allowed: another, extra_field", err.Error())
}

func TestCreateUser_MissingMSISDN(t *testing.T) {
	uc, _ := setupTestUsecase(t)
	ctx := context.Background()

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"name": "Test User",
	}})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Missing required field: msisdn", err.Error())
}

func TestCreateUser_InvalidMSISDN(t *testing.T) {
	uc, _ := setupTestUsecase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		msisdn  any
		message string
	}{
		{"letters", "7916abc4567", "MSISDN must contain only digits"},
		{"too short", "1234567890", "MSISDN must be exactly 11 digits"},
		{"too long", "123456789012", "MSISDN must be exactly 11 digits"},
		{"number instead of string", float64(79161234001), "MSISDN is required and must be a string"},
		{"null", nil, "MSISDN is required and must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
				"msisdn": tt.msisdn,
			}})
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCreateUser_DuplicateMSISDN(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	existing := &domain.User{ID: 1, MSISDN: "79161234001"}
	mockRepo.On("GetByMSISDN", ctx, "79161234001").Return(existing, nil)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"msisdn": "79161234001",
	}})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.IsType(t, &apperrors.ConflictError{}, err)
	assert.Equal(t, "User with msisdn 79161234001 already exists", err.Error())
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_NameTooLong(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByMSISDN", ctx, "79998887744").Return(nil, nil)

	resp, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"name":   strings.Repeat("A", 31),
		"msisdn": "79998887744",
	}})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Name must not exceed 30 characters", err.Error())
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_UniquenessCheckedBeforeName(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	// Both violations present: the conflict wins because uniqueness is
	// checked before the name.
	existing := &domain.User{ID: 1, MSISDN: "79161234001"}
	mockRepo.On("GetByMSISDN", ctx, "79161234001").Return(existing, nil)

	_, err := uc.CreateUser(ctx, CreateUserRequest{Fields: map[string]any{
		"name":   strings.Repeat("A", 31),
		"msisdn": "79161234001",
	}})

	require.Error(t, err)
	assert.IsType(t, &apperrors.ConflictError{}, err)
}

// ==================== LIST USERS TESTS ====================

func TestListUsers_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return(domain.SeedUsers(), nil)

	resp, err := uc.ListUsers(ctx, ListUsersRequest{Offset: "2", Count: "4", HasOffset: true, HasCount: true})

	require.NoError(t, err)
	require.Len(t, resp.Users, 4)
	assert.Equal(t, int64(3), resp.Users[0].ID)
	assert.Equal(t, int64(6), resp.Users[3].ID)
}

func TestListUsers_InvalidParams(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	resp, err := uc.ListUsers(ctx, ListUsersRequest{Offset: "abc", Count: "def", HasOffset: true, HasCount: true})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.IsType(t, &apperrors.ValidationError{}, err)
	assert.Equal(t, "Invalid offset or count parameter", err.Error())
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestListUsers_NegativeOffsetReturnsEmpty(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return(domain.SeedUsers(), nil)

	resp, err := uc.ListUsers(ctx, ListUsersRequest{Offset: "-5", HasOffset: true})

	require.NoError(t, err)
	assert.Empty(t, resp.Users)
}

// ==================== GET / DELETE TESTS ====================

func TestGetUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	name := "Clark Peterson"
	mockRepo.On("GetByID", ctx, int64(5)).Return(&domain.User{ID: 5, Name: &name, MSISDN: "79161234005"}, nil)

	resp, err := uc.GetUser(ctx, GetUserRequest{ID: 5})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.User.ID)
	assert.Equal(t, "79161234005", resp.User.MSISDN)
}

func TestGetUser_NotFound(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(999)).
		Return(nil, apperrors.NewNotFoundError("user", "User with id 999 not found"))

	resp, err := uc.GetUser(ctx, GetUserRequest{ID: 999})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.IsType(t, &apperrors.NotFoundError{}, err)
	assert.Equal(t, "User with id 999 not found", err.Error())
}

func TestDeleteUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(11)).Return(nil)

	resp, err := uc.DeleteUser(ctx, DeleteUserRequest{ID: 11})

	require.NoError(t, err)
	assert.Equal(t, "User with id 11 deleted successfully", resp.Message)
}

func TestDeleteUser_NotFound(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(999)).
		Return(apperrors.NewNotFoundError("user", "User with id 999 not found"))

	resp, err := uc.DeleteUser(ctx, DeleteUserRequest{ID: 999})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "User with id 999 not found", err.Error())
}

// ==================== RESET TESTS ====================

func TestReset(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Reset", ctx).Return(nil)

	require.NoError(t, uc.Reset(ctx))
	mockRepo.AssertExpectations(t)
}
