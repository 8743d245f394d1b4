package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) UpdateOwned(ctx context.Context, id int64, ownerID string, upd *domain.JobUpdate) (*domain.Job, error) {
	args := m.Called(ctx, id, ownerID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) DeleteOwned(ctx context.Context, id int64, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByApplicantID(ctx context.Context, applicantID string) ([]domain.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to applicant role and issues a resolvable token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, "supersecret")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, token, err := uc.Register(ctx, "Alice", "alice@example.com", "password1", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleApplicant, user.Role)
		assert.NotEmpty(t, user.ID)

		sub, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, sub)
	})

	t.Run("matching admin secret elevates to admin", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "supersecret")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, err := uc.Register(ctx, "Bob", "bob@example.com", "password1", "supersecret")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("wrong admin secret stays applicant", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "supersecret")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, err := uc.Register(ctx, "Eve", "eve@example.com", "password1", "guess")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleApplicant, user.Role)
	})

	t.Run("empty configured secret disables elevation", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, err := uc.Register(ctx, "Eve", "eve2@example.com", "password1", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleApplicant, user.Role)
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEmail)

		_, _, err := uc.Register(ctx, "Alice", "alice@example.com", "password1", "")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("serialized user never exposes the password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "")

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, _, err := uc.Register(ctx, "Alice", "alice@example.com", "password1", "")
		assert.NoError(t, err)
		assert.NotEmpty(t, user.PasswordHash)

		body, err := json.Marshal(user)
		assert.NoError(t, err)
		assert.NotContains(t, string(body), "password")
		assert.NotContains(t, string(body), user.PasswordHash)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	storedUser := &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleApplicant,
	}

	t.Run("valid credentials return a token for the same user", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, "")

		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(storedUser, nil)

		user, token, err := uc.Login(ctx, "alice@example.com", "right-password")
		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)

		sub, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", sub)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "")

		mockRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", ctx, "alice@example.com").Return(storedUser, nil)

		_, _, errUnknown := uc.Login(ctx, "ghost@example.com", "whatever")
		_, _, errWrongPass := uc.Login(ctx, "alice@example.com", "wrong-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, errUnknown))
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, errWrongPass))
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("vanished subject maps to 404", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens(), "")

		mockRepo.On("GetByID", ctx, "gone").Return(nil, domain.ErrNotFound)

		_, err := uc.GetCurrentUser(ctx, "gone")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}
