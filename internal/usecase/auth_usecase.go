package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	tokens      *auth.TokenManager
	adminSecret string
}

// NewAuthUsecase creates the authentication usecase. adminSecret gates
// self-elevation to admin at registration; empty disables it entirely.
func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, adminSecret string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		tokens:      tokens,
		adminSecret: adminSecret,
	}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password, adminSecret string) (*domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	role := domain.RoleApplicant
	if u.adminSecret != "" && subtle.ConstantTimeCompare([]byte(adminSecret), []byte(u.adminSecret)) == 1 {
		role = domain.RoleAdmin
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, "", apperror.BadRequest("User already exists with this email")
		}
		return nil, "", apperror.Internal(err)
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a password mismatch so the response does not
			// reveal whether the email is registered
			return nil, "", apperror.Unauthorized("Incorrect email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperror.Unauthorized("Incorrect email or password")
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
