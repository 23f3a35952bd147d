package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service

	now func() time.Time
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc, now: time.Now}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return user.User{}, "", ErrInvalidInput
	}
	role, ok := user.ParseRole(strings.TrimSpace(in.Role))
	if !ok || role == user.RoleAdmin {
		// Admin accounts are provisioned out of band, never self-registered.
		return user.User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrInternal
	}

	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    u.now().UTC(),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, "", ErrEmailTaken
		}
		return user.User{}, "", ErrInternal
	}

	token, err := u.jwt.GenerateToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", ErrInternal
	}
	if usr.Blocked {
		return user.User{}, "", ErrUserBlocked
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}
