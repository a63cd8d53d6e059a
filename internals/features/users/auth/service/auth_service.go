package service

import (
	"context"
	"log"
	"time"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/admin/tables"
	authHelper "schoolhub_backend/internals/features/users/auth/helper"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("Email already registered")
)

// ValidationError is returned for malformed register/login input.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

type AuthService struct {
	Users  authRepo.UserRepository
	Secret string
	TTL    time.Duration
	Now    func() time.Time
}

func NewAuthService(users authRepo.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Secret: secret, TTL: ttl, Now: time.Now}
}

// LoginResult is a freshly signed session for a verified user.
type LoginResult struct {
	User      *userModel.UserModel
	Token     string
	ExpiresAt time.Time
}

/* ==========================
   REGISTER
========================== */

func (s *AuthService) Register(ctx context.Context, in authHelper.RegisterInput) (*userModel.UserModel, error) {
	in.Normalize()
	if errs := authHelper.ValidateRegisterInput(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	hash, err := authHelper.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &userModel.UserModel{
		Name:         in.Name,
		DisplayName:  in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         constants.RoleGuest,
	}
	user.SetDefaultValues()
	user.Stamp(s.Now())

	if err := s.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, tables.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	log.Printf("[INFO] registered user %s", user.ID)
	return user, nil
}

/* ==========================
   LOGIN
========================== */

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in authHelper.LoginInput) (*LoginResult, error) {
	in.Normalize()
	if errs := authHelper.ValidateLoginInput(in); errs != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Users.FindUserByEmail(ctx, in.Email)
	if errors.Is(err, tables.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" || authHelper.CheckPasswordHash(user.PasswordHash, in.Password) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.Now()
	token, exp, err := helperAuth.IssueToken(s.Secret, helperAuth.Session{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, now, s.TTL)
	if err != nil {
		return nil, err
	}

	if err := s.Users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Printf("[WARN] update last_login for %s: %v", user.ID, err)
	} else {
		user.LastLogin = &now
	}
	return &LoginResult{User: user, Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) Me(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	return s.Users.FindUserByID(ctx, id)
}
