package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/campuspulse/internal/auth"
	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/lshigami/campuspulse/internal/repository"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Register creates a student account and logs it in.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	tokens      *auth.TokenManager
	stats       cache.StatsCache
}

func NewAuthService(users repository.UserRepository, departments repository.DepartmentRepository, tokens *auth.TokenManager, stats cache.StatsCache) AuthService {
	return &authService{users: users, departments: departments, tokens: tokens, stats: stats}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if username == "" || name == "" {
		return nil, NewInvalidError("username and name are required")
	}

	dept, err := s.resolveDepartment(ctx, strings.TrimSpace(req.Department))
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     username,
		Password:     string(hash),
		Role:         model.RoleStudent,
		Name:         name,
		DepartmentID: &dept.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, NewConflictError("an account with this roll number already exists")
		}
		log.Error().Err(err).Str("username", username).Msg("Register: failed to create user")
		return nil, scoring.DataAccess("create user", err)
	}
	log.Info().Str("userID", user.ID).Str("department", dept.Name).Msg("Student registered")
	invalidateStats(ctx, s.stats, "student registered")
	return s.issue(user)
}

func (s *authService) resolveDepartment(ctx context.Context, ref string) (*model.Department, error) {
	if ref == "" {
		return nil, NewInvalidError("department is required")
	}
	dept, err := s.departments.FindByID(ctx, ref)
	if err != nil {
		return nil, scoring.DataAccess("find department", err)
	}
	if dept == nil {
		if dept, err = s.departments.FindByName(ctx, ref); err != nil {
			return nil, scoring.DataAccess("find department", err)
		}
	}
	if dept == nil {
		return nil, NewInvalidError("unknown department: " + ref)
	}
	return dept, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, scoring.DataAccess("find user", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, NewUnauthorizedError("invalid username or password")
	}
	return s.issue(user)
}

func (s *authService) issue(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Role: string(user.Role), UserID: user.ID, Name: user.Name}, nil
}
