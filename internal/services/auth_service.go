package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nanjundeshwara/stores-backend/internal/config"
	"github.com/nanjundeshwara/stores-backend/internal/models"
	"github.com/nanjundeshwara/stores-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// AuthServiceImpl handles logins. The admin authenticates against configured
// credentials and receives a JWT; customers authenticate with their numeric
// id and phone number.
type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthServiceImpl
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Login authenticates either the admin or a customer
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	if req.Username == s.cfg.Admin.Username && s.adminPasswordMatches(req.Password) {
		token, err := s.adminToken()
		if err != nil {
			return nil, err
		}
		slog.Info("admin login")
		return &models.LoginResult{Success: true, IsAdmin: true, Token: token}, nil
	}

	userID, err := strconv.ParseInt(req.Username, 10, 64)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.FindActiveByIDAndPhone(ctx, userID, req.Password)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	language := user.Language
	if language == "" {
		language = "en"
	}
	return &models.LoginResult{
		Success:  true,
		IsAdmin:  false,
		UserID:   user.ID,
		Language: language,
	}, nil
}

// adminPasswordMatches prefers the bcrypt hash when one is configured and
// falls back to the plain comparison otherwise.
func (s *AuthServiceImpl) adminPasswordMatches(password string) bool {
	if s.cfg.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password)) == nil
	}
	return s.cfg.Admin.Password != "" && s.cfg.Admin.Password == password
}

// adminToken mints a session token for the admin frontend. No route requires
// it; clients use it to remember the session.
func (s *AuthServiceImpl) adminToken() (string, error) {
	if s.cfg.JWT.Secret == "" {
		return "", nil
	}
	expiresIn := time.Duration(s.cfg.JWT.ExpiresIn) * time.Second
	claims := jwt.MapClaims{
		"sub":  s.cfg.Admin.Username,
		"role": "admin",
		"exp":  time.Now().Add(expiresIn).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}
