package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hamzahey/algorithm-ai/internal/config"
	"github.com/hamzahey/algorithm-ai/internal/db"
	"github.com/hamzahey/algorithm-ai/internal/model"
	"golang.org/x/crypto/bcrypt"
)

const (
	authCookieName = "auth_token"
	// Tokens live for one hour and there is no refresh flow; clients
	// re-authenticate after expiry.
	accessTokenTTL = time.Hour
	bcryptCost     = 12
)

type CookieConfig struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

type AuthService struct {
	users     UserStore
	jwtSecret []byte
	cookieCfg CookieConfig
}

type authClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewAuthService(users UserStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	return &AuthService{
		users:     users,
		jwtSecret: []byte(cfg.JWTSecret),
		cookieCfg: CookieConfig{
			Name:     authCookieName,
			Path:     "/",
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(accessTokenTTL.Seconds()),
		},
	}, nil
}

func (s *AuthService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" || password == "" {
		return nil, "", ErrInvalidInput
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrConflict
	} else if !db.IsNoRows(err) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		// Backstop for a concurrent registration racing the pre-check.
		if db.IsUniqueViolation(err) {
			return nil, "", ErrConflict
		}
		return nil, "", err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login returns the same ErrUnauthorized for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrUnauthorized
	}

	user, err = s.users.UpdateLastLogin(ctx, user.ID, time.Now())
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IsAdmin reads the admin flag fresh from storage. Token payloads are never
// trusted for privilege: a promotion or demotion must take effect before the
// 1h token lifetime ends.
func (s *AuthService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin, nil
}

// EnsureAdmin seeds or promotes the configured admin account at startup.
func (s *AuthService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		slog.Warn("ADMIN_EMAIL and ADMIN_PASSWORD must be provided to seed the admin user, skipping")
		return nil
	}

	existing, err := s.users.GetUserByEmail(ctx, cfg.Email)
	if err == nil {
		if !existing.IsAdmin {
			if err := s.users.SetAdmin(ctx, existing.ID, true); err != nil {
				return err
			}
			slog.Info("promoted existing user to admin", "email", cfg.Email)
		}
		return nil
	}
	if !db.IsNoRows(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcryptCost)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        cfg.Email,
		Name:         cfg.Name,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}
	slog.Info("seeded admin user", "email", cfg.Email)
	return nil
}

func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}

	return &model.AuthUser{
		ID:    userID,
		Email: claims.Email,
	}, nil
}

func (s *AuthService) generateAccessToken(user *model.User) (string, error) {
	now := time.Now()
	claims := authClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
