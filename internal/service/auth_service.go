package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-ce/catalog-api/pkg/config"
	appErrors "github.com/campus-ce/catalog-api/pkg/errors"
)

// TokenRequest carries the admin credentials.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService issues and validates the admin bearer token that guards the
// export surface. The catalog has a single configured admin principal, not
// a user store.
type AuthService struct {
	cfg       config.AuthConfig
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService.
func NewAuthService(cfg config.AuthConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{cfg: cfg, validator: validate, logger: logger, now: time.Now}
}

// IssueToken exchanges valid admin credentials for a signed JWT.
func (s *AuthService) IssueToken(req TokenRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid token payload")
	}

	if s.cfg.AdminPasswordHash == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "admin access is not configured")
	}
	if req.Username != s.cfg.AdminUsername {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		Issuer:    s.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("admin token issued", zap.String("subject", req.Username))
	return &TokenResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *AuthService) ValidateToken(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "unexpected signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}
