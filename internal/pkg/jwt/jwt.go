package jwt

import (
	"errors"
	"time"

	"laundry-backoffice/internal/domain/user"
	"laundry-backoffice/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	Issuer        = "laundry-backoffice"
	TokenDuration = time.Hour
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// Claims carries the role twice: as the numeric code and as the "groups"
// scope name. Both must agree for a token to verify.
type Claims struct {
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
	Groups []string  `json:"groups"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Service struct {
	secretKey []byte
	clock     clock.Clock
}

func NewService(secretKey string, clk clock.Clock) (*Service, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &Service{
		secretKey: []byte(secretKey),
		clock:     clk,
	}, nil
}

func (s *Service) GenerateToken(u *user.User) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Name:   u.Name().Value(),
		Email:  u.Email().Value(),
		Role:   u.Role(),
		Groups: []string{u.Role().String()},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.Role.IsValid() || len(claims.Groups) != 1 || claims.Groups[0] != claims.Role.String() {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
