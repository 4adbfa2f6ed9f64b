package services

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidVerifyToken = errors.New("invalid verification token")
)

type VerifyClaims struct {
	UserID      uint   `json:"uid"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}

// VerifyService issues and checks the signed, time-bound tokens mailed
// out for email verification.
type VerifyService struct {
	secret string
	ttl    time.Duration
}

func NewVerifyService(secret string, ttl time.Duration) *VerifyService {
	return &VerifyService{secret: secret, ttl: ttl}
}

// fingerprint binds a token to user state that changes when verification
// succeeds, so a token stops validating once it has been used.
func (s *VerifyService) fingerprint(user *models.User) string {
	sum := sha256.Sum256([]byte(user.PasswordHash + "|" + strconv.FormatBool(user.EmailVerified)))
	return hex.EncodeToString(sum[:16])
}

func (s *VerifyService) GenerateToken(user *models.User) (string, error) {
	claims := VerifyClaims{
		UserID:      user.ID,
		Fingerprint: s.fingerprint(user),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "smartbudget",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *VerifyService) CheckToken(user *models.User, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &VerifyClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidVerifyToken
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return ErrInvalidVerifyToken
	}

	claims, ok := token.Claims.(*VerifyClaims)
	if !ok || !token.Valid {
		return ErrInvalidVerifyToken
	}

	if claims.UserID != user.ID || claims.Fingerprint != s.fingerprint(user) {
		return ErrInvalidVerifyToken
	}

	return nil
}

// EncodeUserID renders a user id as the urlsafe base64 path segment used
// in verification links.
func EncodeUserID(id uint) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(id), 10)))
}

func DecodeUserID(encoded string) (uint, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, ErrInvalidVerifyToken
	}
	id, err := strconv.ParseUint(string(raw), 10, 32)
	if err != nil {
		return 0, ErrInvalidVerifyToken
	}
	return uint(id), nil
}
