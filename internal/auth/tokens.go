package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tekser/repair-tracker/internal/models"
)

var ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

const refreshKeyPrefix = "refresh:"

// TokenService issues short-lived JWT access tokens and opaque refresh
// tokens. Refresh tokens live in Redis under a TTL and are rotated on
// every use.
type TokenService struct {
	secret     []byte
	redis      *redis.Client
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, rdb *redis.Client, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		redis:      rdb,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) GenerateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.accessTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) IssueRefreshToken(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()

	err := s.redis.Set(
		ctx,
		refreshKeyPrefix+token,
		strconv.FormatUint(uint64(userID), 10),
		s.refreshTTL,
	).Err()
	if err != nil {
		return "", err
	}

	return token, nil
}

// Rotate consumes a refresh token and returns the user it belonged to
// together with a replacement token. A token can be used exactly once.
func (s *TokenService) Rotate(ctx context.Context, token string) (uint, string, error) {
	key := refreshKeyPrefix + token

	val, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, "", ErrInvalidRefreshToken
	}
	if err != nil {
		return 0, "", err
	}

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return 0, "", err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidRefreshToken
	}

	next, err := s.IssueRefreshToken(ctx, uint(userID))
	if err != nil {
		return 0, "", err
	}

	return uint(userID), next, nil
}
