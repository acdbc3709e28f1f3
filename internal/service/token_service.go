package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/rimamd894-svg/ai-quiz-pro/config"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rs/zerolog/log"
)

// TokenService issues and verifies the bearer tokens used by the HTTP
// layer. Tokens are HMAC-SHA256 signed and carry an expiry, so they cannot
// be forged or replayed indefinitely.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the embedded user ID, or model.ErrInvalidToken when the
	// token is malformed, tampered with, or expired.
	Verify(token string) (string, error)
}

type hmacTokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 {
		// Without a configured secret, tokens do not survive a restart.
		log.Warn().Msg("TOKEN_SECRET is not set, using a random per-process secret")
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate random token secret")
		}
	}

	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &hmacTokenService{secret: secret, ttl: ttl}
}

func (s *hmacTokenService) Issue(userID string) (string, error) {
	expiresAt := time.Now().Add(s.ttl).Unix()
	payload := userID + "|" + strconv.FormatInt(expiresAt, 10)

	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + s.sign(encoded), nil
}

func (s *hmacTokenService) Verify(token string) (string, error) {
	encoded, signature, ok := strings.Cut(token, ".")
	if !ok {
		return "", model.ErrInvalidToken
	}
	if !hmac.Equal([]byte(s.sign(encoded)), []byte(signature)) {
		return "", model.ErrInvalidToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", model.ErrInvalidToken
	}
	userID, expiry, ok := strings.Cut(string(payload), "|")
	if !ok || userID == "" {
		return "", model.ErrInvalidToken
	}
	expiresAt, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil || time.Now().Unix() > expiresAt {
		return "", model.ErrInvalidToken
	}
	return userID, nil
}

func (s *hmacTokenService) sign(encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encoded))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
