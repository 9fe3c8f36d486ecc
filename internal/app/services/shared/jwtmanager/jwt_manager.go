package jwtmanager

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"orca-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/hkdf"
)

const signingKeyLength = 32

// JWTManager signs and verifies the HS256 tokens stored in session cookies.
// Each purpose (cookie name) gets its own key derived from the shared secret,
// so a token lifted from one cookie does not verify in another.
type JWTManager struct {
	log     *zap.Logger
	purpose string
	key     []byte
}

type CreateTokenInput struct {
	Data      map[string]json.RawMessage
	ExpiresAt time.Time
}

type CreateTokenOutput struct {
	Token string
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid     bool
	Data      map[string]json.RawMessage
	ExpiresAt time.Time
}

type sessionClaims struct {
	Data map[string]json.RawMessage `json:"data"`
	jwt.RegisteredClaims
}

func NewJWTManager(secret, purpose string, log *zap.Logger) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	key := make([]byte, signingKeyLength)
	reader := hkdf.New(sha256.New, []byte(secret), nil, []byte(constvars.SessionHKDFInfo+purpose))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive signing key for %s: %w", purpose, err)
	}

	return &JWTManager{log: log, purpose: purpose, key: key}, nil
}

func (m *JWTManager) CreateToken(in *CreateTokenInput) (*CreateTokenOutput, error) {
	claims := sessionClaims{
		Data: in.Data,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.purpose,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(in.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed}, nil
}

// VerifyToken never returns an error for a bad token; it reports Valid=false
// so callers can fall back to an empty session.
func (m *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(in.Token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		m.log.Debug("JWTManager.VerifyToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCookieNameKey, m.purpose),
			zap.Error(err),
		)
		return &VerifyTokenOutput{Valid: false}, nil
	}
	if claims.Subject != m.purpose {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	output := &VerifyTokenOutput{Valid: true, Data: claims.Data}
	if claims.ExpiresAt != nil {
		output.ExpiresAt = claims.ExpiresAt.Time
	}
	return output, nil
}
