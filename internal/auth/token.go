package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long issued tokens stay valid. Expiry is the only
// invalidation mechanism; there is no revocation list.
const TokenTTL = 24 * time.Hour

// Claims is the JWT payload: the user's id plus a display name.
type Claims struct {
	UserID  string `json:"user_id"`
	KnownAs string `json:"known_as"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates the bearer tokens used by the API.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager returns a TokenManager signing with the given symmetric
// secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

// Issue creates a signed token for the user, valid for the manager's TTL.
func (m *TokenManager) Issue(userID, knownAs string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:  userID,
		KnownAs: knownAs,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify parses and validates a token string and returns its claims. It fails
// on a bad signature, structural garbage, or an expired token.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("user_id not found in token")
	}

	return claims, nil
}
