package security

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims is what a login token asserts: which admin logged in and
// until when the token is good.
type SessionClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, userID int64, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func ParseToken(tokenStr string, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// legacyToken is the unsigned credential the old backend issued:
// base64(JSON{user_id, username, exp}). There is no signature, so any
// holder can mint one. Verification checks the expiry and nothing else.
type legacyToken struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Exp      int64  `json:"exp"`
}

func GenerateLegacyToken(userID int64, username string, ttl time.Duration) string {
	payload, _ := json.Marshal(legacyToken{
		UserID:   userID,
		Username: username,
		Exp:      time.Now().Add(ttl).Unix(),
	})
	return base64.StdEncoding.EncodeToString(payload)
}

func ParseLegacyToken(tokenStr string) (*SessionClaims, error) {
	raw, err := base64.StdEncoding.DecodeString(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var legacy legacyToken
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, ErrInvalidToken
	}
	if legacy.Exp == 0 || legacy.Exp < time.Now().Unix() {
		return nil, ErrInvalidToken
	}

	return &SessionClaims{
		UserID:   legacy.UserID,
		Username: legacy.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Unix(legacy.Exp, 0)),
		},
	}, nil
}

// VerifyToken tries the signed format first and, when allowLegacy is set,
// falls back to the old unsigned format.
func VerifyToken(tokenStr string, secret string, allowLegacy bool) (*SessionClaims, error) {
	claims, err := ParseToken(tokenStr, secret)
	if err == nil {
		return claims, nil
	}
	if allowLegacy {
		return ParseLegacyToken(tokenStr)
	}
	return nil, ErrInvalidToken
}
