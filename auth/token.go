package auth

import (
	"fmt"
	"time"

	"chatterbox/domain"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "chatterbox"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates bearer credentials.
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// GenerateToken creates a signed JWT for a specific user.
func (i *TokenIssuer) GenerateToken(userID domain.Identity) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: string(userID),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// Create the token using the HS256 algorithm (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (i *TokenIssuer) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
