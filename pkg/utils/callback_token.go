package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	DefaultCallbackTokenTTL = time.Hour * 72
	callbackAudience        = "progress-callback"
)

// CallbackClaims scope a worker credential to a single job.
type CallbackClaims struct {
	JobID string `json:"job_id"`
	jwt.RegisteredClaims
}

// GenerateCallbackToken mints the token that travels with a queue work item
// and must be presented back on every progress callback for that job.
func GenerateCallbackToken(jobID, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultCallbackTokenTTL
	}
	now := time.Now()
	claims := &CallbackClaims{
		JobID: jobID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   jobID,
			Audience:  jwt.ClaimStrings{callbackAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign callback token: %w", err)
	}
	return signedToken, nil
}

func ValidateCallbackToken(tokenString string, secret string) (*CallbackClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CallbackClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CallbackClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if !claims.VerifyAudience(callbackAudience, true) {
		return nil, fmt.Errorf("invalid token audience")
	}
	if claims.JobID == "" {
		return nil, fmt.Errorf("token is missing job_id")
	}
	return claims, nil
}
