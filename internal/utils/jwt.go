package utils // package utils provides helper functions for token creation

import (
    "errors"
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp.  Tokens are sent in the Authorization header when calling the
// layout API.
type AccessToken struct {
    Token string    `json:"access_token"` // the serialized JWT string
    Exp   time.Time `json:"expires_at"`   // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role, and a TTL in minutes.  The
// JWT includes the claims sub, role, exp and iat.  layoutctl uses it to
// mint development tokens against the server's JWT_SECRET.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
    if secret == "" {
        return AccessToken{}, errors.New("empty signing secret")
    }
    if ttlMin <= 0 {
        return AccessToken{}, errors.New("token ttl must be positive")
    }
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
