package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the claims embedded in an admin bearer token.
// Identity is the throttling identity the token was issued to; it is
// informational only and never used for authorization decisions.
type AdminClaims struct {
	Admin    bool   `json:"admin"`
	Identity string `json:"identity"`
	jwt.RegisteredClaims
}
