package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	config *AuthConfig
	now    func() time.Time
}

// NewTokenIssuer ...
func NewTokenIssuer(config *AuthConfig) *TokenIssuer {
	return &TokenIssuer{config: config, now: time.Now}
}

// Issue returns a signed token for the given user and its expiry.
func (i *TokenIssuer) Issue(userID, username string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.config.TokenLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		subClaim:      userID,
		usernameClaim: username,
		"iss":         i.config.Issuer,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(i.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "signing token")
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature, issuer and expiry of tokenString.
func (i *TokenIssuer) Parse(tokenString string) (*jwt.Token, error) {
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(i.config.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parsing token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !claims.VerifyIssuer(i.config.Issuer, true) {
		return nil, errors.Errorf("unexpected token issuer")
	}
	if !claims.VerifyExpiresAt(i.now().Unix(), true) {
		return nil, errors.New("token has no expiry")
	}
	return token, nil
}
