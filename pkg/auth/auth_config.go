package auth

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/stackrox/newsletter-manager/pkg/shared"
)

const minSecretLength = 32

// AuthConfig configures the signing and verification of access tokens.
type AuthConfig struct {
	JWTSecretFile string        `json:"jwt_secret_file"`
	JWTSecret     string        `json:"-" env:"NEWSLETTER_JWT_SECRET"`
	Issuer        string        `json:"issuer" env:"NEWSLETTER_JWT_ISSUER"`
	TokenLifetime time.Duration `json:"token_lifetime" env:"NEWSLETTER_TOKEN_LIFETIME"`
}

// NewAuthConfig ...
func NewAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecretFile: "secrets/jwt.secret",
		Issuer:        "newsletter-manager",
		TokenLifetime: 12 * time.Hour,
	}
}

// AddFlags ...
func (c *AuthConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.JWTSecretFile, "jwt-secret-file", c.JWTSecretFile, "File containing the HMAC secret used to sign access tokens")
	fs.StringVar(&c.Issuer, "jwt-issuer", c.Issuer, "Issuer claim of the access tokens")
	fs.DurationVar(&c.TokenLifetime, "token-lifetime", c.TokenLifetime, "Lifetime of issued access tokens")
}

// ReadFiles reads the signing secret, which NEWSLETTER_JWT_SECRET overrides.
func (c *AuthConfig) ReadFiles() error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "parsing auth configuration from environment")
	}
	if c.JWTSecret == "" {
		secret, err := shared.ReadFile(c.JWTSecretFile)
		if err != nil {
			return errors.Wrap(err, "reading jwt secret")
		}
		c.JWTSecret = secret
	}
	return c.validate()
}

func (c *AuthConfig) validate() error {
	if len(c.JWTSecret) < minSecretLength {
		return errors.Errorf("jwt secret must be at least %d characters long", minSecretLength)
	}
	if c.TokenLifetime <= 0 {
		return errors.New("token lifetime must be positive")
	}
	return nil
}
