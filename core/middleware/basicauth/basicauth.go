package basicauth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Config holds the expected credentials. Empty credentials disable the check.
type Config struct {
	Username string
	Password string
}

// New creates a middleware enforcing HTTP Basic authentication when
// credentials are configured.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Username == "" && cfg.Password == "" {
			return c.Next()
		}

		if !authorized(c.Get(fiber.HeaderAuthorization), cfg) {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}
		return c.Next()
	}
}

func authorized(header string, cfg Config) bool {
	scheme, encoded, found := strings.Cut(header, " ")
	if !found || scheme != "Basic" {
		return false
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.Password)) == 1
	return userOK && passOK
}
