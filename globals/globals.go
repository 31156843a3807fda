package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

var JwtSecret []byte

// The secret is resolved in init rather than a var initializer so the
// .env file is loaded first.
func init() {
	_ = godotenv.Load()
	JwtSecret = []byte(envOr("JWT_SECRET", "change_this_secret"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Context keys
type ContextKey string

const AdminUserKey ContextKey = "adminUser"

var Ctx = context.Background()
