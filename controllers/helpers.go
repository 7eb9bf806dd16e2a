package controllers

import (
	"errors"
	"os"
	"strings"

	"github.com/rishen2486/wheels-up-booking-suite/access"
	"github.com/rishen2486/wheels-up-booking-suite/config"
	"github.com/rishen2486/wheels-up-booking-suite/middleware"
	"github.com/rishen2486/wheels-up-booking-suite/services"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
)

func jwtSecret() string {
	return os.Getenv("JWT_SECRET")
}

// isDuplicateErr reports a MySQL duplicate-key violation (errno 1062).
func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

// sanitizeUpdates lowercases payload keys and strips the immutable
// columns. MySQL matches column names case-insensitively, so "ID" or
// "User_Id" would otherwise reach the UPDATE.
func sanitizeUpdates(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch key := strings.ToLower(k); key {
		case "id", "user_id", "created_at", "updated_at", "deleted_at":
		default:
			out[key] = v
		}
	}
	return out
}

// scopeFor resolves the caller's read scope from their profile row.
// Missing profile resolves to the owner-only scope.
func scopeFor(c *gin.Context) (access.Scope, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return access.Scope{}, false
	}
	return services.NewProfileService(config.DB).ResolveScope(userID), true
}
