package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/icutrack/icu-api/util"
)

// DBKey is the gin context key under which DatabaseMiddleware stores the connection.
const DBKey = "db"

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// DatabaseMiddleware injects the shared gorm connection into the request
// context so handlers never touch a package-level singleton.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(DBKey, db)
		c.Next()
	}
}

// GetDB retrieves the connection stored by DatabaseMiddleware, or nil when the
// middleware was not installed.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(DBKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// AdminTokenRequired guards administrative routes with a static shared token
// supplied as "Authorization: Bearer <token>". An empty configured token
// disables the routes entirely rather than leaving them open.
func AdminTokenRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Administrative endpoints are disabled",
				Err: fmt.Errorf("no admin token configured"),
			})
			c.Abort()
			return
		}

		supplied := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid or missing admin token",
				Err: fmt.Errorf("admin token mismatch"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
