package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency deduplicates POSTs that carry an Idempotency-Key header.
// A short-lived SetNX lock rejects a second identical request while the
// first is still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		employeeID := c.GetString("employee_id")
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), employeeID, idempKey)

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Sua requisição está sendo processada, aguarde um momento.",
			})
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()
	}
}
