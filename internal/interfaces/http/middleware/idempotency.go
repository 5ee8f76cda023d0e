package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "talentpact.backend/internal/domain/errors"
	"talentpact.backend/internal/interfaces/http/response"
	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
	maxKeyLength     = 255

	codeIdempotencyConflict = "ERR_IDEMPOTENCY_CONFLICT"
	codeIdempotencyMismatch = "ERR_IDEMPOTENCY_MISMATCH"
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// storedResponse is what a replay writes back
type storedResponse struct {
	Status      int    `json:"status"`
	Body        string `json:"body"`
	RequestHash string `json:"request_hash"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyMiddleware replays the first successful response for a repeated
// Idempotency-Key on the same route when the request body is identical. A reused
// key with a different body is rejected with 422. Requests without the header
// pass through, as do all requests while Redis is unreachable.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxKeyLength {
			response.Abort(c, domainerrors.BadRequest("Idempotency-Key is too long"))
			return
		}

		var body []byte
		if c.Request.Body != nil {
			var err error
			if body, err = io.ReadAll(c.Request.Body); err != nil {
				response.Abort(c, domainerrors.BadRequest("invalid request body"))
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])

		ctx := c.Request.Context()
		storageKey := fmt.Sprintf("idempotency:%s:%s:%s", c.Request.Method, c.FullPath(), key)

		acquired, err := redisSetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil {
			logger.Warn(ctx, "idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !acquired {
			val, err := redisGet(ctx, storageKey)
			if err != nil && !redis.IsNil(err) {
				logger.Warn(ctx, "idempotency lookup failed", zap.Error(err))
				c.Next()
				return
			}
			var stored storedResponse
			if err != nil || val == processingMarker || json.Unmarshal([]byte(val), &stored) != nil {
				c.AbortWithStatusJSON(http.StatusConflict, response.Envelope{
					Success: false,
					Message: "Request already in progress",
					Code:    codeIdempotencyConflict,
				})
				return
			}
			if stored.RequestHash != requestHash {
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response.Envelope{
					Success: false,
					Message: "Idempotency-Key was already used with a different request body",
					Code:    codeIdempotencyMismatch,
				})
				return
			}

			c.Header("X-Idempotency-Hit", "true")
			c.Data(stored.Status, "application/json; charset=utf-8", []byte(stored.Body))
			c.Abort()
			return
		}

		w := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			payload, _ := json.Marshal(storedResponse{Status: status, Body: w.body.String(), RequestHash: requestHash})
			if err := redisSet(ctx, storageKey, string(payload), RetentionDuration); err != nil {
				logger.Warn(ctx, "idempotency result not stored", zap.Error(err))
			}
			return
		}
		// failed attempts may be retried with the same key
		_ = redisDel(ctx, storageKey)
	}
}
