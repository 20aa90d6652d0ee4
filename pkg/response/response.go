package response

import (
	"errors"
	"net/http"
	"time"

	"split-wallet-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// transientRetryAfter is advertised on NET_001 responses unless a handler
// already set Retry-After.
const transientRetryAfter = "1"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope. ErrorKind lets clients decide
// whether a retry is meaningful without parsing codes.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, success(c, data))
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, success(c, data))
}

// Error writes the envelope for err and records err on the gin context so
// the request logger can report the internal cause. Errors that are not
// AppErrors are reported as SYS_000 without leaking their text.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.New(apperror.KindSystem, "SYS_000", "Internal server error", http.StatusInternalServerError)
	}

	retryable := appErr.Kind == apperror.KindTransient
	if retryable && c.Writer.Header().Get("Retry-After") == "" {
		c.Header("Retry-After", transientRetryAfter)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		ErrorKind: string(appErr.Kind),
		Message:   appErr.Message,
		Retryable: retryable,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func success(c *gin.Context, data interface{}) SuccessResponse {
	return SuccessResponse{Data: data, RequestID: requestID(c), Timestamp: timestamp()}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// requestID returns the id set by the RequestID middleware, or a fresh one.
func requestID(c *gin.Context) string {
	if s := c.GetString("request_id"); s != "" {
		return s
	}
	return uuid.New().String()
}
