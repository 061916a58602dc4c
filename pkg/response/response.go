package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Success is the standard success envelope.
type Success struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorBody carries the structured error inside the failure envelope.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Failure is the standard error envelope.
type Failure struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

// Paginated wraps a page of items with pagination metadata.
type Paginated struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination describes the position of a page within the full result set.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// NewPaginated builds the pagination envelope for a page of items.
func NewPaginated(items interface{}, page, limit, total int) Paginated {
	totalPages := (total + limit - 1) / limit
	return Paginated{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasMore:    page < totalPages,
		},
	}
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Success{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

// OKMessage sends a 200 response with data and a human-readable message.
func OKMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Success{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Success{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

// CreatedMessage sends a 201 response with data and a message.
func CreatedMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Success{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: now(),
	})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Failure{
			Success: false,
			Error: ErrorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
				Details: appErr.Details,
			},
			Timestamp: now(),
		})
		return
	}

	// Unknown error -> 500
	c.JSON(http.StatusInternalServerError, Failure{
		Success: false,
		Error: ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "Internal server error",
		},
		Timestamp: now(),
	})
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
