package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// pageParams reads page/limit query parameters, clamping them to sane
// bounds. Unparseable values fall back to the defaults.
func pageParams(c *gin.Context) (page, limit int) {
	page = defaultPage
	limit = defaultLimit

	if v, err := strconv.Atoi(c.DefaultQuery("page", "")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "")); err == nil && v >= 1 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// intQuery reads an integer query parameter, returning fallback when the
// parameter is absent or unparseable.
func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
