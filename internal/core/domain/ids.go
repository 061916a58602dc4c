package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a short prefixed identifier, e.g. "order-9f3c21ab".
func NewID(prefix string) string {
	id := uuid.New().String()
	return prefix + "-" + strings.SplitN(id, "-", 2)[0]
}
