package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/onmedicines/asaserver/internal/api/middleware"
	"github.com/onmedicines/asaserver/pkg/response"
)

// MustGetRollNumber extracts the student roll number the auth middleware
// bound from the verified token. The caller returns immediately on ok=false;
// the 401 has already been written.
func MustGetRollNumber(c *gin.Context) (int, bool) {
	v, exists := c.Get(middleware.CtxRollNumber)
	if !exists {
		response.AuthError(c, "cannot be authorized!!")
		return 0, false
	}
	roll, ok := v.(int)
	if !ok || roll == 0 {
		response.AuthError(c, "cannot be authorized!!")
		return 0, false
	}
	return roll, true
}

// MustGetUsername extracts the staff username bound from the verified token.
func MustGetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.CtxUsername)
	if !exists {
		response.AuthError(c, "cannot be authorized!!")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.AuthError(c, "cannot be authorized!!")
		return "", false
	}
	return s, true
}
