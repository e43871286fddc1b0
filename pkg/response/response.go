package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is intentionally flat: success and domain failures both
// report through a human-readable "message" field, domain failures always use
// HTTP 400 and authentication failures use HTTP 401 with "errorAuthenticate".

// OK writes a 200 response with an arbitrary JSON body.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Message writes a 200 response with a message-only body.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// MessageWithToken writes a 200 response carrying a freshly issued token.
func MessageWithToken(c *gin.Context, message, token string) {
	c.JSON(http.StatusOK, gin.H{"message": message, "token": token})
}

// BadRequest writes a 400 response; used for every domain failure kind.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// AuthError writes a 401 response for token verification failures.
func AuthError(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"errorAuthenticate": message})
}

// PDF streams stored file bytes framed as an inline PDF named after the
// subject code. The stored mimetype and filename are deliberately ignored to
// match the observed contract.
func PDF(c *gin.Context, code int, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", fmt.Sprintf("%d.pdf", code)))
	c.Data(http.StatusOK, "application/pdf", data)
}
