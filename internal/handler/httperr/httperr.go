package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint emits. Detail carries
// structured extras, typically a field-to-message map for form errors.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records the original error on the gin context for the
// logging middleware and writes the public envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithFieldErrors is the validation-failure variant: the message is a
// fixed summary and the detail maps fields to their first message.
func AbortWithFieldErrors(c *gin.Context, status int, err error, fields map[string]string) {
	AbortWithError(c, status, err, "Validation failed", gin.H{"fields": fields})
}
