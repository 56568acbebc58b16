package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope shared by handlers and middleware.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ReasonDetail carries the machine-readable cause of a rejected request.
type ReasonDetail struct {
	Reason string `json:"reason"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for the logging middleware and
// writes the envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortWithReason(c *gin.Context, status int, err error, msg, reason string) {
	AbortWithError(c, status, err, msg, ReasonDetail{Reason: reason})
}
