package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

// AbortWithCode attaches a stable reason code so clients can tell a retryable
// rejection from one that is impossible in the current state.
func AbortWithCode(c *gin.Context, status int, err error, code, msg string) {
	abort(c, status, err, code, msg, nil)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
