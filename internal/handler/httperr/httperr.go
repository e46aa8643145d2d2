package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope: every failure carries a "message"
// field; "detail" is populated only outside release mode.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}
	if gin.Mode() != gin.ReleaseMode {
		resp.Detail = detail
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
