// Package controller provides the HTTP handlers for the panel dashboard
// and the navigation client API.
package controller

import (
	"net/http"

	"inav-panel/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers,
// including the login gate.
type BaseController struct{}

// checkLogin verifies admin authentication. Browsers get redirected to the
// login page, AJAX callers get a 401.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "Silakan login terlebih dahulu")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
