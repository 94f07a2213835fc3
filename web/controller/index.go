package controller

import (
	"net/http"

	"inav-panel/logger"
	"inav-panel/web/service"
	"inav-panel/web/session"

	"github.com/gin-gonic/gin"
)

const loginFailedMsg = "Login gagal! Username atau Password salah."

// LoginForm represents the dashboard login request.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles the login and logout routes.
type IndexController struct {
	BaseController

	adminService   service.AdminService
	settingService service.SettingService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// loginPage shows the login form, redirecting admins that are already
// logged in to the dashboard.
func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		return
	}
	html(c, "login.html", "Login Admin", nil)
}

// login verifies the admin credentials and establishes the session. The
// failure message never distinguishes an unknown username from a wrong
// password.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login Admin", gin.H{"error": loginFailedMsg})
		return
	}

	admin := a.adminService.CheckAdmin(form.Username, form.Password)
	if admin == nil {
		logger.Warningf("wrong login attempt for %q, IP: %s", form.Username, getRemoteIp(c))
		html(c, "login.html", "Login Admin", gin.H{"error": loginFailedMsg})
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if sessionMaxAge > 0 {
		if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginAdmin(c, admin); err != nil {
		logger.Warning("unable to save session:", err)
		html(c, "login.html", "Login Admin", gin.H{"error": loginFailedMsg})
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", admin.Username, getRemoteIp(c))
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

// logout clears the session and returns to the login page.
func (a *IndexController) logout(c *gin.Context) {
	admin := session.GetLoginAdmin(c)
	if admin != nil {
		logger.Infof("%s logged out", admin.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login")
}
