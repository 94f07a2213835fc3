package controller

import (
	"github.com/gin-gonic/gin"
)

// PanelController groups the session-gated dashboard routes.
type PanelController struct {
	BaseController

	userController  *UserController
	mapController   *MapController
	navController   *NavController
	adminController *AdminController
}

func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	a.initRouter(g)
	return a
}

func (a *PanelController) initRouter(g *gin.RouterGroup) {
	g = g.Group("")
	g.Use(a.checkLogin)

	a.userController = NewUserController(g)
	a.mapController = NewMapController(g)
	a.navController = NewNavController(g)
	a.adminController = NewAdminController(g)
}
