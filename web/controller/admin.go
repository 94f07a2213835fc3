package controller

import (
	"net/http"
	"strconv"

	"inav-panel/web/service"

	"github.com/gin-gonic/gin"
)

// AdminForm represents the create-admin form.
type AdminForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AdminController handles the dashboard's admin listing and mutations.
// Admins are immutable besides create and delete.
type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	g.GET("/admin", a.index)
	g.POST("/tambah-admin", a.addAdmin)
	g.GET("/delete-admin/:id", a.delAdmin)
}

func (a *AdminController) index(c *gin.Context) {
	admins, err := a.adminService.GetAdmins()
	if err != nil {
		jsonMsg(c, "Gagal mengambil data admin", err)
		return
	}
	html(c, "admin.html", "DATA ADMIN", gin.H{"admins": admins})
}

func (a *AdminController) addAdmin(c *gin.Context) {
	var form AdminForm
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.adminService.AddAdmin(form.Username, form.Password); err != nil {
		jsonMsg(c, "Terjadi error saat menyimpan admin", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"admin")
}

func (a *AdminController) delAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.adminService.DelAdmin(id); err != nil {
		jsonMsg(c, "Gagal menghapus admin", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"admin")
}
