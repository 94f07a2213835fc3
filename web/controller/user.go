package controller

import (
	"net/http"
	"strconv"

	"inav-panel/database/model"
	"inav-panel/web/service"

	"github.com/gin-gonic/gin"
)

// UserController handles the dashboard's user listing and mutations.
type UserController struct {
	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.POST("/tambah", a.addUser)
	g.GET("/delete-user/:id", a.delUser)
}

// index renders the dashboard with all users.
func (a *UserController) index(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		jsonMsg(c, "Gagal mengambil data user", err)
		return
	}
	html(c, "index.html", "DATA USER", gin.H{"users": users})
}

// addUser creates a user from the dashboard form. The password is hashed
// before it is stored; a hashing failure surfaces as a message, not a crash.
func (a *UserController) addUser(c *gin.Context) {
	user := &model.User{}
	if err := c.ShouldBind(user); err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.userService.AddUser(user); err != nil {
		jsonMsg(c, "Terjadi error saat menyimpan user", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}

func (a *UserController) delUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.userService.DelUser(id); err != nil {
		jsonMsg(c, "Gagal menghapus user", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path"))
}
