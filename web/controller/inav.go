package controller

import (
	"net/http"
	"strconv"

	"inav-panel/database/model"
	"inav-panel/web/service"

	"github.com/gin-gonic/gin"
)

// NavController handles the dashboard's navigation record listing and
// mutations. Records have no update path.
type NavController struct {
	navService service.NavService
}

func NewNavController(g *gin.RouterGroup) *NavController {
	a := &NavController{}
	a.initRouter(g)
	return a
}

func (a *NavController) initRouter(g *gin.RouterGroup) {
	g.GET("/inav", a.index)
	g.POST("/tambah-inav", a.addRecord)
	g.GET("/delete-inav/:id", a.delRecord)
}

func (a *NavController) index(c *gin.Context) {
	records, err := a.navService.GetRecords()
	if err != nil {
		jsonMsg(c, "Gagal mengambil data inav", err)
		return
	}
	html(c, "inav.html", "DATA INAV", gin.H{"inavs": records})
}

func (a *NavController) addRecord(c *gin.Context) {
	record := &model.NavRecord{}
	if err := c.ShouldBind(record); err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.navService.AddRecord(record); err != nil {
		jsonMsg(c, "Gagal menyimpan inav", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"inav")
}

func (a *NavController) delRecord(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.navService.DelRecord(id); err != nil {
		jsonMsg(c, "Gagal menghapus inav", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"inav")
}
