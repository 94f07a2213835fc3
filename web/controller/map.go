package controller

import (
	"net/http"
	"strconv"

	"inav-panel/database/model"
	"inav-panel/web/service"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// MapController handles the dashboard's room listing and mutations.
type MapController struct {
	mapService service.MapService
}

func NewMapController(g *gin.RouterGroup) *MapController {
	a := &MapController{}
	a.initRouter(g)
	return a
}

func (a *MapController) initRouter(g *gin.RouterGroup) {
	g.GET("/map", a.index)
	g.POST("/tambah-map", a.addRoom)
	g.POST("/update-map", a.updateRoom)
	g.GET("/delete-map/:id", a.delRoom)
	g.GET("/map/qr/:id", a.roomQr)
}

func (a *MapController) index(c *gin.Context) {
	rooms, err := a.mapService.GetRooms()
	if err != nil {
		jsonMsg(c, "Gagal mengambil data map", err)
		return
	}
	html(c, "map.html", "DATA MAP", gin.H{"maps": rooms})
}

func (a *MapController) addRoom(c *gin.Context) {
	room := &model.Room{}
	if err := c.ShouldBind(room); err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.mapService.AddRoom(room); err != nil {
		jsonMsg(c, "Gagal menyimpan map", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"map")
}

// updateRoom replaces all mutable fields of the room identified by id_map.
func (a *MapController) updateRoom(c *gin.Context) {
	room := &model.Room{}
	if err := c.ShouldBind(room); err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.mapService.UpdateRoom(room); err != nil {
		jsonMsg(c, "Gagal memperbarui map", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"map")
}

func (a *MapController) delRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	if err := a.mapService.DelRoom(id); err != nil {
		jsonMsg(c, "Gagal menghapus map", err)
		return
	}
	c.Redirect(http.StatusFound, c.GetString("base_path")+"map")
}

// roomQr renders the printable QR code carrying the room's room_id.
func (a *MapController) roomQr(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "Data tidak valid", err)
		return
	}
	room, err := a.mapService.GetRoom(id)
	if a.mapService.IsNotFound(err) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		jsonMsg(c, "Gagal mengambil data map", err)
		return
	}

	png, err := qrcode.Encode(room.RoomId, qrcode.Medium, 256)
	if err != nil {
		jsonMsg(c, "Gagal membuat QR code", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
