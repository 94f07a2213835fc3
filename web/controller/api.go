package controller

import (
	"net/http"

	"inav-panel/logger"
	"inav-panel/web/entity"
	"inav-panel/web/service"

	"github.com/gin-gonic/gin"
)

// ScanQrForm carries the payload of a scanned QR symbol.
type ScanQrForm struct {
	Code string `json:"code" form:"code"`
}

// ApiController exposes the unauthenticated read/query endpoints consumed
// by the navigation client.
type ApiController struct {
	userService service.UserService
	mapService  service.MapService
	navService  service.NavService
}

func NewApiController(g *gin.RouterGroup) *ApiController {
	a := &ApiController{}
	a.initRouter(g)
	return a
}

func (a *ApiController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/api")

	g.POST("/login", a.login)
	g.GET("/get-map-data", a.getMapData)
	g.POST("/scan-qr", a.scanQr)
	g.GET("/get-inav-data", a.getInavData)
	g.GET("/get-user-data", a.getUserData)
	g.GET("/map/:id", a.getMapByCode)
}

// login verifies a navigation client credential pair. Unlike the dashboard
// login, the response distinguishes an unknown user from a wrong password.
func (a *ApiController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusOK, entity.ApiLoginResponse{Status: false, Message: "Server Error"})
		return
	}

	user, result := a.userService.CheckUser(form.Username, form.Password)
	switch result {
	case service.CheckUserOk:
		c.JSON(http.StatusOK, entity.ApiLoginResponse{
			Status:   true,
			Message:  "Login Berhasil",
			Username: user.Username,
			Id:       user.Id,
		})
	case service.CheckUserNotFound:
		c.JSON(http.StatusOK, entity.ApiLoginResponse{Status: false, Message: "User tidak ditemukan"})
	case service.CheckUserWrongPassword:
		c.JSON(http.StatusOK, entity.ApiLoginResponse{Status: false, Message: "Password Salah"})
	default:
		c.JSON(http.StatusOK, entity.ApiLoginResponse{Status: false, Message: "Server Error"})
	}
}

// getMapData returns every room for the client's map rendering.
func (a *ApiController) getMapData(c *gin.Context) {
	rooms, err := a.mapService.GetRooms()
	if err != nil {
		logger.Warning("get map data err:", err)
		c.JSON(http.StatusOK, entity.ApiResponse{Status: false, Message: "Gagal mengambil data map"})
		return
	}
	c.JSON(http.StatusOK, entity.ApiResponse{Status: true, Data: rooms})
}

// scanQr resolves a scanned room_id to its location. An empty code is
// rejected before any query runs.
func (a *ApiController) scanQr(c *gin.Context) {
	var form ScanQrForm
	if err := c.ShouldBind(&form); err != nil || form.Code == "" {
		c.JSON(http.StatusOK, entity.ApiResponse{Status: false, Message: "Data QR Code kosong!"})
		return
	}

	room, err := a.mapService.GetRoomByCode(form.Code)
	if a.mapService.IsNotFound(err) {
		c.JSON(http.StatusOK, entity.ApiResponse{
			Status:  false,
			Message: "QR Code tidak dikenali (Room ID salah).",
		})
		return
	} else if err != nil {
		logger.Warning("scan qr err:", err)
		c.JSON(http.StatusOK, entity.ApiResponse{Status: false, Message: "Server Error"})
		return
	}

	c.JSON(http.StatusOK, entity.ApiResponse{
		Status:  true,
		Message: "Lokasi Ditemukan!",
		Data: entity.ScanResult{
			RoomName:    room.RoomName,
			Coordinates: room.Coordinates,
			FloorId:     room.FloorId,
		},
	})
}

func (a *ApiController) getInavData(c *gin.Context) {
	records, err := a.navService.GetRecords()
	if err != nil {
		logger.Warning("get inav data err:", err)
		c.JSON(http.StatusOK, entity.ApiResponse{Status: false, Message: "Gagal mengambil data inav"})
		return
	}
	c.JSON(http.StatusOK, entity.ApiResponse{Status: true, Data: records})
}

func (a *ApiController) getUserData(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		logger.Warning("get user data err:", err)
		c.JSON(http.StatusOK, entity.ApiResponse{Status: false, Message: "Gagal mengambil data user"})
		return
	}
	c.JSON(http.StatusOK, entity.ApiResponse{Status: true, Data: users})
}

// getMapByCode returns a single room by its room_id. A missing room is a
// 404, a datastore failure a 500.
func (a *ApiController) getMapByCode(c *gin.Context) {
	roomId := c.Param("id")

	room, err := a.mapService.GetRoomByCode(roomId)
	if a.mapService.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Room ID Not Found"})
		return
	} else if err != nil {
		logger.Warning("get map by id err:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_id":     room.RoomId,
		"coordinates": room.Coordinates,
		"room_name":   room.RoomName,
		"Floor_ID":    room.FloorId,
	})
}
