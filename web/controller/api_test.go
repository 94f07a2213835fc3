package controller

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"inav-panel/database"
	"inav-panel/database/model"
	"inav-panel/logger"
	"inav-panel/web/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	os.Setenv("INAV_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.DEBUG)

	dbPath := "test.db"
	os.Remove(dbPath)
	if err := database.InitTestDB(dbPath); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove(dbPath)
	})

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("base_path", "/")
	})
	engine.Use(sessions.Sessions("inav-panel", cookie.NewStore([]byte("test-secret"))))
	tpl := template.New("")
	template.Must(tpl.New("login.html").Parse(`{{ if .error }}{{ .error }}{{ end }}`))
	for _, name := range []string{"index.html", "map.html", "inav.html", "admin.html"} {
		template.Must(tpl.New(name).Parse(`{{ .title }}`))
	}
	engine.SetHTMLTemplate(tpl)

	g := engine.Group("/")
	NewIndexController(g)
	NewPanelController(g)
	NewApiController(g)

	return engine
}

func postJSON(engine *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func getPath(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return body
}

func TestScanQrEmptyCode(t *testing.T) {
	engine := setupRouter(t)

	w := postJSON(engine, "/api/scan-qr", `{"code":""}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Data QR Code kosong!", body["message"])
}

func TestScanQrUnknownCode(t *testing.T) {
	engine := setupRouter(t)

	w := postJSON(engine, "/api/scan-qr", `{"code":"ROOM-404"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "QR Code tidak dikenali (Room ID salah).", body["message"])
}

func TestScanQrKnownCode(t *testing.T) {
	engine := setupRouter(t)

	mapService := service.MapService{}
	err := mapService.AddRoom(&model.Room{
		FloorId:     "2",
		RoomName:    "Poli Gigi",
		Coordinates: "3.5,0,7.25",
		RoomId:      "ROOM-42",
	})
	assert.NoError(t, err)

	w := postJSON(engine, "/api/scan-qr", `{"code":"ROOM-42"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Lokasi Ditemukan!", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Poli Gigi", data["room_name"])
	assert.Equal(t, "3.5,0,7.25", data["coordinates"])
	assert.Equal(t, "2", data["floor_id"])
}

func TestGetMapByCode(t *testing.T) {
	engine := setupRouter(t)

	w := getPath(engine, "/api/map/ROOM-42")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Room ID Not Found", body["message"])

	mapService := service.MapService{}
	assert.NoError(t, mapService.AddRoom(&model.Room{
		FloorId:     "1",
		RoomName:    "Apotek",
		Coordinates: "0,0,0",
		RoomId:      "ROOM-42",
	}))

	w = getPath(engine, "/api/map/ROOM-42")
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "ROOM-42", body["room_id"])
	assert.Equal(t, "Apotek", body["room_name"])
	assert.Equal(t, "1", body["Floor_ID"])
}

func TestApiLogin(t *testing.T) {
	engine := setupRouter(t)

	userService := service.UserService{}
	assert.NoError(t, userService.AddUser(&model.User{Username: "alice", Password: "p@ss1"}))

	w := postJSON(engine, "/api/login", `{"username":"alice","password":"p@ss1"}`)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Login Berhasil", body["message"])
	assert.Equal(t, "alice", body["username"])
	assert.NotZero(t, body["id"])

	w = postJSON(engine, "/api/login", `{"username":"alice","password":"wrong"}`)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Password Salah", body["message"])

	w = postJSON(engine, "/api/login", `{"username":"nobody","password":"p@ss1"}`)
	body = decodeBody(t, w)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "User tidak ditemukan", body["message"])
}

func TestGetMapData(t *testing.T) {
	engine := setupRouter(t)

	mapService := service.MapService{}
	assert.NoError(t, mapService.AddRoom(&model.Room{FloorId: "1", RoomName: "Lab", Coordinates: "0,0,0", RoomId: "ROOM-1"}))

	w := getPath(engine, "/api/get-map-data")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["status"])
	assert.Len(t, body["data"], 1)
}

func TestUnauthenticatedRoutesRedirectToLogin(t *testing.T) {
	engine := setupRouter(t)

	for _, path := range []string{"/", "/map", "/inav", "/admin", "/delete-user/1", "/delete-map/1"} {
		w := getPath(engine, path)
		assert.Equal(t, http.StatusTemporaryRedirect, w.Code, "path %s", path)
		assert.Equal(t, "/login", w.Header().Get("Location"), "path %s", path)
	}

	// Gated mutations never run for anonymous callers
	form := url.Values{"starting_position": {"Lobby"}, "target": {"IGD"}}
	req := httptest.NewRequest(http.MethodPost, "/tambah-inav", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	records, err := (&service.NavService{}).GetRecords()
	assert.NoError(t, err)
	assert.Len(t, records, 0)
}

func TestBrowserLoginFlow(t *testing.T) {
	engine := setupRouter(t)

	// Wrong credentials show the generic failure message
	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login gagal! Username atau Password salah.")

	// The seeded default credential logs in and the session opens the panel
	form = url.Values{"username": {"admin"}, "password": {"admin"}}
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The login writes the session cookie more than once; a browser keeps
	// only the last value.
	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "inav-panel" {
			sessionCookie = c
		}
	}
	assert.NotNil(t, sessionCookie)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(sessionCookie)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DATA ADMIN")
}
