package session

import (
	"encoding/gob"

	"inav-panel/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginAdmin = "LOGIN_ADMIN"

func init() {
	gob.Register(model.Admin{})
}

func SetLoginAdmin(c *gin.Context, admin *model.Admin) error {
	s := sessions.Default(c)
	s.Set(loginAdmin, admin)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginAdmin(c *gin.Context) *model.Admin {
	s := sessions.Default(c)
	if obj := s.Get(loginAdmin); obj != nil {
		if admin, ok := obj.(model.Admin); ok {
			return &admin
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginAdmin(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
