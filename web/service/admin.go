package service

import (
	"inav-panel/database"
	"inav-panel/database/model"
	"inav-panel/logger"
	"inav-panel/util/common"
	"inav-panel/util/crypto"

	"gorm.io/gorm"
)

// AdminService manages dashboard operator accounts and verifies their
// credentials at login.
type AdminService struct{}

// CheckAdmin verifies the given credentials and returns the matching admin,
// or nil. Unknown username and wrong password are indistinguishable to the
// caller.
func (s *AdminService) CheckAdmin(username string, password string) *model.Admin {
	db := database.GetDB()

	admin := &model.Admin{}
	err := db.Model(model.Admin{}).
		Where("username = ?", username).
		First(admin).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check admin err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(admin.Password, password) {
		return nil
	}
	return admin
}

func (s *AdminService) GetAdmins() ([]*model.Admin, error) {
	db := database.GetDB()
	admins := make([]*model.Admin, 0)
	err := db.Model(model.Admin{}).Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// AddAdmin creates an admin, hashing the plaintext password before it is
// persisted.
func (s *AdminService) AddAdmin(username string, password string) error {
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	db := database.GetDB()
	return db.Create(&model.Admin{
		Username: username,
		Password: hash,
	}).Error
}

func (s *AdminService) DelAdmin(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Admin{}, id).Error
}

// UpdateFirstAdmin resets the first admin's credentials, used by the
// command line recovery path.
func (s *AdminService) UpdateFirstAdmin(username string, password string) error {
	if username == "" {
		return common.NewError("username can not be empty")
	} else if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	admin := &model.Admin{}
	err = db.Model(model.Admin{}).First(admin).Error
	if database.IsNotFound(err) {
		admin.Username = username
		admin.Password = hash
		return db.Create(admin).Error
	} else if err != nil {
		return err
	}
	admin.Username = username
	admin.Password = hash
	return db.Save(admin).Error
}
