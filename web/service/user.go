package service

import (
	"inav-panel/database"
	"inav-panel/database/model"
	"inav-panel/logger"
	"inav-panel/util/crypto"

	"gorm.io/gorm"
)

// CheckUserResult distinguishes the outcomes of a navigation client login.
type CheckUserResult int

const (
	CheckUserOk CheckUserResult = iota
	CheckUserNotFound
	CheckUserWrongPassword
	CheckUserError
)

// UserService manages navigation client accounts.
type UserService struct{}

// CheckUser verifies a client credential pair. Unlike the admin login, the
// result distinguishes an unknown username from a wrong password.
func (s *UserService) CheckUser(username string, password string) (*model.User, CheckUserResult) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, CheckUserNotFound
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, CheckUserError
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, CheckUserWrongPassword
	}
	return user, CheckUserOk
}

func (s *UserService) GetUsers() ([]*model.User, error) {
	db := database.GetDB()
	users := make([]*model.User, 0)
	err := db.Model(model.User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// AddUser creates a user, hashing the plaintext password before it is
// persisted.
func (s *UserService) AddUser(user *model.User) error {
	hash, err := crypto.HashPasswordAsBcrypt(user.Password)
	if err != nil {
		return err
	}
	user.Password = hash
	db := database.GetDB()
	return db.Create(user).Error
}

func (s *UserService) DelUser(id int) error {
	db := database.GetDB()
	return db.Delete(&model.User{}, id).Error
}
