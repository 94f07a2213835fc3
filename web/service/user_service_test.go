package service

import (
	"testing"

	"inav-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestUserLoginRoundTrip(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	err := service.AddUser(&model.User{
		Username:     "alice",
		Password:     "p@ss1",
		Gmail:        "alice@gmail.com",
		MobileNumber: "081234567890",
		BpjsNumber:   "0001234567890",
	})
	assert.NoError(t, err)

	user, result := service.CheckUser("alice", "p@ss1")
	assert.Equal(t, CheckUserOk, result)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.Id)

	_, result = service.CheckUser("alice", "wrong")
	assert.Equal(t, CheckUserWrongPassword, result)

	_, result = service.CheckUser("nobody", "p@ss1")
	assert.Equal(t, CheckUserNotFound, result)
}

func TestAddUserStoresHash(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	assert.NoError(t, service.AddUser(&model.User{Username: "alice", Password: "p@ss1"}))

	users, err := service.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NotEqual(t, "p@ss1", users[0].Password)
}

func TestDelUserRemovesExactlyOneRow(t *testing.T) {
	setup(t)
	defer teardown()

	service := UserService{}

	assert.NoError(t, service.AddUser(&model.User{Username: "alice", Password: "a"}))
	assert.NoError(t, service.AddUser(&model.User{Username: "bob", Password: "b"}))

	users, _ := service.GetUsers()
	assert.Len(t, users, 2)

	var aliceId int
	for _, u := range users {
		if u.Username == "alice" {
			aliceId = u.Id
		}
	}
	assert.NoError(t, service.DelUser(aliceId))

	users, _ = service.GetUsers()
	assert.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)
}
