package service

import (
	"testing"

	"inav-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestMapServiceCrud(t *testing.T) {
	setup(t)
	defer teardown()

	service := MapService{}

	room := &model.Room{
		FloorId:     "1",
		RoomName:    "Poli Umum",
		Coordinates: "12.5,0,34.2",
		RoomId:      "ROOM-42",
	}
	assert.NoError(t, service.AddRoom(room))

	rooms, err := service.GetRooms()
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, "Poli Umum", rooms[0].RoomName)

	got, err := service.GetRoom(room.IdMap)
	assert.NoError(t, err)
	assert.Equal(t, "ROOM-42", got.RoomId)

	assert.NoError(t, service.DelRoom(room.IdMap))
	rooms, _ = service.GetRooms()
	assert.Len(t, rooms, 0)
}

func TestAddRoomAssignsCodeWhenBlank(t *testing.T) {
	setup(t)
	defer teardown()

	service := MapService{}

	room := &model.Room{FloorId: "2", RoomName: "Apotek", Coordinates: "0,0,0"}
	assert.NoError(t, service.AddRoom(room))
	assert.NotEmpty(t, room.RoomId)

	got, err := service.GetRoomByCode(room.RoomId)
	assert.NoError(t, err)
	assert.Equal(t, "Apotek", got.RoomName)
}

func TestGetRoomByCode(t *testing.T) {
	setup(t)
	defer teardown()

	service := MapService{}

	assert.NoError(t, service.AddRoom(&model.Room{
		FloorId:     "3",
		RoomName:    "Radiologi",
		Coordinates: "1,2,3",
		RoomId:      "ROOM-7",
	}))

	room, err := service.GetRoomByCode("ROOM-7")
	assert.NoError(t, err)
	assert.Equal(t, "Radiologi", room.RoomName)

	_, err = service.GetRoomByCode("ROOM-404")
	assert.True(t, service.IsNotFound(err))
}

func TestUpdateRoomReplacesAllFields(t *testing.T) {
	setup(t)
	defer teardown()

	service := MapService{}

	target := &model.Room{FloorId: "1", RoomName: "Lab", Coordinates: "0,0,0", RoomId: "ROOM-1"}
	other := &model.Room{FloorId: "2", RoomName: "IGD", Coordinates: "9,9,9", RoomId: "ROOM-2"}
	assert.NoError(t, service.AddRoom(target))
	assert.NoError(t, service.AddRoom(other))

	assert.NoError(t, service.UpdateRoom(&model.Room{
		IdMap:       target.IdMap,
		FloorId:     "4",
		RoomName:    "Lab Baru",
		Coordinates: "5,5,5",
		RoomId:      "ROOM-9",
	}))

	updated, err := service.GetRoom(target.IdMap)
	assert.NoError(t, err)
	assert.Equal(t, "4", updated.FloorId)
	assert.Equal(t, "Lab Baru", updated.RoomName)
	assert.Equal(t, "5,5,5", updated.Coordinates)
	assert.Equal(t, "ROOM-9", updated.RoomId)

	// Other rows stay untouched
	untouched, err := service.GetRoom(other.IdMap)
	assert.NoError(t, err)
	assert.Equal(t, "IGD", untouched.RoomName)
	assert.Equal(t, "ROOM-2", untouched.RoomId)
}
