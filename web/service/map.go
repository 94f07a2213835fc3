package service

import (
	"inav-panel/database"
	"inav-panel/database/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MapService manages the rooms that make up the navigable map.
type MapService struct{}

func (s *MapService) GetRooms() ([]*model.Room, error) {
	db := database.GetDB()
	rooms := make([]*model.Room, 0)
	err := db.Model(model.Room{}).Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches a room by its primary key.
func (s *MapService) GetRoom(idMap int) (*model.Room, error) {
	db := database.GetDB()
	room := &model.Room{}
	err := db.Model(model.Room{}).
		Where("id_map = ?", idMap).
		First(room).
		Error
	if err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoomByCode fetches a room by its external room_id, the value encoded
// in the printed QR symbol.
func (s *MapService) GetRoomByCode(code string) (*model.Room, error) {
	db := database.GetDB()
	room := &model.Room{}
	err := db.Model(model.Room{}).
		Where("room_id = ?", code).
		First(room).
		Error
	if err != nil {
		return nil, err
	}
	return room, nil
}

// AddRoom creates a room. A blank room_id gets a generated one so every
// room has a scannable code.
func (s *MapService) AddRoom(room *model.Room) error {
	if room.RoomId == "" {
		room.RoomId = uuid.NewString()
	}
	db := database.GetDB()
	return db.Create(room).Error
}

// UpdateRoom replaces all mutable fields of the room matching room.IdMap.
func (s *MapService) UpdateRoom(room *model.Room) error {
	db := database.GetDB()
	return db.Model(model.Room{}).
		Where("id_map = ?", room.IdMap).
		Updates(map[string]any{
			"Floor_ID":    room.FloorId,
			"room_name":   room.RoomName,
			"coordinates": room.Coordinates,
			"room_id":     room.RoomId,
		}).Error
}

func (s *MapService) DelRoom(idMap int) error {
	db := database.GetDB()
	return db.Delete(&model.Room{}, idMap).Error
}

// IsNotFound reports whether the error is a missing-row lookup result.
func (s *MapService) IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
