package service

import (
	"inav-panel/database"
	"inav-panel/database/model"
)

// NavService manages logged navigation requests. Records are append-only,
// there is no update path.
type NavService struct{}

func (s *NavService) GetRecords() ([]*model.NavRecord, error) {
	db := database.GetDB()
	records := make([]*model.NavRecord, 0)
	err := db.Model(model.NavRecord{}).Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *NavService) AddRecord(record *model.NavRecord) error {
	db := database.GetDB()
	return db.Create(record).Error
}

func (s *NavService) DelRecord(id int) error {
	db := database.GetDB()
	return db.Delete(&model.NavRecord{}, id).Error
}
