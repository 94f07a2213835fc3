package service

import (
	"testing"

	"inav-panel/database/model"

	"github.com/stretchr/testify/assert"
)

func TestNavServiceCrud(t *testing.T) {
	setup(t)
	defer teardown()

	service := NavService{}

	assert.NoError(t, service.AddRecord(&model.NavRecord{
		StartingPosition: "Lobby",
		Target:           "Poli Umum",
		History:          "Lobby>Koridor A>Poli Umum",
	}))
	assert.NoError(t, service.AddRecord(&model.NavRecord{
		StartingPosition: "IGD",
		Target:           "Apotek",
	}))

	records, err := service.GetRecords()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.NoError(t, service.DelRecord(records[0].Id))
	records, _ = service.GetRecords()
	assert.Len(t, records, 1)
	assert.Equal(t, "IGD", records[0].StartingPosition)
}
