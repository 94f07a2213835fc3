package model

// Admin is a dashboard operator. Passwords are stored as bcrypt digests.
type Admin struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" form:"username" gorm:"unique"`
	Password string `json:"password" form:"password"`
}

func (Admin) TableName() string {
	return "admin"
}

// User is an end user of the navigation client. Passwords are stored as
// bcrypt digests.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" form:"username"`
	Password     string `json:"password" form:"password"`
	Gmail        string `json:"gmail" form:"gmail"`
	MobileNumber string `json:"mobile_number" form:"mobile_number" gorm:"column:mobile_number"`
	BpjsNumber   string `json:"BPJS_number" form:"BPJS_number" gorm:"column:BPJS_number"`
}

func (User) TableName() string {
	return "user"
}

// Room is a navigable location on a floor. RoomId is the external lookup
// key encoded in the printed QR symbol, distinct from the IdMap primary key.
// Coordinates is an opaque serialized position consumed by the client.
type Room struct {
	IdMap       int    `json:"id_map" form:"id_map" gorm:"column:id_map;primaryKey;autoIncrement"`
	FloorId     string `json:"Floor_ID" form:"Floor_ID" gorm:"column:Floor_ID"`
	RoomName    string `json:"room_name" form:"room_name" gorm:"column:room_name"`
	Coordinates string `json:"coordinates" form:"coordinates"`
	RoomId      string `json:"room_id" form:"room_id" gorm:"column:room_id"`
}

func (Room) TableName() string {
	return "map"
}

// NavRecord is a logged navigation request from the client.
type NavRecord struct {
	Id               int    `json:"id" gorm:"primaryKey;autoIncrement"`
	StartingPosition string `json:"starting_position" form:"starting_position" gorm:"column:starting_position"`
	Target           string `json:"target" form:"target"`
	History          string `json:"history" form:"history"`
}

func (NavRecord) TableName() string {
	return "inav"
}

// Setting is a key/value row for runtime panel settings.
type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
