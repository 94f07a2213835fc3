// Package entity defines response structures used by the web layer.
package entity

// Msg is the standard panel response for AJAX-style requests.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// ApiResponse is the envelope consumed by the navigation client.
type ApiResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ApiLoginResponse is the navigation client's login result. Username and Id
// are only present on success.
type ApiLoginResponse struct {
	Status   bool   `json:"status"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	Id       int    `json:"id,omitempty"`
}

// ScanResult is the location payload returned for a recognized QR code.
type ScanResult struct {
	RoomName    string `json:"room_name"`
	Coordinates string `json:"coordinates"`
	FloorId     string `json:"floor_id"`
}
