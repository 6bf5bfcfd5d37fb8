package model

// Notification is the user-visible outcome of a dashboard action.
type Notification struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
