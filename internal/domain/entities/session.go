package entities

import "time"

// Session records the most recent search context for one client. One
// record per session id; every search overwrites it and resets the TTL
// clock.
type Session struct {
	SessionID   string      `json:"session_id"`
	SearchInput SearchInput `json:"search_input"`
	Location    Location    `json:"user_location"`
	Timestamp   time.Time   `json:"timestamp"`
}

// SearchInput is the query half of a session record.
type SearchInput struct {
	MedicineName string `json:"medicine_name"`
}
