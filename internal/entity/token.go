package entity

import "time"

// APIToken is an opaque credential authorizing mutating requests.
// The key is presented as "Authorization: Token <key>".
type APIToken struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
