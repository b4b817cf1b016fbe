package entity

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// UserID is the backend's opaque user identifier. The services emit it as a
// JSON number; it is kept as text, the way it is persisted.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode user id")
		}
		*id = UserID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode user id")
	}
	*id = UserID(n.String())

	return nil
}

// Session is all-or-nothing: either every field describes a logged-in user or
// the zero value is used.
type Session struct {
	LoggedIn bool
	UserID   UserID
	Username string
}

// Identity is the marker persisted across restarts.
type Identity struct {
	UserID   UserID `json:"userId"`
	Username string `json:"username"`
}

// Credentials is the login and signup body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WhoAmI is the identity-check response of the auth service.
type WhoAmI struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   UserID `json:"user_id"`
	Username string `json:"username"`
}
