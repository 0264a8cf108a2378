package domain

// Profile is the locally stored identity of the session owner.
// It is written by the login surface (out of scope here) and read
// back at bootstrap. Validation happens on the read path because the
// store is a trust boundary shared with older client versions.
type Profile struct {
	UserID UserID `json:"userId" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

func (p Profile) User() User {
	return User{ID: p.UserID, Name: p.Name}
}
