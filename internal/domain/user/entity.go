package user

// User represents a user record in the collection.
// Name is optional: an absent name is stored and serialized as null,
// never as an empty string.
type User struct {
	ID     int64   `json:"id"`     // ID is the unique, monotonically assigned identifier
	Name   *string `json:"name"`   // Name is the optional display name, at most 30 characters
	MSISDN string  `json:"msisdn"` // MSISDN is the unique 11-digit subscriber number
}

// Clone returns a deep copy of the user. The store hands out clones only, so
// callers can never mutate stored records through a returned value.
func (u User) Clone() User {
	c := u
	if u.Name != nil {
		name := *u.Name
		c.Name = &name
	}
	return c
}

// CloneAll returns a deep copy of a slice of users.
func CloneAll(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Clone()
	}
	return out
}
