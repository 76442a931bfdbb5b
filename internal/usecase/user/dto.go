package user

// User represents a user DTO (Data Transfer Object) for API responses.
// Name stays a pointer so an absent name serializes as null, not "".
type User struct {
	ID     int64
	Name   *string
	MSISDN string
}

// ListUsersRequest carries the raw query-string pagination values. Parsing
// happens in the domain layer so the parse-failure policy lives in one place.
// The presence flags keep an absent parameter distinguishable from a
// present-but-empty one, which is a validation error.
type ListUsersRequest struct {
	Offset    string
	Count     string
	HasOffset bool
	HasCount  bool
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users []User
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// GetUserResponse represents the response payload for user details.
type GetUserResponse struct {
	User User
}

// CreateUserRequest carries the decoded JSON body as a closed-shape mapping.
// Keeping the raw mapping lets the usecase reject unknown fields and tell a
// missing msisdn apart from a malformed one.
type CreateUserRequest struct {
	Fields map[string]any
}

// CreateUserResponse represents the created record.
type CreateUserResponse struct {
	User User
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// DeleteUserResponse carries the human-readable confirmation message.
type DeleteUserResponse struct {
	Message string
}
