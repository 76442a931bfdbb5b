package user

import "context"

// Usecase defines the interface for user business logic operations.
type Usecase interface {
	Reset(ctx context.Context) error
	ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error)
	GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error)
	CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error)
	DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error)
}
