package user

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	domain "qatest-api/internal/domain/user"
	apperrors "qatest-api/pkg/errors"
)

// Repository defines the interface for user data access operations. The
// canonical implementation is the in-memory store; a caching wrapper can be
// layered on top without the usecase noticing.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)     // Assign id, enforce uniqueness, append
	GetByID(ctx context.Context, id int64) (*domain.User, error)          // Retrieve user by id
	GetByMSISDN(ctx context.Context, msisdn string) (*domain.User, error) // Retrieve user by msisdn, nil when absent
	Delete(ctx context.Context, id int64) error                           // Remove user by id
	List(ctx context.Context) ([]domain.User, error)                      // Snapshot of the whole collection
	Reset(ctx context.Context) error                                      // Replace collection with seed copies
}

// allowedFields is the closed shape of a create body. Anything else is
// rejected by name before semantic validation runs.
var allowedFields = map[string]bool{
	"name":   true,
	"msisdn": true,
}

// usecase implements the business logic for the users resource.
type usecase struct {
	repo Repository
	log  *zap.Logger
}

// New creates a new Usecase backed by the provided repository.
func New(r Repository, log *zap.Logger) Usecase {
	return &usecase{repo: r, log: log}
}

// Reset replaces the collection with fresh seed copies. Always succeeds.
func (uc *usecase) Reset(ctx context.Context) error {
	uc.log.Info("resetting collection to seed")
	return uc.repo.Reset(ctx)
}

// ListUsers parses the raw pagination parameters and applies the pagination
// engine to a snapshot of the collection.
func (uc *usecase) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	params, err := domain.ParseListParams(in.Offset, in.Count, in.HasOffset, in.HasCount)
	if err != nil {
		uc.log.Warn("invalid pagination parameters",
			zap.String("offset", in.Offset), zap.String("count", in.Count))
		return nil, err
	}

	snapshot, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	page := domain.Paginate(snapshot, params)

	users := make([]User, len(page))
	for i, du := range page {
		users[i] = toDTO(du)
	}

	return &ListUsersResponse{Users: users}, nil
}

// GetUser retrieves a user by exact id match.
func (uc *usecase) GetUser(ctx context.Context, in GetUserRequest) (*GetUserResponse, error) {
	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		uc.log.Warn("get user failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &GetUserResponse{User: toDTO(*u)}, nil
}

// CreateUser validates the closed-shape body and appends a new user. Check
// order is part of the contract: unknown fields, required msisdn, msisdn
// format, msisdn uniqueness, then name.
func (uc *usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*CreateUserResponse, error) {
	if err := rejectUnknownFields(in.Fields); err != nil {
		uc.log.Warn("create user rejected", zap.Error(err))
		return nil, err
	}

	rawMSISDN, ok := in.Fields["msisdn"]
	if !ok {
		uc.log.Warn("create user rejected", zap.String("reason", "msisdn missing"))
		return nil, apperrors.NewValidationError("msisdn", "Missing required field: msisdn")
	}

	msisdn, err := domain.ValidateMSISDN(rawMSISDN)
	if err != nil {
		uc.log.Warn("create user rejected", zap.Error(err))
		return nil, err
	}

	existing, err := uc.repo.GetByMSISDN(ctx, msisdn)
	if err != nil {
		uc.log.Error("failed to check msisdn uniqueness", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate msisdn uniqueness", err)
	}
	if existing != nil {
		uc.log.Warn("msisdn already exists", zap.String("msisdn", msisdn))
		return nil, apperrors.NewConflictError("user",
			fmt.Sprintf("User with msisdn %s already exists", msisdn))
	}

	name, err := domain.ValidateName(in.Fields["name"])
	if err != nil {
		uc.log.Warn("create user rejected", zap.Error(err))
		return nil, err
	}

	// The store re-checks uniqueness and assigns the id under its own lock,
	// so two concurrent creates with the same msisdn cannot both pass the
	// check above.
	created, err := uc.repo.Create(ctx, &domain.User{Name: name, MSISDN: msisdn})
	if err != nil {
		uc.log.Warn("create user failed", zap.Error(err))
		return nil, err
	}

	uc.log.Info("user created", zap.Int64("id", created.ID), zap.String("msisdn", created.MSISDN))
	return &CreateUserResponse{User: toDTO(*created)}, nil
}

// DeleteUser removes a user by id and returns a confirmation message.
func (uc *usecase) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Warn("delete user failed", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	uc.log.Info("user deleted", zap.Int64("id", in.ID))
	return &DeleteUserResponse{
		Message: fmt.Sprintf("User with id %d deleted successfully", in.ID),
	}, nil
}

// rejectUnknownFields enforces the closed body shape, naming every unexpected
// field in sorted order.
func rejectUnknownFields(fields map[string]any) error {
	var unknown []string
	for k := range fields {
		if !allowedFields[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	sort.Strings(unknown)
	return apperrors.NewValidationError("",
		fmt.Sprintf("Extra fields not allowed: %s", strings.Join(unknown, ", ")))
}

func toDTO(u domain.User) User {
	dto := User{ID: u.ID, MSISDN: u.MSISDN}
	if u.Name != nil {
		name := *u.Name
		dto.Name = &name
	}
	return dto
}
