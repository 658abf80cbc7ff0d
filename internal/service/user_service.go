package service

import (
	"context"

	"fasttweet/internal/models"
	"fasttweet/internal/policy"
	"fasttweet/internal/repository"
	"fasttweet/internal/validation"
)

// UserService provides user profile and account lifecycle logic.
type UserService struct {
	userRepo repository.UserRepository
	edges    repository.RelationshipRepository
}

// UpdateProfileInput carries the mutable profile fields. Empty strings
// leave the current value unchanged.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	BirthDate string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, edges repository.RelationshipRepository) *UserService {
	return &UserService{userRepo: userRepo, edges: edges}
}

// List returns all users in insertion order.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetByID returns the user with derived follow-graph counts attached.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withCounts(ctx, user)
}

// withCounts attaches the derived following/followers counts. The
// counts are never stored; they are computed from committed edges at
// call time.
func (s *UserService) withCounts(ctx context.Context, user *models.User) (*models.User, error) {
	following, err := s.edges.FollowingCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.edges.FollowersCount(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.FollowingCount = following
	user.FollowersCount = followers
	return user, nil
}

// UpdateProfile updates the target user's profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, actor *models.User, targetID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdateUser(actor, targetID) {
		return nil, models.NewForbiddenError("You are not allowed to update this user")
	}

	if in.FirstName != "" {
		if err := validation.ValidateName("first_name", in.FirstName); err != nil {
			return nil, models.NewInvalidOperationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("last_name", in.LastName); err != nil {
			return nil, models.NewInvalidOperationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if in.BirthDate != "" {
		bd, err := validation.ParseBirthDate(in.BirthDate)
		if err != nil {
			return nil, models.NewInvalidOperationError(err.Error())
		}
		user.BirthDate = bd
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.withCounts(ctx, user)
}

// Deactivate soft-deletes the target account. The row is retained and
// the user is excluded from authentication; there is no exposed
// reactivation. Deactivating an already-deactivated account is a no-op.
func (s *UserService) Deactivate(ctx context.Context, actor *models.User, targetID uint) error {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !policy.CanDeactivateUser(actor) {
		return models.NewForbiddenError("Only superusers can deactivate accounts")
	}
	if !user.IsActive() {
		return nil
	}

	user.Status = models.StatusDeactivated
	return s.userRepo.Update(ctx, user)
}
