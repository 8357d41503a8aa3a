package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"foodgram/internal/domain"
	"foodgram/internal/pkg/imagestore"
	"foodgram/internal/pkg/pagination"
	"foodgram/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const avatarPrefix = "users"

type Service struct {
	users  UserRepository
	subs   SubscriptionReader
	images imagestore.Storage
}

func NewService(users UserRepository, subs SubscriptionReader, images imagestore.Storage) *Service {
	return &Service{users: users, subs: subs, images: images}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}
	exists, err = s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		Username:     username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, s.duplicateField(ctx, username)
		}
		return nil, err
	}
	return user, nil
}

// duplicateField tells which unique field a concurrent insert claimed first.
func (s *Service) duplicateField(ctx context.Context, username string) error {
	if taken, err := s.users.ExistsByUsername(ctx, username); err == nil && taken {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

// Get returns the user as seen by viewerID (0 for anonymous).
func (s *Service) Get(ctx context.Context, viewerID, id int64) (UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, ErrUserNotFound
		}
		return UserResponse{}, err
	}

	out, err := s.Present(ctx, viewerID, []domain.User{*user})
	if err != nil {
		return UserResponse{}, err
	}
	return out[0], nil
}

func (s *Service) List(ctx context.Context, viewerID int64, p pagination.Params) ([]UserResponse, int64, error) {
	list, total, err := s.users.List(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.Present(ctx, viewerID, list)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Present converts users to the public shape with is_subscribed resolved in
// one query.
func (s *Service) Present(ctx context.Context, viewerID int64, list []domain.User) ([]UserResponse, error) {
	ids := make([]int64, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	subscribed, err := s.subs.SubscribedTo(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = NewUserResponse(&list[i], subscribed[list[i].ID])
	}
	return out, nil
}

// SetAvatar stores a base64 image and returns its URL. The previous avatar
// file is removed.
func (s *Service) SetAvatar(ctx context.Context, userID int64, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrAvatarRequired
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return "", err
	}

	url, err := imagestore.SaveDataURI(ctx, s.images, avatarPrefix, raw)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateAvatar(ctx, userID, url); err != nil {
		_ = s.images.Delete(ctx, url)
		return "", err
	}
	s.removeImage(ctx, user.Avatar)
	return url, nil
}

func (s *Service) DeleteAvatar(ctx context.Context, userID int64) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.UpdateAvatar(ctx, userID, ""); err != nil {
		return err
	}
	s.removeImage(ctx, user.Avatar)
	return nil
}

func (s *Service) SetPassword(ctx context.Context, userID int64, req SetPasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// Delete removes the account and everything it owns.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.removeImage(ctx, user.Avatar)
	return nil
}

func (s *Service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := s.images.Delete(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to remove old image")
	}
}
