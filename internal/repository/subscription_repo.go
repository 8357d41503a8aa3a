package repository

import (
	"context"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Add(ctx context.Context, subscriberID, authorID int64) error {
	sub := &domain.Subscription{SubscriberID: subscriberID, AuthorID: authorID}
	if err := r.db.WithContext(ctx).Omit("Subscriber", "Author").Create(sub).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *SubscriptionRepository) Remove(ctx context.Context, subscriberID, authorID int64) error {
	res := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&domain.Subscription{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotLinked
	}
	return nil
}

// SubscribedTo reports which of authorIDs the subscriber follows.
func (r *SubscriptionRepository) SubscribedTo(ctx context.Context, subscriberID int64, authorIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(authorIDs))
	if subscriberID == 0 || len(authorIDs) == 0 {
		return out, nil
	}

	var ids []int64
	if err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("subscriber_id = ? AND author_id IN ?", subscriberID, authorIDs).
		Pluck("author_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

// ListAuthors returns one page of the authors the subscriber follows, ordered
// by username, and the total count.
func (r *SubscriptionRepository) ListAuthors(ctx context.Context, subscriberID int64, limit, offset int) ([]domain.User, int64, error) {
	followed := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.User{}).
			Where("id IN (?)", r.db.Model(&domain.Subscription{}).Select("author_id").Where("subscriber_id = ?", subscriberID))
	}

	var total int64
	if err := followed().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []domain.User
	err := followed().
		Order("username ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&authors).Error
	return authors, total, err
}
