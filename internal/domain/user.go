package domain

import "time"

// DefaultAvatarURL is rendered for users that never uploaded an avatar.
const DefaultAvatarURL = "/media/users/default_avatar.jpg"

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:254;not null;uniqueIndex"`
	Username     string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	FirstName    string    `json:"first_name" gorm:"size:150;not null"`
	LastName     string    `json:"last_name" gorm:"size:150;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Avatar       string    `json:"avatar,omitempty" gorm:"size:512"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// AvatarURL returns the stored avatar or the placeholder.
func (u *User) AvatarURL() string {
	if u.Avatar == "" {
		return DefaultAvatarURL
	}
	return u.Avatar
}
