package subscription

import "errors"

var (
	ErrSelfSubscription  = errors.New("you cannot subscribe to yourself")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrAlreadySubscribed = errors.New("you are already subscribed to this author")
	ErrNotSubscribed     = errors.New("you are not subscribed to this author")
)
