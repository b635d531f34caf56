package registration

import "context"

// UserStore persists registered users.
// Save returns false without an error when the store declines the record,
// for example on a duplicate national ID.
type UserStore interface {
	Save(ctx context.Context, record UserRecord) (bool, error)
	FindAll(ctx context.Context) ([]UserRecord, error)
}

// AlertPresenter shows a titled message and returns once it is dismissed.
type AlertPresenter interface {
	Show(ctx context.Context, title, message string) error
}

// Navigator moves the user to another screen.
type Navigator interface {
	GoTo(ctx context.Context, route string) error
}
