package registration_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/registro/internal/registration"
)

// MockUserStore is a mock implementation of registration.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Save(ctx context.Context, record registration.UserRecord) (bool, error) {
	args := m.Called(ctx, record)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) FindAll(ctx context.Context) ([]registration.UserRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registration.UserRecord), args.Error(1)
}

// MockAlertPresenter is a mock implementation of registration.AlertPresenter.
type MockAlertPresenter struct {
	mock.Mock
}

func (m *MockAlertPresenter) Show(ctx context.Context, title, message string) error {
	args := m.Called(ctx, title, message)
	return args.Error(0)
}

// MockNavigator is a mock implementation of registration.Navigator.
type MockNavigator struct {
	mock.Mock
}

func (m *MockNavigator) GoTo(ctx context.Context, route string) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}
