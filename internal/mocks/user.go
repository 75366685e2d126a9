package mocks

import (
	"context"

	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) (user.User, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return m.Called(ctx, userID, passwordHash).Error(0)
}

type RefreshTokenRepository struct{ mock.Mock }

func (m *RefreshTokenRepository) Create(ctx context.Context, subjectID string, subjectType auth.SubjectType, token string, expiresAt int64, session auth.SessionTrackingRequest) error {
	return m.Called(ctx, subjectID, subjectType, token, expiresAt, session).Error(0)
}

func (m *RefreshTokenRepository) Lookup(ctx context.Context, token string) (auth.RefreshTokenRecord, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(auth.RefreshTokenRecord), args.Error(1)
}

func (m *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
