package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	mockRepo "servicehub/internal/mocks/repository"
	"servicehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service:   NewUserService(txManager, userRepo, newDiscardLogger()),
		txManager: txManager,
		userRepo:  userRepo,
	}
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 3, FullName: "Old", Email: "old@example.com", Role: entity.RoleCustomer}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil)
		userRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID:         3,
		FullName:       "New Name",
		Email:          "new@example.com",
		Phone:          "555",
		DefaultAddress: "1 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "555", user.Phone)
	assert.Equal(t, "1 Main St", user.DefaultAddress)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3, Email: "me@example.com"}, nil)
		userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: 8}, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 3, FullName: "Me", Email: "taken@example.com"})

	requireAppError(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)

		userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{UserID: 99, FullName: "X", Email: "x@example.com"})

	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(ctx, int64(4)).Return(&entity.User{ID: 4}, nil)

		user, err := fx.service.DeleteUser(ctx, 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().Delete(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.DeleteUser(ctx, 4)

		requireAppError(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	users := []*entity.User{{ID: 1}, {ID: 2, Role: entity.RoleAdmin}}

	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
