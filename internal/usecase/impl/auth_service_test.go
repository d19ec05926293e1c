package impl

import (
	"context"
	"testing"
	"time"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	mockRepo "servicehub/internal/mocks/repository"
	mockSvc "servicehub/internal/mocks/service"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		cartRepo := mockRepo.NewMockCartRepository(t)

		factory.EXPECT().UserRepo().Return(userRepo)
		factory.EXPECT().CartRepo().Return(cartRepo)

		userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = 7 }).
			Return(nil)
		cartRepo.EXPECT().GetOrCreate(ctx, int64(7)).Return(&entity.Cart{ID: 1, UserID: 7}, nil)
	})

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		FullName: " Ann ",
		Email:    "Ann@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "Ann", user.FullName)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByEmail(ctx, "ann@example.com").Return(&entity.User{ID: 3}, nil)
	})

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		FullName: "Ann",
		Email:    "ann@example.com",
		Password: "secret1",
	})

	requireAppError(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("abc").
		Return(domainerrors.ErrPasswordTooShort.WithDetails("at least 6 characters"))

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		FullName: "Ann",
		Email:    "ann@example.com",
		Password: "abc",
	})

	requireAppError(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "ann@example.com", Password: "secret1"})

	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: 5, Email: "bob@example.com", PasswordHash: "hash", Role: entity.RoleAdmin}
	expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("pw", "hash").Return(true)
		fx.tokenService.EXPECT().GenerateAccessToken(stored).Return("token", expiry, nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "token", out.AccessToken)
		assert.Equal(t, expiry, out.ExpiresAt)
		assert.Same(t, stored, out.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("bad", "hash").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "bad"})

		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_IdentifyByToken(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: 9}

		fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 9}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(user, nil)

		got, err := fx.service.IdentifyByToken(ctx, "good")

		require.NoError(t, err)
		assert.Same(t, user, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.IdentifyByToken(ctx, "bad")

		requireAppError(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("user deleted", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("stale").Return(&service.Claims{UserID: 4}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, int64(4)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.IdentifyByToken(ctx, "stale")

		requireAppError(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_IdentifyByEmail(t *testing.T) {
	ctx := context.Background()
	fx := createTestAuthService(t)
	user := &entity.User{ID: 2, Email: "eve@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "eve@example.com").Return(user, nil)

	got, err := fx.service.IdentifyByEmail(ctx, " EVE@example.com ")
	require.NoError(t, err)
	assert.Same(t, user, got)

	_, err = fx.service.IdentifyByEmail(ctx, "")
	requireAppError(t, err, domainerrors.ErrUnauthorized)
}
