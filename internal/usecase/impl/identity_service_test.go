package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestIdentityService_Register_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "  Shopper@Example.COM ",
		Password: "secret1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "shopper@example.com").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "shopper@example.com", user.Email)
					assert.Equal(t, "hashed_password", user.PasswordHash)
					assert.Equal(t, entity.RoleCustomer, user.Role)
					assert.NotEqual(t, uuid.Nil, user.ID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", output.User.Email)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
}

func TestIdentityService_Register_ShortPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	// No hasher or transaction expectations: the guard fires first.
	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "shopper@example.com",
		Password: "12345",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestIdentityService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "shopper@example.com",
		Password: "secret1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "shopper@example.com").
				Return(&entity.User{ID: uuid.New(), Email: "shopper@example.com"}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestIdentityService_Register_HashFailure(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("entropy exhausted"))

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "shopper@example.com",
		Password: "secret1",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestIdentityService_Login_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "shopper@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "shopper@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check("secret1", "hashed_password").Return(true)

	fx.tokenService.EXPECT().
		GenerateToken(userID, entity.RoleCustomer).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    " Shopper@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestIdentityService_Login_WrongPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "shopper@example.com").
		Return(user, nil)

	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "shopper@example.com",
		Password: "wrong",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityService_GetUser_NotFound(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
