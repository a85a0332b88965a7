package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// identityService implements the IdentityUsecase interface. Credential
// hashing lives here, on the write path, never on the user record itself.
type identityService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account. The uniqueness check and the insert
// run in one transaction so a duplicate registration cannot slip between them.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	var registered *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		newUser := &entity.User{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: hash,
			Role:         entity.RoleCustomer,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("New user registered", slog.String("email", email))

	return &usecase.RegisterOutput{User: registered}, nil
}

// Login verifies the credentials and issues an access token carrying the
// user's ID and role. Lookup failure and password mismatch are deliberately
// indistinguishable to the caller.
func (srv *identityService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

// GetUser resolves a user by ID for ownership scoping.
func (srv *identityService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
