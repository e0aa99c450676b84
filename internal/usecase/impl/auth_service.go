// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"apparel/config"
	deliverycontext "apparel/internal/delivery/context"
	"apparel/internal/domain/entity"
	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/identifier"
	"apparel/internal/domain/repository"
	"apparel/internal/domain/service"
	"apparel/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Attribute keys carried by account events.
const (
	AttrOTP       = "otp"
	AttrEmail     = "email"
	AttrResetLink = "reset_link"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	secrets           service.SecretGenerator
	publisher         service.EventPublisher
	maxActiveSessions int
	otpTTL            time.Duration
	resetTTL          time.Duration
	frontendBaseURL   string
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Secrets          service.SecretGenerator
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		authRepo:         params.AuthRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		secrets:          params.Secrets,
		publisher:        params.Publisher,
		otpTTL:           entity.OTPTTL,
		resetTTL:         time.Hour,
		logger:           params.Logger,
		now:              time.Now,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.Auth != nil {
			srv.maxActiveSessions = cfg.Auth.MaxActiveSessions
			if cfg.Auth.OTPTTL > 0 {
				srv.otpTTL = cfg.Auth.OTPTTL
			}
			if cfg.Auth.PasswordResetTTL > 0 {
				srv.resetTTL = cfg.Auth.PasswordResetTTL
			}
		}
		if cfg.Frontend != nil {
			srv.frontendBaseURL = strings.TrimRight(cfg.Frontend.BaseURL, "/")
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive customer account and mails it a one-time password.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if !input.Consent {
		return nil, domainerrors.ErrConsentRequired
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}

	// Hash outside the transaction, bcrypt is CPU-bound.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	otp, err := srv.secrets.NewOTP(entity.OTPLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp")
	}

	user := &entity.User{
		Username: strings.TrimSpace(input.Username),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Role:     entity.RoleUser,
		Consent:  true,
	}
	user.IssueOTP(otp, srv.now(), srv.otpTTL)

	if err := srv.createAccount(ctx, user, passwordHash); err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.publishOTP(ctx, user, otp)
	srv.log(ctx).Info("User registered", slog.String("code", user.Code))

	return &usecase.RegisterOutput{User: user}, nil
}

// CreateAdmin opens an active admin account without e-mail verification.
func (srv *authService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || strings.TrimSpace(input.Username) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and email are required")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	user := &entity.User{
		Username: strings.TrimSpace(input.Username),
		Email:    email,
		Role:     entity.RoleAdmin,
		Consent:  true,
		IsActive: true,
	}
	if err := srv.createAccount(ctx, user, passwordHash); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin created", slog.String("code", user.Code))

	return user, nil
}

// createAccount assigns the user code and stores the user with its credential.
func (srv *authService) createAccount(ctx context.Context, user *entity.User, passwordHash string) error {
	return executeWithIdentifierRetry(ctx, srv.txManager, srv.log(ctx), func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByEmail(ctx, user.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		code, err := repoFactory.NewIdentifierRepository().Allocate(ctx, identifier.PrefixUser)
		if err != nil {
			return errors.Wrap(err, "failed to allocate user code")
		}
		user.Code = code

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return err
		}

		return errors.Wrap(repoFactory.NewAuthRepository().CreateCredential(ctx, &entity.Credential{
			UserID:       user.ID,
			PasswordHash: passwordHash,
		}), "failed to create credential")
	})
}

// ResendOTP issues a fresh one-time password to an account that is not verified yet.
func (srv *authService) ResendOTP(ctx context.Context, email string) error {
	user, err := srv.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsActive {
		return domainerrors.ErrUserAlreadyActive
	}

	otp, err := srv.secrets.NewOTP(entity.OTPLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}
	user.IssueOTP(otp, srv.now(), srv.otpTTL)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	srv.publishOTP(ctx, user, otp)

	return nil
}

// VerifyOTP activates the account when otp matches and has not expired.
func (srv *authService) VerifyOTP(ctx context.Context, email, otp string) (*entity.User, error) {
	user, err := srv.findUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.IsActive {
		return nil, domainerrors.ErrUserAlreadyActive
	}
	if !user.VerifyOTP(strings.TrimSpace(otp), srv.now()) {
		srv.log(ctx).Warn("OTP verification failed", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrOTPInvalid
	}

	user.Activate()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to activate user")
	}

	srv.log(ctx).Info("User verified", slog.String("code", user.Code))

	return user, nil
}

// Login checks the password of an active account and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	credential, err := srv.authRepo.FindCredentialByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))
		publishEvent(ctx, srv.publisher, srv.log(ctx), entity.NewEvent(entity.EventLoginFailed, user.ID, srv.now()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.Claims())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, user.ID, refreshToken); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), entity.NewEvent(entity.EventLogin, user.ID, srv.now()))
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// persistRefreshToken stores the session. With a session limit the count and
// insert share one transaction.
func (srv *authService) persistRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		return srv.refreshTokenRepo.CreateRefreshToken(ctx, token)
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		active, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			return domainerrors.ErrSessionLimitExceeded
		}

		return refreshRepo.CreateRefreshToken(ctx, token)
	})
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, translateUserError(err)
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Role.Claims())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the session of the presented refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		// An expired token still names a session worth deleting.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	if claims != nil && claims.UserID != uuid.Nil {
		publishEvent(ctx, srv.publisher, srv.log(ctx), entity.NewEvent(entity.EventLogout, claims.UserID, srv.now()))
	}

	return nil
}

// RequestPasswordReset mails a single-use reset link. Unknown addresses are
// ignored so the endpoint does not reveal which e-mails are registered.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	token, err := srv.secrets.NewToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	if err := srv.authRepo.CreatePasswordResetToken(ctx, &entity.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(token),
		ExpiresAt: srv.now().Add(srv.resetTTL),
	}); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	event := entity.NewEvent(entity.EventPasswordReset, user.ID, srv.now())
	event.Attributes = map[string]string{
		AttrEmail:     user.Email,
		AttrResetLink: fmt.Sprintf("%s/forgot/%s/%s", srv.frontendBaseURL, user.ID, token),
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), event)

	return nil
}

// ConfirmPasswordReset redeems a reset token: the password is replaced, the
// account is activated and every session is ended.
func (srv *authService) ConfirmPasswordReset(ctx context.Context, input *usecase.PasswordResetInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	tokenHash := srv.tokenService.HashToken(input.Token)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()

		token, err := authRepo.FindPasswordResetToken(ctx, input.UserID, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrResetTokenNotFound) {
				return domainerrors.ErrResetTokenInvalid
			}

			return errors.Wrap(err, "failed to find reset token")
		}
		if !token.IsUsable(srv.now()) {
			return domainerrors.ErrResetTokenInvalid
		}

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return translateUserError(err)
		}

		if err := authRepo.UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}
		if err := authRepo.MarkPasswordResetTokenUsed(ctx, token.ID); err != nil {
			return errors.Wrap(err, "failed to redeem reset token")
		}

		if !user.IsActive {
			user.Activate()
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to activate user")
			}
		}

		return repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, user.ID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to reset password")
	}

	return nil
}

// ChangePassword replaces the password after checking the current one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.ErrPasswordMismatch
	}

	credential, err := srv.authRepo.FindCredentialByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find credential")
	}
	if !srv.hasher.Check(input.OldPassword, credential.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password is incorrect")
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	if err := srv.authRepo.UpdatePasswordHash(ctx, userID, passwordHash); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

func (srv *authService) publishOTP(ctx context.Context, user *entity.User, otp string) {
	event := entity.NewEvent(entity.EventOTPIssued, user.ID, srv.now())
	event.Attributes = map[string]string{
		AttrOTP:   otp,
		AttrEmail: user.Email,
	}
	publishEvent(ctx, srv.publisher, srv.log(ctx), event)
}

func (srv *authService) findUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func translateUserError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "user repository error")
}
