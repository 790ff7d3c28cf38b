package user

import (
	"context"
	"errors"
	"fmt"
	"restaurant-platform/internal/config"
	domainUser "restaurant-platform/internal/domain/user"
	"restaurant-platform/internal/logger"
	appErrors "restaurant-platform/pkg/errors"
	"restaurant-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mailer dispatches verification emails keyed by the generated code. Mail is
// a side effect; its failure never fails the operation that triggered it.
type Mailer interface {
	SendVerificationEmail(to, code string) error
}

// Service implements the account use cases: signup, login, profile and
// email verification.
type Service struct {
	userRepo         domainUser.Repository
	verificationRepo domainUser.VerificationRepository
	mailer           Mailer
	config           *config.Config
}

// NewService creates a new account service
func NewService(
	userRepo domainUser.Repository,
	verificationRepo domainUser.VerificationRepository,
	mailer Mailer,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo:         userRepo,
		verificationRepo: verificationRepo,
		mailer:           mailer,
		config:           cfg,
	}
}

func (s *Service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	role := domainUser.Role(req.Role)
	if !role.IsValid() {
		return nil, domainUser.ErrInvalidRole
	}

	// Check-then-act: the unique email index is the backstop for the race.
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		logger.Error("Failed to check existing user",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return nil, domainUser.ErrCreateAccountFailed
	}
	if existing != nil {
		logger.Warn("Signup attempt with existing email",
			zap.String("email", req.Email),
			zap.String("event", "signup_failed_duplicate_email"),
		)
		return nil, domainUser.ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, domainUser.ErrCreateAccountFailed
	}

	user := &domainUser.User{
		Email:          req.Email,
		PasswordHashed: hashedPassword,
		Role:           role,
		Verified:       false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrEmailTaken) {
			return nil, err
		}
		logger.Error("Failed to create user",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		return nil, domainUser.ErrCreateAccountFailed
	}

	verification := &domainUser.Verification{
		Code:   domainUser.NewCode(),
		UserID: user.ID,
	}
	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		logger.Error("Failed to create verification",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, domainUser.ErrCreateAccountFailed
	}

	s.dispatchVerificationMail(user, verification.Code)

	logger.Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
		zap.String("event", "account_created"),
	)

	return ToUserResponse(user), nil
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", req.Email),
				zap.String("event", "login_failed_user_not_found"),
			)
			return nil, domainUser.ErrUserNotFound
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, domainUser.ErrWrongPassword
	}

	token, err := utils.GenerateToken(
		user.ID,
		user.Email,
		string(user.Role),
		s.config.JWT.Secret,
		s.config.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{Token: token}, nil
}

func (s *Service) FindByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

func (s *Service) EditProfile(ctx context.Context, userID uuid.UUID, req *EditProfileRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	emailChanged := req.Email != nil && *req.Email != user.Email
	if emailChanged {
		user.Email = *req.Email
		// Trust in the prior address is gone; the account drops back to
		// unverified until the new address proves itself.
		user.Verified = false
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			logger.Error("Failed to hash password", zap.Error(err))
			return nil, domainUser.ErrEditProfileFailed
		}
		user.PasswordHashed = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrEmailTaken) {
			return nil, err
		}
		logger.Error("Failed to update profile",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, domainUser.ErrEditProfileFailed
	}

	if emailChanged {
		verification := &domainUser.Verification{
			Code:   domainUser.NewCode(),
			UserID: user.ID,
		}
		if err := s.verificationRepo.Create(ctx, verification); err != nil {
			logger.Error("Failed to rotate verification",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
			return nil, domainUser.ErrEditProfileFailed
		}

		s.dispatchVerificationMail(user, verification.Code)

		logger.Info("Email changed, verification reset",
			zap.String("user_id", user.ID.String()),
			zap.String("event", "email_changed"),
		)
	}

	return ToUserResponse(user), nil
}

func (s *Service) VerifyEmail(ctx context.Context, code string) error {
	verification, err := s.verificationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainUser.ErrVerificationNotFound) {
			logger.Warn("Verification attempt with unknown code",
				zap.String("event", "verify_failed_code_not_found"),
			)
		}
		return domainUser.ErrVerificationNotFound
	}

	user := verification.User
	if user == nil {
		return domainUser.ErrVerificationNotFound
	}

	user.Verified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	// Consuming the code removes the record so a replay hits the same
	// not-found outcome as a never-issued code.
	if err := s.verificationRepo.Delete(ctx, verification.ID); err != nil {
		return fmt.Errorf("failed to consume verification: %w", err)
	}

	logger.Info("Email verified",
		zap.String("user_id", user.ID.String()),
		zap.String("event", "email_verified"),
	)

	return nil
}

func (s *Service) dispatchVerificationMail(user *domainUser.User, code string) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.SendVerificationEmail(user.Email, code); err != nil {
		logger.Error("Failed to send verification email",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
			zap.Error(err),
		)
	}
}
