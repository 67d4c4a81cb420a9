package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/cashwallet/cashwallet/internal/storage"
	"github.com/cashwallet/cashwallet/internal/user"
	"github.com/cashwallet/cashwallet/internal/wallet"
)

// Fixed bootstrap admin credentials created by /init-admin.
const (
	AdminEmail    = "admin@cashwallet.com"
	AdminPassword = "admin123"
	adminName     = "Admin"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnsupportedLanguage rejects language tags outside the accepted set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Service handles registration, login and the admin bootstrap.
type Service struct {
	users   user.Repository
	wallets *wallet.Service
	hasher  Hasher
	tokens  *TokenService
}

// NewService builds an auth service instance.
func NewService(users user.Repository, wallets *wallet.Service, hasher Hasher, tokens *TokenService) *Service {
	return &Service{users: users, wallets: wallets, hasher: hasher, tokens: tokens}
}

// RegisterInput captures the data required to open an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Language string
}

// Register creates a user with the user role, provisions its four wallets and
// issues a token. The user insert and the wallet inserts are not atomic; a
// crash between them leaves a partially provisioned account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (user.User, string, error) {
	language := input.Language
	switch language {
	case "":
		language = user.LanguageArabic
	case user.LanguageArabic, user.LanguageEnglish:
	default:
		return user.User{}, "", ErrUnsupportedLanguage
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, "", err
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		Role:         user.RoleUser,
		Language:     language,
		CreatedAt:    storage.Now(),
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, "", err
	}

	if _, err := s.wallets.CreateForUser(ctx, u.ID); err != nil {
		return user.User{}, "", err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (user.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return user.User{}, "", err
	}

	return u, token, nil
}

// EnsureAdmin creates the fixed-credential admin account if no admin exists.
// It reports whether an account was created. Admin accounts get no wallets.
func (s *Service) EnsureAdmin(ctx context.Context) (bool, error) {
	exists, err := s.users.HasAdmin(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hash, err := s.hasher.Hash(AdminPassword)
	if err != nil {
		return false, err
	}

	admin := user.User{
		ID:           uuid.NewString(),
		Email:        AdminEmail,
		Name:         adminName,
		Role:         user.RoleAdmin,
		Language:     user.LanguageArabic,
		CreatedAt:    storage.Now(),
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
