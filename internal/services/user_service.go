package services

import (
	"errors"

	"quickcart/internal/models"
	"quickcart/internal/store"

	"github.com/rs/zerolog"
)

var (
	ErrUserExists         = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	store  *store.Store
	logger zerolog.Logger
}

func NewUserService(st *store.Store, logger zerolog.Logger) *UserService {
	return &UserService{
		store:  st,
		logger: logger,
	}
}

// Register creates a new account. Unknown or admin roles fall back to
// customer; the admin account is seeded, never self-registered.
func (s *UserService) Register(username, password, role, name string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	parsed, err := models.ParseUserRole(role)
	if err != nil || parsed == models.RoleAdmin {
		parsed = models.RoleCustomer
	}

	if s.store.GetUser(username) != nil {
		return nil, ErrUserExists
	}

	user := models.NewUser(username, password, parsed, name)
	s.store.PutUser(user)

	s.logger.Info().Str("username", username).Str("role", string(parsed)).Msg("User registered")
	return user, nil
}

// Authenticate checks the password by plain comparison; stronger credential
// handling is out of scope for a local single-user tool.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user := s.store.GetUser(username)
	if user == nil || user.Password != password {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	s.logger.Info().Str("username", username).Str("role", string(user.Role)).Msg("User authenticated")
	return user, nil
}

// SeedAdmin ensures the configured administrator account exists.
func (s *UserService) SeedAdmin(username, password string) *models.User {
	if existing := s.store.GetUser(username); existing != nil {
		return existing
	}

	admin := models.NewUser(username, password, models.RoleAdmin, "Administrator")
	s.store.PutUser(admin)

	s.logger.Info().Str("username", username).Msg("Seeded admin account")
	return admin
}

// GetUser returns the user or nil when absent.
func (s *UserService) GetUser(username string) *models.User {
	return s.store.GetUser(username)
}
