package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// authService implements ports.AuthService with demo semantics: login
// accepts any credentials, sessions are real JWTs.
type authService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	hasher ports.HashService
	log    zerolog.Logger
}

// NewAuthService creates the authentication service.
func NewAuthService(users ports.UserRepository, tokens ports.TokenService, hasher ports.HashService, log zerolog.Logger) ports.AuthService {
	return &authService{users: users, tokens: tokens, hasher: hasher, log: log}
}

func displayNameFromEmail(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return "User"
}

func avatarFor(seed string) string {
	return fmt.Sprintf("https://api.dicebear.com/7.x/identicon/svg?seed=%s", seed)
}

func (s *authService) session(user domain.User) (*ports.Session, error) {
	access, expiresIn, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, _, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &ports.Session{
		User: user,
		Tokens: ports.Tokens{
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    expiresIn,
		},
	}, nil
}

// Login authenticates by email. Unknown emails get an on-the-fly account;
// passwords are never verified.
func (s *authService) Login(email, password string) (*ports.Session, error) {
	if email == "" || password == "" {
		fields := make([]string, 0, 2)
		if email == "" {
			fields = append(fields, "email")
		}
		if password == "" {
			fields = append(fields, "password")
		}
		return nil, apperror.MissingFields(fields)
	}
	if !emailPattern.MatchString(email) {
		return nil, apperror.Validation("Invalid email format")
	}

	user := s.users.FindByEmail(email)
	if user == nil {
		now := time.Now().UTC()
		created := domain.User{
			ID:          domain.NewID("user"),
			Email:       email,
			DisplayName: displayNameFromEmail(email),
			AvatarURL:   avatarFor(email),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		s.users.Create(created)
		user = &created
		s.log.Info().Str("email", email).Msg("created account on first login")
	}

	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return s.session(*user)
}

// Register creates an account, rejecting duplicates. The password is hashed
// and stored but never checked afterwards.
func (s *authService) Register(params ports.RegisterParams) (*ports.Session, error) {
	var missing []string
	if params.Email == "" {
		missing = append(missing, "email")
	}
	if params.Password == "" {
		missing = append(missing, "password")
	}
	if params.ConfirmPassword == "" {
		missing = append(missing, "confirmPassword")
	}
	if len(missing) > 0 {
		return nil, apperror.MissingFields(missing)
	}

	if !emailPattern.MatchString(params.Email) {
		return nil, apperror.Validation("Invalid email format")
	}
	if len(params.Password) < minPasswordLength {
		return nil, apperror.Validation("Password must be at least 6 characters")
	}
	if params.Password != params.ConfirmPassword {
		return nil, apperror.Validation("Passwords do not match")
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           domain.NewID("user"),
		Email:        params.Email,
		DisplayName:  displayNameFromEmail(params.Email),
		AvatarURL:    avatarFor(params.Email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if !s.users.Create(user) {
		return nil, apperror.Conflict("Email already registered")
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("registration successful")
	return s.session(user)
}

// Me returns the account for an authenticated user id.
func (s *authService) Me(userID string) (*domain.User, error) {
	user := s.users.FindByID(userID)
	if user == nil {
		return nil, apperror.NotFound("User")
	}
	return user, nil
}
