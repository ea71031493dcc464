package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tasklight/internal/db"
	"tasklight/internal/models"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 6
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthService validates credentials against the user store. Identity is the
// stored user id; no session or token is issued.
type AuthService struct {
	users db.UserRepositoryInterface
}

func NewAuthService(users db.UserRepositoryInterface) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	// limits are in characters, not bytes
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, fmt.Errorf("%w: username must be 3-30 characters", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	// Pre-check so the conflict message can name the colliding field; the
	// unique indexes still backstop concurrent signups.
	existing, err := s.users.FindTaken(ctx, username, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Signup: lookup failed for %s: %v", username, err)
		return nil, ErrInternal
	}
	if existing != nil {
		if strings.EqualFold(existing.Username, username) {
			return nil, fmt.Errorf("username %w", ErrConflict)
		}
		return nil, fmt.Errorf("email %w", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Signup: cannot hash password: %v", err)
		return nil, ErrInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if db.IsDuplicate(err) {
			return nil, fmt.Errorf("username or email %w", ErrConflict)
		}
		log.Printf("Signup: cannot save user %s: %v", username, err)
		return nil, ErrInternal
	}

	log.Printf("User registered: %s", user.Username)
	return user, nil
}

// Login matches the input against username or email (case-insensitive).
// Unknown user and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("Login: lookup failed for %s: %v", login, err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login: invalid password for %s", login)
		return nil, ErrInvalidCredentials
	}

	log.Printf("User logged in: %s", user.Username)
	return user, nil
}
