package auth

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"hotelreservation/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

// Service authenticates desk operators against one shared bcrypt hash.
type Service struct {
	passwordHash []byte
	tokens       TokenIssuer
	now          func() time.Time

	mu          sync.Mutex
	failed      int
	lockedUntil time.Time
}

func NewService(passwordHash string, tokens TokenIssuer) *Service {
	return &Service{
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
		tokens:       tokens,
		now:          time.Now,
	}
}

// Login checks the password and issues an operator token. Five wrong
// passwords in a row lock the desk login for lockoutDuration.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	operator := strings.TrimSpace(req.Operator)
	if operator == "" {
		return nil, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Before(s.lockedUntil) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		s.failed++
		log.Printf("operator_login_failed operator=%q attempts=%d", operator, s.failed)
		if s.failed >= maxFailedLoginAttempts {
			s.failed = 0
			s.lockedUntil = now.Add(lockoutDuration)
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}
	s.failed = 0

	token, err := s.tokens.GenerateToken(operator, jwt.RoleOperator)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Operator:  operator,
		Role:      jwt.RoleOperator,
		Token:     token,
		ExpiresIn: int64(s.tokens.TTL().Seconds()),
	}, nil
}

// HashPassword returns the bcrypt hash to put in OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
