package service

import (
	"errors"
	"sync"
	"time"

	"go-hardware-demo/internal/ws"
	"go-hardware-demo/pkg/jwt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const OperatorName = "operator"

var (
	ErrInvalidCredentials = errors.New("invalid operator password")
	ErrAuthDisabled       = errors.New("operator authentication is disabled")
	ErrSessionExpired     = errors.New("session expired (logged in on another device)")
)

type AuthService interface {
	Enabled() bool
	Login(password string) (*LoginResponse, error)
	ValidateToken(tokenString string) (*TokenValidationResponse, error)
	Heartbeat(operator string)
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Operator  string    `json:"operator"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type TokenValidationResponse struct {
	Operator  string    `json:"operator"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// authService guards the shop with a single operator password. Each login
// mints a new token version so only the latest session stays valid.
type authService struct {
	hash   []byte
	issuer *jwt.Issuer
	hub    Broadcaster
	log    *zap.Logger

	mu           sync.RWMutex
	tokenVersion string
}

// NewAuthService hashes password once at startup. An empty password turns
// authentication off.
func NewAuthService(password string, issuer *jwt.Issuer, hub Broadcaster, log *zap.Logger) (AuthService, error) {
	s := &authService{issuer: issuer, hub: hub, log: log}
	if password == "" {
		log.Warn("no operator password configured, API is open")
		return s, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	s.hash = hash
	return s, nil
}

func (s *authService) Enabled() bool {
	return s.hash != nil
}

func (s *authService) Login(password string) (*LoginResponse, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// Single session: a new token version invalidates earlier tokens
	version := uuid.NewString()
	token, expiresAt, err := s.issuer.GenerateToken(OperatorName, version)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	s.mu.Lock()
	s.tokenVersion = version
	s.mu.Unlock()

	s.log.Info("operator logged in")
	return &LoginResponse{Token: token, Operator: OperatorName, ExpiresAt: expiresAt}, nil
}

func (s *authService) ValidateToken(tokenString string) (*TokenValidationResponse, error) {
	claims, err := s.issuer.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	current := s.tokenVersion
	s.mu.RUnlock()
	if claims.TokenVersion != current {
		return nil, ErrSessionExpired
	}

	return &TokenValidationResponse{Operator: claims.Operator, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Heartbeat tells connected screens the operator is still active.
func (s *authService) Heartbeat(operator string) {
	s.hub.Publish(ws.Event{
		Type:    "operator_status_update",
		Action:  "heartbeat",
		Data:    map[string]interface{}{"operator": operator, "status": "online", "last_seen_at": time.Now().UTC()},
		Message: operator + " is online",
	})
}
