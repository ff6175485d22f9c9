package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// Service is the session/auth gate: it validates credentials through the
// injected verifier, mints session tokens and keeps the persisted session
// copy that survives restarts.
type Service struct {
	verifier interfaces.CredentialVerifier
	store    interfaces.KVStore
	logger   logger.Logger
	secret   []byte
}

func NewService(verifier interfaces.CredentialVerifier, store interfaces.KVStore, logger logger.Logger, tokenSecret string) *Service {
	return &Service{
		verifier: verifier,
		store:    store,
		logger:   logger,
		secret:   []byte(tokenSecret),
	}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.Session, error) {
	sess, ok := s.verifier.Verify(username, password)
	if !ok {
		s.logger.Warn("login_failed", "Login attempt rejected", "", nil)
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(sess)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	sess.Token = token

	if err := s.store.Set(ctx, interfaces.KeyAuthSession, sess); err != nil {
		return domain.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("login_succeeded", fmt.Sprintf("%s logged in", sess.DisplayName), "", map[string]any{
		"role": sess.Role,
	})
	return sess, nil
}

// Current restores the persisted session. A missing entry, a persisted
// null, or a token that fails verification all restore to logged out.
func (s *Service) Current(ctx context.Context) (*domain.Session, error) {
	var sess domain.Session
	found, err := s.store.Get(ctx, interfaces.KeyAuthSession, &sess)
	if err != nil {
		return nil, err
	}
	if !found || sess.Token == "" {
		return nil, nil
	}

	verified, err := s.VerifyToken(sess.Token)
	if err != nil {
		s.logger.Warn("session_rejected", "Persisted session token failed verification", "", nil)
		return nil, nil
	}
	return &verified, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Set(ctx, interfaces.KeyAuthSession, nil); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("logout", "Session cleared", "", nil)
	return nil
}

// VerifyToken parses a session token and rebuilds the session it encodes.
func (s *Service) VerifyToken(token string) (domain.Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, fmt.Errorf("invalid session token claims")
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	sess := domain.Session{DisplayName: name, Role: domain.Role(role), Token: token}
	if sess.Role != domain.RoleAdmin && sess.Role != domain.RoleStaff {
		return domain.Session{}, fmt.Errorf("invalid session role %q", role)
	}
	return sess, nil
}

func (s *Service) mintToken(sess domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"name": sess.DisplayName,
		"role": string(sess.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

var _ interfaces.AuthService = (*Service)(nil)
