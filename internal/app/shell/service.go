package shell

import (
	"context"
	"fmt"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// Service is the navigation shell: the active tab and dark-mode flag, each
// persisted on every change. The admin-only history guard runs through
// domain.ResolveView on every read and write, not just at switch time.
type Service struct {
	store  interfaces.KVStore
	logger logger.Logger
}

func NewService(store interfaces.KVStore, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) State(ctx context.Context, sess *domain.Session) (*interfaces.ShellState, error) {
	tab := domain.TabOrders
	if _, err := s.store.Get(ctx, interfaces.KeyActiveTab, &tab); err != nil {
		return nil, err
	}

	effective := domain.ResolveView(sess, tab)
	if effective != tab {
		// A stale persisted selection (e.g. "history" left behind by an
		// admin) must not survive for a session that cannot see it.
		if err := s.store.Set(ctx, interfaces.KeyActiveTab, effective); err != nil {
			return nil, err
		}
		s.logger.Debug("tab_reverted", fmt.Sprintf("Active tab reverted from %q to %q", tab, effective), "", nil)
	}

	dark := false
	if _, err := s.store.Get(ctx, interfaces.KeyDarkMode, &dark); err != nil {
		return nil, err
	}

	return &interfaces.ShellState{
		ActiveTab: effective,
		Tabs:      domain.VisibleTabs(sess),
		DarkMode:  dark,
	}, nil
}

func (s *Service) SwitchTab(ctx context.Context, sess *domain.Session, tab domain.Tab) (*interfaces.ShellState, error) {
	if !tab.IsValid() {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("unknown tab %q", tab)}
	}

	effective := domain.ResolveView(sess, tab)
	if err := s.store.Set(ctx, interfaces.KeyActiveTab, effective); err != nil {
		return nil, err
	}
	return s.State(ctx, sess)
}

func (s *Service) ToggleDarkMode(ctx context.Context) (bool, error) {
	dark := false
	if _, err := s.store.Get(ctx, interfaces.KeyDarkMode, &dark); err != nil {
		return false, err
	}

	dark = !dark
	if err := s.store.Set(ctx, interfaces.KeyDarkMode, dark); err != nil {
		return false, err
	}
	return dark, nil
}

func (s *Service) ResetTab(ctx context.Context) error {
	return s.store.Set(ctx, interfaces.KeyActiveTab, domain.TabOrders)
}

var _ interfaces.ShellService = (*Service)(nil)
