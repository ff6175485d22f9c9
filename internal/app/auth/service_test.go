package auth

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

// fakeKV mimics the real store: values live as JSON text, unreadable text
// falls back to the default.
type fakeKV struct {
	m map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{m: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok := f.m[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.m[key] = string(raw)
	return nil
}

func newService(kv interfaces.KVStore) *Service {
	return NewService(NewStaticVerifier(), kv, logger.NewWithWriter("test", io.Discard), "test-secret")
}

func TestStaticVerifier(t *testing.T) {
	v := NewStaticVerifier()

	tests := []struct {
		name     string
		username string
		password string
		wantRole domain.Role
		wantOK   bool
	}{
		{"admin exact", "wild admin", "Wildadmin123", domain.RoleAdmin, true},
		{"admin mixed case and padding", "  Wild Admin ", "Wildadmin123", domain.RoleAdmin, true},
		{"staff exact", "wild user", "Wilduser000", domain.RoleStaff, true},
		{"password is case-sensitive", "wild admin", "wildadmin123", "", false},
		{"wrong password", "wild admin", "Wilduser000", "", false},
		{"unknown user", "somebody", "Wildadmin123", "", false},
		{"empty", "", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sess, ok := v.Verify(tc.username, tc.password)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantRole, sess.Role)
			}
		})
	}
}

func TestAuthenticateMintsVerifiableToken(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeKV())

	sess, err := svc.Authenticate(ctx, "wild admin", "Wildadmin123")
	require.NoError(t, err)
	assert.Equal(t, "Wild admin", sess.DisplayName)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
	require.NotEmpty(t, sess.Token)

	verified, err := svc.VerifyToken(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.DisplayName, verified.DisplayName)
	assert.Equal(t, sess.Role, verified.Role)
}

func TestAuthenticateRejectsWithGenericError(t *testing.T) {
	ctx := context.Background()
	svc := newService(newFakeKV())

	_, badUser := svc.Authenticate(ctx, "nobody", "Wildadmin123")
	_, badPass := svc.Authenticate(ctx, "wild admin", "nope")

	require.ErrorIs(t, badUser, domain.ErrInvalidCredentials)
	require.ErrorIs(t, badPass, domain.ErrInvalidCredentials)
	// The message must not reveal which field was wrong.
	assert.Equal(t, badUser.Error(), badPass.Error())
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()

	sess, err := newService(kv).Authenticate(ctx, "wild user", "Wilduser000")
	require.NoError(t, err)

	// A fresh service over the same store stands in for a restart.
	restored, err := newService(kv).Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, sess.DisplayName, restored.DisplayName)
	assert.Equal(t, domain.RoleStaff, restored.Role)
}

func TestCurrentLoggedOutByDefault(t *testing.T) {
	sess, err := newService(newFakeKV()).Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestCurrentRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	svc := newService(kv)

	_, err := svc.Authenticate(ctx, "wild admin", "Wildadmin123")
	require.NoError(t, err)

	// Persist a session whose token was signed with a different secret.
	other := NewService(NewStaticVerifier(), newFakeKV(), logger.NewWithWriter("test", io.Discard), "other-secret")
	forged, err := other.Authenticate(ctx, "wild admin", "Wildadmin123")
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, interfaces.KeyAuthSession, forged))

	sess, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	svc := newService(kv)

	_, err := svc.Authenticate(ctx, "wild admin", "Wildadmin123")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	sess, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
