package auth

import (
	"strings"

	"github.com/wildfnc/orderdesk/internal/domain"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

type staticAccount struct {
	username    string
	password    string
	displayName string
	role        domain.Role
}

// StaticVerifier checks against the two built-in demo accounts. Usernames
// compare case-insensitively after trimming; passwords compare exactly.
// This is a deliberate toy setup: swap in a real CredentialVerifier for
// anything beyond a demo.
type StaticVerifier struct {
	accounts []staticAccount
}

func NewStaticVerifier() *StaticVerifier {
	return &StaticVerifier{
		accounts: []staticAccount{
			{username: "wild admin", password: "Wildadmin123", displayName: "Wild admin", role: domain.RoleAdmin},
			{username: "wild user", password: "Wilduser000", displayName: "Wild user", role: domain.RoleStaff},
		},
	}
}

func (v *StaticVerifier) Verify(username, password string) (domain.Session, bool) {
	uname := strings.ToLower(strings.TrimSpace(username))
	for _, acct := range v.accounts {
		if uname == acct.username && password == acct.password {
			return domain.Session{DisplayName: acct.displayName, Role: acct.role}, true
		}
	}
	return domain.Session{}, false
}

var _ interfaces.CredentialVerifier = (*StaticVerifier)(nil)
