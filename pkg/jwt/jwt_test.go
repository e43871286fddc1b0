package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/onmedicines/asaserver/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  ttl,
	})
}

func TestStudentTokenRoundTrip(t *testing.T) {
	mgr := newTestManager(time.Hour)

	token, err := mgr.IssueStudentToken(101)
	if err != nil {
		t.Fatalf("IssueStudentToken returned error: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.RollNumber != 101 {
		t.Errorf("RollNumber = %d, want 101", claims.RollNumber)
	}
	if claims.Role != RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, RoleStudent)
	}
	if claims.ID == "" {
		t.Error("token has no jti")
	}
}

func TestStaffTokenRoundTrip(t *testing.T) {
	mgr := newTestManager(time.Hour)

	for _, role := range []string{RoleFaculty, RoleAdmin} {
		token, err := mgr.IssueStaffToken("jsmith", role)
		if err != nil {
			t.Fatalf("IssueStaffToken(%s) returned error: %v", role, err)
		}

		claims, err := mgr.ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken(%s) returned error: %v", role, err)
		}
		if claims.Username != "jsmith" {
			t.Errorf("Username = %q, want jsmith", claims.Username)
		}
		if claims.Role != role {
			t.Errorf("Role = %q, want %q", claims.Role, role)
		}
	}
}

func TestParseExpiredToken(t *testing.T) {
	mgr := newTestManager(-time.Minute)

	token, err := mgr.IssueStudentToken(101)
	if err != nil {
		t.Fatalf("IssueStudentToken returned error: %v", err)
	}

	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ParseToken error = %v, want ErrTokenExpired", err)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	mgr := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})

	token, err := mgr.IssueStudentToken(101)
	if err != nil {
		t.Fatalf("IssueStudentToken returned error: %v", err)
	}

	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken error = %v, want ErrTokenInvalid", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	mgr := newTestManager(time.Hour)

	if _, err := mgr.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken error = %v, want ErrTokenInvalid", err)
	}
}
