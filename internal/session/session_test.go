package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	zkeyring "github.com/zalando/go-keyring"

	"github.com/lcabreja/psiq/internal/api"
	"github.com/lcabreja/psiq/internal/constants"
	"github.com/lcabreja/psiq/internal/keyring"
)

func newBackend(t *testing.T, roleID int) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/usuarios/token/":
			json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-abc"})
		case "/usuarios/me/":
			if r.Header.Get("Authorization") != "Bearer tok-abc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"id": 11, "email": "doc@clinic.test", "id_rol": roleID, "character_id": 3,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL)
}

func TestSignIn(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 2)

	sess, err := SignIn(context.Background(), client, "doc@clinic.test", "hunter2")
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if !sess.SignedIn() {
		t.Error("SignedIn() = false after sign-in")
	}
	if sess.UserID != 11 || sess.ProfessionalID != 3 || sess.Email != "doc@clinic.test" {
		t.Errorf("session = %+v", sess)
	}
	if sess.Role != constants.RolePsychologist {
		t.Errorf("Role = %q, want %q", sess.Role, constants.RolePsychologist)
	}

	stored, err := keyring.GetToken()
	if err != nil {
		t.Fatalf("GetToken() error: %v", err)
	}
	if stored != "tok-abc" {
		t.Errorf("stored token = %q, want %q", stored, "tok-abc")
	}
}

func TestSignInRejectsPatientRole(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 1)

	_, err := SignIn(context.Background(), client, "patient@clinic.test", "hunter2")
	if !errors.Is(err, ErrRoleNotAllowed) {
		t.Fatalf("SignIn() error = %v, want ErrRoleNotAllowed", err)
	}

	if _, err := keyring.GetToken(); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("token persisted for rejected role, GetToken() error = %v", err)
	}
}

func TestRestore(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 3)

	if err := keyring.SetToken("tok-abc"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}

	sess, err := Restore(context.Background(), client)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if !sess.SignedIn() {
		t.Fatal("Restore() left session signed out")
	}
	if sess.Role != constants.RolePsychiatrist {
		t.Errorf("Role = %q, want %q", sess.Role, constants.RolePsychiatrist)
	}
}

func TestRestoreWithoutStoredToken(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 2)

	sess, err := Restore(context.Background(), client)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess.SignedIn() {
		t.Error("Restore() signed in without a stored token")
	}
}

func TestRestoreClearsStaleToken(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 2)

	if err := keyring.SetToken("stale-token"); err != nil {
		t.Fatalf("SetToken() error: %v", err)
	}

	sess, err := Restore(context.Background(), client)
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if sess.SignedIn() {
		t.Error("Restore() kept a rejected token")
	}
	if _, err := keyring.GetToken(); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("stale token not cleared, GetToken() error = %v", err)
	}
}

func TestSignOut(t *testing.T) {
	zkeyring.MockInit()
	client := newBackend(t, 2)

	sess, err := SignIn(context.Background(), client, "doc@clinic.test", "hunter2")
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}

	if err := SignOut(client, sess); err != nil {
		t.Fatalf("SignOut() error: %v", err)
	}
	if sess.SignedIn() {
		t.Error("session still signed in after SignOut()")
	}
	if _, err := keyring.GetToken(); !errors.Is(err, keyring.ErrNotFound) {
		t.Errorf("token not cleared, GetToken() error = %v", err)
	}
}

func TestRoleName(t *testing.T) {
	tests := []struct {
		roleID int
		want   string
	}{
		{0, constants.RoleAdministrator},
		{2, constants.RolePsychologist},
		{3, constants.RolePsychiatrist},
		{1, ""},
		{99, ""},
	}

	for _, tt := range tests {
		if got := roleName(tt.roleID); got != tt.want {
			t.Errorf("roleName(%d) = %q, want %q", tt.roleID, got, tt.want)
		}
	}
}

func TestExpiryWarning(t *testing.T) {
	signed := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": exp.Unix(),
		})
		s, err := tok.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("signing test token: %v", err)
		}
		return s
	}

	if warn := expiryWarning(signed(time.Now().Add(time.Hour))); warn != "" {
		t.Errorf("fresh token warned: %q", warn)
	}
	if warn := expiryWarning(signed(time.Now().Add(-time.Hour))); warn != "stored session has expired, sign in again" {
		t.Errorf("expired token warning = %q", warn)
	}
	if warn := expiryWarning(signed(time.Now().Add(5 * time.Minute))); warn == "" {
		t.Error("near-expiry token did not warn")
	}
	if warn := expiryWarning("not-a-jwt"); warn != "" {
		t.Errorf("malformed token warned: %q", warn)
	}
}
