package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openfab/printctl/internal/core/domain"
	"github.com/openfab/printctl/internal/core/ports"
)

type stubAuth struct {
	user        *domain.User
	loggedIn    bool
	loginErr    error
	logoutCalls int
}

func (s *stubAuth) Me(context.Context) (*domain.User, error) {
	if !s.loggedIn || s.user == nil {
		return nil, domain.ErrUnauthenticated
	}
	u := *s.user
	return &u, nil
}

func (s *stubAuth) Login(_ context.Context, _ ports.LoginInput) (*domain.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	s.loggedIn = true
	u := *s.user
	return &u, nil
}

func (s *stubAuth) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	s.loggedIn = true
	u := *s.user
	return &u, nil
}

func (s *stubAuth) Logout(context.Context) error {
	s.logoutCalls++
	s.loggedIn = false
	return nil
}

func (s *stubAuth) ChangePassword(context.Context, ports.ChangePasswordInput) error {
	return nil
}

type stubRequests struct {
	requests    []domain.PrintRequest
	listCalls   int
	updateCalls int
	gotStatus   domain.PrintRequestStatus
}

func (s *stubRequests) List(context.Context, ports.RequestFilter) ([]domain.PrintRequest, error) {
	s.listCalls++
	return s.requests, nil
}

func (s *stubRequests) ListMine(context.Context) ([]domain.PrintRequest, error) {
	return s.requests, nil
}

func (s *stubRequests) Get(_ context.Context, id string) (*domain.PrintRequest, error) {
	for i := range s.requests {
		if s.requests[i].ID == id {
			r := s.requests[i]
			return &r, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (s *stubRequests) Create(_ context.Context, input ports.CreatePrintRequestInput) (*domain.PrintRequest, error) {
	return &domain.PrintRequest{ID: "pr-new", FileLink: input.FileLink}, nil
}

func (s *stubRequests) Update(_ context.Context, id string, input ports.UpdatePrintRequestInput) (*domain.PrintRequest, error) {
	return &domain.PrintRequest{ID: id, FileLink: input.FileLink, Notes: input.Notes}, nil
}

func (s *stubRequests) UpdateStatus(_ context.Context, id string, status domain.PrintRequestStatus) (*domain.PrintRequest, error) {
	s.updateCalls++
	s.gotStatus = status
	return &domain.PrintRequest{ID: id, Status: status}, nil
}

func (s *stubRequests) Delete(context.Context, string) error { return nil }

type stubAdmin struct {
	roleCalls int
}

func (s *stubAdmin) ListUsers(context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubAdmin) UpdateUserRole(context.Context, string, domain.Role) error {
	s.roleCalls++
	return nil
}

func (s *stubAdmin) SetUserEnabled(context.Context, string, bool) error { return nil }

func (s *stubAdmin) Stats(context.Context) (*ports.SystemStats, error) {
	return &ports.SystemStats{}, nil
}

type stubSpoolman struct{}

func (stubSpoolman) Spools(context.Context) ([]domain.Spool, error)    { return nil, nil }
func (stubSpoolman) Spool(context.Context, int) (*domain.Spool, error) { return nil, nil }
func (stubSpoolman) Materials(context.Context) ([]string, error)       { return nil, nil }

func moderator() *domain.User {
	return &domain.User{ID: "u-1", Username: "mona", Role: domain.RoleModerator, Enabled: true}
}

func newTestApp(t *testing.T, auth *stubAuth, requests *stubRequests, admin *stubAdmin, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(Deps{
		Auth:     auth,
		Requests: requests,
		Admin:    admin,
		Spoolman: stubSpoolman{},
		Log:      zerolog.Nop(),
		In:       strings.NewReader(input),
		Out:      &out,
	})
	return app, &out
}

func TestRun_GatesCommandsBeforeLogin(t *testing.T) {
	auth := &stubAuth{}
	requests := &stubRequests{}
	app, out := newTestApp(t, auth, requests, &stubAdmin{}, "list\nexit\n")

	app.Run(context.Background())

	if !strings.Contains(out.String(), "Not logged in.") {
		t.Errorf("missing session banner in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Please log in first") {
		t.Errorf("missing login hint in output:\n%s", out.String())
	}
	if requests.listCalls != 0 {
		t.Errorf("list hit the API %d times without a session", requests.listCalls)
	}
}

func TestRun_LoginThenWhoami(t *testing.T) {
	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret123"), nil }
	t.Cleanup(func() { readPassword = old })

	auth := &stubAuth{user: &domain.User{ID: "u-2", Username: "alice", Role: domain.RoleUser, Enabled: true}}
	app, out := newTestApp(t, auth, &stubRequests{}, &stubAdmin{}, "login\nalice\nwhoami\nexit\n")

	app.Run(context.Background())

	if !strings.Contains(out.String(), "Logged in as alice (user)") {
		t.Errorf("missing post-login banner:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Username: alice") {
		t.Errorf("whoami did not show the user:\n%s", out.String())
	}
}

func TestRun_StatusAppliesOfferedTransition(t *testing.T) {
	auth := &stubAuth{user: moderator(), loggedIn: true}
	requests := &stubRequests{requests: []domain.PrintRequest{
		{ID: "pr-1", FileLink: "https://files.local/part.stl", Status: domain.StatusPendingApproval},
	}}
	app, out := newTestApp(t, auth, requests, &stubAdmin{}, "status pr-1\n1\nexit\n")

	app.Run(context.Background())

	if requests.updateCalls != 1 {
		t.Fatalf("updateCalls = %d", requests.updateCalls)
	}
	if requests.gotStatus != domain.StatusEnqueued {
		t.Errorf("first offered transition from PendingApproval must be Enqueued, got %v", requests.gotStatus)
	}
	if !strings.Contains(out.String(), "is now") {
		t.Errorf("missing confirmation:\n%s", out.String())
	}
}

func TestRun_StatusRefusesUnofferedChoice(t *testing.T) {
	auth := &stubAuth{user: moderator(), loggedIn: true}
	requests := &stubRequests{requests: []domain.PrintRequest{
		{ID: "pr-1", FileLink: "https://files.local/part.stl", Status: domain.StatusDone},
	}}
	app, out := newTestApp(t, auth, requests, &stubAdmin{}, "status pr-1\nInProgress\nexit\n")

	app.Run(context.Background())

	if requests.updateCalls != 0 {
		t.Errorf("unoffered choice reached the API %d times", requests.updateCalls)
	}
	if !strings.Contains(out.String(), "not offered") {
		t.Errorf("missing refusal:\n%s", out.String())
	}
}

func TestRun_RoleChangeRequiresAdmin(t *testing.T) {
	auth := &stubAuth{user: moderator(), loggedIn: true}
	admin := &stubAdmin{}
	app, out := newTestApp(t, auth, &stubRequests{}, admin, "role u-2 admin\nexit\n")

	app.Run(context.Background())

	if admin.roleCalls != 0 {
		t.Errorf("moderator reached the role API %d times", admin.roleCalls)
	}
	if !strings.Contains(out.String(), "permission") {
		t.Errorf("missing permission message:\n%s", out.String())
	}
}

func TestRun_LogoutDropsSession(t *testing.T) {
	auth := &stubAuth{user: moderator(), loggedIn: true}
	requests := &stubRequests{}
	app, out := newTestApp(t, auth, requests, &stubAdmin{}, "logout\nlist\nexit\n")

	app.Run(context.Background())

	if auth.logoutCalls != 1 {
		t.Errorf("logoutCalls = %d", auth.logoutCalls)
	}
	if requests.listCalls != 0 {
		t.Errorf("list worked after logout")
	}
	if !strings.Contains(out.String(), "Please log in first") {
		t.Errorf("missing login hint after logout:\n%s", out.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, &stubAuth{}, &stubRequests{}, &stubAdmin{}, "frobnicate\nexit\n")

	app.Run(context.Background())

	if !strings.Contains(out.String(), `Unknown command "frobnicate"`) {
		t.Errorf("missing unknown-command message:\n%s", out.String())
	}
}

func TestHelp_GrowsWithRole(t *testing.T) {
	app, out := newTestApp(t, &stubAuth{}, &stubRequests{}, &stubAdmin{}, "help\nexit\n")
	app.Run(context.Background())
	if strings.Contains(out.String(), "moderation") {
		t.Errorf("anonymous help must not list moderation commands:\n%s", out.String())
	}

	auth := &stubAuth{user: moderator(), loggedIn: true}
	app, out = newTestApp(t, auth, &stubRequests{}, &stubAdmin{}, "help\nexit\n")
	app.Run(context.Background())
	if !strings.Contains(out.String(), "moderation") {
		t.Errorf("moderator help must list moderation commands:\n%s", out.String())
	}
}

func TestPickStatus(t *testing.T) {
	offered := domain.StatusPendingApproval.ValidNext()

	got, err := pickStatus(offered, "2")
	if err != nil || got != domain.StatusPendingApproval {
		t.Errorf("pickStatus(2) = %v, %v", got, err)
	}
	got, err = pickStatus(offered, "enqueued")
	if err != nil || got != domain.StatusEnqueued {
		t.Errorf("pickStatus(enqueued) = %v, %v", got, err)
	}
	if _, err := pickStatus(offered, "9"); err == nil {
		t.Error("out-of-range index must fail")
	}
	if _, err := pickStatus(offered, "Done"); err == nil {
		t.Error("unoffered status must fail")
	}
}
