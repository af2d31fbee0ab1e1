package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"commentgate/internal/domain"
)

func TestAuth_BeginSignIn(t *testing.T) {
	uc := NewAuthUseCase(&mockOAuth{configured: true}, &mockFactory{client: &mockDiscussionClient{}})
	uc.newID = func() string { return "state-1" }

	state, url, err := uc.BeginSignIn()

	if err != nil {
		t.Fatalf("BeginSignIn() error = %v", err)
	}
	if state != "state-1" || !strings.HasSuffix(url, "state=state-1") {
		t.Errorf("state = %q, url = %q", state, url)
	}
}

func TestAuth_BeginSignIn_NotConfigured(t *testing.T) {
	uc := NewAuthUseCase(&mockOAuth{}, &mockFactory{client: &mockDiscussionClient{}})

	_, _, err := uc.BeginSignIn()

	if !errors.Is(err, domain.ErrOAuthNotConfigured) {
		t.Errorf("error = %v", err)
	}
}

func TestAuth_CompleteSignIn(t *testing.T) {
	tests := []struct {
		name   string
		oauth  *mockOAuth
		state  string
		issued string
		want   domain.Credential
		kind   domain.ErrorKind
		reason string
	}{
		{"success", &mockOAuth{configured: true, cred: "gho_1"}, "s", "s", "gho_1", "", ""},
		{"state mismatch", &mockOAuth{configured: true}, "s", "other", "", domain.KindAuth, "invalid state"},
		{"state missing", &mockOAuth{configured: true}, "", "", "", domain.KindAuth, "invalid state"},
		{"unconfigured", &mockOAuth{}, "s", "s", "", domain.KindConfiguration, "oauth client not configured"},
		{"provider rejection", &mockOAuth{configured: true, err: domain.AuthError("bad code", nil)}, "s", "s", "", domain.KindAuth, "bad code"},
		{"transport failure", &mockOAuth{configured: true, err: errors.New("dial tcp")}, "s", "s", "", domain.KindUpstream, "oauth token exchange failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewAuthUseCase(tt.oauth, &mockFactory{client: &mockDiscussionClient{}})

			cred, err := uc.CompleteSignIn(context.Background(), "code", tt.state, tt.issued)

			if cred != tt.want {
				t.Errorf("cred = %q, want %q", string(cred), string(tt.want))
			}
			if domain.KindOf(err) != tt.kind || domain.ReasonOf(err) != tt.reason {
				t.Errorf("error = %v, want %s %q", err, tt.kind, tt.reason)
			}
		})
	}
}

func TestAuth_CompleteSignIn_StateCheckedBeforeExchange(t *testing.T) {
	oauth := &mockOAuth{configured: true, cred: "gho_1"}
	uc := NewAuthUseCase(oauth, &mockFactory{client: &mockDiscussionClient{}})

	_, _ = uc.CompleteSignIn(context.Background(), "code", "forged", "issued")

	if len(oauth.codes) != 0 {
		t.Error("code must not be exchanged on state mismatch")
	}
}

func TestAuth_CurrentUser(t *testing.T) {
	client := &mockDiscussionClient{viewer: &domain.User{Login: "octocat"}}
	factory := &mockFactory{client: client}
	uc := NewAuthUseCase(&mockOAuth{configured: true}, factory)

	user, err := uc.CurrentUser(context.Background(), "gho_user")
	if err != nil || user.Login != "octocat" {
		t.Fatalf("CurrentUser() = %+v, %v", user, err)
	}
	if factory.creds[0] != "gho_user" {
		t.Errorf("viewer used %q", string(factory.creds[0]))
	}

	none, err := uc.CurrentUser(context.Background(), "")
	if none != nil || err != nil {
		t.Errorf("no session: %+v, %v", none, err)
	}
	if len(client.calls) != 1 {
		t.Errorf("calls = %v", client.calls)
	}
}

func TestAuth_CurrentUser_LookupFailure(t *testing.T) {
	uc := NewAuthUseCase(&mockOAuth{}, &mockFactory{client: &mockDiscussionClient{viewerErr: errors.New("401")}})

	_, err := uc.CurrentUser(context.Background(), "gho_revoked")

	if domain.KindOf(err) != domain.KindUpstream {
		t.Errorf("error = %v", err)
	}
}
