package usecases

import (
	"context"
	"errors"
	"testing"

	"commentgate/internal/domain"
)

func newListUseCase(site *mockSite, client *mockDiscussionClient, service domain.Credential) (*ListCommentsUseCase, *mockFactory) {
	factory := &mockFactory{client: client}
	uc := NewListCommentsUseCase(site, NewThreadDirectory(factory, site), NewIdentityResolver(service))
	return uc, factory
}

func TestListComments_NoThread_ReturnsNil(t *testing.T) {
	// Arrange
	uc, _ := newListUseCase(configuredSite(), &mockDiscussionClient{}, "ghp_service")

	// Act
	d, err := uc.Execute(context.Background(), "/posts/nonexistent", "")

	// Assert
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if d != nil {
		t.Errorf("discussion = %+v, want nil", d)
	}
}

func TestListComments_NormalizesAndReverses(t *testing.T) {
	client := &mockDiscussionClient{discussion: &domain.Discussion{
		ID: "D_1",
		Comments: []domain.Comment{
			{ID: "A", RawBody: "A", Author: botAuthor},
			{ID: "B", RawBody: "B\n\n_(Posted by X)_", RenderedBody: "<p>B</p><p><em>(Posted by X)</em></p>", Author: botAuthor},
		},
	}}
	uc, _ := newListUseCase(configuredSite(), client, "ghp_service")

	d, err := uc.Execute(context.Background(), "/posts/hello", "")

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if d.Comments[0].ID != "B" || d.Comments[1].ID != "A" {
		t.Fatalf("order = %s,%s; want B,A", d.Comments[0].ID, d.Comments[1].ID)
	}
	if d.Comments[0].RenderedBody != "<p>B</p>" || d.Comments[0].Author.DisplayName != "X" {
		t.Errorf("B not normalized: %+v", d.Comments[0])
	}
}

func TestListComments_CredentialChoice(t *testing.T) {
	tests := []struct {
		name    string
		service domain.Credential
		session domain.Credential
		want    domain.Credential
	}{
		{"service preferred", "ghp_service", "gho_user", "ghp_service"},
		{"session fallback", "", "gho_user", "gho_user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, factory := newListUseCase(configuredSite(), &mockDiscussionClient{}, tt.service)

			if _, err := uc.Execute(context.Background(), "/posts/hello", tt.session); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(factory.creds) != 1 || factory.creds[0] != tt.want {
				t.Errorf("creds = %v, want %v", factory.creds, tt.want)
			}
		})
	}
}

func TestListComments_NoCredential(t *testing.T) {
	client := &mockDiscussionClient{}
	uc, _ := newListUseCase(configuredSite(), client, "")

	_, err := uc.Execute(context.Background(), "/posts/hello", "")

	if !errors.Is(err, domain.ErrNoReadCredential) {
		t.Errorf("error = %v", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("calls = %v, want none", client.calls)
	}
}

func TestListComments_NotConfigured_NoRemoteCalls(t *testing.T) {
	client := &mockDiscussionClient{}
	uc, _ := newListUseCase(&mockSite{}, client, "ghp_service")

	_, err := uc.Execute(context.Background(), "/posts/hello", "")

	if domain.KindOf(err) != domain.KindConfiguration {
		t.Errorf("error = %v, want configuration error", err)
	}
	if len(client.calls) != 0 {
		t.Errorf("calls = %v, want none", client.calls)
	}
}

func TestListComments_UpstreamFailure(t *testing.T) {
	uc, _ := newListUseCase(configuredSite(), &mockDiscussionClient{searchErr: errors.New("502")}, "ghp_service")

	_, err := uc.Execute(context.Background(), "/posts/hello", "")

	if domain.KindOf(err) != domain.KindUpstream {
		t.Errorf("error = %v, want upstream error", err)
	}
}
