package usecases

import (
	"context"
	"sync"

	"commentgate/internal/domain"
)

// mockDiscussionClient is a scripted DiscussionClient shared by every
// credential the factory hands out.
type mockDiscussionClient struct {
	mu sync.Mutex

	discussion *domain.Discussion
	searchErr  error
	foundID    string
	findErr    error
	createdID  string
	createErr  error
	added      *domain.Comment
	addErr     error
	viewer     *domain.User
	viewerErr  error

	calls   []string
	queries []string
	creates []domain.NewDiscussion
	addBody string
	addOnto string
}

func (m *mockDiscussionClient) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockDiscussionClient) SearchDiscussion(_ context.Context, query string) (*domain.Discussion, error) {
	m.record("search")
	m.queries = append(m.queries, query)
	if m.searchErr != nil || m.discussion == nil {
		return nil, m.searchErr
	}
	d := *m.discussion
	d.Comments = cloneComments(m.discussion.Comments)
	return &d, nil
}

func (m *mockDiscussionClient) FindDiscussionID(_ context.Context, query string) (string, error) {
	m.record("find")
	m.queries = append(m.queries, query)
	return m.foundID, m.findErr
}

func (m *mockDiscussionClient) CreateDiscussion(_ context.Context, in domain.NewDiscussion) (string, error) {
	m.record("create")
	m.creates = append(m.creates, in)
	return m.createdID, m.createErr
}

func (m *mockDiscussionClient) AddDiscussionComment(_ context.Context, discussionID, body string) (*domain.Comment, error) {
	m.record("add")
	m.addOnto, m.addBody = discussionID, body
	if m.addErr != nil {
		return nil, m.addErr
	}
	c := *m.added
	return &c, nil
}

func (m *mockDiscussionClient) Viewer(context.Context) (*domain.User, error) {
	m.record("viewer")
	return m.viewer, m.viewerErr
}

func cloneComments(in []domain.Comment) []domain.Comment {
	out := make([]domain.Comment, len(in))
	for i, c := range in {
		out[i] = c
		out[i].Replies = append([]domain.Comment(nil), c.Replies...)
	}
	return out
}

// mockFactory records the credential of every client it builds.
type mockFactory struct {
	client *mockDiscussionClient
	creds  []domain.Credential
}

func (f *mockFactory) WithCredential(cred domain.Credential) DiscussionClient {
	f.creds = append(f.creds, cred)
	return f.client
}

type mockSite struct {
	url      string
	comments *domain.CommentSettings
}

func (s *mockSite) SiteURL() string { return s.url }

func (s *mockSite) Comments() (domain.CommentSettings, bool) {
	if s.comments == nil {
		return domain.CommentSettings{}, false
	}
	return *s.comments, true
}

func configuredSite() *mockSite {
	return &mockSite{
		url:      "https://blog.example",
		comments: &domain.CommentSettings{Repo: "acme/blog", RepositoryID: "R_1", CategoryID: "DIC_1"},
	}
}

type mockOAuth struct {
	configured bool
	cred       domain.Credential
	err        error
	codes      []string
}

func (m *mockOAuth) Configured() bool { return m.configured }

func (m *mockOAuth) AuthCodeURL(state string) string {
	return "https://github.com/login/oauth/authorize?state=" + state
}

func (m *mockOAuth) Exchange(_ context.Context, code string) (domain.Credential, error) {
	m.codes = append(m.codes, code)
	return m.cred, m.err
}

type mockProcessor struct {
	configured bool
	url        string
	secret     string
	err        error
	checkouts  []domain.CheckoutRequest
	intents    []domain.Donation
}

func (m *mockProcessor) Configured() bool { return m.configured }

func (m *mockProcessor) CreateCheckoutSession(_ context.Context, req domain.CheckoutRequest) (string, error) {
	m.checkouts = append(m.checkouts, req)
	return m.url, m.err
}

func (m *mockProcessor) CreatePaymentIntent(_ context.Context, d domain.Donation) (string, error) {
	m.intents = append(m.intents, d)
	return m.secret, m.err
}
