package web

import (
	"context"
	"net/url"
	"sync"

	"commentgate/internal/domain"
	"commentgate/internal/usecases"
)

type fakeDiscussions struct {
	mu sync.Mutex

	discussion *domain.Discussion
	foundID    string
	createdID  string
	added      *domain.Comment
	viewer     *domain.User
	err        error

	calls []string
	creds []domain.Credential
	body  string
	title string
}

func (f *fakeDiscussions) WithCredential(cred domain.Credential) usecases.DiscussionClient {
	f.mu.Lock()
	f.creds = append(f.creds, cred)
	f.mu.Unlock()
	return f
}

func (f *fakeDiscussions) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeDiscussions) SearchDiscussion(context.Context, string) (*domain.Discussion, error) {
	f.record("search")
	if f.err != nil || f.discussion == nil {
		return nil, f.err
	}
	d := *f.discussion
	d.Comments = append([]domain.Comment(nil), f.discussion.Comments...)
	return &d, nil
}

func (f *fakeDiscussions) FindDiscussionID(context.Context, string) (string, error) {
	f.record("find")
	return f.foundID, f.err
}

func (f *fakeDiscussions) CreateDiscussion(_ context.Context, in domain.NewDiscussion) (string, error) {
	f.record("create")
	f.title = in.Title
	return f.createdID, f.err
}

func (f *fakeDiscussions) AddDiscussionComment(_ context.Context, _ string, body string) (*domain.Comment, error) {
	f.record("add")
	f.body = body
	if f.err != nil {
		return nil, f.err
	}
	c := *f.added
	return &c, nil
}

func (f *fakeDiscussions) Viewer(context.Context) (*domain.User, error) {
	f.record("viewer")
	return f.viewer, f.err
}

type fakeSite struct {
	comments *domain.CommentSettings
}

func (s *fakeSite) SiteURL() string { return "https://blog.example" }

func (s *fakeSite) Comments() (domain.CommentSettings, bool) {
	if s.comments == nil {
		return domain.CommentSettings{}, false
	}
	return *s.comments, true
}

type fakeOAuth struct {
	configured bool
	cred       domain.Credential
	err        error
}

func (o *fakeOAuth) Configured() bool { return o.configured }

func (o *fakeOAuth) AuthCodeURL(state string) string {
	return "https://github.com/login/oauth/authorize?client_id=id&state=" + url.QueryEscape(state)
}

func (o *fakeOAuth) Exchange(context.Context, string) (domain.Credential, error) {
	return o.cred, o.err
}

type fakePayments struct {
	configured bool
	err        error
	checkouts  []domain.CheckoutRequest
	intents    []domain.Donation
}

func (p *fakePayments) Configured() bool { return p.configured }

func (p *fakePayments) CreateCheckoutSession(_ context.Context, req domain.CheckoutRequest) (string, error) {
	p.checkouts = append(p.checkouts, req)
	return "https://checkout.stripe.com/c/pay/cs_1", p.err
}

func (p *fakePayments) CreatePaymentIntent(_ context.Context, d domain.Donation) (string, error) {
	p.intents = append(p.intents, d)
	return "pi_1_secret", p.err
}
