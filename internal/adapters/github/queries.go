package github

import (
	"context"
	"fmt"
	"time"

	"commentgate/internal/domain"

	"github.com/shurcooL/githubv4"
)

// ghostLogin is what GitHub shows for deleted accounts.
const ghostLogin = "ghost"

type actorNode struct {
	Login     string `graphql:"login"`
	AvatarURL string `graphql:"avatarUrl"`
	URL       string `graphql:"url"`
}

type replyNode struct {
	ID        string     `graphql:"id"`
	Body      string     `graphql:"body"`
	BodyHTML  string     `graphql:"bodyHTML"`
	CreatedAt time.Time  `graphql:"createdAt"`
	Author    *actorNode `graphql:"author"`
}

type commentNode struct {
	ID        string     `graphql:"id"`
	Body      string     `graphql:"body"`
	BodyHTML  string     `graphql:"bodyHTML"`
	CreatedAt time.Time  `graphql:"createdAt"`
	Author    *actorNode `graphql:"author"`
	Replies   struct {
		Nodes []replyNode `graphql:"nodes"`
	} `graphql:"replies(first: 20)"`
}

type discussionNode struct {
	ID       string `graphql:"id"`
	Title    string `graphql:"title"`
	Number   int    `graphql:"number"`
	Comments struct {
		Nodes []commentNode `graphql:"nodes"`
	} `graphql:"comments(first: 100)"`
}

// SearchDiscussion implements usecases.DiscussionClient.
func (c *Client) SearchDiscussion(ctx context.Context, query string) (*domain.Discussion, error) {
	var q struct {
		Search struct {
			Nodes []struct {
				Discussion discussionNode `graphql:"... on Discussion"`
			} `graphql:"nodes"`
		} `graphql:"search(type: DISCUSSION, query: $term, first: 1)"`
	}
	vars := map[string]any{"term": githubv4.String(query)}
	if err := c.api.Query(ctx, &q, vars); err != nil {
		return nil, fmt.Errorf("github: search discussion: %w", err)
	}
	if len(q.Search.Nodes) == 0 || q.Search.Nodes[0].Discussion.ID == "" {
		return nil, nil
	}
	return toDiscussion(q.Search.Nodes[0].Discussion), nil
}

// FindDiscussionID implements usecases.DiscussionClient.
func (c *Client) FindDiscussionID(ctx context.Context, query string) (string, error) {
	var q struct {
		Search struct {
			Nodes []struct {
				Discussion struct {
					ID string `graphql:"id"`
				} `graphql:"... on Discussion"`
			} `graphql:"nodes"`
		} `graphql:"search(type: DISCUSSION, query: $term, first: 1)"`
	}
	vars := map[string]any{"term": githubv4.String(query)}
	if err := c.api.Query(ctx, &q, vars); err != nil {
		return "", fmt.Errorf("github: find discussion: %w", err)
	}
	if len(q.Search.Nodes) == 0 {
		return "", nil
	}
	return q.Search.Nodes[0].Discussion.ID, nil
}

// CreateDiscussion implements usecases.DiscussionClient.
func (c *Client) CreateDiscussion(ctx context.Context, in domain.NewDiscussion) (string, error) {
	var m struct {
		CreateDiscussion struct {
			Discussion struct {
				ID string `graphql:"id"`
			} `graphql:"discussion"`
		} `graphql:"createDiscussion(input: $input)"`
	}
	input := githubv4.CreateDiscussionInput{
		RepositoryID: githubv4.ID(in.RepositoryID),
		CategoryID:   githubv4.ID(in.CategoryID),
		Title:        githubv4.String(in.Title),
		Body:         githubv4.String(in.Body),
	}
	if err := c.api.Mutate(ctx, &m, input, nil); err != nil {
		return "", fmt.Errorf("github: create discussion: %w", err)
	}
	return m.CreateDiscussion.Discussion.ID, nil
}

// AddDiscussionComment implements usecases.DiscussionClient.
func (c *Client) AddDiscussionComment(ctx context.Context, discussionID, body string) (*domain.Comment, error) {
	var m struct {
		AddDiscussionComment struct {
			Comment replyNode `graphql:"comment"`
		} `graphql:"addDiscussionComment(input: $input)"`
	}
	input := githubv4.AddDiscussionCommentInput{
		DiscussionID: githubv4.ID(discussionID),
		Body:         githubv4.String(body),
	}
	if err := c.api.Mutate(ctx, &m, input, nil); err != nil {
		return nil, fmt.Errorf("github: add discussion comment: %w", err)
	}
	comment := toComment(m.AddDiscussionComment.Comment)
	return &comment, nil
}

// Viewer implements usecases.DiscussionClient.
func (c *Client) Viewer(ctx context.Context) (*domain.User, error) {
	var q struct {
		Viewer struct {
			Login     string `graphql:"login"`
			Name      string `graphql:"name"`
			AvatarURL string `graphql:"avatarUrl"`
			URL       string `graphql:"url"`
		} `graphql:"viewer"`
	}
	if err := c.api.Query(ctx, &q, nil); err != nil {
		return nil, fmt.Errorf("github: viewer: %w", err)
	}
	return &domain.User{
		Login:     q.Viewer.Login,
		Name:      q.Viewer.Name,
		AvatarURL: q.Viewer.AvatarURL,
		URL:       q.Viewer.URL,
	}, nil
}

func toDiscussion(n discussionNode) *domain.Discussion {
	d := &domain.Discussion{
		ID:       n.ID,
		Title:    n.Title,
		Number:   n.Number,
		Comments: make([]domain.Comment, 0, len(n.Comments.Nodes)),
	}
	for _, cn := range n.Comments.Nodes {
		c := toComment(replyNode{ID: cn.ID, Body: cn.Body, BodyHTML: cn.BodyHTML, CreatedAt: cn.CreatedAt, Author: cn.Author})
		c.Replies = make([]domain.Comment, 0, len(cn.Replies.Nodes))
		for _, rn := range cn.Replies.Nodes {
			c.Replies = append(c.Replies, toComment(rn))
		}
		d.Comments = append(d.Comments, c)
	}
	return d
}

func toComment(n replyNode) domain.Comment {
	return domain.Comment{
		ID:           n.ID,
		RawBody:      n.Body,
		RenderedBody: n.BodyHTML,
		CreatedAt:    n.CreatedAt,
		Author:       toAuthor(n.Author),
	}
}

func toAuthor(a *actorNode) domain.Author {
	if a == nil || a.Login == "" {
		return domain.Author{DisplayName: ghostLogin, ProfileURL: "https://github.com/" + ghostLogin}
	}
	return domain.Author{DisplayName: a.Login, ProfileURL: a.URL, AvatarURL: a.AvatarURL}
}
