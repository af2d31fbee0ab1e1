package web

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"commentgate/internal/domain"
)

// flexString accepts a JSON string, number or boolean and keeps its text.
// null and absent leave it empty.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			*f = flexString(n.String())
			return nil
		}
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*f = flexString(strconv.FormatBool(b))
	}
	return nil
}

type captchaRequest struct {
	Num1   flexString `json:"num1"`
	Num2   flexString `json:"num2"`
	Answer flexString `json:"answer"`
}

type commentRequest struct {
	Content      string          `json:"content"`
	DisplayName  string          `json:"displayName"`
	DiscussionID string          `json:"discussionId"`
	Honeypot     any             `json:"website_honey"`
	Captcha      *captchaRequest `json:"captcha"`
}

// honeypot returns the trap field as text. Only truthy JSON values count
// as filled: false, 0, "" and null do not.
func (r commentRequest) honeypot() string {
	switch v := r.Honeypot.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
	case float64:
		if v != 0 {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case nil:
	default:
		return "filled"
	}
	return ""
}

func (r commentRequest) challenge() *domain.Challenge {
	if r.Captcha == nil {
		return nil
	}
	return &domain.Challenge{
		Num1:   strings.TrimSpace(string(r.Captcha.Num1)),
		Num2:   strings.TrimSpace(string(r.Captcha.Num2)),
		Answer: strings.TrimSpace(string(r.Captcha.Answer)),
	}
}

type donationRequest struct {
	Amount   flexString `json:"amount"`
	IsCustom any        `json:"isCustom"`
}

// custom is true only for the JSON boolean true.
func (r donationRequest) custom() bool {
	b, ok := r.IsCustom.(bool)
	return ok && b
}

// parseAmount reads decimal dollars. Unparsable input yields 0, which the
// donations use case rejects.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Response shapes mirror the GitHub payload the front-end already reads.

type authorResponse struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	URL       string `json:"url"`
}

type commentNodes struct {
	Nodes []commentResponse `json:"nodes"`
}

type commentResponse struct {
	ID        string         `json:"id"`
	Body      string         `json:"body"`
	BodyHTML  string         `json:"bodyHTML"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    authorResponse `json:"author"`
	Replies   *commentNodes  `json:"replies,omitempty"`
}

type discussionResponse struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Number   int          `json:"number"`
	Comments commentNodes `json:"comments"`
}

type listResponse struct {
	Discussion *discussionResponse `json:"discussion"`
}

type userResponse struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	URL       string `json:"url"`
}

type currentUserResponse struct {
	User *userResponse `json:"user"`
}

func presentComment(c domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Body:      c.RawBody,
		BodyHTML:  c.RenderedBody,
		CreatedAt: c.CreatedAt,
		Author: authorResponse{
			Login:     c.Author.DisplayName,
			AvatarURL: c.Author.AvatarURL,
			URL:       c.Author.ProfileURL,
		},
	}
}

func presentDiscussion(d *domain.Discussion) *discussionResponse {
	if d == nil {
		return nil
	}
	out := &discussionResponse{
		ID:       d.ID,
		Title:    d.Title,
		Number:   d.Number,
		Comments: commentNodes{Nodes: make([]commentResponse, 0, len(d.Comments))},
	}
	for _, c := range d.Comments {
		cr := presentComment(c)
		replies := commentNodes{Nodes: make([]commentResponse, 0, len(c.Replies))}
		for _, r := range c.Replies {
			replies.Nodes = append(replies.Nodes, presentComment(r))
		}
		cr.Replies = &replies
		out.Comments.Nodes = append(out.Comments.Nodes, cr)
	}
	return out
}

func presentUser(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{Login: u.Login, Name: u.Name, AvatarURL: u.AvatarURL, URL: u.URL}
}
