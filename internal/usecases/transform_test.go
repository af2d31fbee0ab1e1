package usecases

import (
	"testing"
	"time"

	"commentgate/internal/domain"

	"github.com/google/go-cmp/cmp"
)

var botAuthor = domain.Author{
	DisplayName: "commentgate-bot",
	ProfileURL:  "https://github.com/commentgate-bot",
	AvatarURL:   "https://avatars.githubusercontent.com/u/1",
}

func TestNormalizeComment_GuestMarker(t *testing.T) {
	// Arrange
	c := domain.Comment{
		ID:           "C1",
		RawBody:      "hi\n\n_(Posted by Jane Doe)_",
		RenderedBody: "<p>hi</p>\n<p><em>(Posted by Jane Doe)</em></p>",
		Author:       botAuthor,
	}

	// Act
	NormalizeComment(&c)

	// Assert
	want := domain.Comment{
		ID:           "C1",
		RawBody:      "hi\n\n_(Posted by Jane Doe)_",
		RenderedBody: "<p>hi</p>\n",
		Author: domain.Author{
			DisplayName: "Jane Doe",
			ProfileURL:  "",
			AvatarURL:   "https://api.dicebear.com/9.x/initials/svg?seed=Jane%20Doe",
		},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("NormalizeComment mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeComment_Idempotent(t *testing.T) {
	c := domain.Comment{
		RawBody:      "hi\n\n_(Posted by Guest1)_",
		RenderedBody: "<p>hi</p><p><em>(Posted by Guest1)</em></p>",
		Author:       botAuthor,
	}

	NormalizeComment(&c)
	once := c
	NormalizeComment(&c)

	if diff := cmp.Diff(once, c); diff != "" {
		t.Errorf("second pass changed the comment (-once +twice):\n%s", diff)
	}
}

func TestNormalizeComment_NoMarkerKeepsAuthor(t *testing.T) {
	c := domain.Comment{RawBody: "plain", RenderedBody: "<p>plain</p>", Author: botAuthor}

	NormalizeComment(&c)

	if c.Author != botAuthor || c.RenderedBody != "<p>plain</p>" {
		t.Errorf("comment changed: %+v", c)
	}
}

func TestNormalizeThread_ReversesBothLevels(t *testing.T) {
	// Arrange
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	comments := []domain.Comment{
		{ID: "A", RawBody: "A", RenderedBody: "<p>A</p>", CreatedAt: t0, Author: botAuthor,
			Replies: []domain.Comment{
				{ID: "A1", RawBody: "r1", Author: botAuthor},
				{ID: "A2", RawBody: "r2\n\n_(Posted by X)_", RenderedBody: "<p>r2</p><p><em>(Posted by X)</em></p>", Author: botAuthor},
			}},
		{ID: "B", RawBody: "B\n\n_(Posted by X)_", RenderedBody: "<p>B</p><p><em>(Posted by X)</em></p>", CreatedAt: t0.Add(time.Hour), Author: botAuthor},
	}

	// Act
	got := NormalizeThread(comments)

	// Assert
	ids := func(cs []domain.Comment) []string {
		out := make([]string, len(cs))
		for i, c := range cs {
			out[i] = c.ID
		}
		return out
	}
	if diff := cmp.Diff([]string{"B", "A"}, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if got[0].RenderedBody != "<p>B</p>" || got[0].Author.DisplayName != "X" {
		t.Errorf("B not normalized: %+v", got[0])
	}
	if diff := cmp.Diff([]string{"A2", "A1"}, ids(got[1].Replies)); diff != "" {
		t.Errorf("reply order mismatch (-want +got):\n%s", diff)
	}
	if got[1].Replies[0].Author.DisplayName != "X" || !got[1].Replies[0].Author.IsGuest() {
		t.Errorf("reply not normalized: %+v", got[1].Replies[0])
	}
}

func TestNormalizeNewGuestComment(t *testing.T) {
	c := domain.Comment{
		RawBody:      "hi\n\n_(Posted by Guest1)_",
		RenderedBody: "<p>hi</p>\n<p><em>(Posted by Guest1)</em></p>",
		Author:       botAuthor,
	}

	NormalizeNewGuestComment(&c, "Guest1")

	if diff := cmp.Diff(domain.GuestAuthor("Guest1"), c.Author); diff != "" {
		t.Errorf("author mismatch (-want +got):\n%s", diff)
	}
	if c.RenderedBody != "<p>hi</p>\n" {
		t.Errorf("RenderedBody = %q", c.RenderedBody)
	}
}
