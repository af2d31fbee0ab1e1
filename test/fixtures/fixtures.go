// Package fixtures provides GitHub GraphQL response payloads for adapter and
// handler tests.
package fixtures

// SearchWithDiscussion is a search result holding one discussion with a
// guest comment carrying a reply and a comment whose author was deleted.
func SearchWithDiscussion() string {
	return `{
  "data": {
    "search": {
      "nodes": [
        {
          "id": "D_kwDOA1",
          "title": "/posts/hello",
          "number": 7,
          "comments": {
            "nodes": [
              {
                "id": "DC_1",
                "body": "first!\n\n_(Posted by Guest1)_",
                "bodyHTML": "<p>first!</p>\n<p><em>(Posted by Guest1)</em></p>",
                "createdAt": "2026-01-01T12:00:00Z",
                "author": {
                  "login": "commentgate-bot",
                  "avatarUrl": "https://avatars.githubusercontent.com/u/1",
                  "url": "https://github.com/commentgate-bot"
                },
                "replies": {
                  "nodes": [
                    {
                      "id": "DC_1_R1",
                      "body": "welcome",
                      "bodyHTML": "<p>welcome</p>",
                      "createdAt": "2026-01-01T13:00:00Z",
                      "author": {
                        "login": "octocat",
                        "avatarUrl": "https://avatars.githubusercontent.com/u/583231",
                        "url": "https://github.com/octocat"
                      }
                    }
                  ]
                }
              },
              {
                "id": "DC_2",
                "body": "gone",
                "bodyHTML": "<p>gone</p>",
                "createdAt": "2026-01-02T08:00:00Z",
                "author": null,
                "replies": { "nodes": [] }
              }
            ]
          }
        }
      ]
    }
  }
}`
}

// EmptySearch is a search result with no matches.
func EmptySearch() string {
	return `{"data":{"search":{"nodes":[]}}}`
}

// SearchID is a search result carrying only a discussion id.
func SearchID(id string) string {
	return `{"data":{"search":{"nodes":[{"id":"` + id + `"}]}}}`
}

// CreateDiscussion is the createDiscussion mutation result.
func CreateDiscussion(id string) string {
	return `{"data":{"createDiscussion":{"discussion":{"id":"` + id + `"}}}}`
}

// AddDiscussionComment is the addDiscussionComment mutation result for a
// guest post made with the service account.
func AddDiscussionComment() string {
	return `{
  "data": {
    "addDiscussionComment": {
      "comment": {
        "id": "DC_new",
        "body": "hi\n\n_(Posted by Guest1)_",
        "bodyHTML": "<p>hi</p>\n<p><em>(Posted by Guest1)</em></p>",
        "createdAt": "2026-03-04T10:00:00Z",
        "author": {
          "login": "commentgate-bot",
          "avatarUrl": "https://avatars.githubusercontent.com/u/1",
          "url": "https://github.com/commentgate-bot"
        }
      }
    }
  }
}`
}

// Viewer is the viewer query result.
func Viewer() string {
	return `{"data":{"viewer":{"login":"octocat","name":"The Octocat","avatarUrl":"https://avatars.githubusercontent.com/u/583231","url":"https://github.com/octocat"}}}`
}

// GraphQLError is a response carrying a top-level GraphQL error.
func GraphQLError(message string) string {
	return `{"data":null,"errors":[{"message":"` + message + `"}]}`
}
