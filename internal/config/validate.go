package config

import (
	"fmt"

	"commentgate/pkg/log"
)

// Problem is one missing or inconsistent setting.
// Fatal problems stop the deployment from serving comments.
type Problem struct {
	Fatal   bool
	Message string
}

func (p Problem) String() string {
	if p.Fatal {
		return "error: " + p.Message
	}
	return "warning: " + p.Message
}

// Validate reports every problem with cfg and the site file. site may be nil
// when it failed to load.
func Validate(cfg *Config, site *Site) []Problem {
	var problems []Problem
	add := func(fatal bool, format string, args ...any) {
		problems = append(problems, Problem{Fatal: fatal, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.Server.Addr == "" {
		add(true, "server.addr is empty")
	}
	if cfg.Server.RequestTimeout < 0 {
		add(true, "server.request_timeout must not be negative")
	}
	if _, err := log.ParseLevel(cfg.Server.LogLevel); err != nil {
		add(false, "server.log_level %q is unknown, using info", cfg.Server.LogLevel)
	}
	if cfg.Server.LogFormat != "json" && cfg.Server.LogFormat != "console" {
		add(false, "server.log_format %q is unknown, using json", cfg.Server.LogFormat)
	}

	if site == nil {
		add(true, "site file %s could not be loaded", cfg.Server.SiteConfig)
	} else {
		comments, ok := site.Comments()
		switch {
		case !ok:
			add(true, "comments.repo is not set, comments are disabled")
		case comments.RepositoryID == "" || comments.CategoryID == "":
			add(false, "comments.repo_id or comments.category_id is not set, new threads cannot be created")
		}
		if site.SiteURL() == "" {
			add(false, "site is not set, new threads will link to bare paths")
		}
	}

	if cfg.GitHub.Token == "" {
		add(false, "github.token is not set, guests cannot post and readers need to sign in")
	}
	if cfg.GitHub.ClientID == "" || cfg.GitHub.ClientSecret == "" {
		add(false, "github.client_id or github.client_secret is not set, sign-in is disabled")
	}
	if cfg.Stripe.SecretKey == "" {
		add(false, "stripe.secret_key is not set, donations are disabled")
	}
	return problems
}

// HasFatal reports whether any problem is fatal.
func HasFatal(problems []Problem) bool {
	for _, p := range problems {
		if p.Fatal {
			return true
		}
	}
	return false
}
