package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCheck(t *testing.T, configPath string) (string, error) {
	t.Helper()
	for _, name := range []string{"STRIPE_SECRET_KEY", "COMMENTGATE_STRIPE_SECRET_KEY", "GITHUB_PERSONAL_ACCESS_TOKEN", "COMMENTGATE_GITHUB_TOKEN"} {
		t.Setenv(name, "")
	}
	var out bytes.Buffer
	app := newApp(&out)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run([]string{"commentgate", "--config", configPath, "--env-file", "", "check-config"})
	return out.String(), err
}

func TestCheckConfig_UsableDeployment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	site := writeFile(t, dir, "site.yaml", "site: https://blog.example\ncomments:\n  repo: acme/blog\n  repo_id: R_1\n  category_id: DIC_1\n")
	cfg := writeFile(t, dir, "commentgate.toml", "[server]\nsite_config = \""+filepath.ToSlash(site)+"\"\n\n[github]\ntoken = \"ghp_x\"\nclient_id = \"id\"\nclient_secret = \"secret\"\n\n[stripe]\nsecret_key = \"sk_test_x\"\n")

	// Act
	out, err := runCheck(t, cfg)

	// Assert
	if err != nil {
		t.Fatalf("check-config error = %v, output:\n%s", err, out)
	}
	if !strings.Contains(out, "configuration ok") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckConfig_MissingRepoIsFatal(t *testing.T) {
	dir := t.TempDir()
	site := writeFile(t, dir, "site.yaml", "site: https://blog.example\n")
	cfg := writeFile(t, dir, "commentgate.toml", "[server]\nsite_config = \""+filepath.ToSlash(site)+"\"\n")

	out, err := runCheck(t, cfg)

	if err == nil {
		t.Fatalf("expected failure, output:\n%s", out)
	}
	if !strings.Contains(out, "error: comments.repo is not set") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "warning: stripe.secret_key is not set") {
		t.Errorf("output = %q", out)
	}
}

func TestCheckConfig_UnreadableSiteFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "commentgate.toml", "[server]\nsite_config = \""+filepath.ToSlash(filepath.Join(dir, "missing.yaml"))+"\"\n")

	out, err := runCheck(t, cfg)

	if err == nil || !strings.Contains(out, "could not be loaded") {
		t.Errorf("err = %v, output = %q", err, out)
	}
}
