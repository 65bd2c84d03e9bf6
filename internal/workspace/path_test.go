package workspace

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/clg/internal/giturl"
)

func normalize(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, _, err := giturl.Classify(raw)
	if err != nil {
		t.Fatalf("Classify(%q): %v", raw, err)
	}
	return u
}

func TestDestinationPath(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/tmp")

	tests := []struct {
		name     string
		url      string
		override string
		want     string
	}{
		{"https", "https://github.com/eagletmt/clg", "", "/tmp/github.com/eagletmt/clg"},
		{"strips .git", "https://github.com/eagletmt/clg.git", "", "/tmp/github.com/eagletmt/clg"},
		{"override name", "https://github.com/eagletmt/clg.git", "clg2", "/tmp/github.com/eagletmt/clg2"},
		{"override with .git", "https://github.com/eagletmt/clg", "clg2.git", "/tmp/github.com/eagletmt/clg2"},
		{"scp-like", "git@github.com:eagletmt/clg.git", "", "/tmp/github.com/eagletmt/clg"},
		{"shorthand", "eagletmt/clg", "", "/tmp/github.com/eagletmt/clg"},
		{"repo only", "https://example.com/repo", "", "/tmp/example.com/repo"},
		{"port dropped", "ssh://git@example.com:2222/owner/repo.git", "", "/tmp/example.com/owner/repo"},
		{"nested groups", "https://gitlab.com/group/sub/repo.git", "", "/tmp/gitlab.com/group/sub/repo"},
		{"trailing slash", "https://github.com/eagletmt/clg/", "", "/tmp/github.com/eagletmt/clg"},
		{"repeated slashes", "https://github.com//eagletmt///clg", "", "/tmp/github.com/eagletmt/clg"},
		{"only .git extension stripped", "https://github.com/owner/repo.gitx", "", "/tmp/github.com/owner/repo.gitx"},
		{"dot git segment kept", "https://github.com/owner/.git", "", "/tmp/github.com/owner/.git"},
		{"no path with override", "https://github.com", "clg", "/tmp/github.com/clg"},
		{"no path", "https://github.com", "", "/tmp/github.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DestinationPath(root, normalize(t, tt.url), tt.override)
			if err != nil {
				t.Fatalf("DestinationPath error: %v", err)
			}
			if want := filepath.FromSlash(tt.want); got != want {
				t.Errorf("DestinationPath(%q, %q) = %q, want %q", tt.url, tt.override, got, want)
			}
		})
	}
}

func TestDestinationPathErrors(t *testing.T) {
	t.Parallel()

	t.Run("no host", func(t *testing.T) {
		t.Parallel()
		u, err := url.Parse("file:///srv/repo.git")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := DestinationPath("/tmp", u, ""); !errors.Is(err, ErrNoHost) {
			t.Errorf("error = %v, want ErrNoHost", err)
		}
	})

	t.Run("parent segment", func(t *testing.T) {
		t.Parallel()
		u := &url.URL{Scheme: "https", Host: "github.com", Path: "/owner/../../etc"}
		if _, err := DestinationPath("/tmp", u, ""); err == nil {
			t.Error("expected error for .. segment")
		}
	})

	t.Run("separator in name", func(t *testing.T) {
		t.Parallel()
		if _, err := DestinationPath("/tmp", normalize(t, "eagletmt/clg"), "a/b"); err == nil {
			t.Error("expected error for name containing a separator")
		}
	})
}

func TestDestinationPathStable(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/tmp")
	for _, raw := range []string{
		"https://github.com/eagletmt/clg.git",
		"git@github.com:eagletmt/clg.git",
		"https://gitlab.com/group/sub/repo.git",
	} {
		first, err := DestinationPath(root, normalize(t, raw), "")
		if err != nil {
			t.Fatalf("DestinationPath(%q): %v", raw, err)
		}

		rel, err := RelPath(root, first)
		if err != nil {
			t.Fatal(err)
		}
		host, path, _ := strings.Cut(rel, "/")
		rederived := &url.URL{Scheme: "https", Host: host, Path: "/" + path}
		second, err := DestinationPath(root, rederived, "")
		if err != nil {
			t.Fatalf("DestinationPath(%q): %v", rederived, err)
		}
		if first != second {
			t.Errorf("re-derived %q from %q, want stable", second, first)
		}
	}
}

func TestRelPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	got, err := RelPath(root, filepath.Join(root, "github.com", "eagletmt", "clg"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "github.com/eagletmt/clg" {
		t.Errorf("RelPath = %q, want %q", got, "github.com/eagletmt/clg")
	}
}
