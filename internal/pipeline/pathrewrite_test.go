package pipeline

// Notes:
// - parseHTML/renderHTML error branches are not covered: x/net/html does
//   not fail on the markup goldmark produces.
// - Traversal cases assert the observable result (path left as written).

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testSourceDir() string {
	if runtime.GOOS == "windows" {
		return `C:\site`
	}
	return "/site"
}

// ---------------------------------------------------------------------------
// TestRewriteRelativePaths - Attributes and styles
// ---------------------------------------------------------------------------

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		html      string
		sourceDir string
		want      []string
		avoid     []string
	}{
		{
			name:      "card image tag",
			html:      `<div class="nt-card-image tags"><img src="img/team.png" alt=""/></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`src="file://`, `team.png"`},
		},
		{
			name:      "card link to local page",
			html:      `<div class="nt-card"><a href="./guide.html"><div></div></a></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`href="file://`},
		},
		{
			name:      "card background image",
			html:      `<div class="nt-card-image" style="background-image: url('img/bg.jpg')"></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`style="background-image: url(&#39;file://`, `bg.jpg&#39;)"`},
		},
		{
			name:      "background image with escaped quote",
			html:      `<div style="background-image: url('it%27s.jpg')"></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`url(&#39;file://`, `it%27s.jpg&#39;)`},
		},
		{
			name:      "remote background image unchanged",
			html:      `<div style="background-image: url('https://cdn.example.com/bg.jpg')"></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`url(&#39;https://cdn.example.com/bg.jpg&#39;)`},
		},
		{
			name:      "style without url unchanged",
			html:      `<div class="nt-plan-bar" style="left: 0.00%; width: 10.00%"></div>`,
			sourceDir: testSourceDir(),
			want:      []string{`style="left: 0.00%; width: 10.00%"`},
		},
		{
			name:      "anchors and urls unchanged",
			html:      `<a href="#top">a</a><a href="https://example.com">b</a><img src="data:image/png;base64,AA"/><img src="//cdn/x.png"/>`,
			sourceDir: testSourceDir(),
			want:      []string{`href="#top"`, `href="https://example.com"`, `src="data:image/png;base64,AA"`, `src="//cdn/x.png"`},
			avoid:     []string{"file://"},
		},
		{
			name:      "absolute path unchanged",
			html:      `<img src="/var/www/logo.png"/>`,
			sourceDir: testSourceDir(),
			want:      []string{`src="/var/www/logo.png"`},
		},
		{
			name:      "media elements unchanged",
			html:      `<video src="./clip.mp4"></video>`,
			sourceDir: testSourceDir(),
			want:      []string{`src="./clip.mp4"`},
		},
		{
			name:      "no source dir is a no-op",
			html:      `<img src="./logo.png">`,
			sourceDir: "",
			want:      []string{`<img src="./logo.png">`},
		},
		{
			name:      "other attributes kept",
			html:      `<img src="a.png" alt="Team" width="320"/>`,
			sourceDir: testSourceDir(),
			want:      []string{`alt="Team"`, `width="320"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, tt.sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() unexpected error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, s := range tt.avoid {
				if strings.Contains(got, s) {
					t.Errorf("output should not contain %q\ngot: %s", s, got)
				}
			}
		})
	}
}

func TestRewriteRelativePaths_Traversal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "img escaping source dir", html: `<img src="../../etc/passwd">`, want: `src="../../etc/passwd"`},
		{name: "dot dot in the middle", html: `<img src="img/../../../etc/passwd">`, want: `src="img/../../../etc/passwd"`},
		{name: "background escaping source dir", html: `<div style="background-image: url('../secret.png')"></div>`, want: `url(&#39;../secret.png&#39;)`},
		{name: "nested path allowed", html: `<img src="img/a/b/c.png">`, want: `src="file://`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.html, testSourceDir())
			if err != nil {
				t.Fatalf("RewriteRelativePaths() unexpected error: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("RewriteRelativePaths() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePaths_FullDocument(t *testing.T) {
	t.Parallel()

	doc := "<!DOCTYPE html>\n<html>\n<head><title>Team</title></head>\n<body>\n<img src=\"a.png\"/>\n</body>\n</html>"
	got, err := RewriteRelativePaths(doc, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() unexpected error: %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Team</title>", `src="file://`} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\ngot: %s", want, got)
		}
	}
}

func TestRewriteRelativePaths_FragmentNotWrapped(t *testing.T) {
	t.Parallel()

	got, err := RewriteRelativePaths(`<p>text</p>`, testSourceDir())
	if err != nil {
		t.Fatalf("RewriteRelativePaths() unexpected error: %v", err)
	}
	if strings.Contains(got, "<html") || strings.Contains(got, "<body") {
		t.Errorf("fragment wrapped in document: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestIsRelativePath / TestIsPathUnderDir / TestPathToFileURL - Helpers
// ---------------------------------------------------------------------------

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"team.png", true},
		{"./img/team.png", true},
		{"../up.png", true},
		{"", false},
		{"#anchor", false},
		{"http://example.com/a.png", false},
		{"https://example.com/a.png", false},
		{"file:///a.png", false},
		{"data:image/png;base64,AA", false},
		{"//cdn.example.com/a.png", false},
		{"/abs/a.png", false},
	}

	for _, tt := range tests {
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		absPath string
		dir     string
		want    bool
	}{
		{"/site/a.png", "/site", true},
		{"/site/img/a.png", "/site/", true},
		{"/site", "/site", true},
		{"/etc/passwd", "/site", false},
		{"/site-old/a.png", "/site", false},
	}

	for _, tt := range tests {
		absPath, dir := filepath.FromSlash(tt.absPath), filepath.FromSlash(tt.dir)
		if got := isPathUnderDir(absPath, dir); got != tt.want {
			t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", absPath, dir, got, tt.want)
		}
	}
}

func TestPathToFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}

	tests := []struct {
		absPath string
		want    string
	}{
		{"/site/img/a.png", "file:///site/img/a.png"},
		{"/site/my img/a.png", "file:///site/my%20img/a.png"},
		{"/site/équipe/a.png", "file:///site/%C3%A9quipe/a.png"},
	}

	for _, tt := range tests {
		if got := pathToFileURL(tt.absPath); got != tt.want {
			t.Errorf("pathToFileURL(%q) = %q, want %q", tt.absPath, got, tt.want)
		}
	}
}
