package category

import (
	"testing"

	"prodtrack/internal/core/config"
	"prodtrack/internal/core/models"
)

func testEngine() *Engine {
	return NewEngine(config.Default())
}

func TestCategorize(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name  string
		app   string
		title string
		want  models.Category
	}{
		{"ide", "code", "main.go - Visual Studio Code", models.Building},
		{"ide case insensitive", "Code", "MAIN.GO", models.Building},
		{"terminal keyword", "cmd", "C:\\Users\\dev", models.Building},
		{"studying app", "acrobat", "lecture-notes.pdf", models.Studying},
		{"studying title keyword", "some-viewer", "Coursera - Machine Learning", models.Studying},
		{"linkedin job search", "chrome", "LinkedIn - Software Engineer Jobs", models.Applying},
		{"applying site in title", "chrome", "Senior Go roles | indeed.com", models.Applying},
		{"browser dev hosting", "firefox", "myrepo - GitLab", models.Building},
		{"browser stackoverflow", "chrome", "go - range over channel - stackoverflow.com", models.Knowledge},
		{"browser default", "chrome", "Some random page", models.Knowledge},
		{"unknown sample", "Unknown", "Unknown", models.Knowledge},
		{"unmatched app", "calculator", "Calculator", models.Knowledge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.Categorize(tt.app, tt.title); got != tt.want {
				t.Errorf("Categorize(%q, %q) = %v, want %v", tt.app, tt.title, got, tt.want)
			}
		})
	}
}

func TestBuildingAppPriority(t *testing.T) {
	e := testEngine()

	// A building-app match short-circuits every later rule, even when the
	// title would match studying or applying keywords.
	titles := []string{
		"Coursera course notes",
		"LinkedIn - apply for jobs",
		"linkedin.com - feed",
		"YouTube - programming tutorial",
	}
	for _, title := range titles {
		if got := e.Categorize("code", title); got != models.Building {
			t.Errorf("Categorize(code, %q) = %v, want Building", title, got)
		}
	}
}

func TestIsPseudoProductive(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name  string
		app   string
		title string
		want  bool
	}{
		{"youtube hustle content", "chrome", "YouTube - How to be a better programmer", true},
		{"youtube unrelated", "chrome", "YouTube - cooking pasta", false},
		{"pseudo productive site", "chrome", "front page - reddit.com", true},
		{"reddit anywhere in title", "chrome", "r/golang on reddit", true},
		{"linkedin feed scrolling", "chrome", "LinkedIn - Feed", true},
		{"linkedin actual applying", "chrome", "LinkedIn - apply to job", false},
		{"ide untitled buffer", "code", "Untitled-1 - Visual Studio Code", true},
		{"ide real file", "code", "tracker.go - Visual Studio Code", false},
		{"plain work", "acrobat", "textbook.pdf", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsPseudoProductive(tt.app, tt.title); got != tt.want {
				t.Errorf("IsPseudoProductive(%q, %q) = %v, want %v", tt.app, tt.title, got, tt.want)
			}
		})
	}
}

func TestPseudoProductiveIndependentOfCategory(t *testing.T) {
	e := testEngine()

	// Building app plus a pseudo-productive title: category stays Building
	// and the flag is still set.
	app, title := "code", "Untitled-1 - Visual Studio Code"

	if got := e.Categorize(app, title); got != models.Building {
		t.Errorf("Categorize() = %v, want Building", got)
	}
	if !e.IsPseudoProductive(app, title) {
		t.Error("IsPseudoProductive() = false, want true")
	}
}
