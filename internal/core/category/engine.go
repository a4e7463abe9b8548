package category

import (
	"strings"

	"prodtrack/internal/core/config"
	"prodtrack/internal/core/models"
)

var terminalKeywords = []string{"cmd", "powershell", "terminal", "git"}

var studyingTitleKeywords = []string{"canvas", "coursera", "udemy", "khan academy"}

var jobTitleKeywords = []string{"job", "career", "apply", "resume"}

var browserNames = []string{"chrome", "firefox", "edge", "safari", "browser"}

var educationalSites = []string{"stackoverflow.com", "github.com", "documentation", "tutorial", "learn"}

var devHostingKeywords = []string{"github", "gitlab", "bitbucket", "code"}

var youtubeHustleKeywords = []string{
	"programming", "coding", "developer", "tutorial", "how to code",
	"productivity", "motivation", "tips", "career advice", "programmer", "better",
}

var linkedinWorkKeywords = []string{"job", "apply", "message", "post job"}

var ideNames = []string{"code", "idea"}

// Engine categorizes activity samples against configured rule lists.
// Rules are a first-match chain; order is part of the contract because
// overlapping matches (a terminal title containing a studying keyword)
// resolve to whichever rule fires first.
type Engine struct {
	buildingApps          []string
	studyingApps          []string
	applyingSites         []string
	pseudoProductiveSites []string
}

// NewEngine builds an engine from the loaded config
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{
		buildingApps:          cfg.BuildingApps,
		studyingApps:          cfg.StudyingApps,
		applyingSites:         cfg.ApplyingSites,
		pseudoProductiveSites: cfg.PseudoProductiveSites,
	}
}

// Categorize maps an (app, window title) pair to an activity category.
// Matching is case-insensitive substring; a building-app match short-circuits
// every other rule.
func (e *Engine) Categorize(appName, windowTitle string) models.Category {
	app := strings.ToLower(appName)
	title := strings.ToLower(windowTitle)

	if matchAny(app, e.buildingApps) {
		return models.Building
	}
	if matchAny(app, terminalKeywords) {
		return models.Building
	}

	if matchAny(app, e.studyingApps) {
		return models.Studying
	}
	if matchAny(title, studyingTitleKeywords) {
		return models.Studying
	}

	if strings.Contains(title, "linkedin") || strings.Contains(app, "linkedin") {
		if matchAny(title, jobTitleKeywords) {
			return models.Applying
		}
	}
	if matchAny(title, e.applyingSites) {
		return models.Applying
	}

	if matchAny(app, browserNames) {
		return e.categorizeBrowser(title)
	}

	return models.Knowledge
}

// categorizeBrowser sub-classifies browser activity by window title
func (e *Engine) categorizeBrowser(title string) models.Category {
	if matchAny(title, e.applyingSites) {
		return models.Applying
	}
	if matchAny(title, educationalSites) {
		return models.Knowledge
	}
	if matchAny(title, devHostingKeywords) {
		return models.Building
	}
	// Distraction sites land in Knowledge and get flagged pseudo-productive
	return models.Knowledge
}

// IsPseudoProductive flags activity that looks like work but usually isn't.
// Independent of Categorize: a flagged sample can carry any category.
func (e *Engine) IsPseudoProductive(appName, windowTitle string) bool {
	app := strings.ToLower(appName)
	title := strings.ToLower(windowTitle)

	if strings.Contains(title, "youtube") && matchAny(title, youtubeHustleKeywords) {
		return true
	}

	if matchAny(title, e.pseudoProductiveSites) {
		return true
	}

	if strings.Contains(title, "reddit") {
		return true
	}

	// LinkedIn feed scrolling, as opposed to actual applications
	if strings.Contains(title, "linkedin") && !matchAny(title, linkedinWorkKeywords) {
		return true
	}

	// IDE open on an untitled buffer: open but idle
	if matchAny(app, ideNames) && strings.Contains(title, "untitled") {
		return true
	}

	return false
}

func matchAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
