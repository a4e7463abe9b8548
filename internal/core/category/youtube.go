package category

import (
	"net/url"
	"strings"
)

// YouTubeFilter decides whether a video counts as educational content.
// Unlike the Engine's first-match rules this is scored: blocked keywords
// weigh double, and a title must score at least as high on the educational
// side to pass.
type YouTubeFilter struct {
	allowedChannels     []string
	educationalKeywords []string
	blockedKeywords     []string
}

// NewYouTubeFilter returns a filter with the built-in keyword tables
func NewYouTubeFilter() *YouTubeFilter {
	return &YouTubeFilter{
		allowedChannels: []string{
			"neetcode", "neetcodeio", "leetcode",
			"freecodecamp", "codecademy", "coursera",
			"khanacademy", "khan academy",
			"mit", "stanford", "harvard", "berkeley", "cs50",
			"3blue1brown", "computerphile", "numberphile",
			"programming with mosh", "traversy media", "corey schafer",
			"tech with tim", "sentdex", "derek banas",
			"ben eater", "computerscience", "algorithms explained",
			"geeksforgeeks", "tutorialspoint",
		},
		educationalKeywords: []string{
			"tutorial", "course", "lecture", "learn", "learning",
			"programming", "coding", "algorithm", "data structure",
			"computer science", "software engineering", "development",
			"python", "javascript", "java", "c++", "react", "node", "angular", "vue",
			"interview", "leetcode", "coding interview", "system design",
			"mathematics", "calculus", "statistics", "physics", "machine learning",
			"university", "college", "education", "academic", "bootcamp",
			"explained", "how to", "guide", "walkthrough", "beginner", "basics",
			"web development", "app development", "software",
		},
		blockedKeywords: []string{
			"funny", "meme", "memes", "reaction", "reacting",
			"prank", "pranks", "fail", "fails", "compilation",
			"tiktok", "shorts", "vlog", "vlogging", "daily vlog",
			"lifestyle", "drama", "gossip", "celebrity",
			"gaming", "gameplay", "stream", "streaming", "highlights",
			"music video", "song", "album", "concert", "live performance",
			"unboxing", "haul", "shopping",
			"storytime", "story time", "my life",
			"roast", "roasting", "diss", "beef", "exposed",
		},
	}
}

// IsEducational reports whether a video should be allowed. A whitelisted
// channel short-circuits; otherwise educational keywords score 1 each,
// blocked keywords score 2 each, and the video passes iff the educational
// score is positive and not outscored. Ties go to allowed.
func (f *YouTubeFilter) IsEducational(title, channel string) bool {
	if title == "" {
		return false
	}
	titleLower := strings.ToLower(title)

	if channel != "" {
		channelLower := strings.ToLower(channel)
		for _, allowed := range f.allowedChannels {
			if strings.Contains(channelLower, allowed) {
				return true
			}
		}
	}

	educationalScore := 0
	for _, kw := range f.educationalKeywords {
		if strings.Contains(titleLower, kw) {
			educationalScore++
		}
	}

	blockedScore := 0
	for _, kw := range f.blockedKeywords {
		if strings.Contains(titleLower, kw) {
			blockedScore += 2
		}
	}

	return educationalScore > 0 && educationalScore >= blockedScore
}

// VideoInfo identifies a YouTube resource extracted from a URL
type VideoInfo struct {
	VideoID string
	Kind    string // "video" or "channel"
	Path    string
}

// ExtractVideoInfo pulls the video or channel identity out of a YouTube URL.
// Returns nil for anything that isn't a recognizable YouTube link.
func ExtractVideoInfo(rawURL string) *VideoInfo {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	if !strings.Contains(parsed.Host, "youtube.com") {
		return nil
	}

	if strings.Contains(parsed.Path, "watch") {
		id := parsed.Query().Get("v")
		if id == "" {
			return nil
		}
		return &VideoInfo{VideoID: id, Kind: "video"}
	}

	if strings.Contains(parsed.Path, "/c/") || strings.Contains(parsed.Path, "/channel/") {
		return &VideoInfo{Kind: "channel", Path: parsed.Path}
	}

	return nil
}
