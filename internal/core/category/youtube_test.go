package category

import "testing"

func TestIsEducational(t *testing.T) {
	f := NewYouTubeFilter()

	tests := []struct {
		name    string
		title   string
		channel string
		want    bool
	}{
		{"whitelisted channel", "literally anything", "NeetCodeIO", true},
		{"university channel", "Introduction to Algorithms", "MIT OpenCourseWare", true},
		{"educational keywords", "Binary Search Algorithm Explained", "", true},
		{"entertainment", "Funny Cat Compilation 2024", "", false},
		{"empty title", "", "", false},
		{"no signal either way", "Wednesday afternoon", "", false},
		{"blocked outweighs", "Programming fails compilation", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsEducational(tt.title, tt.channel); got != tt.want {
				t.Errorf("IsEducational(%q, %q) = %v, want %v", tt.title, tt.channel, got, tt.want)
			}
		})
	}
}

func TestIsEducationalTieGoesToAllowed(t *testing.T) {
	f := NewYouTubeFilter()

	// Two educational keywords against one blocked keyword: blocked score is
	// 2 (double weight), educational score is 2, and a tie passes.
	title := "Python tutorial gaming engine"

	if !f.IsEducational(title, "") {
		t.Errorf("IsEducational(%q) = false, want true on tie", title)
	}
}

func TestExtractVideoInfo(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want *VideoInfo
	}{
		{
			name: "watch url",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: &VideoInfo{VideoID: "dQw4w9WgXcQ", Kind: "video"},
		},
		{
			name: "channel url",
			url:  "https://www.youtube.com/channel/UC123",
			want: &VideoInfo{Kind: "channel", Path: "/channel/UC123"},
		},
		{"not youtube", "https://vimeo.com/12345", nil},
		{"watch without id", "https://www.youtube.com/watch", nil},
		{"garbage", "://not-a-url", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractVideoInfo(tt.url)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ExtractVideoInfo(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("ExtractVideoInfo(%q) = %+v, want %+v", tt.url, got, tt.want)
			}
		})
	}
}
