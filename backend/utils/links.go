package utils

import (
	"regexp"
	"strings"
)

// Known Google link shapes that can be rewritten into a direct-download
// variant. Folders, YouTube links and anything unrecognized fall back
// to the original URL.
var (
	driveFileRe = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
	driveOpenRe = regexp.MustCompile(`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`)
	docsFileRe  = regexp.MustCompile(`docs\.google\.com/document/d/([a-zA-Z0-9_-]+)`)
)

// DownloadURL rewrites a stored material URL into a direct-download
// link where the pattern is known.
func DownloadURL(url string) string {
	if strings.Contains(url, "drive.google.com/drive/folders") {
		return url
	}
	if m := driveFileRe.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1]
	}
	if m := driveOpenRe.FindStringSubmatch(url); m != nil {
		return "https://drive.google.com/uc?export=download&id=" + m[1]
	}
	if m := docsFileRe.FindStringSubmatch(url); m != nil {
		return "https://docs.google.com/document/d/" + m[1] + "/export?format=pdf"
	}
	return url
}

// IsYouTubeURL reports whether a material link points at YouTube.
func IsYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}
