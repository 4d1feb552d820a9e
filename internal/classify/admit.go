package classify

import (
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"reltag/internal/config"
)

// contentTypes covers the media extensions a release directory usually holds.
// The platform mime table is consulted for anything missing here.
var contentTypes = map[string]string{
	".mkv":  "video/x-matroska",
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".qt":   "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".mpe":  "video/mpeg",
	".m1v":  "video/mpeg",
	".m2ts": "video/mp2t",
	".ts":   "video/mp2t",
	".ogv":  "video/ogg",
	".3gp":  "video/3gpp",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".wav":  "audio/x-wav",
	".srt":  "application/x-subrip",
	".ass":  "text/x-ssa",
	".ssa":  "text/x-ssa",
	".txt":  "text/plain",
	".nfo":  "text/plain",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

var animePattern = regexp.MustCompile(`^(\[[^\]]+\])?(.*?)(\[.+\])+\.([^.]+)$`)

// ContentType returns the MIME type derived from the extension of name.
func ContentType(name string) (string, bool) {
	ext := config.NormalizeExtension(filepath.Ext(name))
	if ext == "" {
		return "", false
	}
	if ct, ok := contentTypes[ext]; ok {
		return ct, true
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct, true
	}
	return "", false
}

// Skip reports whether name should be left alone: its extension maps to no
// known content type, or to one whose primary type is not video.
func (c *Classifier) Skip(name string) bool {
	if _, ok := c.videoExts[config.NormalizeExtension(filepath.Ext(name))]; ok {
		return false
	}
	ct, ok := ContentType(name)
	if !ok {
		return true
	}
	primary, _, _ := strings.Cut(ct, "/")
	return !strings.EqualFold(strings.TrimSpace(primary), "video")
}

// IsAnime reports whether name has the shape
// "[Group] Name With Spaces [tag]...[tag].ext". The name portion must contain
// a space, which rules out bracketed non-release files.
func (c *Classifier) IsAnime(name string) bool {
	m := animePattern.FindStringSubmatch(name)
	if m == nil {
		return false
	}
	return strings.Contains(m[2], " ")
}
