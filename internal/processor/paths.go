package processor

import (
	"os"
	"path/filepath"
	"strings"
)

// SubtitleSuffix replaces the media extension on derived subtitle paths.
const SubtitleSuffix = ".en.srt"

// VideoExtensions lists the media extensions treated as transcription input.
var VideoExtensions = []string{".mp4", ".mkv", ".avi", ".webm", ".mov", ".m4v", ".flv"}

// IsVideoFile checks if the file has a supported video extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range VideoExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// SubtitlePath derives the subtitle path for a video: the media extension is
// replaced with ".en.srt", in the same directory as the input.
func SubtitlePath(videoPath string) string {
	return strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + SubtitleSuffix
}

// NeedsProcessing reports whether a video should be transcribed: always when
// force is set, otherwise only when the derived subtitle does not exist yet.
func NeedsProcessing(videoPath string, force bool) bool {
	if force {
		return true
	}
	_, err := os.Stat(SubtitlePath(videoPath))
	return err != nil
}

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (p *implProcessor) tempWAVPath(videoPath string) string {
	return filepath.Join(p.cfg.Paths.Temp, stem(videoPath)+".wav")
}

func (p *implProcessor) logPath(videoPath string) string {
	return filepath.Join(p.cfg.Paths.Logs, stem(videoPath)+".log")
}
