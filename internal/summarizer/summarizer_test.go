package summarizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/subwhisper/subwhisper/internal/logger"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:02,000
Welcome to the tutorial.

2
00:00:02,000 --> 00:00:04,000
First, open the settings panel.
`

func TestDiscoverSRTFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.en.srt", "a.en.srt", "video.mp4", ".hidden.srt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	s := New([]string{"key"}, "", logger.New("error")).(*implSummarizer)

	files, err := s.discoverSRTFiles(dir)
	if err != nil {
		t.Fatalf("discoverSRTFiles() error = %v", err)
	}

	want := []string{filepath.Join(dir, "a.en.srt"), filepath.Join(dir, "b.en.srt")}
	if len(files) != len(want) {
		t.Fatalf("discoverSRTFiles() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestSrtStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/out/movie.en.srt", "movie"},
		{"plain.srt", "plain"},
		{"some.name.en.srt", "some.name"},
	}

	for _, tt := range tests {
		if got := srtStem(tt.input); got != tt.want {
			t.Errorf("srtStem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDialogueLines(t *testing.T) {
	lines := dialogueLines(sampleSRT)

	want := []string{"Welcome to the tutorial.", "First, open the settings panel."}
	if len(lines) != len(want) {
		t.Fatalf("dialogueLines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSrtToDocx(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "transcript.docx")

	if err := srtToDocx("Tutorial", sampleSRT, outPath); err != nil {
		t.Fatalf("srtToDocx() error = %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("expected docx output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx output is empty")
	}
}

func TestMarkdownToDocx(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "summary.docx")
	markdown := "# Title\n\n- First **bold** point\n- Second point\n\n1. Numbered\n"

	if err := markdownToDocx("Tutorial", markdown, outPath); err != nil {
		t.Fatalf("markdownToDocx() error = %v", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		t.Fatalf("expected docx output: %v", err)
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	if got := cleanMarkdownInline("**bold** and `code` and __under__"); got != "bold and code and under" {
		t.Errorf("cleanMarkdownInline() = %q", got)
	}
}
