package convert

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/Shane32/BookConverter/config"
	"github.com/Shane32/BookConverter/state"
)

func testEnv(t *testing.T) *state.LocalEnv {
	t.Helper()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration: %v", err)
	}
	return &state.LocalEnv{Cfg: cfg}
}

func TestBuildDefaultFileName(t *testing.T) {
	env := testEnv(t)

	t.Run("plain", func(t *testing.T) {
		got := buildDefaultFileName("/books/the book.html", ".docx", env)
		if got != "the book.docx" {
			t.Fatalf("unexpected name: %q", got)
		}
	})

	t.Run("transliterated", func(t *testing.T) {
		env.Cfg.Document.FileNameTransliterate = true
		defer func() { env.Cfg.Document.FileNameTransliterate = false }()

		got := buildDefaultFileName("/books/The Book, Its Story.html", ".docx", env)
		if got != "the-book-its-story.docx" {
			t.Fatalf("unexpected transliterated name: %q", got)
		}
	})

	t.Run("json_output", func(t *testing.T) {
		got := buildDefaultFileName("source.html", ".json", env)
		if got != "source.json" {
			t.Fatalf("unexpected name: %q", got)
		}
	})
}

func TestPrepareOutput(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env := testEnv(t)

	t.Run("creates_missing_directories", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "a", "b", "out.docx")
		if err := prepareOutput(dst, env, log); err != nil {
			t.Fatalf("prepareOutput: %v", err)
		}
		if fi, err := os.Stat(filepath.Dir(dst)); err != nil || !fi.IsDir() {
			t.Fatalf("output directory not created: %v", err)
		}
	})

	t.Run("refuses_existing_without_overwrite", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out.docx")
		if err := os.WriteFile(dst, []byte("x"), 0644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
		env.Overwrite = false
		if err := prepareOutput(dst, env, log); err == nil {
			t.Fatal("expected error for existing destination")
		}
	})

	t.Run("allows_existing_with_overwrite", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "out.docx")
		if err := os.WriteFile(dst, []byte("x"), 0644); err != nil {
			t.Fatalf("seed file: %v", err)
		}
		env.Overwrite = true
		defer func() { env.Overwrite = false }()
		if err := prepareOutput(dst, env, log); err != nil {
			t.Fatalf("prepareOutput: %v", err)
		}
	})
}
