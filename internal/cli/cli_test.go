package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sprintdeck/pkg/config"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

const (
	englishCSV = "mission,name,time\nFix bug,Alice,2\nWrite docs,Bob,3\n"
	hebrewCSV  = "משימה,שם,זמן\nלתקן באג,דנה,2\n"
)

func testCLI(t *testing.T, env map[string]string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out
	c.Err = io.Discard
	c.WorkDir = t.TempDir()
	c.Getenv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	return c, &out
}

func run(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func writeInput(t *testing.T, c *CLI, rel, content string) string {
	t.Helper()
	p := filepath.Join(c.WorkDir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir(%s): %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestGenerateDefaults(t *testing.T) {
	c, out := testCLI(t, nil)
	writeInput(t, c, filepath.Join(config.DefaultInputDir, config.DefaultInputFile), englishCSV)

	if err := run(c, "generate", "-f", "svg,json"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	files := listDir(t, filepath.Join(c.WorkDir, config.DefaultOutputDir))
	if len(files) != 2 {
		t.Fatalf("output files = %v, want 2", files)
	}
	for _, f := range files {
		if !strings.HasPrefix(f, "presentation_") {
			t.Errorf("file %q should start with presentation_", f)
		}
	}
	if !strings.Contains(out.String(), "Presentation generated") || !strings.Contains(out.String(), "2 rows") {
		t.Errorf("output = %q", out.String())
	}
}

func TestGenerateExplicitPaths(t *testing.T) {
	c, _ := testCLI(t, nil)
	writeInput(t, c, "sheet.csv", englishCSV)

	if err := run(c, "generate", "sheet.csv", "-o", "out", "--prefix", "board", "-f", "svg"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	files := listDir(t, filepath.Join(c.WorkDir, "out"))
	if len(files) != 1 || !strings.HasPrefix(files[0], "board_") || !strings.HasSuffix(files[0], ".svg") {
		t.Errorf("output files = %v", files)
	}
	// The default input directory is still created.
	if _, err := os.Stat(filepath.Join(c.WorkDir, config.DefaultInputDir)); err != nil {
		t.Errorf("input directory not created: %v", err)
	}
}

func TestGenerateMissingInput(t *testing.T) {
	c, _ := testCLI(t, nil)

	err := run(c, "generate")
	if !errs.Is(err, errs.ErrCodeInputNotFound) {
		t.Fatalf("generate error = %v, want INPUT_NOT_FOUND", err)
	}
	if got := errs.ExitCode(err); got != errs.ExitInput {
		t.Errorf("ExitCode = %d, want %d", got, errs.ExitInput)
	}
	for _, d := range []string{config.DefaultInputDir, config.DefaultOutputDir} {
		if _, err := os.Stat(filepath.Join(c.WorkDir, d)); err != nil {
			t.Errorf("directory %q not created: %v", d, err)
		}
	}
}

func TestGenerateInvalidDirection(t *testing.T) {
	c, _ := testCLI(t, nil)
	writeInput(t, c, "jobs.csv", englishCSV)

	err := run(c, "generate", "jobs.csv", "--direction", "down")
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("generate error = %v, want INVALID_CONFIG", err)
	}
}

func TestGenerateUsesConfigFileAndEnv(t *testing.T) {
	c, _ := testCLI(t, map[string]string{"SPRINTDECK_OUTPUT_DIR": "from-env"})
	writeInput(t, c, filepath.Join(config.DefaultInputDir, config.DefaultInputFile), englishCSV)
	writeInput(t, c, "sprintdeck.toml", "[output]\nformats = [\"json\"]\nprefix = \"weekly\"\n")

	if err := run(c, "generate"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	files := listDir(t, filepath.Join(c.WorkDir, "from-env"))
	if len(files) != 1 || !strings.HasPrefix(files[0], "weekly_") || !strings.HasSuffix(files[0], ".json") {
		t.Errorf("output files = %v", files)
	}
}

func TestGenerateBadConfigFile(t *testing.T) {
	c, _ := testCLI(t, nil)
	writeInput(t, c, "custom.yaml", "output:\n  colour: red\n")

	err := run(c, "--config", "custom.yaml", "generate")
	if !errs.Is(err, errs.ErrCodeInvalidConfig) {
		t.Errorf("generate error = %v, want INVALID_CONFIG", err)
	}
}

func TestLayoutJSON(t *testing.T) {
	c, out := testCLI(t, nil)
	writeInput(t, c, "jobs.csv", hebrewCSV)

	if err := run(c, "layout", "jobs.csv", "--json"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	var doc struct {
		Direction  string `json:"direction"`
		Decorative bool   `json:"decorative"`
		Boxes      []struct {
			Field string `json:"field"`
			Text  string `json:"text"`
		} `json:"boxes"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if doc.Direction != "rtl" || !doc.Decorative {
		t.Errorf("direction = %q decorative = %v, want rtl and decorative", doc.Direction, doc.Decorative)
	}
	if len(doc.Boxes) != 4 || doc.Boxes[0].Field != "index" || doc.Boxes[1].Text != "לתקן באג" {
		t.Errorf("boxes = %+v", doc.Boxes)
	}
	if _, err := os.Stat(filepath.Join(c.WorkDir, config.DefaultOutputDir)); !os.IsNotExist(err) {
		t.Error("layout should not create the output directory")
	}
}

func TestLayoutTable(t *testing.T) {
	c, out := testCLI(t, nil)
	writeInput(t, c, "jobs.csv", englishCSV)

	if err := run(c, "layout", "jobs.csv", "--direction", "ltr"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"Field", "mission", "Fix bug", "1.40", "6 boxes"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("layout output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConfigInit(t *testing.T) {
	c, out := testCLI(t, nil)

	if err := run(c, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	path := filepath.Join(c.WorkDir, "sprintdeck.toml")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Output.Prefix != config.DefaultPrefix {
		t.Errorf("Prefix = %q", cfg.Output.Prefix)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output should name the file: %q", out.String())
	}

	err = run(c, "config", "init")
	if !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("second init error = %v, want INVALID_INPUT", err)
	}
	if err := run(c, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestConfigInitYAML(t *testing.T) {
	c, _ := testCLI(t, nil)

	if err := run(c, "config", "init", "conf/sprintdeck.yaml"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := config.Load(filepath.Join(c.WorkDir, "conf", "sprintdeck.yaml")); err != nil {
		t.Errorf("Load: %v", err)
	}
}

func TestCompletion(t *testing.T) {
	c, out := testCLI(t, nil)

	if err := run(c, "completion", "bash"); err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out.String(), "sprintdeck") {
		t.Error("completion script should mention the command name")
	}
}
