package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/deviationtrack/canvaseditor/util/testutil"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
	"github.com/sirupsen/logrus"
)

func TestScripts(t *testing.T) {
	ar, err := testutil.ReadTxtar(filepath.Join("testdata", "scripts.txt"))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		h, buf := newTestHost(t2)
		if err := h.Run(bytes.NewReader(in)); err != nil {
			return err
		}
		return testutil.CompareLines(buf.String(), string(out))
	})
}

func TestScriptErrors(t *testing.T) {
	h, _ := newTestHost(t)
	tests := []struct {
		script string
		errStr string
	}{
		{"bogus", `script:1: unknown command: "bogus"`},
		{"# comment\n\ndown 1", "script:3: down: expecting 2 args, got 1"},
		{"move a 1", "script:1: x: "},
		{"fmt shout", `script:1: unknown marker: "shout"`},
		{"key hyper+a", `script:1: unknown key modifier: "hyper"`},
		{"type", "script:1: type: missing text"},
		{"upload missing.png", "script:1: upload: "},
		{"paste", "script:1: paste: clipboard not available"},
		{"wait soon", "script:1: time: invalid duration"},
	}
	for _, tt := range tests {
		err := h.Run(strings.NewReader(tt.script))
		if err == nil || !strings.HasPrefix(err.Error(), tt.errStr) {
			t.Fatalf("%q: %v", tt.script, err)
		}
	}
}

func TestParseKey(t *testing.T) {
	ev, err := ParseKey("ctrl+shift+a")
	if err != nil {
		t.Fatal(err)
	}
	if ev.Rune != 'a' || ev.Mods != event.ModShift|event.ModCtrl {
		t.Fatal(spew.Sdump(ev))
	}
	ev, err = ParseKey("Return")
	if err != nil || ev.Rune != 0 || ev.Mods != 0 {
		t.Fatal(err, spew.Sdump(ev))
	}
	ev, err = ParseKey("ctrl++")
	if err != nil || ev.Rune != '+' {
		t.Fatal(err, spew.Sdump(ev))
	}
	if _, err := ParseKey("pagedown"); err == nil {
		t.Fatal("expecting error")
	}
}

func TestQuotedText(t *testing.T) {
	h, buf := newTestHost(t)
	script := "addtext\nclick 10 10\ntype \"x\\ty\"\ndump\n"
	if err := h.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"x\ty"`) {
		t.Fatal(buf.String())
	}
}

// Exports fire on their own once the delay passes, without a flush.
func TestDebouncedExport(t *testing.T) {
	cfg := testConfig()
	cfg.Export.Delay = Duration(200 * time.Millisecond)
	h := newTestHostConfig(t, cfg)
	if err := h.RunLine("richtext a"); err != nil {
		t.Fatal(err)
	}
	if err := h.RunLine("richtext ab"); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		n := 0
		h.Sync(func() { n = h.exports })
		if n == 1 {
			break
		}
		if n > 1 || time.Now().After(deadline) {
			t.Fatalf("exports: %v", n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRunWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	writeTestImages(t, dir)
	script := filepath.Join(dir, "s.txt")
	src := "upload red.png\nflush\naddtext\nclick 10 10\ntype hi\nblur\nrender canvas.png\n"
	if err := os.WriteFile(script, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	args := []string{"-script", script, "-out", outDir, "-width", "400", "-height", "300", "-loglevel", "error"}
	if err := run(args, strings.NewReader(""), io.Discard); err != nil {
		t.Fatal(err)
	}

	sink := &SnapshotSink{Dir: outDir}
	names, err := sink.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) < 2 {
		t.Fatalf("snapshots: %v", names)
	}
	b, err := os.ReadFile(names[len(names)-1])
	if err != nil {
		t.Fatal(err)
	}
	snap := &snapshot.Snapshot{}
	if err := json.Unmarshal(b, snap); err != nil {
		t.Fatal(err)
	}
	if len(snap.Images) != 1 || len(snap.TextElements) != 1 || snap.TextElements[0].Text != "hi" {
		t.Fatal(spew.Sdump(snap))
	}
	// image fitted within half of the 400x300 canvas
	if img := snap.Images[0]; img.X != 180 || img.Y != 140 {
		t.Fatal(spew.Sdump(img))
	}
	if snap.CanvasData == nil || !strings.HasPrefix(*snap.CanvasData, "data:image/png;base64,") {
		t.Fatal("missing canvas data")
	}

	f, err := os.Open(filepath.Join(dir, "canvas.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Fatal(cfg)
	}
}

func TestRunMissingConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "none.toml")
	err := run([]string{"-config", filename}, strings.NewReader(""), io.Discard)
	if err == nil || !strings.HasPrefix(err.Error(), "config: ") {
		t.Fatal(err)
	}
}

func TestScriptRejectsNonFinite(t *testing.T) {
	h, _ := newTestHost(t)
	for _, line := range []string{"size NaN", "rotate Inf", "size -inf"} {
		if err := h.RunLine(line); err == nil || !strings.Contains(err.Error(), "not a finite number") {
			t.Fatalf("%q: %v", line, err)
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	err := run([]string{"-loglevel", "loud"}, strings.NewReader(""), io.Discard)
	if err == nil || !strings.HasPrefix(err.Error(), "log level") {
		t.Fatal(err)
	}
}

//----------

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Export.Delay = Duration(time.Hour) // exports only on flush
	cfg.Export.Raster = false
	return cfg
}

func newTestHost(t *testing.T) (*Host, *bytes.Buffer) {
	t.Helper()
	h := newTestHostConfig(t, testConfig())
	buf := &bytes.Buffer{}
	h.Out = buf
	return h, buf
}

func newTestHostConfig(t *testing.T, cfg *Config) *Host {
	t.Helper()
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	h, err := NewHost(cfg, logrus.NewEntry(lg))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(h.Close)
	h.Dir = t.TempDir()
	writeTestImages(t, h.Dir)
	return h
}

func writeTestImages(t *testing.T, dir string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "red.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInboxImage(t *testing.T) {
	cfg := testConfig()
	cfg.Input.InboxDir = filepath.Join(t.TempDir(), "inbox")
	cfg.Input.InboxSettle = Duration(20 * time.Millisecond)
	h := newTestHostConfig(t, cfg)

	src, err := os.ReadFile(filepath.Join(h.Dir, "red.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.Input.InboxDir, "drop.png"), src, 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		n := 0
		h.Sync(func() { n = len(h.Ed.Model.Images()) })
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("image not added from inbox")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "c.toml")
	src := `
[canvas]
width = 640
rich_text = "seed"

[export]
delay = "1s"
out_dir = "snaps"

[input]
double_click = "250ms"
`
	if err := os.WriteFile(filename, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 600 || cfg.Canvas.RichText != "seed" {
		t.Fatal(spew.Sdump(cfg))
	}
	if time.Duration(cfg.Export.Delay) != time.Second || cfg.Export.OutDir != "snaps" || !cfg.Export.Raster {
		t.Fatal(spew.Sdump(cfg))
	}
	if time.Duration(cfg.Input.DoubleClick) != 250*time.Millisecond {
		t.Fatal(spew.Sdump(cfg))
	}
	opt := cfg.Options()
	if opt.CanvasWidth != 640 || opt.RichText != "seed" || opt.ExportDelay != time.Second {
		t.Fatal(spew.Sdump(opt))
	}

	// no file keeps the defaults
	cfg, err = LoadConfig("")
	if err != nil || cfg.Canvas.Width != 800 {
		t.Fatal(err)
	}
	// a named file must exist
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "none.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, []byte("[canvas\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(filename); err == nil {
		t.Fatal("expecting parse error")
	}
}
