// Headless image/text canvas editor driven by a command script.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("canvaseditor", flag.ContinueOnError)
	configFile := fs.String("config", "", "toml config `file`")
	scriptFile := fs.String("script", "", "command script `file` (default stdin)")
	inboxDir := fs.String("inbox", "", "watch `dir` for dropped image files")
	outDir := fs.String("out", "", "write snapshots as json files into `dir`")
	width := fs.Float64("width", 0, "canvas width")
	height := fs.Float64("height", 0, "canvas height")
	richText := fs.String("richtext", "", "rich text seed")
	x11Paste := fs.Bool("x11paste", false, "read pasted images from the x11 clipboard")
	logLevel := fs.String("loglevel", "", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return err
	}

	// flags set explicitly override the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "inbox":
			cfg.Input.InboxDir = *inboxDir
		case "out":
			cfg.Export.OutDir = *outDir
		case "width":
			cfg.Canvas.Width = *width
		case "height":
			cfg.Canvas.Height = *height
		case "richtext":
			cfg.Canvas.RichText = *richText
		case "x11paste":
			cfg.Input.X11Paste = *x11Paste
		case "loglevel":
			cfg.Log.Level = *logLevel
		}
	})

	log, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}

	h, err := NewHost(cfg, log)
	if err != nil {
		return err
	}
	defer h.Close()
	h.Out = stdout

	rd := stdin
	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			return fmt.Errorf("script: %w", err)
		}
		defer f.Close()
		rd = f
		h.Dir = filepath.Dir(*scriptFile)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case s := <-sigc:
			log.WithField("signal", s).Info("interrupted, flushing")
			if err := h.flush(); err != nil {
				log.WithError(err).Warn("flush")
			}
			h.Close()
			os.Exit(1)
		case <-finished:
		}
	}()

	return h.Run(rd)
}

func newLogger(level string) (*logrus.Entry, error) {
	lg := logrus.New()
	lg.SetOutput(os.Stderr)
	lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	lg.SetLevel(lvl)
	return logrus.NewEntry(lg).WithField("app", "canvaseditor"), nil
}
