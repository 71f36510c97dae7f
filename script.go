package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deviationtrack/canvaseditor/core/richtext"
	"github.com/deviationtrack/canvaseditor/util/uiutil/event"
)

// Runs script commands, one per line. At the end of the input, pending decodes and exports are flushed.
func (h *Host) Run(rd io.Reader) error {
	scanner := bufio.NewScanner(rd)
	line := 0
	for scanner.Scan() {
		line++
		txt := strings.TrimSpace(scanner.Text())
		// comments and empty lines
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}
		if err := h.RunLine(txt); err != nil {
			return fmt.Errorf("script:%d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if err := h.flush(); err != nil {
		return err
	}
	var err error
	h.Sync(func() { err = h.err })
	return err
}

func (h *Host) RunLine(txt string) error {
	name, rest, _ := strings.Cut(txt, " ")
	cmd, ok := scriptCmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %q", name)
	}
	rest = strings.TrimSpace(rest)
	var args []string
	if cmd.text {
		if rest == "" {
			return fmt.Errorf("%v: missing text", name)
		}
		u, err := unquote(rest)
		if err != nil {
			return fmt.Errorf("%v: %w", name, err)
		}
		args = []string{u}
	} else {
		args = strings.Fields(rest)
		if len(args) != cmd.nargs {
			return fmt.Errorf("%v: expecting %d args, got %d", name, cmd.nargs, len(args))
		}
	}
	h.Log.WithField("cmd", txt).Debug("script")
	return cmd.fn(h, args)
}

// Quoted text follows Go string literal rules (ex: "a\nb").
func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	return strconv.Unquote(s)
}

//----------

type ScriptCmd struct {
	Name  string
	nargs int
	text  bool // rest of the line is a single arg
	fn    func(h *Host, args []string) error
}

var scriptCmds = mapScriptCmds([]*ScriptCmd{
	// pointer
	{Name: "down", nargs: 2, fn: pointerCmd(func(h *Host, p image.Point) {
		h.pointer(&event.MouseDown{Point: p, Button: event.ButtonLeft})
	})},
	{Name: "move", nargs: 2, fn: pointerCmd(func(h *Host, p image.Point) {
		h.pointer(&event.MouseMove{Point: p})
	})},
	{Name: "up", nargs: 2, fn: pointerCmd(func(h *Host, p image.Point) {
		h.pointer(&event.MouseUp{Point: p, Button: event.ButtonLeft})
	})},
	{Name: "click", nargs: 2, fn: pointerCmd(func(h *Host, p image.Point) {
		h.click(p)
	})},
	{Name: "dclick", nargs: 2, fn: pointerCmd(func(h *Host, p image.Point) {
		h.click(p)
		h.click(p)
	})},

	// text box overlay
	{Name: "type", text: true, fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.TypeText(args[0])
	})},
	{Name: "settext", text: true, fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.SetEditingText(args[0])
	})},
	{Name: "key", nargs: 1, fn: keyCmd},
	{Name: "blur", fn: editorCmd(func(h *Host, args []string) bool {
		return bool(h.Ed.HandleCanvasEvent(&event.FocusLost{}))
	})},
	{Name: "addtext", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ArmTextPlacement()
	})},

	// images
	{Name: "upload", text: true, fn: func(h *Host, args []string) error {
		return h.upload(args[0])
	}},
	{Name: "paste", fn: func(h *Host, args []string) error {
		return h.paste()
	}},
	{Name: "delete", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.DeleteSelected()
	})},
	{Name: "clear", fn: editorCmd(func(h *Host, args []string) bool {
		h.Ed.Clear()
		return true
	})},
	{Name: "rotate", nargs: 1, fn: floatCmd(func(h *Host, v float64) bool {
		return h.Ed.RotateSelected(v)
	})},

	// typography toolbar
	{Name: "font", text: true, fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.SetFontFamily(args[0])
	})},
	{Name: "size", nargs: 1, fn: floatCmd(func(h *Host, v float64) bool {
		return h.Ed.SetFontSize(v)
	})},
	{Name: "grow", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.GrowFont()
	})},
	{Name: "shrink", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ShrinkFont()
	})},
	{Name: "bold", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ToggleBold()
	})},
	{Name: "italic", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ToggleItalic()
	})},
	{Name: "underline", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ToggleUnderline()
	})},
	{Name: "strike", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ToggleStrikethrough()
	})},
	{Name: "fill", nargs: 1, fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.SetFill(args[0])
	})},
	{Name: "highlight", nargs: 1, fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.SetHighlight(args[0])
	})},
	{Name: "reset-style", fn: editorCmd(func(h *Host, args []string) bool {
		return h.Ed.ResetStyles()
	})},

	// rich text field
	{Name: "richtext", text: true, fn: editorCmd(func(h *Host, args []string) bool {
		h.Ed.SetRichText(args[0])
		return true
	})},
	{Name: "select", nargs: 2, fn: selectCmd},
	{Name: "fmt", nargs: 1, fn: fmtCmd},

	// control
	{Name: "flush", fn: func(h *Host, args []string) error {
		return h.flush()
	}},
	{Name: "render", text: true, fn: func(h *Host, args []string) error {
		return h.render(args[0])
	}},
	{Name: "wait", nargs: 1, fn: waitCmd},
	{Name: "dump", fn: func(h *Host, args []string) error {
		var s string
		h.Sync(func() { s = h.dump() })
		_, err := io.WriteString(h.Out, s)
		return err
	}},
})

func mapScriptCmds(cmds []*ScriptCmd) map[string]*ScriptCmd {
	m := map[string]*ScriptCmd{}
	for _, cmd := range cmds {
		m[cmd.Name] = cmd
	}
	return m
}

//----------

func (h *Host) click(p image.Point) {
	h.pointer(&event.MouseDown{Point: p, Button: event.ButtonLeft})
	h.pointer(&event.MouseUp{Point: p, Button: event.ButtonLeft})
}

func pointerCmd(fn func(*Host, image.Point)) func(*Host, []string) error {
	return func(h *Host, args []string) error {
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("x: %w", err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("y: %w", err)
		}
		h.Sync(func() { fn(h, image.Pt(x, y)) })
		return nil
	}
}

// Commands that do nothing in the current state (ex: toolbar with no text box selected) are not errors.
func editorCmd(fn func(*Host, []string) bool) func(*Host, []string) error {
	return func(h *Host, args []string) error {
		ok := false
		h.Sync(func() { ok = fn(h, args) })
		if !ok {
			h.Log.WithField("args", args).Debug("command had no effect")
		}
		return nil
	}
}

func floatCmd(fn func(*Host, float64) bool) func(*Host, []string) error {
	return func(h *Host, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("not a finite number: %q", args[0])
		}
		return editorCmd(func(h *Host, _ []string) bool { return fn(h, v) })(h, args)
	}
}

func selectCmd(h *Host, args []string) error {
	start, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}
	h.Sync(func() { h.Ed.SelectRichText(start, end) })
	return nil
}

func fmtCmd(h *Host, args []string) error {
	m, err := richtext.ParseMarker(args[0])
	if err != nil {
		return err
	}
	h.Sync(func() { h.Ed.FormatRichText(m) })
	return nil
}

func waitCmd(h *Host, args []string) error {
	d, err := time.ParseDuration(args[0])
	if err != nil {
		return err
	}
	time.Sleep(d)
	return nil
}

func keyCmd(h *Host, args []string) error {
	ev, err := ParseKey(args[0])
	if err != nil {
		return err
	}
	h.Sync(func() { h.Ed.HandleCanvasEvent(ev) })
	return nil
}

// Parses "[mod+]...name", where name is a named key (ex: return) or a single rune.
func ParseKey(s string) (*event.KeyDown, error) {
	ev := &event.KeyDown{}
	parts := strings.Split(s, "+")
	name := parts[len(parts)-1]
	if name == "" && len(parts) > 1 {
		name = "+" // "ctrl++"
		parts = parts[:len(parts)-1]
	}
	for _, m := range parts[:len(parts)-1] {
		switch strings.ToLower(m) {
		case "shift":
			ev.Mods |= event.ModShift
		case "ctrl":
			ev.Mods |= event.ModCtrl
		case "alt":
			ev.Mods |= event.ModAlt
		case "super":
			ev.Mods |= event.ModSuper
		case "":
		default:
			return nil, fmt.Errorf("unknown key modifier: %q", m)
		}
	}
	if ks, ok := event.KeySymByName(name); ok {
		ev.KeySym = ks
		return ev, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		ev.Rune = r
		ev.KeySym = event.KeySym(r)
		return ev, nil
	}
	return nil, fmt.Errorf("unknown key: %q", s)
}
