package render

import (
	"image"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/deviationtrack/canvaseditor/core/element"
)

// 10px per rune, for any typography
func monoMeasure(s string, ty element.Typography) float64 {
	return float64(len([]rune(s))) * 10
}

func newRecorder() *Recorder {
	return &Recorder{Measure: monoMeasure}
}

func textBox(id, text string, r element.Rect) *element.TextBox {
	return &element.TextBox{Id: id, Text: text, Rect: r, Typography: element.DefaultTypography()}
}

func TestRenderOrder(t *testing.T) {
	img := &element.Image{Id: "i1", Rect: element.Rect{X: 10, Y: 10, Width: 50, Height: 40}, Rotation: 90, Decoded: image.NewRGBA(image.Rect(0, 0, 5, 4))}
	tb := textBox("t1", "hello", element.Rect{X: 100, Y: 100, Width: 200, Height: 50})
	rec := newRecorder()
	NewRenderer().Render(rec, &View{Images: []*element.Image{img}, Texts: []*element.TextBox{tb}})

	names := []string{}
	for _, op := range rec.Ops {
		names = append(names, op.Name)
	}
	want := []string{"clear", "image", "text"}
	if spew.Sdump(names) != spew.Sdump(want) {
		t.Fatal(spew.Sdump(rec.Ops))
	}
	if op := rec.Ops[1]; op.Rect != img.Rect || op.Rotation != 90 {
		t.Fatal(spew.Sdump(op))
	}
	if op := rec.Ops[2]; op.Rect.Origin() != element.Pt(100, 100) {
		t.Fatal(op)
	}
}

func TestRenderWrappedLines(t *testing.T) {
	tb := textBox("t1", "aaa bbb ccc", element.Rect{X: 0, Y: 0, Width: 70, Height: 50})
	rec := newRecorder()
	NewRenderer().Render(rec, &View{Texts: []*element.TextBox{tb}})
	texts := rec.Filter("text")
	if len(texts) != 2 {
		t.Fatal(spew.Sdump(texts))
	}
	if texts[0].Text != "aaa bbb" || texts[1].Text != "ccc" {
		t.Fatal(spew.Sdump(texts))
	}
	// line advance is fontSize*1.2
	if texts[1].Rect.Y != 36 {
		t.Fatal(texts[1].Rect.Y)
	}
	for _, op := range texts {
		if op.Rect.Width > tb.Rect.Width {
			t.Fatal(op)
		}
	}
}

func TestRenderHighlightBeforeGlyphs(t *testing.T) {
	tb := textBox("t1", "hi", element.Rect{X: 5, Y: 5, Width: 200, Height: 50})
	tb.HighlightColor = "#ffff00"
	tb.Underline = true
	tb.Strikethrough = true
	rec := newRecorder()
	NewRenderer().Render(rec, &View{Texts: []*element.TextBox{tb}})

	names := []string{}
	for _, op := range rec.Ops[1:] {
		names = append(names, op.Name)
	}
	want := []string{"fillrect", "text", "line", "line"}
	if spew.Sdump(names) != spew.Sdump(want) {
		t.Fatal(spew.Sdump(rec.Ops))
	}
	hl := rec.Ops[1]
	if hl.Rect.Width != 20 || hl.Rect.Height != 36 {
		t.Fatal(hl)
	}
	ul := rec.Ops[3]
	if ul.Width != 2 || ul.P0.X != 5 || ul.P1.X != 25 {
		t.Fatal(ul)
	}
	st := rec.Ops[4]
	if !(st.P0.Y < ul.P0.Y) {
		t.Fatal("strikethrough below underline")
	}
}

func TestRenderSkipsEditing(t *testing.T) {
	a := textBox("a", "first", element.Rect{X: 0, Y: 0, Width: 200, Height: 50})
	b := textBox("b", "second", element.Rect{X: 0, Y: 100, Width: 200, Height: 50})
	rec := newRecorder()
	v := &View{Texts: []*element.TextBox{a, b}, Selection: element.RefOf(b), EditingId: "b"}
	NewRenderer().Render(rec, v)
	texts := rec.Filter("text")
	if len(texts) != 1 || texts[0].Text != "first" {
		t.Fatal(spew.Sdump(texts))
	}
	// chrome still shows around the box under edit
	if len(rec.Filter("strokerect")) != 1 {
		t.Fatal(spew.Sdump(rec.Ops))
	}
}

func TestRenderChrome(t *testing.T) {
	img := &element.Image{Id: "i1", Rect: element.Rect{X: 10, Y: 20, Width: 100, Height: 50}, Decoded: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	tb := textBox("t1", "x", element.Rect{X: 10, Y: 20, Width: 100, Height: 50})

	chromeOf := func(v *View) []Op {
		rec := newRecorder()
		NewRenderer().Render(rec, v)
		return append(rec.Filter("strokerect"), rec.Filter("fillrect")...)
	}
	c1 := chromeOf(&View{Images: []*element.Image{img}, Selection: element.RefOf(img)})
	c2 := chromeOf(&View{Texts: []*element.TextBox{tb}, Selection: element.RefOf(tb)})
	if len(c1) != 9 {
		t.Fatal(spew.Sdump(c1))
	}
	if spew.Sdump(c1) != spew.Sdump(c2) {
		t.Fatalf("chrome differs:\n%v\n%v", spew.Sdump(c1), spew.Sdump(c2))
	}
	outline := c1[0]
	if outline.Rect != (element.Rect{X: 8, Y: 18, Width: 104, Height: 54}) || len(outline.Dash) == 0 {
		t.Fatal(outline)
	}
	if c1[1].Rect != (element.Rect{X: 6, Y: 16, Width: 8, Height: 8}) {
		t.Fatal(c1[1])
	}

	// no chrome on export
	rec := newRecorder()
	NewRenderer().Render(rec, &View{Images: []*element.Image{img}, Selection: element.RefOf(img), NoChrome: true})
	if len(rec.Filter("strokerect")) != 0 || len(rec.Filter("fillrect")) != 0 {
		t.Fatal(spew.Sdump(rec.Ops))
	}
}

func TestDecorationThickness(t *testing.T) {
	if v := DecorationThickness(30); v != 2 {
		t.Fatal(v)
	}
	if v := DecorationThickness(8); v != 1 {
		t.Fatal(v)
	}
}
