package snapshot

import (
	"image"
	"time"

	"github.com/deviationtrack/canvaseditor/core/element"
	"github.com/deviationtrack/canvaseditor/core/render"
	"github.com/deviationtrack/canvaseditor/util/imageutil"
	"github.com/deviationtrack/canvaseditor/util/syncutil"
	"github.com/sirupsen/logrus"
)

const DefaultDelay = 300 * time.Millisecond

// Editor contents at export time.
type State struct {
	Width, Height float64 // canvas
	RichText      string
	RichTextHTML  string
	Images        []*element.Image
	Texts         []*element.TextBox
}

//----------

// Builds snapshots and emits them debounced: each Schedule restarts the delay, and the state is read when the delay fires, so only the latest state is emitted.
type Exporter struct {
	Renderer  *render.Renderer
	NewRaster render.NewRasterFn // nil skips the raster
	Log       *logrus.Entry

	emit  func(*Snapshot)
	debon *syncutil.Debouncer
}

// The schedule func is passed to the debouncer (see syncutil.NewDebouncer).
func NewExporter(delay time.Duration, schedule func(func()), emit func(*Snapshot)) *Exporter {
	return &Exporter{
		Renderer: render.NewRenderer(),
		Log:      logrus.NewEntry(logrus.StandardLogger()),
		emit:     emit,
		debon:    syncutil.NewDebouncer(delay, schedule),
	}
}

func (ex *Exporter) Schedule(get func() *State) {
	ex.debon.Trigger(func() {
		ex.emit(ex.Build(get()))
	})
}

// Emits now if an export is pending.
func (ex *Exporter) Flush() bool {
	return ex.debon.Flush()
}
func (ex *Exporter) Pending() bool {
	return ex.debon.Pending()
}
func (ex *Exporter) Cancel() {
	ex.debon.Cancel()
}

//----------

func (ex *Exporter) Build(st *State) *Snapshot {
	snap := &Snapshot{
		RichText:     st.RichText,
		RichTextHTML: st.RichTextHTML,
		Images:       DescribeImages(st.Images),
		TextElements: DescribeTexts(st.Texts),
	}
	if len(st.Images)+len(st.Texts) > 0 && ex.NewRaster != nil {
		img := ex.Rasterize(st)
		u, err := imageutil.EncodePNGDataURL(img)
		if err != nil {
			ex.Log.WithError(err).Warn("snapshot: canvas encode")
		} else {
			snap.CanvasData = &u
		}
	}
	return snap
}

// Off-screen render at canvas size, no selection chrome, every text box included.
func (ex *Exporter) Rasterize(st *State) image.Image {
	rs := ex.NewRaster(int(st.Width), int(st.Height))
	v := &render.View{
		Images:   st.Images,
		Texts:    st.Texts,
		NoChrome: true,
	}
	ex.Renderer.Render(rs, v)
	return rs.Image()
}
