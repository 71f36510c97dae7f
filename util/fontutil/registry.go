package fontutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var Fonts = NewRegistry()

//----------

// Face request. Sizes are in pixels (faces are built at 72 dpi).
type Spec struct {
	Family string
	Bold   bool
	Italic bool
	Size   float64
}

func (s Spec) String() string {
	return fmt.Sprintf("%v/b=%v/i=%v/%v", s.Family, s.Bold, s.Italic, s.Size)
}

//----------

// Regular, bold, italic, bold-italic ttf data.
type Family [4][]byte

func familyIndex(bold, italic bool) int {
	i := 0
	if bold {
		i |= 1
	}
	if italic {
		i |= 2
	}
	return i
}

var GoSans = Family{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF}
var GoMono = Family{gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF}

// No serif go font; medium weight keeps serif families distinguishable.
var GoMedium = Family{gomedium.TTF, gobold.TTF, gomediumitalic.TTF, gobolditalic.TTF}

//----------

// Maps family names to font data and caches parsed fonts and faces. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	families map[string]Family // lowercase names
	fonts    map[*byte]*truetype.Font
	faces    map[Spec]font.Face
	fallback Family
}

func NewRegistry() *Registry {
	reg := &Registry{
		families: map[string]Family{},
		fonts:    map[*byte]*truetype.Font{},
		faces:    map[Spec]font.Face{},
		fallback: GoSans,
	}
	for _, name := range []string{"arial", "verdana", "helvetica", "sans-serif"} {
		reg.families[name] = GoSans
	}
	for _, name := range []string{"courier new", "courier", "monospace"} {
		reg.families[name] = GoMono
	}
	for _, name := range []string{"times new roman", "georgia", "serif"} {
		reg.families[name] = GoMedium
	}
	return reg
}

// Registers (or replaces) a family. Cached faces of that family are dropped.
func (reg *Registry) SetFamily(name string, fam Family) error {
	for i, ttf := range fam {
		if len(ttf) == 0 {
			return fmt.Errorf("family %q: missing variant %d", name, i)
		}
		if _, err := truetype.Parse(ttf); err != nil {
			return fmt.Errorf("family %q: %w", name, err)
		}
	}
	key := strings.ToLower(name)
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.families[key] = fam
	for spec := range reg.faces {
		if strings.ToLower(spec.Family) == key {
			delete(reg.faces, spec)
		}
	}
	return nil
}

func (reg *Registry) HasFamily(name string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	_, ok := reg.families[strings.ToLower(name)]
	return ok
}

// Unknown families resolve to the fallback family.
func (reg *Registry) Face(spec Spec) font.Face {
	if spec.Size <= 0 {
		spec.Size = 12
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if f, ok := reg.faces[spec]; ok {
		return f
	}
	fam, ok := reg.families[strings.ToLower(spec.Family)]
	if !ok {
		fam = reg.fallback
	}
	ttf := fam[familyIndex(spec.Bold, spec.Italic)]
	tf, err := reg.parsed(ttf)
	if err != nil {
		// only registered data reaches here, and it was validated
		panic(err)
	}
	opt := &truetype.Options{Size: spec.Size, DPI: 72, Hinting: font.HintingNone}
	face := newSyncFace(truetype.NewFace(tf, opt))
	reg.faces[spec] = face
	return face
}

// Needs lock.
func (reg *Registry) parsed(ttf []byte) (*truetype.Font, error) {
	k := &ttf[0]
	if f, ok := reg.fonts[k]; ok {
		return f, nil
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	reg.fonts[k] = f
	return f, nil
}

//----------

func (reg *Registry) MeasureString(spec Spec, s string) float64 {
	face := reg.Face(spec)
	return Fixed266ToFloat64(font.MeasureString(face, s))
}

// Distance from the line top to the baseline.
func (reg *Registry) Ascent(spec Spec) float64 {
	face := reg.Face(spec)
	return Fixed266ToFloat64(face.Metrics().Ascent)
}
