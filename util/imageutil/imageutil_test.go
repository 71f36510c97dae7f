package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	img, mime, err := Decode(testPNG(t, 100, 50))
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" {
		t.Fatal(mime)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Fatal(img.Bounds())
	}
}

func TestDecodeJPEG(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, image.NewGray(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatal(err)
	}
	_, mime, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/jpeg" {
		t.Fatal(mime)
	}
}

func TestDecodeNotImage(t *testing.T) {
	if _, _, err := Decode([]byte("hello world")); err != ErrNotImage {
		t.Fatal(err)
	}
	if _, _, err := Decode(nil); err != ErrNotImage {
		t.Fatal(err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := testPNG(t, 10, 10)
	if _, _, err := Decode(data[:len(data)/2]); err == nil {
		t.Fatal("expected error")
	}
}

func TestDataURL(t *testing.T) {
	data := []byte{1, 2, 3, 250}
	u := EncodeDataURL("image/png", data)
	mime, data2, err := DecodeDataURL(u)
	if err != nil {
		t.Fatal(err)
	}
	if mime != "image/png" || !bytes.Equal(data, data2) {
		t.Fatal(mime, data2)
	}
	for _, bad := range []string{"image/png;base64,AA", "data:image/png,AA", "data:image/png;base64"} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestEncodePNGDataURL(t *testing.T) {
	u, err := EncodePNGDataURL(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	_, data, err := DecodeDataURL(u)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Decode(data); err != nil {
		t.Fatal(err)
	}
}

func TestFitWithin(t *testing.T) {
	type tc struct{ w, h, ew, eh float64 }
	for _, c := range []tc{
		{100, 100, 100, 100}, // already fits
		{800, 400, 400, 200}, // width bound
		{200, 600, 100, 300}, // height bound
		{1600, 1600, 300, 300},
	} {
		w, h := FitWithin(c.w, c.h, 400, 300)
		if w != c.ew || h != c.eh {
			t.Fatalf("%v: got %v %v", c, w, h)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#ff0000")
	if !ok {
		t.Fatal("parse failed")
	}
	if RgbaColor(c) != (color.RGBA{255, 0, 0, 255}) {
		t.Fatal(RgbaColor(c))
	}
	if _, ok := ParseColor("nope"); ok {
		t.Fatal("expected failure")
	}
	if !IsTransparent("transparent") || IsTransparent("#000000") {
		t.Fatal("transparent detection")
	}
	if s, ok := NormalizeHex("#F00"); !ok || s != "#ff0000" {
		t.Fatal(s, ok)
	}
}
