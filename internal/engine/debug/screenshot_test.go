package debug

import (
	"image/png"
	"os"
	"testing"
)

func TestCaptureFromPixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "test")

	// 2x2 image: bottom row red, top row blue in GL order.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // GL row 0 (bottom)
		0, 0, 255, 255, 0, 0, 255, 255, // GL row 1 (top)
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	// Image row 0 must be the GL top row (blue).
	r, g, b, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("top-left pixel = (%d,%d,%d), want blue", r, g, b)
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom-left pixel = (%d,_,%d), want red", r, b)
	}
}

func TestCaptureFromPixelsRejectsShortBuffer(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "test")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 2, 2); err == nil {
		t.Fatal("expected size mismatch error")
	}
}
