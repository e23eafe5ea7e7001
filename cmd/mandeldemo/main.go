// Command mandeldemo renders Mandelbrot frames to PNG files.
//
// A single invocation computes one frame, or a zoom sequence when -frames
// is greater than one. Frames of a sequence are independent computations
// and render concurrently, each with its own renderer and buffer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

// renderConfig mirrors the command-line flags for -config files.
// Zero-valued fields keep the flag (or default) value.
type renderConfig struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	OffsetX    float64 `json:"offsetX"`
	OffsetY    float64 `json:"offsetY"`
	Zoom       float64 `json:"zoom"`
	Iterations int     `json:"iterations"`
	Workers    int     `json:"workers"`
	Frames     int     `json:"frames"`
	ZoomStep   float64 `json:"zoomStep"`
}

func main() {
	var (
		width    = flag.Int("width", 800, "frame width in pixels")
		height   = flag.Int("height", 600, "frame height in pixels")
		offsetX  = flag.Float64("x", -0.5, "plane coordinate of the frame center, real part")
		offsetY  = flag.Float64("y", 0, "plane coordinate of the frame center, imaginary part")
		zoom     = flag.Float64("zoom", 1, "zoom factor (1 spans [-2,2])")
		iters    = flag.Int("iters", mandel.DefaultIterationCap, "iteration cap per pixel")
		workers  = flag.Int("workers", 0, "workers per frame (0 = GOMAXPROCS)")
		frames   = flag.Int("frames", 1, "number of frames in the zoom sequence")
		zoomStep = flag.Float64("zoomstep", 1.5, "zoom multiplier between frames")
		scale    = flag.Float64("scale", 1, "output image scale factor")
		output   = flag.String("output", "mandelbrot.png", "output file (frame index is appended for sequences)")
		config   = flag.String("config", "", "JSON config file overriding the view flags")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mandel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := renderConfig{
		Width:      *width,
		Height:     *height,
		OffsetX:    *offsetX,
		OffsetY:    *offsetY,
		Zoom:       *zoom,
		Iterations: *iters,
		Workers:    *workers,
		Frames:     *frames,
		ZoomStep:   *zoomStep,
	}
	if *config != "" {
		if err := loadConfig(*config, &cfg); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if cfg.Frames < 1 {
		cfg.Frames = 1
	}

	start := time.Now()

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < cfg.Frames; i++ {
		i := i
		g.Go(func() error {
			return renderFrame(cfg, i, *scale, framePath(*output, i, cfg.Frames))
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	p := message.NewPrinter(language.English)
	totalPixels := int64(cfg.Width) * int64(cfg.Height) * int64(cfg.Frames)
	elapsed := time.Since(start)
	log.Print(p.Sprintf("Rendered %d frame(s), %d pixels in %v (%.0f px/s)",
		cfg.Frames, totalPixels, elapsed.Round(time.Millisecond),
		float64(totalPixels)/elapsed.Seconds()))
}

// loadConfig reads a JSON config file and overrides the non-zero fields
// of cfg with its values.
func loadConfig(path string, cfg *renderConfig) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	var file renderConfig
	if err := sonic.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if file.Width != 0 {
		cfg.Width = file.Width
	}
	if file.Height != 0 {
		cfg.Height = file.Height
	}
	if file.OffsetX != 0 {
		cfg.OffsetX = file.OffsetX
	}
	if file.OffsetY != 0 {
		cfg.OffsetY = file.OffsetY
	}
	if file.Zoom != 0 {
		cfg.Zoom = file.Zoom
	}
	if file.Iterations != 0 {
		cfg.Iterations = file.Iterations
	}
	if file.Workers != 0 {
		cfg.Workers = file.Workers
	}
	if file.Frames != 0 {
		cfg.Frames = file.Frames
	}
	if file.ZoomStep != 0 {
		cfg.ZoomStep = file.ZoomStep
	}
	return nil
}

// renderFrame computes frame index of the sequence and writes it to path.
func renderFrame(cfg renderConfig, index int, scale float64, path string) error {
	opts := []mandel.Option{mandel.WithIterationCap(cfg.Iterations)}
	if cfg.Workers > 0 {
		opts = append(opts, mandel.WithWorkers(cfg.Workers))
	}

	r, err := mandel.NewRenderer(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	vp := mandel.Viewport{
		OffsetX: cfg.OffsetX,
		OffsetY: cfg.OffsetY,
		Zoom:    cfg.Zoom * math.Pow(cfg.ZoomStep, float64(index)),
	}

	buf, err := r.Render(vp)
	if err != nil {
		return err
	}

	img := mandel.Image(buf, r.IterationCap(), nil)
	if scale != 1 {
		img = scaleImage(img, scale)
	}

	if err := writePNG(path, img); err != nil {
		return err
	}

	log.Printf("Frame %d saved to %s (%dx%d, zoom %g)", index, path,
		img.Bounds().Dx(), img.Bounds().Dy(), vp.Zoom)
	return nil
}

// scaleImage resamples img by the given factor using Catmull-Rom.
func scaleImage(img *image.RGBA, scale float64) *image.RGBA {
	w := int(float64(img.Bounds().Dx()) * scale)
	h := int(float64(img.Bounds().Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// writePNG saves img to path, creating parent directories as needed.
func writePNG(path string, img *image.RGBA) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// framePath returns the output path for a frame, inserting the frame index
// before the extension for multi-frame sequences.
func framePath(output string, index, frames int) string {
	if frames == 1 {
		return output
	}
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	return fmt.Sprintf("%s_%04d%s", base, index, ext)
}
