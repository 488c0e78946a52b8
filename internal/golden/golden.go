// Package golden renders scene files into contact sheets: a square grid of
// frames sampled evenly across one playback of an animation.
package golden

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/host"
	"github.com/gogpu/rive/hostgg"
	"github.com/gogpu/rive/scene"
)

// ErrInvalidConfig is returned by NewRenderer for non-positive sizes.
var ErrInvalidConfig = errors.New("golden: invalid config")

// Config describes the grid layout and the content to render.
type Config struct {
	Cell int // side of one frame cell in pixels
	Grid int // cells per row and column
	Gap  int // pixels between and around cells

	Artboard  string // "" selects the default artboard
	Animation string // "" selects the first animation
}

// DefaultConfig returns a 5x5 grid of 256 pixel cells.
func DefaultConfig() Config {
	return Config{Cell: 256, Grid: 5, Gap: 2}
}

// Size returns the side of the rendered image in pixels.
func (c Config) Size() int {
	return c.Grid*c.Cell + (c.Grid+1)*c.Gap
}

func (c Config) validate() error {
	if c.Cell <= 0 || c.Grid <= 0 || c.Gap < 0 {
		return fmt.Errorf("%w: cell %d, grid %d, gap %d", ErrInvalidConfig, c.Cell, c.Grid, c.Gap)
	}
	return nil
}

// Renderer draws scene files with a gg host.
type Renderer struct {
	cfg     Config
	host    *hostgg.Host
	binding *host.Binding
	logger  *slog.Logger
}

// NewRenderer returns a Renderer for cfg. A nil logger discards output.
func NewRenderer(cfg Config, logger *slog.Logger) (*Renderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := hostgg.New(hostgg.WithLogger(logger))
	return &Renderer{
		cfg:     cfg,
		host:    h,
		binding: h.NewBinding(),
		logger:  logger,
	}, nil
}

// Render loads data, selects the configured artboard and animation and
// returns the contact sheet.
func (r *Renderer) Render(data []byte) (*gg.Context, error) {
	s := scene.New(r.binding, r.host.NewFactory(), scene.WithLogger(r.logger))
	defer s.Close()

	if err := s.LoadFile(data); err != nil {
		return nil, err
	}
	if err := s.LoadArtboard(r.cfg.Artboard); err != nil {
		return nil, err
	}
	if err := s.LoadAnimation(r.cfg.Animation); err != nil {
		return nil, err
	}
	r.logger.Debug("scene loaded", "animation", s.Name(),
		"width", s.Width(), "height", s.Height(), "duration", s.DurationSeconds())

	size := r.cfg.Size()
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.RGBA{R: 1, G: 1, B: 1, A: 1})
	canvas := r.host.NewCanvas(dc)
	defer r.host.ReleaseCanvas(canvas)
	renderer := host.NewRendererAdapter(r.binding, canvas)

	cell := float32(r.cfg.Cell)
	gap := float32(r.cfg.Gap)
	frames := r.cfg.Grid * r.cfg.Grid
	step := s.DurationSeconds() / float32(frames)
	align := rive.ComputeAlignment(rive.FitCover, rive.Center,
		rive.NewAABB(0, 0, cell, cell),
		rive.NewAABB(0, 0, s.Width(), s.Height()))

	s.AdvanceAndApply(0)
	renderer.Save()
	renderer.Transform(rive.Translate(gap, gap))
	for y := range r.cfg.Grid {
		for x := range r.cfg.Grid {
			renderer.Save()
			renderer.Transform(rive.Translate(float32(x)*(cell+gap), float32(y)*(cell+gap)))
			renderer.Transform(align)
			s.Draw(canvas)
			s.AdvanceAndApply(step)
			renderer.Restore()
		}
	}
	renderer.Restore()
	return dc, nil
}

// WritePNG renders data and encodes the sheet to w.
func (r *Renderer) WritePNG(w io.Writer, data []byte) error {
	dc, err := r.Render(data)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// RenderFile renders the scene file src into dir/<base name>.png and
// returns the output path.
func (r *Renderer) RenderFile(src, dir string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return "", fmt.Errorf("read %q: %w", src, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create destination %q: %w", dir, err)
	}
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".png"
	out := filepath.Join(dir, name)

	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %q: %w", out, err)
	}
	if err := r.WritePNG(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(out)
		return "", fmt.Errorf("render %q: %w", src, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write %q: %w", out, err)
	}
	return out, nil
}

// SceneFiles lists the regular, non-hidden files of dir in name order.
func SceneFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
