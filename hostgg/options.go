package hostgg

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/rive"
)

// Option configures a Host.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	interpolation gg.InterpolationMode
	maxImageSide  int
	decodeCache   int
}

func defaultOptions() options {
	return options{
		interpolation: gg.InterpBilinear,
		maxImageSide:  16384,
		decodeCache:   32,
	}
}

// WithLogger sets the logger used for draw failures and rejected images.
// By default the package-wide rive logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithInterpolation sets the sampling mode used for axis-aligned image
// draws. Meshes and rotated images are always sampled bilinearly.
func WithInterpolation(mode gg.InterpolationMode) Option {
	return func(o *options) {
		o.interpolation = mode
	}
}

// WithMaxImageSide rejects decoded images wider or taller than n pixels.
func WithMaxImageSide(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxImageSide = n
		}
	}
}

// WithDecodeCache keeps up to n decoded images keyed by the SHA-256 of
// their encoded bytes, so files that embed the same image, or are loaded
// repeatedly, decode it once. n <= 0 disables the cache.
func WithDecodeCache(n int) Option {
	return func(o *options) {
		o.decodeCache = n
	}
}

func (o *options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return rive.Logger()
}
