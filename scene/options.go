package scene

import (
	"log/slog"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
	"github.com/gogpu/rive/scenefile"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	importer engine.Importer
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		importer: scenefile.Importer,
		logger:   nil, // rive.Logger() at construction
	}
}

// WithImporter sets the engine used to import files. The default imports
// YAML scene documents with package scenefile.
func WithImporter(imp engine.Importer) Option {
	return func(o *options) {
		if imp != nil {
			o.importer = imp
		}
	}
}

// WithLogger sets the session logger. The default is rive.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) resolve() {
	if o.logger == nil {
		o.logger = rive.Logger()
	}
}
