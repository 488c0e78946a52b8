package scenefile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/rive"
	"github.com/gogpu/rive/engine"
)

// File is an imported scene document. Its images are decoded once through
// the factory and shared by every artboard instance.
type File struct {
	model    *model
	factory  engine.Factory
	images   []engine.RenderImage
	released bool
}

var _ engine.File = (*File)(nil)

// Importer imports scene documents.
var Importer engine.Importer = engine.ImporterFunc(Import)

// Import parses a scene document and decodes its images through factory.
// The factory must outlive the returned File.
func Import(data []byte, factory engine.Factory) (engine.File, error) {
	f, err := Open(data, factory)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Open is Import returning the concrete type.
func Open(data []byte, factory engine.Factory) (*File, error) {
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}

	f := &File{model: m.m, factory: factory}
	for _, img := range m.m.images {
		ri := factory.DecodeImage(img.data)
		if ri == nil {
			f.Release()
			return nil, fmt.Errorf("%w: %q", ErrImageDecode, img.name)
		}
		f.images = append(f.images, ri)
	}
	for _, ab := range m.m.artboards {
		for _, s := range ab.shapes {
			if s.image >= 0 && s.mesh == nil {
				img := f.images[s.image]
				s.bounds = rive.NewAABB(0, 0, float32(img.Width()), float32(img.Height()))
			}
		}
	}
	rive.Logger().Debug("scenefile: imported",
		"artboards", len(m.m.artboards), "images", len(f.images))
	return f, nil
}

// Document is a parsed and validated scene document that has not been
// bound to a factory.
type Document struct {
	m *model
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	m, err := compile(&doc)
	if err != nil {
		return nil, err
	}
	return &Document{m: m}, nil
}

// ArtboardNames returns the artboard names in document order.
func (d *Document) ArtboardNames() []string {
	names := make([]string, len(d.m.artboards))
	for i, ab := range d.m.artboards {
		names[i] = ab.name
	}
	return names
}

// IsInvalid reports whether err describes an invalid document, as opposed
// to an image decode failure.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidDocument)
}

// ArtboardCount returns the number of artboards in the file.
func (f *File) ArtboardCount() int { return len(f.model.artboards) }

// ArtboardName returns the name at index, or "" when out of range.
func (f *File) ArtboardName(index int) string {
	if index < 0 || index >= len(f.model.artboards) {
		return ""
	}
	return f.model.artboards[index].name
}

// ArtboardDefault instances the first artboard.
func (f *File) ArtboardDefault() engine.Artboard {
	return f.ArtboardAt(0)
}

// ArtboardAt instances the artboard at index, or returns nil.
func (f *File) ArtboardAt(index int) engine.Artboard {
	if f.released || index < 0 || index >= len(f.model.artboards) {
		return nil
	}
	return newArtboard(f, f.model.artboards[index])
}

// ArtboardNamed instances the named artboard, or returns nil.
func (f *File) ArtboardNamed(name string) engine.Artboard {
	for i, ab := range f.model.artboards {
		if ab.name == name {
			return f.ArtboardAt(i)
		}
	}
	return nil
}

// Release releases the decoded images. It is safe to call more than once.
func (f *File) Release() {
	if f.released {
		return
	}
	f.released = true
	for _, img := range f.images {
		img.Release()
	}
	f.images = nil
}
