package texture

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Spec names one texture file and the tag the scene refers to it by.
type Spec struct {
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

// Decoded is a decoded texture together with its spec.
type Decoded struct {
	Spec  Spec
	Image *Image
	Err   error
}

// Resolve joins a relative spec path onto dir.
func (s Spec) Resolve(dir string) string {
	if dir == "" || filepath.IsAbs(s.File) {
		return s.File
	}
	return filepath.Join(dir, s.File)
}

// DecodeAll decodes every spec concurrently. Results keep spec order.
// Per-file failures are reported in Decoded.Err; only cancellation fails
// the batch.
func DecodeAll(ctx context.Context, dir string, specs []Spec, maxSize int) ([]Decoded, error) {
	out := make([]Decoded, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := DecodeFile(spec.Resolve(dir), maxSize)
			out[i] = Decoded{Spec: spec, Image: img, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
