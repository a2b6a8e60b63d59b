// Package batch loads, parses and reconstructs many Pure3D files in
// parallel.
package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/pure3d/internal/source"
	"github.com/Faultbox/pure3d/pkg/p3d"
	"github.com/Faultbox/pure3d/pkg/scene"
	"github.com/Faultbox/pure3d/pkg/texture"
)

// Config holds the shared resources for a batch run.
type Config struct {
	Workers      int
	Loader       *source.Loader // Nil reads files without caching
	ParseOptions []p3d.Option
	BuildOptions []scene.Option
	Log          *zap.Logger

	// Progress, when set, is called after each file with the number of
	// files finished so far. It may be called from several goroutines.
	Progress func(done, total int)
}

// Texture is one catalogued texture with its inspection outcome.
type Texture struct {
	*scene.Texture
	Info texture.Info
	Err  error // From texture.Inspect; ErrNoDecoder is common and harmless
}

// Result is the outcome of processing one file.
type Result struct {
	Path     string
	Type     p3d.FileType
	Forest   *p3d.Forest
	Objects  []scene.Object
	Textures []Texture
	Err      error
}

// Unknown counts the records in the result's forest that have no typed
// payload.
func (r *Result) Unknown() int {
	if r.Forest == nil {
		return 0
	}
	n := 0
	for i := 0; i < r.Forest.Len(); i++ {
		if _, ok := r.Forest.Chunk(i).Payload.(*p3d.Unknown); ok {
			n++
		}
	}
	return n
}

// Counts returns how many meshes and skins were reconstructed.
func (r *Result) Counts() (meshes, skins int) {
	for _, o := range r.Objects {
		switch o.(type) {
		case *scene.Mesh:
			meshes++
		case *scene.Skin:
			skins++
		}
	}
	return meshes, skins
}

// Run processes paths with a worker pool and returns one Result per path
// in input order. Files not started before ctx is cancelled carry the
// context error, which Run also returns.
func Run(ctx context.Context, cfg Config, paths []string) ([]Result, error) {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if cfg.Loader == nil {
		cfg.Loader = source.NewLoader(0)
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = Result{Path: paths[idx], Err: err}
				} else {
					results[idx] = process(cfg, paths[idx])
				}
				n := processed.Add(1)
				if cfg.Progress != nil {
					cfg.Progress(int(n), total)
				}
			}
		}()
	}

	sent := 0
send:
	for ; sent < total; sent++ {
		select {
		case jobs <- sent:
		case <-ctx.Done():
			break send
		}
	}
	close(jobs)
	wg.Wait()

	for i := sent; i < total; i++ {
		results[i] = Result{Path: paths[i], Err: ctx.Err()}
	}
	return results, ctx.Err()
}

func process(cfg Config, path string) Result {
	res := Result{Path: path}
	log := cfg.Log.With(zap.String("file", path))

	data, err := cfg.Loader.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	if res.Type, err = p3d.DetectFileType(data); err != nil {
		res.Err = err
		return res
	}

	parseOpts := append([]p3d.Option{p3d.WithLogger(log)}, cfg.ParseOptions...)
	if res.Forest, err = p3d.Parse(data, parseOpts...); err != nil {
		res.Err = err
		return res
	}

	buildOpts := append([]scene.Option{scene.WithLogger(log)}, cfg.BuildOptions...)
	if res.Objects, err = scene.Build(res.Forest, buildOpts...); err != nil {
		res.Err = err
		return res
	}

	for _, o := range res.Objects {
		cat, ok := o.(*scene.TextureCatalogue)
		if !ok {
			continue
		}
		for _, t := range cat.Textures {
			info, err := texture.Inspect(t.Format, t.Data)
			if err != nil && !errors.Is(err, texture.ErrNoDecoder) {
				log.Debug("texture inspection failed", zap.String("texture", t.Name), zap.Error(err))
			}
			res.Textures = append(res.Textures, Texture{Texture: t, Info: info, Err: err})
		}
	}
	return res
}
