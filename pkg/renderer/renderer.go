package renderer

import (
	"fmt"
	"time"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/integrator"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// Renderer turns scene cameras into images with a pool of workers
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	options    Options
	logger     core.Logger // nil disables logging
}

// NewRenderer creates a renderer. logger may be nil.
func NewRenderer(s *scene.Scene, integ integrator.Integrator, options Options, logger core.Logger) (*Renderer, error) {
	if s == nil || integ == nil {
		return nil, fmt.Errorf("renderer needs a scene and an integrator")
	}
	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &Renderer{
		scene:      s,
		integrator: integ,
		options:    options,
		logger:     logger,
	}, nil
}

// Options returns the render options
func (r *Renderer) Options() Options {
	return r.options
}

// Render traces every pixel of camera into sink and returns once all
// workers have finished. It panics on a nil camera or sink, or when the
// sink size differs from the camera's.
func (r *Renderer) Render(camera *scene.Camera, sink ImageSink) RenderStats {
	if camera == nil || sink == nil {
		panic("renderer: Render called with a nil camera or sink")
	}
	if sink.Width() != camera.Width() || sink.Height() != camera.Height() {
		panic(fmt.Sprintf("renderer: sink is %dx%d, camera is %dx%d",
			sink.Width(), sink.Height(), camera.Width(), camera.Height()))
	}

	name := camera.Config().Name
	r.logf("Rendering %s (%dx%d, %d samples/pixel, %d workers)\n",
		name, camera.Width(), camera.Height(), camera.Config().Samples, r.options.Workers)

	start := time.Now()
	job := &renderJob{
		renderer: r,
		camera:   camera,
		sink:     sink,
		source:   newPixelSource(r.options.Distribution, camera.Width(), camera.Height()),
	}
	stopProgress := r.startProgress(name, job.source)

	pool := newWorkerPool(job, r.options.Workers, r.options.Seed)
	if r.options.Workers == 0 {
		pool.RunInline()
	} else {
		pool.Start()
		pool.Wait()
	}
	stopProgress()

	stats := RenderStats{Camera: name, Workers: r.options.Workers}
	pool.mergeStats(&stats)
	stats.Duration = time.Since(start)

	r.logf("Finished %s\n", stats)
	return stats
}

// GenerateImages renders every scene camera in order into the sink newSink
// returns for it
func (r *Renderer) GenerateImages(newSink func(camera *scene.Camera) ImageSink) []RenderStats {
	stats := make([]RenderStats, 0, len(r.scene.Cameras))
	for _, camera := range r.scene.Cameras {
		stats = append(stats, r.Render(camera, newSink(camera)))
	}
	return stats
}

// renderPixel traces the camera's rays for one pixel and returns their
// weighted average and the number of rays
func (r *Renderer) renderPixel(camera *scene.Camera, x, y int, sampler core.Sampler) (core.Vec3, int) {
	rays := camera.Rays(x, y, sampler)
	colors := make([]core.Vec3, len(rays))
	for i, ray := range rays {
		colors[i] = r.integrator.RayColor(ray, r.scene.Settings.MaxDepth, r.options.BackfaceCulling, sampler)
	}
	return scene.Accumulate(rays, colors), len(rays)
}

// startProgress logs the share of handed-out pixels on a ticker until the
// returned function is called. Reading progress takes the source's lock
// only briefly, so workers are never held up.
func (r *Renderer) startProgress(name string, source PixelSource) (stop func()) {
	if r.logger == nil || r.options.ProgressInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(r.options.ProgressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.logger.Printf("%s: %.0f%%\n", name, 100*source.Progress())
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func (r *Renderer) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
