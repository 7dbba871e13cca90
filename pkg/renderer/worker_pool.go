package renderer

import (
	"sync"

	"github.com/df07/whitted-raytracer/pkg/core"
	"github.com/df07/whitted-raytracer/pkg/scene"
)

// renderJob is everything the workers of one camera share. Only the pixel
// source is mutable, and it locks itself.
type renderJob struct {
	renderer *Renderer
	camera   *scene.Camera
	sink     ImageSink
	source   PixelSource
}

// WorkerPool runs a fixed set of workers over one render job
type WorkerPool struct {
	workers []*Worker
	wg      sync.WaitGroup
}

// Worker pulls pixels until the source is exhausted. Each worker owns its
// sampler, so no random state is shared.
type Worker struct {
	ID      int
	job     *renderJob
	sampler core.Sampler
	stats   workerStats
}

// newWorkerPool creates numWorkers workers, or a single inline worker when
// numWorkers is 0. Worker i is seeded with seed+i.
func newWorkerPool(job *renderJob, numWorkers int, seed int64) *WorkerPool {
	count := max(numWorkers, 1)
	wp := &WorkerPool{}
	for i := 0; i < count; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:      i,
			job:     job,
			sampler: core.NewSeededSampler(seed + int64(i)),
		})
	}
	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Wait blocks until every worker has drained the pixel source
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// RunInline renders on the calling goroutine with the first worker
func (wp *WorkerPool) RunInline() {
	wp.workers[0].renderAll()
}

// mergeStats sums the worker tallies. Only valid after Wait or RunInline.
func (wp *WorkerPool) mergeStats(stats *RenderStats) {
	for _, w := range wp.workers {
		stats.merge(w.stats)
	}
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	w.renderAll()
}

func (w *Worker) renderAll() {
	job := w.job
	for {
		x, y, ok := job.source.Next()
		if !ok {
			return
		}

		// Coordinates are unique across workers, so the write needs no lock
		color, samples := job.renderer.renderPixel(job.camera, x, y, w.sampler)
		job.sink.SetColor(x, y, color)

		w.stats.pixels++
		w.stats.samples += samples
	}
}
