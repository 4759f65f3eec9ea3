package trace

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/tylerw/go-packet-raytracer/pkg/core"
	mathpkg "github.com/tylerw/go-packet-raytracer/pkg/math"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PassConfig contains configuration for one tracing pass
type PassConfig struct {
	TMin       float64 // Lower intersection bound (keeps hits off the origin surface)
	TMax       float64 // Upper intersection bound
	Primary    bool    // Whether packets originate from camera rays
	NumWorkers int     // Number of parallel workers (0 = use CPU count)
}

// DefaultPassConfig returns sensible default values
func DefaultPassConfig() PassConfig {
	return PassConfig{
		TMin:       0.001,
		TMax:       1e9,
		Primary:    true,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// PacketTask is one unit of work for the pool: a batch of ray packets
// traced together against the scene
type PacketTask struct {
	TaskID int // For deterministic merge ordering
	Rays   []core.WRay
}

// PassResult carries one task's shading output back to the merger
type PassResult struct {
	TaskID        int
	Intersections []core.Intersection
}

// WorkerPool traces packet tasks in parallel. The hitable store and
// camera are shared read-only across workers; each worker owns a private
// arena and hit store, and results merge only after that worker's
// ProcessHits completes. A pool runs a single pass: Start, submit,
// Stop, drain.
type WorkerPool struct {
	hitables    *HitableStore
	camera      core.Camera
	config      PassConfig
	taskQueue   chan PacketTask
	resultQueue chan PassResult
	numWorkers  int
	wg          sync.WaitGroup
	logger      core.Logger
}

// NewWorkerPool creates a worker pool over a populated hitable store.
// logger may be nil to disable logging.
func NewWorkerPool(hitables *HitableStore, camera core.Camera, config PassConfig, logger core.Logger) *WorkerPool {
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		hitables:    hitables,
		camera:      camera,
		config:      config,
		taskQueue:   make(chan PacketTask, numWorkers),
		resultQueue: make(chan PassResult, numWorkers),
		numWorkers:  numWorkers,
		logger:      logger,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(&wp.wg)
	}
}

// Stop signals that no more tasks are coming, waits for workers to
// finish, and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a packet task to the pool
func (wp *WorkerPool) SubmitTask(task PacketTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed task result
func (wp *WorkerPool) GetResult() (PassResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// RunPass traces every task and returns the merged output, ordered by
// TaskID so a pass is deterministic regardless of worker scheduling
func (wp *WorkerPool) RunPass(tasks []PacketTask) []core.Intersection {
	if wp.logger != nil {
		wp.logger.Printf("Tracing %d packet tasks across %d workers\n", len(tasks), wp.numWorkers)
	}

	wp.Start()
	go func() {
		for _, task := range tasks {
			wp.SubmitTask(task)
		}
		wp.Stop()
	}()

	results := make([]PassResult, 0, len(tasks))
	for {
		result, ok := wp.GetResult()
		if !ok {
			break
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].TaskID < results[j].TaskID })

	total := 0
	for _, result := range results {
		total += len(result.Intersections)
	}
	merged := make([]core.Intersection, 0, total)
	for _, result := range results {
		merged = append(merged, result.Intersections...)
	}

	if wp.logger != nil {
		wp.logger.Printf("Pass complete: %d shading batches\n", len(merged))
	}
	return merged
}

// run is the main worker loop. The arena and hit store created here are
// private to this worker; they are reset between tasks, never freed.
func (wp *WorkerPool) run(wg *sync.WaitGroup) {
	defer wg.Done()

	arena := NewArena()
	hitStore := NewHitStore(arena, wp.hitables)
	tMin := mathpkg.Splat(wp.config.TMin)
	tMax := mathpkg.Splat(wp.config.TMax)

	for task := range wp.taskQueue {
		arena.Reset()

		for _, rays := range task.Rays {
			wp.hitables.AddHits(rays, tMin, tMax, hitStore)
		}

		out := arena.Intersections()
		hitStore.ProcessHits(wp.hitables, out, wp.config.Primary, wp.camera)

		// Copy out of the arena: its buffer is reused next task
		intersections := make([]core.Intersection, len(*out))
		copy(intersections, *out)

		wp.resultQueue <- PassResult{TaskID: task.TaskID, Intersections: intersections}
	}
}
