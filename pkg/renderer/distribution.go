package renderer

import "sync"

// Distribution selects how pixel coordinates are handed to workers
type Distribution int

const (
	// DistributeCursor computes the next coordinate from a shared counter
	DistributeCursor Distribution = iota
	// DistributeTaskList pops coordinates from a list built up front
	DistributeTaskList
)

// String returns the name used in configuration
func (d Distribution) String() string {
	if d == DistributeTaskList {
		return "tasklist"
	}
	return "cursor"
}

// ParseDistribution maps a configuration name to a distribution
func ParseDistribution(name string) (Distribution, bool) {
	switch name {
	case "cursor":
		return DistributeCursor, true
	case "tasklist":
		return DistributeTaskList, true
	}
	return DistributeCursor, false
}

// PixelSource hands out each pixel of an image exactly once, in row-major
// order, to any number of concurrent callers
type PixelSource interface {
	// Next returns the next coordinate, or ok=false once every pixel is taken
	Next() (x, y int, ok bool)
	// Progress returns the fraction of pixels handed out so far
	Progress() float64
}

func newPixelSource(d Distribution, width, height int) PixelSource {
	if d == DistributeTaskList {
		return NewTaskList(width, height)
	}
	return NewPixelCursor(width, height)
}

// PixelCursor is a mutex-guarded row-major counter
type PixelCursor struct {
	mu            sync.Mutex
	width, height int
	next          int
}

// NewPixelCursor creates a cursor positioned at (0, 0)
func NewPixelCursor(width, height int) *PixelCursor {
	return &PixelCursor{width: width, height: height}
}

func (c *PixelCursor) Next() (x, y int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next >= c.width*c.height {
		return 0, 0, false
	}
	x, y = c.next%c.width, c.next/c.width
	c.next++
	return x, y, true
}

func (c *PixelCursor) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fraction(c.next, c.width*c.height)
}

type pixelTask struct {
	x, y int
}

// TaskList is a pre-built list of every coordinate, popped under a mutex
type TaskList struct {
	mu    sync.Mutex
	tasks []pixelTask
	next  int
}

// NewTaskList builds the row-major list of every pixel
func NewTaskList(width, height int) *TaskList {
	tasks := make([]pixelTask, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tasks = append(tasks, pixelTask{x: x, y: y})
		}
	}
	return &TaskList{tasks: tasks}
}

func (l *TaskList) Next() (x, y int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.next >= len(l.tasks) {
		return 0, 0, false
	}
	task := l.tasks[l.next]
	l.next++
	return task.x, task.y, true
}

func (l *TaskList) Progress() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fraction(l.next, len(l.tasks))
}

func fraction(done, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(done) / float64(total)
}
