// Package perf measures how long each per-frame pass takes.
package perf

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Pass names one of the fixed per-frame stages.
type Pass int

const (
	PassRaycast Pass = iota
	PassComposite
	PassCombat
	PassAI
	passCount
)

func (p Pass) String() string {
	switch p {
	case PassRaycast:
		return "raycast"
	case PassComposite:
		return "composite"
	case PassCombat:
		return "combat"
	case PassAI:
		return "ai"
	}
	return "unknown"
}

// PerformanceMonitor tracks frame and pass timings. A nil monitor is valid
// and records nothing.
type PerformanceMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Uint64 // nanoseconds
	passTimes  [passCount]atomic.Uint64

	mutex        sync.RWMutex
	avgFrameTime float64 // exponential moving average, nanoseconds
	startTime    time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	if ft == nil || ft.monitor == nil {
		return
	}
	pm := ft.monitor
	ns := uint64(time.Since(ft.startTime).Nanoseconds())
	pm.frameTime.Store(ns)
	count := pm.frameCount.Add(1)

	pm.mutex.Lock()
	if count == 1 {
		pm.avgFrameTime = float64(ns)
	} else {
		pm.avgFrameTime = pm.avgFrameTime*0.9 + float64(ns)*0.1
	}
	pm.mutex.Unlock()
}

// PassTimer measures a single pass
type PassTimer struct {
	monitor   *PerformanceMonitor
	pass      Pass
	startTime time.Time
}

// StartPass begins timing one pass of the current frame.
func (pm *PerformanceMonitor) StartPass(p Pass) PassTimer {
	return PassTimer{monitor: pm, pass: p, startTime: time.Now()}
}

// End records the pass duration.
func (pt PassTimer) End() {
	if pt.monitor == nil || pt.pass < 0 || pt.pass >= passCount {
		return
	}
	pt.monitor.passTimes[pt.pass].Store(uint64(time.Since(pt.startTime).Nanoseconds()))
}

// Metrics is a snapshot of the latest timings.
type Metrics struct {
	Frames          uint64
	FramesPerSecond float64
	AvgFrameTime    time.Duration
	Passes          [passCount]time.Duration
	MemoryUsageMB   uint64
	Uptime          time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() Metrics {
	if pm == nil {
		return Metrics{}
	}
	pm.mutex.RLock()
	avg := pm.avgFrameTime
	start := pm.startTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avg > 0 {
		fps = 1e9 / avg
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := Metrics{
		Frames:          pm.frameCount.Load(),
		FramesPerSecond: fps,
		AvgFrameTime:    time.Duration(avg),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
		Uptime:          time.Since(start),
	}
	for i := range m.Passes {
		m.Passes[i] = time.Duration(pm.passTimes[i].Load())
	}
	return m
}

// Pass returns the last recorded duration of p.
func (m Metrics) Pass(p Pass) time.Duration {
	if p < 0 || p >= passCount {
		return 0
	}
	return m.Passes[p]
}

// String formats the snapshot for the debug overlay.
func (m Metrics) String() string {
	return fmt.Sprintf("%.0f fps  ray %s  sprites %s  combat %s  ai %s",
		m.FramesPerSecond,
		m.Pass(PassRaycast).Round(time.Microsecond),
		m.Pass(PassComposite).Round(time.Microsecond),
		m.Pass(PassCombat).Round(time.Microsecond),
		m.Pass(PassAI).Round(time.Microsecond))
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts reports a low frame rate once enough frames have
// been measured to be meaningful.
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	m := pm.GetCurrentMetrics()
	if m.Frames < 60 || m.FramesPerSecond == 0 || m.FramesPerSecond >= minFPS {
		return nil
	}
	return []PerformanceAlert{{
		Type:      "low_fps",
		Message:   fmt.Sprintf("Frame rate is below %.0f FPS", minFPS),
		Value:     m.FramesPerSecond,
		Threshold: minFPS,
	}}
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	for i := range pm.passTimes {
		pm.passTimes[i].Store(0)
	}

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
