package render

import (
	"image/color"
	"math"

	"gridshot/internal/config"
	"gridshot/internal/perf"
	"gridshot/internal/threading"
	"gridshot/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Renderer owns the frame-scoped buffers (depth, wall hits, sprite queue,
// visible ranges). They are sized once and reused every frame.
type Renderer struct {
	width, height int
	sky, floor    color.RGBA
	sprites       config.SpritesConfig
	textures      Textures
	monitor       *perf.PerformanceMonitor
	pool          *threading.WorkerPool // nil casts walls serially

	depth   []float64
	hits    []WallHit
	queue   []projectedSprite
	visible []VisibleRange
}

// NewRenderer creates a renderer for the configured screen size. monitor may
// be nil.
func NewRenderer(cfg *config.Config, textures Textures, monitor *perf.PerformanceMonitor) *Renderer {
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	r := &Renderer{
		width:    w,
		height:   h,
		sky:      rgb(cfg.Display.SkyColor),
		floor:    rgb(cfg.Display.FloorColor),
		sprites:  cfg.Sprites,
		textures: textures,
		monitor:  monitor,
		depth:    make([]float64, w),
		hits:     make([]WallHit, w),
		queue:    make([]projectedSprite, 0, 64),
		visible:  make([]VisibleRange, 0, 16),
	}
	if n := cfg.Display.RenderWorkers; n > 1 {
		r.pool = threading.NewWorkerPool(n)
		r.pool.Start()
	}
	if r.textures.Enemy.DeathFrameTime <= 0 {
		r.textures.Enemy.DeathFrameTime = cfg.Sprites.DeathFrameTime
	}

	logger.Component("render").WithFields(logrus.Fields{
		"width":        w,
		"height":       h,
		"wall_tex":     len(textures.Walls),
		"pickup_tex":   len(textures.Pickups),
		"death_frames": len(textures.Enemy.DeathFrames),
		"workers":      cfg.Display.RenderWorkers,
	}).Debug("renderer ready")
	return r
}

func rgb(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

// Close stops the casting workers, if any.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Stop()
	}
}

// Size returns the screen size the renderer draws at.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Render draws one frame: walls first, then billboards occluded against the
// wall depth buffer. The returned Frame aliases the renderer's buffers and is
// valid until the next call.
func (r *Renderer) Render(s Surface, sc *Scene) Frame {
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
	r.queue = r.queue[:0]
	r.visible = r.visible[:0]

	t := r.monitor.StartPass(perf.PassRaycast)
	if r.pool != nil {
		CastWallsParallel(r.pool, sc.Grid, sc.Viewer, r.width, r.hits, r.depth)
	} else {
		CastWalls(sc.Grid, sc.Viewer, r.width, r.hits, r.depth)
	}
	r.drawWalls(s, sc.Viewer)
	t.End()

	t = r.monitor.StartPass(perf.PassComposite)
	r.queueSprites(sc, newCamera(sc.Viewer, r.width, r.height))
	r.composite(s)
	t.End()

	return Frame{Depth: r.depth, Visible: r.visible}
}
