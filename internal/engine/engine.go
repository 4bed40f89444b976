package engine

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Hooks are the game-level callbacks around each frame.
type Hooks interface {
	// EarlyUpdate runs before any entity update.
	EarlyUpdate(dt float64, in core.InputFrame)
	// LateUpdate runs after the collision sweep, before removals are flushed.
	LateUpdate(dt float64, in core.InputFrame)
	// Draw runs before drawables are painted.
	Draw(s Surface)
}

// NopHooks implements Hooks with no-ops; embed it to override selectively.
type NopHooks struct{}

func (NopHooks) EarlyUpdate(float64, core.InputFrame) {}
func (NopHooks) LateUpdate(float64, core.InputFrame)  {}
func (NopHooks) Draw(Surface)                         {}

type removalKind int

const (
	removeObject removalKind = iota
	removeEntity
	removeDrawable
)

type removalKey struct {
	kind removalKind
	v    any
}

type removal struct {
	kind     removalKind
	object   GameObject
	entity   Entity
	drawable Drawable
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l.WithPrefix("engine")
		}
	}
}

// WithBackground sets the cell the surface is cleared to each frame.
func WithBackground(c core.Cell) Option {
	return func(e *Engine) {
		e.background = c
	}
}

// WithClock sets the clock used by Run.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithTickRate sets the frame rate of the default Run clock.
func WithTickRate(hz int) Option {
	return func(e *Engine) {
		if hz > 0 {
			e.tickRate = hz
		}
	}
}

// Engine owns every registered entity, drawable and collision bucket and
// runs them through a fixed frame sequence. It is not safe for concurrent use.
type Engine struct {
	hooks  Hooks
	matrix CollisionMatrix
	pairs  []LayerPair

	entities  []Entity
	drawables []Drawable
	layers    [MatrixDepth][]GameObject

	entitySet   map[Entity]struct{}
	drawableSet map[Drawable]struct{}
	objectSet   map[GameObject]struct{}

	pending []removal
	queued  map[removalKey]struct{}

	outbox      []any
	subscribers Hook[any]

	background core.Cell
	logger     *log.Logger
	clock      Clock
	tickRate   int

	state   State
	inFrame bool
	quit    bool
	frames  uint64
}

// New creates an idle engine. rows is the collision matrix, one bitmask per
// layer; hooks may be nil.
func New(hooks Hooks, rows []int, opts ...Option) (*Engine, error) {
	matrix, err := NewCollisionMatrix(rows)
	if err != nil {
		return nil, err
	}
	if hooks == nil {
		hooks = NopHooks{}
	}

	e := &Engine{
		hooks:       hooks,
		matrix:      matrix,
		pairs:       matrix.Pairs(),
		entitySet:   make(map[Entity]struct{}),
		drawableSet: make(map[Drawable]struct{}),
		objectSet:   make(map[GameObject]struct{}),
		queued:      make(map[removalKey]struct{}),
		background:  core.Cell{Rune: ' ', Color: core.ColorDefault},
		logger:      log.New(io.Discard),
		tickRate:    60,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.logger.Debug("created", "pairs", len(e.pairs))
	return e, nil
}

// Matrix returns the collision matrix.
func (e *Engine) Matrix() CollisionMatrix {
	return e.matrix
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// FrameCount returns the number of completed updates.
func (e *Engine) FrameCount() uint64 {
	return e.frames
}

// AddEntity registers an entity. It is updated from the current pass on if
// added during the entity pass.
func (e *Engine) AddEntity(ent Entity) {
	if _, ok := e.entitySet[ent]; ok {
		violate("AddEntity", "entity %T already registered", ent)
	}
	e.entitySet[ent] = struct{}{}
	e.entities = append(e.entities, ent)
}

// AddDrawable registers a drawable.
func (e *Engine) AddDrawable(d Drawable) {
	if _, ok := e.drawableSet[d]; ok {
		violate("AddDrawable", "drawable %T already registered", d)
	}
	e.drawableSet[d] = struct{}{}
	e.drawables = append(e.drawables, d)
}

// AddGameObject registers o as an entity, its drawable as a drawable and,
// unless its layer is NoLayer, o in its collision bucket. Objects added
// during the collision sweep are not collided until the next frame.
func (e *Engine) AddGameObject(o GameObject) error {
	layer := o.CollisionLayer()
	if layer < NoLayer || layer >= MatrixDepth {
		return &ConfigurationError{
			Field:  "collision layer",
			Reason: layerRangeReason(layer),
		}
	}
	if _, ok := e.objectSet[o]; ok {
		violate("AddGameObject", "object %T already registered", o)
	}
	d := o.Drawable()
	if d == nil {
		violate("AddGameObject", "object %T has no drawable", o)
	}

	e.AddEntity(o)
	e.AddDrawable(d)
	e.objectSet[o] = struct{}{}
	if layer != NoLayer {
		e.layers[layer] = append(e.layers[layer], o)
	}

	e.logger.Debug("object added", "type", typeName(o), "layer", layer)
	return nil
}

// RemoveGameObject deactivates o now and unregisters it at the end of the
// frame. Repeated requests before the flush are ignored.
func (e *Engine) RemoveGameObject(o GameObject) {
	if _, ok := e.objectSet[o]; !ok {
		violate("RemoveGameObject", "object %T is not registered", o)
	}
	e.enqueue(removalKey{removeObject, o}, removal{kind: removeObject, object: o})
	o.SetActive(false)
}

// RemoveEntity deactivates ent now and unregisters it at the end of the frame.
func (e *Engine) RemoveEntity(ent Entity) {
	if _, ok := e.entitySet[ent]; !ok {
		violate("RemoveEntity", "entity %T is not registered", ent)
	}
	e.enqueue(removalKey{removeEntity, ent}, removal{kind: removeEntity, entity: ent})
	ent.SetActive(false)
}

// RemoveDrawable deactivates d now and unregisters it at the end of the frame.
func (e *Engine) RemoveDrawable(d Drawable) {
	if _, ok := e.drawableSet[d]; !ok {
		violate("RemoveDrawable", "drawable %T is not registered", d)
	}
	e.enqueue(removalKey{removeDrawable, d}, removal{kind: removeDrawable, drawable: d})
	d.SetActive(false)
}

// RemoveGameObjectNow unregisters o immediately. It may only be called
// between frames.
func (e *Engine) RemoveGameObjectNow(o GameObject) {
	if e.inFrame {
		violate("RemoveGameObjectNow", "called during a frame")
	}
	if _, ok := e.objectSet[o]; !ok {
		violate("RemoveGameObjectNow", "object %T is not registered", o)
	}
	if key := (removalKey{removeObject, o}); e.hasQueued(key) {
		delete(e.queued, key)
		e.pending = slices.DeleteFunc(e.pending, func(r removal) bool {
			return r.kind == removeObject && r.object == o
		})
	}
	e.unregisterObject(o)
}

func (e *Engine) hasQueued(key removalKey) bool {
	_, ok := e.queued[key]
	return ok
}

func (e *Engine) enqueue(key removalKey, r removal) {
	if e.hasQueued(key) {
		return
	}
	e.queued[key] = struct{}{}
	e.pending = append(e.pending, r)
}

// ObjectsInLayer returns a copy of the given layer's bucket.
func (e *Engine) ObjectsInLayer(layer int) []GameObject {
	if layer < 0 || layer >= MatrixDepth {
		return nil
	}
	return slices.Clone(e.layers[layer])
}

// Entities returns a copy of the entity list in update order.
func (e *Engine) Entities() []Entity {
	return slices.Clone(e.entities)
}

// Drawables returns a copy of the drawable list in its current order.
func (e *Engine) Drawables() []Drawable {
	return slices.Clone(e.drawables)
}

// Registered reports whether c is registered as an entity, drawable or
// game object.
func (e *Engine) Registered(c Component) bool {
	if o, ok := c.(GameObject); ok {
		if _, ok := e.objectSet[o]; ok {
			return true
		}
	}
	if ent, ok := c.(Entity); ok {
		if _, ok := e.entitySet[ent]; ok {
			return true
		}
	}
	if d, ok := c.(Drawable); ok {
		if _, ok := e.drawableSet[d]; ok {
			return true
		}
	}
	return false
}

// Post queues a message for subscribers. Messages are delivered after the
// collision sweep of the current frame.
func (e *Engine) Post(msg any) {
	e.outbox = append(e.outbox, msg)
}

// Subscribe registers a handler for posted messages.
func (e *Engine) Subscribe(fn func(msg any)) HookID {
	return e.subscribers.Add(fn)
}

// Unsubscribe removes a message handler.
func (e *Engine) Unsubscribe(id HookID) bool {
	return e.subscribers.Remove(id)
}

// Update runs the simulation half of a frame: early hook, entity updates,
// collision sweep, message delivery, late hook and removal flush.
// The same input snapshot is passed to every call.
func (e *Engine) Update(dt float64, in core.InputFrame) {
	e.beginFrame("Update")
	defer e.endFrame()

	e.hooks.EarlyUpdate(dt, in)

	// Re-read len so entities added during the pass still run this pass.
	for i := 0; i < len(e.entities); i++ {
		if ent := e.entities[i]; ent.Active() {
			ent.Update(dt, in)
		}
	}

	e.sweep()
	e.drainOutbox()

	e.hooks.LateUpdate(dt, in)

	e.flush()
	e.frames++
}

// Draw runs the render half of a frame: clear, draw hook, then every active
// drawable in ascending SortKey order.
func (e *Engine) Draw(s Surface) {
	e.beginFrame("Draw")
	defer e.endFrame()

	if f, ok := s.(interface{ Fill(core.Cell) }); ok {
		f.Fill(e.background)
	}
	e.hooks.Draw(s)

	slices.SortStableFunc(e.drawables, func(a, b Drawable) int {
		return cmp.Compare(a.SortKey(), b.SortKey())
	})
	for _, d := range e.drawables {
		if d.Active() {
			d.Draw(s)
		}
	}
}

// Frame runs Update then Draw.
func (e *Engine) Frame(dt float64, in core.InputFrame, s Surface) {
	e.Update(dt, in)
	e.Draw(s)
}

// Quit asks Run to return once the current frame has completed.
func (e *Engine) Quit() {
	e.quit = true
}

// Stop moves the engine to its terminal state.
func (e *Engine) Stop() {
	if e.state == StateStopped {
		return
	}
	e.setState(StateStopped)
}

func (e *Engine) beginFrame(op string) {
	if e.state == StateStopped {
		violate(op, "engine is stopped")
	}
	if e.inFrame {
		violate(op, "re-entered during a frame")
	}
	if e.state == StateIdle {
		e.setState(StateRunning)
	}
	e.inFrame = true
}

func (e *Engine) endFrame() {
	e.inFrame = false
}

func (e *Engine) setState(s State) {
	e.logger.Debug("state", "from", e.state, "to", s)
	e.state = s
}

// sweep tests every enabled layer pair. Buckets and active flags are
// captured up front: spawns wait for the next frame, and objects deactivated
// mid-sweep still receive their remaining callbacks.
func (e *Engine) sweep() {
	var snap [MatrixDepth][]GameObject
	for l, bucket := range e.layers {
		for _, o := range bucket {
			if o.Active() {
				snap[l] = append(snap[l], o)
			}
		}
	}

	for _, p := range e.pairs {
		la, lb := snap[p.A], snap[p.B]
		for ai, a := range la {
			rest := lb
			if p.A == p.B {
				rest = lb[ai+1:]
			}
			for _, b := range rest {
				if a == b {
					continue
				}
				if a.Collider().Intersects(b.Collider()) {
					a.OnCollision(b)
					b.OnCollision(a)
				}
			}
		}
	}
}

// drainOutbox delivers queued messages, including ones posted by handlers.
func (e *Engine) drainOutbox() {
	for len(e.outbox) > 0 {
		batch := e.outbox
		e.outbox = nil
		for _, msg := range batch {
			e.subscribers.Invoke(msg)
		}
	}
}

func (e *Engine) flush() {
	if len(e.pending) == 0 {
		return
	}
	for _, r := range e.pending {
		switch r.kind {
		case removeObject:
			e.unregisterObject(r.object)
		case removeEntity:
			e.unregisterEntity(r.entity)
		case removeDrawable:
			e.unregisterDrawable(r.drawable)
		}
	}
	e.logger.Debug("flushed removals", "count", len(e.pending))
	e.pending = e.pending[:0]
	clear(e.queued)
}

func (e *Engine) unregisterObject(o GameObject) {
	if _, ok := e.objectSet[o]; !ok {
		return
	}
	delete(e.objectSet, o)
	e.unregisterEntity(o)
	e.unregisterDrawable(o.Drawable())
	if l := o.CollisionLayer(); l >= 0 && l < MatrixDepth {
		e.layers[l] = slices.DeleteFunc(e.layers[l], func(x GameObject) bool { return x == o })
	}
}

func (e *Engine) unregisterEntity(ent Entity) {
	if _, ok := e.entitySet[ent]; !ok {
		return
	}
	delete(e.entitySet, ent)
	e.entities = slices.DeleteFunc(e.entities, func(x Entity) bool { return x == ent })
}

func (e *Engine) unregisterDrawable(d Drawable) {
	if _, ok := e.drawableSet[d]; !ok {
		return
	}
	delete(e.drawableSet, d)
	e.drawables = slices.DeleteFunc(e.drawables, func(x Drawable) bool { return x == d })
}

func layerRangeReason(layer int) string {
	return fmt.Sprintf("%d outside [%d, %d)", layer, NoLayer, MatrixDepth)
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
