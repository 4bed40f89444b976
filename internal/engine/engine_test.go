package engine

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/leob-arcade/internal/core"
)

// trace records calls made during a frame.
type trace struct {
	calls []string
}

func (tr *trace) add(format string, args ...any) {
	tr.calls = append(tr.calls, fmt.Sprintf(format, args...))
}

type recEntity struct {
	BaseComponent
	name string
	tr   *trace
	on   func()
}

func (r *recEntity) Update(float64, core.InputFrame) {
	r.tr.add("update:%s", r.name)
	if r.on != nil {
		r.on()
	}
}

type recObject struct {
	Object
	name  string
	tr    *trace
	onHit func(other GameObject)
}

func newRecObject(tr *trace, name string, r core.Rect, layer int) *recObject {
	return &recObject{
		Object: NewObject(NewRectangle(r, core.ColorWhite), layer),
		name:   name,
		tr:     tr,
	}
}

func (o *recObject) Update(float64, core.InputFrame) {
	o.tr.add("update:%s", o.name)
}

func (o *recObject) OnCollision(other GameObject) {
	o.tr.add("hit:%s>%s", o.name, other.(*recObject).name)
	if o.onHit != nil {
		o.onHit(other)
	}
}

type recHooks struct {
	tr    *trace
	early func()
	late  func()
	draw  func()
}

func (h *recHooks) EarlyUpdate(float64, core.InputFrame) {
	h.tr.add("early")
	if h.early != nil {
		h.early()
	}
}

func (h *recHooks) LateUpdate(float64, core.InputFrame) {
	h.tr.add("late")
	if h.late != nil {
		h.late()
	}
}

func (h *recHooks) Draw(Surface) {
	h.tr.add("draw")
	if h.draw != nil {
		h.draw()
	}
}

// recSurface records the top edge of every rect drawn and every image blit.
type recSurface struct {
	rects  []float64
	images []imageCall
}

type imageCall struct {
	img core.Image
	pos core.Vector2
}

func (s *recSurface) DrawRect(r core.Rect, _ core.Color) { s.rects = append(s.rects, r.Top()) }
func (s *recSurface) DrawImage(img core.Image, pos core.Vector2) {
	s.images = append(s.images, imageCall{img, pos})
}
func (s *recSurface) DrawText(core.Vector2, string, core.Color) {}

func newTestEngine(t *testing.T, hooks Hooks, rows []int) *Engine {
	t.Helper()
	e, err := New(hooks, rows)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return e
}

func mustAdd(t *testing.T, e *Engine, o GameObject) {
	t.Helper()
	if err := e.AddGameObject(o); err != nil {
		t.Fatalf("AddGameObject() error: %v", err)
	}
}

func expectViolation(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected %s to panic", op)
		}
		v, ok := r.(*InvariantViolation)
		if !ok {
			t.Fatalf("panic payload = %T, expected *InvariantViolation", r)
		}
		if v.Op != op {
			t.Errorf("violation op = %q, expected %q", v.Op, op)
		}
	}()
	fn()
}

func TestFrameOrder(t *testing.T) {
	tr := &trace{}
	hooks := &recHooks{tr: tr}
	e := newTestEngine(t, hooks, []int{0b1})

	e1 := &recEntity{name: "e1", tr: tr}
	e2 := &recEntity{name: "e2", tr: tr}
	e2.SetActive(false)
	a := newRecObject(tr, "a", core.NewRect(0, 0, 10, 10), 0)
	b := newRecObject(tr, "b", core.NewRect(5, 5, 10, 10), 0)

	e.AddEntity(e1)
	e.AddEntity(e2)
	mustAdd(t, e, a)
	mustAdd(t, e, b)

	hooks.late = func() {
		e.RemoveGameObject(b)
		tr.add("registered:%v", e.Registered(b))
	}
	hooks.draw = func() {
		tr.add("registered:%v", e.Registered(b))
	}

	e.Frame(1.0/60, core.NewInputFrame(), &recSurface{})

	expected := []string{
		"early",
		"update:e1",
		"update:a",
		"update:b",
		"hit:a>b",
		"hit:b>a",
		"late",
		"registered:true",
		"draw",
		"registered:false",
	}
	if !reflect.DeepEqual(tr.calls, expected) {
		t.Errorf("call sequence:\n got  %v\n want %v", tr.calls, expected)
	}
	if e.FrameCount() != 1 {
		t.Errorf("FrameCount() = %d, expected 1", e.FrameCount())
	}
	if e.State() != StateRunning {
		t.Errorf("State() = %v, expected running", e.State())
	}
}

func TestSameInputForEveryCall(t *testing.T) {
	var seen []bool
	e := newTestEngine(t, nil, nil)
	for i := 0; i < 3; i++ {
		e.AddEntity(&inputProbe{seen: &seen})
	}

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	e.Update(0.016, in)

	if !reflect.DeepEqual(seen, []bool{true, true, true}) {
		t.Errorf("entities saw %v, expected the same pressed snapshot", seen)
	}
}

type inputProbe struct {
	BaseComponent
	seen *[]bool
}

func (p *inputProbe) Update(_ float64, in core.InputFrame) {
	*p.seen = append(*p.seen, in.Has(core.ActionUp))
}

func TestDeferredRemovalSafety(t *testing.T) {
	tr := &trace{}
	hooks := &recHooks{tr: tr}
	e := newTestEngine(t, hooks, []int{0b10})

	x := newRecObject(tr, "x", core.NewRect(0, 0, 20, 20), 0)
	y := newRecObject(tr, "y", core.NewRect(5, 5, 5, 5), 1)
	z := newRecObject(tr, "z", core.NewRect(12, 12, 5, 5), 1)
	mustAdd(t, e, x)
	mustAdd(t, e, y)
	mustAdd(t, e, z)

	x.onHit = func(GameObject) { e.RemoveGameObject(x) }

	hooks.late = func() {
		if x.Active() || x.Drawable().Active() {
			t.Error("removed object should be inactive before the flush")
		}
		if !containsEntity(e.Entities(), x) {
			t.Error("removed object should stay in the entity list until the flush")
		}
		if !containsDrawable(e.Drawables(), x.Drawable()) {
			t.Error("removed object's drawable should stay registered until the flush")
		}
	}

	e.Update(0.016, core.NewInputFrame())

	hits := 0
	for _, c := range tr.calls {
		if c == "hit:x>y" || c == "hit:x>z" {
			hits++
		}
	}
	if hits != 2 {
		t.Errorf("x received %d callbacks, expected 2 (calls %v)", hits, tr.calls)
	}

	if e.Registered(x) {
		t.Error("x should be unregistered after the frame")
	}
	if len(e.ObjectsInLayer(0)) != 0 {
		t.Error("layer 0 bucket should be empty")
	}
	if containsEntity(e.Entities(), x) || containsDrawable(e.Drawables(), x.Drawable()) {
		t.Error("x should be absent from all registries")
	}

	tr.calls = nil
	hooks.late = nil
	e.Update(0.016, core.NewInputFrame())
	for _, c := range tr.calls {
		if c == "hit:y>x" || c == "hit:z>x" || c == "update:x" {
			t.Errorf("unexpected call %q after removal", c)
		}
	}
}

func containsEntity(list []Entity, x Entity) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}

func containsDrawable(list []Drawable, x Drawable) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}

func TestCollisionDelivery(t *testing.T) {
	tests := []struct {
		name     string
		rows     []int
		layerA   int
		layerB   int
		expected []string
	}{
		{"cross layer enabled", []int{0b10}, 0, 1, []string{"hit:a>b", "hit:b>a"}},
		{"cross layer disabled", []int{0b01, 0b10}, 0, 1, nil},
		{"self layer", []int{0b01}, 0, 0, []string{"hit:a>b", "hit:b>a"}},
		{"self layer disabled", []int{0b10}, 1, 1, nil},
		{"lower bits ignored", []int{0, 0b01}, 0, 1, nil},
		{"no layer", []int{0xff}, NoLayer, 0, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := &trace{}
			e := newTestEngine(t, nil, tc.rows)
			mustAdd(t, e, newRecObject(tr, "a", core.NewRect(0, 0, 10, 10), tc.layerA))
			mustAdd(t, e, newRecObject(tr, "b", core.NewRect(5, 5, 10, 10), tc.layerB))

			e.Update(0.016, core.NewInputFrame())

			var hits []string
			for _, c := range tr.calls {
				if len(c) > 4 && c[:4] == "hit:" {
					hits = append(hits, c)
				}
			}
			if !reflect.DeepEqual(hits, tc.expected) {
				t.Errorf("callbacks = %v, expected %v", hits, tc.expected)
			}
		})
	}
}

// Each unordered pair in a self-colliding layer is visited once, so both
// sides get exactly one callback; a full nested loop would deliver two each.
func TestSelfLayerEachPairOnce(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, []int{0b1})
	for _, n := range []string{"a", "b", "c"} {
		mustAdd(t, e, newRecObject(tr, n, core.NewRect(0, 0, 10, 10), 0))
	}

	e.Update(0.016, core.NewInputFrame())

	counts := map[string]int{}
	for _, c := range tr.calls {
		counts[c]++
	}
	for _, pair := range []string{"a>b", "b>a", "a>c", "c>a", "b>c", "c>b"} {
		if counts["hit:"+pair] != 1 {
			t.Errorf("hit:%s fired %d times, expected 1", pair, counts["hit:"+pair])
		}
	}
}

func TestTouchingObjectsDoNotCollide(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, []int{0b10})
	mustAdd(t, e, newRecObject(tr, "a", core.NewRect(0, 0, 10, 10), 0))
	mustAdd(t, e, newRecObject(tr, "b", core.NewRect(10, 0, 10, 10), 1))

	e.Update(0.016, core.NewInputFrame())

	for _, c := range tr.calls {
		if c[:4] == "hit:" {
			t.Errorf("unexpected callback %q for edge-touching rects", c)
		}
	}
}

func TestDrawOrder(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	for _, y := range []float64{30, 10, 20} {
		e.AddDrawable(NewRectangle(core.NewRect(0, y, 5, 5), core.ColorWhite))
	}
	hidden := NewRectangle(core.NewRect(0, 15, 5, 5), core.ColorWhite)
	hidden.SetActive(false)
	e.AddDrawable(hidden)

	s := &recSurface{}
	e.Draw(s)

	if !reflect.DeepEqual(s.rects, []float64{10, 20, 30}) {
		t.Errorf("draw order = %v, expected [10 20 30]", s.rects)
	}
}

func TestSpriteDraw(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	art := core.NewImage(core.ColorCyan, "/\\", "\\/")
	shown := NewSprite(core.NewRect(12, 7, 4, 2), art)
	hidden := NewSprite(core.NewRect(30, 3, 4, 2), art)
	hidden.SetActive(false)
	e.AddDrawable(shown)
	e.AddDrawable(hidden)

	s := &recSurface{}
	e.Draw(s)

	if len(s.images) != 1 {
		t.Fatalf("images drawn = %d, expected 1", len(s.images))
	}
	got := s.images[0]
	if got.pos != core.Vec2(12, 7) {
		t.Errorf("image drawn at %v, expected (12, 7)", got.pos)
	}
	if !reflect.DeepEqual(got.img, art) {
		t.Errorf("image = %+v, expected the sprite's art", got.img)
	}
}

func TestDrawOrderStable(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	first := NewRectangle(core.NewRect(0, 10, 5, 5), core.ColorRed)
	second := NewRectangle(core.NewRect(0, 10, 5, 5), core.ColorBlue)
	e.AddDrawable(first)
	e.AddDrawable(second)

	for i := 0; i < 3; i++ {
		e.Draw(&recSurface{})
		ds := e.Drawables()
		if ds[0] != Drawable(first) || ds[1] != Drawable(second) {
			t.Fatal("equal sort keys should keep registration order")
		}
	}
}

func TestDrawClearsCanvas(t *testing.T) {
	bg := core.Cell{Rune: '.', Color: core.ColorGray}
	e, err := New(nil, nil, WithBackground(bg))
	if err != nil {
		t.Fatal(err)
	}
	screen := core.NewScreen(4, 2)
	screen.Fill('x')
	e.Draw(core.NewCanvas(screen, core.Vec2(4, 2)))

	if screen.GetCell(0, 0) != bg || screen.GetCell(3, 1) != bg {
		t.Errorf("canvas not cleared to background: %q", screen.String())
	}
}

func TestEntityAddedDuringPassRunsSamePass(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, nil)
	late := &recEntity{name: "late", tr: tr}
	spawner := &recEntity{name: "spawner", tr: tr}
	spawner.on = func() {
		if !e.Registered(late) {
			e.AddEntity(late)
		}
	}
	e.AddEntity(spawner)

	e.Update(0.016, core.NewInputFrame())

	if !reflect.DeepEqual(tr.calls, []string{"update:spawner", "update:late"}) {
		t.Errorf("calls = %v", tr.calls)
	}
}

func TestSpawnDuringSweepWaitsForNextFrame(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, []int{0b10})
	a := newRecObject(tr, "a", core.NewRect(0, 0, 10, 10), 0)
	b := newRecObject(tr, "b", core.NewRect(5, 5, 10, 10), 1)
	mustAdd(t, e, a)
	mustAdd(t, e, b)

	c := newRecObject(tr, "c", core.NewRect(0, 0, 10, 10), 1)
	a.onHit = func(GameObject) {
		if !e.Registered(c) {
			mustAdd(t, e, c)
		}
	}

	e.Update(0.016, core.NewInputFrame())
	for _, call := range tr.calls {
		if call == "hit:a>c" || call == "hit:c>a" {
			t.Fatalf("spawned object collided in the frame it was added: %v", tr.calls)
		}
	}

	tr.calls = nil
	e.Update(0.016, core.NewInputFrame())
	found := false
	for _, call := range tr.calls {
		if call == "hit:a>c" {
			found = true
		}
	}
	if !found {
		t.Errorf("spawned object should collide next frame: %v", tr.calls)
	}
}

func TestMatrixPadding(t *testing.T) {
	short, err := NewCollisionMatrix([]int{0b11, 0b10})
	if err != nil {
		t.Fatal(err)
	}
	full, err := NewCollisionMatrix([]int{0b11, 0b10, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if short != full {
		t.Errorf("padded matrix %v differs from explicit %v", short.Rows(), full.Rows())
	}
	if !reflect.DeepEqual(short.Pairs(), []LayerPair{{0, 0}, {0, 1}, {1, 1}}) {
		t.Errorf("Pairs() = %v", short.Pairs())
	}

	tr := &trace{}
	e := newTestEngine(t, nil, []int{0b11, 0b10})
	for l := 2; l < MatrixDepth; l++ {
		mustAdd(t, e, newRecObject(tr, fmt.Sprint(l), core.NewRect(0, 0, 10, 10), l))
	}
	e.Update(0.016, core.NewInputFrame())
	for _, c := range tr.calls {
		if c[:4] == "hit:" {
			t.Errorf("layers 2-7 should not collide, got %q", c)
		}
	}
}

func TestCollisionMatrixPairs(t *testing.T) {
	m, err := NewCollisionMatrix([]int{0b0110, 0b1001})
	if err != nil {
		t.Fatal(err)
	}
	expected := []LayerPair{{0, 1}, {0, 2}, {1, 3}}
	if !reflect.DeepEqual(m.Pairs(), expected) {
		t.Errorf("Pairs() = %v, expected %v", m.Pairs(), expected)
	}
	if !m.Enabled(1, 0) {
		t.Error("Enabled reads the raw row bit")
	}
	if m.Enabled(-1, 0) || m.Enabled(0, MatrixDepth) {
		t.Error("out-of-range layers are never enabled")
	}
}

func TestCollisionMatrixValidation(t *testing.T) {
	tests := []struct {
		name string
		rows []int
	}{
		{"too many rows", make([]int, MatrixDepth+1)},
		{"negative row", []int{0, -1}},
		{"bit past depth", []int{1 << MatrixDepth}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCollisionMatrix(tc.rows)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error = %v, expected ConfigurationError", err)
			}
			if cfgErr.Field != "collision matrix" {
				t.Errorf("Field = %q", cfgErr.Field)
			}

			if _, err := New(nil, tc.rows); !errors.As(err, &cfgErr) {
				t.Errorf("New() error = %v, expected ConfigurationError", err)
			}
		})
	}
}

func TestAddGameObjectLayerValidation(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	tr := &trace{}

	for _, layer := range []int{-2, MatrixDepth, 100} {
		err := e.AddGameObject(newRecObject(tr, "bad", core.NewRect(0, 0, 1, 1), layer))
		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("layer %d: error = %v, expected ConfigurationError", layer, err)
		}
	}
	if len(e.Entities()) != 0 || len(e.Drawables()) != 0 {
		t.Error("rejected objects must not be registered")
	}

	free := newRecObject(tr, "free", core.NewRect(0, 0, 1, 1), NoLayer)
	mustAdd(t, e, free)
	for l := 0; l < MatrixDepth; l++ {
		if len(e.ObjectsInLayer(l)) != 0 {
			t.Errorf("NoLayer object found in bucket %d", l)
		}
	}
	if !e.Registered(free) {
		t.Error("NoLayer object should still be registered")
	}
}

func TestInvariantViolations(t *testing.T) {
	tr := &trace{}

	t.Run("double entity", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		ent := &recEntity{tr: tr}
		e.AddEntity(ent)
		expectViolation(t, "AddEntity", func() { e.AddEntity(ent) })
	})

	t.Run("double object", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		o := newRecObject(tr, "o", core.NewRect(0, 0, 1, 1), 0)
		mustAdd(t, e, o)
		expectViolation(t, "AddGameObject", func() { _ = e.AddGameObject(o) })
	})

	t.Run("remove unregistered object", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		o := newRecObject(tr, "o", core.NewRect(0, 0, 1, 1), 0)
		expectViolation(t, "RemoveGameObject", func() { e.RemoveGameObject(o) })
	})

	t.Run("remove unregistered entity", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		expectViolation(t, "RemoveEntity", func() { e.RemoveEntity(&recEntity{tr: tr}) })
	})

	t.Run("remove unregistered drawable", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		d := NewRectangle(core.NewRect(0, 0, 1, 1), core.ColorWhite)
		expectViolation(t, "RemoveDrawable", func() { e.RemoveDrawable(d) })
	})

	t.Run("immediate removal mid-frame", func(t *testing.T) {
		hooks := &recHooks{tr: tr}
		e := newTestEngine(t, hooks, nil)
		o := newRecObject(tr, "o", core.NewRect(0, 0, 1, 1), 0)
		mustAdd(t, e, o)
		hooks.early = func() { e.RemoveGameObjectNow(o) }
		expectViolation(t, "RemoveGameObjectNow", func() { e.Update(0.016, core.NewInputFrame()) })
	})

	t.Run("update after stop", func(t *testing.T) {
		e := newTestEngine(t, nil, nil)
		e.Stop()
		expectViolation(t, "Update", func() { e.Update(0.016, core.NewInputFrame()) })
	})
}

func TestRepeatedRemovalIsNoop(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, nil)
	o := newRecObject(tr, "o", core.NewRect(0, 0, 1, 1), 0)
	mustAdd(t, e, o)

	e.RemoveGameObject(o)
	e.RemoveGameObject(o)
	e.Update(0.016, core.NewInputFrame())

	if e.Registered(o) {
		t.Error("object should be unregistered")
	}
}

func TestRemoveGameObjectNow(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, []int{0b1})
	o := newRecObject(tr, "o", core.NewRect(0, 0, 1, 1), 0)
	mustAdd(t, e, o)
	e.RemoveGameObject(o)

	e.RemoveGameObjectNow(o)
	if e.Registered(o) || len(e.ObjectsInLayer(0)) != 0 {
		t.Error("object should be gone immediately")
	}

	// The queued request was dropped, so the flush must not trip over it.
	e.Update(0.016, core.NewInputFrame())

	// Re-adding after an immediate removal is allowed.
	o.SetActive(true)
	mustAdd(t, e, o)
}

func TestRemoveEntityAndDrawable(t *testing.T) {
	tr := &trace{}
	e := newTestEngine(t, nil, nil)
	ent := &recEntity{name: "e", tr: tr}
	d := NewRectangle(core.NewRect(0, 0, 1, 1), core.ColorWhite)
	e.AddEntity(ent)
	e.AddDrawable(d)

	e.RemoveEntity(ent)
	e.RemoveDrawable(d)
	if ent.Active() || d.Active() {
		t.Error("removal should deactivate immediately")
	}
	e.Update(0.016, core.NewInputFrame())

	if len(tr.calls) != 0 {
		t.Errorf("removed entity was updated: %v", tr.calls)
	}
	if e.Registered(ent) || e.Registered(d) {
		t.Error("entity and drawable should be unregistered after the flush")
	}
}

func TestObjectSetActivePropagates(t *testing.T) {
	o := NewObject(NewRectangle(core.NewRect(0, 0, 1, 1), core.ColorWhite), 0)
	o.SetActive(false)
	if o.Active() || o.Drawable().Active() {
		t.Error("deactivating an object must deactivate its drawable")
	}
	o.SetActive(true)
	if !o.Active() || !o.Drawable().Active() {
		t.Error("reactivating an object must reactivate its drawable")
	}
	if o.Collider() != core.NewRect(0, 0, 1, 1) {
		t.Errorf("Collider() = %v", o.Collider())
	}
}

type hitMsg struct{ from, to string }

func TestOutboxDrainedAfterSweep(t *testing.T) {
	tr := &trace{}
	hooks := &recHooks{tr: tr}
	e := newTestEngine(t, hooks, []int{0b10})
	a := newRecObject(tr, "a", core.NewRect(0, 0, 10, 10), 0)
	b := newRecObject(tr, "b", core.NewRect(5, 5, 10, 10), 1)
	mustAdd(t, e, a)
	mustAdd(t, e, b)

	a.onHit = func(other GameObject) {
		e.Post(hitMsg{from: "a", to: other.(*recObject).name})
	}
	e.Subscribe(func(msg any) {
		switch m := msg.(type) {
		case hitMsg:
			tr.add("msg:%s>%s", m.from, m.to)
			e.Post("follow-up")
		case string:
			tr.add("msg:%s", m)
		}
	})

	e.Update(0.016, core.NewInputFrame())

	expected := []string{
		"early", "update:a", "update:b",
		"hit:a>b", "hit:b>a",
		"msg:a>b", "msg:follow-up",
		"late",
	}
	if !reflect.DeepEqual(tr.calls, expected) {
		t.Errorf("calls:\n got  %v\n want %v", tr.calls, expected)
	}
}

func TestUnsubscribe(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	got := 0
	id := e.Subscribe(func(any) { got++ })
	e.Post(1)
	e.Update(0.016, core.NewInputFrame())
	if !e.Unsubscribe(id) {
		t.Fatal("Unsubscribe() = false")
	}
	e.Post(2)
	e.Update(0.016, core.NewInputFrame())
	if got != 1 {
		t.Errorf("handler called %d times, expected 1", got)
	}
}

func TestHook(t *testing.T) {
	var h Hook[int]
	var got []string
	h.Add(func(v int) { got = append(got, fmt.Sprintf("a%d", v)) })
	mid := h.Add(func(v int) { got = append(got, fmt.Sprintf("b%d", v)) })
	h.Add(func(v int) { got = append(got, fmt.Sprintf("c%d", v)) })

	h.Invoke(1)
	if !h.Remove(mid) {
		t.Fatal("Remove() = false for a registered handler")
	}
	if h.Remove(mid) {
		t.Error("Remove() = true for an already removed handler")
	}
	h.Invoke(2)

	if !reflect.DeepEqual(got, []string{"a1", "b1", "c1", "a2", "c2"}) {
		t.Errorf("invocations = %v", got)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", h.Len())
	}
}

func TestHookRemoveDuringInvoke(t *testing.T) {
	var h Hook[struct{}]
	calls := 0
	var self HookID
	self = h.Add(func(struct{}) {
		calls++
		h.Remove(self)
	})
	h.Add(func(struct{}) { calls++ })

	h.Invoke(struct{}{})
	h.Invoke(struct{}{})

	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
}
