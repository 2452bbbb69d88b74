package evergreen

import (
	"slices"
	"sync"
	"testing"
	"time"
)

type recordStore struct {
	events []Event
}

func (r *recordStore) EmitEvent(e Event) { r.events = append(r.events, e) }

func (r *recordStore) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Foliage = 60
	cfg.Ornaments = 8
	cfg.Lights = 12
	cfg.Presents = 4
	cfg.Stockings = 3
	cfg.WishCapacity = 5
	return cfg
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(testConfig(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func runFrames(e *Engine, n int) {
	for i := 0; i < n; i++ {
		e.Update(frameDT)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.WishCapacity = 0
	if _, err := New(cfg); err == nil {
		t.Error("expected error for zero wish capacity")
	}
}

func TestNewLayouts(t *testing.T) {
	e := newTestEngine(t)
	cfg := e.Config()
	for _, c := range Categories() {
		if got, want := len(e.Layout(c)), cfg.Population(c); got != want {
			t.Errorf("%v layout = %d, want %d", c, got, want)
		}
	}
	if e.SlotCapacity() != 5 {
		t.Errorf("SlotCapacity = %d, want 5", e.SlotCapacity())
	}
	if e.Assembled() || e.Progress() != 0 {
		t.Error("engine should start scattered")
	}
}

func TestNewDeterministic(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)
	for _, c := range Categories() {
		if !slices.Equal(a.Layout(c), b.Layout(c)) {
			t.Errorf("%v layouts differ for the same seed", c)
		}
	}
}

func TestEngineAssembles(t *testing.T) {
	store := &recordStore{}
	e := newTestEngine(t, WithEventStore(store))
	e.ToggleAssembly()
	runFrames(e, 200)

	if p := e.Progress(); 1-p > 1e-3 {
		t.Errorf("progress after 200 frames = %v", p)
	}
	if store.count(EventAssemblyToggled) != 1 {
		t.Errorf("toggled events = %d, want 1", store.count(EventAssemblyToggled))
	}
	if store.count(EventAssemblySettled) != 1 {
		t.Errorf("settled events = %d, want 1", store.count(EventAssemblySettled))
	}
	f := e.Frame()
	assertNear(t, "topper scale", f.Topper.Scale.X, 1)
	assertNear(t, "topper Y", f.Topper.Position.Y, e.Config().TreeHeight/2+topperLift)
}

func TestEngineFrameUsesOneProgress(t *testing.T) {
	e := newTestEngine(t)
	e.ToggleAssembly()
	runFrames(e, 20)
	f := e.Frame()
	if f.Progress != e.Progress() {
		t.Fatalf("frame progress %v != driver progress %v", f.Progress, e.Progress())
	}
	for i := range f.Foliage {
		want := EvalFoliage(&e.Layout(CategoryFoliage)[i], FoliageID(i), f.Progress, f.Elapsed)
		if f.Foliage[i] != want {
			t.Fatalf("foliage[%d] evaluated with a different snapshot", i)
		}
	}
	for i := range f.Stockings {
		want := EvalStocking(&e.Layout(CategoryStocking)[i], StockingID(i), f.Progress, f.Elapsed, true)
		if f.Stockings[i] != want {
			t.Fatalf("stocking[%d] evaluated with a different snapshot", i)
		}
	}
}

func TestEngineStepUsesHostClock(t *testing.T) {
	e := newTestEngine(t)
	f := e.Step(5, frameDT)
	if e.Elapsed() != 5 || f.Elapsed != 5 || f.Delta != frameDT {
		t.Errorf("elapsed = %v / %v, delta = %v", e.Elapsed(), f.Elapsed, f.Delta)
	}
}

func TestEngineLights(t *testing.T) {
	store := &recordStore{}
	e := newTestEngine(t, WithEventStore(store))
	if !e.LightsEnabled() {
		t.Fatal("lights should start on")
	}
	e.SetLightsEnabled(false)
	e.SetLightsEnabled(false)
	if n := store.count(EventLightsChanged); n != 1 {
		t.Errorf("lights events = %d, want 1", n)
	}
	runFrames(e, 60)
	f := e.Frame()
	if f.LightsOn {
		t.Error("frame LightsOn = true")
	}
	assertNear(t, "glow", f.LightGlow, 0)
	lights := e.Layout(CategoryLight)
	for i, l := range f.Lights {
		if l.Scale.X != lights[i].Scale {
			t.Fatalf("light[%d] scale = %v with lights off", i, l.Scale.X)
		}
	}
}

func TestEngineWishes(t *testing.T) {
	store := &recordStore{}
	clock := time.Date(2025, 12, 24, 20, 0, 0, 0, time.UTC)
	e := newTestEngine(t, WithEventStore(store), WithClock(func() time.Time { return clock }))

	for _, text := range []string{"a", "b", "c"} {
		e.SubmitWish(text, "bless "+text)
	}
	f := e.Update(frameDT)
	if len(f.Wishes) != 3 || f.LiveCount(CategoryWishToken) != 3 {
		t.Fatalf("visible wishes = %d, want 3", len(f.Wishes))
	}
	pool := e.Layout(CategoryWishToken)
	want := EvalWish(&pool[0], 0, f.Progress, f.Elapsed)
	if f.Wishes[0] != want {
		t.Error("wish 0 not evaluated from slot 0")
	}
	if store.count(EventWishSubmitted) != 3 {
		t.Errorf("wish events = %d", store.count(EventWishSubmitted))
	}
	ws := e.Wishes()
	if ws[0].UserText != "c" || !ws[0].CreatedAt.Equal(clock) {
		t.Errorf("newest wish = %+v", ws[0])
	}
}

func TestEngineWishTruncation(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 7; i++ {
		e.SubmitWish("w", "b")
	}
	f := e.Update(frameDT)
	if len(f.Wishes) != 5 || e.VisibleWishes() != 5 {
		t.Errorf("visible = %d/%d, want 5", len(f.Wishes), e.VisibleWishes())
	}
	if len(e.Wishes()) != 7 {
		t.Errorf("history = %d, want 7", len(e.Wishes()))
	}
}

func TestEngineSelectSlot(t *testing.T) {
	store := &recordStore{}
	e := newTestEngine(t, WithEventStore(store))
	e.SubmitWish("old", "x")
	e.SubmitWish("new", "y")

	if _, ok := e.SelectSlot(2); ok {
		t.Error("empty slot should not resolve")
	}
	if _, ok := e.ViewedWish(); ok {
		t.Error("failed select should not open a wish")
	}
	w, ok := e.SelectSlot(0)
	if !ok || w.UserText != "new" {
		t.Fatalf("SelectSlot(0) = %+v, %v", w, ok)
	}
	if v, ok := e.ViewedWish(); !ok || v.ID != w.ID {
		t.Error("ViewedWish should return the selected wish")
	}
	if store.count(EventWishSelected) != 1 {
		t.Errorf("select events = %d", store.count(EventWishSelected))
	}
	e.CloseWish()
	if _, ok := e.ViewedWish(); ok {
		t.Error("CloseWish should clear the viewed wish")
	}
}

func TestEngineSurprise(t *testing.T) {
	e := newTestEngine(t)
	s := e.OpenSurprise(SurpriseSock)
	if s.Kind != SurpriseSock || !slices.Contains(cozySockGifts, s.Description) {
		t.Errorf("sock surprise = %+v", s)
	}
	g := e.OpenSurprise(SurpriseGift)
	if !slices.Contains(luxuryGifts, g.Description) {
		t.Errorf("gift surprise = %+v", g)
	}
	if cur, ok := e.CurrentSurprise(); !ok || cur != g {
		t.Errorf("CurrentSurprise = %+v, %v", cur, ok)
	}
	e.CloseSurprise()
	if _, ok := e.CurrentSurprise(); ok {
		t.Error("CloseSurprise should clear the surprise")
	}
}

func TestEngineInboxAppliesBeforeTick(t *testing.T) {
	e := newTestEngine(t)
	e.Inbox().ToggleAssembly()
	if e.Assembled() {
		t.Fatal("inbox command applied before Step")
	}
	f := e.Update(frameDT)
	if !e.Assembled() || f.Progress <= 0 {
		t.Errorf("assembled=%v progress=%v, want toggle applied before the tick", e.Assembled(), f.Progress)
	}
	if e.Inbox().Len() != 0 {
		t.Errorf("inbox len = %d after Step", e.Inbox().Len())
	}
}

func TestEngineInboxConcurrent(t *testing.T) {
	e := newTestEngine(t)
	in := e.Inbox()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in.SubmitWish("w", "b")
		}()
	}
	wg.Wait()
	e.Update(frameDT)
	if n := len(e.Wishes()); n != 20 {
		t.Errorf("wishes = %d, want 20", n)
	}
}

func TestEngineInboxOrder(t *testing.T) {
	e := newTestEngine(t)
	in := e.Inbox()
	in.SetLightsEnabled(false)
	in.SetLightsEnabled(true)
	in.SubmitWish("first", "")
	in.SubmitWish("second", "")
	e.Update(frameDT)
	if !e.LightsEnabled() {
		t.Error("last lights command should win")
	}
	if ws := e.Wishes(); ws[0].UserText != "second" {
		t.Errorf("newest = %q, want second", ws[0].UserText)
	}
}

func TestEngineSinks(t *testing.T) {
	var order []string
	e := newTestEngine(t, WithSink(SinkFunc(func(*Frame) { order = append(order, "a") })))
	e.AddSink(SinkFunc(func(*Frame) { order = append(order, "b") }))
	runFrames(e, 2)
	if !slices.Equal(order, []string{"a", "b", "a", "b"}) {
		t.Errorf("sink order = %v", order)
	}
}

func TestEngineDebugDoesNotPanic(t *testing.T) {
	e := newTestEngine(t)
	e.SetDebug(true)
	runFrames(e, 2)
}

func TestEngineEmptyCategories(t *testing.T) {
	cfg := testConfig()
	cfg.Foliage, cfg.Presents = 0, 0
	e, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	f := e.Update(frameDT)
	if len(f.Foliage) != 0 || len(f.Presents) != 0 || len(f.Bows) != 0 {
		t.Error("empty categories should evaluate to nothing")
	}
}
