package evergreen

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"
)

// topperLift is how far the star sits above the apex.
const topperLift = 0.5

// Engine owns all animation state: frozen layouts, the interpolation driver,
// the lights flag, and the wish list. Every method must be called from the
// goroutine that calls Step; other goroutines go through Inbox.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	now   func() time.Time
	store EventStore
	sinks []Sink
	debug bool

	foliage   []Tuple
	ornaments []Tuple
	lights    []Tuple
	presents  []Tuple
	stockings []Tuple
	pool      *SlotPool

	wishes WishList
	slots  *SlotAssigner

	driver   *Driver
	lightsOn bool
	topper   *ScalarTween
	glow     *ScalarTween
	settled  bool

	elapsed float64
	frame   *Frame

	inbox   Inbox
	pending []command
	script  *ScriptRunner

	viewed           *Wish
	surprise         *Surprise
	truncationLogged bool
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithClock overrides the wall clock used to timestamp wishes.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithEventStore forwards engine events to store.
func WithEventStore(store EventStore) Option {
	return func(e *Engine) { e.store = store }
}

// WithSink registers a sink that receives every frame.
func WithSink(s Sink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, s) }
}

// New validates cfg, generates every layout from cfg.Seed, and returns a
// scattered Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("evergreen: invalid config: %w", err)
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	shape := cfg.Shape()

	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		now:       time.Now,
		debug:     cfg.Debug,
		foliage:   GenerateFoliage(cfg.Foliage, shape, rng),
		ornaments: GenerateOrnaments(cfg.Ornaments, shape, rng),
		lights:    GenerateLights(cfg.Lights, shape, rng),
		presents:  GeneratePresents(cfg.Presents, shape, rng),
		stockings: GenerateStockings(cfg.Stockings, shape, rng),
		pool:      NewSlotPool(GenerateWishSlots(cfg.WishCapacity, shape, rng)),
		driver:    NewDriver(cfg.Responsiveness, cfg.RotationSpeed, cfg.ScatteredSpinFactor),
		lightsOn:  cfg.LightsOn,
		topper:    NewScalarTween(0),
		frame:     newFrame(cfg),
		settled:   true,
	}
	e.slots = NewSlotAssigner(&e.wishes, e.pool)
	if cfg.LightsOn {
		e.glow = NewScalarTween(1)
	} else {
		e.glow = NewScalarTween(0)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Inbox returns the queue other goroutines use to reach the engine.
func (e *Engine) Inbox() *Inbox { return &e.inbox }

// AddSink registers a sink that receives every subsequent frame.
func (e *Engine) AddSink(s Sink) { e.sinks = append(e.sinks, s) }

// SetEventStore sets or clears the event store.
func (e *Engine) SetEventStore(store EventStore) { e.store = store }

// SetDebug toggles per-frame stats on stderr.
func (e *Engine) SetDebug(enabled bool) { e.debug = enabled }

// Layout returns the frozen tuples for category. For CategoryWishToken this is
// the shuffled slot pool in slot order. Callers must not modify the result.
func (e *Engine) Layout(c Category) []Tuple {
	switch c {
	case CategoryFoliage:
		return e.foliage
	case CategoryOrnament:
		return e.ornaments
	case CategoryLight:
		return e.lights
	case CategoryPresent:
		return e.presents
	case CategoryStocking:
		return e.stockings
	case CategoryWishToken:
		return e.pool.slots
	}
	return nil
}

// --- Inbound operations ---

// ToggleAssembly flips the target between scattered and assembled.
func (e *Engine) ToggleAssembly() {
	e.driver.Toggle()
	e.settled = false
	topperTween(e.topper, e.driver.Assembled())
	e.emit(Event{Type: EventAssemblyToggled, Assembled: e.driver.Assembled()})
}

// SetLightsEnabled switches the string lights. Disabled lights hold scale 1.
func (e *Engine) SetLightsEnabled(on bool) {
	if on == e.lightsOn {
		return
	}
	e.lightsOn = on
	glowTween(e.glow, on)
	e.emit(Event{Type: EventLightsChanged, LightsOn: on})
}

// SubmitWish records a completed wish as the newest entry. It never fails;
// wishes beyond capacity are kept in the history without a visible slot.
func (e *Engine) SubmitWish(userText, blessing string) Wish {
	w := NewWish(userText, blessing, e.now())
	e.wishes.Add(w)
	if e.wishes.Len() > e.pool.Capacity() && !e.truncationLogged {
		e.truncationLogged = true
		log.Printf("evergreen: %d wishes exceed %d slots; oldest wishes are no longer shown",
			e.wishes.Len(), e.pool.Capacity())
	}
	e.emit(Event{Type: EventWishSubmitted, Wish: w})
	return w
}

// SelectSlot resolves a clicked wish token to its wish and marks it viewed.
// Slots without a visible wish return false.
func (e *Engine) SelectSlot(slot SlotID) (Wish, bool) {
	w, ok := e.slots.WishAt(slot)
	if !ok {
		return Wish{}, false
	}
	e.viewed = &w
	e.emit(Event{Type: EventWishSelected, Slot: slot, Wish: w})
	return w, true
}

// ViewedWish returns the wish last opened by SelectSlot.
func (e *Engine) ViewedWish() (Wish, bool) {
	if e.viewed == nil {
		return Wish{}, false
	}
	return *e.viewed, true
}

// CloseWish clears the viewed wish.
func (e *Engine) CloseWish() { e.viewed = nil }

// OpenSurprise draws a surprise for a clicked present or stocking.
func (e *Engine) OpenSurprise(kind SurpriseKind) Surprise {
	s := drawSurprise(kind, e.rng)
	e.surprise = &s
	e.emit(Event{Type: EventSurpriseOpened, Surprise: s})
	return s
}

// CurrentSurprise returns the open surprise, if any.
func (e *Engine) CurrentSurprise() (Surprise, bool) {
	if e.surprise == nil {
		return Surprise{}, false
	}
	return *e.surprise, true
}

// CloseSurprise dismisses the open surprise.
func (e *Engine) CloseSurprise() { e.surprise = nil }

// --- State queries ---

// Progress returns the current assembly progress.
func (e *Engine) Progress() float64 { return e.driver.Progress() }

// Rotation returns the whole-assembly yaw.
func (e *Engine) Rotation() float64 { return e.driver.Rotation() }

// Assembled reports whether the target is the assembled tree.
func (e *Engine) Assembled() bool { return e.driver.Assembled() }

// LightsEnabled reports the lights flag.
func (e *Engine) LightsEnabled() bool { return e.lightsOn }

// Wishes returns the full newest-first wish history, including wishes beyond
// slot capacity.
func (e *Engine) Wishes() []Wish { return e.wishes.All() }

// VisibleWishes returns the number of wish tokens drawn each frame.
func (e *Engine) VisibleWishes() int { return e.slots.Visible() }

// SlotCapacity returns the wish slot pool size.
func (e *Engine) SlotCapacity() int { return e.pool.Capacity() }

// Elapsed returns the elapsed time of the last Step.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Frame returns the most recent frame. It is overwritten by the next Step.
func (e *Engine) Frame() *Frame { return e.frame }

// --- Frame loop ---

// Update advances the engine by dt seconds of its own elapsed clock.
func (e *Engine) Update(dt float64) *Frame {
	return e.Step(e.elapsed+dt, dt)
}

// Step evaluates one frame at the host-supplied elapsed time. Queued inbox
// operations apply first, then the driver ticks, then every category is
// evaluated against the same progress snapshot and handed to each sink.
func (e *Engine) Step(elapsed, dt float64) *Frame {
	start := time.Now()
	e.elapsed = elapsed

	e.applyPending()
	if e.script != nil {
		e.script.step(e)
	}

	e.driver.Tick(dt)
	e.topper.Update(float32(dt))
	e.glow.Update(float32(dt))
	if !e.settled && e.driver.AtRest(e.cfg.RestEpsilon) {
		e.settled = true
		e.emit(Event{Type: EventAssemblySettled, Assembled: e.driver.Assembled()})
	}

	e.evaluate(dt)
	evalTime := time.Since(start)

	submitStart := time.Now()
	for _, s := range e.sinks {
		s.Submit(e.frame)
	}
	e.debugLog(frameStats{
		evalTime:   evalTime,
		submitTime: time.Since(submitStart),
		instances:  e.frameInstances(),
		wishes:     len(e.frame.Wishes),
		progress:   e.frame.Progress,
	})
	return e.frame
}

func (e *Engine) applyPending() {
	e.pending = e.inbox.drain(e.pending)
	for _, c := range e.pending {
		switch c.kind {
		case commandToggle:
			e.ToggleAssembly()
		case commandLights:
			e.SetLightsEnabled(c.on)
		case commandWish:
			e.SubmitWish(c.userText, c.blessing)
		}
	}
}

// evaluate fills the frame from the current driver snapshot.
func (e *Engine) evaluate(dt float64) {
	f := e.frame
	p := e.driver.Progress()
	t := e.elapsed
	assembled := e.driver.Assembled()

	f.Elapsed = t
	f.Delta = dt
	f.Progress = p
	f.Rotation = e.driver.Rotation()
	f.Assembled = assembled
	f.LightsOn = e.lightsOn
	f.LightGlow = e.glow.Value()
	f.Topper = Transform{
		Position:    Vec3{0, e.cfg.TreeHeight/2 + topperLift, 0},
		Orientation: QuatIdentity,
		Scale:       Uniform(e.topper.Value()),
	}

	for i := range e.foliage {
		f.Foliage[i] = EvalFoliage(&e.foliage[i], FoliageID(i), p, t)
	}
	for i := range e.ornaments {
		f.Ornaments[i] = EvalOrnament(&e.ornaments[i], OrnamentID(i), p)
	}
	for i := range e.lights {
		f.Lights[i] = EvalLight(&e.lights[i], LightID(i), p, t, e.lightsOn)
	}
	for i := range e.presents {
		f.Presents[i], f.Bows[i] = EvalPresent(&e.presents[i], PresentID(i), p, t)
	}
	for i := range e.stockings {
		f.Stockings[i] = EvalStocking(&e.stockings[i], StockingID(i), p, t, assembled)
	}

	visible := e.slots.Visible()
	f.Wishes = f.Wishes[:visible]
	for i := 0; i < visible; i++ {
		slot := SlotID(i)
		f.Wishes[i] = EvalWish(e.pool.Tuple(slot), slot, p, t)
	}
}

func (e *Engine) frameInstances() int {
	f := e.frame
	return len(f.Foliage) + len(f.Ornaments) + len(f.Lights) +
		2*len(f.Presents) + len(f.Stockings) + len(f.Wishes)
}

func (e *Engine) emit(ev Event) {
	if e.store == nil {
		return
	}
	ev.Elapsed = e.elapsed
	e.store.EmitEvent(ev)
}
