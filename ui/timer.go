package ui

// Timer counts update ticks. Each loop lasts Interval ticks; OnUpdate is
// called on every tick before the end of a loop and OnEnd when a loop ends.
// A new timer is stopped until Start is called.
type Timer struct {
	Interval int
	Loops    int
	OnUpdate func(interval, ticks int)
	OnEnd    func()

	ticks  int
	loop   int
	ended  bool
	paused bool
}

// NewTimer creates a stopped timer running loops loops of interval ticks.
func NewTimer(interval, loops int, onUpdate func(interval, ticks int), onEnd func()) *Timer {
	return &Timer{
		Interval: interval,
		Loops:    loops,
		OnUpdate: onUpdate,
		OnEnd:    onEnd,
		loop:     loops,
		ended:    true,
	}
}

// Works reports whether the timer is running.
func (t *Timer) Works() bool { return !t.ended && !t.paused }

func (t *Timer) Ended() bool  { return t.ended }
func (t *Timer) Paused() bool { return t.paused }
func (t *Timer) Ticks() int   { return t.ticks }

// Loop returns the number of loops left, the current one included.
func (t *Timer) Loop() int { return t.loop }

func (t *Timer) Start() {
	t.ticks = 0
	t.loop = t.Loops
	t.ended = false
	t.paused = false
}

func (t *Timer) Stop() {
	t.ticks = 0
	t.loop = t.Loops
	t.ended = true
	t.paused = false
}

func (t *Timer) Pause()  { t.paused = true }
func (t *Timer) Resume() { t.paused = false }

// Update advances the timer by one tick.
func (t *Timer) Update() {
	if !t.Works() {
		return
	}
	t.ticks++
	if t.ticks >= t.Interval {
		t.loop--
		t.ended = t.loop <= 0
		if !t.ended {
			t.ticks = 1
		}
		if t.OnEnd != nil {
			t.OnEnd()
		}
	} else if t.OnUpdate != nil {
		t.OnUpdate(t.Interval, t.ticks)
	}
}
