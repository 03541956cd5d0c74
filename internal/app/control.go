package app

// Mode selects how the simulation advances.
type Mode int

const (
	// SingleStep advances only on an explicit step request.
	SingleStep Mode = iota
	// Continuous advances whenever the pacer is due.
	Continuous
)

func (m Mode) String() string {
	if m == Continuous {
		return "running"
	}
	return "single-step"
}

// maxStepsPerFrame bounds catch-up work in continuous mode.
const maxStepsPerFrame = 8

// Input is the set of key presses observed during one frame.
type Input struct {
	ToggleMode bool
	StepOnce   bool
	Reset      bool
	Reseed     bool
}

// Action is what the window loop should do this frame.
type Action struct {
	Reset  bool
	Reseed bool
	Steps  int
}

// Control turns per-frame input into simulation actions. It starts in
// single-step mode.
type Control struct {
	mode Mode
}

// NewControl returns a Control in single-step mode.
func NewControl() *Control { return &Control{mode: SingleStep} }

// Mode reports the current run mode.
func (c *Control) Mode() Mode { return c.mode }

// Tick applies one frame of input. The mode toggle takes effect before step
// requests are considered; StepOnce is ignored while running. due is polled
// while running until it reports false.
func (c *Control) Tick(in Input, due func() bool) Action {
	if in.ToggleMode {
		if c.mode == SingleStep {
			c.mode = Continuous
		} else {
			c.mode = SingleStep
		}
	}
	act := Action{Reset: in.Reset, Reseed: in.Reseed}
	switch c.mode {
	case SingleStep:
		if in.StepOnce {
			act.Steps = 1
		}
	case Continuous:
		for act.Steps < maxStepsPerFrame && due() {
			act.Steps++
		}
	}
	return act
}
