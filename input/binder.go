package input

// Binder resolves logical actions and axes from a TriggerRecord.
type Binder struct {
	bindings Bindings
	record   *TriggerRecord
}

func NewBinder(b Bindings) *Binder {
	return &Binder{bindings: b.WithDefaults(), record: NewTriggerRecord()}
}

// Record exposes the trigger record the device adapters write into.
func (b *Binder) Record() *TriggerRecord { return b.record }

func (b *Binder) Bindings() Bindings { return b.bindings }

// SetBindings swaps the bindings, keeping the current trigger state.
func (b *Binder) SetBindings(bindings Bindings) {
	b.bindings = bindings.WithDefaults()
}

// ActionValue returns the greater state of the primary and secondary
// triggers bound to a.
func (b *Binder) ActionValue(a Action) ActionState {
	binding, ok := b.bindings.Actions[a]
	if !ok {
		return Released
	}
	state := b.record.State(binding.Primary)
	if binding.Secondary != nil {
		state = max(state, b.record.State(*binding.Secondary))
	}
	return state
}

// AxisValue returns the primary trigger's value, falling back to the
// secondary one, and 0 when neither has a value.
func (b *Binder) AxisValue(a Axis) float64 {
	binding, ok := b.bindings.Axes[a]
	if !ok {
		return 0
	}
	if v, ok := b.analogValue(binding.Primary); ok {
		return v
	}
	if binding.Secondary != nil {
		if v, ok := b.analogValue(*binding.Secondary); ok {
			return v
		}
	}
	return 0
}

func (b *Binder) analogValue(t AnalogTrigger) (float64, bool) {
	switch t.Kind {
	case KindDigitalJoystick:
		neg := b.record.State(t.Negative).IsPressed()
		pos := b.record.State(t.Positive).IsPressed()
		switch {
		case neg && !pos:
			return -1, true
		case pos && !neg:
			return 1, true
		}
		return 0, false
	case KindGamepadAxis:
		v := b.record.AxisValue(t.Axis)
		return v, v != 0
	}
	return 0, false
}

// Resolve snapshots every action and axis for this tick.
func (b *Binder) Resolve() State {
	var s State
	for a := Action(0); a < ActionCount; a++ {
		s = s.WithAction(a, b.ActionValue(a))
	}
	for a := Axis(0); a < AxisCount; a++ {
		s = s.WithAxis(a, b.AxisValue(a))
	}
	return s
}

// FinishFrame rotates the trigger record.
func (b *Binder) FinishFrame() { b.record.FinishFrame() }
