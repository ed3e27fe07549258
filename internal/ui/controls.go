package ui

import (
	"image"
	"math"
	"strconv"

	"dorian-ca/internal/core"
)

const (
	defaultFloatStep = 0.05
	missingValue     = "--"
)

// controlState tracks one adjustable parameter between frames.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlSet binds the sim's adjustable parameters to its setters.
type controlSet struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlSet(sim core.Sim) *controlSet {
	cs := &controlSet{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		cs.states = make([]controlState, len(controls))
		for i, ctrl := range controls {
			cs.states[i] = controlState{control: ctrl, value: missingValue}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		cs.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		cs.floatSetter = setter
	}
	return cs
}

// refresh pulls current values out of a parameter snapshot.
func (cs *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range cs.states {
		st := &cs.states[i]
		st.hasValue = false
		st.value = missingValue
		param, ok := snapshot.Find(st.control.Key)
		if !ok {
			continue
		}
		switch st.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			st.intValue = parsed
			st.floatValue = float64(parsed)
			st.value = strconv.Itoa(parsed)
			st.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			st.floatValue = parsed
			st.value = formatFloat(st.control, parsed)
			st.hasValue = true
		}
	}
}

func (cs *controlSet) settable(st *controlState) bool {
	switch st.control.Type {
	case core.ParamTypeInt:
		return cs.intSetter != nil
	case core.ParamTypeFloat:
		return cs.floatSetter != nil
	}
	return false
}

// target computes the value one step away in direction, clamped to the
// control bounds. ok is false when the value would not change.
func (cs *controlSet) target(st *controlState, direction int) (float64, bool) {
	if direction == 0 || !st.hasValue || !cs.settable(st) {
		return 0, false
	}
	step := st.control.Step
	switch st.control.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
		cur := float64(st.intValue)
		next := math.Round(st.control.Clamp(cur + float64(direction)*step))
		return next, next != cur
	default:
		if step <= 0 {
			step = defaultFloatStep
		}
		next := st.control.Clamp(st.floatValue + float64(direction)*step)
		return next, math.Abs(next-st.floatValue) >= 1e-9
	}
}

// adjust moves control i one step and pushes the result to the sim.
func (cs *controlSet) adjust(i, direction int) bool {
	if i < 0 || i >= len(cs.states) {
		return false
	}
	st := &cs.states[i]
	next, ok := cs.target(st, direction)
	if !ok {
		return false
	}
	switch st.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if !cs.intSetter.SetIntParameter(st.control.Key, v) {
			return false
		}
		st.intValue = v
		st.floatValue = next
		st.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !cs.floatSetter.SetFloatParameter(st.control.Key, next) {
			return false
		}
		st.floatValue = next
		st.value = formatFloat(st.control, next)
	}
	return true
}

// hit returns the control index and direction under the panel-relative
// point, or ok=false.
func (cs *controlSet) hit(x, y int) (index, direction int, ok bool) {
	pt := image.Pt(x, y)
	for i := range cs.states {
		st := &cs.states[i]
		if !st.hasValue {
			continue
		}
		if pt.In(st.minusRect) {
			return i, -1, true
		}
		if pt.In(st.plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// layout places the +/- buttons for each row against the right edge of a
// panel of the given width.
func (cs *controlSet) layout(width, top int) {
	for i := range cs.states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		cs.states[i].top = rowTop
		cs.states[i].minusRect = minus
		cs.states[i].plusRect = plus
	}
}

// height is the vertical space taken by the control rows.
func (cs *controlSet) height() int { return len(cs.states) * lineHeight }

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusLine     = 16
	sectionGap     = 14
	controlsTop    = panelPadding + headerBaseline + sectionGap
)
