package chart

import (
	"errors"
	"fmt"

	"github.com/gogpu/chart/surface"
)

// Board maps dashboard slots to the surfaces currently mounted in them.
// A missing or nil entry is an unmounted surface.
type Board map[Slot]surface.Target

// Dispatcher fans a dataset out to the renderers of a board. It holds only
// configuration, so one Dispatcher may serve any number of refreshes.
type Dispatcher struct {
	opts options
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	return &Dispatcher{opts: newOptions(opts)}
}

// RenderAll redraws every mounted slot of b from ds: revenue and signups as
// line charts, the funnel stages, and the heat map. Unmounted slots are
// skipped. Heat intensities come from ds.Heat when present, otherwise from
// the configured generator.
//
// Degenerate data never fails a render. Surface failures are wrapped with
// the slot name and joined; the remaining slots are still drawn.
func (d *Dispatcher) RenderAll(b Board, ds Dataset) error {
	var errs []error
	for _, slot := range Slots() {
		dst := b[slot]
		if !mounted(dst) {
			Logger().Debug("chart: surface not mounted, skipping", "slot", slot)
			continue
		}
		if err := d.render(slot, dst, ds); err != nil {
			errs = append(errs, &SlotError{Slot: slot, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (d *Dispatcher) render(slot Slot, dst surface.Target, ds Dataset) error {
	o := d.opts

	switch slot {
	case SlotRevenue:
		return renderLine(dst, ds.Revenue, o.revenue, o)
	case SlotSignups:
		return renderLine(dst, ds.Signups, o.signups, o)
	case SlotFunnel:
		return renderFunnel(dst, ds.Funnel, o)
	case SlotHeat:
		fn := o.intensity
		if len(ds.Heat) > 0 {
			fn = MatrixIntensity(ds.Heat)
		}
		return renderHeat(dst, fn, o)
	default:
		return fmt.Errorf("chart: unknown slot %d", uint8(slot))
	}
}

// SlotError is a render failure of one slot.
type SlotError struct {
	Slot Slot
	Err  error
}

func (e *SlotError) Error() string { return e.Slot.String() + ": " + e.Err.Error() }

func (e *SlotError) Unwrap() error { return e.Err }

// mounted reports whether dst is a usable target. A typed nil surface
// counts as unmounted.
func mounted(dst surface.Target) bool {
	if dst == nil {
		return false
	}
	s, ok := dst.(*surface.Surface)
	return !ok || s != nil
}

// RenderAll redraws b from ds with the default dispatcher settings.
func RenderAll(b Board, ds Dataset) error {
	return NewDispatcher().RenderAll(b, ds)
}
