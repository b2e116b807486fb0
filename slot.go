package chart

import (
	"fmt"
	"strings"
)

// Kind is a chart type.
type Kind uint8

const (
	// KindLine is a gradient-filled line chart.
	KindLine Kind = iota

	// KindFunnel is a trapezoid conversion funnel.
	KindFunnel

	// KindHeat is a 24x6 density grid.
	KindHeat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindFunnel:
		return "funnel"
	case KindHeat:
		return "heat"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Slot is a place on the dashboard a surface can be mounted in.
type Slot uint8

const (
	// SlotRevenue shows the revenue series as a line chart.
	SlotRevenue Slot = iota

	// SlotSignups shows the signup series as a line chart.
	SlotSignups

	// SlotFunnel shows the conversion funnel.
	SlotFunnel

	// SlotHeat shows the activity heat map.
	SlotHeat

	slotCount
)

var slotNames = [slotCount]string{
	SlotRevenue: "revenue",
	SlotSignups: "signups",
	SlotFunnel:  "funnel",
	SlotHeat:    "heat",
}

// Slots returns every slot in render order.
func Slots() []Slot {
	return []Slot{SlotRevenue, SlotSignups, SlotFunnel, SlotHeat}
}

// String returns the slot name.
func (s Slot) String() string {
	if s < slotCount {
		return slotNames[s]
	}
	return fmt.Sprintf("Slot(%d)", s)
}

// Kind returns the chart type drawn in s.
func (s Slot) Kind() Kind {
	switch s {
	case SlotFunnel:
		return KindFunnel
	case SlotHeat:
		return KindHeat
	default:
		return KindLine
	}
}

// ParseSlot returns the slot with the given name, case-insensitively.
func ParseSlot(name string) (Slot, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == name {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("chart: unknown slot %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Slot) MarshalText() ([]byte, error) {
	if s >= slotCount {
		return nil, fmt.Errorf("chart: invalid slot %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so slots can key
// configuration maps.
func (s *Slot) UnmarshalText(text []byte) error {
	v, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
