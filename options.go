package chart

// Layout holds the spacing and taper constants of the renderers.
// The defaults reproduce the reference dashboard; they are tuned by eye.
type Layout struct {
	// LinePad is the margin around a line chart, in logical pixels.
	LinePad float64 `yaml:"line_pad" json:"line_pad"`

	// FunnelPad is the margin around a funnel.
	FunnelPad float64 `yaml:"funnel_pad" json:"funnel_pad"`

	// HeatPad is the margin around the heat grid.
	HeatPad float64 `yaml:"heat_pad" json:"heat_pad"`

	// FunnelGap is the vertical gap between funnel stages.
	FunnelGap float64 `yaml:"funnel_gap" json:"funnel_gap"`

	// FunnelTaper is the bottom/top width ratio used for the last stage
	// and whenever the value ratio is unusable.
	FunnelTaper float64 `yaml:"funnel_taper" json:"funnel_taper"`

	// FunnelShrink multiplies the next/current value ratio.
	FunnelShrink float64 `yaml:"funnel_shrink" json:"funnel_shrink"`

	// RangePadding widens the observed value range on both ends, as a
	// fraction of the extreme values.
	RangePadding float64 `yaml:"range_padding" json:"range_padding"`

	// GridLines is the number of horizontal gridlines of a line chart.
	GridLines int `yaml:"grid_lines" json:"grid_lines"`

	// HeatGutter is the space left between heat cells.
	HeatGutter float64 `yaml:"heat_gutter" json:"heat_gutter"`

	// LabelSize is the label font size in points.
	LabelSize float64 `yaml:"label_size" json:"label_size"`
}

// DefaultLayout returns the reference layout.
func DefaultLayout() Layout {
	return Layout{
		LinePad:      22,
		FunnelPad:    10,
		HeatPad:      12,
		FunnelGap:    8,
		FunnelTaper:  0.6,
		FunnelShrink: 0.95,
		RangePadding: 0.05,
		GridLines:    4,
		HeatGutter:   2,
		LabelSize:    12,
	}
}

// Option configures rendering.
//
// Example:
//
//	d := chart.NewDispatcher(
//	    chart.WithIntensity(chart.HashIntensity(42)),
//	    chart.WithColors("#22c55e", "#60a5fa"),
//	)
type Option func(*options)

type options struct {
	layout    Layout
	intensity IntensityFunc
	revenue   Style
	signups   Style
	palette   []string
}

func defaultOptions() options {
	return options{
		layout:    DefaultLayout(),
		intensity: nil, // RandomIntensity
		revenue:   Style{Color: "#22c55e"},
		signups:   Style{Color: "#60a5fa"},
		palette:   defaultPalette,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLayout replaces the default layout.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithIntensity sets the heat-map intensity generator. A nil generator
// means RandomIntensity.
func WithIntensity(fn IntensityFunc) Option {
	return func(o *options) {
		o.intensity = fn
	}
}

// WithColors sets the revenue and signup line colors used by the
// dispatcher. Empty strings keep the defaults.
func WithColors(revenue, signups string) Option {
	return func(o *options) {
		if revenue != "" {
			o.revenue = Style{Color: revenue}
		}
		if signups != "" {
			o.signups = Style{Color: signups}
		}
	}
}

// WithPalette sets the funnel stage colors. An empty palette keeps the
// default.
func WithPalette(colors ...string) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.palette = colors
		}
	}
}
