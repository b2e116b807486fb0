// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demo generates the sample dashboard dataset used by the
// chartdemo command and by tests.
//
// Output is a pure function of the seed and the reference time, so a demo
// run can be reproduced exactly.
package demo

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gogpu/chart"
)

// Months is the length of the generated revenue and signup series.
const Months = 12

// Funnel returns the fixed conversion funnel of the demo dashboard.
func Funnel() chart.Series {
	return chart.Series{
		{Label: "Visits", Value: 42000},
		{Label: "Signups", Value: 6200},
		{Label: "Trials", Value: 2400},
		{Label: "Paid", Value: 960},
	}
}

// Labels returns the short month names of the Months months ending with
// the month of now, oldest first.
func Labels(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	labels := make([]string, Months)
	for i := range labels {
		labels[i] = first.AddDate(0, i-(Months-1), 0).Format("Jan")
	}
	return labels
}

// Generate builds a dataset: a growing revenue and signup series with
// noise, the fixed funnel, and a HeatRows x HeatCols activity matrix.
func Generate(seed uint64, now time.Time) chart.Dataset {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	rnd := func(lo, hi float64) float64 { return lo + r.Float64()*(hi-lo) }

	labels := Labels(now)
	revenue := make(chart.Series, Months)
	signups := make(chart.Series, Months)
	for i, m := range labels {
		f := float64(i)
		revenue[i] = chart.Point{Label: m, Value: math.Round(8000 + f*900 + rnd(-1500, 2500))}
		signups[i] = chart.Point{Label: m, Value: math.Round(200 + f*30 + rnd(-80, 120))}
	}

	heat := make([][]float64, chart.HeatRows)
	for row := range heat {
		heat[row] = make([]float64, chart.HeatCols)
		for col := range heat[row] {
			heat[row][col] = math.Round(r.Float64()*1000) / 1000
		}
	}

	return chart.Dataset{
		Revenue: revenue,
		Signups: signups,
		Funnel:  Funnel(),
		Heat:    heat,
	}
}
