package chart

import "energy-viewer/config"

// AxisMode selects how the x axis kind is chosen.
type AxisMode int

const (
	// AxisAuto derives the kind from the payload.
	AxisAuto AxisMode = iota
	AxisForceCategorical
	AxisForceTime
)

// Rounding controls how tooltip values are printed.
type Rounding int

const (
	// RoundingNone prints the value exactly as received.
	RoundingNone Rounding = iota
	// RoundingHalfUp rounds to Precision digits.
	RoundingHalfUp
	// RoundingTruncate cuts the value after Precision digits.
	RoundingTruncate
)

// Options configure how a payload becomes a chart.
type Options struct {
	Title     string
	YAxisName string
	Unit      string
	AxisMode  AxisMode
	Rounding  Rounding
	Precision int32
	Width     string
	Height    string
}

// KilowattHourOptions renders categorical labels and raw values in kwH.
func KilowattHourOptions() Options {
	return Options{
		Title:     config.CHART_TITLE,
		YAxisName: "Energy Consumption in kwH",
		Unit:      "kwH",
		AxisMode:  AxisAuto,
		Rounding:  RoundingNone,
		Width:     config.CHART_WIDTH,
		Height:    config.CHART_HEIGHT,
	}
}

// WattHourOptions renders a daily time axis and fixed precision values in wH.
func WattHourOptions() Options {
	return Options{
		Title:     config.CHART_TITLE,
		YAxisName: "Energy Consumption in wH",
		Unit:      "wH",
		AxisMode:  AxisForceTime,
		Rounding:  RoundingTruncate,
		Precision: config.TOOLTIP_PRECISION,
		Width:     config.CHART_WIDTH,
		Height:    config.CHART_HEIGHT,
	}
}

// OptionsForPreset maps a --unit-preset value to Options.
func OptionsForPreset(preset string) Options {
	if preset == config.UNIT_PRESET_WH {
		return WattHourOptions()
	}
	return KilowattHourOptions()
}
