package usecase

import (
	"context"
	"time"
)

// DailyCalorieTarget is fixed; it is not user-configurable.
const DailyCalorieTarget = 2000.0

// MacroSplit holds one value per macro, either degrees or percentage points.
type MacroSplit struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// MacroTotals are today's summed figures.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// DashboardView is everything the home screen renders.
type DashboardView struct {
	Date          string      `json:"date"`
	Records       []RecordRow `json:"records"`
	Totals        MacroTotals `json:"totals"`
	TargetKcal    float64     `json:"target_kcal"`
	CalorieRatio  float64     `json:"calorie_ratio"`
	OverTarget    bool        `json:"over_target"`
	RingColor     string      `json:"ring_color"`
	MacroAngles   MacroSplit  `json:"macro_angles"`
	MacroPercents MacroSplit  `json:"macro_percents"`
	PieSlices     PieSlices   `json:"pie_slices"`
}

// PieSlices are SVG path strings for the macro pie.
type PieSlices struct {
	Carbs   string `json:"carbs"`
	Protein string `json:"protein"`
	Fat     string `json:"fat"`
}

// DashboardUsecase computes the home screen from the store.
type DashboardUsecase interface {
	Today(ctx context.Context, now time.Time) (*DashboardView, error)
}
