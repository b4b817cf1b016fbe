package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"dietlog/internal/domain/entity"
	"dietlog/internal/usecase"

	"go.uber.org/fx"
)

const (
	ringColorOver   = "#ef5350"
	ringColorNormal = "#4caf50"

	pieRadius  = 50
	pieCenterX = 60
	pieCenterY = 60
)

// DashboardParams holds dependencies for the dashboard service, injected by Fx.
type DashboardParams struct {
	fx.In

	Store  usecase.StoreUsecase
	Logger *slog.Logger
}

type dashboardService struct {
	store  usecase.StoreUsecase
	logger *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardParams) usecase.DashboardUsecase {
	return &dashboardService{store: params.Store, logger: params.Logger}
}

func (srv *dashboardService) Today(ctx context.Context, now time.Time) (*usecase.DashboardView, error) {
	if err := srv.store.FetchAllIfNeeded(ctx); err != nil {
		return nil, err
	}

	today := entity.NewRecordTime(now).Date()
	view := &usecase.DashboardView{
		Date:       today,
		Records:    []usecase.RecordRow{},
		TargetKcal: usecase.DailyCalorieTarget,
	}

	var totals entity.Macros
	for _, record := range srv.store.Snapshot().Records {
		if record.RecordTime.Date() != today {
			continue
		}
		totals = totals.Add(record.Sums())
		view.Records = append(view.Records, usecase.RecordRow{
			Record: record,
			Label:  srv.store.RecordLabel(record),
			Time:   record.RecordTime.Clock(),
		})
	}

	view.Totals = usecase.MacroTotals{
		Calories: totals.Calories,
		Carbs:    totals.Carbs,
		Protein:  totals.Protein,
		Fat:      totals.Fat,
	}
	view.CalorieRatio = CalorieRatio(totals.Calories, usecase.DailyCalorieTarget)
	view.OverTarget = totals.Calories > usecase.DailyCalorieTarget
	view.RingColor = ringColorNormal
	if view.OverTarget {
		view.RingColor = ringColorOver
	}
	view.MacroAngles = MacroAngles(totals)
	view.MacroPercents = MacroPercents(totals)
	view.PieSlices = pieSlices(view.MacroAngles)

	return view, nil
}

// CalorieRatio is calories/target capped at 1, or 0 for a zero target.
func CalorieRatio(calories, target float64) float64 {
	if target == 0 {
		return 0
	}

	return math.Min(calories/target, 1)
}

// MacroAngles splits 360 degrees by gram share; fat takes the residual so the
// three always sum to exactly 360.
func MacroAngles(totals entity.Macros) usecase.MacroSplit {
	total := totals.MacroGrams()
	if total <= 0 {
		return usecase.MacroSplit{}
	}

	carbs := totals.Carbs / total * 360
	protein := totals.Protein / total * 360

	return usecase.MacroSplit{Carbs: carbs, Protein: protein, Fat: 360 - (carbs + protein)}
}

// MacroPercents rounds carbs and protein; fat takes the residual to 100.
func MacroPercents(totals entity.Macros) usecase.MacroSplit {
	total := totals.MacroGrams()
	if total <= 0 {
		return usecase.MacroSplit{}
	}

	carbs := math.Round(totals.Carbs / total * 100)
	protein := math.Round(totals.Protein / total * 100)

	return usecase.MacroSplit{Carbs: carbs, Protein: protein, Fat: 100 - (carbs + protein)}
}

// PieSlicePath draws one wedge of a pie centred at (60,60); angles are degrees
// clockwise from 12 o'clock. A span of 360 or more is drawn as a full disc.
func PieSlicePath(startAngle, endAngle, radius float64) string {
	if endAngle-startAngle >= 360 {
		return fullCirclePath(radius)
	}

	toRadians := func(deg float64) float64 { return math.Pi * (deg - 90) / 180 }

	x1 := pieCenterX + radius*math.Cos(toRadians(startAngle))
	y1 := pieCenterY + radius*math.Sin(toRadians(startAngle))
	x2 := pieCenterX + radius*math.Cos(toRadians(endAngle))
	y2 := pieCenterY + radius*math.Sin(toRadians(endAngle))

	largeArc := 0
	if endAngle-startAngle > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M%d,%d L%g,%g A%g,%g 0 %d 1 %g,%g Z",
		pieCenterX, pieCenterY, x1, y1, radius, radius, largeArc, x2, y2)
}

// fullCirclePath is two half arcs; a single arc whose ends coincide renders nothing.
func fullCirclePath(radius float64) string {
	top := pieCenterY - radius
	bottom := pieCenterY + radius

	return fmt.Sprintf("M%d,%g A%g,%g 0 1 1 %d,%g A%g,%g 0 1 1 %d,%g Z",
		pieCenterX, top, radius, radius, pieCenterX, bottom, radius, radius, pieCenterX, top)
}

func pieSlices(angles usecase.MacroSplit) usecase.PieSlices {
	if angles == (usecase.MacroSplit{}) {
		return usecase.PieSlices{}
	}

	carbsEnd := angles.Carbs
	proteinEnd := carbsEnd + angles.Protein

	return usecase.PieSlices{
		Carbs:   PieSlicePath(0, carbsEnd, pieRadius),
		Protein: PieSlicePath(carbsEnd, proteinEnd, pieRadius),
		Fat:     PieSlicePath(proteinEnd, 360, pieRadius),
	}
}
