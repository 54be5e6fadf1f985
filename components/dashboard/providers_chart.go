package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "320px"

// PointsPoint is one sample of loyalty points earned on a day.
type PointsPoint struct {
	Day    time.Time
	Earned float64
}

// PointsRepository supplies the points-history series for a context.
type PointsRepository interface {
	PointsSeries(ctx context.Context, contextID, period string) ([]PointsPoint, error)
}

// PointsChartProvider renders the loyalty points history as server-side
// go-echarts line chart HTML.
type PointsChartProvider struct {
	repo  PointsRepository
	theme string
}

// NewPointsChartProvider builds the provider; a nil repository falls back to
// demo data.
func NewPointsChartProvider(repo PointsRepository) *PointsChartProvider {
	if repo == nil {
		repo = demoPointsRepository{}
	}
	return &PointsChartProvider{repo: repo, theme: types.ThemeWesteros}
}

// Fetch converts widget configuration into chart markup.
func (p *PointsChartProvider) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	period := stringConfig(meta.Instance.Configuration, "period", "30d")
	points, err := p.repo.PointsSeries(ctx, meta.ContextID, period)
	if err != nil {
		return nil, fmt.Errorf("dashboard: points series: %w", err)
	}
	theme := stringConfig(meta.Instance.Configuration, "theme", p.theme)

	labels := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		labels[i] = point.Day.Format("Jan 2")
		data[i] = opts.LineData{Value: point.Earned}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Points History"}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  theme,
			Width:  "100%",
			Height: defaultChartHeight,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels)
	line.AddSeries("Points", data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	html, err := renderChart(line)
	if err != nil {
		return nil, err
	}
	return WidgetData{
		"chart_html": html,
		"period":     period,
		"samples":    len(points),
	}, nil
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type demoPointsRepository struct{}

func (demoPointsRepository) PointsSeries(_ context.Context, _ string, period string) ([]PointsPoint, error) {
	days := 7
	switch period {
	case "30d":
		days = 30
	case "90d":
		days = 90
	case "180d":
		days = 180
	}
	if days > 30 {
		days = 30 // demo data caps at a month of samples
	}
	now := time.Now().UTC().Truncate(24 * time.Hour)
	points := make([]PointsPoint, days)
	for i := range points {
		day := now.AddDate(0, 0, i-days+1)
		points[i] = PointsPoint{Day: day, Earned: float64(20 + (i*7)%45)}
	}
	return points, nil
}
