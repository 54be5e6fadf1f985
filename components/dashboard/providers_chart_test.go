package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPointsRepository struct {
	points []PointsPoint
	err    error
	period string
}

func (s *stubPointsRepository) PointsSeries(_ context.Context, _ string, period string) ([]PointsPoint, error) {
	s.period = period
	return s.points, s.err
}

func TestPointsChartProviderRendersChart(t *testing.T) {
	repo := &stubPointsRepository{points: []PointsPoint{
		{Day: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Earned: 20},
		{Day: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), Earned: 35},
	}}
	provider := NewPointsChartProvider(repo)

	data, err := provider.Fetch(context.Background(), WidgetContext{
		ContextID: "ctx-1",
		Instance: WidgetInstance{
			WidgetType:    "community.widget.points_history",
			Configuration: map[string]any{"period": "7d"},
		},
	})
	require.NoError(t, err)
	require.Contains(t, data, "chart_html")

	html, ok := data["chart_html"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, html)
	assert.Equal(t, "7d", repo.period)
	assert.Equal(t, 2, data["samples"])
}

func TestPointsChartProviderDefaultsPeriod(t *testing.T) {
	repo := &stubPointsRepository{}
	provider := NewPointsChartProvider(repo)

	data, err := provider.Fetch(context.Background(), WidgetContext{ContextID: "ctx-1"})
	require.NoError(t, err)
	assert.Equal(t, "30d", repo.period)
	assert.Equal(t, "30d", data["period"])
}

func TestPointsChartProviderWrapsRepositoryError(t *testing.T) {
	boom := errors.New("series unavailable")
	provider := NewPointsChartProvider(&stubPointsRepository{err: boom})

	_, err := provider.Fetch(context.Background(), WidgetContext{ContextID: "ctx-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPointsChartProviderDemoDataWithoutRepository(t *testing.T) {
	provider := NewPointsChartProvider(nil)

	data, err := provider.Fetch(context.Background(), WidgetContext{ContextID: "ctx-1"})
	require.NoError(t, err)
	samples, ok := data["samples"].(int)
	require.True(t, ok)
	assert.Greater(t, samples, 0)
}
