package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalog/internal/store"
	"vitalog/internal/taxonomy"
)

func TestProjectTrendValuesAndGaps(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	recs := []store.Record{testRecord(1, 5), testRecord(2, 3), testRecord(3, 1)}
	// middle record misses the rating entirely
	recs[1].Data = map[string]taxonomy.Entry{}

	trend := ProjectTrend(recs, sel)
	require.Equal(t, []string{"01/08/2026", "02/08/2026", "03/08/2026"}, trend.Labels)

	var sono *TrendSeries
	for i := range trend.Series {
		if trend.Series[i].FullID == "sono-qualidade" {
			sono = &trend.Series[i]
		}
	}
	require.NotNil(t, sono, "sono-qualidade must be plotted")

	require.Len(t, sono.Points, 3)
	require.NotNil(t, sono.Points[0])
	assert.Equal(t, 5.0, *sono.Points[0])
	assert.Nil(t, sono.Points[1], "missing values are gaps, never zeros")
	require.NotNil(t, sono.Points[2])
	assert.Equal(t, 1.0, *sono.Points[2])
}

func TestProjectTrendOrdersAscendingRegardlessOfInput(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	recs := []store.Record{testRecord(3, 1), testRecord(1, 5), testRecord(2, 3)}
	trend := ProjectTrend(recs, sel)
	assert.Equal(t, []string{"01/08/2026", "02/08/2026", "03/08/2026"}, trend.Labels)
}

func TestProjectTrendSkipsBooleansAndCapsSeries(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	trend := ProjectTrend([]store.Record{testRecord(1, 4)}, sel)

	assert.LessOrEqual(t, len(trend.Series), maxTrendSeries)
	for _, s := range trend.Series {
		assert.NotEqual(t, "sonhos-teve", s.FullID, "boolean subcategories are not plotted")
		assert.NotEqual(t, "maconha-usou", s.FullID)
	}
}

func TestProjectTrendEmptyInput(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	trend := ProjectTrend(nil, sel)
	assert.Empty(t, trend.Labels)
	assert.Empty(t, trend.Series)
}

func TestThreeRecordScenario(t *testing.T) {
	// three days rated 5, 3, 1: the trend line reads [5 3 1] oldest to
	// newest and the radar reflects only the final day's 1
	sel := NewSelection(biologicoDescriptors())
	recs := []store.Record{testRecord(1, 5), testRecord(2, 3), testRecord(3, 1)}

	trend := ProjectTrend(recs, sel)
	var sono *TrendSeries
	for i := range trend.Series {
		if trend.Series[i].FullID == "sono-qualidade" {
			sono = &trend.Series[i]
		}
	}
	require.NotNil(t, sono)
	require.Len(t, sono.Points, 3)
	assert.Equal(t, 5.0, *sono.Points[0])
	assert.Equal(t, 3.0, *sono.Points[1])
	assert.Equal(t, 1.0, *sono.Points[2])

	radar := ProjectRadar(recs, sel)
	assert.Equal(t, 1.0, radar.Values[0])
}

func TestProjectRadarUsesLatestRecord(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	recs := []store.Record{testRecord(5, 2), testRecord(1, 5)}
	radar := ProjectRadar(recs, sel)

	require.NotEmpty(t, radar.Labels)
	assert.Len(t, radar.Values, len(radar.Labels))
	assert.Equal(t, "Sono e Descanso - Qualidade do Sono", radar.Labels[0])
	// day 5 is the latest record
	assert.Equal(t, 2.0, radar.Values[0])
}

func TestProjectRadarMissingBecomesZero(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	radar := ProjectRadar([]store.Record{testRecord(1, 4)}, sel)

	// only sono-qualidade is present; every other axis reads 0
	var zeros int
	for _, v := range radar.Values {
		if v == 0 {
			zeros++
		}
	}
	assert.Equal(t, len(radar.Values)-1, zeros)
	assert.LessOrEqual(t, len(radar.Labels), maxRadarAxes)
}

func TestProjectRadarDisabledAxesExcluded(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	sel.SetEnabled("sono-qualidade", false)
	radar := ProjectRadar([]store.Record{testRecord(1, 4)}, sel)
	for _, lbl := range radar.Labels {
		assert.NotEqual(t, "Sono e Descanso - Qualidade do Sono", lbl)
	}
}

func TestProjectRadarEmptyInput(t *testing.T) {
	sel := NewSelection(biologicoDescriptors())
	radar := ProjectRadar(nil, sel)
	assert.Empty(t, radar.Labels)
	assert.Empty(t, radar.Values)
}
