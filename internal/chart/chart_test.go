package chart

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func decodePNG(t *testing.T, data []byte) (width, height int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "output must be a valid png")
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRenderTrend(t *testing.T) {
	data, err := RenderTrend(TrendInput{
		Labels: []string{"01/08", "02/08", "03/08"},
		Datasets: []Dataset{
			{Label: "Qualidade do Sono", Points: []*float64{fp(5), fp(3), fp(1)}},
			{Label: "Hidratação", Points: []*float64{fp(2), nil, fp(4)}},
		},
	})
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Equal(t, chartWidth, w)
	assert.Equal(t, chartHeight, h)
}

func TestRenderTrendEmpty(t *testing.T) {
	data, err := RenderTrend(TrendInput{})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestRenderTrendAllGaps(t *testing.T) {
	data, err := RenderTrend(TrendInput{
		Labels:   []string{"01/08", "02/08"},
		Datasets: []Dataset{{Label: "Sem dados", Points: []*float64{nil, nil}}},
	})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestRenderRadar(t *testing.T) {
	data, err := RenderRadar(RadarInput{
		Labels: []string{"Sono", "Alimentação", "Atividade", "Hidratação"},
		Values: []float64{4, 3, 0, 5},
	})
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Equal(t, chartWidth, w)
	assert.Equal(t, chartHeight, h)
}

func TestRenderRadarEmpty(t *testing.T) {
	data, err := RenderRadar(RadarInput{})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestRenderRadarClampsOutOfRange(t *testing.T) {
	data, err := RenderRadar(RadarInput{
		Labels: []string{"A", "B"},
		Values: []float64{-1, 12},
	})
	require.NoError(t, err)
	decodePNG(t, data)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 28, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "vitalog-radar-2026-08-28.png", Filename("vitalog-radar", now))
}
