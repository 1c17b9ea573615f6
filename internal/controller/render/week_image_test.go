package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"lessonbook/internal/controller/render"
	"lessonbook/internal/service"
)

func TestWeekPNG(t *testing.T) {
	groups := []service.DayGroup{
		{Day: "Понедельник", Slots: []service.SlotView{
			{ID: 1, Time: "15:00", Available: true},
			{ID: 2, Time: "16:00", Available: false, Student: "Аня"},
		}},
		{Day: "Вторник", Slots: []service.SlotView{
			{ID: 3, Time: "15:00", Available: true},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, render.WeekPNG(&buf, groups))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	bounds := img.Bounds()
	require.Greater(t, bounds.Dx(), 0)
	require.Greater(t, bounds.Dy(), 0)
}

func TestWeekPNGEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WeekPNG(&buf, nil))

	_, err := png.Decode(&buf)
	require.NoError(t, err)
}
