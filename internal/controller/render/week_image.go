// Package render рисует недельное расписание картинкой PNG.
package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"lessonbook/internal/service"
)

// Константы размеров и отступов
const (
	headerHeight     = 60
	leftLabelsWidth  = 90
	cellWidth        = 180
	cellHeight       = 64
	cellPadding      = 6.0
	slotBorderRadius = 6.0
)

// Константы шрифтов
const (
	dayFontSize  = 18.0
	cellFontSize = 13.0
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	textColor       = color.RGBA{80, 85, 90, 255}
	timeLabelColor  = color.RGBA{110, 115, 120, 255}
	slotFreeColor   = color.RGBA{133, 193, 85, 255}
	slotBookedColor = color.RGBA{255, 182, 193, 255} // Светло-розовый для забронированных
	slotTextColor   = color.RGBA{20, 24, 28, 255}
)

// WeekPNG рисует сетку недели: колонка на день, строка на время.
// Свободные слоты зелёные, занятые розовые с именем студента.
func WeekPNG(w io.Writer, groups []service.DayGroup) error {
	times := collectTimes(groups)

	cols := len(groups)
	if cols == 0 {
		cols = 1
	}
	rows := len(times)
	if rows == 0 {
		rows = 1
	}

	width := leftLabelsWidth + cellWidth*cols
	height := headerHeight + cellHeight*rows

	dc := gg.NewContext(width, height)
	dc.SetColor(bgColor)
	dc.Clear()

	dayFace, err := newFace(dayFontSize)
	if err != nil {
		return err
	}
	cellFace, err := newFace(cellFontSize)
	if err != nil {
		return err
	}

	// Заголовки дней
	dc.SetFontFace(dayFace)
	dc.SetColor(textColor)
	for i, g := range groups {
		x := float64(leftLabelsWidth + i*cellWidth + cellWidth/2)
		dc.DrawStringAnchored(g.Day, x, headerHeight/2, 0.5, 0.5)
	}

	// Метки времени слева
	dc.SetFontFace(cellFace)
	dc.SetColor(timeLabelColor)
	for i, t := range times {
		y := float64(headerHeight + i*cellHeight + cellHeight/2)
		dc.DrawStringAnchored(t, leftLabelsWidth/2, y, 0.5, 0.5)
	}

	// Ячейки слотов
	for col, g := range groups {
		byTime := make(map[string]service.SlotView, len(g.Slots))
		for _, slot := range g.Slots {
			if _, ok := byTime[slot.Time]; !ok {
				byTime[slot.Time] = slot
			}
		}

		for row, t := range times {
			slot, ok := byTime[t]
			if !ok {
				continue
			}

			x := float64(leftLabelsWidth+col*cellWidth) + cellPadding
			y := float64(headerHeight+row*cellHeight) + cellPadding
			cw := float64(cellWidth) - 2*cellPadding
			ch := float64(cellHeight) - 2*cellPadding

			if slot.Available {
				dc.SetColor(slotFreeColor)
			} else {
				dc.SetColor(slotBookedColor)
			}
			dc.DrawRoundedRectangle(x, y, cw, ch, slotBorderRadius)
			dc.Fill()

			label := "свободно"
			if !slot.Available {
				label = slot.Student
			}

			dc.SetColor(slotTextColor)
			dc.DrawStringAnchored(slot.Time, x+cw/2, y+ch/2-9, 0.5, 0.5)
			dc.DrawStringAnchored(label, x+cw/2, y+ch/2+9, 0.5, 0.5)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode week image: %w", err)
	}
	return nil
}

// collectTimes собирает различные времена в порядке первого появления
func collectTimes(groups []service.DayGroup) []string {
	var times []string
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, slot := range g.Slots {
			if !seen[slot.Time] {
				seen[slot.Time] = true
				times = append(times, slot.Time)
			}
		}
	}
	return times
}

func newFace(size float64) (font.Face, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: size,
		DPI:  72,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}
