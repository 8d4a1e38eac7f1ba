// Package render draws the weekly calendar as a PNG, for embedding the
// schedule in chats or printing it out.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"tutordesk/internal/model"
	"tutordesk/internal/schedule"
)

const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 100
	leftLabelsWidth = 80
	dayPaddingX     = 8
	minBlockHeight  = 8.0
	blockRadius     = 6.0
	totalDays       = 7
	hourPaddingTop  = 2
	hourPaddingBot  = 2
	defaultMinHour  = 8
	defaultMaxHour  = 21
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 60}

	classColor     = color.RGBA{133, 193, 85, 220}
	cancelledColor = color.RGBA{158, 158, 158, 200}
	ghostColor     = color.RGBA{180, 190, 210, 140} // unmaterialized recurring projection
	blockTextColor = color.RGBA{20, 24, 28, 230}
)

type weekBounds struct {
	start time.Time
	end   time.Time
}

type hourRange struct {
	start int
	end   int
	total int
}

// WeekInput is everything the renderer needs for one week.
type WeekInput struct {
	WeekStart    time.Time
	Classes      []*model.Class
	Ghosts       []schedule.Occurrence
	StudentNames map[int64]string
}

// WeekPNG renders the seven days starting at input.WeekStart.
func WeekPNG(input WeekInput) ([]byte, error) {
	week := weekBounds{
		start: schedule.DateOnly(input.WeekStart),
		end:   schedule.DateOnly(input.WeekStart).AddDate(0, 0, 6),
	}
	today := schedule.DateOnly(time.Now())
	highlightToday := !today.Before(week.start) && !today.After(week.end)

	hours := calcHourRange(input)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth) / totalDays
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)

	for i := 0; i < totalDays; i++ {
		day := week.start.AddDate(0, 0, i)
		x := float64(leftLabelsWidth + i*dayWidth)

		bg := evenDayColor
		if i%2 == 1 {
			bg = oddDayColor
		}
		if highlightToday && day.Equal(today) {
			bg = todayBgColor
		}
		dc.SetColor(bg)
		dc.DrawRectangle(x, headerHeight, float64(dayWidth), float64(dayHeight))
		dc.Fill()

		dc.SetColor(textColor)
		label := fmt.Sprintf("%s %s", schedule.ISOWeekdayName(schedule.ISOWeekday(day))[:3], day.Format("02.01"))
		dc.DrawStringAnchored(label, x+float64(dayWidth)/2, headerHeight-20, 0.5, 0.5)

		drawDayBlocks(dc, input, day, x, float64(dayWidth), hours, cellHeight)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

// calcHourRange trims the grid to the hours actually in use, with a
// little padding; an empty week gets the default working-day window.
func calcHourRange(input WeekInput) hourRange {
	minHour, maxHour := 24, 0

	consider := func(startClock, endClock string) {
		start, ok := schedule.ClockMinutes(startClock)
		if !ok {
			return
		}
		end, ok := schedule.ClockMinutes(endClock)
		if !ok {
			return
		}
		if start/60 < minHour {
			minHour = start / 60
		}
		endH := end / 60
		if end%60 > 0 {
			endH++
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	for _, c := range input.Classes {
		consider(c.StartTime, c.EndTime)
	}
	for _, g := range input.Ghosts {
		consider(g.StartTime, g.EndTime)
	}

	if minHour == 24 {
		minHour, maxHour = defaultMinHour, defaultMaxHour
	}

	start := minHour - hourPaddingTop
	if start < 0 {
		start = 0
	}
	end := maxHour + hourPaddingBot
	if end > 24 {
		end = 24
	}

	return hourRange{start: start, end: end, total: end - start}
}

func drawHeader(dc *gg.Context, week weekBounds) {
	dc.SetColor(textColor)
	title := fmt.Sprintf("Week %s - %s", week.start.Format("02.01.2006"), week.end.Format("02.01.2006"))
	dc.DrawStringAnchored(title, imageWidth/2, 30, 0.5, 0.5)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)
	for h := hours.start; h <= hours.end; h++ {
		y := headerHeight + float64(h-hours.start)*cellHeight
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", h), leftLabelsWidth-10, y, 1, 0.5)
	}
}

func drawDayBlocks(dc *gg.Context, input WeekInput, day time.Time, x, dayWidth float64, hours hourRange, cellHeight float64) {
	blockY := func(clock string) (float64, bool) {
		minutes, ok := schedule.ClockMinutes(clock)
		if !ok {
			return 0, false
		}
		return headerHeight + (float64(minutes)/60-float64(hours.start))*cellHeight, true
	}

	draw := func(startClock, endClock, label string, fill color.Color) {
		y0, ok := blockY(startClock)
		if !ok {
			return
		}
		y1, ok := blockY(endClock)
		if !ok {
			return
		}
		h := y1 - y0
		if h < minBlockHeight {
			h = minBlockHeight
		}
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x+dayPaddingX, y0, dayWidth-2*dayPaddingX, h, blockRadius)
		dc.Fill()
		dc.SetColor(blockTextColor)
		dc.DrawStringAnchored(label, x+dayWidth/2, y0+h/2, 0.5, 0.5)
	}

	for _, g := range input.Ghosts {
		if !g.Date.Equal(day) {
			continue
		}
		draw(g.StartTime, g.EndTime, g.StartTime+" ?", ghostColor)
	}

	for _, c := range input.Classes {
		if !schedule.DateOnly(c.Date).Equal(day) {
			continue
		}
		fill := classColor
		if c.Status == model.ClassStatusCancelled {
			fill = cancelledColor
		}
		label := c.StartTime
		if name, ok := input.StudentNames[c.StudentID]; ok && name != "" {
			label = c.StartTime + " " + name
		}
		draw(c.StartTime, c.EndTime, label, fill)
	}
}
