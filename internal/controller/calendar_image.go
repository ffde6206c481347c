package controller

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/codetutors/tutoring/internal/model"
	"github.com/codetutors/tutoring/internal/service"
)

// Layout constants for the week calendar image.
const (
	imageWidth      = 1200
	imageHeight     = 800
	headerHeight    = 80
	leftLabelsWidth = 70
	dayPaddingX     = 6
	eventRadius     = 5.0
	totalDays       = 7
)

// The drawable hour range mirrors the bookable daily window.
var (
	calendarOpens  = model.AvailabilityOpens.Hour()
	calendarCloses = model.AvailabilityCloses.Hour()
)

var (
	calendarBgColor  = color.RGBA{245, 246, 248, 255}
	calendarText     = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	evenColumnColor  = color.NRGBA{240, 240, 240, 255}
	oddColumnColor   = color.NRGBA{220, 220, 220, 255}
	eventFillColor   = color.RGBA{133, 193, 85, 220}
	eventTextColor   = color.RGBA{20, 24, 28, 230}
	eventShadowColor = color.RGBA{0, 0, 0, 20}
)

// RenderWeekImage draws a seven-day calendar grid, Monday first, with one
// block per lesson event falling inside the week starting at weekStart.
func RenderWeekImage(weekStart time.Time, events []service.CalendarEvent) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(calendarBgColor)
	dc.Clear()

	drawHeader(dc, weekStart)
	drawGrid(dc, weekStart)

	weekEnd := weekStart.AddDate(0, 0, totalDays)
	for _, event := range events {
		if event.Start.Before(weekStart) || !event.Start.Before(weekEnd) {
			continue
		}
		drawEvent(dc, weekStart, event)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode calendar image: %w", err)
	}

	return buf.Bytes(), nil
}

func drawHeader(dc *gg.Context, weekStart time.Time) {
	dc.SetColor(calendarText)
	title := fmt.Sprintf("Lessons %s - %s",
		weekStart.Format("02 Jan 2006"),
		weekStart.AddDate(0, 0, totalDays-1).Format("02 Jan 2006"))
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

func drawGrid(dc *gg.Context, weekStart time.Time) {
	columnWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)

	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*columnWidth

		if day%2 == 0 {
			dc.SetColor(evenColumnColor)
		} else {
			dc.SetColor(oddColumnColor)
		}
		dc.DrawRectangle(x, headerHeight, columnWidth, gridHeight)
		dc.Fill()

		dc.SetColor(calendarText)
		label := weekStart.AddDate(0, 0, day).Format("Mon 02")
		dc.DrawStringAnchored(label, x+columnWidth/2, headerHeight-14, 0.5, 0.5)
	}

	hours := calendarCloses - calendarOpens
	hourHeight := gridHeight / float64(hours)
	for h := 0; h <= hours; h++ {
		y := float64(headerHeight) + float64(h)*hourHeight

		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.SetLineWidth(0.5)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", calendarOpens+h), leftLabelsWidth/2, y, 0.5, 0.5)
	}
}

func drawEvent(dc *gg.Context, weekStart time.Time, event service.CalendarEvent) {
	columnWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	hourHeight := gridHeight / float64(calendarCloses-calendarOpens)

	day := int(event.Start.Sub(weekStart).Hours()) / 24
	startHours := float64(event.Start.Hour()) + float64(event.Start.Minute())/60
	durationHours := event.End.Sub(event.Start).Hours()

	x := float64(leftLabelsWidth) + float64(day)*columnWidth + dayPaddingX
	y := float64(headerHeight) + (startHours-float64(calendarOpens))*hourHeight
	w := columnWidth - 2*dayPaddingX
	h := durationHours * hourHeight

	dc.SetColor(eventShadowColor)
	dc.DrawRoundedRectangle(x+2, y+2, w, h, eventRadius)
	dc.Fill()

	dc.SetColor(eventFillColor)
	dc.DrawRoundedRectangle(x, y, w, h, eventRadius)
	dc.Fill()

	dc.SetColor(eventTextColor)
	label := fmt.Sprintf("%s %s", event.Start.Format("15:04"), event.Title)
	dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
}
