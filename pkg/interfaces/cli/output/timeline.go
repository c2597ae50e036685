package output

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vsinha/growplan/pkg/application/dto"
	"github.com/vsinha/growplan/pkg/growplan"
)

// TimelineChart renders a production plan as an SVG timeline: one row per
// crop line, one colored segment per growth stage.
type TimelineChart struct {
	Width        int
	Height       int
	MarginLeft   int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	RowHeight    int
	StartTime    time.Time
	EndTime      time.Time
}

// timelineRow is one crop line on the chart: a single-crop delivery, or one
// ingredient of a blend delivery.
type timelineRow struct {
	Label    string
	Schedule growplan.ProductionSchedule
}

// stageSegment is a single colored span within a row
type stageSegment struct {
	Stage growplan.Stage
	Start time.Time
	End   time.Time
	Trays int64
	X     int
	Width int
	Color string
}

// NewTimelineChart creates a timeline chart sized to the plan's date range
func NewTimelineChart(result *dto.PlanResult) *TimelineChart {
	rows := collectRows(result)
	if len(rows) == 0 {
		return &TimelineChart{
			Width:        800,
			Height:       200,
			MarginLeft:   180,
			MarginTop:    50,
			MarginRight:  50,
			MarginBottom: 50,
			RowHeight:    25,
		}
	}

	// Find time bounds
	startTime := rows[0].Schedule.StartDate()
	endTime := rows[0].Schedule.HarvestDate

	for _, row := range rows {
		if row.Schedule.StartDate().Before(startTime) {
			startTime = row.Schedule.StartDate()
		}
		if row.Schedule.HarvestDate.After(endTime) {
			endTime = row.Schedule.HarvestDate
		}
	}

	// Add some padding to the time range
	totalDuration := endTime.Sub(startTime)
	padding := time.Duration(float64(totalDuration) * 0.1)
	if padding < 12*time.Hour {
		padding = 12 * time.Hour
	}
	startTime = startTime.Add(-padding)
	endTime = endTime.Add(padding)

	rowHeight := 30
	height := len(rows)*rowHeight + 140

	return &TimelineChart{
		Width:        1200,
		Height:       height,
		MarginLeft:   220,
		MarginTop:    60,
		MarginRight:  100,
		MarginBottom: 80,
		RowHeight:    rowHeight,
		StartTime:    startTime,
		EndTime:      endTime,
	}
}

// GenerateSVG creates an SVG representation of the timeline
func (tc *TimelineChart) GenerateSVG(result *dto.PlanResult) string {
	rows := collectRows(result)
	if len(rows) == 0 {
		return tc.generateEmptyChart()
	}

	var svg strings.Builder

	svg.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, tc.Width, tc.Height))
	svg.WriteString(`<defs>`)
	svg.WriteString(`<style>`)
	svg.WriteString(`.row-label { font-family: Arial, sans-serif; font-size: 12px; fill: #333; }`)
	svg.WriteString(`.time-label { font-family: Arial, sans-serif; font-size: 10px; fill: #666; }`)
	svg.WriteString(`.title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; fill: #333; }`)
	svg.WriteString(`.grid-line { stroke: #e0e0e0; stroke-width: 1; }`)
	svg.WriteString(`.stage-bar { stroke: #333; stroke-width: 1; }`)
	svg.WriteString(`.stage-text { font-family: Arial, sans-serif; font-size: 9px; fill: white; }`)
	svg.WriteString(`</style>`)
	svg.WriteString(`</defs>`)

	// Background
	svg.WriteString(fmt.Sprintf(`<rect width="%d" height="%d" fill="white"/>`, tc.Width, tc.Height))

	// Title
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="30" class="title">Grow Timeline - Backward Scheduled from Harvest</text>`, tc.Width/2))

	// Sort rows by start date so staggered starts read top to bottom
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Schedule.StartDate(), rows[j].Schedule.StartDate()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return rows[i].Label < rows[j].Label
	})

	tc.drawTimeAxis(&svg)
	tc.drawTimeGrid(&svg, len(rows))
	tc.drawRows(&svg, rows)
	tc.drawLegend(&svg)

	svg.WriteString(`</svg>`)
	return svg.String()
}

// collectRows flattens a plan into chart rows
func collectRows(result *dto.PlanResult) []timelineRow {
	var rows []timelineRow
	for _, plan := range result.Plans {
		if plan.Crop != nil {
			rows = append(rows, timelineRow{
				Label:    fmt.Sprintf("%s (%s)", plan.TargetName, plan.HarvestDate.Format("Jan 2")),
				Schedule: *plan.Crop,
			})
		}
		if plan.Blend != nil {
			for _, ing := range plan.Blend.Ingredients {
				rows = append(rows, timelineRow{
					Label:    fmt.Sprintf("%s (%s)", ing.ProductName, plan.HarvestDate.Format("Jan 2")),
					Schedule: ing.ProductionSchedule,
				})
			}
		}
	}
	return rows
}

// segmentsFor splits a schedule into its stage spans. Zero-length spans are
// dropped so crops without a soak or with same-day stages stay readable.
func (tc *TimelineChart) segmentsFor(sched growplan.ProductionSchedule) []stageSegment {
	chartWidth := tc.Width - tc.MarginLeft - tc.MarginRight
	totalDuration := tc.EndTime.Sub(tc.StartTime)

	spans := []struct {
		stage growplan.Stage
		start time.Time
		end   time.Time
	}{
		{growplan.StageSoak, sched.SoakDate, sched.SeedDate},
		{growplan.StageSeed, sched.SeedDate, sched.MoveToLightDate},
		{growplan.StageMoveToLight, sched.MoveToLightDate, sched.HarvestDate},
	}

	var segments []stageSegment
	for _, span := range spans {
		if !span.end.After(span.start) {
			continue
		}

		startOffset := span.start.Sub(tc.StartTime)
		duration := span.end.Sub(span.start)

		x := tc.MarginLeft + int(float64(startOffset)/float64(totalDuration)*float64(chartWidth))
		width := int(float64(duration) / float64(totalDuration) * float64(chartWidth))
		if width < 2 {
			width = 2 // Minimum width for visibility
		}

		segments = append(segments, stageSegment{
			Stage: span.stage,
			Start: span.start,
			End:   span.end,
			Trays: sched.TraysNeeded,
			X:     x,
			Width: width,
			Color: tc.getStageColor(span.stage),
		})
	}

	return segments
}

// drawTimeAxis draws the time axis labels
func (tc *TimelineChart) drawTimeAxis(svg *strings.Builder) {
	chartWidth := tc.Width - tc.MarginLeft - tc.MarginRight
	totalDuration := tc.EndTime.Sub(tc.StartTime)

	days := int(math.Ceil(totalDuration.Hours() / 24))
	var interval time.Duration
	var labelFormat string

	if days <= 30 {
		interval = 24 * time.Hour // Daily
		labelFormat = "Jan 2"
	} else if days <= 180 {
		interval = 7 * 24 * time.Hour // Weekly
		labelFormat = "Jan 2"
	} else {
		interval = 30 * 24 * time.Hour // Monthly
		labelFormat = "Jan 2006"
	}

	for t := tc.StartTime.Truncate(interval); t.Before(tc.EndTime); t = t.Add(interval) {
		offset := t.Sub(tc.StartTime)
		x := tc.MarginLeft + int(float64(offset)/float64(totalDuration)*float64(chartWidth))

		if x >= tc.MarginLeft && x <= tc.Width-tc.MarginRight {
			svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label" text-anchor="middle">%s</text>`,
				x, tc.Height-tc.MarginBottom+15, t.Format(labelFormat)))
		}
	}

	// Time axis line
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
		tc.MarginLeft, tc.Height-tc.MarginBottom, tc.Width-tc.MarginRight, tc.Height-tc.MarginBottom))
}

// drawTimeGrid draws vertical grid lines bounded to the row area
func (tc *TimelineChart) drawTimeGrid(svg *strings.Builder, numRows int) {
	chartWidth := tc.Width - tc.MarginLeft - tc.MarginRight
	totalDuration := tc.EndTime.Sub(tc.StartTime)
	gridBottom := tc.MarginTop + numRows*tc.rowHeightFor(numRows)

	days := int(math.Ceil(totalDuration.Hours() / 24))
	var interval time.Duration

	if days <= 30 {
		interval = 24 * time.Hour
	} else if days <= 180 {
		interval = 7 * 24 * time.Hour
	} else {
		interval = 30 * 24 * time.Hour
	}

	for t := tc.StartTime.Truncate(interval); t.Before(tc.EndTime); t = t.Add(interval) {
		offset := t.Sub(tc.StartTime)
		x := tc.MarginLeft + int(float64(offset)/float64(totalDuration)*float64(chartWidth))

		if x >= tc.MarginLeft && x <= tc.Width-tc.MarginRight {
			svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
				x, tc.MarginTop, x, gridBottom))
		}
	}
}

// rowHeightFor shrinks rows when the plan has more lines than the chart
// height allows, leaving room above the time axis.
func (tc *TimelineChart) rowHeightFor(numRows int) int {
	maxRowY := tc.Height - tc.MarginBottom - 30
	available := maxRowY - tc.MarginTop
	height := available / numRows
	if height > tc.RowHeight {
		height = tc.RowHeight
	}
	return height
}

// drawRows draws each crop line's label and stage segments
func (tc *TimelineChart) drawRows(svg *strings.Builder, rows []timelineRow) {
	rowHeight := tc.rowHeightFor(len(rows))

	for i, row := range rows {
		y := tc.MarginTop + i*rowHeight

		// Row label
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="row-label" text-anchor="end">%s</text>`,
			tc.MarginLeft-15, y+rowHeight/2+4, row.Label))

		// Horizontal row line
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" class="grid-line"/>`,
			tc.MarginLeft, y+rowHeight, tc.Width-tc.MarginRight, y+rowHeight))

		for _, segment := range tc.segmentsFor(row.Schedule) {
			tc.drawSegment(svg, row, segment, y, rowHeight)
		}
	}
}

// drawSegment draws one stage span of a row
func (tc *TimelineChart) drawSegment(svg *strings.Builder, row timelineRow, segment stageSegment, rowY int, rowHeight int) {
	barHeight := rowHeight - 4
	barY := rowY + 2

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s" class="stage-bar"/>`,
		segment.X, barY, segment.Width, barHeight, segment.Color))

	// Add text if the span is wide enough
	if segment.Width > 50 {
		textX := segment.X + segment.Width/2
		textY := barY + barHeight/2 + 3

		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="stage-text" text-anchor="middle">%s</text>`,
			textX, textY, tc.stageLabel(segment.Stage)))
	}

	// Tooltip (SVG title element)
	tooltip := fmt.Sprintf("%s: %s %s to %s, %d trays",
		row.Label,
		tc.stageLabel(segment.Stage),
		segment.Start.Format("2006-01-02"),
		segment.End.Format("2006-01-02"),
		segment.Trays)

	svg.WriteString(fmt.Sprintf(`<title>%s</title>`, tooltip))
}

// drawLegend draws a legend explaining the stage colors
func (tc *TimelineChart) drawLegend(svg *strings.Builder) {
	legendX := tc.Width - tc.MarginRight - 200
	legendY := 50

	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="180" height="60" fill="white" stroke="#ccc" stroke-width="1"/>`,
		legendX, legendY))

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="row-label" font-weight="bold">Stages</text>`,
		legendX+10, legendY+15))

	items := []struct {
		color string
		label string
	}{
		{"#2196F3", "Soaking"},
		{"#795548", "Germination"},
		{"#4CAF50", "On Light"},
	}

	for i, item := range items {
		itemY := legendY + 25 + i*12
		svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="12" height="8" fill="%s"/>`,
			legendX+10, itemY, item.color))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" class="time-label">%s</text>`,
			legendX+30, itemY+6, item.label))
	}
}

// getStageColor returns the fill color for a growth stage span
func (tc *TimelineChart) getStageColor(stage growplan.Stage) string {
	switch stage {
	case growplan.StageSoak:
		return "#2196F3" // Blue while seed is under water
	case growplan.StageSeed:
		return "#795548" // Brown while trays are covered
	case growplan.StageMoveToLight:
		return "#4CAF50" // Green once on the racks
	default:
		return "#9E9E9E"
	}
}

// stageLabel names the span a segment covers. The segment starting at
// MoveToLight spans the light period, so the bare stage name would mislead.
func (tc *TimelineChart) stageLabel(stage growplan.Stage) string {
	switch stage {
	case growplan.StageSoak:
		return "Soak"
	case growplan.StageSeed:
		return "Germinate"
	case growplan.StageMoveToLight:
		return "On Light"
	default:
		return stage.String()
	}
}

// generateEmptyChart creates an empty chart when no deliveries exist
func (tc *TimelineChart) generateEmptyChart() string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
		<rect width="%d" height="%d" fill="white"/>
		<text x="%d" y="%d" class="title" text-anchor="middle">No Deliveries Planned</text>
		<style>
			.title { font-family: Arial, sans-serif; font-size: 16px; fill: #666; }
		</style>
	</svg>`, tc.Width, tc.Height, tc.Width, tc.Height, tc.Width/2, tc.Height/2)
}
