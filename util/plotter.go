package util

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"solat-assistant/models"
)

// PlotWeeklyTimes renders an HTML line chart of a zone's prayer times over
// the given rows, one series per core prayer. Times are plotted as decimal hours.
func PlotWeeklyTimes(zone models.Zone, rows []*models.PrayerTimeRow, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("no prayer times to plot for zone %s", zone)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Waktu Solat " + string(zone),
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Waktu solat zon " + string(zone),
			Subtitle: rows[0].Date + " - " + rows[len(rows)-1].Date,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "jam", Min: 0, Max: 24}),
	)

	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	line.SetXAxis(dates)

	for _, p := range models.CorePrayers {
		points := make([]opts.LineData, len(rows))
		for i, row := range rows {
			if t, ok := row.TimeOf(p); ok {
				points[i] = opts.LineData{Value: decimalHours(t), Name: t.HHMM()}
			} else {
				points[i] = opts.LineData{Value: "-"}
			}
		}
		line.AddSeries(p.Title(), points)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func decimalHours(t models.TimeOfDay) float64 {
	h := float64(t.Hour) + float64(t.Minute)/60 + float64(t.Second)/3600
	return math.Round(h*100) / 100
}
