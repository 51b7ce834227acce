package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"comcigan-server/models/timetable"
)

// Heat levels of a timetable cell.
const (
	CellFree     = 0
	CellAssigned = 1
	CellChanged  = 2
)

var weekdayNames = [timetable.Weekdays]string{"월", "화", "수", "목", "금"}

// CellLevel classifies an entry for the heatmap.
func CellLevel(e timetable.TimetableEntry) int {
	switch {
	case e.Changed:
		return CellChanged
	case e.Subject != "":
		return CellAssigned
	}
	return CellFree
}

// RenderClassTimetableHeatMap writes an HTML page showing which periods of
// a class are taught and which were changed.
func RenderClassTimetableHeatMap(w io.Writer, ct *timetable.ClassTimetable) error {
	periods := make([]string, timetable.Periods)
	for p := range periods {
		periods[p] = fmt.Sprintf("%d교시", p+1)
	}

	data := make([]opts.HeatMapData, 0, timetable.Weekdays*timetable.Periods)
	for wd := 0; wd < timetable.Weekdays; wd++ {
		for p := 0; p < timetable.Periods; p++ {
			e := ct.Days[wd][p]
			data = append(data, opts.HeatMapData{
				Name:  e.Subject,
				Value: [3]interface{}{wd, p, CellLevel(e)},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Timetable",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d학년 %d반", ct.Grade, ct.Class),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Data: weekdayNames[:],
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: periods,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        CellFree,
			Max:        CellChanged,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#f0f0f0", "#50a3ba", "#d94e5d"},
			},
		}),
	)

	hm.AddSeries("timetable", data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	return hm.Render(w)
}
