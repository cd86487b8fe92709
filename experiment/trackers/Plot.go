package trackers

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Plot renders one line chart per DataTracker to w as an HTML page.
// The x axis of each chart is the episode number.
func Plot(w io.Writer, title string, trackers ...DataTracker) error {
	if len(trackers) == 0 {
		return errors.New("plot: no trackers to plot")
	}

	page := components.NewPage().SetPageTitle(title)

	for _, t := range trackers {
		data := t.Data()

		episodes := make([]string, 0, len(data))
		items := make([]opts.LineData, 0, len(data))
		for i, value := range data {
			episodes = append(episodes, fmt.Sprintf("%d", i+1))
			items = append(items, opts.LineData{Value: value})
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    fmt.Sprintf("%s: %s", title, t.Name()),
				Subtitle: fmt.Sprintf("mean %.3f", Mean(t, 0)),
			}),
		)
		line = line.SetXAxis(episodes)
		line.AddSeries(t.Name(), items)

		page.AddCharts(line)
	}

	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "plot")
	}
	return nil
}
