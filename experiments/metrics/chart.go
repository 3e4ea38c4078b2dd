package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Matchup pairs two agents; Agent1 is the one whose win rate is charted.
type Matchup struct {
	ID     int
	Agent1 int
	Agent2 int
}

func (m Matchup) String() string {
	return fmt.Sprintf("agent %d vs agent %d", m.Agent1, m.Agent2)
}

// WinRates returns Agent1's running win rate after each game of the matchup,
// in game id order.
func WinRates(matchup Matchup, records []GameRecord) []float64 {
	games := []GameRecord{}
	for _, r := range records {
		if r.Matchup == matchup.ID {
			games = append(games, r)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })

	rates := make([]float64, len(games))
	wins := 0
	for i, r := range games {
		if r.WinnerID() == matchup.Agent1 {
			wins++
		}
		rates[i] = float64(wins) / float64(i+1)
	}
	return rates
}

// WriteWinRateChart renders one line per matchup into win_rates.html.
func (w *Writer) WriteWinRateChart(matchups []Matchup, records []GameRecord) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "running win rate",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	series := make([][]float64, len(matchups))
	longest := 0
	for i, m := range matchups {
		series[i] = WinRates(m, records)
		longest = max(longest, len(series[i]))
	}

	var games []string
	for i := 0; i < longest; i++ {
		games = append(games, fmt.Sprintf("%d", i+1))
	}
	line = line.SetXAxis(games)
	for i, m := range matchups {
		items := make([]opts.LineData, 0, len(series[i]))
		for _, rate := range series[i] {
			items = append(items, opts.LineData{Value: rate})
		}
		line.AddSeries(m.String(), items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(filepath.Join(w.baseDir, "win_rates.html"))
	if err != nil {
		return errors.Wrap(err, "failed to create chart file")
	}
	defer f.Close()
	return errors.Wrap(page.Render(f), "failed to render chart")
}
