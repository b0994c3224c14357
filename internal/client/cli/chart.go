package cli

import (
	"bytes"
	"strings"

	"github.com/dmitrijs2005/gophportal/internal/domain"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// statusPie renders counts as a standalone HTML pie chart.
func statusPie(title string, c domain.Counts) ([]byte, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "submissions by status"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
	)

	data := make([]opts.PieData, 0, 4)
	for _, s := range domain.Statuses() {
		data = append(data, opts.PieData{Name: label(s), Value: c.Get(s)})
	}
	pie.AddSeries("status", data)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func label(s domain.Status) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// chartName is the default export file name for a view.
func chartName(tenant string) string {
	if tenant == "" {
		return "status.html"
	}
	return "status-" + tenant + ".html"
}
