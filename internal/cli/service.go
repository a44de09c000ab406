package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"frenetic/internal/adapters"
	"frenetic/internal/app"
)

// newAppService builds the application service for cfg.  Counters are
// collected in a private registry so writeStats can report them.
func newAppService(cfg *RootConfig) (app.Service, *prometheus.Registry) {
	service := app.NewService(cfg.ConfigFile, cfg.Environment)
	reg := prometheus.NewRegistry()
	service.Metrics = adapters.NewPrometheusMetricsAdapter(reg)
	return service, reg
}

// writeStats prints every non-zero counter as "name{labels} value".
func writeStats(out io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", family.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
