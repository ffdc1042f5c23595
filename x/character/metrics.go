package character

import (
	"github.com/prometheus/client_golang/prometheus"
)

var recalculations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "charsheet",
		Name:      "stat_recalculations_total",
		Help:      "number of committed derived-stat recalculations",
	},
	[]string{"reason"},
)

// Collectors returns the metrics of the package for registration
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{recalculations}
}
