package handler

import (
	"errors"

	"canvas-server/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var sectionLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "canvas_section_lookups_total",
		Help: "Total number of section content lookups by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// recordLookup counts completed lookups; cancelled requests never reached the table.
func recordLookup(endpoint string, err error) {
	switch {
	case err == nil:
		sectionLookupsTotal.WithLabelValues(endpoint, "found").Inc()
	case errors.Is(err, models.ErrSectionNotFound):
		sectionLookupsTotal.WithLabelValues(endpoint, "not_found").Inc()
	}
}
