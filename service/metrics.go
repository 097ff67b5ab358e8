package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sourceCache  = "cache"
	sourceESolat = "esolat"
	sourceError  = "error"
)

var (
	repliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solat_assistant",
			Name:      "replies_total",
			Help:      "Replies produced, by the route the utterance took.",
		},
		[]string{"route"},
	)

	prayerTimeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solat_assistant",
			Name:      "prayer_time_lookups_total",
			Help:      "Prayer time lookups, by where the row came from.",
		},
		[]string{"source"},
	)
)
