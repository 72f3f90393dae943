// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Metrics
//
// Registered in init() and served at /metrics by the HTTP surface started
// in main.go, mirroring the metrics module of the pack's trading-bot
// sibling repo.

package main

import "github.com/prometheus/client_golang/prometheus"

var (
	metricWindowsOpened = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feepos_windows_opened_total",
			Help: "Distribution windows opened, by vault.",
		},
		[]string{"vault"},
	)

	metricPagesSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feepos_pages_submitted_total",
			Help: "MsgDistribute pages submitted, by vault and outcome.",
		},
		[]string{"vault", "outcome"},
	)

	metricInvestorUSDC = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feepos_investor_usdc_total",
			Help: "Quote-asset amount paid to investors, by vault.",
		},
		[]string{"vault"},
	)

	metricCreatorUSDC = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feepos_creator_usdc_total",
			Help: "Quote-asset amount paid to the creator remainder, by vault.",
		},
		[]string{"vault"},
	)

	metricLastCrankUnix = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "feepos_last_crank_unix_seconds",
			Help: "Unix timestamp of the last successful MsgDistribute submission, by vault.",
		},
		[]string{"vault"},
	)
)

func init() {
	prometheus.MustRegister(
		metricWindowsOpened,
		metricPagesSubmitted,
		metricInvestorUSDC,
		metricCreatorUSDC,
		metricLastCrankUnix,
	)
}
