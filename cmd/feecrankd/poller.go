// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Poller
//
// Adapted from the pack's DividendDistributor cron-job shape (query ->
// decide -> act -> log, scheduled by robfig/cron) into a page-by-page
// permissionless crank: watch each configured vault's window state and
// submit MsgDistribute pages until the day closes, at which point the
// cooldown takes over until the next poll notices a new window is due.

package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const windowLengthSeconds = int64(86400)

// Poller periodically cranks every configured vault.
type Poller struct {
	client   Client
	crank    string
	pageSize int
	vaults   map[string]cohortManifest // vault id -> cohort
	log      *logrus.Entry
	timeout  time.Duration

	cron *cron.Cron
}

// NewPoller constructs a Poller from the loaded config and pre-read
// cohort manifests.
func NewPoller(cfg Config, client Client, manifests map[string]cohortManifest, log *logrus.Entry) *Poller {
	return &Poller{
		client:   client,
		crank:    cfg.CrankAddress,
		pageSize: cfg.PageSize,
		vaults:   manifests,
		log:      log,
		timeout:  cfg.RequestTimeout,
	}
}

// Run starts the cron schedule and blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, pollCron string) error {
	p.cron = cron.New()
	_, err := p.cron.AddFunc(pollCron, func() {
		p.tick(ctx)
	})
	if err != nil {
		return err
	}

	p.log.WithField("schedule", pollCron).Info("crank poller scheduled")
	p.cron.Start()
	defer p.cron.Stop()

	<-ctx.Done()
	return nil
}

// tick checks every configured vault once.
func (p *Poller) tick(ctx context.Context) {
	for vault, manifest := range p.vaults {
		if err := p.crankVault(ctx, vault, manifest); err != nil {
			p.log.WithError(err).WithField("vault", vault).Warn("crank attempt failed")
			metricPagesSubmitted.WithLabelValues(vault, "error").Inc()
		}
	}
}

// crankVault submits exactly one MsgDistribute page for vault, if one is
// due: either resuming a mid-window cursor, or opening a new window once
// the cooldown has elapsed.
func (p *Poller) crankVault(ctx context.Context, vault string, manifest cohortManifest) error {
	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	progress, err := p.client.GetProgress(reqCtx, vault)
	if err != nil {
		return err
	}

	// now is only ever used for this daemon's own pre-submission guess at
	// whether the cooldown has elapsed and for the last-crank metric; the
	// chain alone decides authoritatively from its own ctx.BlockTime(), so
	// it is never sent on the wire.
	now := time.Now().Unix()

	var req DistributeRequest
	if progress.DayComplete {
		if now-progress.WindowStartTS < windowLengthSeconds {
			p.log.WithField("vault", vault).Debug("cooldown not yet elapsed, skipping")
			return nil
		}
		req = DistributeRequest{
			Crank:          p.crank,
			Vault:          vault,
			ExpectedCursor: 0,
			CohortRefs:     manifest.refs(),
			Pairs:          toPairs(manifest.page(0, p.pageSize)),
		}
	} else {
		cursor := int(progress.Cursor)
		page := manifest.page(cursor, p.pageSize)
		if len(page) == 0 {
			p.log.WithField("vault", vault).Warn("cursor past end of cohort manifest, nothing to submit")
			return nil
		}
		req = DistributeRequest{
			Crank:          p.crank,
			Vault:          vault,
			ExpectedCursor: progress.Cursor,
			Pairs:          toPairs(page),
		}
	}

	resp, err := p.client.Distribute(ctx, req)
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"vault":          vault,
		"window_opened":  resp.WindowOpened,
		"investors_paid": resp.InvestorsPaid,
		"page_total":     resp.PageTotal,
		"day_closed":     resp.DayClosed,
		"next_cursor":    resp.NextCursor,
	}).Info("crank page submitted")

	if resp.WindowOpened {
		metricWindowsOpened.WithLabelValues(vault).Inc()
	}
	metricPagesSubmitted.WithLabelValues(vault, "ok").Inc()
	metricInvestorUSDC.WithLabelValues(vault).Add(float64(resp.PageTotal))
	if resp.DayClosed {
		metricCreatorUSDC.WithLabelValues(vault).Add(float64(resp.CreatorAmount))
	}
	metricLastCrankUnix.WithLabelValues(vault).Set(float64(now))

	return nil
}

func toPairs(entries []DistributePair) []DistributePair {
	if entries == nil {
		return nil
	}
	out := make([]DistributePair, len(entries))
	copy(out, entries)
	return out
}
