package reports

import (
	"context"
	"orca-service/internal/app/config"
	"orca-service/internal/app/contracts"
	"orca-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultSweeperCronSpec = "@daily"
	defaultRetentionInDays = 30
)

// Sweeper periodically removes archived reports past their retention.
type Sweeper struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	archive   contracts.ReportArchive
	now       func() time.Time
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
	lockTTL   time.Duration
	retention time.Duration
}

// NewSweeper falls back to a 30 day retention when none is configured, so a
// zero or negative value never empties the whole archive.
func NewSweeper(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, archive contracts.ReportArchive) *Sweeper {
	retentionInDays := cfg.Report.RetentionInDays
	if retentionInDays <= 0 {
		log.Warn("reports.sweeper: retention not positive; using the default",
			zap.Int("retention_in_days", retentionInDays),
			zap.Int("default_retention_in_days", defaultRetentionInDays),
		)
		retentionInDays = defaultRetentionInDays
	}
	return &Sweeper{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		archive:   archive,
		now:       time.Now,
		lockTTL:   constvars.ReportSweeperLockTTL * time.Minute,
		retention: time.Duration(retentionInDays) * 24 * time.Hour,
	}
}

// Start schedules the sweep. It does nothing when archiving is disabled.
func (s *Sweeper) Start(ctx context.Context) {
	if !s.archive.Enabled() {
		s.log.Info("reports.sweeper: archive disabled; sweeper not started")
		return
	}

	s.runCtx, s.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := s.cfg.Report.SweeperCronSpec
	if _, err := c.AddFunc(spec, func() { s.RunOnce(s.runCtx) }); err != nil {
		s.log.Warn("reports.sweeper: invalid cron spec; falling back to @daily",
			zap.String("cron_spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultSweeperCronSpec, func() { s.RunOnce(s.runCtx) })
	}
	c.Start()
	s.cron = c
}

// Stop cancels an in-flight sweep and waits for it to return.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// RunOnce sweeps when this instance wins the leader lock.
func (s *Sweeper) RunOnce(ctx context.Context) {
	acquired, token, err := s.locker.TryLock(ctx, constvars.ReportSweeperLockKey, s.lockTTL)
	if err != nil {
		s.log.Warn("reports.sweeper: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		s.log.Info("reports.sweeper: leader lock not acquired; another instance is sweeping")
		return
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), constvars.ReportSweeperLockKey, token); err != nil {
			s.log.Warn("reports.sweeper: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(s.lockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := s.locker.Refresh(refreshCtx, constvars.ReportSweeperLockKey, token, s.lockTTL); err != nil {
					s.log.Warn("reports.sweeper: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	cutoff := s.now().Add(-s.retention)
	removed, err := s.archive.RemoveOlderThan(ctx, cutoff)
	if err != nil {
		s.log.Warn("reports.sweeper: sweep stopped early",
			zap.Int(constvars.LoggingRemovedCountKey, removed),
			zap.Error(err),
		)
		return
	}
	s.log.Info("reports.sweeper: sweep finished",
		zap.Time("cutoff", cutoff),
		zap.Int(constvars.LoggingRemovedCountKey, removed),
	)
}
