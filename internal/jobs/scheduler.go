package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"bigmanpc/api/internal/service"
)

// Scheduler runs the periodic maintenance work: keeping the catalog cache
// warm and logging a daily sales summary.
type Scheduler struct {
	cron    *cron.Cron
	catalog *service.CatalogService
	sales   *service.SalesService
	log     zerolog.Logger
}

func NewScheduler(catalog *service.CatalogService, sales *service.SalesService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		catalog: catalog,
		sales:   sales,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 */5 * * * *", s.refreshCatalogCache); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 0 * * *", s.logSalesSummary); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for in-flight jobs to finish, up to a
// five second grace period.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) refreshCatalogCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.catalog.RefreshCache(ctx); err != nil {
		s.log.Error().Err(err).Msg("catalog cache refresh failed")
	}
}

func (s *Scheduler) logSalesSummary() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, revenue, err := s.sales.Summary(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("sales summary failed")
		return
	}

	s.log.Info().
		Int64("sales", count).
		Float64("revenue", revenue).
		Msg("daily sales summary")
}
