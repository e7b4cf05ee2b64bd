package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/wajeht/bang/internal/bangs"
	"github.com/wajeht/bang/internal/logger"
)

// DictReloader keeps the static bang dictionary fresh: an immediate load on
// start, then periodic reloads, plus a manual trigger fed by the /reload
// endpoint.
type DictReloader struct {
	loader        *bangs.Loader
	catalog       *bangs.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

func NewDictReloader(
	loader *bangs.Loader,
	catalog *bangs.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *DictReloader {
	return &DictReloader{
		loader:        loader,
		catalog:       catalog,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the dictionary once synchronously, then begins the periodic
// reload loop. The initial load failing is fatal: a bang app without bangs
// is not worth starting.
func (dr *DictReloader) Start(ctx context.Context) error {
	if err := dr.Reload(); err != nil {
		return fmt.Errorf("initial dictionary load failed: %w", err)
	}

	ticker := time.NewTicker(dr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := dr.Reload(); err != nil {
					dr.logger.Error("failed to reload bang dictionary",
						logger.Error(err))
				}
			case <-dr.manualTrigger:
				dr.logger.Info("manual dictionary reload triggered")
				if err := dr.Reload(); err != nil {
					dr.logger.Error("failed to reload bang dictionary",
						logger.Error(err))
				}
			case <-dr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (dr *DictReloader) Stop() {
	close(dr.stopCh)
}

// Reload parses the dataset and local overrides and swaps the catalog. On
// failure the previous dictionary keeps serving.
func (dr *DictReloader) Reload() error {
	dict, err := dr.loader.Load()
	if err != nil {
		return fmt.Errorf("loading bang dictionary: %w", err)
	}

	dr.catalog.Swap(dict)
	dr.logger.Info("bang dictionary reloaded",
		logger.Int("count", dict.Len()))
	return nil
}
