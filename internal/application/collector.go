package application

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"metalprices-service/internal/domain"
)

// Collector fans out across all five sources concurrently and joins
// all-settled: every call runs to completion or failure before the
// snapshot is produced. A failed source leaves its slot nil; Collect
// itself never fails, so an entirely failed pass yields an empty
// snapshot and downstream consumers degrade field by field.
type Collector struct {
	Sources Sources
	Log     *zap.Logger
}

func NewCollector(sources Sources, log *zap.Logger) *Collector {
	return &Collector{Sources: sources, Log: log}
}

func (c *Collector) Collect(ctx context.Context) domain.Snapshot {
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}

	var snap domain.Snapshot
	var wg sync.WaitGroup
	run := func(name string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				log.Warn("source_failed", zap.String("source", name), zap.Error(err))
			}
		}()
	}

	run("shanghai", func() error {
		q, err := c.Sources.Shanghai(ctx)
		if err != nil {
			return err
		}
		snap.Shanghai = &q
		return nil
	})
	run("rate_twd", func() error {
		rate, err := c.Sources.RateTWD(ctx)
		if err != nil {
			return err
		}
		snap.RateTWD = &rate
		return nil
	})
	run("lme", func() error {
		q, err := c.Sources.LME(ctx)
		if err != nil {
			return err
		}
		snap.LME = &q
		return nil
	})
	run("usd_cny", func() error {
		q, err := c.Sources.UsdCny(ctx)
		if err != nil {
			return err
		}
		snap.UsdCny = &q
		return nil
	})
	run("gold", func() error {
		q, err := c.Sources.Gold(ctx)
		if err != nil {
			return err
		}
		snap.Gold = &q
		return nil
	})

	wg.Wait()
	return snap
}
