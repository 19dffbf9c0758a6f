package settlement

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/greencycle/ecopoints/internal/config"
	"github.com/greencycle/ecopoints/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type InvestService interface {
	FindDue(ctx context.Context, limit uint32) ([]domain.Subscription, error)
	SettleSubscription(ctx context.Context, sub domain.Subscription) (bool, error)
}

// Guards against one scheduler instance queueing the same subscription
// twice while a worker is still on it. Cross-process races are closed by
// the conditional check-and-zero inside SettleSubscription.
var settlingSubscriptions sync.Map

// Service runs the scheduled side of settlement: on every tick it scans
// matured subscriptions and fans the crediting out over a worker pool. A
// user-triggered run through the invest service can race with it safely.
type Service struct {
	invest     InvestService
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	scheduler  gocron.Scheduler
}

func New(cfg *config.Config, invest InvestService) *Service {
	return &Service{
		invest:     invest,
		limit:      1000,
		workerPool: NewWorkerPool(10),
		interval:   cfg.SettlementInterval,
	}
}

func (s *Service) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			s.settleDue(ctx)
		}),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	zap.L().Info("Settlement scheduler started", zap.Duration("interval", s.interval))

	go func() {
		<-ctx.Done()
		zap.L().Info("Context canceled, stopping settlement scheduler")
		if err := s.scheduler.Shutdown(); err != nil {
			zap.L().Error("Failed to shut down settlement scheduler", zap.Error(err))
		}
		s.workerPool.Close()
	}()

	return nil
}

func (s *Service) settleDue(ctx context.Context) {
	due, err := s.invest.FindDue(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch due subscriptions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, sub := range due {
		sub := sub

		if _, loaded := settlingSubscriptions.LoadOrStore(sub.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer settlingSubscriptions.Delete(sub.ID)
				_, err := s.invest.SettleSubscription(ctx, sub)
				return err
			})
			if err != nil {
				settlingSubscriptions.Delete(sub.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling subscriptions", zap.Error(err))
	}
}
