package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// Scheduler runs background housekeeping jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	log       *logrus.Logger
}

func New(log *logrus.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		log:       log,
	}
}

// EverySweep registers a job that sweeps s every interval.
func (s *Scheduler) EverySweep(name string, interval time.Duration, sw Sweeper) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", name, interval)
	}
	_, err := s.scheduler.Every(interval).Do(func() {
		if n := sw.Sweep(); n > 0 {
			s.log.WithFields(logrus.Fields{"job": name, "removed": n}).Info("sweep finished")
		}
	})
	return err
}

func (s *Scheduler) Start() {
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}
