package scheduler_test

import (
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evandrarf/cryptolearn-be/internal/scheduler"
	"github.com/sirupsen/logrus"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep() int {
	s.calls.Add(1)
	return 1
}

func TestEverySweep_RunsJob(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := scheduler.New(log)
	sweeper := &countingSweeper{}
	if err := s.EverySweep("test", 50*time.Millisecond, sweeper); err != nil {
		t.Fatalf("EverySweep: %v", err)
	}
	s.Start()
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 2 sweeps, got %d", sweeper.calls.Load())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestEverySweep_RejectsZeroInterval(t *testing.T) {
	s := scheduler.New(logrus.New())
	if err := s.EverySweep("test", 0, &countingSweeper{}); err == nil {
		t.Error("expected an error for a zero interval")
	}
}
