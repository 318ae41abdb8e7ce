package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type JobFunc func(ctx context.Context) error

// anyHour disables the hour gate so a job fires on every tick.
const anyHour = -1

type Job struct {
	Name     string
	Interval time.Duration
	Hour     int // UTC hour the job may fire in, or anyHour
	Fn       JobFunc
}

func (j Job) runnableAt(t time.Time) bool {
	return j.Hour == anyHour || t.UTC().Hour() == j.Hour
}

// Scheduler runs registered jobs on fixed intervals, each on its own
// goroutine. Jobs registered with AddDailyJob additionally only fire
// during their UTC hour, so a short interval keeps the window from
// being missed without running the job all day.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	now    func() time.Time
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		now:    time.Now,
	}
}

// AddJob registers a job that fires on every interval tick.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.addJob(Job{Name: name, Interval: interval, Hour: anyHour, Fn: fn})
}

// AddDailyJob registers a job that fires only while the UTC clock reads
// the given hour.
func (s *Scheduler) AddDailyJob(name string, interval time.Duration, hour int, fn JobFunc) {
	s.addJob(Job{Name: name, Interval: interval, Hour: hour, Fn: fn})
}

func (s *Scheduler) addJob(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job)
	slog.Info("Cron job registered", "name", job.Name, "interval", job.Interval)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) runJob(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.executeJob(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.executeJob(job)
		}
	}
}

func (s *Scheduler) executeJob(job Job) {
	if !job.runnableAt(s.now()) {
		return
	}

	start := s.now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce fires every registered job immediately, ignoring hour gates.
// Meant for manual catch-up runs.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Fn(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
