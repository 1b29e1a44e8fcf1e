package report

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/kalbaitzer/taskboard/internal/application/guard"
	"github.com/kalbaitzer/taskboard/internal/application/ports"
	"github.com/kalbaitzer/taskboard/internal/domain"
)

// reportWindowDays is the trailing window the report aggregates over.
const reportWindowDays = 30

// Report is the performance report payload.
type Report struct {
	ReportName     string    `json:"report_name"`
	Period         string    `json:"period"`
	GeneratedAt    time.Time `json:"generated_at"`
	TotalCompleted int       `json:"total_tasks_completed"`
	DistinctUsers  int       `json:"distinct_users"`
	AveragePerUser float64   `json:"average_tasks_per_user"`
}

// Cache stores a generated report for a short period so repeated manager
// requests don't rescan the ledger. Implementations return nil on miss.
type Cache interface {
	Get(ctx context.Context) (*Report, error)
	Set(ctx context.Context, r *Report) error
}

// Performance computes the average number of tasks completed per user
// over the trailing window. Manager-only.
//
// The ledger filter matches entries whose NewValue equals the serialized
// Completed status. This couples the report to the status spelling; a
// structured status filter would be safer, but the recorded values are
// plain strings.
type Performance struct {
	users ports.UserRepository
	tasks ports.TaskRepository
	clock ports.Clock
	cache Cache // optional
	log   zerolog.Logger
}

func NewPerformance(users ports.UserRepository, tasks ports.TaskRepository, clock ports.Clock, cache Cache, log zerolog.Logger) *Performance {
	return &Performance{users: users, tasks: tasks, clock: clock, cache: cache, log: log}
}

func (uc *Performance) Execute(ctx context.Context, actorID domain.UserID) (*Report, error) {
	if _, err := guard.Manager(ctx, uc.users, actorID); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("report cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	now := uc.clock.Now()
	since := now.AddDate(0, 0, -reportWindowDays)
	completions, err := uc.tasks.GetCompletedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		ReportName:  "Performance Report",
		Period:      "Last 30 days",
		GeneratedAt: now,
	}
	if len(completions) > 0 {
		seen := make(map[domain.UserID]struct{})
		for _, h := range completions {
			seen[h.UserID()] = struct{}{}
		}
		rep.TotalCompleted = len(completions)
		rep.DistinctUsers = len(seen)
		avg := float64(rep.TotalCompleted) / float64(rep.DistinctUsers)
		rep.AveragePerUser = math.Round(avg*100) / 100
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, rep); err != nil {
			uc.log.Warn().Err(err).Msg("report cache write failed")
		}
	}
	return rep, nil
}
