package coach

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultFetchConcurrency = 8
	UnknownAthleteName      = "Unknown"
)

// DataSource resolves the data needed per coached athlete.
type DataSource interface {
	// AthleteName returns "" when the athlete cannot be found.
	AthleteName(ctx context.Context, athleteID string) (string, error)
	Assignments(ctx context.Context, athleteID, groupID string) ([]Assignment, error)
}

type AthleteRow struct {
	Name           string
	Group          string
	Assigned       int
	Completed      int
	CompletionRate int
	RateApplicable bool
}

// Resolver fetches the athletes of every coached group concurrently.
type Resolver struct {
	source DataSource
	limit  int
}

func NewResolver(source DataSource, concurrency int) *Resolver {
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}
	return &Resolver{
		source: source,
		limit:  concurrency,
	}
}

// Resolve returns one row per (group, athlete), ordered by group and then
// by member order. The first failed lookup cancels the rest.
func (r *Resolver) Resolve(ctx context.Context, coachID string, groups []Group) ([]AthleteRow, error) {
	type job struct {
		group     Group
		athleteID string
	}

	var jobs []job
	for _, g := range groups {
		for _, athleteID := range Athletes(coachID, g) {
			jobs = append(jobs, job{group: g, athleteID: athleteID})
		}
	}

	rows := make([]AthleteRow, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.limit)

	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			name, err := r.source.AthleteName(egCtx, j.athleteID)
			if err != nil {
				return fmt.Errorf("athlete %s: %w", j.athleteID, err)
			}
			if name == "" {
				name = UnknownAthleteName
			}

			assignments, err := r.source.Assignments(egCtx, j.athleteID, j.group.ID)
			if err != nil {
				return fmt.Errorf("assignments of %s in %s: %w", j.athleteID, j.group.ID, err)
			}

			assigned, completed := CountCompleted(assignments)
			rate, ok := CompletionRate(assigned, completed)
			rows[i] = AthleteRow{
				Name:           name,
				Group:          j.group.Name,
				Assigned:       assigned,
				Completed:      completed,
				CompletionRate: rate,
				RateApplicable: ok,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
