package benchpress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainlytics/internal/analytics/coach"
	"github.com/2beens/trainlytics/internal/analytics/events"
	"github.com/2beens/trainlytics/internal/analytics/goals"
	"github.com/2beens/trainlytics/internal/analytics/streak"
	"github.com/2beens/trainlytics/internal/analytics/strength"
	"github.com/2beens/trainlytics/internal/ingest"
	"github.com/2beens/trainlytics/internal/store"
	"github.com/2beens/trainlytics/internal/telemetry/metrics"
	"github.com/2beens/trainlytics/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrCoachNotFound = errors.New("coach not found")
)

const (
	DefaultConsistencyDays = 90
	DefaultVolumeDays      = 30
	DefaultTopExercises    = 10
	DefaultRecentWorkouts  = 5
)

type usersRepo interface {
	ByUsername(ctx context.Context, username string) (*store.UserRecord, error)
	ByID(ctx context.Context, id string) (*store.UserRecord, error)
}

type workoutsRepo interface {
	Personal(ctx context.Context, filter store.WorkoutFilter) ([]store.WorkoutRecord, error)
	Group(ctx context.Context, filter store.WorkoutFilter) ([]store.WorkoutRecord, error)
	CountCompleted(ctx context.Context, userID string) (personal, group int, err error)
}

type groupsRepo interface {
	WithMember(ctx context.Context, userID string) ([]store.GroupRecord, error)
	WithAdmin(ctx context.Context, userID string) ([]store.GroupRecord, error)
}

type goalsRepo interface {
	ForUser(ctx context.Context, userID string, includeCompleted bool) ([]store.GoalRecord, error)
}

type ServiceParams struct {
	Users    usersRepo
	Workouts workoutsRepo
	Groups   groupsRepo
	Goals    goalsRepo

	// CoachFetchConcurrency bounds the athlete lookups of one coach request
	CoachFetchConcurrency int
	Metrics               *metrics.Manager
	Now                   func() time.Time
}

type Service struct {
	users    usersRepo
	workouts workoutsRepo
	groups   groupsRepo
	goals    goalsRepo

	resolver *coach.Resolver
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewService(params ServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}

	s := &Service{
		users:    params.Users,
		workouts: params.Workouts,
		groups:   params.Groups,
		goals:    params.Goals,
		metrics:  params.Metrics,
		now:      now,
	}
	s.resolver = coach.NewResolver(&athleteSource{users: params.Users, workouts: params.Workouts}, params.CoachFetchConcurrency)
	return s
}

func (s *Service) Profile(ctx context.Context, username string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.profile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("profile")()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	personal, group, err := s.workouts.CountCompleted(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count workouts: %w", err)
	}

	memberOf, err := s.groups.WithMember(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("member groups: %w", err)
	}
	coaching, err := s.groups.WithAdmin(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("coached groups: %w", err)
	}

	return &Profile{
		DisplayName:    user.DisplayName,
		Username:       user.Username,
		MemberSince:    formatDay(user.CreatedAt),
		TotalWorkouts:  personal + group,
		GroupsMember:   len(memberOf),
		GroupsCoaching: len(coaching),
		IsCoach:        len(coaching) > 0,
	}, nil
}

func (s *Service) BodyStats(ctx context.Context, username string) (_ *BodyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.body")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	stats := ingest.BodyStats(*user)
	resp := &BodyStats{User: user.DisplayName}

	if stats.WeightLbs != 0 {
		resp.Weight = strPtr(formatFloat(stats.WeightLbs) + " lbs")
	}
	if stats.HeightFeet > 0 {
		resp.Height = strPtr(fmt.Sprintf(`%d'%d"`, stats.HeightFeet, stats.HeightInches))
	}
	if cm, ok := stats.HeightCm(); ok && cm > 0 {
		resp.HeightCm = strPtr(fmt.Sprintf("%d cm", cm))
	}
	if bmi, ok := stats.BMI(); ok {
		resp.BMI = strPtr(fmt.Sprintf("%.1f", bmi))
	}
	if stats.Age != 0 {
		age := stats.Age
		resp.Age = &age
	}
	if stats.ActivityLevel != "" {
		resp.ActivityLevel = strPtr(stats.ActivityLevel)
	}

	return resp, nil
}

func (s *Service) Streak(ctx context.Context, username string) (_ *Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.streak")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("streak")()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	workouts, err := s.completedWorkouts(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}

	result := streak.Calculate(events.DistinctDays(workouts), s.now())
	return &Streak{
		User:          user.DisplayName,
		CurrentStreak: result.CurrentStreak,
		LongestStreak: result.LongestStreak,
		TotalDays:     result.TotalDays,
		LastWorkout:   formatDay(result.MostRecent),
	}, nil
}

func (s *Service) Consistency(ctx context.Context, username string, days int) (_ *Consistency, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.consistency")
	span.SetAttributes(attribute.Int("days", days))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("consistency")()

	if days <= 0 {
		days = DefaultConsistencyDays
	}

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -days)
	workouts, err := s.completedWorkouts(ctx, user.ID, &since)
	if err != nil {
		return nil, err
	}

	c := streak.CalculateConsistency(len(workouts), events.DistinctDays(workouts), days)
	return &Consistency{
		User:            user.DisplayName,
		Period:          formatPeriod(days),
		TotalWorkouts:   c.TotalWorkouts,
		UniqueDays:      c.UniqueDays,
		WorkoutsPerWeek: fmt.Sprintf("%.1f", c.WorkoutsPerWeek),
		Consistency:     formatPercent(c.Percent),
	}, nil
}

func (s *Service) TrainingVolume(ctx context.Context, username string, days int) (_ *Volume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.volume")
	span.SetAttributes(attribute.Int("days", days))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("volume")()

	if days <= 0 {
		days = DefaultVolumeDays
	}

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -days)
	workouts, err := s.completedWorkouts(ctx, user.ID, &since)
	if err != nil {
		return nil, err
	}

	v := strength.Volume(workouts)
	return &Volume{
		User:                user.DisplayName,
		Period:              formatPeriod(days),
		TotalVolume:         formatLbs(v.TotalVolume),
		TotalSets:           v.TotalSets,
		TotalReps:           v.TotalReps,
		AvgVolumePerWorkout: formatLbs(v.AvgPerWorkout),
	}, nil
}

func (s *Service) TopExercises(ctx context.Context, username string, limit int) (_ *TopExercises, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.exercises")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("top_exercises")()

	if limit <= 0 {
		limit = DefaultTopExercises
	}

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	workouts, err := s.completedWorkouts(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}

	top := strength.TopExercisesByFrequency(workouts, limit)
	return &TopExercises{
		User:           user.DisplayName,
		TotalExercises: top.TotalExercises,
		TopByFrequency: top.ByFrequency,
	}, nil
}

func (s *Service) PRHistory(ctx context.Context, username, exercise string) (_ *PRHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.prs")
	span.SetAttributes(attribute.String("exercise", exercise))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("pr_history")()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	workouts, err := s.completedWorkouts(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}

	return &PRHistory{
		User:      user.DisplayName,
		Exercises: strength.PRHistory(workouts, exercise),
	}, nil
}

// RecentWorkouts lists the latest completed personal workouts.
func (s *Service) RecentWorkouts(ctx context.Context, username string, limit int) (_ *RecentWorkouts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.workouts")
	span.SetAttributes(attribute.Int("limit", limit))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 {
		limit = DefaultRecentWorkouts
	}

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	recs, err := s.workouts.Personal(ctx, store.WorkoutFilter{
		OwnerID:     user.ID,
		Status:      store.StatusCompleted,
		Limit:       limit,
		NewestFirst: true,
	})
	if err != nil {
		return nil, fmt.Errorf("personal workouts: %w", err)
	}

	resp := &RecentWorkouts{
		User:     user.DisplayName,
		Workouts: make([]RecentWorkout, 0, len(recs)),
	}
	for _, e := range ingest.Workouts(recs) {
		w := RecentWorkout{
			Name:      e.Workout.Name,
			Exercises: make([]ExerciseSummary, 0, len(e.Workout.Exercises)),
		}
		if e.Dated() {
			w.Date = strPtr(events.FormatDay(e.OccurredAt))
		}
		for _, ex := range e.Workout.Exercises {
			w.Exercises = append(w.Exercises, ExerciseSummary{Name: ex.Name, Sets: len(ex.Sets)})
		}
		resp.Workouts = append(resp.Workouts, w)
	}
	resp.WorkoutCount = len(resp.Workouts)

	return resp, nil
}

func (s *Service) CoachSummary(ctx context.Context, coachUsername string) (_ *CoachSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.coach")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.findUser(ctx, coachUsername, ErrCoachNotFound)
	if err != nil {
		return nil, err
	}

	recs, err := s.groups.WithAdmin(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("coached groups: %w", err)
	}
	if len(recs) == 0 {
		return &CoachSummary{
			Coach:   user.DisplayName,
			Message: "Not currently coaching any groups",
		}, nil
	}

	summary := coach.Summarize(user.ID, ingest.Groups(recs))
	return &CoachSummary{
		Coach:         user.DisplayName,
		Username:      user.Username,
		TotalGroups:   summary.TotalGroups,
		TotalAthletes: summary.TotalAthletes,
		Groups:        summary.Groups,
	}, nil
}

func (s *Service) AthleteProgress(ctx context.Context, coachUsername string) (_ *AthleteProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.athletes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("athlete_progress")()

	user, err := s.findUser(ctx, coachUsername, ErrCoachNotFound)
	if err != nil {
		return nil, err
	}

	recs, err := s.groups.WithAdmin(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("coached groups: %w", err)
	}

	rows, err := s.resolver.Resolve(ctx, user.ID, ingest.Groups(recs))
	if err != nil {
		return nil, fmt.Errorf("resolve athletes: %w", err)
	}

	resp := &AthleteProgress{
		Coach:    user.DisplayName,
		Athletes: make([]AthleteProgressRow, 0, len(rows)),
	}
	for _, row := range rows {
		rate := "N/A"
		if row.RateApplicable {
			rate = formatPercent(row.CompletionRate)
		}
		resp.Athletes = append(resp.Athletes, AthleteProgressRow{
			Name:              row.Name,
			Group:             row.Group,
			WorkoutsAssigned:  row.Assigned,
			WorkoutsCompleted: row.Completed,
			CompletionRate:    rate,
		})
	}

	return resp, nil
}

func (s *Service) MaxLifts(ctx context.Context, username string) (_ *MaxLifts, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.maxes")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	defer s.observe("max_lifts")()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	workouts, err := s.completedWorkouts(ctx, user.ID, nil)
	if err != nil {
		return nil, err
	}

	lifts := strength.CurrentMaxes(workouts)
	if lifts == nil {
		lifts = []strength.Max{}
	}
	return &MaxLifts{
		User:  user.DisplayName,
		Lifts: lifts,
	}, nil
}

func (s *Service) Goals(ctx context.Context, username string, includeCompleted bool) (_ *Goals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.benchpress.goals")
	span.SetAttributes(attribute.Bool("include-completed", includeCompleted))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.findUser(ctx, username, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	recs, err := s.goals.ForUser(ctx, user.ID, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("goals: %w", err)
	}

	summary := goals.Summarize(ingest.Goals(recs))
	resp := &Goals{
		User:        user.DisplayName,
		ActiveGoals: summary.ActiveGoals,
		Goals:       make([]GoalView, 0, len(summary.Goals)),
	}
	for _, g := range summary.Goals {
		resp.Goals = append(resp.Goals, GoalView{
			Lift:       g.Lift,
			Type:       g.MetricType,
			Start:      g.Start,
			Current:    g.Current,
			Target:     g.Target,
			Progress:   formatPercent(g.Progress),
			Status:     string(g.Status),
			TargetDate: formatDay(g.TargetDate),
		})
	}

	return resp, nil
}

func (s *Service) findUser(ctx context.Context, username string, notFound error) (*store.UserRecord, error) {
	user, err := s.users.ByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}
	return user, nil
}

// completedWorkouts fetches the completed personal and group workouts of
// a user as one batch of events.
func (s *Service) completedWorkouts(ctx context.Context, userID string, since *time.Time) ([]events.Event, error) {
	filter := store.WorkoutFilter{
		OwnerID: userID,
		Status:  store.StatusCompleted,
		Since:   since,
	}

	personal, err := s.workouts.Personal(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("personal workouts: %w", err)
	}
	group, err := s.workouts.Group(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("group workouts: %w", err)
	}

	return ingest.Workouts(personal, group), nil
}

func (s *Service) observe(operation string) func() {
	if s.metrics == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		s.metrics.HistogramComputeDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// athleteSource adapts the repos to the coach resolver.
type athleteSource struct {
	users    usersRepo
	workouts workoutsRepo
}

func (a *athleteSource) AthleteName(ctx context.Context, athleteID string) (string, error) {
	user, err := a.users.ByID(ctx, athleteID)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.DisplayName, nil
}

func (a *athleteSource) Assignments(ctx context.Context, athleteID, groupID string) ([]coach.Assignment, error) {
	recs, err := a.workouts.Group(ctx, store.WorkoutFilter{OwnerID: athleteID, GroupID: groupID})
	if err != nil {
		return nil, err
	}
	return ingest.Assignments(recs), nil
}
