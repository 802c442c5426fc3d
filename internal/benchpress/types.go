package benchpress

import (
	"github.com/2beens/trainlytics/internal/analytics/coach"
	"github.com/2beens/trainlytics/internal/analytics/strength"
)

type Profile struct {
	DisplayName    string  `json:"displayName"`
	Username       string  `json:"username"`
	MemberSince    *string `json:"memberSince"`
	TotalWorkouts  int     `json:"totalWorkouts"`
	GroupsMember   int     `json:"groupsMember"`
	GroupsCoaching int     `json:"groupsCoaching"`
	IsCoach        bool    `json:"isCoach"`
}

type BodyStats struct {
	User          string  `json:"user"`
	Weight        *string `json:"weight"`
	Height        *string `json:"height"`
	HeightCm      *string `json:"heightCm"`
	BMI           *string `json:"bmi"`
	Age           *int    `json:"age"`
	ActivityLevel *string `json:"activityLevel"`
}

type Streak struct {
	User          string  `json:"user"`
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	TotalDays     int     `json:"totalDays"`
	LastWorkout   *string `json:"lastWorkout,omitempty"`
}

type Consistency struct {
	User            string `json:"user"`
	Period          string `json:"period"`
	TotalWorkouts   int    `json:"totalWorkouts"`
	UniqueDays      int    `json:"uniqueDays"`
	WorkoutsPerWeek string `json:"workoutsPerWeek"`
	Consistency     string `json:"consistency"`
}

type Volume struct {
	User                string `json:"user"`
	Period              string `json:"period"`
	TotalVolume         string `json:"totalVolume"`
	TotalSets           int    `json:"totalSets"`
	TotalReps           int    `json:"totalReps"`
	AvgVolumePerWorkout string `json:"avgVolumePerWorkout"`
}

type TopExercises struct {
	User           string                   `json:"user"`
	TotalExercises int                      `json:"totalExercises"`
	TopByFrequency []strength.ExerciseUsage `json:"topByFrequency"`
}

type PRHistory struct {
	User      string                          `json:"user"`
	Exercises map[string]strength.Progression `json:"exercises"`
}

type ExerciseSummary struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
}

type RecentWorkout struct {
	Name      string            `json:"name"`
	Date      *string           `json:"date"`
	Exercises []ExerciseSummary `json:"exercises"`
}

type RecentWorkouts struct {
	User         string          `json:"user"`
	WorkoutCount int             `json:"workoutCount"`
	Workouts     []RecentWorkout `json:"workouts"`
}

type CoachSummary struct {
	Coach         string               `json:"coach"`
	Username      string               `json:"username,omitempty"`
	TotalGroups   int                  `json:"totalGroups,omitempty"`
	TotalAthletes int                  `json:"totalAthletes,omitempty"`
	Groups        []coach.GroupSummary `json:"groups,omitempty"`
	Message       string               `json:"message,omitempty"`
}

type AthleteProgressRow struct {
	Name              string `json:"name"`
	Group             string `json:"group"`
	WorkoutsAssigned  int    `json:"workoutsAssigned"`
	WorkoutsCompleted int    `json:"workoutsCompleted"`
	CompletionRate    string `json:"completionRate"`
}

type AthleteProgress struct {
	Coach    string               `json:"coach"`
	Athletes []AthleteProgressRow `json:"athletes"`
}

type MaxLifts struct {
	User  string         `json:"user"`
	Lifts []strength.Max `json:"lifts"`
}

type GoalView struct {
	Lift       string  `json:"lift"`
	Type       string  `json:"type"`
	Start      float64 `json:"start"`
	Current    float64 `json:"current"`
	Target     float64 `json:"target"`
	Progress   string  `json:"progress"`
	Status     string  `json:"status"`
	TargetDate *string `json:"targetDate"`
}

type Goals struct {
	User        string     `json:"user"`
	ActiveGoals int        `json:"activeGoals"`
	Goals       []GoalView `json:"goals"`
}
