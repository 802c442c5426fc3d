package ingest

import (
	"encoding/json"

	"github.com/2beens/trainlytics/internal/analytics/goals"
	"github.com/2beens/trainlytics/internal/store"

	log "github.com/sirupsen/logrus"
)

type goalDocument struct {
	Lift       string     `json:"lift"`
	MetricType string     `json:"metricType"`
	TargetDate *Timestamp `json:"targetDate"`

	StartValue    Value `json:"startValue"`
	StartWeight   Value `json:"startWeight"`
	CurrentValue  Value `json:"currentValue"`
	CurrentWeight Value `json:"currentWeight"`
	TargetValue   Value `json:"targetValue"`
	TargetWeight  Value `json:"targetWeight"`
}

// Goal maps a stored goal to the canonical schema. Each value is read
// from the generic field first and the legacy weight field second. A
// missing current value means no progress yet, so it falls back to start.
func Goal(rec store.GoalRecord) goals.Goal {
	var doc goalDocument
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			log.Warnf("ingest goal %s: unmarshal goal document: %s", rec.ID, err)
		}
	}

	start := FirstFloat(doc.StartValue, doc.StartWeight)
	current := FirstFloat(doc.CurrentValue, doc.CurrentWeight)
	if current == 0 {
		current = start
	}

	metricType := doc.MetricType
	if metricType == "" {
		metricType = goals.DefaultMetricType
	}

	return goals.Goal{
		ID:         rec.ID,
		Lift:       doc.Lift,
		MetricType: metricType,
		Start:      start,
		Current:    current,
		Target:     FirstFloat(doc.TargetValue, doc.TargetWeight),
		Status:     goals.Status(rec.Status),
		TargetDate: doc.TargetDate.Ptr(),
	}
}

func Goals(recs []store.GoalRecord) []goals.Goal {
	all := make([]goals.Goal, 0, len(recs))
	for _, rec := range recs {
		all = append(all, Goal(rec))
	}
	return all
}
