package ingest

import (
	"encoding/json"

	"github.com/2beens/trainlytics/internal/analytics/body"
	"github.com/2beens/trainlytics/internal/store"

	log "github.com/sirupsen/logrus"
)

type userDocument struct {
	Weight        Value  `json:"weight"`
	HeightFeet    Value  `json:"heightFeet"`
	HeightInches  Value  `json:"heightInches"`
	Age           Value  `json:"age"`
	ActivityLevel string `json:"activityLevel"`
}

// BodyStats reads the self-reported measurements from a user document.
func BodyStats(rec store.UserRecord) body.Stats {
	var doc userDocument
	if len(rec.Data) > 0 {
		if err := json.Unmarshal(rec.Data, &doc); err != nil {
			log.Warnf("ingest user %s: unmarshal user document: %s", rec.ID, err)
		}
	}

	return body.Stats{
		WeightLbs:     FirstFloat(doc.Weight),
		HeightFeet:    FirstInt(doc.HeightFeet),
		HeightInches:  FirstInt(doc.HeightInches),
		Age:           FirstInt(doc.Age),
		ActivityLevel: doc.ActivityLevel,
	}
}
