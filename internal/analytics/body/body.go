package body

import "math"

// Stats are the self-reported body measurements of a user. Zero values
// mean the measurement is missing.
type Stats struct {
	WeightLbs     float64
	HeightFeet    int
	HeightInches  int
	Age           int
	ActivityLevel string
}

// TotalHeightInches returns the total height in inches. A height is only known
// when the feet part is set.
func (s Stats) TotalHeightInches() (int, bool) {
	if s.HeightFeet <= 0 {
		return 0, false
	}
	return s.HeightFeet*12 + s.HeightInches, true
}

func (s Stats) HeightCm() (int, bool) {
	in, ok := s.TotalHeightInches()
	if !ok {
		return 0, false
	}
	return int(math.Round(float64(in) * 2.54)), true
}

// BMI uses the imperial formula weight / height² * 703, rounded to one
// decimal place.
func (s Stats) BMI() (float64, bool) {
	in, ok := s.TotalHeightInches()
	if !ok || s.WeightLbs <= 0 {
		return 0, false
	}
	bmi := s.WeightLbs / float64(in*in) * 703
	return math.Round(bmi*10) / 10, true
}
