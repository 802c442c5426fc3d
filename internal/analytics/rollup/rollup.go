package rollup

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// UnknownKey is the bucket for items without a value for the dimension.
const UnknownKey = "unknown"

// CurrencyPlaces is the precision currency sums are rounded to.
const CurrencyPlaces = 6

// Dimension describes how to group items. Key returns "" when the item
// has no value for the dimension.
type Dimension[T any] struct {
	Name string
	Key  func(T) string
}

// Measure extracts the numeric values summed per group.
type Measure[T any] func(T) Sample

type Sample struct {
	Cost   float64
	Tokens int
}

type Totals struct {
	Events int     `json:"events"`
	Cost   float64 `json:"cost"`
	Tokens int     `json:"tokens"`
}

type Group struct {
	Key string `json:"key"`
	Totals
}

type bucket struct {
	events int
	cost   decimal.Decimal
	tokens int
}

// Rollup is the result of grouping one batch along one dimension.
// Groups keep the order their keys were first encountered in.
type Rollup struct {
	Dimension string
	order     []string
	buckets   map[string]*bucket
}

// Aggregate groups items along dim in a single pass, summing measure per
// group. A nil measure only counts events.
func Aggregate[T any](items []T, dim Dimension[T], measure Measure[T]) *Rollup {
	r := &Rollup{
		Dimension: dim.Name,
		buckets:   make(map[string]*bucket),
	}

	for _, item := range items {
		key := dim.Key(item)
		if key == "" {
			key = UnknownKey
		}

		b, ok := r.buckets[key]
		if !ok {
			b = &bucket{}
			r.buckets[key] = b
			r.order = append(r.order, key)
		}

		b.events++
		if measure != nil {
			s := measure(item)
			if !math.IsNaN(s.Cost) && !math.IsInf(s.Cost, 0) {
				b.cost = b.cost.Add(decimal.NewFromFloat(s.Cost))
			}
			b.tokens += s.Tokens
		}
	}

	return r
}

// SortByEvents orders groups by event count, descending. Ties keep
// insertion order.
func (r *Rollup) SortByEvents() *Rollup {
	sort.SliceStable(r.order, func(i, j int) bool {
		return r.buckets[r.order[i]].events > r.buckets[r.order[j]].events
	})
	return r
}

func (r *Rollup) Len() int {
	return len(r.order)
}

func (r *Rollup) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

func (r *Rollup) Get(key string) (Totals, bool) {
	b, ok := r.buckets[key]
	if !ok {
		return Totals{}, false
	}
	return b.totals(), true
}

// Groups returns all groups in the current order, with rounded costs.
func (r *Rollup) Groups() []Group {
	groups := make([]Group, 0, len(r.order))
	for _, key := range r.order {
		groups = append(groups, Group{
			Key:    key,
			Totals: r.buckets[key].totals(),
		})
	}
	return groups
}

// Top returns the first group in the current order.
func (r *Rollup) Top() (Group, bool) {
	if len(r.order) == 0 {
		return Group{}, false
	}
	key := r.order[0]
	return Group{Key: key, Totals: r.buckets[key].totals()}, true
}

// Totals sums all groups. The cost is summed before rounding.
func (r *Rollup) Totals() Totals {
	var all bucket
	for _, b := range r.buckets {
		all.events += b.events
		all.cost = all.cost.Add(b.cost)
		all.tokens += b.tokens
	}
	return all.totals()
}

func (b *bucket) totals() Totals {
	return Totals{
		Events: b.events,
		Cost:   RoundCurrency(b.cost),
		Tokens: b.tokens,
	}
}

// RoundCurrency rounds to CurrencyPlaces, half away from zero.
func RoundCurrency(d decimal.Decimal) float64 {
	return d.Round(CurrencyPlaces).InexactFloat64()
}

// RoundCurrencyFloat is RoundCurrency for a plain float sum.
func RoundCurrencyFloat(f float64) float64 {
	return RoundCurrency(decimal.NewFromFloat(f))
}
