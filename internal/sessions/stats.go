package sessions

import (
	"math"
	"sort"
	"time"

	"github.com/balkashynov/pokerlog/internal/models"
)

// NotAvailable is reported for best-performer fields when nothing has been played
const NotAvailable = "N/A"

const (
	weekKeyLayout  = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// Stats is the overall picture across all completed sessions
type Stats struct {
	TotalHours         float64 `json:"totalHours"`
	TotalProfit        float64 `json:"totalProfit"`
	MostProfitableWeek string  `json:"mostProfitableWeek"`
	BestLocation       string  `json:"bestLocation"`
}

// WeeklySummary aggregates one Sunday-to-Saturday week
type WeeklySummary struct {
	Week        string  `json:"week"` // yyyy-mm-dd of the Sunday starting the week
	TotalHours  float64 `json:"totalHours"`
	TotalProfit float64 `json:"totalProfit"`
}

// MonthlySummary aggregates one calendar month
type MonthlySummary struct {
	Month       string  `json:"month"` // yyyy-mm
	TotalHours  float64 `json:"totalHours"`
	TotalProfit float64 `json:"totalProfit"`
}

// LocationStats aggregates every session played at one location
type LocationStats struct {
	Location      string  `json:"location"`
	TotalHours    float64 `json:"totalHours"`
	TotalProfit   float64 `json:"totalProfit"`
	ProfitPerHour float64 `json:"profitPerHour"`
}

// Report bundles every aggregate view of a session collection
type Report struct {
	Stats     Stats            `json:"stats"`
	Weekly    []WeeklySummary  `json:"weekly"`
	Monthly   []MonthlySummary `json:"monthly"`
	Locations []LocationStats  `json:"locations"`
}

// Completed returns the sessions that have ended with a known profit and duration,
// preserving input order
func Completed(sessions []models.PokerSession) []models.PokerSession {
	completed := make([]models.PokerSession, 0, len(sessions))
	for _, s := range sessions {
		if s.IsCompleted() {
			completed = append(completed, s)
		}
	}
	return completed
}

// WeekStart returns the Sunday on or before t's calendar date in loc
func WeekStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(orLocal(loc))
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekKey formats the week bucket of t
func WeekKey(t time.Time, loc *time.Location) string {
	return WeekStart(t, loc).Format(weekKeyLayout)
}

// MonthKey formats the month bucket of t
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(orLocal(loc)).Format(monthKeyLayout)
}

// ComputeStats derives totals and the best week and location
func ComputeStats(sessions []models.PokerSession, loc *time.Location) Stats {
	completed := Completed(sessions)
	stats := Stats{
		MostProfitableWeek: NotAvailable,
		BestLocation:       NotAvailable,
	}
	if len(completed) == 0 {
		return stats
	}

	var minutes int
	for _, s := range completed {
		minutes += *s.Duration
		stats.TotalProfit += *s.Profit
	}
	stats.TotalHours = round1(float64(minutes) / 60)

	// Strict comparison keeps the first-seen bucket on ties
	best := math.Inf(-1)
	groupByWeek(completed, loc).each(func(week string, t totals) {
		if t.profit > best {
			best = t.profit
			stats.MostProfitableWeek = week
		}
	})

	best = math.Inf(-1)
	groupByLocation(completed).each(func(location string, t totals) {
		if rate := t.profitPerHour(); rate > best {
			best = rate
			stats.BestLocation = location
		}
	})

	return stats
}

// SummarizeByWeek returns one entry per week, most recent first
func SummarizeByWeek(sessions []models.PokerSession, loc *time.Location) []WeeklySummary {
	groups := groupByWeek(Completed(sessions), loc)
	summaries := make([]WeeklySummary, 0, groups.len())
	groups.each(func(week string, t totals) {
		summaries = append(summaries, WeeklySummary{
			Week:        week,
			TotalHours:  t.hours(),
			TotalProfit: t.profit,
		})
	})
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Week > summaries[j].Week
	})
	return summaries
}

// SummarizeByMonth returns one entry per calendar month, most recent first
func SummarizeByMonth(sessions []models.PokerSession, loc *time.Location) []MonthlySummary {
	groups := newBuckets()
	for _, s := range Completed(sessions) {
		groups.add(MonthKey(s.StartTime, loc), *s.Profit, *s.Duration)
	}

	summaries := make([]MonthlySummary, 0, groups.len())
	groups.each(func(month string, t totals) {
		summaries = append(summaries, MonthlySummary{
			Month:       month,
			TotalHours:  t.hours(),
			TotalProfit: t.profit,
		})
	})
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Month > summaries[j].Month
	})
	return summaries
}

// SummarizeByLocation returns one entry per location, best hourly rate first.
// Locations are compared verbatim: "Casino" and "casino " are different places.
func SummarizeByLocation(sessions []models.PokerSession) []LocationStats {
	groups := groupByLocation(Completed(sessions))
	summaries := make([]LocationStats, 0, groups.len())
	groups.each(func(location string, t totals) {
		summaries = append(summaries, LocationStats{
			Location:      location,
			TotalHours:    t.hours(),
			TotalProfit:   t.profit,
			ProfitPerHour: round1(t.profitPerHour()),
		})
	})
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].ProfitPerHour > summaries[j].ProfitPerHour
	})
	return summaries
}

// BuildReport computes every aggregate view in one call
func BuildReport(sessions []models.PokerSession, loc *time.Location) Report {
	return Report{
		Stats:     ComputeStats(sessions, loc),
		Weekly:    SummarizeByWeek(sessions, loc),
		Monthly:   SummarizeByMonth(sessions, loc),
		Locations: SummarizeByLocation(sessions),
	}
}

func groupByWeek(completed []models.PokerSession, loc *time.Location) *buckets {
	groups := newBuckets()
	for _, s := range completed {
		groups.add(WeekKey(s.StartTime, loc), *s.Profit, *s.Duration)
	}
	return groups
}

func groupByLocation(completed []models.PokerSession) *buckets {
	groups := newBuckets()
	for _, s := range completed {
		groups.add(s.Location, *s.Profit, *s.Duration)
	}
	return groups
}

func orLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}
