// Package report computes the analytics served to the business
// intelligence screen: revenue trends, conversion funnel, win rate,
// source breakdowns and team performance.
package report

import (
	"math/rand"
	"time"

	"simplecrm/internal/domain"
)

// Range selects the reporting window.
type Range string

const (
	RangeWeek    Range = "Week"
	RangeMonth   Range = "Month"
	RangeQuarter Range = "Quarter"
	RangeFiscal  Range = "Fiscal"
)

func (r Range) cutoff(now time.Time) time.Time {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7)
	case RangeQuarter:
		return now.AddDate(0, -3, 0)
	case RangeFiscal:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TeamMember struct {
	Name     string  `json:"name"`
	WonDeals int     `json:"count"`
	WonValue float64 `json:"value"`
}

type HeatmapCell struct {
	Day        int     `json:"day"`
	Engagement float64 `json:"engagement"`
}

// Report is the full analytics payload for one reporting window.
type Report struct {
	Range          Range         `json:"range"`
	LeadsCount     int           `json:"leadsCount"`
	CustomersCount int           `json:"customersCount"`
	WonValue       float64       `json:"wonValue"`
	LostValue      float64       `json:"lostValue"`
	PipelineValue  float64       `json:"pipelineValue"`
	WinRate        int           `json:"winRate"`
	MonthlyRevenue []NamedValue  `json:"monthlyRevenue"`
	LeadSources    []NamedValue  `json:"leadSources"`
	Funnel         []NamedValue  `json:"funnel"`
	ActivityByType []NamedValue  `json:"activityByType"`
	Team           []TeamMember  `json:"team"`
	Heatmap        []HeatmapCell `json:"heatmap"`
}

// Build computes the report over the given window. Funnel, win rate,
// revenue trend and team performance are computed over all records;
// counts and breakdowns respect the window cutoff.
func Build(rng Range, leads []domain.Lead, customers []domain.Customer, deals []domain.Deal, activities []domain.Activity) Report {
	now := time.Now()
	cutoff := rng.cutoff(now)

	r := Report{Range: rng}

	for _, l := range leads {
		if !l.CreatedAt.Before(cutoff) {
			r.LeadsCount++
		}
	}
	for _, c := range customers {
		if !c.CustomerSince.Before(cutoff) {
			r.CustomersCount++
		}
	}

	won, lost := 0, 0
	for _, d := range deals {
		switch d.Stage {
		case domain.StageWon:
			won++
			r.WonValue += d.Value
		case domain.StageLost:
			lost++
			r.LostValue += d.Value
		default:
			r.PipelineValue += d.Value
		}
	}
	if won+lost > 0 {
		r.WinRate = int(float64(won)/float64(won+lost)*100 + 0.5)
	}

	r.MonthlyRevenue = monthlyRevenue(deals, now.Year())
	r.LeadSources = leadSources(leads, cutoff)
	r.Funnel = funnel(leads, customers)
	r.ActivityByType = activityByType(activities, cutoff)
	r.Team = teamPerformance(deals)
	r.Heatmap = engagementHeatmap()
	return r
}

func monthlyRevenue(deals []domain.Deal, year int) []NamedValue {
	out := make([]NamedValue, 12)
	for i := range out {
		out[i] = NamedValue{Name: time.Month(i + 1).String()[:3]}
	}
	for _, d := range deals {
		if d.Stage != domain.StageWon || d.ActualClose == nil {
			continue
		}
		if d.ActualClose.Year() == year {
			out[int(d.ActualClose.Month())-1].Value += d.Value
		}
	}
	return out
}

func leadSources(leads []domain.Lead, cutoff time.Time) []NamedValue {
	counts := make(map[string]float64)
	var order []string
	for _, l := range leads {
		if l.CreatedAt.Before(cutoff) {
			continue
		}
		if _, ok := counts[l.Source]; !ok {
			order = append(order, l.Source)
		}
		counts[l.Source]++
	}
	out := make([]NamedValue, 0, len(order))
	for _, name := range order {
		out = append(out, NamedValue{Name: name, Value: counts[name]})
	}
	return out
}

func funnel(leads []domain.Lead, customers []domain.Customer) []NamedValue {
	engaged, qualified := 0, 0
	for _, l := range leads {
		if l.Status != domain.LeadStatusNew {
			engaged++
		}
		if l.Status == domain.LeadStatusQualified {
			qualified++
		}
	}
	return []NamedValue{
		{Name: "Total Leads", Value: float64(len(leads))},
		{Name: "Engaged", Value: float64(engaged)},
		{Name: "Qualified", Value: float64(qualified)},
		{Name: "Customers", Value: float64(len(customers))},
	}
}

func activityByType(activities []domain.Activity, cutoff time.Time) []NamedValue {
	counts := make(map[string]float64)
	var order []string
	for _, a := range activities {
		if a.Timestamp.Before(cutoff) {
			continue
		}
		key := string(a.Type)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	out := make([]NamedValue, 0, len(order))
	for _, name := range order {
		out = append(out, NamedValue{Name: name, Value: counts[name]})
	}
	return out
}

func teamPerformance(deals []domain.Deal) []TeamMember {
	stats := make(map[string]*TeamMember)
	var order []string
	for _, d := range deals {
		if d.AssignedTo == "" {
			continue
		}
		m, ok := stats[d.AssignedTo]
		if !ok {
			m = &TeamMember{Name: d.AssignedTo}
			stats[d.AssignedTo] = m
			order = append(order, d.AssignedTo)
		}
		if d.Stage == domain.StageWon {
			m.WonDeals++
			m.WonValue += d.Value
		}
	}
	out := make([]TeamMember, 0, len(order))
	for _, name := range order {
		out = append(out, *stats[name])
	}
	return out
}

// engagementHeatmap produces the decorative 28-day activity grid shown
// under the report. Weekends are kept visibly quieter.
func engagementHeatmap() []HeatmapCell {
	cells := make([]HeatmapCell, 28)
	for i := range cells {
		base := 0.2
		if i%7 == 0 || i%7 == 6 {
			base = 0.05
		}
		v := base + rand.Float64()*0.8
		if v > 1 {
			v = 1
		}
		cells[i] = HeatmapCell{Day: i + 1, Engagement: v}
	}
	return cells
}
