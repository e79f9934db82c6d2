package models

// ContributionDay is a single day in the GitHub contribution calendar.
type ContributionDay struct {
	ContributionCount int    `json:"contributionCount"`
	Date              string `json:"date"`
}

// ContributionWeek holds up to 7 days; a partial first or last week has fewer.
type ContributionWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionCalendar mirrors the shape returned by the GitHub GraphQL API.
// TotalContributions is taken as reported upstream and is never re-derived
// from the week data.
type ContributionCalendar struct {
	TotalContributions int                `json:"totalContributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}

// EmptyCalendar is what callers get when no data is available from any tier.
func EmptyCalendar() ContributionCalendar {
	return ContributionCalendar{TotalContributions: 0, Weeks: []ContributionWeek{}}
}

// CacheEntry is the unit stored in the contribution cache. Entries are
// replaced wholesale, never mutated in place.
type CacheEntry struct {
	Data      ContributionCalendar `json:"data"`
	Timestamp int64                `json:"timestamp"` // milliseconds since epoch
}

// MaxDailyCount returns the highest single-day contribution count in the
// calendar, used to scale the heatmap.
func (c ContributionCalendar) MaxDailyCount() int {
	max := 0
	for _, week := range c.Weeks {
		for _, day := range week.ContributionDays {
			if day.ContributionCount > max {
				max = day.ContributionCount
			}
		}
	}
	return max
}
