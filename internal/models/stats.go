package models

import "time"

// Contributor is a user enriched with ranking stats for the
// top-contributors board. Stats are computed on read, never stored.
type Contributor struct {
	User
	TotalPosts int `json:"totalPosts"`
	TotalLikes int `json:"totalLikes"`
	TotalViews int `json:"totalViews"`
	Rank       int `json:"rank"`
}

// CommunityStats holds display aggregates for the community dashboard.
// ActiveMembers and MonthlyPosts are heuristic estimates, not measured
// quantities; TotalPosts and TotalMembers are exact counts.
type CommunityStats struct {
	ActiveMembers int    `json:"activeMembers"`
	MonthlyPosts  int    `json:"monthlyPosts"`
	CO2Saved      string `json:"co2Saved"`
	TotalPosts    int    `json:"totalPosts"`
	TotalMembers  int    `json:"totalMembers"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Type      string    `json:"type"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Target    string    `json:"target"`
	Timestamp time.Time `json:"timestamp"`
}
