package domain

// AnalyticsSummary is the dashboard snapshot: entity totals plus activity
// within a recent window (the service uses the last 30 days).
type AnalyticsSummary struct {
	TotalProjects     int
	TotalSkills       int
	TotalExperiences  int
	TotalContacts     int
	TotalTestimonials int

	RecentContacts int
	RecentProjects int
}
