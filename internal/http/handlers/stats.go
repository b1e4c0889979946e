package handlers

import (
	"net/http"
)

// StatsSummary merges store-derived figures with the configured presentation
// constants for the dashboard.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Store.AggregateStats(r.Context())
	if err != nil {
		a.storeError(w, err, "stats")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"childrenHelped":  stats.ChildrenHelped,
		"citiesCovered":   a.Cfg.CitiesCovered,
		"yearsOperation":  a.Cfg.YearsOperation,
		"totalVolunteers": stats.TotalVolunteers,
		"totalDonations":  stats.TotalDonations,
	})
}
