package eforms

import "gppgateway/internal/notice/models"

const (
	listEnvironmentalImpact  = "environmental-impact"
	listStrategicProcurement = "strategic-procurement"

	// strategicEnvironmental is the strategic-procurement code marking a lot
	// as pursuing environmental goals.
	strategicEnvironmental = "env-imp"
)

// catalog holds the environmental-impact codes a criterion may name, in the
// order analysis reports them.
var catalog = []models.Criterion{
	{ID: "biodiv-eco", Name: "Biodiversity protection and restoration of ecosystems"},
	{ID: "circ-econ", Name: "Transition to a circular economy"},
	{ID: "clim-adapt", Name: "Climate change adaptation"},
	{ID: "clim-change-mitig", Name: "Climate change mitigation"},
	{ID: "pollu-prev", Name: "Pollution prevention and control"},
	{ID: "water-mar", Name: "Sustainable use and protection of water and marine resources"},
}

func lookupCriterion(id string) (models.Criterion, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return models.Criterion{}, false
}
