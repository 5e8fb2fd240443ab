package scoring

import "risk-engine/internal/model"

const (
	propertyBasePremium = 25000
	floodZoneLoading    = 1.5
)

var locationMultiplier = map[model.LocationRisk]float64{
	model.LocationLow:    1.0,
	model.LocationMedium: 1.3,
	model.LocationHigh:   1.8,
}

var constructionMultiplier = map[model.ConstructionType]float64{
	model.ConstructionConcrete: 0.9,
	model.ConstructionBrick:    1.0,
	model.ConstructionWood:     1.4,
	model.ConstructionOther:    1.2,
}

// Property scores a building. Unrecognized location or construction values
// add no score penalty and price at the neutral multiplier of 1.0.
func Property(in model.PropertyRiskInput) model.RiskAssessmentResult {
	raw := 10 - 0.1*float64(in.PropertyAge)
	switch in.LocationRisk {
	case model.LocationHigh:
		raw -= 2
	case model.LocationMedium:
		raw -= 1
	}
	if in.ConstructionType == model.ConstructionWood {
		raw -= 1
	}
	if in.FloodZone {
		raw -= 2
	}
	score := finalizeScore(raw)

	premium := propertyBasePremium *
		lookup(locationMultiplier, in.LocationRisk, 1.0) *
		lookup(constructionMultiplier, in.ConstructionType, 1.0)
	if in.FloodZone {
		premium *= floodZoneLoading
	}

	return result(model.InsuranceProperty, score, premium)
}
