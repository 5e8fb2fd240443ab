package assessors

import "risk-engine/internal/model"

var registry = map[model.InsuranceType]Assessor{
	model.InsuranceAuto:     &AutoAssessor{},
	model.InsuranceProperty: &PropertyAssessor{},
	model.InsuranceCyber:    &CyberAssessor{},
	model.InsuranceHealth:   &HealthAssessor{},
	model.InsuranceLife:     &LifeAssessor{},
}

func Get(t model.InsuranceType) (Assessor, bool) {
	a, ok := registry[t]
	return a, ok
}
