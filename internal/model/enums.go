package model

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput marks an out-of-domain categorical value or a structurally
// invalid input record.
var ErrInvalidInput = errors.New("invalid input")

type InsuranceType string

const (
	InsuranceAuto     InsuranceType = "auto"
	InsuranceProperty InsuranceType = "property"
	InsuranceCyber    InsuranceType = "cyber"
	InsuranceHealth   InsuranceType = "health"
	InsuranceLife     InsuranceType = "life"
)

// AllInsuranceTypes is the fixed display and aggregation order.
var AllInsuranceTypes = []InsuranceType{
	InsuranceAuto,
	InsuranceProperty,
	InsuranceCyber,
	InsuranceHealth,
	InsuranceLife,
}

func (t InsuranceType) Valid() bool {
	switch t {
	case InsuranceAuto, InsuranceProperty, InsuranceCyber, InsuranceHealth, InsuranceLife:
		return true
	}
	return false
}

func ParseInsuranceType(s string) (InsuranceType, error) {
	return parseEnum("insurance_type", s, InsuranceType.Valid)
}

type LocationRisk string

const (
	LocationLow    LocationRisk = "Low"
	LocationMedium LocationRisk = "Medium"
	LocationHigh   LocationRisk = "High"
)

func (l LocationRisk) Valid() bool {
	return l == LocationLow || l == LocationMedium || l == LocationHigh
}

func ParseLocationRisk(s string) (LocationRisk, error) {
	return parseEnum("location_risk", s, LocationRisk.Valid)
}

type ConstructionType string

const (
	ConstructionConcrete ConstructionType = "Concrete"
	ConstructionBrick    ConstructionType = "Brick"
	ConstructionWood     ConstructionType = "Wood"
	ConstructionOther    ConstructionType = "Other"
)

func (c ConstructionType) Valid() bool {
	switch c {
	case ConstructionConcrete, ConstructionBrick, ConstructionWood, ConstructionOther:
		return true
	}
	return false
}

func ParseConstructionType(s string) (ConstructionType, error) {
	return parseEnum("construction_type", s, ConstructionType.Valid)
}

type ExerciseFrequency string

const (
	ExerciseNever     ExerciseFrequency = "Never"
	ExerciseRarely    ExerciseFrequency = "Rarely"
	ExerciseSometimes ExerciseFrequency = "Sometimes"
	ExerciseOften     ExerciseFrequency = "Often"
	ExerciseDaily     ExerciseFrequency = "Daily"
)

func (e ExerciseFrequency) Valid() bool {
	switch e {
	case ExerciseNever, ExerciseRarely, ExerciseSometimes, ExerciseOften, ExerciseDaily:
		return true
	}
	return false
}

func ParseExerciseFrequency(s string) (ExerciseFrequency, error) {
	return parseEnum("exercise_frequency", s, ExerciseFrequency.Valid)
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func ParseGender(s string) (Gender, error) {
	return parseEnum("gender", s, Gender.Valid)
}

type OccupationRisk string

const (
	OccupationLowRisk    OccupationRisk = "Low Risk"
	OccupationMediumRisk OccupationRisk = "Medium Risk"
	OccupationHighRisk   OccupationRisk = "High Risk"
)

func (o OccupationRisk) Valid() bool {
	return o == OccupationLowRisk || o == OccupationMediumRisk || o == OccupationHighRisk
}

func ParseOccupationRisk(s string) (OccupationRisk, error) {
	return parseEnum("occupation_risk", s, OccupationRisk.Valid)
}

type Lifestyle string

const (
	LifestyleHealthy Lifestyle = "Healthy"
	LifestyleAverage Lifestyle = "Average"
	LifestyleRisky   Lifestyle = "Risky"
)

func (l Lifestyle) Valid() bool {
	return l == LifestyleHealthy || l == LifestyleAverage || l == LifestyleRisky
}

func ParseLifestyle(s string) (Lifestyle, error) {
	return parseEnum("lifestyle", s, Lifestyle.Valid)
}

type ClaimType string

const (
	ClaimAuto     ClaimType = "Auto"
	ClaimProperty ClaimType = "Property"
	ClaimCyber    ClaimType = "Cyber"
	ClaimHealth   ClaimType = "Health"
	ClaimLife     ClaimType = "Life"
)

func (c ClaimType) Valid() bool {
	switch c {
	case ClaimAuto, ClaimProperty, ClaimCyber, ClaimHealth, ClaimLife:
		return true
	}
	return false
}

func ParseClaimType(s string) (ClaimType, error) {
	return parseEnum("claim_type", s, ClaimType.Valid)
}

func parseEnum[T ~string](field, s string, valid func(T) bool) (T, error) {
	v := T(s)
	if !valid(v) {
		return "", errors.Wrapf(ErrInvalidInput, "unrecognized %s %q", field, s)
	}
	return v, nil
}
