package qualitymeasure

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carelane/cqm/internal/domain/record"
	"github.com/carelane/cqm/internal/platform/terminology"
)

// Denominator exclusion sub-checks shared by both measures. Each sub-check
// is independent; the first matching one decides the exclusion. Storage
// failures inside the locator are logged there and surface here as absence
// of evidence.

// hasHospiceCare reports hospice involvement during the period, checked as:
// active hospice diagnosis, hospice encounter, discharge-to-hospice
// disposition, hospice MDS assessment answered Yes, then ambulatory hospice
// claim.
func hasHospiceCare(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	if f := loc.findOverlapping(ctx, patientID, record.SourceCondition, terminology.HospiceDiagnosis,
		[]terminology.System{terminology.ICD10CM, terminology.SNOMEDCT},
		period.Start, period.End, false); f != nil {
		return true
	}

	if f := loc.Find(ctx, patientID, terminology.HospiceEncounter,
		[]terminology.System{terminology.SNOMEDCT, terminology.ICD10CM},
		period.Start, period.End, record.SourceEncounter); f != nil {
		return true
	}

	dischargeCodes := map[string]struct{}{
		dischargeToHomeHospiceSNOMED:     {},
		dischargeToFacilityHospiceSNOMED: {},
	}
	if loc.observationWith(ctx, patientID, "", dischargeCodes, period.Start, period.End) {
		return true
	}

	yes := map[string]struct{}{yesQualifierSNOMED: {}}
	if loc.observationWith(ctx, patientID, hospiceMDSLOINC, yes, period.Start, period.End) {
		return true
	}

	f := loc.Find(ctx, patientID, terminology.HospiceCareAmbulatory,
		[]terminology.System{terminology.CPT, terminology.HCPCSLEVELII, terminology.SNOMEDCT},
		period.Start, period.End, record.SourceClaim)
	return f != nil
}

// hasFrailtyIndicators checks the five frailty evidence categories: device
// claims, device facts, medical equipment observations, frailty diagnoses or
// symptoms overlapping the period, and frailty encounters.
func hasFrailtyIndicators(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	deviceSystems := []terminology.System{terminology.HCPCSLEVELII}
	if f := loc.Find(ctx, patientID, terminology.FrailtyDevice, deviceSystems,
		period.Start, period.End, record.SourceClaim); f != nil {
		return true
	}

	snomedOnly := []terminology.System{terminology.SNOMEDCT}
	if f := loc.Find(ctx, patientID, terminology.FrailtyDevice, snomedOnly,
		period.Start, period.End, record.SourceDevice); f != nil {
		return true
	}

	// Medical equipment assessments record the device as the coded result.
	deviceCodes := terminology.CodesFor(terminology.FrailtyDevice, terminology.SNOMEDCT)
	if loc.observationWith(ctx, patientID, "", deviceCodes, period.Start, period.End) {
		return true
	}

	conditionSystems := []terminology.System{terminology.ICD10CM, terminology.SNOMEDCT}
	if f := loc.findOverlapping(ctx, patientID, record.SourceCondition, terminology.FrailtyDiagnosis,
		conditionSystems, period.Start, period.End, true); f != nil {
		return true
	}

	if f := loc.Find(ctx, patientID, terminology.FrailtyEncounter, snomedOnly,
		period.Start, period.End, record.SourceEncounter); f != nil {
		return true
	}
	if f := loc.Find(ctx, patientID, terminology.FrailtyEncounter,
		[]terminology.System{terminology.CPT, terminology.HCPCSLEVELII},
		period.Start, period.End, record.SourceClaim); f != nil {
		return true
	}

	f := loc.findOverlapping(ctx, patientID, record.SourceCondition, terminology.FrailtySymptom,
		conditionSystems, period.Start, period.End, true)
	return f != nil
}

// hasAdvancedIllnessOrDementiaMeds checks for an advanced illness diagnosis
// with onset during the period or the year prior (missing onset counts), or
// a dementia medication active during that window.
func hasAdvancedIllnessOrDementiaMeds(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	windowStart := period.Start.AddDate(-advancedIllnessLookbackYears, 0, 0)

	conditions, err := loc.facts.ListByPatientSource(ctx, patientID, record.SourceCondition)
	if err != nil {
		loc.log.Error().Err(err).Str("patient_id", patientID.String()).Msg("advanced illness query failed, treating as absent")
	} else {
		codes := terminology.CodesFor(terminology.AdvancedIllness, terminology.ICD10CM, terminology.SNOMEDCT)
		for _, f := range conditions {
			if !f.HasCoding(codes) {
				continue
			}
			if f.EffectiveStart == nil {
				return true
			}
			if !f.EffectiveStart.Before(windowStart) && !f.EffectiveStart.After(period.End) {
				return true
			}
		}
	}

	meds, err := loc.facts.ListByPatientSource(ctx, patientID, record.SourceMedication)
	if err != nil {
		loc.log.Error().Err(err).Str("patient_id", patientID.String()).Msg("dementia medication query failed, treating as absent")
		return false
	}
	codes := terminology.CodesFor(terminology.DementiaMedications, terminology.RXNORM)
	for _, f := range meds {
		if !f.HasCoding(codes) {
			continue
		}
		if medicationActive(f, windowStart, period.End) {
			return true
		}
	}
	return false
}

// medicationActive reports whether a prescription period intersects the
// window. Unlike conditions, a medication with no recorded start is not
// counted.
func medicationActive(f *record.Fact, windowStart, windowEnd time.Time) bool {
	if f.EffectiveStart == nil || f.EffectiveStart.After(windowEnd) {
		return false
	}
	return f.EffectiveEnd == nil || !f.EffectiveEnd.Before(windowStart)
}

// livesInNursingHome checks the housing status assessment (LOINC 71802-3)
// for a "lives in nursing home" result any time on or before period end.
func livesInNursingHome(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	result := map[string]struct{}{livesInNursingHomeSNOMED: {}}
	return loc.observationWith(ctx, patientID, housingStatusLOINC, result, time.Time{}, period.End)
}

// hasNursingFacilityContact checks for nursing facility claims or long term
// residential care encounters on or before period end. Used by measures that
// extend the nursing home exclusion beyond the housing status assessment.
func hasNursingFacilityContact(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	if f := loc.Find(ctx, patientID, terminology.NursingFacilityVisit,
		[]terminology.System{terminology.CPT},
		time.Time{}, period.End, record.SourceClaim); f != nil {
		return true
	}
	if f := loc.Find(ctx, patientID, terminology.NursingFacilityVisit,
		[]terminology.System{terminology.SNOMEDCT},
		time.Time{}, period.End, record.SourceEncounter); f != nil {
		return true
	}
	f := loc.Find(ctx, patientID, terminology.LongTermResidentialCare,
		[]terminology.System{terminology.SNOMEDCT, terminology.CPT},
		time.Time{}, period.End, record.SourceEncounter)
	return f != nil
}

// hasPalliativeCare reports palliative involvement during the period:
// active diagnosis, FACIT-Pal assessment, palliative encounter, then claim.
func hasPalliativeCare(ctx context.Context, loc *Locator, patientID uuid.UUID, period MeasurementPeriod) bool {
	if f := loc.findOverlapping(ctx, patientID, record.SourceCondition, terminology.PalliativeCareDiagnosis,
		[]terminology.System{terminology.ICD10CM, terminology.SNOMEDCT},
		period.Start, period.End, false); f != nil {
		return true
	}

	if loc.observationWith(ctx, patientID, palliativeAssessmentLOINC, nil, period.Start, period.End) {
		return true
	}

	if f := loc.Find(ctx, patientID, terminology.PalliativeCareEncounter,
		[]terminology.System{terminology.SNOMEDCT, terminology.ICD10CM},
		period.Start, period.End, record.SourceEncounter); f != nil {
		return true
	}

	if f := loc.Find(ctx, patientID, terminology.PalliativeCareEncounter,
		[]terminology.System{terminology.HCPCSLEVELII},
		period.Start, period.End, record.SourceClaim); f != nil {
		return true
	}
	f := loc.Find(ctx, patientID, terminology.PalliativeCareIntervention,
		[]terminology.System{terminology.SNOMEDCT},
		period.Start, period.End, record.SourceClaim)
	return f != nil
}
