package qualitymeasure

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/carelane/cqm/internal/domain/patient"
	"github.com/carelane/cqm/internal/domain/record"
	"github.com/carelane/cqm/internal/platform/terminology"
)

// Colorectal cancer screening measure (CMS130 style): adults 46 to 75 with
// appropriate screening.
const (
	ColorectalKey   = "CMS130"
	colorectalTitle = "Colorectal Cancer Screening"

	colorectalAgeMin = 46
	colorectalAgeMax = 75

	// Secondary age threshold for the frailty and nursing home exclusions.
	exclusionAgeThreshold = 66

	// Advanced illness and dementia medication evidence counts from one
	// year before the measurement period.
	advancedIllnessLookbackYears = 1

	dischargeToHomeHospiceSNOMED     = "428361000124107"
	dischargeToFacilityHospiceSNOMED = "428371000124100"
	hospiceMDSLOINC                  = "45755-6"
	yesQualifierSNOMED               = "373066001"
	housingStatusLOINC               = "71802-3"
	livesInNursingHomeSNOMED         = "160734000"
	palliativeAssessmentLOINC        = "71007-9"

	// ICD-10 Z12.11, dot stripped: encounter for screening for malignant
	// neoplasm of colon. Attached to every screening recommendation.
	screeningDiagnosisCode = "Z1211"
)

// Screening kinds in numerator priority order with their lookbacks and
// satisfaction intervals.
const (
	kindFOBT           = "FOBT"
	kindFITDNA         = "FIT-DNA"
	kindFlexSig        = "Flexible sigmoidoscopy"
	kindCTColonography = "CT Colonography"
	kindColonoscopy    = "Colonoscopy"

	fobtLookbackYears        = 1
	fitDNALookbackYears      = 2
	flexSigLookbackYears     = 4
	ctLookbackYears          = 4
	colonoscopyLookbackYears = 9

	fobtIntervalDays        = 365
	fitDNAIntervalDays      = 730
	flexSigIntervalDays     = 1460
	ctIntervalDays          = 1460
	colonoscopyIntervalDays = 3285
)

var colorectalScreenings = []ScreeningCheck{
	{
		Kind:             kindFOBT,
		Concept:          terminology.FecalOccultBloodTest,
		Systems:          []terminology.System{terminology.LOINC},
		LookbackYears:    fobtLookbackYears,
		NextDueAfterDays: fobtIntervalDays,
		Sources:          []record.SourceKind{record.SourceLab},
	},
	{
		Kind:             kindFITDNA,
		Concept:          terminology.StoolDNAFITTest,
		Systems:          []terminology.System{terminology.LOINC},
		LookbackYears:    fitDNALookbackYears,
		NextDueAfterDays: fitDNAIntervalDays,
		Sources:          []record.SourceKind{record.SourceLab},
	},
	{
		Kind:             kindFlexSig,
		Concept:          terminology.FlexibleSigmoidoscopy,
		Systems:          []terminology.System{terminology.CPT, terminology.HCPCSLEVELII, terminology.SNOMEDCT},
		LookbackYears:    flexSigLookbackYears,
		NextDueAfterDays: flexSigIntervalDays,
		Sources:          []record.SourceKind{record.SourceImaging, record.SourceReferral},
	},
	{
		Kind:             kindCTColonography,
		Concept:          terminology.CTColonography,
		Systems:          []terminology.System{terminology.CPT, terminology.SNOMEDCT},
		LookbackYears:    ctLookbackYears,
		NextDueAfterDays: ctIntervalDays,
		Sources:          []record.SourceKind{record.SourceImaging, record.SourceReferral},
	},
	{
		Kind:             kindColonoscopy,
		Concept:          terminology.Colonoscopy,
		Systems:          []terminology.System{terminology.CPT, terminology.HCPCSLEVELII, terminology.SNOMEDCT},
		LookbackYears:    colonoscopyLookbackYears,
		NextDueAfterDays: colonoscopyIntervalDays,
		Sources:          []record.SourceKind{record.SourceImaging, record.SourceReferral},
	},
}

// ColorectalMeasure evaluates colorectal cancer screening eligibility.
type ColorectalMeasure struct {
	loc   *Locator
	facts record.Repository
	log   zerolog.Logger
}

func NewColorectalMeasure(facts record.Repository, log zerolog.Logger) *ColorectalMeasure {
	return &ColorectalMeasure{
		loc:   NewLocator(facts, log),
		facts: facts,
		log:   log.With().Str("measure", ColorectalKey).Logger(),
	}
}

func (m *ColorectalMeasure) Key() string   { return ColorectalKey }
func (m *ColorectalMeasure) Title() string { return colorectalTitle }

// Evaluate classifies the patient and produces the protocol card. The run is
// read-only and idempotent; storage failures inside individual sub-checks
// are logged and treated as no evidence found.
func (m *ColorectalMeasure) Evaluate(ctx context.Context, p *patient.Patient, period MeasurementPeriod) *Card {
	reasons := AgeReasons{
		Missing: fmt.Sprintf("%s does not meet the age criteria (%d-%d years) for colorectal cancer screening.", p.FirstName, colorectalAgeMin, colorectalAgeMax),
		Under:   fmt.Sprintf("%s is under %d years of age and does not meet the criteria for colorectal cancer screening.", p.FirstName, colorectalAgeMin),
		Over:    fmt.Sprintf("%s is over %d years of age and does not meet the criteria for colorectal cancer screening.", p.FirstName, colorectalAgeMax),
	}

	gates := []PopulationGate{m.qualifyingEncounterGate(p, period)}

	exclusions := []ExclusionCheck{
		m.colonExclusion(p, period),
		m.hospiceExclusion(p, period),
		m.frailtyExclusion(p, period),
		m.nursingHomeExclusion(p, period),
		m.palliativeExclusion(p, period),
	}

	result := Classify(ctx, p, period, AgeGate{Min: colorectalAgeMin, Max: colorectalAgeMax}, reasons, gates, exclusions)
	if result.Excluded() {
		return m.notApplicableCard(p, result.Reason)
	}

	if match := EvaluateNumerator(ctx, m.loc, p.ID, period, colorectalScreenings); match != nil {
		return m.satisfiedCard(p, period, match)
	}
	return m.dueCard(ctx, p, period)
}

// qualifyingEncounterGate checks for an eligible visit during the period but
// never fails the gate: absence of a matched visit still passes. This
// optimistic rule is inherited from the measure source and flagged for
// product review rather than hardened here.
func (m *ColorectalMeasure) qualifyingEncounterGate(p *patient.Patient, period MeasurementPeriod) PopulationGate {
	visitConcepts := []terminology.Concept{
		terminology.OfficeVisit,
		terminology.PreventiveCareEstablishedOfficeVisit,
		terminology.PreventiveCareInitialOfficeVisit,
		terminology.HomeHealthcareServices,
		terminology.AnnualWellnessVisit,
		terminology.VirtualEncounter,
		terminology.TelephoneVisits,
	}
	return func(ctx context.Context) (bool, string) {
		for _, concept := range visitConcepts {
			systems := []terminology.System{terminology.CPT, terminology.HCPCSLEVELII, terminology.SNOMEDCT}
			if f := m.loc.Find(ctx, p.ID, concept, systems, period.Start, period.End, record.SourceEncounter); f != nil {
				return true, ""
			}
		}
		m.log.Debug().Str("patient_id", p.ID.String()).Msg("no qualifying encounter matched, passing optimistically")
		return true, ""
	}
}

// colonExclusion covers total colectomy and malignant neoplasm of colon. A
// colectomy counts when resolved on or before period end, active with onset
// on or before period end, or carrying no onset at all. A neoplasm counts on
// onset before period end or missing onset, regardless of resolution.
func (m *ColorectalMeasure) colonExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	return func(ctx context.Context) ExclusionOutcome {
		conditions, err := m.facts.ListByPatientSource(ctx, p.ID, record.SourceCondition)
		if err != nil {
			m.log.Error().Err(err).Str("patient_id", p.ID.String()).Msg("colon exclusion query failed, assuming not excluded")
			return ExclusionOutcome{}
		}

		colectomyCodes := terminology.CodesFor(terminology.TotalColectomy,
			terminology.CPT, terminology.ICD10PCS, terminology.SNOMEDCT)
		for _, f := range conditions {
			if !f.HasCoding(colectomyCodes) {
				continue
			}
			if m.colectomyApplies(f, period.End) {
				return ExclusionOutcome{
					Excluded: true,
					Reason:   fmt.Sprintf("%s has a history of total colectomy and is excluded from colorectal cancer screening.", p.FirstName),
				}
			}
		}

		neoplasmCodes := terminology.CodesFor(terminology.MalignantNeoplasmOfColon,
			terminology.ICD10CM, terminology.SNOMEDCT)
		for _, f := range conditions {
			if !f.HasCoding(neoplasmCodes) {
				continue
			}
			if f.EffectiveStart == nil || !f.EffectiveStart.After(period.End) {
				return ExclusionOutcome{
					Excluded: true,
					Reason:   fmt.Sprintf("%s has a history of malignant neoplasm of colon and is excluded from colorectal cancer screening.", p.FirstName),
				}
			}
		}
		return ExclusionOutcome{}
	}
}

func (m *ColorectalMeasure) colectomyApplies(f *record.Fact, periodEnd time.Time) bool {
	if f.EffectiveStart == nil {
		return true
	}
	if f.EffectiveEnd != nil {
		return !f.EffectiveEnd.After(periodEnd)
	}
	return !f.EffectiveStart.After(periodEnd)
}

func (m *ColorectalMeasure) hospiceExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	reason := fmt.Sprintf("%s is receiving hospice care and is excluded from colorectal cancer screening.", p.FirstName)
	return func(ctx context.Context) ExclusionOutcome {
		if hasHospiceCare(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{Excluded: true, Reason: reason}
		}
		return ExclusionOutcome{}
	}
}

func (m *ColorectalMeasure) frailtyExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	return func(ctx context.Context) ExclusionOutcome {
		age, ok := p.AgeAt(period.End)
		if !ok || age < exclusionAgeThreshold {
			return ExclusionOutcome{}
		}
		if !hasFrailtyIndicators(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{}
		}
		if !hasAdvancedIllnessOrDementiaMeds(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{}
		}
		return ExclusionOutcome{
			Excluded: true,
			Reason:   fmt.Sprintf("%s is age %d or older with frailty and advanced illness or dementia medications and is excluded from colorectal cancer screening.", p.FirstName, exclusionAgeThreshold),
		}
	}
}

func (m *ColorectalMeasure) nursingHomeExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	return func(ctx context.Context) ExclusionOutcome {
		age, ok := p.AgeAt(period.End)
		if !ok || age < exclusionAgeThreshold {
			return ExclusionOutcome{}
		}
		if !livesInNursingHome(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{}
		}
		return ExclusionOutcome{
			Excluded: true,
			Reason:   fmt.Sprintf("%s is living long term in a nursing home and is excluded from colorectal cancer screening.", p.FirstName),
		}
	}
}

func (m *ColorectalMeasure) palliativeExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	reason := fmt.Sprintf("%s is receiving palliative care and is excluded from colorectal cancer screening.", p.FirstName)
	return func(ctx context.Context) ExclusionOutcome {
		if hasPalliativeCare(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{Excluded: true, Reason: reason}
		}
		return ExclusionOutcome{}
	}
}

func (m *ColorectalMeasure) notApplicableCard(p *patient.Patient, reason string) *Card {
	if reason == "" {
		reason = fmt.Sprintf("%s is not eligible for colorectal cancer screening.", p.FirstName)
	}
	return &Card{
		PatientID: p.ID.String(),
		Key:       ColorectalKey,
		Title:     colorectalTitle,
		Status:    StatusNotApplicable,
		Narrative: reason,
		DueIn:     -1,
	}
}

func (m *ColorectalMeasure) satisfiedCard(p *patient.Patient, period MeasurementPeriod, match *EvidenceMatch) *Card {
	narrative := fmt.Sprintf("%s had a %s %s.", p.FirstName, match.Kind, relativeDate(match.MatchedAt, period.End))
	nextDue := match.MatchedAt.AddDate(0, 0, match.NextDueAfterDays)
	dueIn := int(nextDue.Sub(period.End).Hours() / 24)
	return &Card{
		PatientID: p.ID.String(),
		Key:       ColorectalKey,
		Title:     colorectalTitle,
		Status:    StatusSatisfied,
		Narrative: narrative,
		DueIn:     dueIn,
	}
}

func (m *ColorectalMeasure) dueCard(ctx context.Context, p *patient.Patient, period MeasurementPeriod) *Card {
	narrative := fmt.Sprintf("%s is due for a Colorectal Cancer Screening.\n%s\nCurrent screening interval %s.",
		p.FirstName, m.recentExamContext(ctx, p, period), friendlyDuration(colonoscopyIntervalDays))

	return &Card{
		PatientID:       p.ID.String(),
		Key:             ColorectalKey,
		Title:           colorectalTitle,
		Status:          StatusDue,
		Narrative:       narrative,
		DueIn:           -1,
		Recommendations: colorectalRecommendations(),
	}
}

// recentExamContext reports the most recent screening evidence of any kind,
// best effort: "Last Colonoscopy done June 2, 2024." or a no-exams line.
func (m *ColorectalMeasure) recentExamContext(ctx context.Context, p *patient.Patient, period MeasurementPeriod) string {
	var (
		bestKind string
		bestAt   time.Time
	)
	for _, check := range colorectalScreenings {
		windowStart := period.End.AddDate(-check.LookbackYears, 0, 0)
		f := m.loc.Find(ctx, p.ID, check.Concept, check.Systems, windowStart, period.End, check.Sources...)
		if f == nil {
			continue
		}
		if bestKind == "" || f.OccurredAt.After(bestAt) {
			bestKind, bestAt = check.Kind, f.OccurredAt
		}
	}
	if bestKind == "" {
		return "No relevant exams found."
	}
	return fmt.Sprintf("Last %s done %s.", bestKind, longDate(bestAt))
}

// colorectalRecommendations builds the five due-card actions in numerator
// priority order, each carrying the screening diagnosis for order placement.
func colorectalRecommendations() []Recommendation {
	recs := make([]Recommendation, 0, 5)

	if codes := terminology.Codes(terminology.FecalOccultBloodTest, terminology.LOINC); len(codes) > 0 {
		recs = append(recs, Recommendation{
			Title:          "Order a FOBT",
			Button:         "Order",
			Kind:           "lab_order",
			Codes:          codes[:1],
			DiagnosisCodes: []string{screeningDiagnosisCode},
		})
	}
	if codes := terminology.Codes(terminology.StoolDNAFITTest, terminology.LOINC); len(codes) > 0 {
		recs = append(recs, Recommendation{
			Title:          "Order a FIT-DNA",
			Button:         "Order",
			Kind:           "lab_order",
			Codes:          codes[:1],
			DiagnosisCodes: []string{screeningDiagnosisCode},
		})
	}
	recs = append(recs, Recommendation{
		Title:          "Order a Flexible sigmoidoscopy",
		Button:         "Order",
		Kind:           "referral",
		DiagnosisCodes: []string{screeningDiagnosisCode},
		Specialties:    []string{"Gastroenterology"},
		Comment:        "For flexible sigmoidoscopy screening.",
	})
	if codes := terminology.Codes(terminology.CTColonography, terminology.CPT); len(codes) > 0 {
		recs = append(recs, Recommendation{
			Title:          "Order a CT Colonography",
			Button:         "Order",
			Kind:           "imaging_order",
			Codes:          codes[:1],
			DiagnosisCodes: []string{screeningDiagnosisCode},
			Specialties:    []string{"Radiology"},
		})
	}
	recs = append(recs, Recommendation{
		Title:          "Order a Colonoscopy",
		Button:         "Order",
		Kind:           "referral",
		DiagnosisCodes: []string{screeningDiagnosisCode},
		Specialties:    []string{"Gastroenterology"},
		Comment:        "For colonoscopy screening.",
	})
	return recs
}
