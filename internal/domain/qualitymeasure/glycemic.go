package qualitymeasure

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carelane/cqm/internal/domain/patient"
	"github.com/carelane/cqm/internal/domain/record"
	"github.com/carelane/cqm/internal/platform/terminology"
)

// Diabetes glycemic status assessment measure (CMS122 style): patients 18 to
// 75 with diabetes whose most recent glycemic assessment is above 9 percent,
// missing, or without a usable result.
const (
	GlycemicKey   = "CMS122"
	glycemicTitle = "Diabetes: Glycemic Status Assessment Greater Than 9%"

	glycemicAgeMin = 18
	glycemicAgeMax = 75

	// Poor control threshold, percent.
	glycemicThreshold = 9.0

	// Glucose Management Indicator counts alongside the HbA1c panel.
	gmiLOINC = "97506-0"

	testTypeHbA1c = "HbA1c"
	testTypeGMI   = "GMI"
)

// GlycemicMeasure evaluates diabetes glycemic control.
type GlycemicMeasure struct {
	loc   *Locator
	facts record.Repository
	log   zerolog.Logger
}

func NewGlycemicMeasure(facts record.Repository, log zerolog.Logger) *GlycemicMeasure {
	return &GlycemicMeasure{
		loc:   NewLocator(facts, log),
		facts: facts,
		log:   log.With().Str("measure", GlycemicKey).Logger(),
	}
}

func (m *GlycemicMeasure) Key() string   { return GlycemicKey }
func (m *GlycemicMeasure) Title() string { return glycemicTitle }

// Evaluate classifies the patient and produces the protocol card. Unlike the
// screening measure, the qualifying encounter requirement here is enforced.
func (m *GlycemicMeasure) Evaluate(ctx context.Context, p *patient.Patient, period MeasurementPeriod) *Card {
	reasons := AgeReasons{
		Missing: fmt.Sprintf("%s does not meet the age criteria (%d-%d years) for the glycemic status measure.", p.FirstName, glycemicAgeMin, glycemicAgeMax),
		Under:   fmt.Sprintf("%s is under %d years of age and does not meet the criteria for the glycemic status measure.", p.FirstName, glycemicAgeMin),
		Over:    fmt.Sprintf("%s is over %d years of age and does not meet the criteria for the glycemic status measure.", p.FirstName, glycemicAgeMax),
	}

	gates := []PopulationGate{
		m.diabetesGate(p, period),
		m.encounterGate(p, period),
	}

	exclusions := []ExclusionCheck{
		m.hospiceExclusion(p, period),
		m.nursingHomeExclusion(p, period),
		m.frailtyExclusion(p, period),
		m.palliativeExclusion(p, period),
	}

	result := Classify(ctx, p, period, AgeGate{Min: glycemicAgeMin, Max: glycemicAgeMax}, reasons, gates, exclusions)
	if result.Excluded() {
		return m.notApplicableCard(p, result.Reason)
	}

	assessment := m.findGlycemicAssessment(ctx, p, period)
	if m.poorControl(assessment) {
		return m.satisfiedCard(p, assessment)
	}
	return m.dueCard(p, assessment)
}

// diabetesGate requires a diabetes diagnosis whose prevalence period
// overlaps the measurement period.
func (m *GlycemicMeasure) diabetesGate(p *patient.Patient, period MeasurementPeriod) PopulationGate {
	return func(ctx context.Context) (bool, string) {
		f := m.loc.findOverlapping(ctx, p.ID, record.SourceCondition, terminology.Diabetes,
			[]terminology.System{terminology.ICD10CM, terminology.SNOMEDCT},
			period.Start, period.End, false)
		if f != nil {
			return true, ""
		}
		return false, fmt.Sprintf("%s has no diabetes diagnosis during the measurement period.", p.FirstName)
	}
}

// encounterGate requires a qualifying visit during the period, matched as a
// coded encounter or a claim line.
func (m *GlycemicMeasure) encounterGate(p *patient.Patient, period MeasurementPeriod) PopulationGate {
	encounterConcepts := []terminology.Concept{
		terminology.OfficeVisit,
		terminology.AnnualWellnessVisit,
		terminology.HomeHealthcareServices,
		terminology.TelephoneVisits,
		terminology.NutritionServices,
	}
	claimConcepts := []struct {
		concept terminology.Concept
		systems []terminology.System
	}{
		{terminology.OfficeVisit, []terminology.System{terminology.CPT}},
		{terminology.AnnualWellnessVisit, []terminology.System{terminology.HCPCSLEVELII}},
		{terminology.PreventiveCareEstablishedOfficeVisit, []terminology.System{terminology.CPT}},
		{terminology.PreventiveCareInitialOfficeVisit, []terminology.System{terminology.CPT}},
		{terminology.HomeHealthcareServices, []terminology.System{terminology.CPT}},
		{terminology.NutritionServices, []terminology.System{terminology.CPT, terminology.HCPCSLEVELII}},
		{terminology.TelephoneVisits, []terminology.System{terminology.CPT}},
	}
	return func(ctx context.Context) (bool, string) {
		snomed := []terminology.System{terminology.SNOMEDCT}
		for _, concept := range encounterConcepts {
			if f := m.loc.Find(ctx, p.ID, concept, snomed, period.Start, period.End, record.SourceEncounter); f != nil {
				return true, ""
			}
		}
		for _, cc := range claimConcepts {
			if f := m.loc.Find(ctx, p.ID, cc.concept, cc.systems, period.Start, period.End, record.SourceClaim); f != nil {
				return true, ""
			}
		}
		return false, fmt.Sprintf("%s has no qualifying encounter during the measurement period.", p.FirstName)
	}
}

func (m *GlycemicMeasure) hospiceExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	reason := fmt.Sprintf("%s is receiving hospice care and is excluded from the glycemic status measure.", p.FirstName)
	return func(ctx context.Context) ExclusionOutcome {
		if hasHospiceCare(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{Excluded: true, Reason: reason}
		}
		return ExclusionOutcome{}
	}
}

// nursingHomeExclusion extends the housing status assessment with nursing
// facility visits and long term residential care contact.
func (m *GlycemicMeasure) nursingHomeExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	return func(ctx context.Context) ExclusionOutcome {
		age, ok := p.AgeAt(period.End)
		if !ok || age < exclusionAgeThreshold {
			return ExclusionOutcome{}
		}
		if !livesInNursingHome(ctx, m.loc, p.ID, period) && !hasNursingFacilityContact(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{}
		}
		return ExclusionOutcome{
			Excluded: true,
			Reason:   fmt.Sprintf("%s is living long term in a nursing home and is excluded from the glycemic status measure.", p.FirstName),
		}
	}
}

func (m *GlycemicMeasure) frailtyExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
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
			Reason:   fmt.Sprintf("%s is age %d or older with frailty and advanced illness or dementia medications and is excluded from the glycemic status measure.", p.FirstName, exclusionAgeThreshold),
		}
	}
}

func (m *GlycemicMeasure) palliativeExclusion(p *patient.Patient, period MeasurementPeriod) ExclusionCheck {
	reason := fmt.Sprintf("%s is receiving palliative care and is excluded from the glycemic status measure.", p.FirstName)
	return func(ctx context.Context) ExclusionOutcome {
		if hasPalliativeCare(ctx, m.loc, p.ID, period) {
			return ExclusionOutcome{Excluded: true, Reason: reason}
		}
		return ExclusionOutcome{}
	}
}

// findGlycemicAssessment returns the lab to judge control by: among labs on
// the most recent result date in the period, the numerically lowest value
// wins. Labs without a parsable value are passed over for the tie-break but
// the latest one is still returned when no same-day lab carries a value.
func (m *GlycemicMeasure) findGlycemicAssessment(ctx context.Context, p *patient.Patient, period MeasurementPeriod) *record.Fact {
	labs, err := m.facts.ListByPatientSource(ctx, p.ID, record.SourceLab)
	if err != nil {
		m.log.Error().Err(err).Str("patient_id", p.ID.String()).Msg("glycemic lab query failed, treating as no assessment")
		return nil
	}

	codes := terminology.CodesFor(terminology.HbA1cLaboratoryTest, terminology.LOINC)
	codes[gmiLOINC] = struct{}{}

	var matched []*record.Fact
	for _, f := range labs {
		if f.OccurredAt.Before(period.Start) || f.OccurredAt.After(period.End) {
			continue
		}
		if f.HasCoding(codes) {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	var latest *record.Fact
	for _, f := range matched {
		if latest == nil || latest.Before(f) {
			latest = f
		}
	}

	y, mo, d := latest.OccurredAt.Date()
	var lowest *record.Fact
	for _, f := range matched {
		fy, fmo, fd := f.OccurredAt.Date()
		if fy != y || fmo != mo || fd != d {
			continue
		}
		v, ok := f.Quantity()
		if !ok {
			continue
		}
		if lowest == nil {
			lowest = f
			continue
		}
		lv, _ := lowest.Quantity()
		if v < lv {
			lowest = f
		}
	}
	if lowest != nil {
		return lowest
	}
	return latest
}

// poorControl implements the numerator: no assessment, no usable value, or a
// value above the threshold all count as poor control.
func (m *GlycemicMeasure) poorControl(assessment *record.Fact) bool {
	if assessment == nil {
		return true
	}
	v, ok := assessment.Quantity()
	if !ok {
		return true
	}
	return v > glycemicThreshold
}

func testType(f *record.Fact) string {
	gmi := map[string]struct{}{gmiLOINC: {}}
	if f.HasCoding(gmi) {
		return testTypeGMI
	}
	return testTypeHbA1c
}

func (m *GlycemicMeasure) lastTestLine(p *patient.Patient, assessment *record.Fact) string {
	if assessment == nil {
		return fmt.Sprintf("%s has no glycemic status assessment in the measurement period.", p.FirstName)
	}
	date := longDate(assessment.OccurredAt)
	if v, ok := assessment.Quantity(); ok {
		return fmt.Sprintf("%s's last %s done %s was %.1f%%.", p.FirstName, testType(assessment), date, v)
	}
	return fmt.Sprintf("%s's last %s was done %s.", p.FirstName, testType(assessment), date)
}

func (m *GlycemicMeasure) notApplicableCard(p *patient.Patient, reason string) *Card {
	if reason == "" {
		reason = fmt.Sprintf("%s is not eligible for the glycemic status measure.", p.FirstName)
	}
	return &Card{
		PatientID: p.ID.String(),
		Key:       GlycemicKey,
		Title:     glycemicTitle,
		Status:    StatusNotApplicable,
		Narrative: reason,
		DueIn:     -1,
	}
}

func (m *GlycemicMeasure) satisfiedCard(p *patient.Patient, assessment *record.Fact) *Card {
	return &Card{
		PatientID: p.ID.String(),
		Key:       GlycemicKey,
		Title:     glycemicTitle,
		Status:    StatusSatisfied,
		Narrative: m.lastTestLine(p, assessment),
		DueIn:     -1,
	}
}

func (m *GlycemicMeasure) dueCard(p *patient.Patient, assessment *record.Fact) *Card {
	card := &Card{
		PatientID: p.ID.String(),
		Key:       GlycemicKey,
		Title:     glycemicTitle,
		Status:    StatusDue,
		Narrative: m.lastTestLine(p, assessment),
		DueIn:     -1,
	}

	hasValue := false
	if assessment != nil {
		_, hasValue = assessment.Quantity()
	}
	if !hasValue {
		if codes := terminology.Codes(terminology.HbA1cLaboratoryTest, terminology.LOINC); len(codes) > 0 {
			card.Recommendations = append(card.Recommendations, Recommendation{
				Title:  "Order " + testTypeHbA1c,
				Button: "Order",
				Kind:   "lab_order",
				Codes:  codes,
			})
		}
		return card
	}

	const lifestyleAdvice = "Discuss lifestyle modification and medication adherence. " +
		"Consider diabetes education and medication intensification as appropriate."
	if codes := terminology.Codes(terminology.DietaryRecommendations, terminology.SNOMEDCT); len(codes) > 0 {
		card.Recommendations = append(card.Recommendations, Recommendation{
			Title:   lifestyleAdvice,
			Button:  "Instruct",
			Kind:    "instruction",
			Codes:   codes[:1],
			Comment: lifestyleAdvice,
		})
	}
	return card
}
