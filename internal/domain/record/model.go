// Package record models the clinical facts the quality measure engine
// evaluates: coded events pulled from labs, imaging, referrals, claims,
// encounters, observations, conditions, medications and devices, reduced to
// the common shape the eligibility checks need.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/carelane/cqm/internal/platform/terminology"
)

// SourceKind identifies which record type a fact was derived from. The
// evidence locator searches kinds in the priority order each measure
// specifies.
type SourceKind string

const (
	SourceLab         SourceKind = "lab"
	SourceImaging     SourceKind = "imaging"
	SourceReferral    SourceKind = "referral"
	SourceClaim       SourceKind = "claim"
	SourceEncounter   SourceKind = "encounter"
	SourceObservation SourceKind = "observation"
	SourceCondition   SourceKind = "condition"
	SourceMedication  SourceKind = "medication"
	SourceDevice      SourceKind = "device"
)

// Coding is one system/code pair attached to a fact. A fact commonly carries
// several codings for the same event (e.g. a CPT and a SNOMED code on one
// procedure claim).
type Coding struct {
	System  string `db:"system" json:"system"`
	Code    string `db:"code" json:"code"`
	Display string `db:"display" json:"display,omitempty"`
}

// Fact maps to the clinical_fact table. EffectiveStart and EffectiveEnd bound
// the period the fact covers and are both nullable; OccurredAt is the single
// instant used for recency ordering and is always set.
type Fact struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	Source         SourceKind `db:"source" json:"source"`
	Codings        []Coding   `db:"codings" json:"codings"`
	ValueCodings   []Coding   `db:"value_codings" json:"value_codings,omitempty"`
	ValueQuantity  *float64   `db:"value_quantity" json:"value_quantity,omitempty"`
	ValueUnit      *string    `db:"value_unit" json:"value_unit,omitempty"`
	ClinicalStatus *string    `db:"clinical_status" json:"clinical_status,omitempty"`
	EffectiveStart *time.Time `db:"effective_start" json:"effective_start,omitempty"`
	EffectiveEnd   *time.Time `db:"effective_end" json:"effective_end,omitempty"`
	OccurredAt     time.Time  `db:"occurred_at" json:"occurred_at"`
	Voided         bool       `db:"voided" json:"voided"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// StatusResolved marks conditions no longer active; resolved conditions do
// not count as exclusion or population evidence.
const StatusResolved = "resolved"

// HasCoding reports whether any coding on the fact, after system and code
// normalization, is in the given normalized code set.
func (f *Fact) HasCoding(codes map[string]struct{}) bool {
	return matchCodings(f.Codings, codes)
}

// HasValueCoding reports whether the fact's coded value matches the set.
// Used for questionnaire-style observations where the answer, not the
// question, carries the clinical meaning.
func (f *Fact) HasValueCoding(codes map[string]struct{}) bool {
	return matchCodings(f.ValueCodings, codes)
}

func matchCodings(codings []Coding, codes map[string]struct{}) bool {
	for _, c := range codings {
		sys := terminology.NormalizeSystem(c.System)
		if _, ok := codes[terminology.NormalizeCode(sys, c.Code)]; ok {
			return true
		}
	}
	return false
}

// Resolved reports whether the fact carries a resolved clinical status.
func (f *Fact) Resolved() bool {
	return f.ClinicalStatus != nil && *f.ClinicalStatus == StatusResolved
}

// Quantity returns the numeric value on the fact, if any.
func (f *Fact) Quantity() (float64, bool) {
	if f.ValueQuantity == nil {
		return 0, false
	}
	return *f.ValueQuantity, true
}

// OverlapsPeriod reports whether the fact's effective interval overlaps the
// closed interval [start, end]. Boundary contact counts as overlap. A nil
// EffectiveStart always overlaps: a fact with no recorded onset is assumed
// to be in effect. A nil EffectiveEnd means the fact is still in effect.
func (f *Fact) OverlapsPeriod(start, end time.Time) bool {
	if f.EffectiveStart == nil {
		return true
	}
	if f.EffectiveStart.After(end) {
		return false
	}
	return f.EffectiveEnd == nil || !f.EffectiveEnd.Before(start)
}

// Before reports a stable ordering for facts with identical OccurredAt
// timestamps so that selection among ties is deterministic.
func (f *Fact) Before(other *Fact) bool {
	if !f.OccurredAt.Equal(other.OccurredAt) {
		return f.OccurredAt.Before(other.OccurredAt)
	}
	return f.ID.String() < other.ID.String()
}
