// Package patient holds the patient demographics the measure engine needs.
package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	MRN       string     `db:"mrn" json:"mrn"`
	Active    bool       `db:"active" json:"active"`
	FirstName string     `db:"first_name" json:"first_name"`
	LastName  string     `db:"last_name" json:"last_name"`
	BirthDate *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	Gender    *string    `db:"gender" json:"gender,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// AgeAt returns the patient's age at the given instant as
// floor(elapsed days / 365), or false when no birth date is on file. The
// day-based formula is the measure convention: it drifts from calendar
// anniversaries by roughly a day per leap year, which can move patients
// across eligibility boundaries, and must not be replaced with
// anniversary arithmetic. Callers treat a missing birth date as an
// eligibility exclusion, not an error.
func (p *Patient) AgeAt(at time.Time) (int, bool) {
	if p.BirthDate == nil {
		return 0, false
	}
	days := int(at.Sub(*p.BirthDate).Hours() / 24)
	if days < 0 {
		return 0, false
	}
	return days / 365, true
}

// FullName is used in card narratives.
func (p *Patient) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
