package record

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelane/cqm/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type factRepoPG struct{ pool *pgxpool.Pool }

func NewFactRepoPG(pool *pgxpool.Pool) Repository {
	return &factRepoPG{pool: pool}
}

func (r *factRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const factCols = `id, patient_id, source, codings, value_codings,
	value_quantity, value_unit, clinical_status,
	effective_start, effective_end, occurred_at, voided, created_at, updated_at`

func scanFact(row pgx.Row) (*Fact, error) {
	var (
		f            Fact
		codings      []byte
		valueCodings []byte
	)
	err := row.Scan(&f.ID, &f.PatientID, &f.Source, &codings, &valueCodings,
		&f.ValueQuantity, &f.ValueUnit, &f.ClinicalStatus,
		&f.EffectiveStart, &f.EffectiveEnd, &f.OccurredAt, &f.Voided, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(codings, &f.Codings); err != nil {
		return nil, err
	}
	if len(valueCodings) > 0 {
		if err := json.Unmarshal(valueCodings, &f.ValueCodings); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func (r *factRepoPG) Create(ctx context.Context, f *Fact) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	codings, err := json.Marshal(f.Codings)
	if err != nil {
		return err
	}
	valueCodings, err := json.Marshal(f.ValueCodings)
	if err != nil {
		return err
	}
	_, err = r.conn(ctx).Exec(ctx, `
		INSERT INTO clinical_fact (id, patient_id, source, codings, value_codings,
			value_quantity, value_unit, clinical_status,
			effective_start, effective_end, occurred_at, voided)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		f.ID, f.PatientID, f.Source, codings, valueCodings,
		f.ValueQuantity, f.ValueUnit, f.ClinicalStatus,
		f.EffectiveStart, f.EffectiveEnd, f.OccurredAt, f.Voided)
	return err
}

func (r *factRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Fact, error) {
	f, err := scanFact(r.conn(ctx).QueryRow(ctx, `SELECT `+factCols+` FROM clinical_fact WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return f, err
}

func (r *factRepoPG) ListByPatientSource(ctx context.Context, patientID uuid.UUID, source SourceKind) ([]*Fact, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+factCols+` FROM clinical_fact
		WHERE patient_id = $1 AND source = $2 AND NOT voided
		ORDER BY occurred_at, id`, patientID, source)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var facts []*Fact
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

func (r *factRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Fact, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM clinical_fact WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+factCols+` FROM clinical_fact
		WHERE patient_id = $1
		ORDER BY occurred_at DESC, id LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var facts []*Fact
	for rows.Next() {
		f, err := scanFact(rows)
		if err != nil {
			return nil, 0, err
		}
		facts = append(facts, f)
	}
	return facts, total, rows.Err()
}

// Delete voids the fact rather than removing the row; evaluation queries
// filter on the voided flag.
func (r *factRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE clinical_fact SET voided = TRUE, updated_at = now() WHERE id = $1`, id)
	return err
}
