package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seobin0224/petmatch/internal/catalog"
)

const animalColumns = `
	id, name, status, care_type, rescue_region, gender, neutered,
	birth_year, age, weight, hashtags, care_region, care_duration_days,
	care_pickup_method, care_additional, suitable_homes, vaccinations,
	examination, medical_history, health_notes, behavior_traits,
	support_provided, detail_link, sns_link, announcement_no, imported_at`

// ReplaceAll replaces the stored catalog with the given records in one
// transaction. The import is all-or-nothing: a failed insert leaves the
// previous catalog intact.
func (db *DB) ReplaceAll(ctx context.Context, records []catalog.Record, sourcePath string) error {
	now := time.Now()

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM animals`); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}

		for i := range records {
			if err := insertAnimal(ctx, tx, &records[i], now); err != nil {
				return fmt.Errorf("failed to insert %s: %w", records[i].Label(), err)
			}
		}

		_, err := tx.ExecContext(ctx, `
			UPDATE import_state SET
				last_import_at = ?, source_path = ?, records_imported = ?
			WHERE id = 1
		`, now, NullText(sourcePath), len(records))
		return err
	})
}

func insertAnimal(ctx context.Context, tx *sql.Tx, rec *catalog.Record, importedAt time.Time) error {
	id := ""
	if rec.ID != nil {
		id = *rec.ID
	}
	if id == "" {
		id = uuid.New().String()
	}

	hashtags, err := encodeJSON(rec.Hashtags)
	if err != nil {
		return err
	}
	homes, err := encodeJSON(rec.CareConditions.SuitableHomes)
	if err != nil {
		return err
	}
	vaccinations, err := encodeJSON(rec.HealthInfo.Vaccinations)
	if err != nil {
		return err
	}
	traits, err := encodeJSON(rec.BehaviorTraits)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, rec.Name, rec.Status, NullText(rec.CareType), NullText(rec.RescueRegion),
		NullText(string(rec.Gender)), NullBool(rec.Neutered),
		NullInt64(rec.BirthYear), NullFloat64(rec.Age), NullFloat64(rec.Weight),
		hashtags, NullText(rec.CareConditions.Region),
		NullInt64(rec.CareConditions.DurationDays),
		NullText(rec.CareConditions.PickupMethod),
		NullString(rec.CareConditions.AdditionalConditions), homes, vaccinations,
		NullString(rec.HealthInfo.Examination),
		NullString(rec.HealthInfo.MedicalHistory),
		NullString(rec.HealthInfo.AdditionalNotes), traits,
		NullText(rec.SupportProvided), NullText(rec.DetailLink),
		NullString(rec.SNSLink), NullText(rec.AnnouncementNo), importedAt,
	)
	return err
}

// GetRecord retrieves an animal by ID. Returns nil when not found.
func (db *DB) GetRecord(ctx context.Context, id string) (*catalog.Record, error) {
	var a animalRow

	err := db.QueryRowContext(ctx, `
		SELECT `+animalColumns+` FROM animals WHERE id = ?
	`, id).Scan(
		&a.id, &a.name, &a.status, &a.careType, &a.rescueRegion, &a.gender,
		&a.neutered, &a.birthYear, &a.age, &a.weight, &a.hashtags,
		&a.careRegion, &a.careDurationDays, &a.carePickupMethod,
		&a.careAdditional, &a.suitableHomes, &a.vaccinations, &a.examination,
		&a.medicalHistory, &a.healthNotes, &a.behaviorTraits,
		&a.supportProvided, &a.detailLink, &a.snsLink, &a.announcementNo,
		&a.importedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec, err := a.record()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRecords retrieves animals with optional filters, ordered by ID
func (db *DB) ListRecords(ctx context.Context, opts ListOptions) ([]catalog.Record, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE 1=1`
	args := []interface{}{}

	if opts.AvailableOnly {
		query += " AND status = ?"
		args = append(args, catalog.StatusAvailable)
	} else if opts.Status != nil {
		query += " AND status = ?"
		args = append(args, *opts.Status)
	}
	if opts.RescueRegion != nil {
		query += " AND rescue_region LIKE ?"
		args = append(args, "%"+*opts.RescueRegion+"%")
	}
	if opts.CareRegion != nil {
		query += " AND (care_region LIKE ? OR care_region = ?)"
		args = append(args, "%"+*opts.CareRegion+"%", catalog.RegionNationwide)
	}
	if opts.Gender != nil {
		query += " AND gender = ?"
		args = append(args, string(*opts.Gender))
	}
	if opts.CareType != nil {
		query += " AND care_type LIKE ?"
		args = append(args, "%"+*opts.CareType+"%")
	}

	// rowid preserves catalog order from the import
	query += " ORDER BY rowid"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var a animalRow

		if err := rows.Scan(
			&a.id, &a.name, &a.status, &a.careType, &a.rescueRegion, &a.gender,
			&a.neutered, &a.birthYear, &a.age, &a.weight, &a.hashtags,
			&a.careRegion, &a.careDurationDays, &a.carePickupMethod,
			&a.careAdditional, &a.suitableHomes, &a.vaccinations, &a.examination,
			&a.medicalHistory, &a.healthNotes, &a.behaviorTraits,
			&a.supportProvided, &a.detailLink, &a.snsLink, &a.announcementNo,
			&a.importedAt,
		); err != nil {
			return nil, err
		}

		rec, err := a.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of stored animals
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM animals`).Scan(&n)
	return n, err
}

// GetImportState retrieves the latest import bookkeeping
func (db *DB) GetImportState(ctx context.Context) (*ImportState, error) {
	state := &ImportState{}
	var lastImportAt sql.NullTime
	var sourcePath sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, last_import_at, source_path, records_imported
		FROM import_state WHERE id = 1
	`).Scan(&state.ID, &lastImportAt, &sourcePath, &state.RecordsImported)
	if err != nil {
		return nil, err
	}

	if lastImportAt.Valid {
		state.LastImportAt = &lastImportAt.Time
	}
	state.SourcePath = StringPtr(sourcePath)
	return state, nil
}
