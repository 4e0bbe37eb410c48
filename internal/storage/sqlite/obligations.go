package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/models"
)

func (s *Store) AddObligation(obligation models.Obligation) error {
	if err := obligation.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO obligations (id, name, dosage, time, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		obligation.ID, obligation.Name, obligation.Dosage, obligation.Time,
		obligation.Active, obligation.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert obligation: %w", err)
	}

	return nil
}

func (s *Store) GetObligation(id string) (models.Obligation, error) {
	var obligation models.Obligation
	var createdAtStr string

	err := s.db.QueryRow(`
		SELECT id, name, dosage, time, active, created_at
		FROM obligations
		WHERE id = ?
	`, id).Scan(
		&obligation.ID, &obligation.Name, &obligation.Dosage, &obligation.Time,
		&obligation.Active, &createdAtStr,
	)

	if err == sql.ErrNoRows {
		return models.Obligation{}, fmt.Errorf("obligation not found")
	}
	if err != nil {
		return models.Obligation{}, fmt.Errorf("failed to get obligation: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return models.Obligation{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	obligation.CreatedAt = createdAt

	return obligation, nil
}

func (s *Store) GetAllObligations() ([]models.Obligation, error) {
	rows, err := s.db.Query(`
		SELECT id, name, dosage, time, active, created_at
		FROM obligations
		ORDER BY time ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query obligations: %w", err)
	}
	defer rows.Close()

	var obligations []models.Obligation
	for rows.Next() {
		var obligation models.Obligation
		var createdAtStr string

		err := rows.Scan(
			&obligation.ID, &obligation.Name, &obligation.Dosage, &obligation.Time,
			&obligation.Active, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation: %w", err)
		}

		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		obligation.CreatedAt = createdAt

		obligations = append(obligations, obligation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating obligations: %w", err)
	}

	return obligations, nil
}

func (s *Store) UpdateObligation(obligation models.Obligation) error {
	if err := obligation.Validate(); err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE obligations SET name = ?, dosage = ?, time = ?, active = ?
		WHERE id = ?
	`,
		obligation.Name, obligation.Dosage, obligation.Time, obligation.Active,
		obligation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update obligation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("obligation not found")
	}

	return nil
}

func (s *Store) DeleteObligation(id string) error {
	result, err := s.db.Exec(`DELETE FROM obligations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete obligation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("obligation not found")
	}

	return nil
}
