package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

func (s *Store) AddTrigger(trigger models.Trigger) error {
	payloadJSON, err := json.Marshal(trigger.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	var fireAtStr *string
	if !trigger.FireAt.IsZero() {
		str := trigger.FireAt.Format(time.RFC3339)
		fireAtStr = &str
	}

	_, err = s.db.Exec(`
		INSERT INTO triggers (handle, owner, recurring, hour, minute, fire_at, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		trigger.Handle, string(trigger.Owner), trigger.Recurring,
		trigger.Hour, trigger.Minute, fireAtStr, string(payloadJSON),
		trigger.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trigger: %w", err)
	}

	return nil
}

func (s *Store) GetTriggers() ([]models.Trigger, error) {
	rows, err := s.db.Query(`
		SELECT handle, owner, recurring, hour, minute, fire_at, payload, created_at
		FROM triggers
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query triggers: %w", err)
	}
	defer rows.Close()

	var triggers []models.Trigger
	for rows.Next() {
		var trigger models.Trigger
		var owner, payloadJSON, createdAtStr string
		var fireAtStr sql.NullString

		err := rows.Scan(
			&trigger.Handle, &owner, &trigger.Recurring,
			&trigger.Hour, &trigger.Minute, &fireAtStr, &payloadJSON, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}

		trigger.Owner = constants.TriggerOwner(owner)

		if err := json.Unmarshal([]byte(payloadJSON), &trigger.Payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}

		if fireAtStr.Valid {
			fireAt, err := time.Parse(time.RFC3339, fireAtStr.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse fire_at: %w", err)
			}
			trigger.FireAt = fireAt
		}

		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		trigger.CreatedAt = createdAt

		triggers = append(triggers, trigger)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating triggers: %w", err)
	}

	return triggers, nil
}

func (s *Store) DeleteTrigger(handle string) error {
	_, err := s.db.Exec(`DELETE FROM triggers WHERE handle = ?`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete trigger: %w", err)
	}
	return nil
}

func (s *Store) DeleteTriggersByOwner(owner constants.TriggerOwner) error {
	_, err := s.db.Exec(`DELETE FROM triggers WHERE owner = ?`, string(owner))
	if err != nil {
		return fmt.Errorf("failed to delete triggers: %w", err)
	}
	return nil
}

func (s *Store) AddDelivery(delivery models.Delivery) error {
	payloadJSON, err := json.Marshal(delivery.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO deliveries (id, payload, delivered_at, snoozed, dismissed)
		VALUES (?, ?, ?, ?, ?)
	`,
		delivery.ID, string(payloadJSON), delivery.DeliveredAt.Format(time.RFC3339),
		delivery.Snoozed, delivery.Dismissed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert delivery: %w", err)
	}

	return nil
}

func (s *Store) GetDelivery(id string) (models.Delivery, error) {
	var delivery models.Delivery
	var payloadJSON, deliveredAtStr string

	err := s.db.QueryRow(`
		SELECT id, payload, delivered_at, snoozed, dismissed
		FROM deliveries
		WHERE id = ?
	`, id).Scan(&delivery.ID, &payloadJSON, &deliveredAtStr, &delivery.Snoozed, &delivery.Dismissed)

	if err == sql.ErrNoRows {
		return models.Delivery{}, fmt.Errorf("delivery not found")
	}
	if err != nil {
		return models.Delivery{}, fmt.Errorf("failed to get delivery: %w", err)
	}

	if err := json.Unmarshal([]byte(payloadJSON), &delivery.Payload); err != nil {
		return models.Delivery{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	deliveredAt, err := time.Parse(time.RFC3339, deliveredAtStr)
	if err != nil {
		return models.Delivery{}, fmt.Errorf("failed to parse delivered_at: %w", err)
	}
	delivery.DeliveredAt = deliveredAt

	return delivery, nil
}

func (s *Store) UpdateDelivery(delivery models.Delivery) error {
	result, err := s.db.Exec(`
		UPDATE deliveries SET snoozed = ?, dismissed = ? WHERE id = ?
	`, delivery.Snoozed, delivery.Dismissed, delivery.ID)
	if err != nil {
		return fmt.Errorf("failed to update delivery: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("delivery not found")
	}

	return nil
}
