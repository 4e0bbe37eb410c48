package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
	"github.com/mwhitfield/caretrack/internal/models"
)

func (s *Store) AddLog(log models.DailyLog) error {
	if err := log.Validate(); err != nil {
		return err
	}

	day := log.Day
	if day == "" {
		day = log.Timestamp.Format(constants.DateFormat)
	}

	_, err := s.db.Exec(`
		INSERT INTO logs (
			id, category, timestamp, day, obligation_id, value, note,
			systolic, diastolic, heart_rate, weight, glucose
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		log.ID, string(log.Category), log.Timestamp.Format(time.RFC3339), day,
		log.ObligationID, log.Value, log.Note,
		log.Systolic, log.Diastolic, log.HeartRate, log.Weight, log.Glucose,
	)
	if err != nil {
		return fmt.Errorf("failed to insert log: %w", err)
	}

	return nil
}

func (s *Store) GetLogs(category constants.LogCategory, startDay, endDay string) ([]models.DailyLog, error) {
	rows, err := s.db.Query(`
		SELECT id, category, timestamp, day, obligation_id, value, note,
			systolic, diastolic, heart_rate, weight, glucose
		FROM logs
		WHERE category = ? AND day >= ? AND day <= ?
		ORDER BY timestamp ASC
	`, string(category), startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	return scanLogs(rows)
}

func (s *Store) GetLogsForDay(category constants.LogCategory, day string) ([]models.DailyLog, error) {
	return s.GetLogs(category, day, day)
}

func (s *Store) FirstLogDay(category constants.LogCategory) (string, error) {
	var day sql.NullString
	err := s.db.QueryRow(`
		SELECT MIN(day) FROM logs WHERE category = ?
	`, string(category)).Scan(&day)
	if err != nil {
		return "", fmt.Errorf("failed to query first log day: %w", err)
	}
	if !day.Valid {
		return "", nil
	}
	return day.String, nil
}

func scanLogs(rows *sql.Rows) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	for rows.Next() {
		var log models.DailyLog
		var category string
		var timestampStr string
		var obligationID, value, note sql.NullString

		err := rows.Scan(
			&log.ID, &category, &timestampStr, &log.Day, &obligationID, &value, &note,
			&log.Systolic, &log.Diastolic, &log.HeartRate, &log.Weight, &log.Glucose,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}

		log.Category = constants.LogCategory(category)
		log.ObligationID = obligationID.String
		log.Value = value.String
		log.Note = note.String

		timestamp, err := time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp: %w", err)
		}
		log.Timestamp = timestamp

		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating logs: %w", err)
	}

	return logs, nil
}
