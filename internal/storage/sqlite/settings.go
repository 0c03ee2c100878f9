package sqlite

import (
	"fmt"

	"github.com/lcabreja/psiq/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "language":
			settings.Language = value
		case "api_url":
			settings.APIURL = value
		case "debug":
			settings.Debug = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("language", settings.Language); err != nil {
		return err
	}
	if _, err := stmt.Exec("api_url", settings.APIURL); err != nil {
		return err
	}
	if _, err := stmt.Exec("debug", fmt.Sprintf("%v", settings.Debug)); err != nil {
		return err
	}

	return tx.Commit()
}
