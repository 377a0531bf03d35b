package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/settings"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
)

// GetSettings returns the saved settings row.
func (s *Store) GetSettings(ctx context.Context) (settings.Settings, error) {
	if err := s.ready(ctx); err != nil {
		return settings.Settings{}, err
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT current_campaign_id, recent_campaigns, auto_backup,
		        backup_frequency_hours, theme, created_at, updated_at,
		        last_backup_at
		   FROM app_settings
		  WHERE id = 1`,
	)

	var (
		out        settings.Settings
		recents    string
		autoBackup int
		createdAt  int64
		updatedAt  int64
		lastBackup sql.NullInt64
	)
	err := row.Scan(
		&out.CurrentCampaignID,
		&recents,
		&autoBackup,
		&out.BackupFrequencyHours,
		&out.Theme,
		&createdAt,
		&updatedAt,
		&lastBackup,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Settings{}, storage.ErrNotFound
		}
		return settings.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	if err := json.Unmarshal([]byte(recents), &out.RecentCampaigns); err != nil {
		return settings.Settings{}, fmt.Errorf("decode recent campaigns: %w", err)
	}
	if out.RecentCampaigns == nil {
		out.RecentCampaigns = []string{}
	}
	out.AutoBackup = autoBackup != 0
	out.CreatedAt = fromMillis(createdAt)
	out.UpdatedAt = fromMillis(updatedAt)
	if lastBackup.Valid {
		ts := fromMillis(lastBackup.Int64)
		out.LastBackupAt = &ts
	}
	return out, nil
}

// PutSettings upserts the settings row.
func (s *Store) PutSettings(ctx context.Context, in settings.Settings) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	recents := in.RecentCampaigns
	if recents == nil {
		recents = []string{}
	}
	encoded, err := json.Marshal(recents)
	if err != nil {
		return fmt.Errorf("encode recent campaigns: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO app_settings (
		   id, current_campaign_id, recent_campaigns, auto_backup,
		   backup_frequency_hours, theme, created_at, updated_at, last_backup_at
		 ) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   current_campaign_id = excluded.current_campaign_id,
		   recent_campaigns = excluded.recent_campaigns,
		   auto_backup = excluded.auto_backup,
		   backup_frequency_hours = excluded.backup_frequency_hours,
		   theme = excluded.theme,
		   updated_at = excluded.updated_at,
		   last_backup_at = excluded.last_backup_at`,
		in.CurrentCampaignID,
		string(encoded),
		boolToInt(in.AutoBackup),
		in.BackupFrequencyHours,
		in.Theme,
		toMillis(in.CreatedAt),
		toMillis(in.UpdatedAt),
		nullableMillis(in.LastBackupAt),
	)
	if err != nil {
		return fmt.Errorf("put settings: %w", err)
	}
	return nil
}
