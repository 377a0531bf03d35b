package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/core/filter"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/domain/campaign"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
)

const campaignColumns = `id, name, description, setting, dm_notes,
	status, is_active, current_session,
	total_sessions, total_characters, total_npcs, total_locations,
	total_quests, completed_quests, total_encounters, difficulty,
	player_count, active_characters, average_level,
	created_at, updated_at, last_session_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (campaign.Campaign, error) {
	var (
		c             campaign.Campaign
		status        int
		isActive      int
		difficulty    int
		createdAt     int64
		updatedAt     int64
		lastSessionAt sql.NullInt64
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Setting,
		&c.DMNotes,
		&status,
		&isActive,
		&c.CurrentSession,
		&c.Info.TotalSessions,
		&c.Info.TotalCharacters,
		&c.Info.TotalNPCs,
		&c.Info.TotalLocations,
		&c.Info.TotalQuests,
		&c.Info.CompletedQuests,
		&c.Info.TotalEncounters,
		&difficulty,
		&c.PlayerCount,
		&c.ActiveCharacters,
		&c.AverageLevel,
		&createdAt,
		&updatedAt,
		&lastSessionAt,
	)
	if err != nil {
		return campaign.Campaign{}, err
	}
	c.Status = campaign.Status(status)
	c.IsActive = isActive != 0
	c.Info.Difficulty = campaign.Difficulty(difficulty)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	if lastSessionAt.Valid {
		t := fromMillis(lastSessionAt.Int64)
		c.LastSessionDate = &t
	}
	return c, nil
}

func campaignArgs(c campaign.Campaign) []any {
	return []any{
		c.ID,
		c.Name,
		c.Description,
		c.Setting,
		c.DMNotes,
		int(c.Status),
		boolToInt(c.IsActive),
		c.CurrentSession,
		c.Info.TotalSessions,
		c.Info.TotalCharacters,
		c.Info.TotalNPCs,
		c.Info.TotalLocations,
		c.Info.TotalQuests,
		c.Info.CompletedQuests,
		c.Info.TotalEncounters,
		int(c.Info.Difficulty),
		c.PlayerCount,
		c.ActiveCharacters,
		c.AverageLevel,
		toMillis(c.CreatedAt),
		toMillis(c.UpdatedAt),
		nullableMillis(c.LastSessionDate),
	}
}

// CreateCampaign inserts one campaign record.
func (s *Store) CreateCampaign(ctx context.Context, c campaign.Campaign) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("campaign id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO campaigns (`+campaignColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		campaignArgs(c)...,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

// PutCampaign overwrites an existing campaign record.
func (s *Store) PutCampaign(ctx context.Context, c campaign.Campaign) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("campaign id is required")
	}

	args := campaignArgs(c)
	res, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE campaigns
		    SET name = ?, description = ?, setting = ?, dm_notes = ?,
		        status = ?, is_active = ?, current_session = ?,
		        total_sessions = ?, total_characters = ?, total_npcs = ?, total_locations = ?,
		        total_quests = ?, completed_quests = ?, total_encounters = ?, difficulty = ?,
		        player_count = ?, active_characters = ?, average_level = ?,
		        created_at = ?, updated_at = ?, last_session_at = ?
		  WHERE id = ?`,
		append(args[1:], c.ID)...,
	)
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetCampaign returns one campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id string) (campaign.Campaign, error) {
	if err := s.ready(ctx); err != nil {
		return campaign.Campaign{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return campaign.Campaign{}, fmt.Errorf("campaign id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return campaign.Campaign{}, storage.ErrNotFound
		}
		return campaign.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// DeleteCampaign removes one campaign by id.
func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("campaign id is required")
	}

	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM campaigns WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListCampaigns returns one page of campaigns ordered by id.
func (s *Store) ListCampaigns(ctx context.Context, cond filter.SQLCondition, pageSize int, pageToken string) (storage.CampaignPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.CampaignPage{}, err
	}
	if pageSize <= 0 {
		return storage.CampaignPage{}, fmt.Errorf("page size must be greater than zero")
	}
	pageToken = strings.TrimSpace(pageToken)

	var (
		where  []string
		params []any
	)
	if cond.Clause != "" {
		where = append(where, "("+cond.Clause+")")
		params = append(params, cond.Params...)
	}
	if pageToken != "" {
		where = append(where, "id > ?")
		params = append(params, pageToken)
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id ASC LIMIT ?`
	params = append(params, pageSize+1)

	campaigns, err := s.queryCampaigns(ctx, query, params...)
	if err != nil {
		return storage.CampaignPage{}, fmt.Errorf("list campaigns: %w", err)
	}

	page := storage.CampaignPage{Campaigns: campaigns}
	if len(page.Campaigns) > pageSize {
		page.NextPageToken = page.Campaigns[pageSize-1].ID
		page.Campaigns = page.Campaigns[:pageSize]
	}
	return page, nil
}

// AllCampaigns returns every campaign ordered by id.
func (s *Store) AllCampaigns(ctx context.Context) ([]campaign.Campaign, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	campaigns, err := s.queryCampaigns(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *Store) queryCampaigns(ctx context.Context, query string, args ...any) ([]campaign.Campaign, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]campaign.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return campaigns, nil
}
