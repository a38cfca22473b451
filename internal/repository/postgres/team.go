package postgres

import (
	"context"
	"errors"
	"fmt"

	"barbershop-catalog/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberColumns     = `id, name, role, photo, bio, tags, instagram, facebook, linkedin, email, phone`
	selectTeamQuery   = `SELECT ` + memberColumns + ` FROM team_members ORDER BY position`
	selectMemberQuery = `SELECT ` + memberColumns + ` FROM team_members WHERE id=$1`
)

// TeamMembers returns team members in display order.
func (p *Postgres) TeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	rows, err := p.db.Query(ctx, selectTeamQuery)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	defer rows.Close()

	members := make([]entities.TeamMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			p.log.Errorw("failed to scan team member", "error", err)
			return nil, fmt.Errorf("scan team: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team: %w", err)
	}
	return members, nil
}

// TeamMember fetches one team member by id.
func (p *Postgres) TeamMember(ctx context.Context, id string) (*entities.TeamMember, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", entities.ErrTeamMemberNotFound, id)
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

func scanMember(row pgx.Row) (entities.TeamMember, error) {
	var (
		m    entities.TeamMember
		role string
	)
	err := row.Scan(
		&m.ID, &m.Name, &role, &m.Photo, &m.Bio, &m.Tags,
		&m.Socials.Instagram, &m.Socials.Facebook, &m.Socials.LinkedIn, &m.Socials.Email, &m.Socials.Phone,
	)
	m.Role = entities.Role(role)
	return m, err
}
