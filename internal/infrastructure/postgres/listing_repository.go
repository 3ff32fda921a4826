package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Prakash-Banjade/smart-tutor/internal/catalog"
)

// ListingRepository persists marketplace listings. It backs the optional
// database-hydrated mode; the default deployment serves fixtures instead.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) Tutors(ctx context.Context) ([]catalog.Tutor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, avatar_url, rating, review_count, price, subjects,
		       education, location, distance, session_types, availability, description
		FROM tutor_listings
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Tutor
	for rows.Next() {
		var t catalog.Tutor
		var sessionTypes []string
		if err := rows.Scan(&t.ID, &t.Name, &t.AvatarURL, &t.Rating, &t.ReviewCount,
			&t.Price, &t.Subjects, &t.Education, &t.Location, &t.Distance,
			&sessionTypes, &t.Availability, &t.Description); err != nil {
			return nil, err
		}
		for _, st := range sessionTypes {
			t.SessionTypes = append(t.SessionTypes, catalog.SessionType(st))
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *ListingRepository) Groups(ctx context.Context) ([]catalog.StudyGroup, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, subject, description, location, distance, members, max_members,
		       meeting_frequency, meeting_days, next_meeting, study_level,
		       creator_name, creator_avatar_url
		FROM study_group_listings
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.StudyGroup
	for rows.Next() {
		var g catalog.StudyGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Subject, &g.Description, &g.Location,
			&g.Distance, &g.Members, &g.MaxMembers, &g.MeetingFrequency, &g.MeetingDays,
			&g.NextMeeting, &g.StudyLevel, &g.CreatedBy.Name, &g.CreatedBy.AvatarURL); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *ListingRepository) InsertTutor(ctx context.Context, t catalog.Tutor) error {
	sessionTypes := make([]string, 0, len(t.SessionTypes))
	for _, st := range t.SessionTypes {
		sessionTypes = append(sessionTypes, string(st))
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tutor_listings
			(id, name, avatar_url, rating, review_count, price, subjects,
			 education, location, distance, session_types, availability, description)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url,
			rating = EXCLUDED.rating, review_count = EXCLUDED.review_count,
			price = EXCLUDED.price, subjects = EXCLUDED.subjects,
			education = EXCLUDED.education, location = EXCLUDED.location,
			distance = EXCLUDED.distance, session_types = EXCLUDED.session_types,
			availability = EXCLUDED.availability, description = EXCLUDED.description,
			updated_at = $14
	`, t.ID, t.Name, t.AvatarURL, t.Rating, t.ReviewCount, t.Price, t.Subjects,
		t.Education, t.Location, t.Distance, sessionTypes, t.Availability, t.Description,
		time.Now())
	return err
}

func (r *ListingRepository) InsertGroup(ctx context.Context, g catalog.StudyGroup) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO study_group_listings
			(id, name, subject, description, location, distance, members, max_members,
			 meeting_frequency, meeting_days, next_meeting, study_level,
			 creator_name, creator_avatar_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, subject = EXCLUDED.subject,
			description = EXCLUDED.description, location = EXCLUDED.location,
			distance = EXCLUDED.distance, members = EXCLUDED.members,
			max_members = EXCLUDED.max_members,
			meeting_frequency = EXCLUDED.meeting_frequency,
			meeting_days = EXCLUDED.meeting_days, next_meeting = EXCLUDED.next_meeting,
			study_level = EXCLUDED.study_level, creator_name = EXCLUDED.creator_name,
			creator_avatar_url = EXCLUDED.creator_avatar_url,
			updated_at = $15
	`, g.ID, g.Name, g.Subject, g.Description, g.Location, g.Distance, g.Members,
		g.MaxMembers, g.MeetingFrequency, g.MeetingDays, g.NextMeeting, g.StudyLevel,
		g.CreatedBy.Name, g.CreatedBy.AvatarURL, time.Now())
	return err
}
