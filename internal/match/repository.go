package match

import (
    "context"
    "database/sql"
    "errors"

    "github.com/jmoiron/sqlx"
    "github.com/lib/pq"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
    // Profiles for scoring
    GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error)
    GetPrimaryPhotoAttributes(ctx context.Context, userID int64) (*PhotoAttributeSet, error)
    ListCandidates(ctx context.Context, gender Gender, excludeID int64, limit int) ([]*UserProfile, error)
    GetActiveUserIDs(ctx context.Context, daysActive int) ([]int64, error)

    // Daily picks
    CreateDailyPick(ctx context.Context, pick *DailyPick) error
    GetUserDailyPicks(ctx context.Context, userID int64, limit int) ([]*DailyPick, error)
    HasTodayPicks(ctx context.Context, userID int64) (bool, error)
    DeleteExpiredPicks(ctx context.Context) error
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) GetUserProfile(ctx context.Context, userID int64) (*UserProfile, error) {
    var (
        profile   UserProfile
        interests pq.StringArray
    )

    query := `
        SELECT user_id, gender, relationship_intent, social_boundary, appearance_preference, interests
        FROM profiles
        WHERE user_id = $1
    `

    row := r.db.QueryRowxContext(ctx, query, userID)
    err := row.Scan(
        &profile.ID, &profile.Gender, &profile.Intent,
        &profile.Boundary, &profile.AppearancePref, &interests,
    )
    if err == sql.ErrNoRows {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }

    profile.Interests = []string(interests)
    return &profile, nil
}

func (r *postgresRepository) GetPrimaryPhotoAttributes(ctx context.Context, userID int64) (*PhotoAttributeSet, error) {
    var attrs PhotoAttributeSet

    query := `
        SELECT style_score, taste_score, coordination_score, quality_score, beauty_score, face_detected
        FROM photos
        WHERE user_id = $1 AND is_primary = TRUE AND analyzed_at IS NOT NULL
        ORDER BY created_at DESC
        LIMIT 1
    `

    row := r.db.QueryRowxContext(ctx, query, userID)
    err := row.StructScan(&attrs)
    if err == sql.ErrNoRows {
        // No analyzed primary photo; scoring falls back to defaults.
        return nil, nil
    }
    if err != nil {
        return nil, err
    }

    return &attrs, nil
}

func (r *postgresRepository) ListCandidates(ctx context.Context, gender Gender, excludeID int64, limit int) ([]*UserProfile, error) {
    query := `
        SELECT user_id, gender, relationship_intent, social_boundary, appearance_preference, interests
        FROM profiles
        WHERE gender = $1 AND user_id != $2
        ORDER BY last_active_at DESC
        LIMIT $3
    `

    rows, err := r.db.QueryxContext(ctx, query, gender, excludeID, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var profiles []*UserProfile
    for rows.Next() {
        var (
            profile   UserProfile
            interests pq.StringArray
        )
        err := rows.Scan(
            &profile.ID, &profile.Gender, &profile.Intent,
            &profile.Boundary, &profile.AppearancePref, &interests,
        )
        if err != nil {
            continue
        }
        profile.Interests = []string(interests)
        profiles = append(profiles, &profile)
    }

    return profiles, rows.Err()
}

func (r *postgresRepository) GetActiveUserIDs(ctx context.Context, daysActive int) ([]int64, error) {
    var ids []int64

    query := `
        SELECT user_id FROM profiles
        WHERE last_active_at > NOW() - ($1 || ' days')::interval
        ORDER BY user_id
    `

    err := r.db.SelectContext(ctx, &ids, query, daysActive)
    return ids, err
}

func (r *postgresRepository) CreateDailyPick(ctx context.Context, pick *DailyPick) error {
    query := `
        INSERT INTO daily_picks (
            user_id, recommended_user_id, score, reasons, dimension_scores, expires_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, recommended_user_id, pick_date)
        DO UPDATE SET score = $3, reasons = $4, dimension_scores = $5
        RETURNING id, created_at
    `

    return r.db.QueryRowxContext(
        ctx, query,
        pick.UserID, pick.RecommendedUserID, pick.Score,
        pick.Reasons, pick.DimensionScores, pick.ExpiresAt,
    ).Scan(&pick.ID, &pick.CreatedAt)
}

func (r *postgresRepository) GetUserDailyPicks(ctx context.Context, userID int64, limit int) ([]*DailyPick, error) {
    var picks []*DailyPick

    query := `
        SELECT id, user_id, recommended_user_id, score, reasons, dimension_scores,
               is_seen, expires_at, created_at
        FROM daily_picks
        WHERE user_id = $1 AND (expires_at IS NULL OR expires_at > NOW())
        ORDER BY score DESC, created_at DESC
        LIMIT $2
    `

    err := r.db.SelectContext(ctx, &picks, query, userID, limit)
    return picks, err
}

func (r *postgresRepository) HasTodayPicks(ctx context.Context, userID int64) (bool, error) {
    var exists bool

    query := `
        SELECT EXISTS(
            SELECT 1 FROM daily_picks
            WHERE user_id = $1 AND pick_date = CURRENT_DATE
        )
    `

    err := r.db.GetContext(ctx, &exists, query, userID)
    return exists, err
}

func (r *postgresRepository) DeleteExpiredPicks(ctx context.Context) error {
    query := `
        DELETE FROM daily_picks
        WHERE expires_at < NOW() OR created_at < NOW() - INTERVAL '7 days'
    `

    _, err := r.db.ExecContext(ctx, query)
    return err
}
