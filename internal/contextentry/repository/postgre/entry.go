package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	repo "smart-todo/internal/contextentry/repository"
	"smart-todo/internal/model"
)

const entryColumns = `id, user_id, content, entry_type, entry_date, source,
	importance_score, sentiment, summary, keywords,
	extracted_tasks, extracted_deadlines, extracted_people,
	created_at, updated_at`

// entryRow mirrors one context_entries row with nullable columns.
type entryRow struct {
	id                 string
	userID             string
	content            string
	entryType          string
	entryDate          time.Time
	source             sql.NullString
	importanceScore    float64
	sentiment          sql.NullString
	summary            sql.NullString
	keywords           pq.StringArray
	extractedTasks     pq.StringArray
	extractedDeadlines pq.StringArray
	extractedPeople    pq.StringArray
	createdAt          time.Time
	updatedAt          time.Time
}

func (row *entryRow) scanFields() []any {
	return []any{
		&row.id, &row.userID, &row.content, &row.entryType, &row.entryDate, &row.source,
		&row.importanceScore, &row.sentiment, &row.summary, &row.keywords,
		&row.extractedTasks, &row.extractedDeadlines, &row.extractedPeople,
		&row.createdAt, &row.updatedAt,
	}
}

func (row *entryRow) toModel() model.ContextEntry {
	return model.ContextEntry{
		ID:                 row.id,
		UserID:             row.userID,
		Content:            row.content,
		EntryType:          model.EntryType(row.entryType),
		EntryDate:          row.entryDate,
		Source:             row.source.String,
		ImportanceScore:    row.importanceScore,
		Sentiment:          model.Sentiment(row.sentiment.String),
		Summary:            row.summary.String,
		Keywords:           row.keywords,
		ExtractedTasks:     row.extractedTasks,
		ExtractedDeadlines: row.extractedDeadlines,
		ExtractedPeople:    row.extractedPeople,
		CreatedAt:          row.createdAt,
		UpdatedAt:          row.updatedAt,
	}
}

// CreateEntry inserts a new ContextEntry row and returns the created entity.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (model.ContextEntry, error) {
	query := fmt.Sprintf(`
		INSERT INTO context_entries (id, user_id, content, entry_type, entry_date, source,
			importance_score, keywords, extracted_tasks, extracted_deadlines, extracted_people,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s`, entryColumns)

	var row entryRow
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Content, string(opt.EntryType), opt.EntryDate, opt.Source,
		opt.ImportanceScore, pq.StringArray{}, pq.StringArray{}, pq.StringArray{}, pq.StringArray{},
	).Scan(row.scanFields()...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return model.ContextEntry{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneEntry retrieves a single ContextEntry by the provided filters.
// Returns zero-value entry (ID == "") when not found.
func (r *implRepository) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (model.ContextEntry, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM context_entries WHERE %s LIMIT 1", entryColumns, mods)

	var row entryRow
	err := r.db.QueryRowContext(ctx, query, args...).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.ContextEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEntry"), err)
		return model.ContextEntry{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListEntries returns a filtered, paginated list of entries and the total count.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]model.ContextEntry, int, error) {
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM context_entries WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM context_entries %s", entryColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ContextEntry
	for rows.Next() {
		var row entryRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		entries = append(entries, row.toModel())
	}
	return entries, total, nil
}

// ListRecentEntries returns the newest entries for the AI prompts.
func (r *implRepository) ListRecentEntries(ctx context.Context, userID string, limit int) ([]model.ContextEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM context_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2`, entryColumns)

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []model.ContextEntry
	for rows.Next() {
		var row entryRow
		if err := rows.Scan(row.scanFields()...); err != nil {
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, row.toModel())
	}
	return entries, nil
}

// UpdateEntryAnalysis overwrites all extracted fields in one statement.
func (r *implRepository) UpdateEntryAnalysis(ctx context.Context, opt repo.UpdateEntryAnalysisOptions) (model.ContextEntry, error) {
	query := fmt.Sprintf(`
		UPDATE context_entries
		SET importance_score = $1,
			sentiment = $2,
			summary = $3,
			keywords = $4,
			extracted_tasks = $5,
			extracted_deadlines = $6,
			extracted_people = $7,
			updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING %s`, entryColumns)

	var row entryRow
	err := r.db.QueryRowContext(ctx, query,
		opt.ImportanceScore, string(opt.Sentiment), opt.Summary,
		stringArray(opt.Keywords), stringArray(opt.ExtractedTasks),
		stringArray(opt.ExtractedDeadlines), stringArray(opt.ExtractedPeople),
		opt.ID, opt.UserID,
	).Scan(row.scanFields()...)
	if err == sql.ErrNoRows {
		return model.ContextEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntryAnalysis"), err)
		return model.ContextEntry{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteEntry removes a ContextEntry by ID + owner.
func (r *implRepository) DeleteEntry(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM context_entries WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func stringArray(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}
