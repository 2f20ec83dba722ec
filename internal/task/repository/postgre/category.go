package postgre

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
)

// GetOrCreateCategory resolves a category by unique name, creating it when
// absent. The upsert keeps concurrent callers from racing on the unique
// name constraint.
func (r *implRepository) GetOrCreateCategory(ctx context.Context, name string) (model.TaskCategory, error) {
	name = strings.TrimSpace(name)

	if cached, ok := r.categoryCache.Get(name); ok {
		return cached, nil
	}

	const query = `
		INSERT INTO task_categories (id, name, color, description, created_at)
		VALUES ($1, $2, $3, '', NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, color, description, created_at`

	var cat model.TaskCategory
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), name, model.DefaultCategoryColor).Scan(
		&cat.ID, &cat.Name, &cat.Color, &cat.Description, &cat.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreateCategory"), err)
		return model.TaskCategory{}, repo.ErrFailedToInsert
	}

	r.categoryCache.Add(name, cat)
	return cat, nil
}

// ListCategories returns all categories with their task counts.
func (r *implRepository) ListCategories(ctx context.Context) ([]model.TaskCategory, map[string]int, error) {
	return r.listCategoriesWithCounts(ctx, `
		SELECT c.id, c.name, c.color, c.description, c.created_at, COUNT(tc.task_id)
		FROM task_categories c
		LEFT JOIN task_category_links tc ON tc.category_id = c.id
		GROUP BY c.id, c.name, c.color, c.description, c.created_at
		ORDER BY c.name`)
}

// ListPopularCategories returns the most-used categories, busiest first.
func (r *implRepository) ListPopularCategories(ctx context.Context, limit int) ([]model.TaskCategory, map[string]int, error) {
	if limit <= 0 {
		limit = 10
	}
	return r.listCategoriesWithCounts(ctx, `
		SELECT c.id, c.name, c.color, c.description, c.created_at, COUNT(tc.task_id) AS task_count
		FROM task_categories c
		JOIN task_category_links tc ON tc.category_id = c.id
		GROUP BY c.id, c.name, c.color, c.description, c.created_at
		HAVING COUNT(tc.task_id) > 0
		ORDER BY task_count DESC
		LIMIT `+strconv.Itoa(limit))
}

func (r *implRepository) listCategoriesWithCounts(ctx context.Context, query string) ([]model.TaskCategory, map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []model.TaskCategory
	counts := make(map[string]int)
	for rows.Next() {
		var cat model.TaskCategory
		var count int
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Color, &cat.Description, &cat.CreatedAt, &count); err != nil {
			return nil, nil, repo.ErrFailedToList
		}
		categories = append(categories, cat)
		counts[cat.ID] = count
	}
	return categories, counts, nil
}

// AttachCategories links categories to a task, ignoring duplicates so a
// re-run of the same enrichment job converges.
func (r *implRepository) AttachCategories(ctx context.Context, taskID string, categoryIDs []string) error {
	const query = `
		INSERT INTO task_category_links (task_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	for _, categoryID := range categoryIDs {
		if _, err := r.db.ExecContext(ctx, query, taskID, categoryID); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("AttachCategories"), err)
			return repo.ErrFailedToInsert
		}
	}
	return nil
}

// ListTaskCategories returns the categories attached to a task.
func (r *implRepository) ListTaskCategories(ctx context.Context, taskID string) ([]model.TaskCategory, error) {
	const query = `
		SELECT c.id, c.name, c.color, c.description, c.created_at
		FROM task_categories c
		JOIN task_category_links tc ON tc.category_id = c.id
		WHERE tc.task_id = $1
		ORDER BY c.name`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTaskCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var categories []model.TaskCategory
	for rows.Next() {
		var cat model.TaskCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Color, &cat.Description, &cat.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *implRepository) listCategoryIDs(ctx context.Context, taskID string) ([]string, error) {
	const query = `SELECT category_id FROM task_category_links WHERE task_id = $1`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("listCategoryIDs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, repo.ErrFailedToList
		}
		ids = append(ids, id)
	}
	return ids, nil
}

