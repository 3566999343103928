package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/chartwise/internal/db"
	"github.com/alexanderramin/chartwise/internal/domain"
)

// SQLiteChartRepo implements ChartRepo and MetaRepo over a DBTX, so it can
// be used directly or scoped to a transaction.
type SQLiteChartRepo struct {
	db db.DBTX
}

// NewSQLiteChartRepo creates a new SQLiteChartRepo.
func NewSQLiteChartRepo(d db.DBTX) *SQLiteChartRepo {
	return &SQLiteChartRepo{db: d}
}

var (
	_ ChartRepo = (*SQLiteChartRepo)(nil)
	_ MetaRepo  = (*SQLiteChartRepo)(nil)
)

func (r *SQLiteChartRepo) InsertChart(ctx context.Context, position int, c domain.Chart) error {
	lists := make([]string, 0, 5)
	for _, l := range [][]string{c.UseCases, c.Pros, c.Cons, c.DataTypes, c.Libraries} {
		enc, err := encodeList(l)
		if err != nil {
			return fmt.Errorf("encoding chart %s: %w", c.ID, err)
		}
		lists = append(lists, enc)
	}

	query := `INSERT INTO charts (id, position, name, category, description, use_cases, pros, cons, data_types, examples, libraries, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		position,
		c.Name,
		string(c.Category),
		c.Description,
		lists[0], lists[1], lists[2], lists[3],
		c.Examples,
		lists[4],
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting chart %s: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteChartRepo) InsertRule(ctx context.Context, position int, rule domain.RecommendationRule) error {
	query := `INSERT INTO recommendation_rules (position, data_type, purpose, chart_id) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, position, rule.DataType, rule.Purpose, rule.ChartID)
	if err != nil {
		return fmt.Errorf("inserting recommendation rule (%s, %s): %w", rule.DataType, rule.Purpose, err)
	}
	return nil
}

func (r *SQLiteChartRepo) ListCharts(ctx context.Context) ([]domain.Chart, error) {
	query := `SELECT id, name, category, description, use_cases, pros, cons, data_types, examples, libraries
		FROM charts ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing charts: %w", err)
	}
	defer rows.Close()

	var charts []domain.Chart
	for rows.Next() {
		c, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating charts: %w", err)
	}
	return charts, nil
}

func (r *SQLiteChartRepo) ListRules(ctx context.Context) ([]domain.RecommendationRule, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data_type, purpose, chart_id FROM recommendation_rules ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing recommendation rules: %w", err)
	}
	defer rows.Close()

	var rules []domain.RecommendationRule
	for rows.Next() {
		var rule domain.RecommendationRule
		if err := rows.Scan(&rule.DataType, &rule.Purpose, &rule.ChartID); err != nil {
			return nil, fmt.Errorf("scanning recommendation rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recommendation rules: %w", err)
	}
	return rules, nil
}

func (r *SQLiteChartRepo) CountCharts(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM charts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting charts: %w", err)
	}
	return n, nil
}

func (r *SQLiteChartRepo) CountRules(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recommendation_rules`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting recommendation rules: %w", err)
	}
	return n, nil
}

func (r *SQLiteChartRepo) DeleteAll(ctx context.Context) error {
	// Rules cascade from charts, but clear them explicitly in case foreign
	// keys are disabled on this connection.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recommendation_rules`); err != nil {
		return fmt.Errorf("deleting recommendation rules: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM charts`); err != nil {
		return fmt.Errorf("deleting charts: %w", err)
	}
	return nil
}

func (r *SQLiteChartRepo) SetMeta(ctx context.Context, key, value string) error {
	query := `INSERT INTO catalog_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("setting catalog meta %s: %w", key, err)
	}
	return nil
}

func (r *SQLiteChartRepo) GetMeta(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM catalog_meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading catalog meta %s: %w", key, err)
	}
	return value, true, nil
}

func scanChart(rows *sql.Rows) (domain.Chart, error) {
	var (
		c                                          domain.Chart
		category                                   string
		useCases, pros, cons, dataTypes, libraries string
	)
	if err := rows.Scan(&c.ID, &c.Name, &category, &c.Description,
		&useCases, &pros, &cons, &dataTypes, &c.Examples, &libraries); err != nil {
		return domain.Chart{}, fmt.Errorf("scanning chart: %w", err)
	}
	c.Category = domain.Category(category)

	var err error
	if c.UseCases, err = decodeList("use_cases", useCases); err != nil {
		return domain.Chart{}, err
	}
	if c.Pros, err = decodeList("pros", pros); err != nil {
		return domain.Chart{}, err
	}
	if c.Cons, err = decodeList("cons", cons); err != nil {
		return domain.Chart{}, err
	}
	if c.DataTypes, err = decodeList("data_types", dataTypes); err != nil {
		return domain.Chart{}, err
	}
	if c.Libraries, err = decodeList("libraries", libraries); err != nil {
		return domain.Chart{}, err
	}
	return c, nil
}
