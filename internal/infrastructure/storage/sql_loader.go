package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"MediaMap/internal/domain"
	"MediaMap/internal/loader"
)

const (
	defaultTable  = "articles"
	defaultDriver = "sqlite"
)

var tableExpr = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

var articleColumns = []string{
	"id", "source", "title", "url",
	"sentiment", "triple_sentiment", "insult_rating",
	"entities", "concepts", "triples",
}

// SQLLoader reads an annotated dataset from a Postgres or SQLite table.
// JSON columns hold the sentiment maps and token lists.
type SQLLoader struct{}

var _ loader.Loader = (*SQLLoader)(nil)

// NewSQLLoader builds the sql format loader.
func NewSQLLoader() *SQLLoader {
	return &SQLLoader{}
}

// Name identifies the loader inside the registry.
func (l *SQLLoader) Name() string {
	return "sql"
}

// Load selects every row of the configured table ordered by position.
// Options: driver (postgres|sqlite), dsn (falls back to Request.Path), table,
// source (restricts rows to one outlet).
func (l *SQLLoader) Load(ctx context.Context, req loader.Request) ([]domain.Record, error) {
	driver := option(req.Options, "driver", defaultDriver)
	dsn := option(req.Options, "dsn", req.Path)
	table := option(req.Options, "table", defaultTable)

	if dsn == "" {
		return nil, fmt.Errorf("dataset %s: dsn is empty", req.Name)
	}
	if !tableExpr.MatchString(table) {
		return nil, fmt.Errorf("dataset %s: invalid table name %q", req.Name, table)
	}

	placeholder, err := placeholderFor(driver)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", req.Name, err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: open %s: %w", req.Name, driver, err)
	}
	defer db.Close()

	query := sq.Select(articleColumns...).
		From(table).
		OrderBy("position").
		PlaceholderFormat(placeholder).
		RunWith(db)
	if src := option(req.Options, "source", ""); src != "" {
		query = query.Where(sq.Eq{"source": src})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: query articles: %w", req.Name, err)
	}

	var records []domain.Record
	for rows.Next() {
		var row articleRow
		if err := rows.Scan(row.targets()...); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("dataset %s: scan article: %w", req.Name, err)
		}
		records = append(records, row.toRecord(len(records)))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("dataset %s: rows iteration: %w", req.Name, rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("dataset %s: close rows: %w", req.Name, closeErr)
	}

	return records, nil
}

type articleRow struct {
	id              sql.NullString
	source          sql.NullString
	title           sql.NullString
	url             sql.NullString
	sentiment       sql.NullString
	tripleSentiment sql.NullString
	insultRating    sql.NullFloat64
	entities        sql.NullString
	concepts        sql.NullString
	triples         sql.NullString
}

func (r *articleRow) targets() []any {
	return []any{
		&r.id, &r.source, &r.title, &r.url,
		&r.sentiment, &r.tripleSentiment, &r.insultRating,
		&r.entities, &r.concepts, &r.triples,
	}
}

func (r *articleRow) toRecord(position int) domain.Record {
	article := domain.Article{
		ID:       r.id.String,
		Position: position,
		Source:   r.source.String,
		Title:    r.title.String,
		URL:      r.url.String,
	}
	if r.insultRating.Valid {
		rating := r.insultRating.Float64
		article.InsultRating = &rating
	}

	fail := func(column string, err error) domain.Record {
		return domain.Record{
			Article: article,
			Err:     fmt.Errorf("%w: column %s: %v", domain.ErrMalformedArticle, column, err),
		}
	}

	var err error
	if article.Sentiment, err = decodeSentiment(r.sentiment); err != nil {
		return fail("sentiment", err)
	}
	if article.TripleSentiment, err = decodeSentiment(r.tripleSentiment); err != nil {
		return fail("triple_sentiment", err)
	}
	if err = decodeJSON(r.entities, &article.Entities); err != nil {
		return fail("entities", err)
	}
	if err = decodeJSON(r.concepts, &article.Concepts); err != nil {
		return fail("concepts", err)
	}

	var triples [][]string
	if err = decodeJSON(r.triples, &triples); err != nil {
		return fail("triples", err)
	}
	if article.Triples, err = loader.Triples(triples); err != nil {
		return fail("triples", err)
	}

	return domain.Record{Article: article}
}

func decodeSentiment(col sql.NullString) (domain.Sentiment, error) {
	var raw map[string]*float64
	if err := decodeJSON(col, &raw); err != nil {
		return nil, err
	}
	return loader.Sentiment(raw), nil
}

func decodeJSON(col sql.NullString, v any) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), v)
}

func placeholderFor(driver string) (sq.PlaceholderFormat, error) {
	switch driver {
	case "postgres":
		return sq.Dollar, nil
	case "sqlite":
		return sq.Question, nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

func option(opts map[string]string, key, fallback string) string {
	if v, ok := opts[key]; ok && v != "" {
		return v
	}
	return fallback
}
