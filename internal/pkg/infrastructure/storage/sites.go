package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/vineetparikh-rph/temprx360/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func (s *Storage) AddSite(ctx context.Context, site types.Site) error {
	if site.ID == "" || site.Code == "" {
		return ErrNoID
	}

	args := pgx.NamedArgs{
		"site_id": site.ID,
		"code":    site.Code,
		"name":    site.Name,
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO sites (site_id, code, name)
		VALUES (@site_id, @code, @name)
	`, args)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

func (s *Storage) UpdateSite(ctx context.Context, site types.Site) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE sites
		SET name = @name, modified_on = CURRENT_TIMESTAMP
		WHERE site_id = @site_id
	`, pgx.NamedArgs{
		"site_id": site.ID,
		"name":    site.Name,
	})
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *Storage) GetSite(ctx context.Context, conditions ...ConditionFunc) (types.Site, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var siteID, code, name string

	query := fmt.Sprintf(`
		SELECT site_id, code, name
		FROM sites
		%s
	`, where)

	err := s.pool.QueryRow(ctx, query, args).Scan(&siteID, &code, &name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Site{}, ErrNoRows
		}
		return types.Site{}, err
	}

	return types.Site{ID: siteID, Code: code, Name: name}, nil
}

func (s *Storage) QuerySites(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Site], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "code"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	var offsetLimit string

	if condition.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", condition.Offset())
	}

	if condition.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", condition.Limit())
	}

	var siteID, code, name string
	var count int64

	query := fmt.Sprintf(`
		SELECT site_id, code, name, count(*) OVER () AS count
		FROM sites
		%s
		ORDER BY %s %s
		%s
	`, where, condition.SortBy(), condition.SortOrder(), offsetLimit)

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Site]{}, err
	}

	sites := make([]types.Site, 0)

	_, err = pgx.ForEachRow(rows, []any{&siteID, &code, &name, &count}, func() error {
		sites = append(sites, types.Site{ID: siteID, Code: code, Name: name})
		return nil
	})
	if err != nil {
		return types.Collection[types.Site]{}, err
	}

	return types.Collection[types.Site]{
		Data:       sites,
		Count:      uint64(len(sites)),
		Limit:      uint64(condition.Limit()),
		Offset:     uint64(condition.Offset()),
		TotalCount: uint64(count),
	}, nil
}
