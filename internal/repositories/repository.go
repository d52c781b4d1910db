package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"parc-system/pkg/types"
)

// ListSpec borne ce qu'un appelant peut filtrer, chercher et trier sur une
// table. Toute colonne hors liste blanche est ignorée silencieusement.
// Join décrit une jointure à appliquer à la liste et au comptage.
type Join struct {
	Expr     string
	JoinType string
}

type ListSpec struct {
	Table          string
	Alias          string
	Joins          []Join
	FilterColumns  []string
	SearchColumns  []string
	SortColumns    []string
	DefaultOrderBy string
}

func (s ListSpec) baseAlias() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Table
}

// column qualifie un nom de colonne avec l'alias de base, sauf s'il est
// déjà qualifié (colonne d'une table jointe).
func (s ListSpec) column(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return fmt.Sprintf("%s.%s", s.baseAlias(), name)
}

// FromTarget retourne la cible FROM, aliasée si nécessaire.
func (s ListSpec) FromTarget() string {
	if s.Alias != "" && s.Alias != s.Table {
		return fmt.Sprintf("%s AS %s", s.Table, s.Alias)
	}
	return s.Table
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if strings.EqualFold(val, item) {
			return true
		}
	}
	return false
}

func applyWhereConditions(builder sq.SelectBuilder, spec ListSpec, ownerID string, filter types.Filter) sq.SelectBuilder {
	for _, join := range spec.Joins {
		switch strings.ToUpper(join.JoinType) {
		case "LEFT":
			builder = builder.LeftJoin(join.Expr)
		case "RIGHT":
			builder = builder.RightJoin(join.Expr)
		default:
			builder = builder.Join(join.Expr)
		}
	}
	builder = builder.Where(sq.Eq{spec.column("owner_id"): ownerID})

	for key, val := range filter.Filter {
		if !contains(spec.FilterColumns, key) {
			continue
		}
		if str, ok := val.(string); ok && strings.Contains(str, ",") {
			builder = builder.Where(sq.Eq{spec.column(key): strings.Split(str, ",")})
		} else {
			builder = builder.Where(sq.Eq{spec.column(key): val})
		}
	}

	if filter.Search != "" && len(spec.SearchColumns) > 0 {
		pattern := fmt.Sprintf("%%%s%%", filter.Search)
		var conditions []sq.Sqlizer
		for _, col := range spec.SearchColumns {
			conditions = append(conditions, sq.Expr(fmt.Sprintf("%s ILIKE ?", spec.column(col)), pattern))
		}
		builder = builder.Where(sq.Or(conditions))
	}

	return builder
}

// ApplyListConditions complète un SELECT avec le périmètre propriétaire, les
// filtres autorisés, la recherche, le tri et la pagination.
func ApplyListConditions(builder sq.SelectBuilder, spec ListSpec, ownerID string, filter types.Filter) sq.SelectBuilder {
	builder = applyWhereConditions(builder, spec, ownerID, filter)

	ordered := false
	for field, direction := range filter.Sort {
		if !contains(spec.SortColumns, field) {
			continue
		}
		direction = strings.ToLower(direction)
		if direction != "asc" && direction != "desc" {
			continue
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", spec.column(field), strings.ToUpper(direction)))
		ordered = true
	}
	if !ordered && spec.DefaultOrderBy != "" {
		builder = builder.OrderBy(spec.DefaultOrderBy)
	}

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}
	return builder
}

// CountRows compte les lignes qui satisfont les mêmes conditions que la
// liste, sans tri ni pagination.
func CountRows(ctx context.Context, q querier, spec ListSpec, ownerID string, filter types.Filter) (uint64, error) {
	builder := sq.Select("COUNT(*)").
		From(spec.FromTarget()).
		PlaceholderFormat(sq.Dollar)
	builder = applyWhereConditions(builder, spec, ownerID, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("construction de la requête de comptage: %w", err)
	}

	var total uint64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("comptage sur %s: %w", spec.Table, err)
	}
	return total, nil
}
