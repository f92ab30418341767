package sqlstore

import "strings"

// orderClause resolves a "field:direction" sort token against a field
// whitelist. Unknown fields fall back to updated_at; any direction
// other than the literal "asc" falls back to descending.
func orderClause(sort string, fields map[string]bool) string {
	field, direction, _ := strings.Cut(sort, ":")
	if !fields[field] {
		field = "updated_at"
	}
	dir := "DESC"
	if direction == "asc" {
		dir = "ASC"
	}
	return field + " " + dir
}

// whereClause joins predicates into a WHERE fragment, empty when there
// are no predicates.
func whereClause(preds []string) string {
	if len(preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(preds, " AND ")
}

var spiritSortFields = map[string]bool{
	"id": true, "name": true, "role": true, "state": true,
	"created_at": true, "updated_at": true,
}

var registrySortFields = map[string]bool{
	"id": true, "name": true, "type": true, "status": true,
	"created_at": true, "updated_at": true,
}
