package query

import (
	"strconv"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Sort is a validated (column, direction) pair.
type Sort struct {
	Column    string
	Direction string
}

func (s Sort) SQL() string {
	return s.Column + " " + s.Direction
}

// BuildSort resolves sortBy against the collection whitelist, falling
// back to the collection default. Only a case-insensitive "asc" yields
// ascending; everything else (including absent) is descending.
func BuildSort(d *Descriptor, sortBy, sortDir string) Sort {
	col, ok := d.SortKeys[sortBy]
	if !ok {
		col = d.DefaultSort
	}
	dir := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		dir = "ASC"
	}
	return Sort{Column: col, Direction: dir}
}

// Page is a (limit, offset) window.
type Page struct {
	Limit  int
	Page   int
	Offset int
}

// BuildPage clamps limit to [1, 500] and page to >= 1; malformed input
// degrades to the defaults rather than erroring.
func BuildPage(limitRaw, pageRaw string) Page {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.Atoi(pageRaw)
	if err != nil || page < 1 {
		page = 1
	}

	return Page{Limit: limit, Page: page, Offset: (page - 1) * limit}
}
