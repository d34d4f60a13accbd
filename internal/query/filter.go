package query

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Condition is a single predicate with its bound arguments. Expr only
// ever contains column names from a Descriptor and placeholders; user
// input travels exclusively through Args.
type Condition struct {
	Expr string
	Args []interface{}
}

// Filter is a conjunction of conditions.
type Filter struct {
	Conditions []Condition
}

// BuildFilter translates untyped request parameters into a Filter using
// the collection's descriptor. Returns nil when no recognized parameter
// produced a predicate, in which case callers must not filter at all.
//
// Malformed values (unparseable numbers, bad booleans, bad dates, bad
// uuids) silently drop their own predicate. This permissiveness is deliberate:
// a bad filter degrades to a broader result set instead of a 4xx.
func BuildFilter(d *Descriptor, params map[string][]string) *Filter {
	var conds []Condition

	for _, sf := range d.Scalars {
		raw := first(params, sf.Param)
		if raw == "" {
			continue
		}
		switch sf.Kind {
		case Number:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
				continue
			}
			conds = append(conds, Condition{sf.Column + " = ?", []interface{}{n}})
		case Boolean:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				continue
			}
			conds = append(conds, Condition{sf.Column + " = ?", []interface{}{b}})
		case Date:
			t, ok := parseDate(raw)
			if !ok {
				continue
			}
			conds = append(conds, Condition{sf.Column + " = ?", []interface{}{t}})
		case UUID:
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			conds = append(conds, Condition{sf.Column + " = ?", []interface{}{id}})
		default:
			conds = append(conds, Condition{sf.Column + " = ?", []interface{}{raw}})
		}
	}

	if search := first(params, "search"); search != "" && len(d.Searchable) > 0 {
		exprs := make([]string, len(d.Searchable))
		args := make([]interface{}, len(d.Searchable))
		needle := "%" + strings.ToLower(search) + "%"
		for i, col := range d.Searchable {
			exprs[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = needle
		}
		conds = append(conds, Condition{"(" + strings.Join(exprs, " OR ") + ")", args})
	}

	// Both bounds are required; a lone startDate or endDate adds nothing.
	if d.DateColumn != "" {
		start, startOK := parseDate(first(params, "startDate"))
		end, endOK := parseDate(first(params, "endDate"))
		if startOK && endOK {
			conds = append(conds, Condition{
				d.DateColumn + " >= ? AND " + d.DateColumn + " <= ?",
				[]interface{}{start, end},
			})
		}
	}

	for _, af := range d.Arrays {
		values := splitValues(params[af.Param])
		if len(values) == 0 {
			continue
		}
		op := "@>"
		if truthy(first(params, af.AnyParam)) {
			op = "&&"
		}
		conds = append(conds, Condition{
			af.Column + " " + op + " ?::text[]",
			[]interface{}{ArrayLiteral(values)},
		})
	}

	if p := d.Parent; p != nil {
		// Parent columns are uuid-typed; a malformed id is treated as
		// absent so the tri-state flags can still apply.
		if id, err := uuid.Parse(first(params, p.Param)); err == nil {
			conds = append(conds, Condition{p.Column + " = ?", []interface{}{id}})
		} else if truthy(first(params, p.OnlyParentsParam)) {
			conds = append(conds, Condition{p.Column + " IS NULL", nil})
		} else if truthy(first(params, p.OnlySubsParam)) {
			conds = append(conds, Condition{p.Column + " IS NOT NULL", nil})
		}
	}

	if len(conds) == 0 {
		return nil
	}
	return &Filter{Conditions: conds}
}

// ArrayLiteral builds a Postgres text[] literal from values. Escapes
// backslash first, then the two brace characters, then wraps in braces.
// The result is always passed as a bound ?::text[] argument, never
// spliced into SQL text.
func ArrayLiteral(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, "{", `\{`)
		v = strings.ReplaceAll(v, "}", `\}`)
		escaped[i] = v
	}
	return "{" + strings.Join(escaped, ",") + "}"
}

// splitValues flattens repeated and comma-separated parameter values
// into a single trimmed list.
func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func first(params map[string][]string, key string) string {
	if vs, ok := params[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

func truthy(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}

// ToSnake converts a camelCase JSON field name to its snake_case column.
func ToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
