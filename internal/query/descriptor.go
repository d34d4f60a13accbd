package query

// Kind is the expected type of a scalar filter parameter. Values that
// fail to coerce drop only their own predicate, never the request.
type Kind int

const (
	String Kind = iota
	Number
	Boolean
	Date
	UUID
)

// IDKind distinguishes uuid/string primary keys from integer ones.
// Integer ids are validated at the boundary (bad input is a 400).
type IDKind int

const (
	IDString IDKind = iota
	IDNumeric
)

// ScalarFilter maps one query parameter to an equality predicate on a column.
type ScalarFilter struct {
	Param  string
	Column string
	Kind   Kind
}

// ArrayFilter maps one query parameter to a text[] column. The default
// predicate is containment (row array holds all requested values); when
// the AnyParam flag is truthy it becomes overlap (any value matches).
type ArrayFilter struct {
	Param    string
	AnyParam string
	Column   string
}

// ParentFilter configures the tri-state self-reference helper:
// an explicit id parameter wins; otherwise onlyParents/onlySubs map to
// IS NULL / IS NOT NULL on the parent column.
type ParentFilter struct {
	Param            string
	Column           string
	OnlyParentsParam string
	OnlySubsParam    string
}

// Descriptor is the per-collection configuration consumed by the
// generic list engine. All per-collection variation lives here; the
// filter/sort/page algorithms are identical across collections.
type Descriptor struct {
	Name   string
	Model  func() interface{}
	Slice  func() interface{}
	IDKind IDKind

	Scalars    []ScalarFilter
	Searchable []string
	DateColumn string
	Arrays     []ArrayFilter
	Parent     *ParentFilter

	SortKeys    map[string]string
	DefaultSort string

	// Patchable lists the JSON field names accepted by PATCH; columns
	// are derived by snake_casing the field name.
	Patchable []string
}

// PatchColumns maps incoming patch fields to their columns, dropping
// anything outside the whitelist.
func (d *Descriptor) PatchColumns(body map[string]interface{}) map[string]interface{} {
	updates := make(map[string]interface{})
	for _, field := range d.Patchable {
		if v, ok := body[field]; ok {
			updates[ToSnake(field)] = v
		}
	}
	return updates
}
