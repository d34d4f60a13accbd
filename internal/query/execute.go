package query

import (
	"reflect"

	"gorm.io/gorm"
)

// Result is one page of records. Count is the number of rows in this
// page, not a total across all pages.
type Result struct {
	Items interface{}
	Page  int
	Limit int
	Count int
}

// ApplyFilter attaches every condition of f (AND-combined) to q.
// A nil filter leaves q unfiltered.
func ApplyFilter(q *gorm.DB, f *Filter) *gorm.DB {
	if f == nil {
		return q
	}
	for _, c := range f.Conditions {
		q = q.Where(c.Expr, c.Args...)
	}
	return q
}

// Execute runs exactly one read against the collection.
func Execute(db *gorm.DB, d *Descriptor, f *Filter, s Sort, p Page) (*Result, error) {
	dest := d.Slice()
	q := ApplyFilter(db.Model(d.Model()), f)
	if err := q.Order(s.SQL()).Limit(p.Limit).Offset(p.Offset).Find(dest).Error; err != nil {
		return nil, err
	}
	items := reflect.ValueOf(dest).Elem()
	return &Result{
		Items: items.Interface(),
		Page:  p.Page,
		Limit: p.Limit,
		Count: items.Len(),
	}, nil
}
