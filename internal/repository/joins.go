package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Join pulls one display column from a parent table into a listing of its child table.
// The parent row must belong to the same tenant as the child row, otherwise the
// column comes back empty.
type Join struct {
	Table      string // parent table
	ForeignKey string // column of the child table holding the parent id
	Column     string // parent column to select
	As         string // alias in the result
}

// joinPlan describes a denormalised listing rooted at Base
type joinPlan struct {
	Base  string
	Joins []Join
}

var (
	fieldJoins = joinPlan{
		Base: "fields",
		Joins: []Join{
			{Table: "farms", ForeignKey: "farm_id", Column: "name", As: "farm_name"},
		},
	}

	cropJoins = joinPlan{
		Base: "crops",
		Joins: []Join{
			{Table: "farms", ForeignKey: "farm_id", Column: "name", As: "farm_name"},
			{Table: "fields", ForeignKey: "field_id", Column: "name", As: "field_name"},
			{Table: "crop_statuses", ForeignKey: "status_id", Column: "name", As: "status_name"},
		},
	}

	expenseJoins = joinPlan{
		Base: "expenses",
		Joins: []Join{
			{Table: "crops", ForeignKey: "crop_id", Column: "name", As: "crop_name"},
			{Table: "expense_categories", ForeignKey: "category_id", Column: "name", As: "category_name"},
		},
	}

	incomeJoins = joinPlan{
		Base: "incomes",
		Joins: []Join{
			{Table: "crops", ForeignKey: "crop_id", Column: "name", As: "crop_name"},
		},
	}
)

// query builds the joined SELECT restricted to one tenant
func (p joinPlan) query(db *gorm.DB, tenantID uint) *gorm.DB {
	selects := make([]string, 0, len(p.Joins)+1)
	selects = append(selects, p.Base+".*")

	q := db.Table(p.Base)
	for i, j := range p.Joins {
		alias := fmt.Sprintf("j%d", i)
		q = q.Joins(fmt.Sprintf(
			"LEFT JOIN %s %s ON %s.id = %s.%s AND %s.tenant_id = %s.tenant_id",
			j.Table, alias, alias, p.Base, j.ForeignKey, alias, p.Base,
		))
		selects = append(selects, fmt.Sprintf("COALESCE(%s.%s, '') AS %s", alias, j.Column, j.As))
	}

	return q.Select(strings.Join(selects, ", ")).Where(p.Base+".tenant_id = ?", tenantID)
}

// listJoined returns every row of the tenant, ordered by id
func listJoined[D any](ctx context.Context, db *gorm.DB, plan joinPlan, tenantID uint) ([]D, error) {
	rows := []D{}
	err := plan.query(db.WithContext(ctx), tenantID).
		Order(plan.Base + ".id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// getJoined returns one row of the tenant or gorm.ErrRecordNotFound
func getJoined[D any](ctx context.Context, db *gorm.DB, plan joinPlan, tenantID, id uint) (*D, error) {
	rows := []D{}
	err := plan.query(db.WithContext(ctx), tenantID).
		Where(plan.Base+".id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
