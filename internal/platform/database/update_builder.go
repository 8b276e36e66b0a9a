// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package database provides SQL construction helpers shared by the pgx
repositories. Schema column references live in the nested schema package.
*/
package database

import (
	"fmt"
	"strings"
)

// UpdateBuilder accumulates column assignments for a partial UPDATE
// statement. Every CMS resource supports field-level partial updates, so
// the SET clause is assembled from whichever fields a request carried.
//
// The zero value is ready to use. Callers must not render an update with
// no assignments; the service layer treats that case as a no-op before
// the store is reached.
type UpdateBuilder struct {
	assignments []string
	args        []any
}

// Set appends "column = $n" with the next placeholder index.
func (builder *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	builder.args = append(builder.args, value)
	builder.assignments = append(builder.assignments,
		fmt.Sprintf("%s = $%d", column, len(builder.args)))
	return builder
}

// SetCast appends "column = $n::type" for values the database must parse,
// such as raw date strings.
func (builder *UpdateBuilder) SetCast(column string, value any, sqlType string) *UpdateBuilder {
	builder.args = append(builder.args, value)
	builder.assignments = append(builder.assignments,
		fmt.Sprintf("%s = $%d::%s", column, len(builder.args), sqlType))
	return builder
}

// Empty reports whether no assignment has been added.
func (builder *UpdateBuilder) Empty() bool {
	return len(builder.assignments) == 0
}

// UpdateByID renders "UPDATE table SET ... WHERE id = $n RETURNING id".
// updated_at is always refreshed alongside the explicit assignments.
func (builder *UpdateBuilder) UpdateByID(table string, id int) (string, []any) {
	assignments := append(builder.assignments, "updated_at = NOW()")
	args := append(builder.args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING id",
		table,
		strings.Join(assignments, ", "),
		len(args),
	)
	return query, args
}
