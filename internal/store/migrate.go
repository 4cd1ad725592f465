package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	entschema "github.com/abhisek/modelcheck/ent/schema"
)

const validationRunsTable = "validation_runs"

// runsTable is the migration table for entschema.ValidationRun.
var runsTable = mustTable(validationRunsTable, entschema.ValidationRun{})

// migrate creates missing tables, columns and indexes.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, runsTable)
}

func mustTable(name string, s ent.Interface) *schema.Table {
	t, err := tableFor(name, s)
	if err != nil {
		panic(err)
	}
	return t
}

// tableFor builds the SQL table of an ent schema with an "id" primary key.
// Edges and mixins are not supported.
func tableFor(name string, s ent.Interface) (*schema.Table, error) {
	t := &schema.Table{Name: name}
	columns := make(map[string]*schema.Column)
	for _, f := range s.Fields() {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("table %s: field %s: %w", name, d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
			Default:  d.Default,
			Comment:  d.Comment,
		}
		if d.StorageKey != "" {
			c.Name = d.StorageKey
		}
		t.Columns = append(t.Columns, c)
		columns[d.Name] = c
	}

	id, ok := columns["id"]
	if !ok {
		return nil, fmt.Errorf("table %s: missing id field", name)
	}
	// The primary key is already unique.
	id.Unique = false
	t.PrimaryKey = []*schema.Column{id}

	for _, ix := range s.Indexes() {
		d := ix.Descriptor()
		idx := &schema.Index{
			Name:   strings.ToLower(strings.ReplaceAll(name, "_", "")) + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		if d.StorageKey != "" {
			idx.Name = d.StorageKey
		}
		for _, f := range d.Fields {
			c, ok := columns[f]
			if !ok {
				return nil, fmt.Errorf("table %s: index on unknown field %s", name, f)
			}
			idx.Columns = append(idx.Columns, c)
		}
		t.Indexes = append(t.Indexes, idx)
	}
	return t, nil
}
