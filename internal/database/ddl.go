package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/JonMunkholm/fecparse/internal/schema"
)

// runSchema creates the run history tables.
//
//go:embed schema.sql
var runSchema string

// AddHeaderFunction is the name of the stored function that inserts header rows.
const AddHeaderFunction = "fec_add_header"

// DDL returns the full database schema: run history, one table per layout
// and the header insert function.
func DDL() string {
	var b strings.Builder
	b.WriteString(runSchema)
	for _, def := range schema.All() {
		b.WriteString("\n")
		b.WriteString(TableDDL(def))
	}
	b.WriteString("\n")
	b.WriteString(HeaderFunctionDDL(schema.ByGroup(schema.GroupHeader)))
	return b.String()
}

// Apply executes the DDL. Every statement is idempotent.
func Apply(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, DDL()); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// TableDDL returns the CREATE TABLE statement for a layout. Header tables are
// unique on their image ID column.
func TableDDL(def schema.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", schema.QuoteIdentifier(def.Table))
	b.WriteString("    id BIGSERIAL PRIMARY KEY,\n")
	for i, spec := range def.FieldSpecs {
		fmt.Fprintf(&b, "    %s %s", schema.QuoteIdentifier(spec.Column()), sqlType(spec.Type))
		if def.Group == schema.GroupHeader && i == 0 {
			b.WriteString(" NOT NULL UNIQUE")
		}
		b.WriteString(",\n")
	}
	b.WriteString("    imported_at TIMESTAMPTZ NOT NULL DEFAULT now()\n);\n")

	if def.Group == schema.GroupSchedule {
		fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS %s ON %s (%s);\n",
			schema.QuoteIdentifier("idx_"+def.Table+"_image"),
			schema.QuoteIdentifier(def.Table),
			schema.QuoteIdentifier(imageColumn(def)),
		)
	}
	return b.String()
}

// HeaderFunctionDDL returns fec_add_header(class, image_id, fields). The
// function returns the new row ID, or -1 when the image ID already exists.
// fields[1] is the image ID column; values arrive as text and are cast to the
// column types.
func HeaderFunctionDDL(headers []schema.Definition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE OR REPLACE FUNCTION %s(p_class TEXT, p_image_id TEXT, p_fields TEXT[])\n", AddHeaderFunction)
	b.WriteString("RETURNS BIGINT\nLANGUAGE plpgsql AS $$\nDECLARE\n    new_id BIGINT;\nBEGIN\n    CASE p_class\n")

	for _, def := range headers {
		table := schema.QuoteIdentifier(def.Table)
		fmt.Fprintf(&b, "    WHEN '%s' THEN\n", def.Kind)
		fmt.Fprintf(&b, "        IF EXISTS (SELECT 1 FROM %s WHERE %s = p_image_id) THEN\n",
			table, schema.QuoteIdentifier(imageColumn(def)))
		fmt.Fprintf(&b, "            RETURN %d;\n        END IF;\n", AlreadyImported)

		cols := make([]string, len(def.FieldSpecs))
		vals := make([]string, len(def.FieldSpecs))
		for i, spec := range def.FieldSpecs {
			cols[i] = schema.QuoteIdentifier(spec.Column())
			vals[i] = fmt.Sprintf("p_fields[%d]", i+1)
			if spec.Type != schema.FieldText {
				vals[i] += "::" + sqlType(spec.Type)
			}
		}
		fmt.Fprintf(&b, "        INSERT INTO %s (%s)\n", table, strings.Join(cols, ", "))
		fmt.Fprintf(&b, "        VALUES (%s)\n", strings.Join(vals, ", "))
		b.WriteString("        RETURNING id INTO new_id;\n")
	}

	b.WriteString("    ELSE\n        RAISE EXCEPTION 'unknown header class: %', p_class;\n")
	b.WriteString("    END CASE;\n    RETURN new_id;\nEND;\n$$;\n")
	return b.String()
}

func sqlType(t schema.FieldType) string {
	switch t {
	case schema.FieldDate:
		return "DATE"
	case schema.FieldNumeric:
		return "NUMERIC"
	default:
		return "TEXT"
	}
}

// imageColumn returns the column holding the image ID: the first column of a
// header, the second of a schedule.
func imageColumn(def schema.Definition) string {
	if def.Group == schema.GroupHeader || len(def.FieldSpecs) < 2 {
		return def.FieldSpecs[0].Column()
	}
	return def.FieldSpecs[1].Column()
}
