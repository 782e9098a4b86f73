package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Columns returns column names of a model in field order.
func Columns(model any) []string {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var res []string
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("db"); tag != "" {
			res = append(res, tag)
		}
	}
	return res
}

// Values returns field values of a model in the order of Columns.
func Values(model any) []any {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var res []any
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("db") != "" {
			res = append(res, v.Field(i).Interface())
		}
	}
	return res
}

// InsertSQL returns a parameterized INSERT statement for SQLite.
func InsertSQL(m DDLGenerator) string {
	cols := Columns(m)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		m.TableName(), strings.Join(cols, ", "), marks)
}

// Release DDL methods
func (r Release) TableDDL() string {
	return generateDDL(r, r.TableName())
}

func (r Release) IndexDDL() []string {
	return []string{}
}

func (r Release) TableName() string {
	return "wcvp_releases"
}

// Name DDL methods
func (n Name) TableDDL() string {
	return generateDDL(n, n.TableName())
}

func (n Name) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_wcvp_names_family ON wcvp_names(family);",
		"CREATE INDEX idx_wcvp_names_taxon_name ON wcvp_names(taxon_name);",
		"CREATE INDEX idx_wcvp_names_accepted ON wcvp_names(accepted_plant_name_id);",
		"CREATE INDEX idx_wcvp_names_powo ON wcvp_names(powo_id);",
		"CREATE INDEX idx_wcvp_names_name_string ON wcvp_names(name_string_id);",
		"CREATE INDEX idx_wcvp_names_canonical ON wcvp_names(canonical_id);",
	}
}

func (n Name) TableName() string {
	return "wcvp_names"
}
