// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeString, Nullable: true},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "file_kind", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "ocr_status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_error", Type: field.TypeString, Nullable: true},
		{Name: "summary_status", Type: field.TypeString, Default: "pending"},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "summary_error", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_user_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[16], DocumentsColumns[9]},
			},
			{
				Name:    "document_user_id_ocr_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[16], DocumentsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		UsersTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = UsersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
