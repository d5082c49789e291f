// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tipo", Type: field.TypeString},
		{Name: "titulo", Type: field.TypeString, Size: 255},
		{Name: "descripcion", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "severidad", Type: field.TypeString, Default: "media"},
		{Name: "leida", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "email_id", Type: field.TypeUUID, Nullable: true},
		{Name: "task_id", Type: field.TypeUUID, Nullable: true},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_email_messages_alerts",
				Columns:    []*schema.Column{AlertsColumns[7]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "alerts_tasks_alerts",
				Columns:    []*schema.Column{AlertsColumns[8]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_leida",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[5]},
			},
			{
				Name:    "alert_tipo",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[1]},
			},
			{
				Name:    "alert_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[6]},
			},
		},
	}
	// AttachmentsColumns holds the columns for the "attachments" table.
	AttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "format", Type: field.TypeString, Nullable: true},
		{Name: "extracted_count", Type: field.TypeInt, Default: 0},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "email_id", Type: field.TypeUUID},
	}
	// AttachmentsTable holds the schema information for the "attachments" table.
	AttachmentsTable = &schema.Table{
		Name:       "attachments",
		Columns:    AttachmentsColumns,
		PrimaryKey: []*schema.Column{AttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attachments_email_messages_adjuntos",
				Columns:    []*schema.Column{AttachmentsColumns[8]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attachment_email_id",
				Unique:  false,
				Columns: []*schema.Column{AttachmentsColumns[8]},
			},
		},
	}
	// EmailMessagesColumns holds the columns for the "email_messages" table.
	EmailMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "sender_email", Type: field.TypeString},
		{Name: "sender_name", Type: field.TypeString, Nullable: true},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "body_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "body_html", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "has_attachments", Type: field.TypeBool, Default: false},
		{Name: "attachment_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// EmailMessagesTable holds the schema information for the "email_messages" table.
	EmailMessagesTable = &schema.Table{
		Name:       "email_messages",
		Columns:    EmailMessagesColumns,
		PrimaryKey: []*schema.Column{EmailMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "emailmessage_received_at",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[8]},
			},
			{
				Name:    "emailmessage_status",
				Unique:  false,
				Columns: []*schema.Column{EmailMessagesColumns[12]},
			},
		},
	}
	// LearnedRulesColumns holds the columns for the "learned_rules" table.
	LearnedRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rule_name", Type: field.TypeString, Unique: true},
		{Name: "sender_email", Type: field.TypeString},
		{Name: "urgency", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "times_triggered", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnedRulesTable holds the schema information for the "learned_rules" table.
	LearnedRulesTable = &schema.Table{
		Name:       "learned_rules",
		Columns:    LearnedRulesColumns,
		PrimaryKey: []*schema.Column{LearnedRulesColumns[0]},
	}
	// SenderProfilesColumns holds the columns for the "sender_profiles" table.
	SenderProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString, Default: "cliente"},
		{Name: "typical_urgency", Type: field.TypeString, Default: "media"},
		{Name: "typical_intent", Type: field.TypeString, Default: "otro"},
		{Name: "emails_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// SenderProfilesTable holds the schema information for the "sender_profiles" table.
	SenderProfilesTable = &schema.Table{
		Name:       "sender_profiles",
		Columns:    SenderProfilesColumns,
		PrimaryKey: []*schema.Column{SenderProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "senderprofile_domain",
				Unique:  false,
				Columns: []*schema.Column{SenderProfilesColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "codigo_cobertor", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "cuartel", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "hileras", Type: field.TypeInt, Nullable: true},
		{Name: "largo_metros", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,2)"}},
		{Name: "prioridad", Type: field.TypeString, Default: "normal"},
		{Name: "estado", Type: field.TypeString, Default: "pending"},
		{Name: "descripcion", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "notas", Type: field.TypeString, Nullable: true, Size: 500, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "origen", Type: field.TypeString},
		{Name: "urgente", Type: field.TypeBool, Default: false},
		{Name: "fecha_solicitud", Type: field.TypeTime},
		{Name: "fecha_completada", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email_id", Type: field.TypeUUID},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_email_messages_tasks",
				Columns:    []*schema.Column{TasksColumns[15]},
				RefColumns: []*schema.Column{EmailMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_email_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[15]},
			},
			{
				Name:    "task_estado",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_prioridad",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5]},
			},
			{
				Name:    "task_codigo_cobertor",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
		},
	}
	// ThreadPatternsColumns holds the columns for the "thread_patterns" table.
	ThreadPatternsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "total_messages", Type: field.TypeInt, Default: 0},
		{Name: "internal_participants", Type: field.TypeInt, Default: 0},
		{Name: "external_participants", Type: field.TypeInt, Default: 0},
		{Name: "has_forward", Type: field.TypeBool, Default: false},
		{Name: "has_attachments", Type: field.TypeBool, Default: false},
		{Name: "complexity", Type: field.TypeString, Default: "baja"},
	}
	// ThreadPatternsTable holds the schema information for the "thread_patterns" table.
	ThreadPatternsTable = &schema.Table{
		Name:       "thread_patterns",
		Columns:    ThreadPatternsColumns,
		PrimaryKey: []*schema.Column{ThreadPatternsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		AttachmentsTable,
		EmailMessagesTable,
		LearnedRulesTable,
		SenderProfilesTable,
		TasksTable,
		ThreadPatternsTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = EmailMessagesTable
	AlertsTable.ForeignKeys[1].RefTable = TasksTable
	AlertsTable.Annotation = &entsql.Annotation{
		Table: "alerts",
	}
	AttachmentsTable.ForeignKeys[0].RefTable = EmailMessagesTable
	AttachmentsTable.Annotation = &entsql.Annotation{
		Table: "attachments",
	}
	EmailMessagesTable.Annotation = &entsql.Annotation{
		Table: "email_messages",
	}
	LearnedRulesTable.Annotation = &entsql.Annotation{
		Table: "learned_rules",
	}
	SenderProfilesTable.Annotation = &entsql.Annotation{
		Table: "sender_profiles",
	}
	TasksTable.ForeignKeys[0].RefTable = EmailMessagesTable
	TasksTable.Annotation = &entsql.Annotation{
		Table: "tasks",
	}
	ThreadPatternsTable.Annotation = &entsql.Annotation{
		Table: "thread_patterns",
	}
}
