// Code generated by ent, DO NOT EDIT.

package alert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldID, id))
}

// Tipo applies equality check predicate on the "tipo" field. It's identical to TipoEQ.
func Tipo(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTipo, v))
}

// Titulo applies equality check predicate on the "titulo" field. It's identical to TituloEQ.
func Titulo(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTitulo, v))
}

// Descripcion applies equality check predicate on the "descripcion" field. It's identical to DescripcionEQ.
func Descripcion(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldDescripcion, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTaskID, v))
}

// EmailID applies equality check predicate on the "email_id" field. It's identical to EmailIDEQ.
func EmailID(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldEmailID, v))
}

// Severidad applies equality check predicate on the "severidad" field. It's identical to SeveridadEQ.
func Severidad(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldSeveridad, v))
}

// Leida applies equality check predicate on the "leida" field. It's identical to LeidaEQ.
func Leida(v bool) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldLeida, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// TipoEQ applies the EQ predicate on the "tipo" field.
func TipoEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTipo, v))
}

// TipoNEQ applies the NEQ predicate on the "tipo" field.
func TipoNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldTipo, v))
}

// TipoIn applies the In predicate on the "tipo" field.
func TipoIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldTipo, vs...))
}

// TipoNotIn applies the NotIn predicate on the "tipo" field.
func TipoNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldTipo, vs...))
}

// TipoGT applies the GT predicate on the "tipo" field.
func TipoGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldTipo, v))
}

// TipoGTE applies the GTE predicate on the "tipo" field.
func TipoGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldTipo, v))
}

// TipoLT applies the LT predicate on the "tipo" field.
func TipoLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldTipo, v))
}

// TipoLTE applies the LTE predicate on the "tipo" field.
func TipoLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldTipo, v))
}

// TipoContains applies the Contains predicate on the "tipo" field.
func TipoContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldTipo, v))
}

// TipoHasPrefix applies the HasPrefix predicate on the "tipo" field.
func TipoHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldTipo, v))
}

// TipoHasSuffix applies the HasSuffix predicate on the "tipo" field.
func TipoHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldTipo, v))
}

// TipoEqualFold applies the EqualFold predicate on the "tipo" field.
func TipoEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldTipo, v))
}

// TipoContainsFold applies the ContainsFold predicate on the "tipo" field.
func TipoContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldTipo, v))
}

// TituloEQ applies the EQ predicate on the "titulo" field.
func TituloEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTitulo, v))
}

// TituloNEQ applies the NEQ predicate on the "titulo" field.
func TituloNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldTitulo, v))
}

// TituloIn applies the In predicate on the "titulo" field.
func TituloIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldTitulo, vs...))
}

// TituloNotIn applies the NotIn predicate on the "titulo" field.
func TituloNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldTitulo, vs...))
}

// TituloGT applies the GT predicate on the "titulo" field.
func TituloGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldTitulo, v))
}

// TituloGTE applies the GTE predicate on the "titulo" field.
func TituloGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldTitulo, v))
}

// TituloLT applies the LT predicate on the "titulo" field.
func TituloLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldTitulo, v))
}

// TituloLTE applies the LTE predicate on the "titulo" field.
func TituloLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldTitulo, v))
}

// TituloContains applies the Contains predicate on the "titulo" field.
func TituloContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldTitulo, v))
}

// TituloHasPrefix applies the HasPrefix predicate on the "titulo" field.
func TituloHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldTitulo, v))
}

// TituloHasSuffix applies the HasSuffix predicate on the "titulo" field.
func TituloHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldTitulo, v))
}

// TituloEqualFold applies the EqualFold predicate on the "titulo" field.
func TituloEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldTitulo, v))
}

// TituloContainsFold applies the ContainsFold predicate on the "titulo" field.
func TituloContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldTitulo, v))
}

// DescripcionEQ applies the EQ predicate on the "descripcion" field.
func DescripcionEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldDescripcion, v))
}

// DescripcionNEQ applies the NEQ predicate on the "descripcion" field.
func DescripcionNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldDescripcion, v))
}

// DescripcionIn applies the In predicate on the "descripcion" field.
func DescripcionIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldDescripcion, vs...))
}

// DescripcionNotIn applies the NotIn predicate on the "descripcion" field.
func DescripcionNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldDescripcion, vs...))
}

// DescripcionGT applies the GT predicate on the "descripcion" field.
func DescripcionGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldDescripcion, v))
}

// DescripcionGTE applies the GTE predicate on the "descripcion" field.
func DescripcionGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldDescripcion, v))
}

// DescripcionLT applies the LT predicate on the "descripcion" field.
func DescripcionLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldDescripcion, v))
}

// DescripcionLTE applies the LTE predicate on the "descripcion" field.
func DescripcionLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldDescripcion, v))
}

// DescripcionContains applies the Contains predicate on the "descripcion" field.
func DescripcionContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldDescripcion, v))
}

// DescripcionHasPrefix applies the HasPrefix predicate on the "descripcion" field.
func DescripcionHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldDescripcion, v))
}

// DescripcionHasSuffix applies the HasSuffix predicate on the "descripcion" field.
func DescripcionHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldDescripcion, v))
}

// DescripcionIsNil applies the IsNil predicate on the "descripcion" field.
func DescripcionIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldDescripcion))
}

// DescripcionNotNil applies the NotNil predicate on the "descripcion" field.
func DescripcionNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldDescripcion))
}

// DescripcionEqualFold applies the EqualFold predicate on the "descripcion" field.
func DescripcionEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldDescripcion, v))
}

// DescripcionContainsFold applies the ContainsFold predicate on the "descripcion" field.
func DescripcionContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldDescripcion, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldTaskID))
}

// EmailIDEQ applies the EQ predicate on the "email_id" field.
func EmailIDEQ(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldEmailID, v))
}

// EmailIDNEQ applies the NEQ predicate on the "email_id" field.
func EmailIDNEQ(v uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldEmailID, v))
}

// EmailIDIn applies the In predicate on the "email_id" field.
func EmailIDIn(vs ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldEmailID, vs...))
}

// EmailIDNotIn applies the NotIn predicate on the "email_id" field.
func EmailIDNotIn(vs ...uuid.UUID) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldEmailID, vs...))
}

// EmailIDIsNil applies the IsNil predicate on the "email_id" field.
func EmailIDIsNil() predicate.Alert {
	return predicate.Alert(sql.FieldIsNull(FieldEmailID))
}

// EmailIDNotNil applies the NotNil predicate on the "email_id" field.
func EmailIDNotNil() predicate.Alert {
	return predicate.Alert(sql.FieldNotNull(FieldEmailID))
}

// SeveridadEQ applies the EQ predicate on the "severidad" field.
func SeveridadEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldSeveridad, v))
}

// SeveridadNEQ applies the NEQ predicate on the "severidad" field.
func SeveridadNEQ(v string) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldSeveridad, v))
}

// SeveridadIn applies the In predicate on the "severidad" field.
func SeveridadIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldSeveridad, vs...))
}

// SeveridadNotIn applies the NotIn predicate on the "severidad" field.
func SeveridadNotIn(vs ...string) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldSeveridad, vs...))
}

// SeveridadGT applies the GT predicate on the "severidad" field.
func SeveridadGT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldSeveridad, v))
}

// SeveridadGTE applies the GTE predicate on the "severidad" field.
func SeveridadGTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldSeveridad, v))
}

// SeveridadLT applies the LT predicate on the "severidad" field.
func SeveridadLT(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldSeveridad, v))
}

// SeveridadLTE applies the LTE predicate on the "severidad" field.
func SeveridadLTE(v string) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldSeveridad, v))
}

// SeveridadContains applies the Contains predicate on the "severidad" field.
func SeveridadContains(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContains(FieldSeveridad, v))
}

// SeveridadHasPrefix applies the HasPrefix predicate on the "severidad" field.
func SeveridadHasPrefix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasPrefix(FieldSeveridad, v))
}

// SeveridadHasSuffix applies the HasSuffix predicate on the "severidad" field.
func SeveridadHasSuffix(v string) predicate.Alert {
	return predicate.Alert(sql.FieldHasSuffix(FieldSeveridad, v))
}

// SeveridadEqualFold applies the EqualFold predicate on the "severidad" field.
func SeveridadEqualFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldEqualFold(FieldSeveridad, v))
}

// SeveridadContainsFold applies the ContainsFold predicate on the "severidad" field.
func SeveridadContainsFold(v string) predicate.Alert {
	return predicate.Alert(sql.FieldContainsFold(FieldSeveridad, v))
}

// LeidaEQ applies the EQ predicate on the "leida" field.
func LeidaEQ(v bool) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldLeida, v))
}

// LeidaNEQ applies the NEQ predicate on the "leida" field.
func LeidaNEQ(v bool) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldLeida, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Alert {
	return predicate.Alert(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEmail applies the HasEdge predicate on the "email" edge.
func HasEmail() predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailWith applies the HasEdge predicate on the "email" edge with a given conditions (other predicates).
func HasEmailWith(preds ...predicate.EmailMessage) predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := newEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Alert {
	return predicate.Alert(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Alert) predicate.Alert {
	return predicate.Alert(sql.NotPredicates(p))
}
