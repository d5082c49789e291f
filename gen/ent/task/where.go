// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// EmailID applies equality check predicate on the "email_id" field. It's identical to EmailIDEQ.
func EmailID(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEmailID, v))
}

// CodigoCobertor applies equality check predicate on the "codigo_cobertor" field. It's identical to CodigoCobertorEQ.
func CodigoCobertor(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCodigoCobertor, v))
}

// Cuartel applies equality check predicate on the "cuartel" field. It's identical to CuartelEQ.
func Cuartel(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCuartel, v))
}

// Hileras applies equality check predicate on the "hileras" field. It's identical to HilerasEQ.
func Hileras(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHileras, v))
}

// LargoMetros applies equality check predicate on the "largo_metros" field. It's identical to LargoMetrosEQ.
func LargoMetros(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLargoMetros, v))
}

// Prioridad applies equality check predicate on the "prioridad" field. It's identical to PrioridadEQ.
func Prioridad(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrioridad, v))
}

// Estado applies equality check predicate on the "estado" field. It's identical to EstadoEQ.
func Estado(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstado, v))
}

// Descripcion applies equality check predicate on the "descripcion" field. It's identical to DescripcionEQ.
func Descripcion(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescripcion, v))
}

// Notas applies equality check predicate on the "notas" field. It's identical to NotasEQ.
func Notas(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNotas, v))
}

// Origen applies equality check predicate on the "origen" field. It's identical to OrigenEQ.
func Origen(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOrigen, v))
}

// Urgente applies equality check predicate on the "urgente" field. It's identical to UrgenteEQ.
func Urgente(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUrgente, v))
}

// FechaSolicitud applies equality check predicate on the "fecha_solicitud" field. It's identical to FechaSolicitudEQ.
func FechaSolicitud(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFechaSolicitud, v))
}

// FechaCompletada applies equality check predicate on the "fecha_completada" field. It's identical to FechaCompletadaEQ.
func FechaCompletada(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFechaCompletada, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailIDEQ applies the EQ predicate on the "email_id" field.
func EmailIDEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEmailID, v))
}

// EmailIDNEQ applies the NEQ predicate on the "email_id" field.
func EmailIDNEQ(v uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEmailID, v))
}

// EmailIDIn applies the In predicate on the "email_id" field.
func EmailIDIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEmailID, vs...))
}

// EmailIDNotIn applies the NotIn predicate on the "email_id" field.
func EmailIDNotIn(vs ...uuid.UUID) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEmailID, vs...))
}

// CodigoCobertorEQ applies the EQ predicate on the "codigo_cobertor" field.
func CodigoCobertorEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCodigoCobertor, v))
}

// CodigoCobertorNEQ applies the NEQ predicate on the "codigo_cobertor" field.
func CodigoCobertorNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCodigoCobertor, v))
}

// CodigoCobertorIn applies the In predicate on the "codigo_cobertor" field.
func CodigoCobertorIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCodigoCobertor, vs...))
}

// CodigoCobertorNotIn applies the NotIn predicate on the "codigo_cobertor" field.
func CodigoCobertorNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCodigoCobertor, vs...))
}

// CodigoCobertorGT applies the GT predicate on the "codigo_cobertor" field.
func CodigoCobertorGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCodigoCobertor, v))
}

// CodigoCobertorGTE applies the GTE predicate on the "codigo_cobertor" field.
func CodigoCobertorGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCodigoCobertor, v))
}

// CodigoCobertorLT applies the LT predicate on the "codigo_cobertor" field.
func CodigoCobertorLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCodigoCobertor, v))
}

// CodigoCobertorLTE applies the LTE predicate on the "codigo_cobertor" field.
func CodigoCobertorLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCodigoCobertor, v))
}

// CodigoCobertorContains applies the Contains predicate on the "codigo_cobertor" field.
func CodigoCobertorContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCodigoCobertor, v))
}

// CodigoCobertorHasPrefix applies the HasPrefix predicate on the "codigo_cobertor" field.
func CodigoCobertorHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCodigoCobertor, v))
}

// CodigoCobertorHasSuffix applies the HasSuffix predicate on the "codigo_cobertor" field.
func CodigoCobertorHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCodigoCobertor, v))
}

// CodigoCobertorIsNil applies the IsNil predicate on the "codigo_cobertor" field.
func CodigoCobertorIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCodigoCobertor))
}

// CodigoCobertorNotNil applies the NotNil predicate on the "codigo_cobertor" field.
func CodigoCobertorNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCodigoCobertor))
}

// CodigoCobertorEqualFold applies the EqualFold predicate on the "codigo_cobertor" field.
func CodigoCobertorEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCodigoCobertor, v))
}

// CodigoCobertorContainsFold applies the ContainsFold predicate on the "codigo_cobertor" field.
func CodigoCobertorContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCodigoCobertor, v))
}

// CuartelEQ applies the EQ predicate on the "cuartel" field.
func CuartelEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCuartel, v))
}

// CuartelNEQ applies the NEQ predicate on the "cuartel" field.
func CuartelNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCuartel, v))
}

// CuartelIn applies the In predicate on the "cuartel" field.
func CuartelIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCuartel, vs...))
}

// CuartelNotIn applies the NotIn predicate on the "cuartel" field.
func CuartelNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCuartel, vs...))
}

// CuartelGT applies the GT predicate on the "cuartel" field.
func CuartelGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCuartel, v))
}

// CuartelGTE applies the GTE predicate on the "cuartel" field.
func CuartelGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCuartel, v))
}

// CuartelLT applies the LT predicate on the "cuartel" field.
func CuartelLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCuartel, v))
}

// CuartelLTE applies the LTE predicate on the "cuartel" field.
func CuartelLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCuartel, v))
}

// CuartelContains applies the Contains predicate on the "cuartel" field.
func CuartelContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCuartel, v))
}

// CuartelHasPrefix applies the HasPrefix predicate on the "cuartel" field.
func CuartelHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCuartel, v))
}

// CuartelHasSuffix applies the HasSuffix predicate on the "cuartel" field.
func CuartelHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCuartel, v))
}

// CuartelIsNil applies the IsNil predicate on the "cuartel" field.
func CuartelIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCuartel))
}

// CuartelNotNil applies the NotNil predicate on the "cuartel" field.
func CuartelNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCuartel))
}

// CuartelEqualFold applies the EqualFold predicate on the "cuartel" field.
func CuartelEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCuartel, v))
}

// CuartelContainsFold applies the ContainsFold predicate on the "cuartel" field.
func CuartelContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCuartel, v))
}

// HilerasEQ applies the EQ predicate on the "hileras" field.
func HilerasEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldHileras, v))
}

// HilerasNEQ applies the NEQ predicate on the "hileras" field.
func HilerasNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldHileras, v))
}

// HilerasIn applies the In predicate on the "hileras" field.
func HilerasIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldHileras, vs...))
}

// HilerasNotIn applies the NotIn predicate on the "hileras" field.
func HilerasNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldHileras, vs...))
}

// HilerasGT applies the GT predicate on the "hileras" field.
func HilerasGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldHileras, v))
}

// HilerasGTE applies the GTE predicate on the "hileras" field.
func HilerasGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldHileras, v))
}

// HilerasLT applies the LT predicate on the "hileras" field.
func HilerasLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldHileras, v))
}

// HilerasLTE applies the LTE predicate on the "hileras" field.
func HilerasLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldHileras, v))
}

// HilerasIsNil applies the IsNil predicate on the "hileras" field.
func HilerasIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldHileras))
}

// HilerasNotNil applies the NotNil predicate on the "hileras" field.
func HilerasNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldHileras))
}

// LargoMetrosEQ applies the EQ predicate on the "largo_metros" field.
func LargoMetrosEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLargoMetros, v))
}

// LargoMetrosNEQ applies the NEQ predicate on the "largo_metros" field.
func LargoMetrosNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLargoMetros, v))
}

// LargoMetrosIn applies the In predicate on the "largo_metros" field.
func LargoMetrosIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLargoMetros, vs...))
}

// LargoMetrosNotIn applies the NotIn predicate on the "largo_metros" field.
func LargoMetrosNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLargoMetros, vs...))
}

// LargoMetrosGT applies the GT predicate on the "largo_metros" field.
func LargoMetrosGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLargoMetros, v))
}

// LargoMetrosGTE applies the GTE predicate on the "largo_metros" field.
func LargoMetrosGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLargoMetros, v))
}

// LargoMetrosLT applies the LT predicate on the "largo_metros" field.
func LargoMetrosLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLargoMetros, v))
}

// LargoMetrosLTE applies the LTE predicate on the "largo_metros" field.
func LargoMetrosLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLargoMetros, v))
}

// LargoMetrosIsNil applies the IsNil predicate on the "largo_metros" field.
func LargoMetrosIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLargoMetros))
}

// LargoMetrosNotNil applies the NotNil predicate on the "largo_metros" field.
func LargoMetrosNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLargoMetros))
}

// PrioridadEQ applies the EQ predicate on the "prioridad" field.
func PrioridadEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPrioridad, v))
}

// PrioridadNEQ applies the NEQ predicate on the "prioridad" field.
func PrioridadNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPrioridad, v))
}

// PrioridadIn applies the In predicate on the "prioridad" field.
func PrioridadIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPrioridad, vs...))
}

// PrioridadNotIn applies the NotIn predicate on the "prioridad" field.
func PrioridadNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPrioridad, vs...))
}

// PrioridadGT applies the GT predicate on the "prioridad" field.
func PrioridadGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPrioridad, v))
}

// PrioridadGTE applies the GTE predicate on the "prioridad" field.
func PrioridadGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPrioridad, v))
}

// PrioridadLT applies the LT predicate on the "prioridad" field.
func PrioridadLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPrioridad, v))
}

// PrioridadLTE applies the LTE predicate on the "prioridad" field.
func PrioridadLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPrioridad, v))
}

// PrioridadContains applies the Contains predicate on the "prioridad" field.
func PrioridadContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPrioridad, v))
}

// PrioridadHasPrefix applies the HasPrefix predicate on the "prioridad" field.
func PrioridadHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPrioridad, v))
}

// PrioridadHasSuffix applies the HasSuffix predicate on the "prioridad" field.
func PrioridadHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPrioridad, v))
}

// PrioridadEqualFold applies the EqualFold predicate on the "prioridad" field.
func PrioridadEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPrioridad, v))
}

// PrioridadContainsFold applies the ContainsFold predicate on the "prioridad" field.
func PrioridadContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPrioridad, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstado, vs...))
}

// EstadoGT applies the GT predicate on the "estado" field.
func EstadoGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstado, v))
}

// EstadoGTE applies the GTE predicate on the "estado" field.
func EstadoGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstado, v))
}

// EstadoLT applies the LT predicate on the "estado" field.
func EstadoLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstado, v))
}

// EstadoLTE applies the LTE predicate on the "estado" field.
func EstadoLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstado, v))
}

// EstadoContains applies the Contains predicate on the "estado" field.
func EstadoContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldEstado, v))
}

// EstadoHasPrefix applies the HasPrefix predicate on the "estado" field.
func EstadoHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldEstado, v))
}

// EstadoHasSuffix applies the HasSuffix predicate on the "estado" field.
func EstadoHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldEstado, v))
}

// EstadoEqualFold applies the EqualFold predicate on the "estado" field.
func EstadoEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldEstado, v))
}

// EstadoContainsFold applies the ContainsFold predicate on the "estado" field.
func EstadoContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldEstado, v))
}

// DescripcionEQ applies the EQ predicate on the "descripcion" field.
func DescripcionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescripcion, v))
}

// DescripcionNEQ applies the NEQ predicate on the "descripcion" field.
func DescripcionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescripcion, v))
}

// DescripcionIn applies the In predicate on the "descripcion" field.
func DescripcionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescripcion, vs...))
}

// DescripcionNotIn applies the NotIn predicate on the "descripcion" field.
func DescripcionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescripcion, vs...))
}

// DescripcionGT applies the GT predicate on the "descripcion" field.
func DescripcionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescripcion, v))
}

// DescripcionGTE applies the GTE predicate on the "descripcion" field.
func DescripcionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescripcion, v))
}

// DescripcionLT applies the LT predicate on the "descripcion" field.
func DescripcionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescripcion, v))
}

// DescripcionLTE applies the LTE predicate on the "descripcion" field.
func DescripcionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescripcion, v))
}

// DescripcionContains applies the Contains predicate on the "descripcion" field.
func DescripcionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescripcion, v))
}

// DescripcionHasPrefix applies the HasPrefix predicate on the "descripcion" field.
func DescripcionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescripcion, v))
}

// DescripcionHasSuffix applies the HasSuffix predicate on the "descripcion" field.
func DescripcionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescripcion, v))
}

// DescripcionIsNil applies the IsNil predicate on the "descripcion" field.
func DescripcionIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDescripcion))
}

// DescripcionNotNil applies the NotNil predicate on the "descripcion" field.
func DescripcionNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDescripcion))
}

// DescripcionEqualFold applies the EqualFold predicate on the "descripcion" field.
func DescripcionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescripcion, v))
}

// DescripcionContainsFold applies the ContainsFold predicate on the "descripcion" field.
func DescripcionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescripcion, v))
}

// NotasEQ applies the EQ predicate on the "notas" field.
func NotasEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldNotas, v))
}

// NotasNEQ applies the NEQ predicate on the "notas" field.
func NotasNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldNotas, v))
}

// NotasIn applies the In predicate on the "notas" field.
func NotasIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldNotas, vs...))
}

// NotasNotIn applies the NotIn predicate on the "notas" field.
func NotasNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldNotas, vs...))
}

// NotasGT applies the GT predicate on the "notas" field.
func NotasGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldNotas, v))
}

// NotasGTE applies the GTE predicate on the "notas" field.
func NotasGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldNotas, v))
}

// NotasLT applies the LT predicate on the "notas" field.
func NotasLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldNotas, v))
}

// NotasLTE applies the LTE predicate on the "notas" field.
func NotasLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldNotas, v))
}

// NotasContains applies the Contains predicate on the "notas" field.
func NotasContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldNotas, v))
}

// NotasHasPrefix applies the HasPrefix predicate on the "notas" field.
func NotasHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldNotas, v))
}

// NotasHasSuffix applies the HasSuffix predicate on the "notas" field.
func NotasHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldNotas, v))
}

// NotasIsNil applies the IsNil predicate on the "notas" field.
func NotasIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldNotas))
}

// NotasNotNil applies the NotNil predicate on the "notas" field.
func NotasNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldNotas))
}

// NotasEqualFold applies the EqualFold predicate on the "notas" field.
func NotasEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldNotas, v))
}

// NotasContainsFold applies the ContainsFold predicate on the "notas" field.
func NotasContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldNotas, v))
}

// OrigenEQ applies the EQ predicate on the "origen" field.
func OrigenEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldOrigen, v))
}

// OrigenNEQ applies the NEQ predicate on the "origen" field.
func OrigenNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldOrigen, v))
}

// OrigenIn applies the In predicate on the "origen" field.
func OrigenIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldOrigen, vs...))
}

// OrigenNotIn applies the NotIn predicate on the "origen" field.
func OrigenNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldOrigen, vs...))
}

// OrigenGT applies the GT predicate on the "origen" field.
func OrigenGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldOrigen, v))
}

// OrigenGTE applies the GTE predicate on the "origen" field.
func OrigenGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldOrigen, v))
}

// OrigenLT applies the LT predicate on the "origen" field.
func OrigenLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldOrigen, v))
}

// OrigenLTE applies the LTE predicate on the "origen" field.
func OrigenLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldOrigen, v))
}

// OrigenContains applies the Contains predicate on the "origen" field.
func OrigenContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldOrigen, v))
}

// OrigenHasPrefix applies the HasPrefix predicate on the "origen" field.
func OrigenHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldOrigen, v))
}

// OrigenHasSuffix applies the HasSuffix predicate on the "origen" field.
func OrigenHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldOrigen, v))
}

// OrigenEqualFold applies the EqualFold predicate on the "origen" field.
func OrigenEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldOrigen, v))
}

// OrigenContainsFold applies the ContainsFold predicate on the "origen" field.
func OrigenContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldOrigen, v))
}

// UrgenteEQ applies the EQ predicate on the "urgente" field.
func UrgenteEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUrgente, v))
}

// UrgenteNEQ applies the NEQ predicate on the "urgente" field.
func UrgenteNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUrgente, v))
}

// FechaSolicitudEQ applies the EQ predicate on the "fecha_solicitud" field.
func FechaSolicitudEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFechaSolicitud, v))
}

// FechaSolicitudNEQ applies the NEQ predicate on the "fecha_solicitud" field.
func FechaSolicitudNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFechaSolicitud, v))
}

// FechaSolicitudIn applies the In predicate on the "fecha_solicitud" field.
func FechaSolicitudIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFechaSolicitud, vs...))
}

// FechaSolicitudNotIn applies the NotIn predicate on the "fecha_solicitud" field.
func FechaSolicitudNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFechaSolicitud, vs...))
}

// FechaSolicitudGT applies the GT predicate on the "fecha_solicitud" field.
func FechaSolicitudGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFechaSolicitud, v))
}

// FechaSolicitudGTE applies the GTE predicate on the "fecha_solicitud" field.
func FechaSolicitudGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFechaSolicitud, v))
}

// FechaSolicitudLT applies the LT predicate on the "fecha_solicitud" field.
func FechaSolicitudLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFechaSolicitud, v))
}

// FechaSolicitudLTE applies the LTE predicate on the "fecha_solicitud" field.
func FechaSolicitudLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFechaSolicitud, v))
}

// FechaCompletadaEQ applies the EQ predicate on the "fecha_completada" field.
func FechaCompletadaEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldFechaCompletada, v))
}

// FechaCompletadaNEQ applies the NEQ predicate on the "fecha_completada" field.
func FechaCompletadaNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldFechaCompletada, v))
}

// FechaCompletadaIn applies the In predicate on the "fecha_completada" field.
func FechaCompletadaIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldFechaCompletada, vs...))
}

// FechaCompletadaNotIn applies the NotIn predicate on the "fecha_completada" field.
func FechaCompletadaNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldFechaCompletada, vs...))
}

// FechaCompletadaGT applies the GT predicate on the "fecha_completada" field.
func FechaCompletadaGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldFechaCompletada, v))
}

// FechaCompletadaGTE applies the GTE predicate on the "fecha_completada" field.
func FechaCompletadaGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldFechaCompletada, v))
}

// FechaCompletadaLT applies the LT predicate on the "fecha_completada" field.
func FechaCompletadaLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldFechaCompletada, v))
}

// FechaCompletadaLTE applies the LTE predicate on the "fecha_completada" field.
func FechaCompletadaLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldFechaCompletada, v))
}

// FechaCompletadaIsNil applies the IsNil predicate on the "fecha_completada" field.
func FechaCompletadaIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldFechaCompletada))
}

// FechaCompletadaNotNil applies the NotNil predicate on the "fecha_completada" field.
func FechaCompletadaNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldFechaCompletada))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmail applies the HasEdge predicate on the "email" edge.
func HasEmail() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailWith applies the HasEdge predicate on the "email" edge with a given conditions (other predicates).
func HasEmailWith(preds ...predicate.EmailMessage) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlerts applies the HasEdge predicate on the "alerts" edge.
func HasAlerts() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertsTable, AlertsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertsWith applies the HasEdge predicate on the "alerts" edge with a given conditions (other predicates).
func HasAlertsWith(preds ...predicate.Alert) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAlertsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
