// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/predicate"
	"github.com/google/uuid"
)

// AttachmentUpdate is the builder for updating Attachment entities.
type AttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *AttachmentMutation
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdate) Where(ps ...predicate.Attachment) *AttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmailID sets the "email_id" field.
func (_u *AttachmentUpdate) SetEmailID(v uuid.UUID) *AttachmentUpdate {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableEmailID(v *uuid.UUID) *AttachmentUpdate {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdate) SetFilename(v string) *AttachmentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFilename(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AttachmentUpdate) SetMimeType(v string) *AttachmentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableMimeType(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AttachmentUpdate) ClearMimeType() *AttachmentUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdate) SetSizeBytes(v int) *AttachmentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableSizeBytes(v *int) *AttachmentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdate) AddSizeBytes(v int) *AttachmentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *AttachmentUpdate) SetFormat(v string) *AttachmentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableFormat(v *string) *AttachmentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *AttachmentUpdate) ClearFormat() *AttachmentUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// SetExtractedCount sets the "extracted_count" field.
func (_u *AttachmentUpdate) SetExtractedCount(v int) *AttachmentUpdate {
	_u.mutation.ResetExtractedCount()
	_u.mutation.SetExtractedCount(v)
	return _u
}

// SetNillableExtractedCount sets the "extracted_count" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableExtractedCount(v *int) *AttachmentUpdate {
	if v != nil {
		_u.SetExtractedCount(*v)
	}
	return _u
}

// AddExtractedCount adds value to the "extracted_count" field.
func (_u *AttachmentUpdate) AddExtractedCount(v int) *AttachmentUpdate {
	_u.mutation.AddExtractedCount(v)
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *AttachmentUpdate) SetExtractedJSON(v json.RawMessage) *AttachmentUpdate {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *AttachmentUpdate) AppendExtractedJSON(v json.RawMessage) *AttachmentUpdate {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *AttachmentUpdate) ClearExtractedJSON() *AttachmentUpdate {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AttachmentUpdate) SetCreatedAt(v time.Time) *AttachmentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AttachmentUpdate) SetNillableCreatedAt(v *time.Time) *AttachmentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *AttachmentUpdate) SetEmail(v *EmailMessage) *AttachmentUpdate {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdate) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *AttachmentUpdate) ClearEmail() *AttachmentUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Attachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := attachment.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Attachment.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := attachment.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Attachment.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractedCount(); ok {
		if err := attachment.ExtractedCountValidator(v); err != nil {
			return &ValidationError{Name: "extracted_count", err: fmt.Errorf(`ent: validator failed for field "Attachment.extracted_count": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.email"`)
	}
	return nil
}

func (_u *AttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(attachment.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(attachment.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(attachment.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCount(); ok {
		_spec.SetField(attachment.FieldExtractedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedCount(); ok {
		_spec.AddField(attachment.FieldExtractedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(attachment.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attachment.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(attachment.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(attachment.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttachmentUpdateOne is the builder for updating a single Attachment entity.
type AttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttachmentMutation
}

// SetEmailID sets the "email_id" field.
func (_u *AttachmentUpdateOne) SetEmailID(v uuid.UUID) *AttachmentUpdateOne {
	_u.mutation.SetEmailID(v)
	return _u
}

// SetNillableEmailID sets the "email_id" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableEmailID(v *uuid.UUID) *AttachmentUpdateOne {
	if v != nil {
		_u.SetEmailID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *AttachmentUpdateOne) SetFilename(v string) *AttachmentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFilename(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AttachmentUpdateOne) SetMimeType(v string) *AttachmentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableMimeType(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AttachmentUpdateOne) ClearMimeType() *AttachmentUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AttachmentUpdateOne) SetSizeBytes(v int) *AttachmentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableSizeBytes(v *int) *AttachmentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AttachmentUpdateOne) AddSizeBytes(v int) *AttachmentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *AttachmentUpdateOne) SetFormat(v string) *AttachmentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableFormat(v *string) *AttachmentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *AttachmentUpdateOne) ClearFormat() *AttachmentUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// SetExtractedCount sets the "extracted_count" field.
func (_u *AttachmentUpdateOne) SetExtractedCount(v int) *AttachmentUpdateOne {
	_u.mutation.ResetExtractedCount()
	_u.mutation.SetExtractedCount(v)
	return _u
}

// SetNillableExtractedCount sets the "extracted_count" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableExtractedCount(v *int) *AttachmentUpdateOne {
	if v != nil {
		_u.SetExtractedCount(*v)
	}
	return _u
}

// AddExtractedCount adds value to the "extracted_count" field.
func (_u *AttachmentUpdateOne) AddExtractedCount(v int) *AttachmentUpdateOne {
	_u.mutation.AddExtractedCount(v)
	return _u
}

// SetExtractedJSON sets the "extracted_json" field.
func (_u *AttachmentUpdateOne) SetExtractedJSON(v json.RawMessage) *AttachmentUpdateOne {
	_u.mutation.SetExtractedJSON(v)
	return _u
}

// AppendExtractedJSON appends value to the "extracted_json" field.
func (_u *AttachmentUpdateOne) AppendExtractedJSON(v json.RawMessage) *AttachmentUpdateOne {
	_u.mutation.AppendExtractedJSON(v)
	return _u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (_u *AttachmentUpdateOne) ClearExtractedJSON() *AttachmentUpdateOne {
	_u.mutation.ClearExtractedJSON()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AttachmentUpdateOne) SetCreatedAt(v time.Time) *AttachmentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AttachmentUpdateOne) SetNillableCreatedAt(v *time.Time) *AttachmentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_u *AttachmentUpdateOne) SetEmail(v *EmailMessage) *AttachmentUpdateOne {
	return _u.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_u *AttachmentUpdateOne) Mutation() *AttachmentMutation {
	return _u.mutation
}

// ClearEmail clears the "email" edge to the EmailMessage entity.
func (_u *AttachmentUpdateOne) ClearEmail() *AttachmentUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// Where appends a list predicates to the AttachmentUpdate builder.
func (_u *AttachmentUpdateOne) Where(ps ...predicate.Attachment) *AttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttachmentUpdateOne) Select(field string, fields ...string) *AttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attachment entity.
func (_u *AttachmentUpdateOne) Save(ctx context.Context) (*Attachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttachmentUpdateOne) SaveX(ctx context.Context) *Attachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := attachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Attachment.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SizeBytes(); ok {
		if err := attachment.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Attachment.size_bytes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := attachment.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Attachment.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtractedCount(); ok {
		if err := attachment.ExtractedCountValidator(v); err != nil {
			return &ValidationError{Name: "extracted_count", err: fmt.Errorf(`ent: validator failed for field "Attachment.extracted_count": %w`, err)}
		}
	}
	if _u.mutation.EmailCleared() && len(_u.mutation.EmailIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attachment.email"`)
	}
	return nil
}

func (_u *AttachmentUpdateOne) sqlSave(ctx context.Context) (_node *Attachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attachment.Table, attachment.Columns, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attachment.FieldID)
		for _, f := range fields {
			if !attachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attachment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(attachment.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(attachment.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(attachment.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(attachment.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedCount(); ok {
		_spec.SetField(attachment.FieldExtractedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExtractedCount(); ok {
		_spec.AddField(attachment.FieldExtractedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExtractedJSON(); ok {
		_spec.SetField(attachment.FieldExtractedJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractedJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attachment.FieldExtractedJSON, value)
		})
	}
	if _u.mutation.ExtractedJSONCleared() {
		_spec.ClearField(attachment.FieldExtractedJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(attachment.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EmailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EmailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attachment.EmailTable,
			Columns: []string{attachment.EmailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(emailmessage.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
