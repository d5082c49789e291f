// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/google/uuid"
)

// AttachmentCreate is the builder for creating a Attachment entity.
type AttachmentCreate struct {
	config
	mutation *AttachmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmailID sets the "email_id" field.
func (_c *AttachmentCreate) SetEmailID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetEmailID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *AttachmentCreate) SetFilename(v string) *AttachmentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *AttachmentCreate) SetMimeType(v string) *AttachmentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableMimeType(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AttachmentCreate) SetSizeBytes(v int) *AttachmentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableSizeBytes(v *int) *AttachmentCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetFormat sets the "format" field.
func (_c *AttachmentCreate) SetFormat(v string) *AttachmentCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableFormat(v *string) *AttachmentCreate {
	if v != nil {
		_c.SetFormat(*v)
	}
	return _c
}

// SetExtractedCount sets the "extracted_count" field.
func (_c *AttachmentCreate) SetExtractedCount(v int) *AttachmentCreate {
	_c.mutation.SetExtractedCount(v)
	return _c
}

// SetNillableExtractedCount sets the "extracted_count" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableExtractedCount(v *int) *AttachmentCreate {
	if v != nil {
		_c.SetExtractedCount(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *AttachmentCreate) SetExtractedJSON(v json.RawMessage) *AttachmentCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttachmentCreate) SetCreatedAt(v time.Time) *AttachmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableCreatedAt(v *time.Time) *AttachmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AttachmentCreate) SetID(v uuid.UUID) *AttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttachmentCreate) SetNillableID(v *uuid.UUID) *AttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEmail sets the "email" edge to the EmailMessage entity.
func (_c *AttachmentCreate) SetEmail(v *EmailMessage) *AttachmentCreate {
	return _c.SetEmailID(v.ID)
}

// Mutation returns the AttachmentMutation object of the builder.
func (_c *AttachmentCreate) Mutation() *AttachmentMutation {
	return _c.mutation
}

// Save creates the Attachment in the database.
func (_c *AttachmentCreate) Save(ctx context.Context) (*Attachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttachmentCreate) SaveX(ctx context.Context) *Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttachmentCreate) defaults() {
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := attachment.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.ExtractedCount(); !ok {
		v := attachment.DefaultExtractedCount
		_c.mutation.SetExtractedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attachment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttachmentCreate) check() error {
	if _, ok := _c.mutation.EmailID(); !ok {
		return &ValidationError{Name: "email_id", err: errors.New(`ent: missing required field "Attachment.email_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Attachment.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := attachment.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Attachment.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Attachment.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := attachment.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Attachment.size_bytes": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := attachment.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Attachment.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedCount(); !ok {
		return &ValidationError{Name: "extracted_count", err: errors.New(`ent: missing required field "Attachment.extracted_count"`)}
	}
	if v, ok := _c.mutation.ExtractedCount(); ok {
		if err := attachment.ExtractedCountValidator(v); err != nil {
			return &ValidationError{Name: "extracted_count", err: fmt.Errorf(`ent: validator failed for field "Attachment.extracted_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attachment.created_at"`)}
	}
	if len(_c.mutation.EmailIDs()) == 0 {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required edge "Attachment.email"`)}
	}
	return nil
}

func (_c *AttachmentCreate) sqlSave(ctx context.Context) (*Attachment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttachmentCreate) createSpec() (*Attachment, *sqlgraph.CreateSpec) {
	var (
		_node = &Attachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attachment.Table, sqlgraph.NewFieldSpec(attachment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(attachment.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(attachment.FieldMimeType, field.TypeString, value)
		_node.MimeType = &value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(attachment.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(attachment.FieldFormat, field.TypeString, value)
		_node.Format = &value
	}
	if value, ok := _c.mutation.ExtractedCount(); ok {
		_spec.SetField(attachment.FieldExtractedCount, field.TypeInt, value)
		_node.ExtractedCount = value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(attachment.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attachment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EmailIDs(); len(nodes) > 0 {
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
		_node.EmailID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attachment.Create().
//		SetEmailID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachmentUpsert) {
//			SetEmailID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachmentCreate) OnConflict(opts ...sql.ConflictOption) *AttachmentUpsertOne {
	_c.conflict = opts
	return &AttachmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachmentCreate) OnConflictColumns(columns ...string) *AttachmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachmentUpsertOne{
		create: _c,
	}
}

type (
	// AttachmentUpsertOne is the builder for "upsert"-ing
	//  one Attachment node.
	AttachmentUpsertOne struct {
		create *AttachmentCreate
	}

	// AttachmentUpsert is the "OnConflict" setter.
	AttachmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmailID sets the "email_id" field.
func (u *AttachmentUpsert) SetEmailID(v uuid.UUID) *AttachmentUpsert {
	u.Set(attachment.FieldEmailID, v)
	return u
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateEmailID() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldEmailID)
	return u
}

// SetFilename sets the "filename" field.
func (u *AttachmentUpsert) SetFilename(v string) *AttachmentUpsert {
	u.Set(attachment.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateFilename() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldFilename)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *AttachmentUpsert) SetMimeType(v string) *AttachmentUpsert {
	u.Set(attachment.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateMimeType() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AttachmentUpsert) ClearMimeType() *AttachmentUpsert {
	u.SetNull(attachment.FieldMimeType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AttachmentUpsert) SetSizeBytes(v int) *AttachmentUpsert {
	u.Set(attachment.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateSizeBytes() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AttachmentUpsert) AddSizeBytes(v int) *AttachmentUpsert {
	u.Add(attachment.FieldSizeBytes, v)
	return u
}

// SetFormat sets the "format" field.
func (u *AttachmentUpsert) SetFormat(v string) *AttachmentUpsert {
	u.Set(attachment.FieldFormat, v)
	return u
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateFormat() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldFormat)
	return u
}

// ClearFormat clears the value of the "format" field.
func (u *AttachmentUpsert) ClearFormat() *AttachmentUpsert {
	u.SetNull(attachment.FieldFormat)
	return u
}

// SetExtractedCount sets the "extracted_count" field.
func (u *AttachmentUpsert) SetExtractedCount(v int) *AttachmentUpsert {
	u.Set(attachment.FieldExtractedCount, v)
	return u
}

// UpdateExtractedCount sets the "extracted_count" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateExtractedCount() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldExtractedCount)
	return u
}

// AddExtractedCount adds v to the "extracted_count" field.
func (u *AttachmentUpsert) AddExtractedCount(v int) *AttachmentUpsert {
	u.Add(attachment.FieldExtractedCount, v)
	return u
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *AttachmentUpsert) SetExtractedJSON(v json.RawMessage) *AttachmentUpsert {
	u.Set(attachment.FieldExtractedJSON, v)
	return u
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateExtractedJSON() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldExtractedJSON)
	return u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *AttachmentUpsert) ClearExtractedJSON() *AttachmentUpsert {
	u.SetNull(attachment.FieldExtractedJSON)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AttachmentUpsert) SetCreatedAt(v time.Time) *AttachmentUpsert {
	u.Set(attachment.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AttachmentUpsert) UpdateCreatedAt() *AttachmentUpsert {
	u.SetExcluded(attachment.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attachment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachmentUpsertOne) UpdateNewValues() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(attachment.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttachmentUpsertOne) Ignore() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachmentUpsertOne) DoNothing() *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachmentCreate.OnConflict
// documentation for more info.
func (u *AttachmentUpsertOne) Update(set func(*AttachmentUpsert)) *AttachmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmailID sets the "email_id" field.
func (u *AttachmentUpsertOne) SetEmailID(v uuid.UUID) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateEmailID() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateEmailID()
	})
}

// SetFilename sets the "filename" field.
func (u *AttachmentUpsertOne) SetFilename(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateFilename() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFilename()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AttachmentUpsertOne) SetMimeType(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateMimeType() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AttachmentUpsertOne) ClearMimeType() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AttachmentUpsertOne) SetSizeBytes(v int) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AttachmentUpsertOne) AddSizeBytes(v int) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateSizeBytes() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetFormat sets the "format" field.
func (u *AttachmentUpsertOne) SetFormat(v string) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateFormat() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFormat()
	})
}

// ClearFormat clears the value of the "format" field.
func (u *AttachmentUpsertOne) ClearFormat() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearFormat()
	})
}

// SetExtractedCount sets the "extracted_count" field.
func (u *AttachmentUpsertOne) SetExtractedCount(v int) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetExtractedCount(v)
	})
}

// AddExtractedCount adds v to the "extracted_count" field.
func (u *AttachmentUpsertOne) AddExtractedCount(v int) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.AddExtractedCount(v)
	})
}

// UpdateExtractedCount sets the "extracted_count" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateExtractedCount() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateExtractedCount()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *AttachmentUpsertOne) SetExtractedJSON(v json.RawMessage) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateExtractedJSON() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *AttachmentUpsertOne) ClearExtractedJSON() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AttachmentUpsertOne) SetCreatedAt(v time.Time) *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AttachmentUpsertOne) UpdateCreatedAt() *AttachmentUpsertOne {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AttachmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttachmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AttachmentUpsertOne.ID is not supported by MySQL driver. Use AttachmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttachmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttachmentCreateBulk is the builder for creating many Attachment entities in bulk.
type AttachmentCreateBulk struct {
	config
	err      error
	builders []*AttachmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Attachment entities in the database.
func (_c *AttachmentCreateBulk) Save(ctx context.Context) ([]*Attachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttachmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttachmentCreateBulk) SaveX(ctx context.Context) []*Attachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attachment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttachmentUpsert) {
//			SetEmailID(v+v).
//		}).
//		Exec(ctx)
func (_c *AttachmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttachmentUpsertBulk {
	_c.conflict = opts
	return &AttachmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttachmentCreateBulk) OnConflictColumns(columns ...string) *AttachmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttachmentUpsertBulk{
		create: _c,
	}
}

// AttachmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Attachment nodes.
type AttachmentUpsertBulk struct {
	create *AttachmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(attachment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AttachmentUpsertBulk) UpdateNewValues() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(attachment.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attachment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttachmentUpsertBulk) Ignore() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttachmentUpsertBulk) DoNothing() *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttachmentCreateBulk.OnConflict
// documentation for more info.
func (u *AttachmentUpsertBulk) Update(set func(*AttachmentUpsert)) *AttachmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttachmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmailID sets the "email_id" field.
func (u *AttachmentUpsertBulk) SetEmailID(v uuid.UUID) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetEmailID(v)
	})
}

// UpdateEmailID sets the "email_id" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateEmailID() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateEmailID()
	})
}

// SetFilename sets the "filename" field.
func (u *AttachmentUpsertBulk) SetFilename(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateFilename() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFilename()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AttachmentUpsertBulk) SetMimeType(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateMimeType() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AttachmentUpsertBulk) ClearMimeType() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AttachmentUpsertBulk) SetSizeBytes(v int) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AttachmentUpsertBulk) AddSizeBytes(v int) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateSizeBytes() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetFormat sets the "format" field.
func (u *AttachmentUpsertBulk) SetFormat(v string) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetFormat(v)
	})
}

// UpdateFormat sets the "format" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateFormat() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateFormat()
	})
}

// ClearFormat clears the value of the "format" field.
func (u *AttachmentUpsertBulk) ClearFormat() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearFormat()
	})
}

// SetExtractedCount sets the "extracted_count" field.
func (u *AttachmentUpsertBulk) SetExtractedCount(v int) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetExtractedCount(v)
	})
}

// AddExtractedCount adds v to the "extracted_count" field.
func (u *AttachmentUpsertBulk) AddExtractedCount(v int) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.AddExtractedCount(v)
	})
}

// UpdateExtractedCount sets the "extracted_count" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateExtractedCount() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateExtractedCount()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *AttachmentUpsertBulk) SetExtractedJSON(v json.RawMessage) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateExtractedJSON() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *AttachmentUpsertBulk) ClearExtractedJSON() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AttachmentUpsertBulk) SetCreatedAt(v time.Time) *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AttachmentUpsertBulk) UpdateCreatedAt() *AttachmentUpsertBulk {
	return u.Update(func(s *AttachmentUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AttachmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttachmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttachmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttachmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
