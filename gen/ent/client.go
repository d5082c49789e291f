// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fvillarroel/cobertor-bot/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fvillarroel/cobertor-bot/gen/ent/alert"
	"github.com/fvillarroel/cobertor-bot/gen/ent/attachment"
	"github.com/fvillarroel/cobertor-bot/gen/ent/emailmessage"
	"github.com/fvillarroel/cobertor-bot/gen/ent/learnedrule"
	"github.com/fvillarroel/cobertor-bot/gen/ent/senderprofile"
	"github.com/fvillarroel/cobertor-bot/gen/ent/task"
	"github.com/fvillarroel/cobertor-bot/gen/ent/threadpattern"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Alert is the client for interacting with the Alert builders.
	Alert *AlertClient
	// Attachment is the client for interacting with the Attachment builders.
	Attachment *AttachmentClient
	// EmailMessage is the client for interacting with the EmailMessage builders.
	EmailMessage *EmailMessageClient
	// LearnedRule is the client for interacting with the LearnedRule builders.
	LearnedRule *LearnedRuleClient
	// SenderProfile is the client for interacting with the SenderProfile builders.
	SenderProfile *SenderProfileClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// ThreadPattern is the client for interacting with the ThreadPattern builders.
	ThreadPattern *ThreadPatternClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Alert = NewAlertClient(c.config)
	c.Attachment = NewAttachmentClient(c.config)
	c.EmailMessage = NewEmailMessageClient(c.config)
	c.LearnedRule = NewLearnedRuleClient(c.config)
	c.SenderProfile = NewSenderProfileClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.ThreadPattern = NewThreadPatternClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Alert:         NewAlertClient(cfg),
		Attachment:    NewAttachmentClient(cfg),
		EmailMessage:  NewEmailMessageClient(cfg),
		LearnedRule:   NewLearnedRuleClient(cfg),
		SenderProfile: NewSenderProfileClient(cfg),
		Task:          NewTaskClient(cfg),
		ThreadPattern: NewThreadPatternClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Alert:         NewAlertClient(cfg),
		Attachment:    NewAttachmentClient(cfg),
		EmailMessage:  NewEmailMessageClient(cfg),
		LearnedRule:   NewLearnedRuleClient(cfg),
		SenderProfile: NewSenderProfileClient(cfg),
		Task:          NewTaskClient(cfg),
		ThreadPattern: NewThreadPatternClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Alert.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Alert, c.Attachment, c.EmailMessage, c.LearnedRule, c.SenderProfile, c.Task,
		c.ThreadPattern,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Alert, c.Attachment, c.EmailMessage, c.LearnedRule, c.SenderProfile, c.Task,
		c.ThreadPattern,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AlertMutation:
		return c.Alert.mutate(ctx, m)
	case *AttachmentMutation:
		return c.Attachment.mutate(ctx, m)
	case *EmailMessageMutation:
		return c.EmailMessage.mutate(ctx, m)
	case *LearnedRuleMutation:
		return c.LearnedRule.mutate(ctx, m)
	case *SenderProfileMutation:
		return c.SenderProfile.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *ThreadPatternMutation:
		return c.ThreadPattern.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AlertClient is a client for the Alert schema.
type AlertClient struct {
	config
}

// NewAlertClient returns a client for the Alert from the given config.
func NewAlertClient(c config) *AlertClient {
	return &AlertClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `alert.Hooks(f(g(h())))`.
func (c *AlertClient) Use(hooks ...Hook) {
	c.hooks.Alert = append(c.hooks.Alert, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `alert.Intercept(f(g(h())))`.
func (c *AlertClient) Intercept(interceptors ...Interceptor) {
	c.inters.Alert = append(c.inters.Alert, interceptors...)
}

// Create returns a builder for creating a Alert entity.
func (c *AlertClient) Create() *AlertCreate {
	mutation := newAlertMutation(c.config, OpCreate)
	return &AlertCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Alert entities.
func (c *AlertClient) CreateBulk(builders ...*AlertCreate) *AlertCreateBulk {
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AlertClient) MapCreateBulk(slice any, setFunc func(*AlertCreate, int)) *AlertCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AlertCreateBulk{err: fmt.Errorf("calling to AlertClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AlertCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AlertCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Alert.
func (c *AlertClient) Update() *AlertUpdate {
	mutation := newAlertMutation(c.config, OpUpdate)
	return &AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AlertClient) UpdateOne(_m *Alert) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlert(_m))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AlertClient) UpdateOneID(id uuid.UUID) *AlertUpdateOne {
	mutation := newAlertMutation(c.config, OpUpdateOne, withAlertID(id))
	return &AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Alert.
func (c *AlertClient) Delete() *AlertDelete {
	mutation := newAlertMutation(c.config, OpDelete)
	return &AlertDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AlertClient) DeleteOne(_m *Alert) *AlertDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AlertClient) DeleteOneID(id uuid.UUID) *AlertDeleteOne {
	builder := c.Delete().Where(alert.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AlertDeleteOne{builder}
}

// Query returns a query builder for Alert.
func (c *AlertClient) Query() *AlertQuery {
	return &AlertQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAlert},
		inters: c.Interceptors(),
	}
}

// Get returns a Alert entity by its id.
func (c *AlertClient) Get(ctx context.Context, id uuid.UUID) (*Alert, error) {
	return c.Query().Where(alert.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AlertClient) GetX(ctx context.Context, id uuid.UUID) *Alert {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a Alert.
func (c *AlertClient) QueryEmail(_m *Alert) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alert.Table, alert.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alert.EmailTable, alert.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTask queries the task edge of a Alert.
func (c *AlertClient) QueryTask(_m *Alert) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(alert.Table, alert.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, alert.TaskTable, alert.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AlertClient) Hooks() []Hook {
	return c.hooks.Alert
}

// Interceptors returns the client interceptors.
func (c *AlertClient) Interceptors() []Interceptor {
	return c.inters.Alert
}

func (c *AlertClient) mutate(ctx context.Context, m *AlertMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AlertCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AlertUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AlertUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AlertDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Alert mutation op: %q", m.Op())
	}
}

// AttachmentClient is a client for the Attachment schema.
type AttachmentClient struct {
	config
}

// NewAttachmentClient returns a client for the Attachment from the given config.
func NewAttachmentClient(c config) *AttachmentClient {
	return &AttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attachment.Hooks(f(g(h())))`.
func (c *AttachmentClient) Use(hooks ...Hook) {
	c.hooks.Attachment = append(c.hooks.Attachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attachment.Intercept(f(g(h())))`.
func (c *AttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attachment = append(c.inters.Attachment, interceptors...)
}

// Create returns a builder for creating a Attachment entity.
func (c *AttachmentClient) Create() *AttachmentCreate {
	mutation := newAttachmentMutation(c.config, OpCreate)
	return &AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attachment entities.
func (c *AttachmentClient) CreateBulk(builders ...*AttachmentCreate) *AttachmentCreateBulk {
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttachmentClient) MapCreateBulk(slice any, setFunc func(*AttachmentCreate, int)) *AttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttachmentCreateBulk{err: fmt.Errorf("calling to AttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attachment.
func (c *AttachmentClient) Update() *AttachmentUpdate {
	mutation := newAttachmentMutation(c.config, OpUpdate)
	return &AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttachmentClient) UpdateOne(_m *Attachment) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachment(_m))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttachmentClient) UpdateOneID(id uuid.UUID) *AttachmentUpdateOne {
	mutation := newAttachmentMutation(c.config, OpUpdateOne, withAttachmentID(id))
	return &AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attachment.
func (c *AttachmentClient) Delete() *AttachmentDelete {
	mutation := newAttachmentMutation(c.config, OpDelete)
	return &AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttachmentClient) DeleteOne(_m *Attachment) *AttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttachmentClient) DeleteOneID(id uuid.UUID) *AttachmentDeleteOne {
	builder := c.Delete().Where(attachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttachmentDeleteOne{builder}
}

// Query returns a query builder for Attachment.
func (c *AttachmentClient) Query() *AttachmentQuery {
	return &AttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a Attachment entity by its id.
func (c *AttachmentClient) Get(ctx context.Context, id uuid.UUID) (*Attachment, error) {
	return c.Query().Where(attachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttachmentClient) GetX(ctx context.Context, id uuid.UUID) *Attachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a Attachment.
func (c *AttachmentClient) QueryEmail(_m *Attachment) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attachment.Table, attachment.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attachment.EmailTable, attachment.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttachmentClient) Hooks() []Hook {
	return c.hooks.Attachment
}

// Interceptors returns the client interceptors.
func (c *AttachmentClient) Interceptors() []Interceptor {
	return c.inters.Attachment
}

func (c *AttachmentClient) mutate(ctx context.Context, m *AttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attachment mutation op: %q", m.Op())
	}
}

// EmailMessageClient is a client for the EmailMessage schema.
type EmailMessageClient struct {
	config
}

// NewEmailMessageClient returns a client for the EmailMessage from the given config.
func NewEmailMessageClient(c config) *EmailMessageClient {
	return &EmailMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `emailmessage.Hooks(f(g(h())))`.
func (c *EmailMessageClient) Use(hooks ...Hook) {
	c.hooks.EmailMessage = append(c.hooks.EmailMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `emailmessage.Intercept(f(g(h())))`.
func (c *EmailMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmailMessage = append(c.inters.EmailMessage, interceptors...)
}

// Create returns a builder for creating a EmailMessage entity.
func (c *EmailMessageClient) Create() *EmailMessageCreate {
	mutation := newEmailMessageMutation(c.config, OpCreate)
	return &EmailMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmailMessage entities.
func (c *EmailMessageClient) CreateBulk(builders ...*EmailMessageCreate) *EmailMessageCreateBulk {
	return &EmailMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmailMessageClient) MapCreateBulk(slice any, setFunc func(*EmailMessageCreate, int)) *EmailMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmailMessageCreateBulk{err: fmt.Errorf("calling to EmailMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmailMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmailMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmailMessage.
func (c *EmailMessageClient) Update() *EmailMessageUpdate {
	mutation := newEmailMessageMutation(c.config, OpUpdate)
	return &EmailMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmailMessageClient) UpdateOne(_m *EmailMessage) *EmailMessageUpdateOne {
	mutation := newEmailMessageMutation(c.config, OpUpdateOne, withEmailMessage(_m))
	return &EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmailMessageClient) UpdateOneID(id uuid.UUID) *EmailMessageUpdateOne {
	mutation := newEmailMessageMutation(c.config, OpUpdateOne, withEmailMessageID(id))
	return &EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmailMessage.
func (c *EmailMessageClient) Delete() *EmailMessageDelete {
	mutation := newEmailMessageMutation(c.config, OpDelete)
	return &EmailMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmailMessageClient) DeleteOne(_m *EmailMessage) *EmailMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmailMessageClient) DeleteOneID(id uuid.UUID) *EmailMessageDeleteOne {
	builder := c.Delete().Where(emailmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmailMessageDeleteOne{builder}
}

// Query returns a query builder for EmailMessage.
func (c *EmailMessageClient) Query() *EmailMessageQuery {
	return &EmailMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmailMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a EmailMessage entity by its id.
func (c *EmailMessageClient) Get(ctx context.Context, id uuid.UUID) (*EmailMessage, error) {
	return c.Query().Where(emailmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmailMessageClient) GetX(ctx context.Context, id uuid.UUID) *EmailMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a EmailMessage.
func (c *EmailMessageClient) QueryTasks(_m *EmailMessage) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailmessage.TasksTable, emailmessage.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAdjuntos queries the adjuntos edge of a EmailMessage.
func (c *EmailMessageClient) QueryAdjuntos(_m *EmailMessage) *AttachmentQuery {
	query := (&AttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(attachment.Table, attachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailmessage.AdjuntosTable, emailmessage.AdjuntosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a EmailMessage.
func (c *EmailMessageClient) QueryAlerts(_m *EmailMessage) *AlertQuery {
	query := (&AlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(emailmessage.Table, emailmessage.FieldID, id),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, emailmessage.AlertsTable, emailmessage.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmailMessageClient) Hooks() []Hook {
	return c.hooks.EmailMessage
}

// Interceptors returns the client interceptors.
func (c *EmailMessageClient) Interceptors() []Interceptor {
	return c.inters.EmailMessage
}

func (c *EmailMessageClient) mutate(ctx context.Context, m *EmailMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmailMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmailMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmailMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmailMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EmailMessage mutation op: %q", m.Op())
	}
}

// LearnedRuleClient is a client for the LearnedRule schema.
type LearnedRuleClient struct {
	config
}

// NewLearnedRuleClient returns a client for the LearnedRule from the given config.
func NewLearnedRuleClient(c config) *LearnedRuleClient {
	return &LearnedRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnedrule.Hooks(f(g(h())))`.
func (c *LearnedRuleClient) Use(hooks ...Hook) {
	c.hooks.LearnedRule = append(c.hooks.LearnedRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnedrule.Intercept(f(g(h())))`.
func (c *LearnedRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnedRule = append(c.inters.LearnedRule, interceptors...)
}

// Create returns a builder for creating a LearnedRule entity.
func (c *LearnedRuleClient) Create() *LearnedRuleCreate {
	mutation := newLearnedRuleMutation(c.config, OpCreate)
	return &LearnedRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnedRule entities.
func (c *LearnedRuleClient) CreateBulk(builders ...*LearnedRuleCreate) *LearnedRuleCreateBulk {
	return &LearnedRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnedRuleClient) MapCreateBulk(slice any, setFunc func(*LearnedRuleCreate, int)) *LearnedRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnedRuleCreateBulk{err: fmt.Errorf("calling to LearnedRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnedRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnedRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnedRule.
func (c *LearnedRuleClient) Update() *LearnedRuleUpdate {
	mutation := newLearnedRuleMutation(c.config, OpUpdate)
	return &LearnedRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnedRuleClient) UpdateOne(_m *LearnedRule) *LearnedRuleUpdateOne {
	mutation := newLearnedRuleMutation(c.config, OpUpdateOne, withLearnedRule(_m))
	return &LearnedRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnedRuleClient) UpdateOneID(id uuid.UUID) *LearnedRuleUpdateOne {
	mutation := newLearnedRuleMutation(c.config, OpUpdateOne, withLearnedRuleID(id))
	return &LearnedRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnedRule.
func (c *LearnedRuleClient) Delete() *LearnedRuleDelete {
	mutation := newLearnedRuleMutation(c.config, OpDelete)
	return &LearnedRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnedRuleClient) DeleteOne(_m *LearnedRule) *LearnedRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnedRuleClient) DeleteOneID(id uuid.UUID) *LearnedRuleDeleteOne {
	builder := c.Delete().Where(learnedrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnedRuleDeleteOne{builder}
}

// Query returns a query builder for LearnedRule.
func (c *LearnedRuleClient) Query() *LearnedRuleQuery {
	return &LearnedRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnedRule},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnedRule entity by its id.
func (c *LearnedRuleClient) Get(ctx context.Context, id uuid.UUID) (*LearnedRule, error) {
	return c.Query().Where(learnedrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnedRuleClient) GetX(ctx context.Context, id uuid.UUID) *LearnedRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnedRuleClient) Hooks() []Hook {
	return c.hooks.LearnedRule
}

// Interceptors returns the client interceptors.
func (c *LearnedRuleClient) Interceptors() []Interceptor {
	return c.inters.LearnedRule
}

func (c *LearnedRuleClient) mutate(ctx context.Context, m *LearnedRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnedRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnedRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnedRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnedRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnedRule mutation op: %q", m.Op())
	}
}

// SenderProfileClient is a client for the SenderProfile schema.
type SenderProfileClient struct {
	config
}

// NewSenderProfileClient returns a client for the SenderProfile from the given config.
func NewSenderProfileClient(c config) *SenderProfileClient {
	return &SenderProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `senderprofile.Hooks(f(g(h())))`.
func (c *SenderProfileClient) Use(hooks ...Hook) {
	c.hooks.SenderProfile = append(c.hooks.SenderProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `senderprofile.Intercept(f(g(h())))`.
func (c *SenderProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SenderProfile = append(c.inters.SenderProfile, interceptors...)
}

// Create returns a builder for creating a SenderProfile entity.
func (c *SenderProfileClient) Create() *SenderProfileCreate {
	mutation := newSenderProfileMutation(c.config, OpCreate)
	return &SenderProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SenderProfile entities.
func (c *SenderProfileClient) CreateBulk(builders ...*SenderProfileCreate) *SenderProfileCreateBulk {
	return &SenderProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SenderProfileClient) MapCreateBulk(slice any, setFunc func(*SenderProfileCreate, int)) *SenderProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SenderProfileCreateBulk{err: fmt.Errorf("calling to SenderProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SenderProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SenderProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SenderProfile.
func (c *SenderProfileClient) Update() *SenderProfileUpdate {
	mutation := newSenderProfileMutation(c.config, OpUpdate)
	return &SenderProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SenderProfileClient) UpdateOne(_m *SenderProfile) *SenderProfileUpdateOne {
	mutation := newSenderProfileMutation(c.config, OpUpdateOne, withSenderProfile(_m))
	return &SenderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SenderProfileClient) UpdateOneID(id uuid.UUID) *SenderProfileUpdateOne {
	mutation := newSenderProfileMutation(c.config, OpUpdateOne, withSenderProfileID(id))
	return &SenderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SenderProfile.
func (c *SenderProfileClient) Delete() *SenderProfileDelete {
	mutation := newSenderProfileMutation(c.config, OpDelete)
	return &SenderProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SenderProfileClient) DeleteOne(_m *SenderProfile) *SenderProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SenderProfileClient) DeleteOneID(id uuid.UUID) *SenderProfileDeleteOne {
	builder := c.Delete().Where(senderprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SenderProfileDeleteOne{builder}
}

// Query returns a query builder for SenderProfile.
func (c *SenderProfileClient) Query() *SenderProfileQuery {
	return &SenderProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSenderProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a SenderProfile entity by its id.
func (c *SenderProfileClient) Get(ctx context.Context, id uuid.UUID) (*SenderProfile, error) {
	return c.Query().Where(senderprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SenderProfileClient) GetX(ctx context.Context, id uuid.UUID) *SenderProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SenderProfileClient) Hooks() []Hook {
	return c.hooks.SenderProfile
}

// Interceptors returns the client interceptors.
func (c *SenderProfileClient) Interceptors() []Interceptor {
	return c.inters.SenderProfile
}

func (c *SenderProfileClient) mutate(ctx context.Context, m *SenderProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SenderProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SenderProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SenderProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SenderProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SenderProfile mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmail queries the email edge of a Task.
func (c *TaskClient) QueryEmail(_m *Task) *EmailMessageQuery {
	query := (&EmailMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(emailmessage.Table, emailmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.EmailTable, task.EmailColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAlerts queries the alerts edge of a Task.
func (c *TaskClient) QueryAlerts(_m *Task) *AlertQuery {
	query := (&AlertClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(alert.Table, alert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AlertsTable, task.AlertsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// ThreadPatternClient is a client for the ThreadPattern schema.
type ThreadPatternClient struct {
	config
}

// NewThreadPatternClient returns a client for the ThreadPattern from the given config.
func NewThreadPatternClient(c config) *ThreadPatternClient {
	return &ThreadPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `threadpattern.Hooks(f(g(h())))`.
func (c *ThreadPatternClient) Use(hooks ...Hook) {
	c.hooks.ThreadPattern = append(c.hooks.ThreadPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `threadpattern.Intercept(f(g(h())))`.
func (c *ThreadPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.ThreadPattern = append(c.inters.ThreadPattern, interceptors...)
}

// Create returns a builder for creating a ThreadPattern entity.
func (c *ThreadPatternClient) Create() *ThreadPatternCreate {
	mutation := newThreadPatternMutation(c.config, OpCreate)
	return &ThreadPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ThreadPattern entities.
func (c *ThreadPatternClient) CreateBulk(builders ...*ThreadPatternCreate) *ThreadPatternCreateBulk {
	return &ThreadPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ThreadPatternClient) MapCreateBulk(slice any, setFunc func(*ThreadPatternCreate, int)) *ThreadPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ThreadPatternCreateBulk{err: fmt.Errorf("calling to ThreadPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ThreadPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ThreadPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ThreadPattern.
func (c *ThreadPatternClient) Update() *ThreadPatternUpdate {
	mutation := newThreadPatternMutation(c.config, OpUpdate)
	return &ThreadPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ThreadPatternClient) UpdateOne(_m *ThreadPattern) *ThreadPatternUpdateOne {
	mutation := newThreadPatternMutation(c.config, OpUpdateOne, withThreadPattern(_m))
	return &ThreadPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ThreadPatternClient) UpdateOneID(id uuid.UUID) *ThreadPatternUpdateOne {
	mutation := newThreadPatternMutation(c.config, OpUpdateOne, withThreadPatternID(id))
	return &ThreadPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ThreadPattern.
func (c *ThreadPatternClient) Delete() *ThreadPatternDelete {
	mutation := newThreadPatternMutation(c.config, OpDelete)
	return &ThreadPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ThreadPatternClient) DeleteOne(_m *ThreadPattern) *ThreadPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ThreadPatternClient) DeleteOneID(id uuid.UUID) *ThreadPatternDeleteOne {
	builder := c.Delete().Where(threadpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ThreadPatternDeleteOne{builder}
}

// Query returns a query builder for ThreadPattern.
func (c *ThreadPatternClient) Query() *ThreadPatternQuery {
	return &ThreadPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeThreadPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a ThreadPattern entity by its id.
func (c *ThreadPatternClient) Get(ctx context.Context, id uuid.UUID) (*ThreadPattern, error) {
	return c.Query().Where(threadpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ThreadPatternClient) GetX(ctx context.Context, id uuid.UUID) *ThreadPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ThreadPatternClient) Hooks() []Hook {
	return c.hooks.ThreadPattern
}

// Interceptors returns the client interceptors.
func (c *ThreadPatternClient) Interceptors() []Interceptor {
	return c.inters.ThreadPattern
}

func (c *ThreadPatternClient) mutate(ctx context.Context, m *ThreadPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ThreadPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ThreadPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ThreadPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ThreadPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ThreadPattern mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Alert, Attachment, EmailMessage, LearnedRule, SenderProfile, Task,
		ThreadPattern []ent.Hook
	}
	inters struct {
		Alert, Attachment, EmailMessage, LearnedRule, SenderProfile, Task,
		ThreadPattern []ent.Interceptor
	}
)
