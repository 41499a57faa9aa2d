// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipwallet"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LocationSetting is the client for interacting with the LocationSetting builders.
	LocationSetting *LocationSettingClient
	// OrderOwner is the client for interacting with the OrderOwner builders.
	OrderOwner *OrderOwnerClient
	// OrderOwnership is the client for interacting with the OrderOwnership builders.
	OrderOwnership *OrderOwnershipClient
	// TipAdjustment is the client for interacting with the TipAdjustment builders.
	TipAdjustment *TipAdjustmentClient
	// TipDebt is the client for interacting with the TipDebt builders.
	TipDebt *TipDebtClient
	// TipGroup is the client for interacting with the TipGroup builders.
	TipGroup *TipGroupClient
	// TipGroupSegment is the client for interacting with the TipGroupSegment builders.
	TipGroupSegment *TipGroupSegmentClient
	// TipLedgerEntry is the client for interacting with the TipLedgerEntry builders.
	TipLedgerEntry *TipLedgerEntryClient
	// TipTransaction is the client for interacting with the TipTransaction builders.
	TipTransaction *TipTransactionClient
	// TipWallet is the client for interacting with the TipWallet builders.
	TipWallet *TipWalletClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LocationSetting = NewLocationSettingClient(c.config)
	c.OrderOwner = NewOrderOwnerClient(c.config)
	c.OrderOwnership = NewOrderOwnershipClient(c.config)
	c.TipAdjustment = NewTipAdjustmentClient(c.config)
	c.TipDebt = NewTipDebtClient(c.config)
	c.TipGroup = NewTipGroupClient(c.config)
	c.TipGroupSegment = NewTipGroupSegmentClient(c.config)
	c.TipLedgerEntry = NewTipLedgerEntryClient(c.config)
	c.TipTransaction = NewTipTransactionClient(c.config)
	c.TipWallet = NewTipWalletClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		LocationSetting: NewLocationSettingClient(cfg),
		OrderOwner:      NewOrderOwnerClient(cfg),
		OrderOwnership:  NewOrderOwnershipClient(cfg),
		TipAdjustment:   NewTipAdjustmentClient(cfg),
		TipDebt:         NewTipDebtClient(cfg),
		TipGroup:        NewTipGroupClient(cfg),
		TipGroupSegment: NewTipGroupSegmentClient(cfg),
		TipLedgerEntry:  NewTipLedgerEntryClient(cfg),
		TipTransaction:  NewTipTransactionClient(cfg),
		TipWallet:       NewTipWalletClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		LocationSetting: NewLocationSettingClient(cfg),
		OrderOwner:      NewOrderOwnerClient(cfg),
		OrderOwnership:  NewOrderOwnershipClient(cfg),
		TipAdjustment:   NewTipAdjustmentClient(cfg),
		TipDebt:         NewTipDebtClient(cfg),
		TipGroup:        NewTipGroupClient(cfg),
		TipGroupSegment: NewTipGroupSegmentClient(cfg),
		TipLedgerEntry:  NewTipLedgerEntryClient(cfg),
		TipTransaction:  NewTipTransactionClient(cfg),
		TipWallet:       NewTipWalletClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LocationSetting.
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
		c.LocationSetting, c.OrderOwner, c.OrderOwnership, c.TipAdjustment, c.TipDebt,
		c.TipGroup, c.TipGroupSegment, c.TipLedgerEntry, c.TipTransaction, c.TipWallet,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LocationSetting, c.OrderOwner, c.OrderOwnership, c.TipAdjustment, c.TipDebt,
		c.TipGroup, c.TipGroupSegment, c.TipLedgerEntry, c.TipTransaction, c.TipWallet,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LocationSettingMutation:
		return c.LocationSetting.mutate(ctx, m)
	case *OrderOwnerMutation:
		return c.OrderOwner.mutate(ctx, m)
	case *OrderOwnershipMutation:
		return c.OrderOwnership.mutate(ctx, m)
	case *TipAdjustmentMutation:
		return c.TipAdjustment.mutate(ctx, m)
	case *TipDebtMutation:
		return c.TipDebt.mutate(ctx, m)
	case *TipGroupMutation:
		return c.TipGroup.mutate(ctx, m)
	case *TipGroupSegmentMutation:
		return c.TipGroupSegment.mutate(ctx, m)
	case *TipLedgerEntryMutation:
		return c.TipLedgerEntry.mutate(ctx, m)
	case *TipTransactionMutation:
		return c.TipTransaction.mutate(ctx, m)
	case *TipWalletMutation:
		return c.TipWallet.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// LocationSettingClient is a client for the LocationSetting schema.
type LocationSettingClient struct {
	config
}

// NewLocationSettingClient returns a client for the LocationSetting from the given config.
func NewLocationSettingClient(c config) *LocationSettingClient {
	return &LocationSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `locationsetting.Hooks(f(g(h())))`.
func (c *LocationSettingClient) Use(hooks ...Hook) {
	c.hooks.LocationSetting = append(c.hooks.LocationSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `locationsetting.Intercept(f(g(h())))`.
func (c *LocationSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.LocationSetting = append(c.inters.LocationSetting, interceptors...)
}

// Create returns a builder for creating a LocationSetting entity.
func (c *LocationSettingClient) Create() *LocationSettingCreate {
	mutation := newLocationSettingMutation(c.config, OpCreate)
	return &LocationSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LocationSetting entities.
func (c *LocationSettingClient) CreateBulk(builders ...*LocationSettingCreate) *LocationSettingCreateBulk {
	return &LocationSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LocationSettingClient) MapCreateBulk(slice any, setFunc func(*LocationSettingCreate, int)) *LocationSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LocationSettingCreateBulk{err: fmt.Errorf("calling to LocationSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LocationSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LocationSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LocationSetting.
func (c *LocationSettingClient) Update() *LocationSettingUpdate {
	mutation := newLocationSettingMutation(c.config, OpUpdate)
	return &LocationSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LocationSettingClient) UpdateOne(_m *LocationSetting) *LocationSettingUpdateOne {
	mutation := newLocationSettingMutation(c.config, OpUpdateOne, withLocationSetting(_m))
	return &LocationSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LocationSettingClient) UpdateOneID(id uuid.UUID) *LocationSettingUpdateOne {
	mutation := newLocationSettingMutation(c.config, OpUpdateOne, withLocationSettingID(id))
	return &LocationSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LocationSetting.
func (c *LocationSettingClient) Delete() *LocationSettingDelete {
	mutation := newLocationSettingMutation(c.config, OpDelete)
	return &LocationSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LocationSettingClient) DeleteOne(_m *LocationSetting) *LocationSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LocationSettingClient) DeleteOneID(id uuid.UUID) *LocationSettingDeleteOne {
	builder := c.Delete().Where(locationsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LocationSettingDeleteOne{builder}
}

// Query returns a query builder for LocationSetting.
func (c *LocationSettingClient) Query() *LocationSettingQuery {
	return &LocationSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLocationSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a LocationSetting entity by its id.
func (c *LocationSettingClient) Get(ctx context.Context, id uuid.UUID) (*LocationSetting, error) {
	return c.Query().Where(locationsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LocationSettingClient) GetX(ctx context.Context, id uuid.UUID) *LocationSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LocationSettingClient) Hooks() []Hook {
	return c.hooks.LocationSetting
}

// Interceptors returns the client interceptors.
func (c *LocationSettingClient) Interceptors() []Interceptor {
	return c.inters.LocationSetting
}

func (c *LocationSettingClient) mutate(ctx context.Context, m *LocationSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LocationSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LocationSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LocationSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LocationSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown LocationSetting mutation op: %q", m.Op())
	}
}

// OrderOwnerClient is a client for the OrderOwner schema.
type OrderOwnerClient struct {
	config
}

// NewOrderOwnerClient returns a client for the OrderOwner from the given config.
func NewOrderOwnerClient(c config) *OrderOwnerClient {
	return &OrderOwnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderowner.Hooks(f(g(h())))`.
func (c *OrderOwnerClient) Use(hooks ...Hook) {
	c.hooks.OrderOwner = append(c.hooks.OrderOwner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderowner.Intercept(f(g(h())))`.
func (c *OrderOwnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderOwner = append(c.inters.OrderOwner, interceptors...)
}

// Create returns a builder for creating a OrderOwner entity.
func (c *OrderOwnerClient) Create() *OrderOwnerCreate {
	mutation := newOrderOwnerMutation(c.config, OpCreate)
	return &OrderOwnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderOwner entities.
func (c *OrderOwnerClient) CreateBulk(builders ...*OrderOwnerCreate) *OrderOwnerCreateBulk {
	return &OrderOwnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderOwnerClient) MapCreateBulk(slice any, setFunc func(*OrderOwnerCreate, int)) *OrderOwnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderOwnerCreateBulk{err: fmt.Errorf("calling to OrderOwnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderOwnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderOwnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderOwner.
func (c *OrderOwnerClient) Update() *OrderOwnerUpdate {
	mutation := newOrderOwnerMutation(c.config, OpUpdate)
	return &OrderOwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderOwnerClient) UpdateOne(_m *OrderOwner) *OrderOwnerUpdateOne {
	mutation := newOrderOwnerMutation(c.config, OpUpdateOne, withOrderOwner(_m))
	return &OrderOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderOwnerClient) UpdateOneID(id uuid.UUID) *OrderOwnerUpdateOne {
	mutation := newOrderOwnerMutation(c.config, OpUpdateOne, withOrderOwnerID(id))
	return &OrderOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderOwner.
func (c *OrderOwnerClient) Delete() *OrderOwnerDelete {
	mutation := newOrderOwnerMutation(c.config, OpDelete)
	return &OrderOwnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderOwnerClient) DeleteOne(_m *OrderOwner) *OrderOwnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderOwnerClient) DeleteOneID(id uuid.UUID) *OrderOwnerDeleteOne {
	builder := c.Delete().Where(orderowner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderOwnerDeleteOne{builder}
}

// Query returns a query builder for OrderOwner.
func (c *OrderOwnerClient) Query() *OrderOwnerQuery {
	return &OrderOwnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderOwner},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderOwner entity by its id.
func (c *OrderOwnerClient) Get(ctx context.Context, id uuid.UUID) (*OrderOwner, error) {
	return c.Query().Where(orderowner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderOwnerClient) GetX(ctx context.Context, id uuid.UUID) *OrderOwner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwnership queries the ownership edge of a OrderOwner.
func (c *OrderOwnerClient) QueryOwnership(_m *OrderOwner) *OrderOwnershipQuery {
	query := (&OrderOwnershipClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderowner.Table, orderowner.FieldID, id),
			sqlgraph.To(orderownership.Table, orderownership.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderowner.OwnershipTable, orderowner.OwnershipColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderOwnerClient) Hooks() []Hook {
	return c.hooks.OrderOwner
}

// Interceptors returns the client interceptors.
func (c *OrderOwnerClient) Interceptors() []Interceptor {
	return c.inters.OrderOwner
}

func (c *OrderOwnerClient) mutate(ctx context.Context, m *OrderOwnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderOwnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderOwnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderOwnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderOwnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown OrderOwner mutation op: %q", m.Op())
	}
}

// OrderOwnershipClient is a client for the OrderOwnership schema.
type OrderOwnershipClient struct {
	config
}

// NewOrderOwnershipClient returns a client for the OrderOwnership from the given config.
func NewOrderOwnershipClient(c config) *OrderOwnershipClient {
	return &OrderOwnershipClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderownership.Hooks(f(g(h())))`.
func (c *OrderOwnershipClient) Use(hooks ...Hook) {
	c.hooks.OrderOwnership = append(c.hooks.OrderOwnership, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderownership.Intercept(f(g(h())))`.
func (c *OrderOwnershipClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderOwnership = append(c.inters.OrderOwnership, interceptors...)
}

// Create returns a builder for creating a OrderOwnership entity.
func (c *OrderOwnershipClient) Create() *OrderOwnershipCreate {
	mutation := newOrderOwnershipMutation(c.config, OpCreate)
	return &OrderOwnershipCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderOwnership entities.
func (c *OrderOwnershipClient) CreateBulk(builders ...*OrderOwnershipCreate) *OrderOwnershipCreateBulk {
	return &OrderOwnershipCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderOwnershipClient) MapCreateBulk(slice any, setFunc func(*OrderOwnershipCreate, int)) *OrderOwnershipCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderOwnershipCreateBulk{err: fmt.Errorf("calling to OrderOwnershipClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderOwnershipCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderOwnershipCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderOwnership.
func (c *OrderOwnershipClient) Update() *OrderOwnershipUpdate {
	mutation := newOrderOwnershipMutation(c.config, OpUpdate)
	return &OrderOwnershipUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderOwnershipClient) UpdateOne(_m *OrderOwnership) *OrderOwnershipUpdateOne {
	mutation := newOrderOwnershipMutation(c.config, OpUpdateOne, withOrderOwnership(_m))
	return &OrderOwnershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderOwnershipClient) UpdateOneID(id uuid.UUID) *OrderOwnershipUpdateOne {
	mutation := newOrderOwnershipMutation(c.config, OpUpdateOne, withOrderOwnershipID(id))
	return &OrderOwnershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderOwnership.
func (c *OrderOwnershipClient) Delete() *OrderOwnershipDelete {
	mutation := newOrderOwnershipMutation(c.config, OpDelete)
	return &OrderOwnershipDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderOwnershipClient) DeleteOne(_m *OrderOwnership) *OrderOwnershipDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderOwnershipClient) DeleteOneID(id uuid.UUID) *OrderOwnershipDeleteOne {
	builder := c.Delete().Where(orderownership.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderOwnershipDeleteOne{builder}
}

// Query returns a query builder for OrderOwnership.
func (c *OrderOwnershipClient) Query() *OrderOwnershipQuery {
	return &OrderOwnershipQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderOwnership},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderOwnership entity by its id.
func (c *OrderOwnershipClient) Get(ctx context.Context, id uuid.UUID) (*OrderOwnership, error) {
	return c.Query().Where(orderownership.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderOwnershipClient) GetX(ctx context.Context, id uuid.UUID) *OrderOwnership {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwners queries the owners edge of a OrderOwnership.
func (c *OrderOwnershipClient) QueryOwners(_m *OrderOwnership) *OrderOwnerQuery {
	query := (&OrderOwnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderownership.Table, orderownership.FieldID, id),
			sqlgraph.To(orderowner.Table, orderowner.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, orderownership.OwnersTable, orderownership.OwnersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderOwnershipClient) Hooks() []Hook {
	return c.hooks.OrderOwnership
}

// Interceptors returns the client interceptors.
func (c *OrderOwnershipClient) Interceptors() []Interceptor {
	return c.inters.OrderOwnership
}

func (c *OrderOwnershipClient) mutate(ctx context.Context, m *OrderOwnershipMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderOwnershipCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderOwnershipUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderOwnershipUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderOwnershipDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown OrderOwnership mutation op: %q", m.Op())
	}
}

// TipAdjustmentClient is a client for the TipAdjustment schema.
type TipAdjustmentClient struct {
	config
}

// NewTipAdjustmentClient returns a client for the TipAdjustment from the given config.
func NewTipAdjustmentClient(c config) *TipAdjustmentClient {
	return &TipAdjustmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipadjustment.Hooks(f(g(h())))`.
func (c *TipAdjustmentClient) Use(hooks ...Hook) {
	c.hooks.TipAdjustment = append(c.hooks.TipAdjustment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipadjustment.Intercept(f(g(h())))`.
func (c *TipAdjustmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipAdjustment = append(c.inters.TipAdjustment, interceptors...)
}

// Create returns a builder for creating a TipAdjustment entity.
func (c *TipAdjustmentClient) Create() *TipAdjustmentCreate {
	mutation := newTipAdjustmentMutation(c.config, OpCreate)
	return &TipAdjustmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipAdjustment entities.
func (c *TipAdjustmentClient) CreateBulk(builders ...*TipAdjustmentCreate) *TipAdjustmentCreateBulk {
	return &TipAdjustmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipAdjustmentClient) MapCreateBulk(slice any, setFunc func(*TipAdjustmentCreate, int)) *TipAdjustmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipAdjustmentCreateBulk{err: fmt.Errorf("calling to TipAdjustmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipAdjustmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipAdjustmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipAdjustment.
func (c *TipAdjustmentClient) Update() *TipAdjustmentUpdate {
	mutation := newTipAdjustmentMutation(c.config, OpUpdate)
	return &TipAdjustmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipAdjustmentClient) UpdateOne(_m *TipAdjustment) *TipAdjustmentUpdateOne {
	mutation := newTipAdjustmentMutation(c.config, OpUpdateOne, withTipAdjustment(_m))
	return &TipAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipAdjustmentClient) UpdateOneID(id uuid.UUID) *TipAdjustmentUpdateOne {
	mutation := newTipAdjustmentMutation(c.config, OpUpdateOne, withTipAdjustmentID(id))
	return &TipAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipAdjustment.
func (c *TipAdjustmentClient) Delete() *TipAdjustmentDelete {
	mutation := newTipAdjustmentMutation(c.config, OpDelete)
	return &TipAdjustmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipAdjustmentClient) DeleteOne(_m *TipAdjustment) *TipAdjustmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipAdjustmentClient) DeleteOneID(id uuid.UUID) *TipAdjustmentDeleteOne {
	builder := c.Delete().Where(tipadjustment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipAdjustmentDeleteOne{builder}
}

// Query returns a query builder for TipAdjustment.
func (c *TipAdjustmentClient) Query() *TipAdjustmentQuery {
	return &TipAdjustmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipAdjustment},
		inters: c.Interceptors(),
	}
}

// Get returns a TipAdjustment entity by its id.
func (c *TipAdjustmentClient) Get(ctx context.Context, id uuid.UUID) (*TipAdjustment, error) {
	return c.Query().Where(tipadjustment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipAdjustmentClient) GetX(ctx context.Context, id uuid.UUID) *TipAdjustment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipAdjustmentClient) Hooks() []Hook {
	return c.hooks.TipAdjustment
}

// Interceptors returns the client interceptors.
func (c *TipAdjustmentClient) Interceptors() []Interceptor {
	return c.inters.TipAdjustment
}

func (c *TipAdjustmentClient) mutate(ctx context.Context, m *TipAdjustmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipAdjustmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipAdjustmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipAdjustmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipAdjustmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipAdjustment mutation op: %q", m.Op())
	}
}

// TipDebtClient is a client for the TipDebt schema.
type TipDebtClient struct {
	config
}

// NewTipDebtClient returns a client for the TipDebt from the given config.
func NewTipDebtClient(c config) *TipDebtClient {
	return &TipDebtClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipdebt.Hooks(f(g(h())))`.
func (c *TipDebtClient) Use(hooks ...Hook) {
	c.hooks.TipDebt = append(c.hooks.TipDebt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipdebt.Intercept(f(g(h())))`.
func (c *TipDebtClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipDebt = append(c.inters.TipDebt, interceptors...)
}

// Create returns a builder for creating a TipDebt entity.
func (c *TipDebtClient) Create() *TipDebtCreate {
	mutation := newTipDebtMutation(c.config, OpCreate)
	return &TipDebtCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipDebt entities.
func (c *TipDebtClient) CreateBulk(builders ...*TipDebtCreate) *TipDebtCreateBulk {
	return &TipDebtCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipDebtClient) MapCreateBulk(slice any, setFunc func(*TipDebtCreate, int)) *TipDebtCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipDebtCreateBulk{err: fmt.Errorf("calling to TipDebtClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipDebtCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipDebtCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipDebt.
func (c *TipDebtClient) Update() *TipDebtUpdate {
	mutation := newTipDebtMutation(c.config, OpUpdate)
	return &TipDebtUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipDebtClient) UpdateOne(_m *TipDebt) *TipDebtUpdateOne {
	mutation := newTipDebtMutation(c.config, OpUpdateOne, withTipDebt(_m))
	return &TipDebtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipDebtClient) UpdateOneID(id uuid.UUID) *TipDebtUpdateOne {
	mutation := newTipDebtMutation(c.config, OpUpdateOne, withTipDebtID(id))
	return &TipDebtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipDebt.
func (c *TipDebtClient) Delete() *TipDebtDelete {
	mutation := newTipDebtMutation(c.config, OpDelete)
	return &TipDebtDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipDebtClient) DeleteOne(_m *TipDebt) *TipDebtDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipDebtClient) DeleteOneID(id uuid.UUID) *TipDebtDeleteOne {
	builder := c.Delete().Where(tipdebt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipDebtDeleteOne{builder}
}

// Query returns a query builder for TipDebt.
func (c *TipDebtClient) Query() *TipDebtQuery {
	return &TipDebtQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipDebt},
		inters: c.Interceptors(),
	}
}

// Get returns a TipDebt entity by its id.
func (c *TipDebtClient) Get(ctx context.Context, id uuid.UUID) (*TipDebt, error) {
	return c.Query().Where(tipdebt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipDebtClient) GetX(ctx context.Context, id uuid.UUID) *TipDebt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipDebtClient) Hooks() []Hook {
	return c.hooks.TipDebt
}

// Interceptors returns the client interceptors.
func (c *TipDebtClient) Interceptors() []Interceptor {
	return c.inters.TipDebt
}

func (c *TipDebtClient) mutate(ctx context.Context, m *TipDebtMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipDebtCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipDebtUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipDebtUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipDebtDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipDebt mutation op: %q", m.Op())
	}
}

// TipGroupClient is a client for the TipGroup schema.
type TipGroupClient struct {
	config
}

// NewTipGroupClient returns a client for the TipGroup from the given config.
func NewTipGroupClient(c config) *TipGroupClient {
	return &TipGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipgroup.Hooks(f(g(h())))`.
func (c *TipGroupClient) Use(hooks ...Hook) {
	c.hooks.TipGroup = append(c.hooks.TipGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipgroup.Intercept(f(g(h())))`.
func (c *TipGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipGroup = append(c.inters.TipGroup, interceptors...)
}

// Create returns a builder for creating a TipGroup entity.
func (c *TipGroupClient) Create() *TipGroupCreate {
	mutation := newTipGroupMutation(c.config, OpCreate)
	return &TipGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipGroup entities.
func (c *TipGroupClient) CreateBulk(builders ...*TipGroupCreate) *TipGroupCreateBulk {
	return &TipGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipGroupClient) MapCreateBulk(slice any, setFunc func(*TipGroupCreate, int)) *TipGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipGroupCreateBulk{err: fmt.Errorf("calling to TipGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipGroup.
func (c *TipGroupClient) Update() *TipGroupUpdate {
	mutation := newTipGroupMutation(c.config, OpUpdate)
	return &TipGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipGroupClient) UpdateOne(_m *TipGroup) *TipGroupUpdateOne {
	mutation := newTipGroupMutation(c.config, OpUpdateOne, withTipGroup(_m))
	return &TipGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipGroupClient) UpdateOneID(id uuid.UUID) *TipGroupUpdateOne {
	mutation := newTipGroupMutation(c.config, OpUpdateOne, withTipGroupID(id))
	return &TipGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipGroup.
func (c *TipGroupClient) Delete() *TipGroupDelete {
	mutation := newTipGroupMutation(c.config, OpDelete)
	return &TipGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipGroupClient) DeleteOne(_m *TipGroup) *TipGroupDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipGroupClient) DeleteOneID(id uuid.UUID) *TipGroupDeleteOne {
	builder := c.Delete().Where(tipgroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipGroupDeleteOne{builder}
}

// Query returns a query builder for TipGroup.
func (c *TipGroupClient) Query() *TipGroupQuery {
	return &TipGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a TipGroup entity by its id.
func (c *TipGroupClient) Get(ctx context.Context, id uuid.UUID) (*TipGroup, error) {
	return c.Query().Where(tipgroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipGroupClient) GetX(ctx context.Context, id uuid.UUID) *TipGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySegments queries the segments edge of a TipGroup.
func (c *TipGroupClient) QuerySegments(_m *TipGroup) *TipGroupSegmentQuery {
	query := (&TipGroupSegmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tipgroup.Table, tipgroup.FieldID, id),
			sqlgraph.To(tipgroupsegment.Table, tipgroupsegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tipgroup.SegmentsTable, tipgroup.SegmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TipGroupClient) Hooks() []Hook {
	return c.hooks.TipGroup
}

// Interceptors returns the client interceptors.
func (c *TipGroupClient) Interceptors() []Interceptor {
	return c.inters.TipGroup
}

func (c *TipGroupClient) mutate(ctx context.Context, m *TipGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipGroup mutation op: %q", m.Op())
	}
}

// TipGroupSegmentClient is a client for the TipGroupSegment schema.
type TipGroupSegmentClient struct {
	config
}

// NewTipGroupSegmentClient returns a client for the TipGroupSegment from the given config.
func NewTipGroupSegmentClient(c config) *TipGroupSegmentClient {
	return &TipGroupSegmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipgroupsegment.Hooks(f(g(h())))`.
func (c *TipGroupSegmentClient) Use(hooks ...Hook) {
	c.hooks.TipGroupSegment = append(c.hooks.TipGroupSegment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipgroupsegment.Intercept(f(g(h())))`.
func (c *TipGroupSegmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipGroupSegment = append(c.inters.TipGroupSegment, interceptors...)
}

// Create returns a builder for creating a TipGroupSegment entity.
func (c *TipGroupSegmentClient) Create() *TipGroupSegmentCreate {
	mutation := newTipGroupSegmentMutation(c.config, OpCreate)
	return &TipGroupSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipGroupSegment entities.
func (c *TipGroupSegmentClient) CreateBulk(builders ...*TipGroupSegmentCreate) *TipGroupSegmentCreateBulk {
	return &TipGroupSegmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipGroupSegmentClient) MapCreateBulk(slice any, setFunc func(*TipGroupSegmentCreate, int)) *TipGroupSegmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipGroupSegmentCreateBulk{err: fmt.Errorf("calling to TipGroupSegmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipGroupSegmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipGroupSegmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipGroupSegment.
func (c *TipGroupSegmentClient) Update() *TipGroupSegmentUpdate {
	mutation := newTipGroupSegmentMutation(c.config, OpUpdate)
	return &TipGroupSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipGroupSegmentClient) UpdateOne(_m *TipGroupSegment) *TipGroupSegmentUpdateOne {
	mutation := newTipGroupSegmentMutation(c.config, OpUpdateOne, withTipGroupSegment(_m))
	return &TipGroupSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipGroupSegmentClient) UpdateOneID(id uuid.UUID) *TipGroupSegmentUpdateOne {
	mutation := newTipGroupSegmentMutation(c.config, OpUpdateOne, withTipGroupSegmentID(id))
	return &TipGroupSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipGroupSegment.
func (c *TipGroupSegmentClient) Delete() *TipGroupSegmentDelete {
	mutation := newTipGroupSegmentMutation(c.config, OpDelete)
	return &TipGroupSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipGroupSegmentClient) DeleteOne(_m *TipGroupSegment) *TipGroupSegmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipGroupSegmentClient) DeleteOneID(id uuid.UUID) *TipGroupSegmentDeleteOne {
	builder := c.Delete().Where(tipgroupsegment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipGroupSegmentDeleteOne{builder}
}

// Query returns a query builder for TipGroupSegment.
func (c *TipGroupSegmentClient) Query() *TipGroupSegmentQuery {
	return &TipGroupSegmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipGroupSegment},
		inters: c.Interceptors(),
	}
}

// Get returns a TipGroupSegment entity by its id.
func (c *TipGroupSegmentClient) Get(ctx context.Context, id uuid.UUID) (*TipGroupSegment, error) {
	return c.Query().Where(tipgroupsegment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipGroupSegmentClient) GetX(ctx context.Context, id uuid.UUID) *TipGroupSegment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a TipGroupSegment.
func (c *TipGroupSegmentClient) QueryGroup(_m *TipGroupSegment) *TipGroupQuery {
	query := (&TipGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tipgroupsegment.Table, tipgroupsegment.FieldID, id),
			sqlgraph.To(tipgroup.Table, tipgroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tipgroupsegment.GroupTable, tipgroupsegment.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TipGroupSegmentClient) Hooks() []Hook {
	return c.hooks.TipGroupSegment
}

// Interceptors returns the client interceptors.
func (c *TipGroupSegmentClient) Interceptors() []Interceptor {
	return c.inters.TipGroupSegment
}

func (c *TipGroupSegmentClient) mutate(ctx context.Context, m *TipGroupSegmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipGroupSegmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipGroupSegmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipGroupSegmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipGroupSegmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipGroupSegment mutation op: %q", m.Op())
	}
}

// TipLedgerEntryClient is a client for the TipLedgerEntry schema.
type TipLedgerEntryClient struct {
	config
}

// NewTipLedgerEntryClient returns a client for the TipLedgerEntry from the given config.
func NewTipLedgerEntryClient(c config) *TipLedgerEntryClient {
	return &TipLedgerEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipledgerentry.Hooks(f(g(h())))`.
func (c *TipLedgerEntryClient) Use(hooks ...Hook) {
	c.hooks.TipLedgerEntry = append(c.hooks.TipLedgerEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipledgerentry.Intercept(f(g(h())))`.
func (c *TipLedgerEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipLedgerEntry = append(c.inters.TipLedgerEntry, interceptors...)
}

// Create returns a builder for creating a TipLedgerEntry entity.
func (c *TipLedgerEntryClient) Create() *TipLedgerEntryCreate {
	mutation := newTipLedgerEntryMutation(c.config, OpCreate)
	return &TipLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipLedgerEntry entities.
func (c *TipLedgerEntryClient) CreateBulk(builders ...*TipLedgerEntryCreate) *TipLedgerEntryCreateBulk {
	return &TipLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipLedgerEntryClient) MapCreateBulk(slice any, setFunc func(*TipLedgerEntryCreate, int)) *TipLedgerEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipLedgerEntryCreateBulk{err: fmt.Errorf("calling to TipLedgerEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipLedgerEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipLedgerEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipLedgerEntry.
func (c *TipLedgerEntryClient) Update() *TipLedgerEntryUpdate {
	mutation := newTipLedgerEntryMutation(c.config, OpUpdate)
	return &TipLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipLedgerEntryClient) UpdateOne(_m *TipLedgerEntry) *TipLedgerEntryUpdateOne {
	mutation := newTipLedgerEntryMutation(c.config, OpUpdateOne, withTipLedgerEntry(_m))
	return &TipLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipLedgerEntryClient) UpdateOneID(id uuid.UUID) *TipLedgerEntryUpdateOne {
	mutation := newTipLedgerEntryMutation(c.config, OpUpdateOne, withTipLedgerEntryID(id))
	return &TipLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipLedgerEntry.
func (c *TipLedgerEntryClient) Delete() *TipLedgerEntryDelete {
	mutation := newTipLedgerEntryMutation(c.config, OpDelete)
	return &TipLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipLedgerEntryClient) DeleteOne(_m *TipLedgerEntry) *TipLedgerEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipLedgerEntryClient) DeleteOneID(id uuid.UUID) *TipLedgerEntryDeleteOne {
	builder := c.Delete().Where(tipledgerentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipLedgerEntryDeleteOne{builder}
}

// Query returns a query builder for TipLedgerEntry.
func (c *TipLedgerEntryClient) Query() *TipLedgerEntryQuery {
	return &TipLedgerEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipLedgerEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a TipLedgerEntry entity by its id.
func (c *TipLedgerEntryClient) Get(ctx context.Context, id uuid.UUID) (*TipLedgerEntry, error) {
	return c.Query().Where(tipledgerentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipLedgerEntryClient) GetX(ctx context.Context, id uuid.UUID) *TipLedgerEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipLedgerEntryClient) Hooks() []Hook {
	return c.hooks.TipLedgerEntry
}

// Interceptors returns the client interceptors.
func (c *TipLedgerEntryClient) Interceptors() []Interceptor {
	return c.inters.TipLedgerEntry
}

func (c *TipLedgerEntryClient) mutate(ctx context.Context, m *TipLedgerEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipLedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipLedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipLedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipLedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipLedgerEntry mutation op: %q", m.Op())
	}
}

// TipTransactionClient is a client for the TipTransaction schema.
type TipTransactionClient struct {
	config
}

// NewTipTransactionClient returns a client for the TipTransaction from the given config.
func NewTipTransactionClient(c config) *TipTransactionClient {
	return &TipTransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tiptransaction.Hooks(f(g(h())))`.
func (c *TipTransactionClient) Use(hooks ...Hook) {
	c.hooks.TipTransaction = append(c.hooks.TipTransaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tiptransaction.Intercept(f(g(h())))`.
func (c *TipTransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipTransaction = append(c.inters.TipTransaction, interceptors...)
}

// Create returns a builder for creating a TipTransaction entity.
func (c *TipTransactionClient) Create() *TipTransactionCreate {
	mutation := newTipTransactionMutation(c.config, OpCreate)
	return &TipTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipTransaction entities.
func (c *TipTransactionClient) CreateBulk(builders ...*TipTransactionCreate) *TipTransactionCreateBulk {
	return &TipTransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipTransactionClient) MapCreateBulk(slice any, setFunc func(*TipTransactionCreate, int)) *TipTransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipTransactionCreateBulk{err: fmt.Errorf("calling to TipTransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipTransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipTransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipTransaction.
func (c *TipTransactionClient) Update() *TipTransactionUpdate {
	mutation := newTipTransactionMutation(c.config, OpUpdate)
	return &TipTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipTransactionClient) UpdateOne(_m *TipTransaction) *TipTransactionUpdateOne {
	mutation := newTipTransactionMutation(c.config, OpUpdateOne, withTipTransaction(_m))
	return &TipTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipTransactionClient) UpdateOneID(id uuid.UUID) *TipTransactionUpdateOne {
	mutation := newTipTransactionMutation(c.config, OpUpdateOne, withTipTransactionID(id))
	return &TipTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipTransaction.
func (c *TipTransactionClient) Delete() *TipTransactionDelete {
	mutation := newTipTransactionMutation(c.config, OpDelete)
	return &TipTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipTransactionClient) DeleteOne(_m *TipTransaction) *TipTransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipTransactionClient) DeleteOneID(id uuid.UUID) *TipTransactionDeleteOne {
	builder := c.Delete().Where(tiptransaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipTransactionDeleteOne{builder}
}

// Query returns a query builder for TipTransaction.
func (c *TipTransactionClient) Query() *TipTransactionQuery {
	return &TipTransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a TipTransaction entity by its id.
func (c *TipTransactionClient) Get(ctx context.Context, id uuid.UUID) (*TipTransaction, error) {
	return c.Query().Where(tiptransaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipTransactionClient) GetX(ctx context.Context, id uuid.UUID) *TipTransaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipTransactionClient) Hooks() []Hook {
	return c.hooks.TipTransaction
}

// Interceptors returns the client interceptors.
func (c *TipTransactionClient) Interceptors() []Interceptor {
	return c.inters.TipTransaction
}

func (c *TipTransactionClient) mutate(ctx context.Context, m *TipTransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipTransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipTransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipTransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipTransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipTransaction mutation op: %q", m.Op())
	}
}

// TipWalletClient is a client for the TipWallet schema.
type TipWalletClient struct {
	config
}

// NewTipWalletClient returns a client for the TipWallet from the given config.
func NewTipWalletClient(c config) *TipWalletClient {
	return &TipWalletClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tipwallet.Hooks(f(g(h())))`.
func (c *TipWalletClient) Use(hooks ...Hook) {
	c.hooks.TipWallet = append(c.hooks.TipWallet, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tipwallet.Intercept(f(g(h())))`.
func (c *TipWalletClient) Intercept(interceptors ...Interceptor) {
	c.inters.TipWallet = append(c.inters.TipWallet, interceptors...)
}

// Create returns a builder for creating a TipWallet entity.
func (c *TipWalletClient) Create() *TipWalletCreate {
	mutation := newTipWalletMutation(c.config, OpCreate)
	return &TipWalletCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TipWallet entities.
func (c *TipWalletClient) CreateBulk(builders ...*TipWalletCreate) *TipWalletCreateBulk {
	return &TipWalletCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TipWalletClient) MapCreateBulk(slice any, setFunc func(*TipWalletCreate, int)) *TipWalletCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TipWalletCreateBulk{err: fmt.Errorf("calling to TipWalletClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TipWalletCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TipWalletCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TipWallet.
func (c *TipWalletClient) Update() *TipWalletUpdate {
	mutation := newTipWalletMutation(c.config, OpUpdate)
	return &TipWalletUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TipWalletClient) UpdateOne(_m *TipWallet) *TipWalletUpdateOne {
	mutation := newTipWalletMutation(c.config, OpUpdateOne, withTipWallet(_m))
	return &TipWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TipWalletClient) UpdateOneID(id uuid.UUID) *TipWalletUpdateOne {
	mutation := newTipWalletMutation(c.config, OpUpdateOne, withTipWalletID(id))
	return &TipWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TipWallet.
func (c *TipWalletClient) Delete() *TipWalletDelete {
	mutation := newTipWalletMutation(c.config, OpDelete)
	return &TipWalletDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TipWalletClient) DeleteOne(_m *TipWallet) *TipWalletDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TipWalletClient) DeleteOneID(id uuid.UUID) *TipWalletDeleteOne {
	builder := c.Delete().Where(tipwallet.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TipWalletDeleteOne{builder}
}

// Query returns a query builder for TipWallet.
func (c *TipWalletClient) Query() *TipWalletQuery {
	return &TipWalletQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTipWallet},
		inters: c.Interceptors(),
	}
}

// Get returns a TipWallet entity by its id.
func (c *TipWalletClient) Get(ctx context.Context, id uuid.UUID) (*TipWallet, error) {
	return c.Query().Where(tipwallet.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TipWalletClient) GetX(ctx context.Context, id uuid.UUID) *TipWallet {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TipWalletClient) Hooks() []Hook {
	return c.hooks.TipWallet
}

// Interceptors returns the client interceptors.
func (c *TipWalletClient) Interceptors() []Interceptor {
	return c.inters.TipWallet
}

func (c *TipWalletClient) mutate(ctx context.Context, m *TipWalletMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TipWalletCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TipWalletUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TipWalletUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TipWalletDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown TipWallet mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LocationSetting, OrderOwner, OrderOwnership, TipAdjustment, TipDebt, TipGroup,
		TipGroupSegment, TipLedgerEntry, TipTransaction, TipWallet []ent.Hook
	}
	inters struct {
		LocationSetting, OrderOwner, OrderOwnership, TipAdjustment, TipDebt, TipGroup,
		TipGroupSegment, TipLedgerEntry, TipTransaction, TipWallet []ent.Interceptor
	}
)
