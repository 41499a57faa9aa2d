// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/locationsetting"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderowner"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/orderownership"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/predicate"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipadjustment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipdebt"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroup"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipgroupsegment"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipledgerentry"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tiptransaction"
	"github.com/GetwithitMan/gwi-pos-sub001/internal/repo/tipwallet"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLocationSetting = "LocationSetting"
	TypeOrderOwner      = "OrderOwner"
	TypeOrderOwnership  = "OrderOwnership"
	TypeTipAdjustment   = "TipAdjustment"
	TypeTipDebt         = "TipDebt"
	TypeTipGroup        = "TipGroup"
	TypeTipGroupSegment = "TipGroupSegment"
	TypeTipLedgerEntry  = "TipLedgerEntry"
	TypeTipTransaction  = "TipTransaction"
	TypeTipWallet       = "TipWallet"
)

// LocationSettingMutation represents an operation that mutates the LocationSetting nodes in the graph.
type LocationSettingMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	location_id   *uuid.UUID
	settings      *[]byte
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*LocationSetting, error)
	predicates    []predicate.LocationSetting
}

var _ ent.Mutation = (*LocationSettingMutation)(nil)

// locationsettingOption allows management of the mutation configuration using functional options.
type locationsettingOption func(*LocationSettingMutation)

// newLocationSettingMutation creates new mutation for the LocationSetting entity.
func newLocationSettingMutation(c config, op Op, opts ...locationsettingOption) *LocationSettingMutation {
	m := &LocationSettingMutation{
		config:        c,
		op:            op,
		typ:           TypeLocationSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLocationSettingID sets the ID field of the mutation.
func withLocationSettingID(id uuid.UUID) locationsettingOption {
	return func(m *LocationSettingMutation) {
		var (
			err   error
			once  sync.Once
			value *LocationSetting
		)
		m.oldValue = func(ctx context.Context) (*LocationSetting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LocationSetting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLocationSetting sets the old LocationSetting of the mutation.
func withLocationSetting(node *LocationSetting) locationsettingOption {
	return func(m *LocationSettingMutation) {
		m.oldValue = func(context.Context) (*LocationSetting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LocationSettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LocationSettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LocationSetting entities.
func (m *LocationSettingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LocationSettingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LocationSettingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LocationSetting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LocationSettingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LocationSettingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LocationSetting entity.
// If the LocationSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationSettingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LocationSettingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LocationSettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LocationSettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LocationSetting entity.
// If the LocationSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationSettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LocationSettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLocationID sets the "location_id" field.
func (m *LocationSettingMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *LocationSettingMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the LocationSetting entity.
// If the LocationSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationSettingMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *LocationSettingMutation) ResetLocationID() {
	m.location_id = nil
}

// SetSettings sets the "settings" field.
func (m *LocationSettingMutation) SetSettings(b []byte) {
	m.settings = &b
}

// Settings returns the value of the "settings" field in the mutation.
func (m *LocationSettingMutation) Settings() (r []byte, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the LocationSetting entity.
// If the LocationSetting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LocationSettingMutation) OldSettings(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *LocationSettingMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[locationsetting.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *LocationSettingMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[locationsetting.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *LocationSettingMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, locationsetting.FieldSettings)
}

// Where appends a list predicates to the LocationSettingMutation builder.
func (m *LocationSettingMutation) Where(ps ...predicate.LocationSetting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LocationSettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LocationSettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LocationSetting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LocationSettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LocationSettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LocationSetting).
func (m *LocationSettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LocationSettingMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, locationsetting.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, locationsetting.FieldUpdatedAt)
	}
	if m.location_id != nil {
		fields = append(fields, locationsetting.FieldLocationID)
	}
	if m.settings != nil {
		fields = append(fields, locationsetting.FieldSettings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LocationSettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case locationsetting.FieldCreatedAt:
		return m.CreatedAt()
	case locationsetting.FieldUpdatedAt:
		return m.UpdatedAt()
	case locationsetting.FieldLocationID:
		return m.LocationID()
	case locationsetting.FieldSettings:
		return m.Settings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LocationSettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case locationsetting.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case locationsetting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case locationsetting.FieldLocationID:
		return m.OldLocationID(ctx)
	case locationsetting.FieldSettings:
		return m.OldSettings(ctx)
	}
	return nil, fmt.Errorf("unknown LocationSetting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationSettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case locationsetting.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case locationsetting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case locationsetting.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case locationsetting.FieldSettings:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	}
	return fmt.Errorf("unknown LocationSetting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LocationSettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LocationSettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LocationSettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LocationSetting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LocationSettingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(locationsetting.FieldSettings) {
		fields = append(fields, locationsetting.FieldSettings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LocationSettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LocationSettingMutation) ClearField(name string) error {
	switch name {
	case locationsetting.FieldSettings:
		m.ClearSettings()
		return nil
	}
	return fmt.Errorf("unknown LocationSetting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LocationSettingMutation) ResetField(name string) error {
	switch name {
	case locationsetting.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case locationsetting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case locationsetting.FieldLocationID:
		m.ResetLocationID()
		return nil
	case locationsetting.FieldSettings:
		m.ResetSettings()
		return nil
	}
	return fmt.Errorf("unknown LocationSetting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LocationSettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LocationSettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LocationSettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LocationSettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LocationSettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LocationSettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LocationSettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LocationSetting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LocationSettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LocationSetting edge %s", name)
}

// OrderOwnerMutation represents an operation that mutates the OrderOwner nodes in the graph.
type OrderOwnerMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	employee_id      *uuid.UUID
	share_percent    *float64
	addshare_percent *float64
	clearedFields    map[string]struct{}
	ownership        *uuid.UUID
	clearedownership bool
	done             bool
	oldValue         func(context.Context) (*OrderOwner, error)
	predicates       []predicate.OrderOwner
}

var _ ent.Mutation = (*OrderOwnerMutation)(nil)

// orderownerOption allows management of the mutation configuration using functional options.
type orderownerOption func(*OrderOwnerMutation)

// newOrderOwnerMutation creates new mutation for the OrderOwner entity.
func newOrderOwnerMutation(c config, op Op, opts ...orderownerOption) *OrderOwnerMutation {
	m := &OrderOwnerMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderOwner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderOwnerID sets the ID field of the mutation.
func withOrderOwnerID(id uuid.UUID) orderownerOption {
	return func(m *OrderOwnerMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderOwner
		)
		m.oldValue = func(ctx context.Context) (*OrderOwner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderOwner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderOwner sets the old OrderOwner of the mutation.
func withOrderOwner(node *OrderOwner) orderownerOption {
	return func(m *OrderOwnerMutation) {
		m.oldValue = func(context.Context) (*OrderOwner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderOwnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderOwnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderOwner entities.
func (m *OrderOwnerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderOwnerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderOwnerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderOwner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderOwnerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderOwnerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderOwner entity.
// If the OrderOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderOwnerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetOwnershipID sets the "ownership_id" field.
func (m *OrderOwnerMutation) SetOwnershipID(u uuid.UUID) {
	m.ownership = &u
}

// OwnershipID returns the value of the "ownership_id" field in the mutation.
func (m *OrderOwnerMutation) OwnershipID() (r uuid.UUID, exists bool) {
	v := m.ownership
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnershipID returns the old "ownership_id" field's value of the OrderOwner entity.
// If the OrderOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnerMutation) OldOwnershipID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnershipID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnershipID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnershipID: %w", err)
	}
	return oldValue.OwnershipID, nil
}

// ResetOwnershipID resets all changes to the "ownership_id" field.
func (m *OrderOwnerMutation) ResetOwnershipID() {
	m.ownership = nil
}

// SetEmployeeID sets the "employee_id" field.
func (m *OrderOwnerMutation) SetEmployeeID(u uuid.UUID) {
	m.employee_id = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *OrderOwnerMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the OrderOwner entity.
// If the OrderOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnerMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *OrderOwnerMutation) ResetEmployeeID() {
	m.employee_id = nil
}

// SetSharePercent sets the "share_percent" field.
func (m *OrderOwnerMutation) SetSharePercent(f float64) {
	m.share_percent = &f
	m.addshare_percent = nil
}

// SharePercent returns the value of the "share_percent" field in the mutation.
func (m *OrderOwnerMutation) SharePercent() (r float64, exists bool) {
	v := m.share_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldSharePercent returns the old "share_percent" field's value of the OrderOwner entity.
// If the OrderOwner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnerMutation) OldSharePercent(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSharePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSharePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSharePercent: %w", err)
	}
	return oldValue.SharePercent, nil
}

// AddSharePercent adds f to the "share_percent" field.
func (m *OrderOwnerMutation) AddSharePercent(f float64) {
	if m.addshare_percent != nil {
		*m.addshare_percent += f
	} else {
		m.addshare_percent = &f
	}
}

// AddedSharePercent returns the value that was added to the "share_percent" field in this mutation.
func (m *OrderOwnerMutation) AddedSharePercent() (r float64, exists bool) {
	v := m.addshare_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetSharePercent resets all changes to the "share_percent" field.
func (m *OrderOwnerMutation) ResetSharePercent() {
	m.share_percent = nil
	m.addshare_percent = nil
}

// ClearOwnership clears the "ownership" edge to the OrderOwnership entity.
func (m *OrderOwnerMutation) ClearOwnership() {
	m.clearedownership = true
	m.clearedFields[orderowner.FieldOwnershipID] = struct{}{}
}

// OwnershipCleared reports if the "ownership" edge to the OrderOwnership entity was cleared.
func (m *OrderOwnerMutation) OwnershipCleared() bool {
	return m.clearedownership
}

// OwnershipIDs returns the "ownership" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnershipID instead. It exists only for internal usage by the builders.
func (m *OrderOwnerMutation) OwnershipIDs() (ids []uuid.UUID) {
	if id := m.ownership; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwnership resets all changes to the "ownership" edge.
func (m *OrderOwnerMutation) ResetOwnership() {
	m.ownership = nil
	m.clearedownership = false
}

// Where appends a list predicates to the OrderOwnerMutation builder.
func (m *OrderOwnerMutation) Where(ps ...predicate.OrderOwner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderOwnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderOwnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderOwner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderOwnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderOwnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderOwner).
func (m *OrderOwnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderOwnerMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, orderowner.FieldCreatedAt)
	}
	if m.ownership != nil {
		fields = append(fields, orderowner.FieldOwnershipID)
	}
	if m.employee_id != nil {
		fields = append(fields, orderowner.FieldEmployeeID)
	}
	if m.share_percent != nil {
		fields = append(fields, orderowner.FieldSharePercent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderOwnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderowner.FieldCreatedAt:
		return m.CreatedAt()
	case orderowner.FieldOwnershipID:
		return m.OwnershipID()
	case orderowner.FieldEmployeeID:
		return m.EmployeeID()
	case orderowner.FieldSharePercent:
		return m.SharePercent()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderOwnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderowner.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case orderowner.FieldOwnershipID:
		return m.OldOwnershipID(ctx)
	case orderowner.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case orderowner.FieldSharePercent:
		return m.OldSharePercent(ctx)
	}
	return nil, fmt.Errorf("unknown OrderOwner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderOwnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderowner.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case orderowner.FieldOwnershipID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnershipID(v)
		return nil
	case orderowner.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case orderowner.FieldSharePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSharePercent(v)
		return nil
	}
	return fmt.Errorf("unknown OrderOwner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderOwnerMutation) AddedFields() []string {
	var fields []string
	if m.addshare_percent != nil {
		fields = append(fields, orderowner.FieldSharePercent)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderOwnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case orderowner.FieldSharePercent:
		return m.AddedSharePercent()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderOwnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case orderowner.FieldSharePercent:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSharePercent(v)
		return nil
	}
	return fmt.Errorf("unknown OrderOwner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderOwnerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderOwnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderOwnerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderOwner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderOwnerMutation) ResetField(name string) error {
	switch name {
	case orderowner.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case orderowner.FieldOwnershipID:
		m.ResetOwnershipID()
		return nil
	case orderowner.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case orderowner.FieldSharePercent:
		m.ResetSharePercent()
		return nil
	}
	return fmt.Errorf("unknown OrderOwner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderOwnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ownership != nil {
		edges = append(edges, orderowner.EdgeOwnership)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderOwnerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderowner.EdgeOwnership:
		if id := m.ownership; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderOwnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderOwnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderOwnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedownership {
		edges = append(edges, orderowner.EdgeOwnership)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderOwnerMutation) EdgeCleared(name string) bool {
	switch name {
	case orderowner.EdgeOwnership:
		return m.clearedownership
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderOwnerMutation) ClearEdge(name string) error {
	switch name {
	case orderowner.EdgeOwnership:
		m.ClearOwnership()
		return nil
	}
	return fmt.Errorf("unknown OrderOwner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderOwnerMutation) ResetEdge(name string) error {
	switch name {
	case orderowner.EdgeOwnership:
		m.ResetOwnership()
		return nil
	}
	return fmt.Errorf("unknown OrderOwner edge %s", name)
}

// OrderOwnershipMutation represents an operation that mutates the OrderOwnership nodes in the graph.
type OrderOwnershipMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	order_id      *uuid.UUID
	location_id   *uuid.UUID
	is_active     *bool
	clearedFields map[string]struct{}
	owners        map[uuid.UUID]struct{}
	removedowners map[uuid.UUID]struct{}
	clearedowners bool
	done          bool
	oldValue      func(context.Context) (*OrderOwnership, error)
	predicates    []predicate.OrderOwnership
}

var _ ent.Mutation = (*OrderOwnershipMutation)(nil)

// orderownershipOption allows management of the mutation configuration using functional options.
type orderownershipOption func(*OrderOwnershipMutation)

// newOrderOwnershipMutation creates new mutation for the OrderOwnership entity.
func newOrderOwnershipMutation(c config, op Op, opts ...orderownershipOption) *OrderOwnershipMutation {
	m := &OrderOwnershipMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderOwnership,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderOwnershipID sets the ID field of the mutation.
func withOrderOwnershipID(id uuid.UUID) orderownershipOption {
	return func(m *OrderOwnershipMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderOwnership
		)
		m.oldValue = func(ctx context.Context) (*OrderOwnership, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderOwnership.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderOwnership sets the old OrderOwnership of the mutation.
func withOrderOwnership(node *OrderOwnership) orderownershipOption {
	return func(m *OrderOwnershipMutation) {
		m.oldValue = func(context.Context) (*OrderOwnership, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderOwnershipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderOwnershipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderOwnership entities.
func (m *OrderOwnershipMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderOwnershipMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderOwnershipMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderOwnership.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderOwnershipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderOwnershipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderOwnership entity.
// If the OrderOwnership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnershipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderOwnershipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderOwnershipMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderOwnershipMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the OrderOwnership entity.
// If the OrderOwnership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnershipMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderOwnershipMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOrderID sets the "order_id" field.
func (m *OrderOwnershipMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderOwnershipMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderOwnership entity.
// If the OrderOwnership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnershipMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderOwnershipMutation) ResetOrderID() {
	m.order_id = nil
}

// SetLocationID sets the "location_id" field.
func (m *OrderOwnershipMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *OrderOwnershipMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the OrderOwnership entity.
// If the OrderOwnership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnershipMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *OrderOwnershipMutation) ResetLocationID() {
	m.location_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *OrderOwnershipMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *OrderOwnershipMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the OrderOwnership entity.
// If the OrderOwnership object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderOwnershipMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *OrderOwnershipMutation) ResetIsActive() {
	m.is_active = nil
}

// AddOwnerIDs adds the "owners" edge to the OrderOwner entity by ids.
func (m *OrderOwnershipMutation) AddOwnerIDs(ids ...uuid.UUID) {
	if m.owners == nil {
		m.owners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.owners[ids[i]] = struct{}{}
	}
}

// ClearOwners clears the "owners" edge to the OrderOwner entity.
func (m *OrderOwnershipMutation) ClearOwners() {
	m.clearedowners = true
}

// OwnersCleared reports if the "owners" edge to the OrderOwner entity was cleared.
func (m *OrderOwnershipMutation) OwnersCleared() bool {
	return m.clearedowners
}

// RemoveOwnerIDs removes the "owners" edge to the OrderOwner entity by IDs.
func (m *OrderOwnershipMutation) RemoveOwnerIDs(ids ...uuid.UUID) {
	if m.removedowners == nil {
		m.removedowners = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.owners, ids[i])
		m.removedowners[ids[i]] = struct{}{}
	}
}

// RemovedOwners returns the removed IDs of the "owners" edge to the OrderOwner entity.
func (m *OrderOwnershipMutation) RemovedOwnersIDs() (ids []uuid.UUID) {
	for id := range m.removedowners {
		ids = append(ids, id)
	}
	return
}

// OwnersIDs returns the "owners" edge IDs in the mutation.
func (m *OrderOwnershipMutation) OwnersIDs() (ids []uuid.UUID) {
	for id := range m.owners {
		ids = append(ids, id)
	}
	return
}

// ResetOwners resets all changes to the "owners" edge.
func (m *OrderOwnershipMutation) ResetOwners() {
	m.owners = nil
	m.clearedowners = false
	m.removedowners = nil
}

// Where appends a list predicates to the OrderOwnershipMutation builder.
func (m *OrderOwnershipMutation) Where(ps ...predicate.OrderOwnership) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderOwnershipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderOwnershipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderOwnership, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderOwnershipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderOwnershipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderOwnership).
func (m *OrderOwnershipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderOwnershipMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, orderownership.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, orderownership.FieldUpdatedAt)
	}
	if m.order_id != nil {
		fields = append(fields, orderownership.FieldOrderID)
	}
	if m.location_id != nil {
		fields = append(fields, orderownership.FieldLocationID)
	}
	if m.is_active != nil {
		fields = append(fields, orderownership.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderOwnershipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderownership.FieldCreatedAt:
		return m.CreatedAt()
	case orderownership.FieldUpdatedAt:
		return m.UpdatedAt()
	case orderownership.FieldOrderID:
		return m.OrderID()
	case orderownership.FieldLocationID:
		return m.LocationID()
	case orderownership.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderOwnershipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderownership.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case orderownership.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case orderownership.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderownership.FieldLocationID:
		return m.OldLocationID(ctx)
	case orderownership.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown OrderOwnership field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderOwnershipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderownership.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case orderownership.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case orderownership.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderownership.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case orderownership.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown OrderOwnership field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderOwnershipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderOwnershipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderOwnershipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrderOwnership numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderOwnershipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderOwnershipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderOwnershipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderOwnership nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderOwnershipMutation) ResetField(name string) error {
	switch name {
	case orderownership.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case orderownership.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case orderownership.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderownership.FieldLocationID:
		m.ResetLocationID()
		return nil
	case orderownership.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown OrderOwnership field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderOwnershipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owners != nil {
		edges = append(edges, orderownership.EdgeOwners)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderOwnershipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderownership.EdgeOwners:
		ids := make([]ent.Value, 0, len(m.owners))
		for id := range m.owners {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderOwnershipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedowners != nil {
		edges = append(edges, orderownership.EdgeOwners)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderOwnershipMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case orderownership.EdgeOwners:
		ids := make([]ent.Value, 0, len(m.removedowners))
		for id := range m.removedowners {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderOwnershipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowners {
		edges = append(edges, orderownership.EdgeOwners)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderOwnershipMutation) EdgeCleared(name string) bool {
	switch name {
	case orderownership.EdgeOwners:
		return m.clearedowners
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderOwnershipMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown OrderOwnership unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderOwnershipMutation) ResetEdge(name string) error {
	switch name {
	case orderownership.EdgeOwners:
		m.ResetOwners()
		return nil
	}
	return fmt.Errorf("unknown OrderOwnership edge %s", name)
}

// TipAdjustmentMutation represents an operation that mutates the TipAdjustment nodes in the graph.
type TipAdjustmentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	location_id     *uuid.UUID
	adjustment_type *tipadjustment.AdjustmentType
	reason          *string
	before          *map[string]int64
	after           *map[string]int64
	auto_triggered  *bool
	group_id        *uuid.UUID
	order_id        *uuid.UUID
	requested_by    *uuid.UUID
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TipAdjustment, error)
	predicates      []predicate.TipAdjustment
}

var _ ent.Mutation = (*TipAdjustmentMutation)(nil)

// tipadjustmentOption allows management of the mutation configuration using functional options.
type tipadjustmentOption func(*TipAdjustmentMutation)

// newTipAdjustmentMutation creates new mutation for the TipAdjustment entity.
func newTipAdjustmentMutation(c config, op Op, opts ...tipadjustmentOption) *TipAdjustmentMutation {
	m := &TipAdjustmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTipAdjustment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipAdjustmentID sets the ID field of the mutation.
func withTipAdjustmentID(id uuid.UUID) tipadjustmentOption {
	return func(m *TipAdjustmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TipAdjustment
		)
		m.oldValue = func(ctx context.Context) (*TipAdjustment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipAdjustment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipAdjustment sets the old TipAdjustment of the mutation.
func withTipAdjustment(node *TipAdjustment) tipadjustmentOption {
	return func(m *TipAdjustmentMutation) {
		m.oldValue = func(context.Context) (*TipAdjustment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipAdjustmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipAdjustmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipAdjustment entities.
func (m *TipAdjustmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipAdjustmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipAdjustmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipAdjustment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipAdjustmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipAdjustmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipAdjustmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLocationID sets the "location_id" field.
func (m *TipAdjustmentMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipAdjustmentMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipAdjustmentMutation) ResetLocationID() {
	m.location_id = nil
}

// SetAdjustmentType sets the "adjustment_type" field.
func (m *TipAdjustmentMutation) SetAdjustmentType(tt tipadjustment.AdjustmentType) {
	m.adjustment_type = &tt
}

// AdjustmentType returns the value of the "adjustment_type" field in the mutation.
func (m *TipAdjustmentMutation) AdjustmentType() (r tipadjustment.AdjustmentType, exists bool) {
	v := m.adjustment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustmentType returns the old "adjustment_type" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldAdjustmentType(ctx context.Context) (v tipadjustment.AdjustmentType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustmentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustmentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustmentType: %w", err)
	}
	return oldValue.AdjustmentType, nil
}

// ResetAdjustmentType resets all changes to the "adjustment_type" field.
func (m *TipAdjustmentMutation) ResetAdjustmentType() {
	m.adjustment_type = nil
}

// SetReason sets the "reason" field.
func (m *TipAdjustmentMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TipAdjustmentMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *TipAdjustmentMutation) ResetReason() {
	m.reason = nil
}

// SetBefore sets the "before" field.
func (m *TipAdjustmentMutation) SetBefore(value map[string]int64) {
	m.before = &value
}

// Before returns the value of the "before" field in the mutation.
func (m *TipAdjustmentMutation) Before() (r map[string]int64, exists bool) {
	v := m.before
	if v == nil {
		return
	}
	return *v, true
}

// OldBefore returns the old "before" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldBefore(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBefore: %w", err)
	}
	return oldValue.Before, nil
}

// ClearBefore clears the value of the "before" field.
func (m *TipAdjustmentMutation) ClearBefore() {
	m.before = nil
	m.clearedFields[tipadjustment.FieldBefore] = struct{}{}
}

// BeforeCleared returns if the "before" field was cleared in this mutation.
func (m *TipAdjustmentMutation) BeforeCleared() bool {
	_, ok := m.clearedFields[tipadjustment.FieldBefore]
	return ok
}

// ResetBefore resets all changes to the "before" field.
func (m *TipAdjustmentMutation) ResetBefore() {
	m.before = nil
	delete(m.clearedFields, tipadjustment.FieldBefore)
}

// SetAfter sets the "after" field.
func (m *TipAdjustmentMutation) SetAfter(value map[string]int64) {
	m.after = &value
}

// After returns the value of the "after" field in the mutation.
func (m *TipAdjustmentMutation) After() (r map[string]int64, exists bool) {
	v := m.after
	if v == nil {
		return
	}
	return *v, true
}

// OldAfter returns the old "after" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldAfter(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAfter: %w", err)
	}
	return oldValue.After, nil
}

// ClearAfter clears the value of the "after" field.
func (m *TipAdjustmentMutation) ClearAfter() {
	m.after = nil
	m.clearedFields[tipadjustment.FieldAfter] = struct{}{}
}

// AfterCleared returns if the "after" field was cleared in this mutation.
func (m *TipAdjustmentMutation) AfterCleared() bool {
	_, ok := m.clearedFields[tipadjustment.FieldAfter]
	return ok
}

// ResetAfter resets all changes to the "after" field.
func (m *TipAdjustmentMutation) ResetAfter() {
	m.after = nil
	delete(m.clearedFields, tipadjustment.FieldAfter)
}

// SetAutoTriggered sets the "auto_triggered" field.
func (m *TipAdjustmentMutation) SetAutoTriggered(b bool) {
	m.auto_triggered = &b
}

// AutoTriggered returns the value of the "auto_triggered" field in the mutation.
func (m *TipAdjustmentMutation) AutoTriggered() (r bool, exists bool) {
	v := m.auto_triggered
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoTriggered returns the old "auto_triggered" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldAutoTriggered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoTriggered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoTriggered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoTriggered: %w", err)
	}
	return oldValue.AutoTriggered, nil
}

// ResetAutoTriggered resets all changes to the "auto_triggered" field.
func (m *TipAdjustmentMutation) ResetAutoTriggered() {
	m.auto_triggered = nil
}

// SetGroupID sets the "group_id" field.
func (m *TipAdjustmentMutation) SetGroupID(u uuid.UUID) {
	m.group_id = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *TipAdjustmentMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldGroupID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *TipAdjustmentMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[tipadjustment.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *TipAdjustmentMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[tipadjustment.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *TipAdjustmentMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, tipadjustment.FieldGroupID)
}

// SetOrderID sets the "order_id" field.
func (m *TipAdjustmentMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *TipAdjustmentMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldOrderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *TipAdjustmentMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[tipadjustment.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *TipAdjustmentMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[tipadjustment.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *TipAdjustmentMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, tipadjustment.FieldOrderID)
}

// SetRequestedBy sets the "requested_by" field.
func (m *TipAdjustmentMutation) SetRequestedBy(u uuid.UUID) {
	m.requested_by = &u
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *TipAdjustmentMutation) RequestedBy() (r uuid.UUID, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the TipAdjustment entity.
// If the TipAdjustment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipAdjustmentMutation) OldRequestedBy(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (m *TipAdjustmentMutation) ClearRequestedBy() {
	m.requested_by = nil
	m.clearedFields[tipadjustment.FieldRequestedBy] = struct{}{}
}

// RequestedByCleared returns if the "requested_by" field was cleared in this mutation.
func (m *TipAdjustmentMutation) RequestedByCleared() bool {
	_, ok := m.clearedFields[tipadjustment.FieldRequestedBy]
	return ok
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *TipAdjustmentMutation) ResetRequestedBy() {
	m.requested_by = nil
	delete(m.clearedFields, tipadjustment.FieldRequestedBy)
}

// Where appends a list predicates to the TipAdjustmentMutation builder.
func (m *TipAdjustmentMutation) Where(ps ...predicate.TipAdjustment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipAdjustmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipAdjustmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipAdjustment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipAdjustmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipAdjustmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipAdjustment).
func (m *TipAdjustmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipAdjustmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, tipadjustment.FieldCreatedAt)
	}
	if m.location_id != nil {
		fields = append(fields, tipadjustment.FieldLocationID)
	}
	if m.adjustment_type != nil {
		fields = append(fields, tipadjustment.FieldAdjustmentType)
	}
	if m.reason != nil {
		fields = append(fields, tipadjustment.FieldReason)
	}
	if m.before != nil {
		fields = append(fields, tipadjustment.FieldBefore)
	}
	if m.after != nil {
		fields = append(fields, tipadjustment.FieldAfter)
	}
	if m.auto_triggered != nil {
		fields = append(fields, tipadjustment.FieldAutoTriggered)
	}
	if m.group_id != nil {
		fields = append(fields, tipadjustment.FieldGroupID)
	}
	if m.order_id != nil {
		fields = append(fields, tipadjustment.FieldOrderID)
	}
	if m.requested_by != nil {
		fields = append(fields, tipadjustment.FieldRequestedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipAdjustmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipadjustment.FieldCreatedAt:
		return m.CreatedAt()
	case tipadjustment.FieldLocationID:
		return m.LocationID()
	case tipadjustment.FieldAdjustmentType:
		return m.AdjustmentType()
	case tipadjustment.FieldReason:
		return m.Reason()
	case tipadjustment.FieldBefore:
		return m.Before()
	case tipadjustment.FieldAfter:
		return m.After()
	case tipadjustment.FieldAutoTriggered:
		return m.AutoTriggered()
	case tipadjustment.FieldGroupID:
		return m.GroupID()
	case tipadjustment.FieldOrderID:
		return m.OrderID()
	case tipadjustment.FieldRequestedBy:
		return m.RequestedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipAdjustmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipadjustment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipadjustment.FieldLocationID:
		return m.OldLocationID(ctx)
	case tipadjustment.FieldAdjustmentType:
		return m.OldAdjustmentType(ctx)
	case tipadjustment.FieldReason:
		return m.OldReason(ctx)
	case tipadjustment.FieldBefore:
		return m.OldBefore(ctx)
	case tipadjustment.FieldAfter:
		return m.OldAfter(ctx)
	case tipadjustment.FieldAutoTriggered:
		return m.OldAutoTriggered(ctx)
	case tipadjustment.FieldGroupID:
		return m.OldGroupID(ctx)
	case tipadjustment.FieldOrderID:
		return m.OldOrderID(ctx)
	case tipadjustment.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	}
	return nil, fmt.Errorf("unknown TipAdjustment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipAdjustmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipadjustment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipadjustment.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tipadjustment.FieldAdjustmentType:
		v, ok := value.(tipadjustment.AdjustmentType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustmentType(v)
		return nil
	case tipadjustment.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case tipadjustment.FieldBefore:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBefore(v)
		return nil
	case tipadjustment.FieldAfter:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAfter(v)
		return nil
	case tipadjustment.FieldAutoTriggered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoTriggered(v)
		return nil
	case tipadjustment.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case tipadjustment.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case tipadjustment.FieldRequestedBy:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	}
	return fmt.Errorf("unknown TipAdjustment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipAdjustmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipAdjustmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipAdjustmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TipAdjustment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipAdjustmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipadjustment.FieldBefore) {
		fields = append(fields, tipadjustment.FieldBefore)
	}
	if m.FieldCleared(tipadjustment.FieldAfter) {
		fields = append(fields, tipadjustment.FieldAfter)
	}
	if m.FieldCleared(tipadjustment.FieldGroupID) {
		fields = append(fields, tipadjustment.FieldGroupID)
	}
	if m.FieldCleared(tipadjustment.FieldOrderID) {
		fields = append(fields, tipadjustment.FieldOrderID)
	}
	if m.FieldCleared(tipadjustment.FieldRequestedBy) {
		fields = append(fields, tipadjustment.FieldRequestedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipAdjustmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipAdjustmentMutation) ClearField(name string) error {
	switch name {
	case tipadjustment.FieldBefore:
		m.ClearBefore()
		return nil
	case tipadjustment.FieldAfter:
		m.ClearAfter()
		return nil
	case tipadjustment.FieldGroupID:
		m.ClearGroupID()
		return nil
	case tipadjustment.FieldOrderID:
		m.ClearOrderID()
		return nil
	case tipadjustment.FieldRequestedBy:
		m.ClearRequestedBy()
		return nil
	}
	return fmt.Errorf("unknown TipAdjustment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipAdjustmentMutation) ResetField(name string) error {
	switch name {
	case tipadjustment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipadjustment.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tipadjustment.FieldAdjustmentType:
		m.ResetAdjustmentType()
		return nil
	case tipadjustment.FieldReason:
		m.ResetReason()
		return nil
	case tipadjustment.FieldBefore:
		m.ResetBefore()
		return nil
	case tipadjustment.FieldAfter:
		m.ResetAfter()
		return nil
	case tipadjustment.FieldAutoTriggered:
		m.ResetAutoTriggered()
		return nil
	case tipadjustment.FieldGroupID:
		m.ResetGroupID()
		return nil
	case tipadjustment.FieldOrderID:
		m.ResetOrderID()
		return nil
	case tipadjustment.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	}
	return fmt.Errorf("unknown TipAdjustment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipAdjustmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipAdjustmentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipAdjustmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipAdjustmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipAdjustmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipAdjustmentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipAdjustmentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipAdjustment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipAdjustmentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipAdjustment edge %s", name)
}

// TipDebtMutation represents an operation that mutates the TipDebt nodes in the graph.
type TipDebtMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	location_id              *uuid.UUID
	employee_id              *uuid.UUID
	payment_id               *uuid.UUID
	original_amount_cents    *int64
	addoriginal_amount_cents *int64
	remaining_cents          *int64
	addremaining_cents       *int64
	status                   *tipdebt.Status
	resolved_at              *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*TipDebt, error)
	predicates               []predicate.TipDebt
}

var _ ent.Mutation = (*TipDebtMutation)(nil)

// tipdebtOption allows management of the mutation configuration using functional options.
type tipdebtOption func(*TipDebtMutation)

// newTipDebtMutation creates new mutation for the TipDebt entity.
func newTipDebtMutation(c config, op Op, opts ...tipdebtOption) *TipDebtMutation {
	m := &TipDebtMutation{
		config:        c,
		op:            op,
		typ:           TypeTipDebt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipDebtID sets the ID field of the mutation.
func withTipDebtID(id uuid.UUID) tipdebtOption {
	return func(m *TipDebtMutation) {
		var (
			err   error
			once  sync.Once
			value *TipDebt
		)
		m.oldValue = func(ctx context.Context) (*TipDebt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipDebt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipDebt sets the old TipDebt of the mutation.
func withTipDebt(node *TipDebt) tipdebtOption {
	return func(m *TipDebtMutation) {
		m.oldValue = func(context.Context) (*TipDebt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipDebtMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipDebtMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipDebt entities.
func (m *TipDebtMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipDebtMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipDebtMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipDebt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipDebtMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipDebtMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipDebtMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipDebtMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipDebtMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipDebtMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLocationID sets the "location_id" field.
func (m *TipDebtMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipDebtMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipDebtMutation) ResetLocationID() {
	m.location_id = nil
}

// SetEmployeeID sets the "employee_id" field.
func (m *TipDebtMutation) SetEmployeeID(u uuid.UUID) {
	m.employee_id = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *TipDebtMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *TipDebtMutation) ResetEmployeeID() {
	m.employee_id = nil
}

// SetPaymentID sets the "payment_id" field.
func (m *TipDebtMutation) SetPaymentID(u uuid.UUID) {
	m.payment_id = &u
}

// PaymentID returns the value of the "payment_id" field in the mutation.
func (m *TipDebtMutation) PaymentID() (r uuid.UUID, exists bool) {
	v := m.payment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentID returns the old "payment_id" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldPaymentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentID: %w", err)
	}
	return oldValue.PaymentID, nil
}

// ResetPaymentID resets all changes to the "payment_id" field.
func (m *TipDebtMutation) ResetPaymentID() {
	m.payment_id = nil
}

// SetOriginalAmountCents sets the "original_amount_cents" field.
func (m *TipDebtMutation) SetOriginalAmountCents(i int64) {
	m.original_amount_cents = &i
	m.addoriginal_amount_cents = nil
}

// OriginalAmountCents returns the value of the "original_amount_cents" field in the mutation.
func (m *TipDebtMutation) OriginalAmountCents() (r int64, exists bool) {
	v := m.original_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalAmountCents returns the old "original_amount_cents" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldOriginalAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalAmountCents: %w", err)
	}
	return oldValue.OriginalAmountCents, nil
}

// AddOriginalAmountCents adds i to the "original_amount_cents" field.
func (m *TipDebtMutation) AddOriginalAmountCents(i int64) {
	if m.addoriginal_amount_cents != nil {
		*m.addoriginal_amount_cents += i
	} else {
		m.addoriginal_amount_cents = &i
	}
}

// AddedOriginalAmountCents returns the value that was added to the "original_amount_cents" field in this mutation.
func (m *TipDebtMutation) AddedOriginalAmountCents() (r int64, exists bool) {
	v := m.addoriginal_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginalAmountCents resets all changes to the "original_amount_cents" field.
func (m *TipDebtMutation) ResetOriginalAmountCents() {
	m.original_amount_cents = nil
	m.addoriginal_amount_cents = nil
}

// SetRemainingCents sets the "remaining_cents" field.
func (m *TipDebtMutation) SetRemainingCents(i int64) {
	m.remaining_cents = &i
	m.addremaining_cents = nil
}

// RemainingCents returns the value of the "remaining_cents" field in the mutation.
func (m *TipDebtMutation) RemainingCents() (r int64, exists bool) {
	v := m.remaining_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldRemainingCents returns the old "remaining_cents" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldRemainingCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemainingCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemainingCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemainingCents: %w", err)
	}
	return oldValue.RemainingCents, nil
}

// AddRemainingCents adds i to the "remaining_cents" field.
func (m *TipDebtMutation) AddRemainingCents(i int64) {
	if m.addremaining_cents != nil {
		*m.addremaining_cents += i
	} else {
		m.addremaining_cents = &i
	}
}

// AddedRemainingCents returns the value that was added to the "remaining_cents" field in this mutation.
func (m *TipDebtMutation) AddedRemainingCents() (r int64, exists bool) {
	v := m.addremaining_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetRemainingCents resets all changes to the "remaining_cents" field.
func (m *TipDebtMutation) ResetRemainingCents() {
	m.remaining_cents = nil
	m.addremaining_cents = nil
}

// SetStatus sets the "status" field.
func (m *TipDebtMutation) SetStatus(t tipdebt.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TipDebtMutation) Status() (r tipdebt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldStatus(ctx context.Context) (v tipdebt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TipDebtMutation) ResetStatus() {
	m.status = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *TipDebtMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *TipDebtMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the TipDebt entity.
// If the TipDebt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipDebtMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *TipDebtMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[tipdebt.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *TipDebtMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[tipdebt.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *TipDebtMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, tipdebt.FieldResolvedAt)
}

// Where appends a list predicates to the TipDebtMutation builder.
func (m *TipDebtMutation) Where(ps ...predicate.TipDebt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipDebtMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipDebtMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipDebt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipDebtMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipDebtMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipDebt).
func (m *TipDebtMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipDebtMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, tipdebt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tipdebt.FieldUpdatedAt)
	}
	if m.location_id != nil {
		fields = append(fields, tipdebt.FieldLocationID)
	}
	if m.employee_id != nil {
		fields = append(fields, tipdebt.FieldEmployeeID)
	}
	if m.payment_id != nil {
		fields = append(fields, tipdebt.FieldPaymentID)
	}
	if m.original_amount_cents != nil {
		fields = append(fields, tipdebt.FieldOriginalAmountCents)
	}
	if m.remaining_cents != nil {
		fields = append(fields, tipdebt.FieldRemainingCents)
	}
	if m.status != nil {
		fields = append(fields, tipdebt.FieldStatus)
	}
	if m.resolved_at != nil {
		fields = append(fields, tipdebt.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipDebtMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipdebt.FieldCreatedAt:
		return m.CreatedAt()
	case tipdebt.FieldUpdatedAt:
		return m.UpdatedAt()
	case tipdebt.FieldLocationID:
		return m.LocationID()
	case tipdebt.FieldEmployeeID:
		return m.EmployeeID()
	case tipdebt.FieldPaymentID:
		return m.PaymentID()
	case tipdebt.FieldOriginalAmountCents:
		return m.OriginalAmountCents()
	case tipdebt.FieldRemainingCents:
		return m.RemainingCents()
	case tipdebt.FieldStatus:
		return m.Status()
	case tipdebt.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipDebtMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipdebt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipdebt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tipdebt.FieldLocationID:
		return m.OldLocationID(ctx)
	case tipdebt.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case tipdebt.FieldPaymentID:
		return m.OldPaymentID(ctx)
	case tipdebt.FieldOriginalAmountCents:
		return m.OldOriginalAmountCents(ctx)
	case tipdebt.FieldRemainingCents:
		return m.OldRemainingCents(ctx)
	case tipdebt.FieldStatus:
		return m.OldStatus(ctx)
	case tipdebt.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TipDebt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipDebtMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipdebt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipdebt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tipdebt.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tipdebt.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case tipdebt.FieldPaymentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentID(v)
		return nil
	case tipdebt.FieldOriginalAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalAmountCents(v)
		return nil
	case tipdebt.FieldRemainingCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemainingCents(v)
		return nil
	case tipdebt.FieldStatus:
		v, ok := value.(tipdebt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tipdebt.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TipDebt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipDebtMutation) AddedFields() []string {
	var fields []string
	if m.addoriginal_amount_cents != nil {
		fields = append(fields, tipdebt.FieldOriginalAmountCents)
	}
	if m.addremaining_cents != nil {
		fields = append(fields, tipdebt.FieldRemainingCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipDebtMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tipdebt.FieldOriginalAmountCents:
		return m.AddedOriginalAmountCents()
	case tipdebt.FieldRemainingCents:
		return m.AddedRemainingCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipDebtMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tipdebt.FieldOriginalAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginalAmountCents(v)
		return nil
	case tipdebt.FieldRemainingCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemainingCents(v)
		return nil
	}
	return fmt.Errorf("unknown TipDebt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipDebtMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipdebt.FieldResolvedAt) {
		fields = append(fields, tipdebt.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipDebtMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipDebtMutation) ClearField(name string) error {
	switch name {
	case tipdebt.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown TipDebt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipDebtMutation) ResetField(name string) error {
	switch name {
	case tipdebt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipdebt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tipdebt.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tipdebt.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case tipdebt.FieldPaymentID:
		m.ResetPaymentID()
		return nil
	case tipdebt.FieldOriginalAmountCents:
		m.ResetOriginalAmountCents()
		return nil
	case tipdebt.FieldRemainingCents:
		m.ResetRemainingCents()
		return nil
	case tipdebt.FieldStatus:
		m.ResetStatus()
		return nil
	case tipdebt.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown TipDebt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipDebtMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipDebtMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipDebtMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipDebtMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipDebtMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipDebtMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipDebtMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipDebt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipDebtMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipDebt edge %s", name)
}

// TipGroupMutation represents an operation that mutates the TipGroup nodes in the graph.
type TipGroupMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	location_id     *uuid.UUID
	name            *string
	clearedFields   map[string]struct{}
	segments        map[uuid.UUID]struct{}
	removedsegments map[uuid.UUID]struct{}
	clearedsegments bool
	done            bool
	oldValue        func(context.Context) (*TipGroup, error)
	predicates      []predicate.TipGroup
}

var _ ent.Mutation = (*TipGroupMutation)(nil)

// tipgroupOption allows management of the mutation configuration using functional options.
type tipgroupOption func(*TipGroupMutation)

// newTipGroupMutation creates new mutation for the TipGroup entity.
func newTipGroupMutation(c config, op Op, opts ...tipgroupOption) *TipGroupMutation {
	m := &TipGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeTipGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipGroupID sets the ID field of the mutation.
func withTipGroupID(id uuid.UUID) tipgroupOption {
	return func(m *TipGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *TipGroup
		)
		m.oldValue = func(ctx context.Context) (*TipGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipGroup sets the old TipGroup of the mutation.
func withTipGroup(node *TipGroup) tipgroupOption {
	return func(m *TipGroupMutation) {
		m.oldValue = func(context.Context) (*TipGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipGroup entities.
func (m *TipGroupMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipGroupMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipGroupMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipGroup entity.
// If the TipGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipGroup entity.
// If the TipGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TipGroupMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TipGroupMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the TipGroup entity.
// If the TipGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TipGroupMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[tipgroup.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TipGroupMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[tipgroup.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TipGroupMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, tipgroup.FieldDeletedAt)
}

// SetLocationID sets the "location_id" field.
func (m *TipGroupMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipGroupMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipGroup entity.
// If the TipGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipGroupMutation) ResetLocationID() {
	m.location_id = nil
}

// SetName sets the "name" field.
func (m *TipGroupMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TipGroupMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the TipGroup entity.
// If the TipGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TipGroupMutation) ResetName() {
	m.name = nil
}

// AddSegmentIDs adds the "segments" edge to the TipGroupSegment entity by ids.
func (m *TipGroupMutation) AddSegmentIDs(ids ...uuid.UUID) {
	if m.segments == nil {
		m.segments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the TipGroupSegment entity.
func (m *TipGroupMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the TipGroupSegment entity was cleared.
func (m *TipGroupMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the TipGroupSegment entity by IDs.
func (m *TipGroupMutation) RemoveSegmentIDs(ids ...uuid.UUID) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the TipGroupSegment entity.
func (m *TipGroupMutation) RemovedSegmentsIDs() (ids []uuid.UUID) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *TipGroupMutation) SegmentsIDs() (ids []uuid.UUID) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *TipGroupMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the TipGroupMutation builder.
func (m *TipGroupMutation) Where(ps ...predicate.TipGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipGroup).
func (m *TipGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipGroupMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, tipgroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tipgroup.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, tipgroup.FieldDeletedAt)
	}
	if m.location_id != nil {
		fields = append(fields, tipgroup.FieldLocationID)
	}
	if m.name != nil {
		fields = append(fields, tipgroup.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipgroup.FieldCreatedAt:
		return m.CreatedAt()
	case tipgroup.FieldUpdatedAt:
		return m.UpdatedAt()
	case tipgroup.FieldDeletedAt:
		return m.DeletedAt()
	case tipgroup.FieldLocationID:
		return m.LocationID()
	case tipgroup.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipgroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipgroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tipgroup.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case tipgroup.FieldLocationID:
		return m.OldLocationID(ctx)
	case tipgroup.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown TipGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipgroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipgroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tipgroup.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case tipgroup.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tipgroup.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown TipGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipGroupMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipGroupMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TipGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipgroup.FieldDeletedAt) {
		fields = append(fields, tipgroup.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipGroupMutation) ClearField(name string) error {
	switch name {
	case tipgroup.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown TipGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipGroupMutation) ResetField(name string) error {
	switch name {
	case tipgroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipgroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tipgroup.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case tipgroup.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tipgroup.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown TipGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.segments != nil {
		edges = append(edges, tipgroup.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tipgroup.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsegments != nil {
		edges = append(edges, tipgroup.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tipgroup.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsegments {
		edges = append(edges, tipgroup.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case tipgroup.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TipGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipGroupMutation) ResetEdge(name string) error {
	switch name {
	case tipgroup.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown TipGroup edge %s", name)
}

// TipGroupSegmentMutation represents an operation that mutates the TipGroupSegment nodes in the graph.
type TipGroupSegmentMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	split         *map[string]float64
	starts_at     *time.Time
	ends_at       *time.Time
	clearedFields map[string]struct{}
	group         *uuid.UUID
	clearedgroup  bool
	done          bool
	oldValue      func(context.Context) (*TipGroupSegment, error)
	predicates    []predicate.TipGroupSegment
}

var _ ent.Mutation = (*TipGroupSegmentMutation)(nil)

// tipgroupsegmentOption allows management of the mutation configuration using functional options.
type tipgroupsegmentOption func(*TipGroupSegmentMutation)

// newTipGroupSegmentMutation creates new mutation for the TipGroupSegment entity.
func newTipGroupSegmentMutation(c config, op Op, opts ...tipgroupsegmentOption) *TipGroupSegmentMutation {
	m := &TipGroupSegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeTipGroupSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipGroupSegmentID sets the ID field of the mutation.
func withTipGroupSegmentID(id uuid.UUID) tipgroupsegmentOption {
	return func(m *TipGroupSegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *TipGroupSegment
		)
		m.oldValue = func(ctx context.Context) (*TipGroupSegment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipGroupSegment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipGroupSegment sets the old TipGroupSegment of the mutation.
func withTipGroupSegment(node *TipGroupSegment) tipgroupsegmentOption {
	return func(m *TipGroupSegmentMutation) {
		m.oldValue = func(context.Context) (*TipGroupSegment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipGroupSegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipGroupSegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipGroupSegment entities.
func (m *TipGroupSegmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipGroupSegmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipGroupSegmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipGroupSegment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipGroupSegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipGroupSegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipGroupSegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipGroupSegmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipGroupSegmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipGroupSegmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetGroupID sets the "group_id" field.
func (m *TipGroupSegmentMutation) SetGroupID(u uuid.UUID) {
	m.group = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *TipGroupSegmentMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldGroupID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *TipGroupSegmentMutation) ResetGroupID() {
	m.group = nil
}

// SetSplit sets the "split" field.
func (m *TipGroupSegmentMutation) SetSplit(value map[string]float64) {
	m.split = &value
}

// Split returns the value of the "split" field in the mutation.
func (m *TipGroupSegmentMutation) Split() (r map[string]float64, exists bool) {
	v := m.split
	if v == nil {
		return
	}
	return *v, true
}

// OldSplit returns the old "split" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldSplit(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSplit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSplit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSplit: %w", err)
	}
	return oldValue.Split, nil
}

// ClearSplit clears the value of the "split" field.
func (m *TipGroupSegmentMutation) ClearSplit() {
	m.split = nil
	m.clearedFields[tipgroupsegment.FieldSplit] = struct{}{}
}

// SplitCleared returns if the "split" field was cleared in this mutation.
func (m *TipGroupSegmentMutation) SplitCleared() bool {
	_, ok := m.clearedFields[tipgroupsegment.FieldSplit]
	return ok
}

// ResetSplit resets all changes to the "split" field.
func (m *TipGroupSegmentMutation) ResetSplit() {
	m.split = nil
	delete(m.clearedFields, tipgroupsegment.FieldSplit)
}

// SetStartsAt sets the "starts_at" field.
func (m *TipGroupSegmentMutation) SetStartsAt(t time.Time) {
	m.starts_at = &t
}

// StartsAt returns the value of the "starts_at" field in the mutation.
func (m *TipGroupSegmentMutation) StartsAt() (r time.Time, exists bool) {
	v := m.starts_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartsAt returns the old "starts_at" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldStartsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartsAt: %w", err)
	}
	return oldValue.StartsAt, nil
}

// ResetStartsAt resets all changes to the "starts_at" field.
func (m *TipGroupSegmentMutation) ResetStartsAt() {
	m.starts_at = nil
}

// SetEndsAt sets the "ends_at" field.
func (m *TipGroupSegmentMutation) SetEndsAt(t time.Time) {
	m.ends_at = &t
}

// EndsAt returns the value of the "ends_at" field in the mutation.
func (m *TipGroupSegmentMutation) EndsAt() (r time.Time, exists bool) {
	v := m.ends_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndsAt returns the old "ends_at" field's value of the TipGroupSegment entity.
// If the TipGroupSegment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipGroupSegmentMutation) OldEndsAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndsAt: %w", err)
	}
	return oldValue.EndsAt, nil
}

// ClearEndsAt clears the value of the "ends_at" field.
func (m *TipGroupSegmentMutation) ClearEndsAt() {
	m.ends_at = nil
	m.clearedFields[tipgroupsegment.FieldEndsAt] = struct{}{}
}

// EndsAtCleared returns if the "ends_at" field was cleared in this mutation.
func (m *TipGroupSegmentMutation) EndsAtCleared() bool {
	_, ok := m.clearedFields[tipgroupsegment.FieldEndsAt]
	return ok
}

// ResetEndsAt resets all changes to the "ends_at" field.
func (m *TipGroupSegmentMutation) ResetEndsAt() {
	m.ends_at = nil
	delete(m.clearedFields, tipgroupsegment.FieldEndsAt)
}

// ClearGroup clears the "group" edge to the TipGroup entity.
func (m *TipGroupSegmentMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[tipgroupsegment.FieldGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the TipGroup entity was cleared.
func (m *TipGroupSegmentMutation) GroupCleared() bool {
	return m.clearedgroup
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *TipGroupSegmentMutation) GroupIDs() (ids []uuid.UUID) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *TipGroupSegmentMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the TipGroupSegmentMutation builder.
func (m *TipGroupSegmentMutation) Where(ps ...predicate.TipGroupSegment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipGroupSegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipGroupSegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipGroupSegment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipGroupSegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipGroupSegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipGroupSegment).
func (m *TipGroupSegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipGroupSegmentMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.created_at != nil {
		fields = append(fields, tipgroupsegment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tipgroupsegment.FieldUpdatedAt)
	}
	if m.group != nil {
		fields = append(fields, tipgroupsegment.FieldGroupID)
	}
	if m.split != nil {
		fields = append(fields, tipgroupsegment.FieldSplit)
	}
	if m.starts_at != nil {
		fields = append(fields, tipgroupsegment.FieldStartsAt)
	}
	if m.ends_at != nil {
		fields = append(fields, tipgroupsegment.FieldEndsAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipGroupSegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipgroupsegment.FieldCreatedAt:
		return m.CreatedAt()
	case tipgroupsegment.FieldUpdatedAt:
		return m.UpdatedAt()
	case tipgroupsegment.FieldGroupID:
		return m.GroupID()
	case tipgroupsegment.FieldSplit:
		return m.Split()
	case tipgroupsegment.FieldStartsAt:
		return m.StartsAt()
	case tipgroupsegment.FieldEndsAt:
		return m.EndsAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipGroupSegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipgroupsegment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipgroupsegment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tipgroupsegment.FieldGroupID:
		return m.OldGroupID(ctx)
	case tipgroupsegment.FieldSplit:
		return m.OldSplit(ctx)
	case tipgroupsegment.FieldStartsAt:
		return m.OldStartsAt(ctx)
	case tipgroupsegment.FieldEndsAt:
		return m.OldEndsAt(ctx)
	}
	return nil, fmt.Errorf("unknown TipGroupSegment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipGroupSegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipgroupsegment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipgroupsegment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tipgroupsegment.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case tipgroupsegment.FieldSplit:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSplit(v)
		return nil
	case tipgroupsegment.FieldStartsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartsAt(v)
		return nil
	case tipgroupsegment.FieldEndsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndsAt(v)
		return nil
	}
	return fmt.Errorf("unknown TipGroupSegment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipGroupSegmentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipGroupSegmentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipGroupSegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TipGroupSegment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipGroupSegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipgroupsegment.FieldSplit) {
		fields = append(fields, tipgroupsegment.FieldSplit)
	}
	if m.FieldCleared(tipgroupsegment.FieldEndsAt) {
		fields = append(fields, tipgroupsegment.FieldEndsAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipGroupSegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipGroupSegmentMutation) ClearField(name string) error {
	switch name {
	case tipgroupsegment.FieldSplit:
		m.ClearSplit()
		return nil
	case tipgroupsegment.FieldEndsAt:
		m.ClearEndsAt()
		return nil
	}
	return fmt.Errorf("unknown TipGroupSegment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipGroupSegmentMutation) ResetField(name string) error {
	switch name {
	case tipgroupsegment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipgroupsegment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tipgroupsegment.FieldGroupID:
		m.ResetGroupID()
		return nil
	case tipgroupsegment.FieldSplit:
		m.ResetSplit()
		return nil
	case tipgroupsegment.FieldStartsAt:
		m.ResetStartsAt()
		return nil
	case tipgroupsegment.FieldEndsAt:
		m.ResetEndsAt()
		return nil
	}
	return fmt.Errorf("unknown TipGroupSegment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipGroupSegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, tipgroupsegment.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipGroupSegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tipgroupsegment.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipGroupSegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipGroupSegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipGroupSegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, tipgroupsegment.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipGroupSegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case tipgroupsegment.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipGroupSegmentMutation) ClearEdge(name string) error {
	switch name {
	case tipgroupsegment.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown TipGroupSegment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipGroupSegmentMutation) ResetEdge(name string) error {
	switch name {
	case tipgroupsegment.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown TipGroupSegment edge %s", name)
}

// TipLedgerEntryMutation represents an operation that mutates the TipLedgerEntry nodes in the graph.
type TipLedgerEntryMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	location_id       *uuid.UUID
	employee_id       *uuid.UUID
	entry_type        *tipledgerentry.EntryType
	amount_cents      *int64
	addamount_cents   *int64
	source_type       *tipledgerentry.SourceType
	source_id         *uuid.UUID
	order_id          *uuid.UUID
	adjustment_id     *uuid.UUID
	memo              *string
	balance_before    *int64
	addbalance_before *int64
	balance_after     *int64
	addbalance_after  *int64
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*TipLedgerEntry, error)
	predicates        []predicate.TipLedgerEntry
}

var _ ent.Mutation = (*TipLedgerEntryMutation)(nil)

// tipledgerentryOption allows management of the mutation configuration using functional options.
type tipledgerentryOption func(*TipLedgerEntryMutation)

// newTipLedgerEntryMutation creates new mutation for the TipLedgerEntry entity.
func newTipLedgerEntryMutation(c config, op Op, opts ...tipledgerentryOption) *TipLedgerEntryMutation {
	m := &TipLedgerEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeTipLedgerEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipLedgerEntryID sets the ID field of the mutation.
func withTipLedgerEntryID(id uuid.UUID) tipledgerentryOption {
	return func(m *TipLedgerEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *TipLedgerEntry
		)
		m.oldValue = func(ctx context.Context) (*TipLedgerEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipLedgerEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipLedgerEntry sets the old TipLedgerEntry of the mutation.
func withTipLedgerEntry(node *TipLedgerEntry) tipledgerentryOption {
	return func(m *TipLedgerEntryMutation) {
		m.oldValue = func(context.Context) (*TipLedgerEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipLedgerEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipLedgerEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipLedgerEntry entities.
func (m *TipLedgerEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipLedgerEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipLedgerEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipLedgerEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipLedgerEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipLedgerEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipLedgerEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLocationID sets the "location_id" field.
func (m *TipLedgerEntryMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipLedgerEntryMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipLedgerEntryMutation) ResetLocationID() {
	m.location_id = nil
}

// SetEmployeeID sets the "employee_id" field.
func (m *TipLedgerEntryMutation) SetEmployeeID(u uuid.UUID) {
	m.employee_id = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *TipLedgerEntryMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *TipLedgerEntryMutation) ResetEmployeeID() {
	m.employee_id = nil
}

// SetEntryType sets the "entry_type" field.
func (m *TipLedgerEntryMutation) SetEntryType(tt tipledgerentry.EntryType) {
	m.entry_type = &tt
}

// EntryType returns the value of the "entry_type" field in the mutation.
func (m *TipLedgerEntryMutation) EntryType() (r tipledgerentry.EntryType, exists bool) {
	v := m.entry_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryType returns the old "entry_type" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldEntryType(ctx context.Context) (v tipledgerentry.EntryType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryType: %w", err)
	}
	return oldValue.EntryType, nil
}

// ResetEntryType resets all changes to the "entry_type" field.
func (m *TipLedgerEntryMutation) ResetEntryType() {
	m.entry_type = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *TipLedgerEntryMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *TipLedgerEntryMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *TipLedgerEntryMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *TipLedgerEntryMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *TipLedgerEntryMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetSourceType sets the "source_type" field.
func (m *TipLedgerEntryMutation) SetSourceType(tt tipledgerentry.SourceType) {
	m.source_type = &tt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TipLedgerEntryMutation) SourceType() (r tipledgerentry.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldSourceType(ctx context.Context) (v tipledgerentry.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TipLedgerEntryMutation) ResetSourceType() {
	m.source_type = nil
}

// SetSourceID sets the "source_id" field.
func (m *TipLedgerEntryMutation) SetSourceID(u uuid.UUID) {
	m.source_id = &u
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *TipLedgerEntryMutation) SourceID() (r uuid.UUID, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldSourceID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *TipLedgerEntryMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[tipledgerentry.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *TipLedgerEntryMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[tipledgerentry.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *TipLedgerEntryMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, tipledgerentry.FieldSourceID)
}

// SetOrderID sets the "order_id" field.
func (m *TipLedgerEntryMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *TipLedgerEntryMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldOrderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *TipLedgerEntryMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[tipledgerentry.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *TipLedgerEntryMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[tipledgerentry.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *TipLedgerEntryMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, tipledgerentry.FieldOrderID)
}

// SetAdjustmentID sets the "adjustment_id" field.
func (m *TipLedgerEntryMutation) SetAdjustmentID(u uuid.UUID) {
	m.adjustment_id = &u
}

// AdjustmentID returns the value of the "adjustment_id" field in the mutation.
func (m *TipLedgerEntryMutation) AdjustmentID() (r uuid.UUID, exists bool) {
	v := m.adjustment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdjustmentID returns the old "adjustment_id" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldAdjustmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdjustmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdjustmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdjustmentID: %w", err)
	}
	return oldValue.AdjustmentID, nil
}

// ClearAdjustmentID clears the value of the "adjustment_id" field.
func (m *TipLedgerEntryMutation) ClearAdjustmentID() {
	m.adjustment_id = nil
	m.clearedFields[tipledgerentry.FieldAdjustmentID] = struct{}{}
}

// AdjustmentIDCleared returns if the "adjustment_id" field was cleared in this mutation.
func (m *TipLedgerEntryMutation) AdjustmentIDCleared() bool {
	_, ok := m.clearedFields[tipledgerentry.FieldAdjustmentID]
	return ok
}

// ResetAdjustmentID resets all changes to the "adjustment_id" field.
func (m *TipLedgerEntryMutation) ResetAdjustmentID() {
	m.adjustment_id = nil
	delete(m.clearedFields, tipledgerentry.FieldAdjustmentID)
}

// SetMemo sets the "memo" field.
func (m *TipLedgerEntryMutation) SetMemo(s string) {
	m.memo = &s
}

// Memo returns the value of the "memo" field in the mutation.
func (m *TipLedgerEntryMutation) Memo() (r string, exists bool) {
	v := m.memo
	if v == nil {
		return
	}
	return *v, true
}

// OldMemo returns the old "memo" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldMemo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemo: %w", err)
	}
	return oldValue.Memo, nil
}

// ClearMemo clears the value of the "memo" field.
func (m *TipLedgerEntryMutation) ClearMemo() {
	m.memo = nil
	m.clearedFields[tipledgerentry.FieldMemo] = struct{}{}
}

// MemoCleared returns if the "memo" field was cleared in this mutation.
func (m *TipLedgerEntryMutation) MemoCleared() bool {
	_, ok := m.clearedFields[tipledgerentry.FieldMemo]
	return ok
}

// ResetMemo resets all changes to the "memo" field.
func (m *TipLedgerEntryMutation) ResetMemo() {
	m.memo = nil
	delete(m.clearedFields, tipledgerentry.FieldMemo)
}

// SetBalanceBefore sets the "balance_before" field.
func (m *TipLedgerEntryMutation) SetBalanceBefore(i int64) {
	m.balance_before = &i
	m.addbalance_before = nil
}

// BalanceBefore returns the value of the "balance_before" field in the mutation.
func (m *TipLedgerEntryMutation) BalanceBefore() (r int64, exists bool) {
	v := m.balance_before
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceBefore returns the old "balance_before" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldBalanceBefore(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceBefore: %w", err)
	}
	return oldValue.BalanceBefore, nil
}

// AddBalanceBefore adds i to the "balance_before" field.
func (m *TipLedgerEntryMutation) AddBalanceBefore(i int64) {
	if m.addbalance_before != nil {
		*m.addbalance_before += i
	} else {
		m.addbalance_before = &i
	}
}

// AddedBalanceBefore returns the value that was added to the "balance_before" field in this mutation.
func (m *TipLedgerEntryMutation) AddedBalanceBefore() (r int64, exists bool) {
	v := m.addbalance_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceBefore resets all changes to the "balance_before" field.
func (m *TipLedgerEntryMutation) ResetBalanceBefore() {
	m.balance_before = nil
	m.addbalance_before = nil
}

// SetBalanceAfter sets the "balance_after" field.
func (m *TipLedgerEntryMutation) SetBalanceAfter(i int64) {
	m.balance_after = &i
	m.addbalance_after = nil
}

// BalanceAfter returns the value of the "balance_after" field in the mutation.
func (m *TipLedgerEntryMutation) BalanceAfter() (r int64, exists bool) {
	v := m.balance_after
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceAfter returns the old "balance_after" field's value of the TipLedgerEntry entity.
// If the TipLedgerEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipLedgerEntryMutation) OldBalanceAfter(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceAfter: %w", err)
	}
	return oldValue.BalanceAfter, nil
}

// AddBalanceAfter adds i to the "balance_after" field.
func (m *TipLedgerEntryMutation) AddBalanceAfter(i int64) {
	if m.addbalance_after != nil {
		*m.addbalance_after += i
	} else {
		m.addbalance_after = &i
	}
}

// AddedBalanceAfter returns the value that was added to the "balance_after" field in this mutation.
func (m *TipLedgerEntryMutation) AddedBalanceAfter() (r int64, exists bool) {
	v := m.addbalance_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceAfter resets all changes to the "balance_after" field.
func (m *TipLedgerEntryMutation) ResetBalanceAfter() {
	m.balance_after = nil
	m.addbalance_after = nil
}

// Where appends a list predicates to the TipLedgerEntryMutation builder.
func (m *TipLedgerEntryMutation) Where(ps ...predicate.TipLedgerEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipLedgerEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipLedgerEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipLedgerEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipLedgerEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipLedgerEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipLedgerEntry).
func (m *TipLedgerEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipLedgerEntryMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, tipledgerentry.FieldCreatedAt)
	}
	if m.location_id != nil {
		fields = append(fields, tipledgerentry.FieldLocationID)
	}
	if m.employee_id != nil {
		fields = append(fields, tipledgerentry.FieldEmployeeID)
	}
	if m.entry_type != nil {
		fields = append(fields, tipledgerentry.FieldEntryType)
	}
	if m.amount_cents != nil {
		fields = append(fields, tipledgerentry.FieldAmountCents)
	}
	if m.source_type != nil {
		fields = append(fields, tipledgerentry.FieldSourceType)
	}
	if m.source_id != nil {
		fields = append(fields, tipledgerentry.FieldSourceID)
	}
	if m.order_id != nil {
		fields = append(fields, tipledgerentry.FieldOrderID)
	}
	if m.adjustment_id != nil {
		fields = append(fields, tipledgerentry.FieldAdjustmentID)
	}
	if m.memo != nil {
		fields = append(fields, tipledgerentry.FieldMemo)
	}
	if m.balance_before != nil {
		fields = append(fields, tipledgerentry.FieldBalanceBefore)
	}
	if m.balance_after != nil {
		fields = append(fields, tipledgerentry.FieldBalanceAfter)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipLedgerEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipledgerentry.FieldCreatedAt:
		return m.CreatedAt()
	case tipledgerentry.FieldLocationID:
		return m.LocationID()
	case tipledgerentry.FieldEmployeeID:
		return m.EmployeeID()
	case tipledgerentry.FieldEntryType:
		return m.EntryType()
	case tipledgerentry.FieldAmountCents:
		return m.AmountCents()
	case tipledgerentry.FieldSourceType:
		return m.SourceType()
	case tipledgerentry.FieldSourceID:
		return m.SourceID()
	case tipledgerentry.FieldOrderID:
		return m.OrderID()
	case tipledgerentry.FieldAdjustmentID:
		return m.AdjustmentID()
	case tipledgerentry.FieldMemo:
		return m.Memo()
	case tipledgerentry.FieldBalanceBefore:
		return m.BalanceBefore()
	case tipledgerentry.FieldBalanceAfter:
		return m.BalanceAfter()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipLedgerEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipledgerentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipledgerentry.FieldLocationID:
		return m.OldLocationID(ctx)
	case tipledgerentry.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case tipledgerentry.FieldEntryType:
		return m.OldEntryType(ctx)
	case tipledgerentry.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case tipledgerentry.FieldSourceType:
		return m.OldSourceType(ctx)
	case tipledgerentry.FieldSourceID:
		return m.OldSourceID(ctx)
	case tipledgerentry.FieldOrderID:
		return m.OldOrderID(ctx)
	case tipledgerentry.FieldAdjustmentID:
		return m.OldAdjustmentID(ctx)
	case tipledgerentry.FieldMemo:
		return m.OldMemo(ctx)
	case tipledgerentry.FieldBalanceBefore:
		return m.OldBalanceBefore(ctx)
	case tipledgerentry.FieldBalanceAfter:
		return m.OldBalanceAfter(ctx)
	}
	return nil, fmt.Errorf("unknown TipLedgerEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipLedgerEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipledgerentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipledgerentry.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tipledgerentry.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case tipledgerentry.FieldEntryType:
		v, ok := value.(tipledgerentry.EntryType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryType(v)
		return nil
	case tipledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case tipledgerentry.FieldSourceType:
		v, ok := value.(tipledgerentry.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case tipledgerentry.FieldSourceID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case tipledgerentry.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case tipledgerentry.FieldAdjustmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdjustmentID(v)
		return nil
	case tipledgerentry.FieldMemo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemo(v)
		return nil
	case tipledgerentry.FieldBalanceBefore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceBefore(v)
		return nil
	case tipledgerentry.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown TipLedgerEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipLedgerEntryMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, tipledgerentry.FieldAmountCents)
	}
	if m.addbalance_before != nil {
		fields = append(fields, tipledgerentry.FieldBalanceBefore)
	}
	if m.addbalance_after != nil {
		fields = append(fields, tipledgerentry.FieldBalanceAfter)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipLedgerEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tipledgerentry.FieldAmountCents:
		return m.AddedAmountCents()
	case tipledgerentry.FieldBalanceBefore:
		return m.AddedBalanceBefore()
	case tipledgerentry.FieldBalanceAfter:
		return m.AddedBalanceAfter()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipLedgerEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tipledgerentry.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	case tipledgerentry.FieldBalanceBefore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceBefore(v)
		return nil
	case tipledgerentry.FieldBalanceAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceAfter(v)
		return nil
	}
	return fmt.Errorf("unknown TipLedgerEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipLedgerEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tipledgerentry.FieldSourceID) {
		fields = append(fields, tipledgerentry.FieldSourceID)
	}
	if m.FieldCleared(tipledgerentry.FieldOrderID) {
		fields = append(fields, tipledgerentry.FieldOrderID)
	}
	if m.FieldCleared(tipledgerentry.FieldAdjustmentID) {
		fields = append(fields, tipledgerentry.FieldAdjustmentID)
	}
	if m.FieldCleared(tipledgerentry.FieldMemo) {
		fields = append(fields, tipledgerentry.FieldMemo)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipLedgerEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipLedgerEntryMutation) ClearField(name string) error {
	switch name {
	case tipledgerentry.FieldSourceID:
		m.ClearSourceID()
		return nil
	case tipledgerentry.FieldOrderID:
		m.ClearOrderID()
		return nil
	case tipledgerentry.FieldAdjustmentID:
		m.ClearAdjustmentID()
		return nil
	case tipledgerentry.FieldMemo:
		m.ClearMemo()
		return nil
	}
	return fmt.Errorf("unknown TipLedgerEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipLedgerEntryMutation) ResetField(name string) error {
	switch name {
	case tipledgerentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipledgerentry.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tipledgerentry.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case tipledgerentry.FieldEntryType:
		m.ResetEntryType()
		return nil
	case tipledgerentry.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case tipledgerentry.FieldSourceType:
		m.ResetSourceType()
		return nil
	case tipledgerentry.FieldSourceID:
		m.ResetSourceID()
		return nil
	case tipledgerentry.FieldOrderID:
		m.ResetOrderID()
		return nil
	case tipledgerentry.FieldAdjustmentID:
		m.ResetAdjustmentID()
		return nil
	case tipledgerentry.FieldMemo:
		m.ResetMemo()
		return nil
	case tipledgerentry.FieldBalanceBefore:
		m.ResetBalanceBefore()
		return nil
	case tipledgerentry.FieldBalanceAfter:
		m.ResetBalanceAfter()
		return nil
	}
	return fmt.Errorf("unknown TipLedgerEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipLedgerEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipLedgerEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipLedgerEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipLedgerEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipLedgerEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipLedgerEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipLedgerEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipLedgerEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipLedgerEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipLedgerEntry edge %s", name)
}

// TipTransactionMutation represents an operation that mutates the TipTransaction nodes in the graph.
type TipTransactionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	location_id     *uuid.UUID
	amount_cents    *int64
	addamount_cents *int64
	source          *tiptransaction.Source
	order_id        *uuid.UUID
	payment_id      *uuid.UUID
	group_id        *uuid.UUID
	segment_id      *uuid.UUID
	collected_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TipTransaction, error)
	predicates      []predicate.TipTransaction
}

var _ ent.Mutation = (*TipTransactionMutation)(nil)

// tiptransactionOption allows management of the mutation configuration using functional options.
type tiptransactionOption func(*TipTransactionMutation)

// newTipTransactionMutation creates new mutation for the TipTransaction entity.
func newTipTransactionMutation(c config, op Op, opts ...tiptransactionOption) *TipTransactionMutation {
	m := &TipTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTipTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipTransactionID sets the ID field of the mutation.
func withTipTransactionID(id uuid.UUID) tiptransactionOption {
	return func(m *TipTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *TipTransaction
		)
		m.oldValue = func(ctx context.Context) (*TipTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipTransaction sets the old TipTransaction of the mutation.
func withTipTransaction(node *TipTransaction) tiptransactionOption {
	return func(m *TipTransactionMutation) {
		m.oldValue = func(context.Context) (*TipTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipTransaction entities.
func (m *TipTransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipTransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipTransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipTransactionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipTransactionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipTransactionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *TipTransactionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *TipTransactionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *TipTransactionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[tiptransaction.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *TipTransactionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[tiptransaction.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *TipTransactionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, tiptransaction.FieldDeletedAt)
}

// SetLocationID sets the "location_id" field.
func (m *TipTransactionMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipTransactionMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipTransactionMutation) ResetLocationID() {
	m.location_id = nil
}

// SetAmountCents sets the "amount_cents" field.
func (m *TipTransactionMutation) SetAmountCents(i int64) {
	m.amount_cents = &i
	m.addamount_cents = nil
}

// AmountCents returns the value of the "amount_cents" field in the mutation.
func (m *TipTransactionMutation) AmountCents() (r int64, exists bool) {
	v := m.amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountCents returns the old "amount_cents" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldAmountCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountCents: %w", err)
	}
	return oldValue.AmountCents, nil
}

// AddAmountCents adds i to the "amount_cents" field.
func (m *TipTransactionMutation) AddAmountCents(i int64) {
	if m.addamount_cents != nil {
		*m.addamount_cents += i
	} else {
		m.addamount_cents = &i
	}
}

// AddedAmountCents returns the value that was added to the "amount_cents" field in this mutation.
func (m *TipTransactionMutation) AddedAmountCents() (r int64, exists bool) {
	v := m.addamount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountCents resets all changes to the "amount_cents" field.
func (m *TipTransactionMutation) ResetAmountCents() {
	m.amount_cents = nil
	m.addamount_cents = nil
}

// SetSource sets the "source" field.
func (m *TipTransactionMutation) SetSource(t tiptransaction.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TipTransactionMutation) Source() (r tiptransaction.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldSource(ctx context.Context) (v tiptransaction.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TipTransactionMutation) ResetSource() {
	m.source = nil
}

// SetOrderID sets the "order_id" field.
func (m *TipTransactionMutation) SetOrderID(u uuid.UUID) {
	m.order_id = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *TipTransactionMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m.order_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldOrderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ClearOrderID clears the value of the "order_id" field.
func (m *TipTransactionMutation) ClearOrderID() {
	m.order_id = nil
	m.clearedFields[tiptransaction.FieldOrderID] = struct{}{}
}

// OrderIDCleared returns if the "order_id" field was cleared in this mutation.
func (m *TipTransactionMutation) OrderIDCleared() bool {
	_, ok := m.clearedFields[tiptransaction.FieldOrderID]
	return ok
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *TipTransactionMutation) ResetOrderID() {
	m.order_id = nil
	delete(m.clearedFields, tiptransaction.FieldOrderID)
}

// SetPaymentID sets the "payment_id" field.
func (m *TipTransactionMutation) SetPaymentID(u uuid.UUID) {
	m.payment_id = &u
}

// PaymentID returns the value of the "payment_id" field in the mutation.
func (m *TipTransactionMutation) PaymentID() (r uuid.UUID, exists bool) {
	v := m.payment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentID returns the old "payment_id" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldPaymentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentID: %w", err)
	}
	return oldValue.PaymentID, nil
}

// ClearPaymentID clears the value of the "payment_id" field.
func (m *TipTransactionMutation) ClearPaymentID() {
	m.payment_id = nil
	m.clearedFields[tiptransaction.FieldPaymentID] = struct{}{}
}

// PaymentIDCleared returns if the "payment_id" field was cleared in this mutation.
func (m *TipTransactionMutation) PaymentIDCleared() bool {
	_, ok := m.clearedFields[tiptransaction.FieldPaymentID]
	return ok
}

// ResetPaymentID resets all changes to the "payment_id" field.
func (m *TipTransactionMutation) ResetPaymentID() {
	m.payment_id = nil
	delete(m.clearedFields, tiptransaction.FieldPaymentID)
}

// SetGroupID sets the "group_id" field.
func (m *TipTransactionMutation) SetGroupID(u uuid.UUID) {
	m.group_id = &u
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *TipTransactionMutation) GroupID() (r uuid.UUID, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldGroupID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *TipTransactionMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[tiptransaction.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *TipTransactionMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[tiptransaction.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *TipTransactionMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, tiptransaction.FieldGroupID)
}

// SetSegmentID sets the "segment_id" field.
func (m *TipTransactionMutation) SetSegmentID(u uuid.UUID) {
	m.segment_id = &u
}

// SegmentID returns the value of the "segment_id" field in the mutation.
func (m *TipTransactionMutation) SegmentID() (r uuid.UUID, exists bool) {
	v := m.segment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentID returns the old "segment_id" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldSegmentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentID: %w", err)
	}
	return oldValue.SegmentID, nil
}

// ClearSegmentID clears the value of the "segment_id" field.
func (m *TipTransactionMutation) ClearSegmentID() {
	m.segment_id = nil
	m.clearedFields[tiptransaction.FieldSegmentID] = struct{}{}
}

// SegmentIDCleared returns if the "segment_id" field was cleared in this mutation.
func (m *TipTransactionMutation) SegmentIDCleared() bool {
	_, ok := m.clearedFields[tiptransaction.FieldSegmentID]
	return ok
}

// ResetSegmentID resets all changes to the "segment_id" field.
func (m *TipTransactionMutation) ResetSegmentID() {
	m.segment_id = nil
	delete(m.clearedFields, tiptransaction.FieldSegmentID)
}

// SetCollectedAt sets the "collected_at" field.
func (m *TipTransactionMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *TipTransactionMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the TipTransaction entity.
// If the TipTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipTransactionMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *TipTransactionMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// Where appends a list predicates to the TipTransactionMutation builder.
func (m *TipTransactionMutation) Where(ps ...predicate.TipTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipTransaction).
func (m *TipTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipTransactionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, tiptransaction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tiptransaction.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, tiptransaction.FieldDeletedAt)
	}
	if m.location_id != nil {
		fields = append(fields, tiptransaction.FieldLocationID)
	}
	if m.amount_cents != nil {
		fields = append(fields, tiptransaction.FieldAmountCents)
	}
	if m.source != nil {
		fields = append(fields, tiptransaction.FieldSource)
	}
	if m.order_id != nil {
		fields = append(fields, tiptransaction.FieldOrderID)
	}
	if m.payment_id != nil {
		fields = append(fields, tiptransaction.FieldPaymentID)
	}
	if m.group_id != nil {
		fields = append(fields, tiptransaction.FieldGroupID)
	}
	if m.segment_id != nil {
		fields = append(fields, tiptransaction.FieldSegmentID)
	}
	if m.collected_at != nil {
		fields = append(fields, tiptransaction.FieldCollectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tiptransaction.FieldCreatedAt:
		return m.CreatedAt()
	case tiptransaction.FieldUpdatedAt:
		return m.UpdatedAt()
	case tiptransaction.FieldDeletedAt:
		return m.DeletedAt()
	case tiptransaction.FieldLocationID:
		return m.LocationID()
	case tiptransaction.FieldAmountCents:
		return m.AmountCents()
	case tiptransaction.FieldSource:
		return m.Source()
	case tiptransaction.FieldOrderID:
		return m.OrderID()
	case tiptransaction.FieldPaymentID:
		return m.PaymentID()
	case tiptransaction.FieldGroupID:
		return m.GroupID()
	case tiptransaction.FieldSegmentID:
		return m.SegmentID()
	case tiptransaction.FieldCollectedAt:
		return m.CollectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tiptransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tiptransaction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tiptransaction.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case tiptransaction.FieldLocationID:
		return m.OldLocationID(ctx)
	case tiptransaction.FieldAmountCents:
		return m.OldAmountCents(ctx)
	case tiptransaction.FieldSource:
		return m.OldSource(ctx)
	case tiptransaction.FieldOrderID:
		return m.OldOrderID(ctx)
	case tiptransaction.FieldPaymentID:
		return m.OldPaymentID(ctx)
	case tiptransaction.FieldGroupID:
		return m.OldGroupID(ctx)
	case tiptransaction.FieldSegmentID:
		return m.OldSegmentID(ctx)
	case tiptransaction.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TipTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tiptransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tiptransaction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tiptransaction.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case tiptransaction.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tiptransaction.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountCents(v)
		return nil
	case tiptransaction.FieldSource:
		v, ok := value.(tiptransaction.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case tiptransaction.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case tiptransaction.FieldPaymentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentID(v)
		return nil
	case tiptransaction.FieldGroupID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case tiptransaction.FieldSegmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentID(v)
		return nil
	case tiptransaction.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TipTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addamount_cents != nil {
		fields = append(fields, tiptransaction.FieldAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tiptransaction.FieldAmountCents:
		return m.AddedAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tiptransaction.FieldAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown TipTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tiptransaction.FieldDeletedAt) {
		fields = append(fields, tiptransaction.FieldDeletedAt)
	}
	if m.FieldCleared(tiptransaction.FieldOrderID) {
		fields = append(fields, tiptransaction.FieldOrderID)
	}
	if m.FieldCleared(tiptransaction.FieldPaymentID) {
		fields = append(fields, tiptransaction.FieldPaymentID)
	}
	if m.FieldCleared(tiptransaction.FieldGroupID) {
		fields = append(fields, tiptransaction.FieldGroupID)
	}
	if m.FieldCleared(tiptransaction.FieldSegmentID) {
		fields = append(fields, tiptransaction.FieldSegmentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipTransactionMutation) ClearField(name string) error {
	switch name {
	case tiptransaction.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case tiptransaction.FieldOrderID:
		m.ClearOrderID()
		return nil
	case tiptransaction.FieldPaymentID:
		m.ClearPaymentID()
		return nil
	case tiptransaction.FieldGroupID:
		m.ClearGroupID()
		return nil
	case tiptransaction.FieldSegmentID:
		m.ClearSegmentID()
		return nil
	}
	return fmt.Errorf("unknown TipTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipTransactionMutation) ResetField(name string) error {
	switch name {
	case tiptransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tiptransaction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tiptransaction.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case tiptransaction.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tiptransaction.FieldAmountCents:
		m.ResetAmountCents()
		return nil
	case tiptransaction.FieldSource:
		m.ResetSource()
		return nil
	case tiptransaction.FieldOrderID:
		m.ResetOrderID()
		return nil
	case tiptransaction.FieldPaymentID:
		m.ResetPaymentID()
		return nil
	case tiptransaction.FieldGroupID:
		m.ResetGroupID()
		return nil
	case tiptransaction.FieldSegmentID:
		m.ResetSegmentID()
		return nil
	case tiptransaction.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	}
	return fmt.Errorf("unknown TipTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipTransactionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipTransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipTransactionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipTransactionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipTransactionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipTransaction edge %s", name)
}

// TipWalletMutation represents an operation that mutates the TipWallet nodes in the graph.
type TipWalletMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	updated_at       *time.Time
	employee_id      *uuid.UUID
	location_id      *uuid.UUID
	balance_cents    *int64
	addbalance_cents *int64
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TipWallet, error)
	predicates       []predicate.TipWallet
}

var _ ent.Mutation = (*TipWalletMutation)(nil)

// tipwalletOption allows management of the mutation configuration using functional options.
type tipwalletOption func(*TipWalletMutation)

// newTipWalletMutation creates new mutation for the TipWallet entity.
func newTipWalletMutation(c config, op Op, opts ...tipwalletOption) *TipWalletMutation {
	m := &TipWalletMutation{
		config:        c,
		op:            op,
		typ:           TypeTipWallet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTipWalletID sets the ID field of the mutation.
func withTipWalletID(id uuid.UUID) tipwalletOption {
	return func(m *TipWalletMutation) {
		var (
			err   error
			once  sync.Once
			value *TipWallet
		)
		m.oldValue = func(ctx context.Context) (*TipWallet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TipWallet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTipWallet sets the old TipWallet of the mutation.
func withTipWallet(node *TipWallet) tipwalletOption {
	return func(m *TipWalletMutation) {
		m.oldValue = func(context.Context) (*TipWallet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TipWalletMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TipWalletMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TipWallet entities.
func (m *TipWalletMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TipWalletMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TipWalletMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TipWallet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TipWalletMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TipWalletMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TipWallet entity.
// If the TipWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipWalletMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TipWalletMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TipWalletMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TipWalletMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TipWallet entity.
// If the TipWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipWalletMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TipWalletMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmployeeID sets the "employee_id" field.
func (m *TipWalletMutation) SetEmployeeID(u uuid.UUID) {
	m.employee_id = &u
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *TipWalletMutation) EmployeeID() (r uuid.UUID, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the TipWallet entity.
// If the TipWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipWalletMutation) OldEmployeeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *TipWalletMutation) ResetEmployeeID() {
	m.employee_id = nil
}

// SetLocationID sets the "location_id" field.
func (m *TipWalletMutation) SetLocationID(u uuid.UUID) {
	m.location_id = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *TipWalletMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the TipWallet entity.
// If the TipWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipWalletMutation) OldLocationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *TipWalletMutation) ResetLocationID() {
	m.location_id = nil
}

// SetBalanceCents sets the "balance_cents" field.
func (m *TipWalletMutation) SetBalanceCents(i int64) {
	m.balance_cents = &i
	m.addbalance_cents = nil
}

// BalanceCents returns the value of the "balance_cents" field in the mutation.
func (m *TipWalletMutation) BalanceCents() (r int64, exists bool) {
	v := m.balance_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldBalanceCents returns the old "balance_cents" field's value of the TipWallet entity.
// If the TipWallet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TipWalletMutation) OldBalanceCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalanceCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalanceCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalanceCents: %w", err)
	}
	return oldValue.BalanceCents, nil
}

// AddBalanceCents adds i to the "balance_cents" field.
func (m *TipWalletMutation) AddBalanceCents(i int64) {
	if m.addbalance_cents != nil {
		*m.addbalance_cents += i
	} else {
		m.addbalance_cents = &i
	}
}

// AddedBalanceCents returns the value that was added to the "balance_cents" field in this mutation.
func (m *TipWalletMutation) AddedBalanceCents() (r int64, exists bool) {
	v := m.addbalance_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalanceCents resets all changes to the "balance_cents" field.
func (m *TipWalletMutation) ResetBalanceCents() {
	m.balance_cents = nil
	m.addbalance_cents = nil
}

// Where appends a list predicates to the TipWalletMutation builder.
func (m *TipWalletMutation) Where(ps ...predicate.TipWallet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TipWalletMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TipWalletMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TipWallet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TipWalletMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TipWalletMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TipWallet).
func (m *TipWalletMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TipWalletMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.created_at != nil {
		fields = append(fields, tipwallet.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tipwallet.FieldUpdatedAt)
	}
	if m.employee_id != nil {
		fields = append(fields, tipwallet.FieldEmployeeID)
	}
	if m.location_id != nil {
		fields = append(fields, tipwallet.FieldLocationID)
	}
	if m.balance_cents != nil {
		fields = append(fields, tipwallet.FieldBalanceCents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TipWalletMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tipwallet.FieldCreatedAt:
		return m.CreatedAt()
	case tipwallet.FieldUpdatedAt:
		return m.UpdatedAt()
	case tipwallet.FieldEmployeeID:
		return m.EmployeeID()
	case tipwallet.FieldLocationID:
		return m.LocationID()
	case tipwallet.FieldBalanceCents:
		return m.BalanceCents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TipWalletMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tipwallet.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tipwallet.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case tipwallet.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case tipwallet.FieldLocationID:
		return m.OldLocationID(ctx)
	case tipwallet.FieldBalanceCents:
		return m.OldBalanceCents(ctx)
	}
	return nil, fmt.Errorf("unknown TipWallet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipWalletMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tipwallet.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tipwallet.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case tipwallet.FieldEmployeeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case tipwallet.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case tipwallet.FieldBalanceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalanceCents(v)
		return nil
	}
	return fmt.Errorf("unknown TipWallet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TipWalletMutation) AddedFields() []string {
	var fields []string
	if m.addbalance_cents != nil {
		fields = append(fields, tipwallet.FieldBalanceCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TipWalletMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tipwallet.FieldBalanceCents:
		return m.AddedBalanceCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TipWalletMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tipwallet.FieldBalanceCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalanceCents(v)
		return nil
	}
	return fmt.Errorf("unknown TipWallet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TipWalletMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TipWalletMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TipWalletMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TipWallet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TipWalletMutation) ResetField(name string) error {
	switch name {
	case tipwallet.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tipwallet.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case tipwallet.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case tipwallet.FieldLocationID:
		m.ResetLocationID()
		return nil
	case tipwallet.FieldBalanceCents:
		m.ResetBalanceCents()
		return nil
	}
	return fmt.Errorf("unknown TipWallet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TipWalletMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TipWalletMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TipWalletMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TipWalletMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TipWalletMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TipWalletMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TipWalletMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TipWallet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TipWalletMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TipWallet edge %s", name)
}
