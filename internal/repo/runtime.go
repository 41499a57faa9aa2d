// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

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
	"github.com/GetwithitMan/gwi-pos-sub001/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	locationsettingMixin := schema.LocationSetting{}.Mixin()
	locationsettingMixinFields0 := locationsettingMixin[0].Fields()
	_ = locationsettingMixinFields0
	locationsettingMixinFields1 := locationsettingMixin[1].Fields()
	_ = locationsettingMixinFields1
	locationsettingFields := schema.LocationSetting{}.Fields()
	_ = locationsettingFields
	// locationsettingDescCreatedAt is the schema descriptor for created_at field.
	locationsettingDescCreatedAt := locationsettingMixinFields1[0].Descriptor()
	// locationsetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	locationsetting.DefaultCreatedAt = locationsettingDescCreatedAt.Default.(func() time.Time)
	// locationsettingDescUpdatedAt is the schema descriptor for updated_at field.
	locationsettingDescUpdatedAt := locationsettingMixinFields1[1].Descriptor()
	// locationsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	locationsetting.DefaultUpdatedAt = locationsettingDescUpdatedAt.Default.(func() time.Time)
	// locationsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	locationsetting.UpdateDefaultUpdatedAt = locationsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// locationsettingDescID is the schema descriptor for id field.
	locationsettingDescID := locationsettingMixinFields0[0].Descriptor()
	// locationsetting.DefaultID holds the default value on creation for the id field.
	locationsetting.DefaultID = locationsettingDescID.Default.(func() uuid.UUID)
	orderownerMixin := schema.OrderOwner{}.Mixin()
	orderownerMixinFields0 := orderownerMixin[0].Fields()
	_ = orderownerMixinFields0
	orderownerMixinFields1 := orderownerMixin[1].Fields()
	_ = orderownerMixinFields1
	orderownerFields := schema.OrderOwner{}.Fields()
	_ = orderownerFields
	// orderownerDescCreatedAt is the schema descriptor for created_at field.
	orderownerDescCreatedAt := orderownerMixinFields1[0].Descriptor()
	// orderowner.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderowner.DefaultCreatedAt = orderownerDescCreatedAt.Default.(func() time.Time)
	// orderownerDescID is the schema descriptor for id field.
	orderownerDescID := orderownerMixinFields0[0].Descriptor()
	// orderowner.DefaultID holds the default value on creation for the id field.
	orderowner.DefaultID = orderownerDescID.Default.(func() uuid.UUID)
	orderownershipMixin := schema.OrderOwnership{}.Mixin()
	orderownershipMixinFields0 := orderownershipMixin[0].Fields()
	_ = orderownershipMixinFields0
	orderownershipMixinFields1 := orderownershipMixin[1].Fields()
	_ = orderownershipMixinFields1
	orderownershipFields := schema.OrderOwnership{}.Fields()
	_ = orderownershipFields
	// orderownershipDescCreatedAt is the schema descriptor for created_at field.
	orderownershipDescCreatedAt := orderownershipMixinFields1[0].Descriptor()
	// orderownership.DefaultCreatedAt holds the default value on creation for the created_at field.
	orderownership.DefaultCreatedAt = orderownershipDescCreatedAt.Default.(func() time.Time)
	// orderownershipDescUpdatedAt is the schema descriptor for updated_at field.
	orderownershipDescUpdatedAt := orderownershipMixinFields1[1].Descriptor()
	// orderownership.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	orderownership.DefaultUpdatedAt = orderownershipDescUpdatedAt.Default.(func() time.Time)
	// orderownership.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	orderownership.UpdateDefaultUpdatedAt = orderownershipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// orderownershipDescIsActive is the schema descriptor for is_active field.
	orderownershipDescIsActive := orderownershipFields[2].Descriptor()
	// orderownership.DefaultIsActive holds the default value on creation for the is_active field.
	orderownership.DefaultIsActive = orderownershipDescIsActive.Default.(bool)
	// orderownershipDescID is the schema descriptor for id field.
	orderownershipDescID := orderownershipMixinFields0[0].Descriptor()
	// orderownership.DefaultID holds the default value on creation for the id field.
	orderownership.DefaultID = orderownershipDescID.Default.(func() uuid.UUID)
	tipadjustmentMixin := schema.TipAdjustment{}.Mixin()
	tipadjustmentMixinFields0 := tipadjustmentMixin[0].Fields()
	_ = tipadjustmentMixinFields0
	tipadjustmentMixinFields1 := tipadjustmentMixin[1].Fields()
	_ = tipadjustmentMixinFields1
	tipadjustmentFields := schema.TipAdjustment{}.Fields()
	_ = tipadjustmentFields
	// tipadjustmentDescCreatedAt is the schema descriptor for created_at field.
	tipadjustmentDescCreatedAt := tipadjustmentMixinFields1[0].Descriptor()
	// tipadjustment.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipadjustment.DefaultCreatedAt = tipadjustmentDescCreatedAt.Default.(func() time.Time)
	// tipadjustmentDescReason is the schema descriptor for reason field.
	tipadjustmentDescReason := tipadjustmentFields[2].Descriptor()
	// tipadjustment.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	tipadjustment.ReasonValidator = tipadjustmentDescReason.Validators[0].(func(string) error)
	// tipadjustmentDescAutoTriggered is the schema descriptor for auto_triggered field.
	tipadjustmentDescAutoTriggered := tipadjustmentFields[5].Descriptor()
	// tipadjustment.DefaultAutoTriggered holds the default value on creation for the auto_triggered field.
	tipadjustment.DefaultAutoTriggered = tipadjustmentDescAutoTriggered.Default.(bool)
	// tipadjustmentDescID is the schema descriptor for id field.
	tipadjustmentDescID := tipadjustmentMixinFields0[0].Descriptor()
	// tipadjustment.DefaultID holds the default value on creation for the id field.
	tipadjustment.DefaultID = tipadjustmentDescID.Default.(func() uuid.UUID)
	tipdebtMixin := schema.TipDebt{}.Mixin()
	tipdebtMixinFields0 := tipdebtMixin[0].Fields()
	_ = tipdebtMixinFields0
	tipdebtMixinFields1 := tipdebtMixin[1].Fields()
	_ = tipdebtMixinFields1
	tipdebtFields := schema.TipDebt{}.Fields()
	_ = tipdebtFields
	// tipdebtDescCreatedAt is the schema descriptor for created_at field.
	tipdebtDescCreatedAt := tipdebtMixinFields1[0].Descriptor()
	// tipdebt.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipdebt.DefaultCreatedAt = tipdebtDescCreatedAt.Default.(func() time.Time)
	// tipdebtDescUpdatedAt is the schema descriptor for updated_at field.
	tipdebtDescUpdatedAt := tipdebtMixinFields1[1].Descriptor()
	// tipdebt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tipdebt.DefaultUpdatedAt = tipdebtDescUpdatedAt.Default.(func() time.Time)
	// tipdebt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tipdebt.UpdateDefaultUpdatedAt = tipdebtDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tipdebtDescID is the schema descriptor for id field.
	tipdebtDescID := tipdebtMixinFields0[0].Descriptor()
	// tipdebt.DefaultID holds the default value on creation for the id field.
	tipdebt.DefaultID = tipdebtDescID.Default.(func() uuid.UUID)
	tipgroupMixin := schema.TipGroup{}.Mixin()
	tipgroupMixinFields0 := tipgroupMixin[0].Fields()
	_ = tipgroupMixinFields0
	tipgroupMixinFields1 := tipgroupMixin[1].Fields()
	_ = tipgroupMixinFields1
	tipgroupFields := schema.TipGroup{}.Fields()
	_ = tipgroupFields
	// tipgroupDescCreatedAt is the schema descriptor for created_at field.
	tipgroupDescCreatedAt := tipgroupMixinFields1[0].Descriptor()
	// tipgroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipgroup.DefaultCreatedAt = tipgroupDescCreatedAt.Default.(func() time.Time)
	// tipgroupDescUpdatedAt is the schema descriptor for updated_at field.
	tipgroupDescUpdatedAt := tipgroupMixinFields1[1].Descriptor()
	// tipgroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tipgroup.DefaultUpdatedAt = tipgroupDescUpdatedAt.Default.(func() time.Time)
	// tipgroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tipgroup.UpdateDefaultUpdatedAt = tipgroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tipgroupDescName is the schema descriptor for name field.
	tipgroupDescName := tipgroupFields[1].Descriptor()
	// tipgroup.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tipgroup.NameValidator = tipgroupDescName.Validators[0].(func(string) error)
	// tipgroupDescID is the schema descriptor for id field.
	tipgroupDescID := tipgroupMixinFields0[0].Descriptor()
	// tipgroup.DefaultID holds the default value on creation for the id field.
	tipgroup.DefaultID = tipgroupDescID.Default.(func() uuid.UUID)
	tipgroupsegmentMixin := schema.TipGroupSegment{}.Mixin()
	tipgroupsegmentMixinFields0 := tipgroupsegmentMixin[0].Fields()
	_ = tipgroupsegmentMixinFields0
	tipgroupsegmentMixinFields1 := tipgroupsegmentMixin[1].Fields()
	_ = tipgroupsegmentMixinFields1
	tipgroupsegmentFields := schema.TipGroupSegment{}.Fields()
	_ = tipgroupsegmentFields
	// tipgroupsegmentDescCreatedAt is the schema descriptor for created_at field.
	tipgroupsegmentDescCreatedAt := tipgroupsegmentMixinFields1[0].Descriptor()
	// tipgroupsegment.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipgroupsegment.DefaultCreatedAt = tipgroupsegmentDescCreatedAt.Default.(func() time.Time)
	// tipgroupsegmentDescUpdatedAt is the schema descriptor for updated_at field.
	tipgroupsegmentDescUpdatedAt := tipgroupsegmentMixinFields1[1].Descriptor()
	// tipgroupsegment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tipgroupsegment.DefaultUpdatedAt = tipgroupsegmentDescUpdatedAt.Default.(func() time.Time)
	// tipgroupsegment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tipgroupsegment.UpdateDefaultUpdatedAt = tipgroupsegmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tipgroupsegmentDescID is the schema descriptor for id field.
	tipgroupsegmentDescID := tipgroupsegmentMixinFields0[0].Descriptor()
	// tipgroupsegment.DefaultID holds the default value on creation for the id field.
	tipgroupsegment.DefaultID = tipgroupsegmentDescID.Default.(func() uuid.UUID)
	tipledgerentryMixin := schema.TipLedgerEntry{}.Mixin()
	tipledgerentryMixinFields0 := tipledgerentryMixin[0].Fields()
	_ = tipledgerentryMixinFields0
	tipledgerentryMixinFields1 := tipledgerentryMixin[1].Fields()
	_ = tipledgerentryMixinFields1
	tipledgerentryFields := schema.TipLedgerEntry{}.Fields()
	_ = tipledgerentryFields
	// tipledgerentryDescCreatedAt is the schema descriptor for created_at field.
	tipledgerentryDescCreatedAt := tipledgerentryMixinFields1[0].Descriptor()
	// tipledgerentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipledgerentry.DefaultCreatedAt = tipledgerentryDescCreatedAt.Default.(func() time.Time)
	// tipledgerentryDescMemo is the schema descriptor for memo field.
	tipledgerentryDescMemo := tipledgerentryFields[8].Descriptor()
	// tipledgerentry.MemoValidator is a validator for the "memo" field. It is called by the builders before save.
	tipledgerentry.MemoValidator = tipledgerentryDescMemo.Validators[0].(func(string) error)
	// tipledgerentryDescID is the schema descriptor for id field.
	tipledgerentryDescID := tipledgerentryMixinFields0[0].Descriptor()
	// tipledgerentry.DefaultID holds the default value on creation for the id field.
	tipledgerentry.DefaultID = tipledgerentryDescID.Default.(func() uuid.UUID)
	tiptransactionMixin := schema.TipTransaction{}.Mixin()
	tiptransactionMixinFields0 := tiptransactionMixin[0].Fields()
	_ = tiptransactionMixinFields0
	tiptransactionMixinFields1 := tiptransactionMixin[1].Fields()
	_ = tiptransactionMixinFields1
	tiptransactionFields := schema.TipTransaction{}.Fields()
	_ = tiptransactionFields
	// tiptransactionDescCreatedAt is the schema descriptor for created_at field.
	tiptransactionDescCreatedAt := tiptransactionMixinFields1[0].Descriptor()
	// tiptransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	tiptransaction.DefaultCreatedAt = tiptransactionDescCreatedAt.Default.(func() time.Time)
	// tiptransactionDescUpdatedAt is the schema descriptor for updated_at field.
	tiptransactionDescUpdatedAt := tiptransactionMixinFields1[1].Descriptor()
	// tiptransaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tiptransaction.DefaultUpdatedAt = tiptransactionDescUpdatedAt.Default.(func() time.Time)
	// tiptransaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tiptransaction.UpdateDefaultUpdatedAt = tiptransactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tiptransactionDescID is the schema descriptor for id field.
	tiptransactionDescID := tiptransactionMixinFields0[0].Descriptor()
	// tiptransaction.DefaultID holds the default value on creation for the id field.
	tiptransaction.DefaultID = tiptransactionDescID.Default.(func() uuid.UUID)
	tipwalletMixin := schema.TipWallet{}.Mixin()
	tipwalletMixinFields0 := tipwalletMixin[0].Fields()
	_ = tipwalletMixinFields0
	tipwalletMixinFields1 := tipwalletMixin[1].Fields()
	_ = tipwalletMixinFields1
	tipwalletFields := schema.TipWallet{}.Fields()
	_ = tipwalletFields
	// tipwalletDescCreatedAt is the schema descriptor for created_at field.
	tipwalletDescCreatedAt := tipwalletMixinFields1[0].Descriptor()
	// tipwallet.DefaultCreatedAt holds the default value on creation for the created_at field.
	tipwallet.DefaultCreatedAt = tipwalletDescCreatedAt.Default.(func() time.Time)
	// tipwalletDescUpdatedAt is the schema descriptor for updated_at field.
	tipwalletDescUpdatedAt := tipwalletMixinFields1[1].Descriptor()
	// tipwallet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tipwallet.DefaultUpdatedAt = tipwalletDescUpdatedAt.Default.(func() time.Time)
	// tipwallet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tipwallet.UpdateDefaultUpdatedAt = tipwalletDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tipwalletDescBalanceCents is the schema descriptor for balance_cents field.
	tipwalletDescBalanceCents := tipwalletFields[2].Descriptor()
	// tipwallet.DefaultBalanceCents holds the default value on creation for the balance_cents field.
	tipwallet.DefaultBalanceCents = tipwalletDescBalanceCents.Default.(int64)
	// tipwalletDescID is the schema descriptor for id field.
	tipwalletDescID := tipwalletMixinFields0[0].Descriptor()
	// tipwallet.DefaultID holds the default value on creation for the id field.
	tipwallet.DefaultID = tipwalletDescID.Default.(func() uuid.UUID)
}
