// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LocationSettingsColumns holds the columns for the "location_settings" table.
	LocationSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "location_id", Type: field.TypeUUID, Unique: true},
		{Name: "settings", Type: field.TypeBytes, Nullable: true},
	}
	// LocationSettingsTable holds the schema information for the "location_settings" table.
	LocationSettingsTable = &schema.Table{
		Name:       "location_settings",
		Columns:    LocationSettingsColumns,
		PrimaryKey: []*schema.Column{LocationSettingsColumns[0]},
	}
	// OrderOwnersColumns holds the columns for the "order_owners" table.
	OrderOwnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID},
		{Name: "share_percent", Type: field.TypeFloat64},
		{Name: "ownership_id", Type: field.TypeUUID},
	}
	// OrderOwnersTable holds the schema information for the "order_owners" table.
	OrderOwnersTable = &schema.Table{
		Name:       "order_owners",
		Columns:    OrderOwnersColumns,
		PrimaryKey: []*schema.Column{OrderOwnersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "order_owners_order_ownerships_owners",
				Columns:    []*schema.Column{OrderOwnersColumns[4]},
				RefColumns: []*schema.Column{OrderOwnershipsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orderowner_ownership_id_employee_id",
				Unique:  true,
				Columns: []*schema.Column{OrderOwnersColumns[4], OrderOwnersColumns[2]},
			},
		},
	}
	// OrderOwnershipsColumns holds the columns for the "order_ownerships" table.
	OrderOwnershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "order_id", Type: field.TypeUUID},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// OrderOwnershipsTable holds the schema information for the "order_ownerships" table.
	OrderOwnershipsTable = &schema.Table{
		Name:       "order_ownerships",
		Columns:    OrderOwnershipsColumns,
		PrimaryKey: []*schema.Column{OrderOwnershipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "orderownership_order_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{OrderOwnershipsColumns[3], OrderOwnershipsColumns[5]},
			},
		},
	}
	// TipAdjustmentsColumns holds the columns for the "tip_adjustments" table.
	TipAdjustmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "adjustment_type", Type: field.TypeEnum, Enums: []string{"group_membership", "ownership_split", "clock_fix", "manual_override", "tip_amount"}},
		{Name: "reason", Type: field.TypeString, Size: 500},
		{Name: "before", Type: field.TypeJSON, Nullable: true},
		{Name: "after", Type: field.TypeJSON, Nullable: true},
		{Name: "auto_triggered", Type: field.TypeBool, Default: false},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "requested_by", Type: field.TypeUUID, Nullable: true},
	}
	// TipAdjustmentsTable holds the schema information for the "tip_adjustments" table.
	TipAdjustmentsTable = &schema.Table{
		Name:       "tip_adjustments",
		Columns:    TipAdjustmentsColumns,
		PrimaryKey: []*schema.Column{TipAdjustmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tipadjustment_location_id_adjustment_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{TipAdjustmentsColumns[2], TipAdjustmentsColumns[3], TipAdjustmentsColumns[1]},
			},
			{
				Name:    "tipadjustment_group_id",
				Unique:  false,
				Columns: []*schema.Column{TipAdjustmentsColumns[8]},
			},
			{
				Name:    "tipadjustment_order_id",
				Unique:  false,
				Columns: []*schema.Column{TipAdjustmentsColumns[9]},
			},
		},
	}
	// TipDebtsColumns holds the columns for the "tip_debts" table.
	TipDebtsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "employee_id", Type: field.TypeUUID},
		{Name: "payment_id", Type: field.TypeUUID},
		{Name: "original_amount_cents", Type: field.TypeInt64},
		{Name: "remaining_cents", Type: field.TypeInt64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "resolved"}, Default: "open"},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// TipDebtsTable holds the schema information for the "tip_debts" table.
	TipDebtsTable = &schema.Table{
		Name:       "tip_debts",
		Columns:    TipDebtsColumns,
		PrimaryKey: []*schema.Column{TipDebtsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tipdebt_employee_id_status",
				Unique:  false,
				Columns: []*schema.Column{TipDebtsColumns[4], TipDebtsColumns[8]},
			},
			{
				Name:    "tipdebt_payment_id",
				Unique:  false,
				Columns: []*schema.Column{TipDebtsColumns[5]},
			},
			{
				Name:    "tipdebt_location_id_status",
				Unique:  false,
				Columns: []*schema.Column{TipDebtsColumns[3], TipDebtsColumns[8]},
			},
		},
	}
	// TipGroupsColumns holds the columns for the "tip_groups" table.
	TipGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 200},
	}
	// TipGroupsTable holds the schema information for the "tip_groups" table.
	TipGroupsTable = &schema.Table{
		Name:       "tip_groups",
		Columns:    TipGroupsColumns,
		PrimaryKey: []*schema.Column{TipGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tipgroup_location_id",
				Unique:  false,
				Columns: []*schema.Column{TipGroupsColumns[4]},
			},
		},
	}
	// TipGroupSegmentsColumns holds the columns for the "tip_group_segments" table.
	TipGroupSegmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "split", Type: field.TypeJSON, Nullable: true},
		{Name: "starts_at", Type: field.TypeTime},
		{Name: "ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "group_id", Type: field.TypeUUID},
	}
	// TipGroupSegmentsTable holds the schema information for the "tip_group_segments" table.
	TipGroupSegmentsTable = &schema.Table{
		Name:       "tip_group_segments",
		Columns:    TipGroupSegmentsColumns,
		PrimaryKey: []*schema.Column{TipGroupSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tip_group_segments_tip_groups_segments",
				Columns:    []*schema.Column{TipGroupSegmentsColumns[6]},
				RefColumns: []*schema.Column{TipGroupsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tipgroupsegment_group_id_starts_at",
				Unique:  false,
				Columns: []*schema.Column{TipGroupSegmentsColumns[6], TipGroupSegmentsColumns[4]},
			},
		},
	}
	// TipLedgerEntriesColumns holds the columns for the "tip_ledger_entries" table.
	TipLedgerEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "employee_id", Type: field.TypeUUID},
		{Name: "entry_type", Type: field.TypeEnum, Enums: []string{"credit", "debit"}},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "source_type", Type: field.TypeEnum, Enums: []string{"group_distribution", "direct_tip", "adjustment", "chargeback"}},
		{Name: "source_id", Type: field.TypeUUID, Nullable: true},
		{Name: "order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "adjustment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "memo", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "balance_before", Type: field.TypeInt64},
		{Name: "balance_after", Type: field.TypeInt64},
	}
	// TipLedgerEntriesTable holds the schema information for the "tip_ledger_entries" table.
	TipLedgerEntriesTable = &schema.Table{
		Name:       "tip_ledger_entries",
		Columns:    TipLedgerEntriesColumns,
		PrimaryKey: []*schema.Column{TipLedgerEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tipledgerentry_employee_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TipLedgerEntriesColumns[3], TipLedgerEntriesColumns[1]},
			},
			{
				Name:    "tipledgerentry_source_type_source_id",
				Unique:  false,
				Columns: []*schema.Column{TipLedgerEntriesColumns[6], TipLedgerEntriesColumns[7]},
			},
			{
				Name:    "tipledgerentry_order_id",
				Unique:  false,
				Columns: []*schema.Column{TipLedgerEntriesColumns[8]},
			},
			{
				Name:    "tipledgerentry_adjustment_id",
				Unique:  false,
				Columns: []*schema.Column{TipLedgerEntriesColumns[9]},
			},
		},
	}
	// TipTransactionsColumns holds the columns for the "tip_transactions" table.
	TipTransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"card", "cash", "auto_gratuity"}, Default: "card"},
		{Name: "order_id", Type: field.TypeUUID, Nullable: true},
		{Name: "payment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "group_id", Type: field.TypeUUID, Nullable: true},
		{Name: "segment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "collected_at", Type: field.TypeTime},
	}
	// TipTransactionsTable holds the schema information for the "tip_transactions" table.
	TipTransactionsTable = &schema.Table{
		Name:       "tip_transactions",
		Columns:    TipTransactionsColumns,
		PrimaryKey: []*schema.Column{TipTransactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tiptransaction_payment_id",
				Unique:  false,
				Columns: []*schema.Column{TipTransactionsColumns[8]},
			},
			{
				Name:    "tiptransaction_group_id_segment_id",
				Unique:  false,
				Columns: []*schema.Column{TipTransactionsColumns[9], TipTransactionsColumns[10]},
			},
			{
				Name:    "tiptransaction_order_id",
				Unique:  false,
				Columns: []*schema.Column{TipTransactionsColumns[7]},
			},
			{
				Name:    "tiptransaction_location_id_collected_at",
				Unique:  false,
				Columns: []*schema.Column{TipTransactionsColumns[4], TipTransactionsColumns[11]},
			},
		},
	}
	// TipWalletsColumns holds the columns for the "tip_wallets" table.
	TipWalletsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employee_id", Type: field.TypeUUID, Unique: true},
		{Name: "location_id", Type: field.TypeUUID},
		{Name: "balance_cents", Type: field.TypeInt64, Default: 0},
	}
	// TipWalletsTable holds the schema information for the "tip_wallets" table.
	TipWalletsTable = &schema.Table{
		Name:       "tip_wallets",
		Columns:    TipWalletsColumns,
		PrimaryKey: []*schema.Column{TipWalletsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tipwallet_location_id",
				Unique:  false,
				Columns: []*schema.Column{TipWalletsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LocationSettingsTable,
		OrderOwnersTable,
		OrderOwnershipsTable,
		TipAdjustmentsTable,
		TipDebtsTable,
		TipGroupsTable,
		TipGroupSegmentsTable,
		TipLedgerEntriesTable,
		TipTransactionsTable,
		TipWalletsTable,
	}
)

func init() {
	OrderOwnersTable.ForeignKeys[0].RefTable = OrderOwnershipsTable
	TipGroupSegmentsTable.ForeignKeys[0].RefTable = TipGroupsTable
}
