package schema

import "time"

// TreasuryWallet represents the treasury_wallets table - named platform
// wallets, unique per (wallet_name, chain)
type TreasuryWallet struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WalletName is the operational name (treasury-main, ai-reserve, ...)
	WalletName string `gorm:"column:wallet_name;not null;type:text;uniqueIndex:idx_treasury_wallets_name_chain,priority:1"`
	// Chain is the network identifier the address lives on
	Chain string `gorm:"column:chain;not null;type:text;uniqueIndex:idx_treasury_wallets_name_chain,priority:2"`
	// Address is the wallet address
	Address string `gorm:"column:address;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TreasuryWallet model
func (TreasuryWallet) TableName() string {
	return "treasury_wallets"
}
