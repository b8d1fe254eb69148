// models/item.go
package models

import "time"

const ItemTable = "lf_items"
const ClaimTable = "lf_claims"

// Claim statuses. Only "approved" is ever produced today; "pending" and
// "denied" stay in the vocabulary so an approval queue can be added without
// a schema change.
const (
	ClaimPending  = "pending"
	ClaimApproved = "approved"
	ClaimDenied   = "denied"
)

// Item is a found physical object. It has no status column: whether an item
// is claimed is derived from its claim rows on every read.
type Item struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	FoundAt     time.Time `gorm:"index;not null" json:"foundAt"`

	FinderID string `gorm:"type:uuid;index;not null" json:"finderId"`
	Finder   *User  `gorm:"foreignKey:FinderID" json:"-"`

	// Item owns its claims: deleting an item removes them.
	Claims []Claim `gorm:"foreignKey:ItemID" json:"claims,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Claim is one accepted claim attempt against one item. Rows are written
// only for accepted attempts; a rejected submission leaves no trace.
type Claim struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID    string    `gorm:"type:uuid;index;not null" json:"itemId"`
	ClaimerID string    `gorm:"type:uuid;index;not null" json:"claimerId"`
	Claimer   *User     `gorm:"foreignKey:ClaimerID" json:"-"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	ClaimedAt time.Time `gorm:"index;not null" json:"claimedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Item) TableName() string  { return ItemTable }
func (Claim) TableName() string { return ClaimTable }
