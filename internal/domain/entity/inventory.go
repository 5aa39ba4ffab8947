package entity

// ItemCategory groups inventory items for filtering and reporting.
type ItemCategory string

const (
	// CategoryMedicine covers drugs and consumable medicines.
	CategoryMedicine ItemCategory = "medicine"
	// CategoryVaccine covers cold-chain vaccine stock.
	CategoryVaccine ItemCategory = "vaccine"
	// CategorySupply covers general medical supplies.
	CategorySupply ItemCategory = "supply"
	// CategoryEquipment covers durable devices and instruments.
	CategoryEquipment ItemCategory = "equipment"
)

// String returns the string representation of the ItemCategory.
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid checks if the ItemCategory is a valid value.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryMedicine, CategoryVaccine, CategorySupply, CategoryEquipment:
		return true
	default:
		return false
	}
}

// StockStatus is derived from current versus minimum stock; it is never stored.
type StockStatus string

const (
	// StockStatusOut means no stock remains.
	StockStatusOut StockStatus = "out_of_stock"
	// StockStatusLow means stock is at or below the reorder threshold.
	StockStatusLow StockStatus = "low_stock"
	// StockStatusIn means stock is above the reorder threshold.
	StockStatusIn StockStatus = "in_stock"
)

// InventoryItem is a stocked item tracked at the facility.
type InventoryItem struct {
	ID           string       `json:"id"`           // Unique identifier within the inventory collection.
	Name         string       `json:"name"`         // Item name.
	Category     ItemCategory `json:"category"`     // Category enumeration.
	CurrentStock int          `json:"currentStock"` // Units currently on hand.
	MinimumStock int          `json:"minimumStock"` // Reorder threshold.
	BatchNumber  string       `json:"batchNumber"`  // Supplier batch identifier.
	ExpiryDate   string       `json:"expiryDate"`   // Expiry date, ISO 8601 date string.
	Supplier     string       `json:"supplier"`     // Supplying agency.
	Manufacturer string       `json:"manufacturer"` // Manufacturer, where known.
	StorageTemp  string       `json:"storageTemp"`  // Storage requirement, e.g. "2-8C" for cold chain.
	CostPerUnit  float64      `json:"costPerUnit"`  // Unit cost used for budget reporting.
}

// IsOutOfStock reports whether no stock remains.
func (i InventoryItem) IsOutOfStock() bool {
	return i.CurrentStock <= 0
}

// IsLowStock reports whether stock is at or below the reorder threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.CurrentStock <= i.MinimumStock
}

// StockStatus derives the display status from the stock counters.
// Out-of-stock takes precedence over low-stock.
func (i InventoryItem) StockStatus() StockStatus {
	switch {
	case i.IsOutOfStock():
		return StockStatusOut
	case i.IsLowStock():
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
