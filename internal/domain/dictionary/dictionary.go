package dictionary

// Dictionary is read-only reference data acting as a category enum for two
// logical namespaces: plan categories and payment types. The rows must exist
// before any plan or payment references them.
type Dictionary struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex:idx_dictionaries_name;not null" json:"name"`
}

func (Dictionary) TableName() string {
	return "dictionaries"
}

// Category and payment type names the engine matches against. The dataset is
// Ukrainian; these literals are significant and matched exactly, with no case
// folding.
const (
	CategoryIssuance   = "видача"
	CategoryCollection = "збір"

	PaymentTypeBody    = "тіло"
	PaymentTypePercent = "відсотки"
)
