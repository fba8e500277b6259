package schema

// Material represents the materials table - a crafting resource
type Material struct {
	// ID is the external material id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Name is the display name
	Name string `gorm:"column:name;not null;size:64"`
	// Rarity is the star rating
	Rarity int `gorm:"column:rarity;not null"`
	// SaleGil is the vendor price
	SaleGil int `gorm:"column:sale_gil;not null"`
	// Description is the in-game description
	Description string `gorm:"column:description;size:512"`
}

// TableName specifies the table name for the Material model
func (Material) TableName() string {
	return "materials"
}

func (Material) EntityName() string { return "Material" }

func (m Material) String() string { return m.Name }

func (m Material) DisplayName() string { return m.Name }
