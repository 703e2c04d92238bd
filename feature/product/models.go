package product

// Product is one sellable product version, keyed by (id_padre, id_hijo).
// Stock is written as zero on every pass; a separate process owns it.
type Product struct {
	ID                   uint     `gorm:"primaryKey;column:id"`
	ParentID             string   `gorm:"column:id_padre"`
	ChildID              string   `gorm:"column:id_hijo"`
	Name                 *string  `gorm:"column:name"`
	SKUName              *string  `gorm:"column:skuName"`
	SKU                  *string  `gorm:"column:sku"`
	InternalSKU          *string  `gorm:"column:internalSku"`
	Brand                *string  `gorm:"column:brand"`
	Season               *string  `gorm:"column:season"`
	Model                *string  `gorm:"column:model"`
	Warranty             *string  `gorm:"column:warranty"`
	ProductCategory      *string  `gorm:"column:productCategory"`
	Description          *string  `gorm:"column:description"`
	HTMLDescription      *string  `gorm:"column:htmlDescription"`
	ShortDescription     *string  `gorm:"column:shortDescription"`
	HTMLShortDescription *string  `gorm:"column:htmlShortDescription"`
	Color                *string  `gorm:"column:color"`
	Size                 *string  `gorm:"column:size"`
	Width                *float64 `gorm:"column:width"`
	Length               *float64 `gorm:"column:length"`
	Height               *float64 `gorm:"column:height"`
	Weight               *float64 `gorm:"column:weight"`
	Stock                int      `gorm:"column:stock"`
	Tags                 *string  `gorm:"column:tags"`
	Picture              *string  `gorm:"column:picture"`
}

func (Product) TableName() string { return "products" }

// Attribute is one custom key/value pair of a product version. Numeric
// values land in number_value, everything else in text_value. The set is
// replaced wholesale whenever its product is updated.
type Attribute struct {
	ID          uint     `gorm:"primaryKey;column:id"`
	ProductID   uint     `gorm:"column:product_id"`
	Name        string   `gorm:"column:name"`
	TextValue   *string  `gorm:"column:text_value"`
	NumberValue *float64 `gorm:"column:number_value"`
}

func (Attribute) TableName() string { return "attributes" }
