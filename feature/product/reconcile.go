package product

import (
	"gorm.io/gorm"

	"multivende-sync/core/reconcile"
)

// Adapter reconciles the products table, keyed by parent and child product
// id. Attribute replacement happens separately, after the product rows
// exist.
type Adapter struct{}

func (Adapter) Match(tx *gorm.DB, row Row) *gorm.DB {
	return tx.Model(&Product{}).
		Where("id_padre = ? AND id_hijo = ?", row.Product.ParentID, row.Product.ChildID)
}

func (Adapter) Skip(row Row) bool {
	return row.Product.ParentID == "" || row.Product.ChildID == ""
}

func (Adapter) Record(row Row) any {
	p := row.Product
	p.Stock = 0
	return &p
}

func (a Adapter) Values(row Row) map[string]any {
	p := row.Product
	return map[string]any{
		"id_padre":             p.ParentID,
		"id_hijo":              p.ChildID,
		"name":                 p.Name,
		"skuName":              p.SKUName,
		"sku":                  p.SKU,
		"internalSku":          p.InternalSKU,
		"brand":                p.Brand,
		"season":               p.Season,
		"model":                p.Model,
		"warranty":             p.Warranty,
		"productCategory":      p.ProductCategory,
		"description":          p.Description,
		"htmlDescription":      p.HTMLDescription,
		"shortDescription":     p.ShortDescription,
		"htmlShortDescription": p.HTMLShortDescription,
		"color":                p.Color,
		"size":                 p.Size,
		"width":                p.Width,
		"length":               p.Length,
		"height":               p.Height,
		"weight":               p.Weight,
		"stock":                0,
		"tags":                 p.Tags,
		"picture":              p.Picture,
	}
}

var _ reconcile.Adapter[Row] = Adapter{}
