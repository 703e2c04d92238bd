package product

import (
	"fmt"
	"strconv"
	"strings"

	"multivende-sync/feature/multivende"
)

// Row is one normalized product version with its custom attributes.
type Row struct {
	Product Product
	Attrs   []Attribute
}

// Catalog maps custom attribute ids to their display names, built from the
// merchant's all-product-attributes payload. The display name is
// "<attribute>-<set>", matching how downstream reports address them.
type Catalog map[string]string

// BuildCatalog reads the attribute catalog payload into a Catalog.
func BuildCatalog(rec multivende.Record) Catalog {
	c := Catalog{}
	entries, ok := rec.Records("customAttributes")
	if !ok {
		return c
	}
	for _, entry := range entries {
		id, ok := entry.String("_id")
		if !ok {
			continue
		}
		name, _ := entry.String("name")
		set, _ := entry.String("CustomAttributeSet.name")
		c[id] = name + "-" + set
	}
	return c
}

// Name resolves a custom attribute id to a display name, falling back to
// the inline name when the catalog does not know the id.
func (c Catalog) Name(id, inline string) string {
	if name, ok := c[id]; ok {
		return name
	}
	return inline
}

// Normalize flattens one product detail payload into one row per product
// version. Parent fields repeat on every version row.
func Normalize(rec multivende.Record, catalog Catalog) ([]Row, error) {
	parentID, ok := rec.String("_id")
	if !ok {
		return nil, fmt.Errorf("product payload has no id")
	}
	versions, ok := rec.Records("ProductVersions")
	if !ok {
		return nil, fmt.Errorf("product %s has no versions node", parentID)
	}

	base := Product{
		ParentID:             parentID,
		Name:                 optString(rec, "name"),
		Brand:                optString(rec, "Brand", "name"),
		Warranty:             optString(rec, "Warranty", "name"),
		Season:               optString(rec, "season"),
		Model:                optString(rec, "model"),
		ProductCategory:      optString(rec, "ProductCategory", "name"),
		Description:          optString(rec, "description"),
		HTMLDescription:      optString(rec, "htmlDescription"),
		ShortDescription:     optString(rec, "shortDescription"),
		HTMLShortDescription: optString(rec, "htmlShortDescription"),
		Tags:                 tagList(rec),
		Picture:              optString(rec, "ProductPictures", 0, "url"),
	}
	parentAttrs := customAttributes(rec, catalog)

	rows := make([]Row, 0, len(versions))
	for _, v := range versions {
		childID, ok := v.String("_id")
		if !ok {
			continue
		}
		p := base
		p.ChildID = childID
		p.SKUName = optString(v, "name")
		p.SKU = optString(v, "sku")
		p.InternalSKU = optString(v, "internalSku")
		p.Color = optString(v, "Color", "name")
		p.Size = optString(v, "Size", "name")
		p.Width = optFloat(v, "width")
		p.Length = optFloat(v, "length")
		p.Height = optFloat(v, "height")
		p.Weight = optFloat(v, "weight")

		attrs := append([]Attribute{}, parentAttrs...)
		attrs = append(attrs, customAttributes(v, catalog)...)
		rows = append(rows, Row{Product: p, Attrs: attrs})
	}
	return rows, nil
}

// customAttributes reads the CustomAttributeValues list of a product or
// product version node. Digit-only values are stored numerically, the way
// downstream reporting expects them.
func customAttributes(rec multivende.Record, catalog Catalog) []Attribute {
	values, ok := rec.Records("CustomAttributeValues")
	if !ok {
		return nil
	}
	attrs := make([]Attribute, 0, len(values))
	for _, v := range values {
		raw, ok := v.String("value")
		if !ok || raw == "" {
			continue
		}
		id, _ := v.String("CustomAttributeId")
		inline, _ := v.String("CustomAttribute", "name")
		attr := Attribute{Name: catalog.Name(id, inline)}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			attr.NumberValue = &n
		} else {
			attr.TextValue = &raw
		}
		attrs = append(attrs, attr)
	}
	return attrs
}

func tagList(rec multivende.Record) *string {
	entries, ok := rec.Records("Tags")
	if !ok || len(entries) == 0 {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := entry.String("name"); ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	joined := strings.Join(names, ",")
	return &joined
}

func optString(rec multivende.Record, path ...any) *string {
	if v, ok := rec.String(path...); ok {
		return &v
	}
	return nil
}

func optFloat(rec multivende.Record, path ...any) *float64 {
	if v, ok := rec.Float(path...); ok {
		return &v
	}
	return nil
}
