// Package product mirrors the marketplace product catalog, one row per
// product version, plus a wholesale-replaced custom attribute table.
package product
