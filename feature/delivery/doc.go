// Package delivery mirrors shippable delivery orders into the deliverys
// table, keyed by sale and order number. Sales come from the checkouts
// mirror; only orders with a tracking number and a handling date qualify.
package delivery
