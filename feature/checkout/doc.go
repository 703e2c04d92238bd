// Package checkout mirrors marketplace sales into the local database.
//
// Raw checkout payloads are flattened into a sale summary plus line items,
// then reconciled by business key into three tables: checkouts (one row
// per sale and product), checkouts_full (one row per sale, with delivery
// columns) and checkout_items.
package checkout
