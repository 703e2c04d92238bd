// Package multivende is the HTTP data source for the sync jobs: a
// bearer-authenticated client for the Multivende marketplace REST API.
//
// Collections are paginated with a /p/{page} path segment; the first page
// declares pagination.total_pages and the client concatenates the entries
// arrays of every page in order. Time windows (_sold_at_from/_to,
// _updated_at_from/_to) pass through as query parameters in the API's
// naive-local ISO-8601 format.
//
// Payloads are heterogeneous and partially absent, so they surface as Record
// trees with ok-flag accessors rather than rigid structs. Normalization into
// flat rows happens in the feature packages.
package multivende
