// Package models defines the data types the API hands around.
//
// The product schema is owned by Supabase. This service only knows which table to read
// and which column to filter on, so a Product is the raw JSON object the backend returned.
package models

import "encoding/json"

// ProductsTable is the name of the table (PostgREST calls it a "resource") holding products.
const ProductsTable = "products"

// GenderTargetColumn is the column the listing endpoint filters on.
const GenderTargetColumn = "gender_target"

// GenderTarget selects which subset of the catalog a client wants.
// Go doesn't have enums, so we use a named string type plus constants.
type GenderTarget string

const (
	GenderTargetWife    GenderTarget = "wife"    // Products aimed at wives
	GenderTargetHusband GenderTarget = "husband" // Products aimed at husbands
)

// ParseGenderTarget converts a raw query value into a GenderTarget.
// The match is exact and case-sensitive: "Wife", " wife" and "" are all rejected.
//
// The constants are returned rather than s itself. Fiber's c.Query strings point into a
// request buffer that is reused once the handler returns, and the result may outlive it.
func ParseGenderTarget(s string) (GenderTarget, bool) {
	switch GenderTarget(s) {
	case GenderTargetWife:
		return GenderTargetWife, true
	case GenderTargetHusband:
		return GenderTargetHusband, true
	default:
		return "", false
	}
}

// Product is a single product record, kept as undecoded JSON.
// Marshalling a []Product produces a JSON array of the original objects.
type Product = json.RawMessage
