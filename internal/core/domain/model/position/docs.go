// Package position holds the CarrierPosition aggregate, the latest known
// location of each carrier. Only the most recent report per carrier is kept.
package position
