// Package job contains the shipment aggregate: a transport work order with
// immutable pickup/delivery waypoints and a closed lifecycle state machine.
// The aggregate is the single authority for status transitions and for the
// exactly-once accepted-bid reference.
package job
