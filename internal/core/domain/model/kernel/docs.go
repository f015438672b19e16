// Package kernel contains shared value objects used across the domain model:
// validated UUID identifiers and WGS-84 geographic points with great-circle
// distance calculation. All types are immutable and constructor-validated;
// their zero values fail validation.
package kernel
