// Package conv converts between integer types with bounds checks.
package conv
