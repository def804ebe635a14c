// Package gen is generated output that inspection must skip.
package gen
