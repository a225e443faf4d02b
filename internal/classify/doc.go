// Package classify assigns an extracted color to one of a fixed set of named
// light-color categories.
//
// The classifier is an ordered decision list over (hue, HSV saturation, HSV
// value, CCT): rules are evaluated top to bottom and the first match wins.
// Rule order is significant — later rules assume earlier ones declined — and
// the list ends in a total hue-band table, so classification is a total
// function: every numeric input combination maps to exactly one label.
package classify
