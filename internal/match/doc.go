// Package match provides approximate name matching over mapping
// containers: qualified-or-simple substring matching, edit-distance
// similarity of simple names, identifier normalization, and ranked search.
package match
