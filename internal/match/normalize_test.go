package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Basic cases
		{"EntityID", "entityid"},
		{"entity_id", "entityid"},
		{"entity-id", "entityid"},
		{"entityId", "entityid"},
		{"ENTITYID", "entityid"},

		// CamelCase variations
		{"blockState", "blockstate"},
		{"BlockState", "blockstate"},
		{"NBTTagCompound", "nbttagcompound"},
		{"getHTTPResponse", "gethttpresponse"},

		// Intermediary names
		{"func_1234_a", "func1234a"},
		{"field_70170_p", "field70170p"},
		{"FIELD_70170_P", "field70170p"},

		// Inner classes
		{"Outer$Inner", "outerinner"},

		// Edge cases
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"ID", "id"},
		{"id", "id"},

		// Mixed separators
		{"block_pos-X", "blockposx"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdentWithAccessorStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Accessor prefixes
		{"getWorld", "world"},
		{"setHealth", "health"},
		{"isAlive", "alive"},
		{"hasNoGravity", "nogravity"},
		{"setHP", "hp"},

		// Accessor token alone is kept
		{"get", "get"},
		{"is", "is"},

		// Not an accessor token
		{"getter", "getter"},
		{"isolate", "isolate"},
		{"tick", "tick"},
		{"func_1234_a", "func1234a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdentWithAccessorStrip(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdentWithAccessorStrip(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"EntityID", []string{"Entity", "ID"}},
		{"blockState", []string{"block", "State"}},
		{"NBTCompound", []string{"NBT", "Compound"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"func_1234_a", []string{"func", "1234", "a"}},
		{"Outer$Inner", []string{"Outer", "Inner"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"lowercase", []string{"lowercase"}},
		{"", nil},
		{"a", []string{"a"}},
		{"AB", []string{"AB"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"URLParser", []string{"URL", "Parser"}},
		{"parseURL", []string{"parse", "URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := splitWords(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("splitWords(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"EntityID", []string{"entity", "id"}},
		{"blockState", []string{"block", "state"}},
		{"NBTCompound", []string{"nbt", "compound"}},
		{"field_70170_p", []string{"field", "70170", "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
