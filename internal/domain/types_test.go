package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrizeType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    PrizeType
		expectError bool
	}{
		{
			name:     "completion",
			input:    "1",
			expected: PrizeTypeCompletion,
		},
		{
			name:     "time bonus with whitespace",
			input:    " 7 ",
			expected: PrizeTypeTimeBonus,
		},
		{
			name:        "unknown bucket",
			input:       "9",
			expectError: true,
		},
		{
			name:        "not a number",
			input:       "first",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrizeType(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "Realm", WorldTypeRealm.String())
	assert.Equal(t, "Challenge", WorldTypeChallenge.String())
	assert.Equal(t, "Unknown WorldType[5]", WorldType(5).String())
	assert.Equal(t, "Elite", DungeonTypeElite.String())
	assert.Equal(t, "Completion Reward", PrizeTypeCompletion.String())
	assert.Equal(t, "Sword", EquipCategoryName(2))
	assert.Equal(t, "Unknown EquipmentCategory[99]", EquipCategoryName(99))
	assert.Equal(t, "Knight", AbilityCategoryName(11))
}

func TestFactorName(t *testing.T) {
	tests := []struct {
		name        string
		attributeID int
		factor      int
		expected    string
	}{
		{name: "element weakness", attributeID: 100, factor: 1, expected: "Weak"},
		{name: "element absorb", attributeID: 102, factor: 21, expected: "Absorb"},
		{name: "status immune", attributeID: 211, factor: 1, expected: "Immune"},
		{name: "status vulnerable", attributeID: 211, factor: 0, expected: "Vulnerable"},
		{name: "unknown factor", attributeID: 100, factor: 3, expected: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FactorName(tt.attributeID, tt.factor))
		})
	}

	assert.Equal(t, "Lightning", AttributeName(102))
	assert.Equal(t, "999", AttributeName(999))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryLog))
	assert.True(t, IsValidCategory(CategoryCharacter))
	assert.False(t, IsValidCategory(Category("token")))
	assert.Equal(t, KindMaterial, IDPrecedence[0])
	assert.Equal(t, KindCharacter, IDPrecedence[len(IDPrecedence)-1])
}
