package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/mocks"
	"github.com/rEtSaMfF/ffrk-bottle/internal/registry"
)

const testRegistryJSON = `{
	"version": 1,
	"boosts": [
		{"buddy_id": 10000200, "stat": "atk", "value": 5, "soul_break": "Sentinel's Grimoire"},
		{"buddy_id": 10000200, "stat": "atk", "value": 10},
		{"buddy_id": 10000200, "stat": "def", "value": 10},
		{"buddy_id": 10100100, "stat": "mnd", "value": 5}
	]
}`

func TestStatBoostRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.StatBoostRegistry)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("mastery.json").
					Return([]byte(testRegistryJSON), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.StatBoostRegistry) {
				value, ok := reg.Lookup(10000200, "atk")
				assert.True(t, ok)
				assert.Equal(t, 5, value, "first entry wins")

				value, ok = reg.Lookup(10000200, "defense")
				assert.True(t, ok)
				assert.Equal(t, 10, value)

				value, ok = reg.Lookup(10100100, "series_mnd")
				assert.True(t, ok)
				assert.Equal(t, 5, value)

				_, ok = reg.Lookup(10100100, "atk")
				assert.False(t, ok)
			},
		},
		{
			name: "empty registry",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("mastery.json").
					Return([]byte(`{"version": 1, "boosts": []}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(func(data []byte, v interface{}) error {
						return json.Unmarshal(data, v)
					})
			},
			validateFunc: func(t *testing.T, reg registry.StatBoostRegistry) {
				_, ok := reg.Lookup(10000200, "atk")
				assert.False(t, ok)
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("mastery.json").
					Return(nil, assert.AnError)
			},
			expectedErr: "failed to read registry file",
		},
		{
			name: "JSON parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				data := []byte(`invalid json`)
				mockFS.
					EXPECT().
					ReadFile("mastery.json").
					Return(data, nil)
				mockJSON.
					EXPECT().
					Unmarshal(data, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to parse registry JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(mockFS, mockJSON)
			}

			loader := registry.NewStatBoostRegistryLoader(mockFS, mockJSON)
			reg, err := loader.Load("mastery.json")

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, reg)
				if tt.validateFunc != nil {
					tt.validateFunc(t, reg)
				}
			}
		})
	}
}

func TestStatBoostRegistry_Ignore(t *testing.T) {
	reg := registry.NewStatBoostRegistry([]registry.StatBoost{
		{BuddyID: 10000200, Stat: "atk", Value: 5},
		{BuddyID: 10000200, Stat: "atk", Value: 6},
	})
	ignore := reg.Ignore(10000200)

	tests := []struct {
		name     string
		column   string
		old      any
		new      any
		expected bool
	}{
		{name: "increase equal to bonus", column: "atk", old: 100, new: 105, expected: true},
		{name: "increase equal to second entry", column: "atk", old: 100, new: 106, expected: false},
		{name: "decrease by bonus", column: "atk", old: 105, new: 100, expected: false},
		{name: "series stat shares the bonus", column: "series_atk", old: 150, new: 155, expected: true},
		{name: "stat without bonus", column: "mnd", old: 100, new: 105, expected: false},
		{name: "non integer values", column: "atk", old: "100", new: "105", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ignore(tt.column, tt.old, tt.new))
		})
	}

	t.Run("other character", func(t *testing.T) {
		assert.False(t, reg.Ignore(10100100)("atk", 100, 105))
	})
}
