package archive_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rEtSaMfF/ffrk-bottle/internal/archive"
	"github.com/rEtSaMfF/ffrk-bottle/internal/mocks"
)

func TestFileStem(t *testing.T) {
	tests := []struct {
		action   string
		expected string
	}{
		{action: "/dff/world/dungeons", expected: "dff_world_dungeons"},
		{action: "get_battle_init_data", expected: "get_battle_init_data"},
		{action: "/dff/", expected: "dff"},
		{action: "/dff/world/dungeons?world_id=1", expected: "dff_world_dungeons_world_id_1"},
		{action: "", expected: "unknown"},
		{action: "///", expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.expected, archive.FileStem(tt.action))
		})
	}
}

func TestArchiver_Archive(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	namePattern := regexp.MustCompile(`^dff_world_dungeons-[0-9A-HJKMNP-TV-Z]{26}\.json$`)

	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockFileSystem, *mocks.MockJCS, *mocks.MockClock)
		expectedErr string
	}{
		{
			name: "writes canonical JSON",
			setupMocks: func(fs *mocks.MockFileSystem, jcs *mocks.MockJCS, clock *mocks.MockClock) {
				jcs.EXPECT().Transform([]byte(`{"b": 1, "a": 2}`)).Return([]byte(`{"a":2,"b":1}`), nil)
				fs.EXPECT().MkdirAll("captures", os.FileMode(0o755)).Return(nil)
				clock.EXPECT().Now().Return(now)
				fs.EXPECT().
					WriteFile(gomock.Any(), []byte(`{"a":2,"b":1}`), os.FileMode(0o644)).
					DoAndReturn(func(name string, _ []byte, _ os.FileMode) error {
						assert.Equal(t, "captures", filepath.Dir(name))
						assert.Regexp(t, namePattern, filepath.Base(name))
						return nil
					})
			},
		},
		{
			name: "invalid JSON is rejected before touching the disk",
			setupMocks: func(fs *mocks.MockFileSystem, jcs *mocks.MockJCS, clock *mocks.MockClock) {
				jcs.EXPECT().Transform(gomock.Any()).Return(nil, errors.New("invalid JSON"))
			},
			expectedErr: "failed to canonicalize payload",
		},
		{
			name: "directory error",
			setupMocks: func(fs *mocks.MockFileSystem, jcs *mocks.MockJCS, clock *mocks.MockClock) {
				jcs.EXPECT().Transform(gomock.Any()).Return([]byte(`{}`), nil)
				fs.EXPECT().MkdirAll("captures", gomock.Any()).Return(errors.New("read-only file system"))
			},
			expectedErr: "failed to create archive directory",
		},
		{
			name: "write error",
			setupMocks: func(fs *mocks.MockFileSystem, jcs *mocks.MockJCS, clock *mocks.MockClock) {
				jcs.EXPECT().Transform(gomock.Any()).Return([]byte(`{}`), nil)
				fs.EXPECT().MkdirAll("captures", gomock.Any()).Return(nil)
				clock.EXPECT().Now().Return(now)
				fs.EXPECT().WriteFile(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			expectedErr: "failed to write archive file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJCS := mocks.NewMockJCS(ctrl)
			mockClock := mocks.NewMockClock(ctrl)
			tt.setupMocks(mockFS, mockJCS, mockClock)

			archiver := archive.NewArchiver("captures", mockFS, mockJCS, mockClock)
			path, err := archiver.Archive("/dff/world/dungeons", []byte(`{"b": 1, "a": 2}`))

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Empty(t, path)
				return
			}
			require.NoError(t, err)
			assert.Regexp(t, namePattern, filepath.Base(path))
		})
	}
}
