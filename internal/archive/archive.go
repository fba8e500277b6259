// Package archive keeps a copy of every accepted payload on disk so captures can be replayed.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/rEtSaMfF/ffrk-bottle/internal/adapter"
)

// Archiver writes payloads to the archive directory
//
//go:generate mockgen -source=archive.go -destination=../mocks/archiver.go -package=mocks -mock_names=Archiver=MockArchiver
type Archiver interface {
	// Archive stores payload as canonical JSON and returns the written path
	Archive(action string, payload []byte) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

type archiver struct {
	dir   string
	fs    adapter.FileSystem
	jcs   adapter.JCS
	clock adapter.Clock
}

// NewArchiver creates an archiver writing into dir
func NewArchiver(dir string, fs adapter.FileSystem, jcs adapter.JCS, clock adapter.Clock) Archiver {
	return &archiver{
		dir:   dir,
		fs:    fs,
		jcs:   jcs,
		clock: clock,
	}
}

// Archive stores payload as canonical JSON (RFC 8785) in <action>-<ulid>.json
func (a *archiver) Archive(action string, payload []byte) (string, error) {
	canonical, err := a.jcs.Transform(payload)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	if err := a.fs.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.json", FileStem(action), ulid.MustNewDefault(a.clock.Now()).String())
	path := filepath.Join(a.dir, name)
	if err := a.fs.WriteFile(path, canonical, os.FileMode(0o644)); err != nil {
		return "", fmt.Errorf("failed to write archive file: %w", err)
	}
	return path, nil
}

// FileStem turns an action into a file name prefix, e.g. "/dff/world/dungeons" into "dff_world_dungeons"
func FileStem(action string) string {
	stem := unsafeChars.ReplaceAllString(strings.Trim(action, "/"), "_")
	stem = strings.Trim(stem, "_")
	if stem == "" {
		return "unknown"
	}
	return stem
}
