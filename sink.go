package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/deviationtrack/canvaseditor/core/snapshot"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Writes each emitted snapshot as <ulid>.json, so the names sort by emission time.
type SnapshotSink struct {
	Dir string
	Log *logrus.Entry
}

func NewSnapshotSink(dir string, log *logrus.Entry) (*SnapshotSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot sink: %w", err)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SnapshotSink{Dir: dir, Log: log}, nil
}

func (sk *SnapshotSink) Write(s *snapshot.Snapshot) (string, error) {
	id := ulid.Make().String()
	b, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", id, err)
	}
	filename := filepath.Join(sk.Dir, id+".json")
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return "", fmt.Errorf("snapshot %s: %w", id, err)
	}
	sk.Log.WithFields(logrus.Fields{
		"snapshot_id": id,
		"images":      len(s.Images),
		"texts":       len(s.TextElements),
		"bytes":       len(b),
	}).Info("snapshot written")
	return filename, nil
}

// Snapshot files in emission order.
func (sk *SnapshotSink) List() ([]string, error) {
	u, err := filepath.Glob(filepath.Join(sk.Dir, "*.json"))
	if err != nil {
		return nil, err
	}
	// ulid names sort lexically by time; glob returns sorted names
	return u, nil
}
