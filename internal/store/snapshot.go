package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// Snapshot handles the disk I/O for the embedded MemStore. Each collection
// is written to its own file in canonical extended JSON, so record ids and
// timestamps survive a restart with their bson types intact.
type Snapshot struct {
	DataDir string
	mu      sync.Mutex // Protects concurrent writes to the filesystem
}

// NewSnapshot initializes a snapshot writer, creating the data directory if
// needed.
func NewSnapshot(dir string) (*Snapshot, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Snapshot{DataDir: dir}, nil
}

// SaveCollection writes a single collection's records to disk atomically:
// the file is written to a temporary path first and then renamed into
// place, so a crash leaves either the old snapshot or the new one, never a
// corrupt one.
func (s *Snapshot) SaveCollection(collection string, recs []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := filepath.Join(s.DataDir, fmt.Sprintf("%s.json", collection))
	tempPath := filePath + ".tmp"

	bytes, err := bson.MarshalExtJSON(bson.M{"records": recs}, true, false)
	if err != nil {
		return err
	}
	if err := os.WriteFile(tempPath, bytes, 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, filePath)
}

// LoadAll returns all collection data found in the data directory.
func (s *Snapshot) LoadAll() (map[string][]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allData := make(map[string][]Record)

	files, err := os.ReadDir(s.DataDir)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		collection := file.Name()[:len(file.Name())-5] // Strip .json

		content, err := os.ReadFile(filepath.Join(s.DataDir, file.Name()))
		if err != nil {
			log.Printf("Warning: Could not read snapshot file %s: %v", file.Name(), err)
			continue // Skip corrupted/unreadable files
		}

		var wrapper struct {
			Records []Record `bson:"records"`
		}
		if err := bson.UnmarshalExtJSON(content, true, &wrapper); err != nil {
			log.Printf("Warning: Could not unmarshal snapshot data from %s: %v", file.Name(), err)
			continue
		}
		allData[collection] = wrapper.Records
	}
	return allData, nil
}
