package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is the embedded, thread-safe document engine. It keeps every
// collection as an ordered slice of records, so Find returns records in
// insertion order just like the Mongo adapter does.
type MemStore struct {
	mu sync.RWMutex
	// Structure: [collection][]record
	data map[string][]Record
	snap *Snapshot
	wg   sync.WaitGroup
}

// NewMemStore initializes an embedded store.
// It accepts existing data (from Snapshot.LoadAll) and an optional snapshot
// writer for durability.
func NewMemStore(initialData map[string][]Record, snap *Snapshot) *MemStore {
	if initialData == nil {
		initialData = make(map[string][]Record)
	}
	return &MemStore{
		data: initialData,
		snap: snap,
	}
}

// Wait waits for all background snapshot writes to complete.
func (m *MemStore) Wait() {
	m.wg.Wait()
}

func (m *MemStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	// Round-trip through bson so field names and omitted optionals follow
	// the entity's own bson tags, identical to what Mongo would store.
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var rec Record
	if err := bson.Unmarshal(raw, &rec); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	rec["_id"] = id

	m.mu.Lock()
	m.data[collection] = append(m.data[collection], rec)
	snapshot := m.copyCollection(collection)
	m.mu.Unlock()

	m.persist(collection, snapshot)
	return id.Hex(), nil
}

func (m *MemStore) Find(_ context.Context, collection string, filter Filter) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, 0)
	for _, rec := range m.data[collection] {
		if !matches(rec, filter) {
			continue
		}
		// Return a copy to prevent external mutation of the stored record.
		cp := make(Record, len(rec))
		for k, v := range rec {
			cp[k] = v
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *MemStore) UpdateField(_ context.Context, collection, id, field string, value any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrBadID
	}

	m.mu.Lock()
	var updated bool
	for _, rec := range m.data[collection] {
		if rid, ok := rec["_id"].(primitive.ObjectID); ok && rid == oid {
			rec[field] = value
			updated = true
			break
		}
	}
	var snapshot []Record
	if updated {
		snapshot = m.copyCollection(collection)
	}
	m.mu.Unlock()

	if !updated {
		return ErrNotFound
	}
	m.persist(collection, snapshot)
	return nil
}

func (m *MemStore) Ping(context.Context) error { return nil }

func (m *MemStore) Close(context.Context) error {
	m.Wait()
	return nil
}

// persist writes a collection snapshot in the background, if a snapshot
// writer is configured.
func (m *MemStore) persist(collection string, recs []Record) {
	if m.snap == nil {
		return
	}
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.snap.SaveCollection(collection, recs)
	}()
}

// copyCollection creates a copy of a collection's record list, including
// each record map, so the snapshot writer never shares a map with the live
// collection. It MUST be called while holding m.mu.
func (m *MemStore) copyCollection(collection string) []Record {
	original := m.data[collection]
	cp := make([]Record, len(original))
	for i, rec := range original {
		recCopy := make(Record, len(rec))
		for k, v := range rec {
			recCopy[k] = v
		}
		cp[i] = recCopy
	}
	return cp
}

func matches(rec Record, filter Filter) bool {
	for field, want := range filter {
		got, ok := rec[field]
		if !ok {
			return false
		}
		switch w := want.(type) {
		case []string:
			s, ok := got.(string)
			if !ok {
				return false
			}
			var found bool
			for _, candidate := range w {
				if candidate == s {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		default:
			if !reflect.DeepEqual(got, want) {
				return false
			}
		}
	}
	return true
}
