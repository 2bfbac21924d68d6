package storage

import "log"

// NewFromPath opens the store at dbPath, degrading to memory-only (nil
// store, isPersistent=false) when the path is empty or the database
// cannot be opened. The dashboard keeps working either way.
func NewFromPath(dbPath string) (store *Store, isPersistent bool) {
	if dbPath == "" {
		return nil, false
	}
	s, err := Open(dbPath)
	if err != nil {
		log.Printf("WARNING: persistence disabled: %v", err)
		return nil, false
	}
	return s, true
}
