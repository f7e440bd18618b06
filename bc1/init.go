package bc1

import "sync"

var initOnce sync.Once

// Init builds the process-wide lookup tables (partition enumerations and
// single-color match tables) used by Compress and CompressFast. It is
// idempotent and safe to call from multiple goroutines; callers that
// never call it explicitly get the same tables built lazily on first use
// by Compress.
func Init() {
	initOnce.Do(func() {
		initClusterTables()
		buildMatchTables()
	})
}
