package ridership

import (
	"bytes"
	"sync"
)

// responseCache memoizes rendered payloads per session. Every analysis is a
// deterministic pure function of the immutable table and the request
// parameters, so a hit can be served byte-for-byte.
type responseCache struct {
	mu        sync.Mutex
	responses map[string][]byte
}

func newResponseCache() *responseCache {
	return &responseCache{responses: map[string][]byte{}}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// getOrBuild returns the cached payload for key, building and storing it on a
// miss. build errors are not cached.
func (rc *responseCache) getOrBuild(key string, build func() ([]byte, error)) ([]byte, error) {
	rc.mu.Lock()
	if buf, ok := rc.responses[key]; ok {
		rc.mu.Unlock()
		return buf, nil
	}
	rc.mu.Unlock()

	buf, err := build()
	if err != nil {
		return nil, err
	}
	rc.mu.Lock()
	rc.responses[key] = buf
	rc.mu.Unlock()
	return buf, nil
}
