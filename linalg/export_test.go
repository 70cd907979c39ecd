package linalg

import "sync"

// resetDefault forgets the resolved default executor so the next Default call
// consults the environment again.
func resetDefault() {
	defaultOnce = sync.Once{}
	defaultExec.Store(nil)
}
