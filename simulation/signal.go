// Copyright ©2024 The mocasinns Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulation

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// posixSignalRaised is a process-wide atomic flag: installed by the
// engine constructor (or first use) and cleared on call entry. It is
// not re-entrant across concurrent engines in the same process. It is
// intentionally a package-level variable rather than per-engine state —
// installing a second signal.Notify per engine instance would mean only
// the most recently constructed engine actually observed the signal.
var posixSignalRaised atomic.Bool

var installSignalHandlerOnce sync.Once

// installSignalHandler wires SIGINT/SIGTERM to posixSignalRaised. It
// runs at most once per process; subsequent calls are no-ops.
func installSignalHandler() {
	installSignalHandlerOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			for range ch {
				posixSignalRaised.Store(true)
			}
		}()
	})
}

// clearPOSIXSignal clears the process-wide flag. Called on entry to a
// sampling call.
func clearPOSIXSignal() {
	posixSignalRaised.Store(false)
}

// checkForPOSIXSignal reports whether SIGINT or SIGTERM has been
// observed since the flag was last cleared.
func checkForPOSIXSignal() bool {
	return posixSignalRaised.Load()
}

// Interrupt raises the same process-wide flag SIGINT/SIGTERM would, for
// callers that want to trigger a graceful stop outside of the OS signal
// path — e.g. from their own shutdown coordination, or a UI "stop"
// button wired to an engine running in a goroutine.
func Interrupt() {
	posixSignalRaised.Store(true)
}
