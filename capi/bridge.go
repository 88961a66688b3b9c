package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/whisperaudio/recognizer"
)

// Recognition context registry for C API compatibility.
// Handles are opaque pointers that map back to Go instances, so no Go
// pointer ever crosses the boundary.
var (
	contextInstances         = make(map[uintptr]*recognizer.Placeholder)
	nextContextID    uintptr = 1
	contextMutex     sync.RWMutex
)

// registerContext stores a recognition context and returns its handle ID.
func registerContext(rec *recognizer.Placeholder) uintptr {
	contextMutex.Lock()
	defer contextMutex.Unlock()

	id := nextContextID
	nextContextID++
	contextInstances[id] = rec

	logrus.WithFields(logrus.Fields{
		"function":   "registerContext",
		"handle_id":  id,
		"context_id": rec.ContextID(),
	}).Debug("Recognition context registered")

	return id
}

// lookupContext resolves a handle ID to its recognition context.
func lookupContext(id uintptr) (*recognizer.Placeholder, bool) {
	contextMutex.RLock()
	defer contextMutex.RUnlock()

	rec, ok := contextInstances[id]
	return rec, ok
}

// unregisterContext removes and returns a recognition context.
func unregisterContext(id uintptr) (*recognizer.Placeholder, bool) {
	contextMutex.Lock()
	defer contextMutex.Unlock()

	rec, ok := contextInstances[id]
	if ok {
		delete(contextInstances, id)
		logrus.WithFields(logrus.Fields{
			"function":  "unregisterContext",
			"handle_id": id,
		}).Debug("Recognition context unregistered")
	}
	return rec, ok
}

// registeredContextCount reports the number of live contexts.
func registeredContextCount() int {
	contextMutex.RLock()
	defer contextMutex.RUnlock()
	return len(contextInstances)
}

// copyCString copies s into a caller buffer of capacity cap as a
// NUL-terminated C string. Returns the number of bytes written excluding
// the terminator, or -1 if the buffer cannot hold the string.
func copyCString(s string, buf []byte) int {
	if len(buf) < len(s)+1 {
		logrus.WithFields(logrus.Fields{
			"function":    "copyCString",
			"needed":      len(s) + 1,
			"buffer_size": len(buf),
			"error":       "output buffer too small",
		}).Error("C string copy failed")
		return -1
	}
	copy(buf, s)
	buf[len(s)] = 0
	return len(s)
}
