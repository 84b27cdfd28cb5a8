/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package session provides session-scoped state storage for authenticated clients.
package session

import (
	"sync"
	"time"
)

// StateKeyUILanguage is the session state key holding the persisted UI locale.
const StateKeyUILanguage = "application.lang"

// StateStoreInterface defines the session state storage.
type StateStoreInterface interface {
	SetState(sessionID, key, value string)
	GetState(sessionID, key string) (string, bool)
	ClearSession(sessionID string)
}

// stateStoreEntry represents an entry in the session state store.
type stateStoreEntry struct {
	values     map[string]string
	expiryTime time.Time
}

// StateStore provides the in-memory session state store functionality.
type StateStore struct {
	sessions       map[string]stateStoreEntry
	validityPeriod time.Duration
	mu             sync.RWMutex
}

// NewStateStore creates a session state store with the given validity period.
func NewStateStore(validityPeriod time.Duration) *StateStore {
	return &StateStore{
		sessions:       make(map[string]stateStoreEntry),
		validityPeriod: validityPeriod,
	}
}

// SetState stores a state value for the session, extending its validity.
func (ss *StateStore) SetState(sessionID, key, value string) {
	if sessionID == "" || key == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	entry, exists := ss.sessions[sessionID]
	if !exists || time.Now().After(entry.expiryTime) {
		entry = stateStoreEntry{values: make(map[string]string)}
	}
	entry.values[key] = value
	entry.expiryTime = time.Now().Add(ss.validityPeriod)
	ss.sessions[sessionID] = entry
}

// GetState retrieves a state value for the session.
func (ss *StateStore) GetState(sessionID, key string) (string, bool) {
	if sessionID == "" || key == "" {
		return "", false
	}

	ss.mu.RLock()
	entry, exists := ss.sessions[sessionID]
	ss.mu.RUnlock()

	if exists {
		if time.Now().Before(entry.expiryTime) {
			value, ok := entry.values[key]
			return value, ok
		}
		// Remove the expired entry.
		ss.mu.Lock()
		delete(ss.sessions, sessionID)
		ss.mu.Unlock()
	}

	return "", false
}

// ClearSession removes all state for the session.
func (ss *StateStore) ClearSession(sessionID string) {
	if sessionID == "" {
		return
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sessionID)
}
