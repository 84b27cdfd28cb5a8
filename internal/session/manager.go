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

package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/openportal/gate/internal/system/log"
)

// ManagerInterface defines the session identity and state surface used by handlers.
type ManagerInterface interface {
	// EnsureSession returns the request's session ID, creating one when absent.
	EnsureSession(w http.ResponseWriter, r *http.Request) string
	// SetState stores a session-scoped state value.
	SetState(sessionID, key, value string)
	// GetState retrieves a session-scoped state value.
	GetState(sessionID, key string) (string, bool)
}

// Manager ties browser session cookies to the session state store.
type Manager struct {
	store      StateStoreInterface
	cookieName string
	validity   time.Duration
}

// NewManager creates a session manager with its own state store.
func NewManager(cookieName string, validity time.Duration) *Manager {
	return &Manager{
		store:      NewStateStore(validity),
		cookieName: cookieName,
		validity:   validity,
	}
}

// EnsureSession returns the session ID carried by the request cookie, minting a
// new identifier and setting the cookie when the request has none.
func (m *Manager) EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(m.validity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SessionManager"))
	logger.Debug("Created new session", log.String(log.LoggerKeySessionID, log.MaskString(sessionID)))

	return sessionID
}

// SetState stores a session-scoped state value.
func (m *Manager) SetState(sessionID, key, value string) {
	m.store.SetState(sessionID, key, value)
}

// GetState retrieves a session-scoped state value.
func (m *Manager) GetState(sessionID, key string) (string, bool) {
	return m.store.GetState(sessionID, key)
}
