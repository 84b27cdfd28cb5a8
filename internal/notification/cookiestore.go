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

package notification

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openportal/gate/internal/system/log"
)

// StoreInterface defines the deferred notification mailbox.
//
// The backing store is client-held state shared by every in-flight request of
// the same browser: concurrent tabs observe it with last-writer-wins semantics,
// and a drain in one request can race an enqueue in another. Callers must treat
// the store as eventually consistent; that weak-consistency contract is part of
// the interface, not an implementation defect.
type StoreInterface interface {
	// Enqueue appends a message to the mailbox.
	Enqueue(w http.ResponseWriter, r *http.Request, msg Message) error
	// DrainAll returns every queued message in insertion order and empties the
	// mailbox as a side effect. A second drain within the same request yields
	// an empty sequence.
	DrainAll(w http.ResponseWriter, r *http.Request) []Message
	// Any reports whether the mailbox holds at least one message.
	Any(r *http.Request) bool
}

// queueClaims is the signed cookie payload.
type queueClaims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// CookieStore is a signed short-lived cookie implementation of StoreInterface.
// The cookie only needs to survive the single redirect hop between the request
// that raised the message and the request that displays it.
type CookieStore struct {
	cookieName string
	signingKey []byte
	maxAge     time.Duration
}

// NewCookieStore creates a cookie-backed notification store.
func NewCookieStore(cookieName string, signingKey []byte, maxAge time.Duration) *CookieStore {
	return &CookieStore{
		cookieName: cookieName,
		signingKey: signingKey,
		maxAge:     maxAge,
	}
}

// Enqueue appends a message to the mailbox cookie. Messages already queued by a
// previous request or earlier in the same request are preserved; a concurrent
// enqueue from another request of the same client is overwritten (last writer
// wins).
func (cs *CookieStore) Enqueue(w http.ResponseWriter, r *http.Request, msg Message) error {
	messages := cs.read(r)
	messages = append(messages, msg)

	token, err := cs.sign(messages)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cs.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cs.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	upsertRequestCookie(r, cs.cookieName, token)
	return nil
}

// DrainAll returns every queued message in insertion order and empties the
// mailbox: the cookie is expired on the response and removed from the request
// so a repeated drain within the same request yields nothing.
func (cs *CookieStore) DrainAll(w http.ResponseWriter, r *http.Request) []Message {
	messages := cs.read(r)
	if len(messages) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cs.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	removeRequestCookie(r, cs.cookieName)

	return messages
}

// Any reports whether the mailbox holds at least one message.
func (cs *CookieStore) Any(r *http.Request) bool {
	return len(cs.read(r)) > 0
}

// read parses and verifies the mailbox cookie. Missing, expired or tampered
// cookies yield an empty mailbox.
func (cs *CookieStore) read(r *http.Request) []Message {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "NotificationCookieStore"))

	cookie, err := r.Cookie(cs.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claims := &queueClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return cs.signingKey, nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Discarding invalid notification cookie")
		return nil
	}

	return claims.Messages
}

// sign serializes the messages into a signed compact token.
func (cs *CookieStore) sign(messages []Message) (string, error) {
	now := time.Now()
	claims := &queueClaims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cs.maxAge)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cs.signingKey)
}

// upsertRequestCookie rewrites the named cookie in the request Cookie header
// so a later read in the same request sees the freshly appended mailbox.
func upsertRequestCookie(r *http.Request, name, value string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")

	replaced := false
	var parts []string
	for _, c := range cookies {
		if c.Name == name {
			parts = append(parts, name+"="+value)
			replaced = true
			continue
		}
		parts = append(parts, c.Name+"="+c.Value)
	}
	if !replaced {
		parts = append(parts, name+"="+value)
	}
	r.Header.Set("Cookie", strings.Join(parts, "; "))
}

// removeRequestCookie rebuilds the request Cookie header without the named
// cookie so a drained mailbox is not observable again in the same request.
func removeRequestCookie(r *http.Request, name string) {
	cookies := r.Cookies()
	r.Header.Del("Cookie")

	var remaining []string
	for _, c := range cookies {
		if c.Name == name {
			continue
		}
		remaining = append(remaining, c.Name+"="+c.Value)
	}
	if len(remaining) > 0 {
		r.Header.Set("Cookie", strings.Join(remaining, "; "))
	}
}
