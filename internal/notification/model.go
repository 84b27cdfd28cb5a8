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

// Package notification provides the deferred user-facing message queue that
// survives a redirect boundary.
package notification

// Kind classifies a user-facing message.
type Kind string

const (
	// KindError denotes an error message.
	KindError Kind = "error"
	// KindSuccess denotes a success message.
	KindSuccess Kind = "success"
	// KindInfo denotes an informational message.
	KindInfo Kind = "info"
	// KindWarning denotes a warning message.
	KindWarning Kind = "warning"
)

// Message is a short user-facing message queued before a redirect and shown
// exactly once after it.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}
