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

package authenticator

import "net/http"

// Strategy defines the common interface for authentication strategies.
// Capabilities beyond the name are optional and probed with type assertions
// against DisplayStrategy and LoginStrategy.
type Strategy interface {
	Name() string
}

// DisplayStrategy is implemented by strategies that render their own login UI
// instead of the default login view.
type DisplayStrategy interface {
	Strategy
	// Display renders the strategy's custom login UI. returnValue is the raw
	// base64 return value echoed from the caller.
	Display(w http.ResponseWriter, r *http.Request, returnValue string) error
}

// LoginResult is the output of a delegated login call.
type LoginResult struct {
	// ReturnURL, when non-empty, overrides the orchestrator's resolved return URL.
	ReturnURL string
}

// LoginStrategy is implemented by strategies that participate in credential
// verification before the core verifier runs.
type LoginStrategy interface {
	Strategy
	Login(credentials map[string]string) (*LoginResult, error)
}

// Factory creates a strategy instance for a descriptor.
type Factory func(desc Descriptor) (Strategy, error)
