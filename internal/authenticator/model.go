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

// Package authenticator defines the pluggable authentication strategy catalog and
// its capability interfaces.
package authenticator

import (
	"fmt"
	"strings"
)

// TypeAuthentication is the descriptor type for login authentication strategies.
const TypeAuthentication = "authentication"

// ParamAdminLogin is the capability flag marking a strategy as usable for admin login.
const ParamAdminLogin = "admin_login"

// Descriptor describes a registered authentication strategy. Descriptors are
// read-only once loaded from the catalog.
type Descriptor struct {
	Type   string
	Name   string
	Params map[string]any
}

// ParamBool reads a parameter as a truthy capability flag. Booleans, non-zero
// numbers and the strings "1", "true", "yes" and "on" are truthy.
func (d Descriptor) ParamBool(name string) bool {
	value, ok := d.Params[name]
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		}
		return false
	default:
		return false
	}
}

// ParamString reads a parameter as a string, returning an empty string when the
// parameter is absent or not string-like.
func (d Descriptor) ParamString(name string) string {
	value, ok := d.Params[name]
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}
