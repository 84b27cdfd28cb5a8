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

package utils

import (
	"encoding/base64"
	"net/http"
	"regexp"
	"strconv"
)

var (
	methodSafePattern = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	base64Pattern     = regexp.MustCompile(`[^A-Za-z0-9/+=]`)
	localePattern     = regexp.MustCompile(`[^A-Za-z-]`)
)

// RequestVar reads a request variable from the form or query string, returning
// the default when the variable is absent or empty.
func RequestVar(r *http.Request, name, def string) string {
	value := r.FormValue(name)
	if value == "" {
		return def
	}
	return value
}

// RequestVarMethod reads a request variable and strips every character that is not
// safe for a method or plugin name (letters, digits, underscore, dot, hyphen).
func RequestVarMethod(r *http.Request, name, def string) string {
	value := methodSafePattern.ReplaceAllString(r.FormValue(name), "")
	if value == "" {
		return def
	}
	return value
}

// RequestVarBase64 reads a request variable constrained to the base64 alphabet,
// without decoding it. Used when the raw encoded value is echoed back to the client.
func RequestVarBase64(r *http.Request, name, def string) string {
	value := base64Pattern.ReplaceAllString(r.FormValue(name), "")
	if value == "" {
		return def
	}
	return value
}

// RequestVarBase64Decoded reads a base64 request variable and returns its decoded
// value. Undecodable input yields the default.
func RequestVarBase64Decoded(r *http.Request, name, def string) string {
	value := RequestVarBase64(r, name, "")
	if value == "" {
		return def
	}
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return def
	}
	return string(decoded)
}

// RequestVarInt reads an integer request variable, returning the default when the
// variable is absent or not a valid integer.
func RequestVarInt(r *http.Request, name string, def int) int {
	value := r.FormValue(name)
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// SanitizeLocale strips every character except letters and hyphens from a
// requested UI locale code.
func SanitizeLocale(locale string) string {
	return localePattern.ReplaceAllString(locale, "")
}
