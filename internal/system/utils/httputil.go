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

// Package utils provides utility functions for the system module.
package utils

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/openportal/gate/internal/system/constants"
	"github.com/openportal/gate/internal/system/error/serviceerror"
	"github.com/openportal/gate/internal/system/log"
)

// WriteJSONError writes a standardized JSON error response to the response writer.
func WriteJSONError(w http.ResponseWriter, svcErr serviceerror.ServiceError, statusCode int) {
	logger := log.GetLogger()

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(svcErr); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// ParseURL parses a raw URL string and returns the parsed URL.
func ParseURL(urlStr string) (*url.URL, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// GetAllowedOrigin returns the matching allowed origin for the request origin, or an
// empty string when the origin is not in the allowed list.
func GetAllowedOrigin(allowedOrigins []string, requestOrigin string) string {
	for _, origin := range allowedOrigins {
		if strings.EqualFold(strings.TrimSuffix(origin, "/"), strings.TrimSuffix(requestOrigin, "/")) {
			return origin
		}
	}
	return ""
}
