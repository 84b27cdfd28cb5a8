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

// Package healthcheck exposes the server liveness endpoint.
package healthcheck

import (
	"net/http"

	"github.com/openportal/gate/internal/system/healthcheck/handler"
	"github.com/openportal/gate/internal/system/middleware"
)

// Initialize registers the health check endpoints on the given router.
func Initialize(mux *http.ServeMux) {
	healthCheckHandler := handler.NewHealthCheckHandler()

	opts := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type"}
	mux.HandleFunc(middleware.WithCORS("GET /health", healthCheckHandler.HandleLivenessRequest, opts))
}
