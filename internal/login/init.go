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

package login

import (
	"net/http"

	"github.com/openportal/gate/internal/system/middleware"
)

// Initialize registers the login entry points on the given router.
func Initialize(mux *http.ServeMux, handler *LoginHandler) {
	opts1 := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type", AllowCredentials: true}
	mux.HandleFunc(middleware.WithCORS("GET /login", handler.HandleDisplayRequest, opts1))

	opts2 := middleware.CORSOptions{AllowedMethods: "POST", AllowedHeaders: "Content-Type", AllowCredentials: true}
	mux.HandleFunc(middleware.WithCORS("POST /login", handler.HandleLoginRequest, opts2))

	opts3 := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type", AllowCredentials: true}
	mux.HandleFunc(middleware.WithCORS("GET /login/factors", handler.HandleFactorsRequest, opts3))

	opts4 := middleware.CORSOptions{AllowedMethods: "GET, POST", AllowedHeaders: "Content-Type", AllowCredentials: true}
	mux.HandleFunc(middleware.WithCORS("GET /logout", handler.HandleLogoutRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("POST /logout", handler.HandleLogoutRequest, opts4))
}
