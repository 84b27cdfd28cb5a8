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

package main

import (
	"net/http"
	"time"

	"github.com/openportal/gate/internal/authenticator"
	"github.com/openportal/gate/internal/authenticator/password"
	"github.com/openportal/gate/internal/authenticator/sso"
	"github.com/openportal/gate/internal/challenge"
	"github.com/openportal/gate/internal/login"
	"github.com/openportal/gate/internal/notification"
	"github.com/openportal/gate/internal/session"
	"github.com/openportal/gate/internal/system/config"
	"github.com/openportal/gate/internal/system/healthcheck"
	"github.com/openportal/gate/internal/verifier"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux) {
	cfg := config.GetGateRuntime().Config

	// Build the authenticator catalog and bind the built-in strategies.
	registry := authenticator.NewRegistryFromConfig(cfg.Authenticator)
	for _, entry := range cfg.Authenticator.Authenticators {
		descriptorType := entry.Type
		if descriptorType == "" {
			descriptorType = authenticator.TypeAuthentication
		}
		switch {
		case entry.Name == "password" || entry.Params["strategy"] == "password":
			registry.Register(descriptorType, entry.Name, password.New)
		case entry.Name == "sso" || entry.Params["strategy"] == "sso":
			registry.Register(descriptorType, entry.Name, sso.New)
		}
	}

	notifications := notification.NewCookieStore(
		cfg.Notification.CookieName,
		[]byte(cfg.Notification.SigningKey),
		time.Duration(cfg.Notification.MaxAge)*time.Second,
	)
	sessions := session.NewManager(cfg.Session.CookieName, time.Duration(cfg.Session.ValidityPeriod)*time.Second)
	challenges := challenge.NewAggregator(challenge.NewOTPProvider("otp", "One-time code"))

	handler := login.NewLoginHandler(registry, verifier.NewCredentialsVerifier(nil),
		notifications, sessions, challenges, nil)
	login.Initialize(mux, handler)

	// Register the health service.
	healthcheck.Initialize(mux)
}
