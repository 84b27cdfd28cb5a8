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

// Package sso provides the built-in single sign-on authentication strategy that
// hands the login UI off to an external identity provider.
package sso

import (
	"errors"
	"net/http"

	"github.com/openportal/gate/internal/authenticator"
	"github.com/openportal/gate/internal/system/log"
	"github.com/openportal/gate/internal/system/utils"
)

// ParamLoginURL is the strategy parameter holding the external login endpoint.
const ParamLoginURL = "login_url"

// ssoStrategy renders its login UI by redirecting to an external identity
// provider login endpoint.
type ssoStrategy struct {
	name     string
	loginURL string
}

// New creates an SSO strategy instance for the given descriptor.
func New(desc authenticator.Descriptor) (authenticator.Strategy, error) {
	loginURL := desc.ParamString(ParamLoginURL)
	if loginURL == "" {
		return nil, errors.New("sso strategy requires a login_url parameter")
	}
	return &ssoStrategy{
		name:     desc.Name,
		loginURL: loginURL,
	}, nil
}

// Name returns the strategy name.
func (s *ssoStrategy) Name() string {
	return s.name
}

// Display redirects the client to the external login endpoint, echoing the
// caller-supplied return value so the provider can route the user back.
func (s *ssoStrategy) Display(w http.ResponseWriter, r *http.Request, returnValue string) error {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, "SSOStrategy"),
		log.String(log.LoggerKeyAuthenticatorName, s.name))

	target, err := utils.ParseURL(s.loginURL)
	if err != nil {
		return err
	}

	query := target.Query()
	if returnValue != "" {
		query.Set("return", returnValue)
	}
	target.RawQuery = query.Encode()

	logger.Debug("Redirecting to external login endpoint", log.String("target", target.String()))
	http.Redirect(w, r, target.String(), http.StatusFound)
	return nil
}
