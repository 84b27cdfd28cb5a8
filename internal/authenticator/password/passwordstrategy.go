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

// Package password provides the built-in username/password authentication strategy.
package password

import (
	"errors"

	"github.com/openportal/gate/internal/authenticator"
	"github.com/openportal/gate/internal/system/log"
)

// ParamReturnURL is the optional strategy parameter pinning the post-login return URL.
const ParamReturnURL = "return_url"

// passwordStrategy is the delegated login hook for form-based credential logins.
// It does not verify credentials itself; verification stays with the core verifier.
type passwordStrategy struct {
	name      string
	returnURL string
}

// New creates a password strategy instance for the given descriptor.
func New(desc authenticator.Descriptor) (authenticator.Strategy, error) {
	if desc.Name == "" {
		return nil, errors.New("password strategy requires a descriptor name")
	}
	return &passwordStrategy{
		name:      desc.Name,
		returnURL: desc.ParamString(ParamReturnURL),
	}, nil
}

// Name returns the strategy name.
func (s *passwordStrategy) Name() string {
	return s.name
}

// Login normalizes the submitted credentials and optionally pins the return URL
// configured for the strategy.
func (s *passwordStrategy) Login(credentials map[string]string) (*authenticator.LoginResult, error) {
	logger := log.GetLogger().With(
		log.String(log.LoggerKeyComponentName, "PasswordStrategy"),
		log.String(log.LoggerKeyAuthenticatorName, s.name))

	if credentials["username"] == "" {
		logger.Debug("Login delegation invoked without a username")
	}

	result := &authenticator.LoginResult{}
	if s.returnURL != "" {
		result.ReturnURL = s.returnURL
	}
	return result, nil
}
