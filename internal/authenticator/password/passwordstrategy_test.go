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

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openportal/gate/internal/authenticator"
)

type PasswordStrategyTestSuite struct {
	suite.Suite
}

func TestPasswordStrategySuite(t *testing.T) {
	suite.Run(t, new(PasswordStrategyTestSuite))
}

func (suite *PasswordStrategyTestSuite) TestNewRequiresName() {
	strategy, err := New(authenticator.Descriptor{})
	assert.Nil(suite.T(), strategy)
	assert.Error(suite.T(), err)
}

func (suite *PasswordStrategyTestSuite) TestLoginWithoutPinnedReturnURL() {
	strategy, err := New(authenticator.Descriptor{Name: "password"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "password", strategy.Name())

	delegate, ok := strategy.(authenticator.LoginStrategy)
	assert.True(suite.T(), ok)

	result, err := delegate.Login(map[string]string{"username": "admin", "password": "s3cr3t"})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.ReturnURL)
}

func (suite *PasswordStrategyTestSuite) TestLoginPinsConfiguredReturnURL() {
	strategy, err := New(authenticator.Descriptor{
		Name:   "password",
		Params: map[string]any{ParamReturnURL: "https://localhost:8095/administrator"},
	})
	assert.NoError(suite.T(), err)

	delegate := strategy.(authenticator.LoginStrategy)
	result, err := delegate.Login(map[string]string{"username": "admin"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://localhost:8095/administrator", result.ReturnURL)
}

func (suite *PasswordStrategyTestSuite) TestHasNoDisplayCapability() {
	strategy, err := New(authenticator.Descriptor{Name: "password"})
	assert.NoError(suite.T(), err)

	_, ok := strategy.(authenticator.DisplayStrategy)
	assert.False(suite.T(), ok)
}
