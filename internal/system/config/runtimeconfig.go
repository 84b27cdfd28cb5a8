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

package config

import "sync"

// GateRuntime holds the runtime configuration for the Gate server.
type GateRuntime struct {
	GateHome string `yaml:"gate_home"`
	Config   Config `yaml:"config"`
}

var (
	runtimeConfig *GateRuntime
	once          sync.Once
)

// InitializeGateRuntime initializes the GateRuntime configuration.
func InitializeGateRuntime(gateHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &GateRuntime{
			GateHome: gateHome,
			Config:   *config,
		}
	})

	return nil
}

// GetGateRuntime returns the GateRuntime configuration.
func GetGateRuntime() *GateRuntime {
	if runtimeConfig == nil {
		panic("GateRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetGateRuntime resets the GateRuntime.
// This should only be used in tests to reset the singleton state.
func ResetGateRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
