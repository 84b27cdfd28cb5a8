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

package authenticator

import (
	"github.com/openportal/gate/internal/system/config"
	"github.com/openportal/gate/internal/system/log"
)

// RegistryInterface defines the read-only query surface over the strategy catalog.
type RegistryInterface interface {
	// ListByType returns the descriptors of the given type in catalog order.
	ListByType(descriptorType string) []Descriptor
	// FindByName returns the descriptor with the exact given name, if present.
	FindByName(descriptorType, name string) (Descriptor, bool)
	// HasStrategy reports whether a backing strategy implementation is registered
	// for the descriptor.
	HasStrategy(desc Descriptor) bool
	// Instantiate creates the strategy instance backing the descriptor.
	Instantiate(desc Descriptor) (Strategy, error)
}

type factoryKey struct {
	descriptorType string
	name           string
}

// Registry is the typed strategy registry. The descriptor catalog and the
// factory bindings are populated once at startup and read-only afterwards.
type Registry struct {
	descriptors []Descriptor
	factories   map[factoryKey]Factory
}

// NewRegistry creates a registry over the given descriptor catalog.
func NewRegistry(descriptors []Descriptor) *Registry {
	return &Registry{
		descriptors: descriptors,
		factories:   make(map[factoryKey]Factory),
	}
}

// NewRegistryFromConfig builds a registry from the authenticator catalog in the
// deployment configuration.
func NewRegistryFromConfig(cfg config.AuthenticatorConfig) *Registry {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AuthenticatorRegistry"))

	descriptors := make([]Descriptor, 0, len(cfg.Authenticators))
	for _, entry := range cfg.Authenticators {
		descriptorType := entry.Type
		if descriptorType == "" {
			descriptorType = TypeAuthentication
		}
		descriptors = append(descriptors, Descriptor{
			Type:   descriptorType,
			Name:   entry.Name,
			Params: entry.Params,
		})
	}

	logger.Debug("Loaded authenticator catalog", log.Int("count", len(descriptors)))
	return NewRegistry(descriptors)
}

// Register binds a strategy factory to a (type, name) key.
func (r *Registry) Register(descriptorType, name string, factory Factory) {
	r.factories[factoryKey{descriptorType: descriptorType, name: name}] = factory
}

// ListByType returns the descriptors of the given type in catalog order.
func (r *Registry) ListByType(descriptorType string) []Descriptor {
	var result []Descriptor
	for _, desc := range r.descriptors {
		if desc.Type == descriptorType {
			result = append(result, desc)
		}
	}
	return result
}

// FindByName returns the descriptor with the exact given name, if present.
func (r *Registry) FindByName(descriptorType, name string) (Descriptor, bool) {
	for _, desc := range r.descriptors {
		if desc.Type == descriptorType && desc.Name == name {
			return desc, true
		}
	}
	return Descriptor{}, false
}

// HasStrategy reports whether a backing strategy implementation is registered
// for the descriptor. Descriptors without a backing implementation are skipped
// by callers, never treated as errors.
func (r *Registry) HasStrategy(desc Descriptor) bool {
	_, ok := r.factories[factoryKey{descriptorType: desc.Type, name: desc.Name}]
	return ok
}

// Instantiate creates the strategy instance backing the descriptor.
func (r *Registry) Instantiate(desc Descriptor) (Strategy, error) {
	factory, ok := r.factories[factoryKey{descriptorType: desc.Type, name: desc.Name}]
	if !ok {
		return nil, &StrategyNotRegisteredError{Type: desc.Type, Name: desc.Name}
	}
	return factory(desc)
}
