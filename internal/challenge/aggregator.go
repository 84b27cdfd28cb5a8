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

// Package challenge aggregates multi-factor challenge fragments from registered providers.
package challenge

import (
	"fmt"

	"github.com/openportal/gate/internal/system/log"
)

// Factor is an opaque rendering fragment produced by a challenge provider.
type Factor string

// ProviderInterface defines a multi-factor challenge provider.
type ProviderInterface interface {
	Name() string
	// RenderChallenge produces the provider's challenge fragment.
	RenderChallenge() (Factor, error)
}

// AggregatorInterface defines the challenge broadcast surface.
type AggregatorInterface interface {
	// Collect triggers every registered provider and returns their fragments in
	// registration order. There is no failure isolation: the first provider
	// error aborts the whole collection.
	Collect() ([]Factor, error)
}

// Aggregator is the default AggregatorInterface implementation.
type Aggregator struct {
	providers []ProviderInterface
}

// NewAggregator creates an aggregator over the given providers.
func NewAggregator(providers ...ProviderInterface) *Aggregator {
	return &Aggregator{providers: providers}
}

// Register appends a provider to the broadcast list. Registration order defines
// collection order; the order is best-effort and not stable across
// reconfiguration.
func (a *Aggregator) Register(provider ProviderInterface) {
	a.providers = append(a.providers, provider)
}

// Collect triggers every registered provider and returns their fragments in
// registration order.
func (a *Aggregator) Collect() ([]Factor, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ChallengeAggregator"))

	factors := make([]Factor, 0, len(a.providers))
	for _, provider := range a.providers {
		factor, err := provider.RenderChallenge()
		if err != nil {
			return nil, fmt.Errorf("challenge provider %q failed: %w", provider.Name(), err)
		}
		factors = append(factors, factor)
	}

	logger.Debug("Collected challenge factors", log.Int("count", len(factors)))
	return factors, nil
}
