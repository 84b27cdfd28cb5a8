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

package challenge

import (
	"fmt"
	"html/template"
)

// otpProvider renders a one-time-code entry fragment.
type otpProvider struct {
	name  string
	label string
}

// NewOTPProvider creates a challenge provider prompting for a one-time code.
func NewOTPProvider(name, label string) ProviderInterface {
	return &otpProvider{name: name, label: label}
}

// Name returns the provider name.
func (p *otpProvider) Name() string {
	return p.name
}

// RenderChallenge produces the code-entry fragment.
func (p *otpProvider) RenderChallenge() (Factor, error) {
	fragment := fmt.Sprintf(
		`<div class="factor factor-%s"><label for="factor_%s">%s</label>`+
			`<input type="text" id="factor_%s" name="factor_%s" autocomplete="one-time-code" /></div>`,
		template.HTMLEscapeString(p.name),
		template.HTMLEscapeString(p.name),
		template.HTMLEscapeString(p.label),
		template.HTMLEscapeString(p.name),
		template.HTMLEscapeString(p.name),
	)
	return Factor(fragment), nil
}
