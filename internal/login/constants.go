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

const (
	// ActionAdminLogin is the access control action checked for admin logins.
	ActionAdminLogin = "core.login.admin"
	// GroupPublicBackend is the minimum privilege tier allowed to use this entry point.
	GroupPublicBackend = "Public Backend"
)

// Request variable names read by the login entry points.
const (
	varAuthenticator = "authenticator"
	varReturn        = "return"
	varUsername      = "username"
	varPassword      = "password"
	varToken         = "token"
	varLang          = "lang"
	varUserID        = "uid"
)

// clientScope values passed to the verifier on logout.
const (
	// clientScopeSite is the site client scope, used when an explicit user id is given.
	clientScopeSite = 0
	// clientScopeAdmin is the primary admin client scope, used for the current session user.
	clientScopeAdmin = 1
)
