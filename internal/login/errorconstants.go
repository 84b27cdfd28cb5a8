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

import "github.com/openportal/gate/internal/system/error/serviceerror"

// Server errors for the login entry points.
var (
	// ErrorStrategyFailure is returned when an authenticator strategy cannot be
	// constructed or its delegated hook fails.
	ErrorStrategyFailure = serviceerror.ServiceError{
		Code:             "GATE-LGN-1500",
		Type:             serviceerror.ServerErrorType,
		Error:            "Authenticator strategy failure",
		ErrorDescription: "The selected authenticator could not complete the request",
	}
	// ErrorChallengeCollectionFailure is returned when challenge factor collection aborts.
	ErrorChallengeCollectionFailure = serviceerror.ServiceError{
		Code:             "GATE-LGN-1501",
		Type:             serviceerror.ServerErrorType,
		Error:            "Challenge collection failure",
		ErrorDescription: "Something went wrong while collecting the challenge factors",
	}
	// ErrorPageRenderFailure is returned when the login page cannot be rendered.
	ErrorPageRenderFailure = serviceerror.ServiceError{
		Code:             "GATE-LGN-1502",
		Type:             serviceerror.ServerErrorType,
		Error:            "Page render failure",
		ErrorDescription: "Something went wrong while rendering the page",
	}
)
