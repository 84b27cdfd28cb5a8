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

package verifier

import "github.com/openportal/gate/internal/system/error/serviceerror"

var (
	// ErrorEmptyCredentials is the error when the provided credentials are empty.
	ErrorEmptyCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-VRF-1001",
		Error:            "Empty credentials",
		ErrorDescription: "Username and password are required",
	}
	// ErrorInvalidCredentials is the error when the provided credentials are invalid.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-VRF-1002",
		Error:            "Invalid credentials",
		ErrorDescription: "The username or password is incorrect",
	}
	// ErrorInsufficientPrivileges is the error when the user is not in the minimum
	// group required for the entry point.
	ErrorInsufficientPrivileges = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "GATE-VRF-1003",
		Error:            "Insufficient privileges",
		ErrorDescription: "The account is not permitted to use this login entry point",
	}
	// ErrorVerifierUnavailable is the error when the verifier backend cannot be reached.
	ErrorVerifierUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "GATE-VRF-1500",
		Error:            "Verification service unavailable",
		ErrorDescription: "An error occurred while verifying the credentials",
	}
)
