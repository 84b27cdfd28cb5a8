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

import dbmodel "github.com/openportal/gate/internal/system/database/model"

var (
	// QueryGetUserByUsername is the query to get an active user's credentials by username.
	QueryGetUserByUsername = dbmodel.DBQuery{
		ID: "GVQ-USER-01",
		Query: "SELECT USER_ID, USERNAME, PASSWORD_HASH, PASSWORD_SALT, USER_GROUPS FROM GATE_USER " +
			"WHERE USERNAME = $1 AND BLOCKED = 0",
		SQLiteQuery: "SELECT USER_ID, USERNAME, PASSWORD_HASH, PASSWORD_SALT, USER_GROUPS FROM GATE_USER " +
			"WHERE USERNAME = ? AND BLOCKED = 0",
	}
	// QueryDeleteSessions is the query to delete sessions for a client scope, optionally
	// restricted to a single user (a zero user id matches every user in the scope).
	QueryDeleteSessions = dbmodel.DBQuery{
		ID:          "GVQ-SESS-01",
		Query:       "DELETE FROM GATE_SESSION WHERE CLIENT_ID = $1 AND ($2 = 0 OR USER_ID = $2)",
		SQLiteQuery: "DELETE FROM GATE_SESSION WHERE CLIENT_ID = ?1 AND (?2 = 0 OR USER_ID = ?2)",
	}
)
