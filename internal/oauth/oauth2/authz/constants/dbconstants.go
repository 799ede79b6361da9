/*
 * Copyright (c) 2026, Halcyon Project.
 *
 * Halcyon Project licenses this file to you under the Apache License,
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

package constants

import dbmodel "github.com/halcyonauth/halcyon/internal/system/database/model"

// Queries for authorization code persistence.
var (
	// QueryInsertAuthorizationCode inserts a new authorization code row.
	QueryInsertAuthorizationCode = dbmodel.DBQuery{
		ID: "AZQ-00001",
		Query: "INSERT INTO AUTHORIZATION_CODE (CODE_ID, CODE, CLIENT_ID, REDIRECT_URI, AUTHORIZED_USER_ID, " +
			"SCOPES, TIME_CREATED, EXPIRY_TIME, STATE) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		PostgresQuery: "INSERT INTO AUTHORIZATION_CODE (CODE_ID, CODE, CLIENT_ID, REDIRECT_URI, AUTHORIZED_USER_ID, " +
			"SCOPES, TIME_CREATED, EXPIRY_TIME, STATE) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}

	// QueryGetAuthorizationCodeByValue retrieves an authorization code row by its code value.
	QueryGetAuthorizationCodeByValue = dbmodel.DBQuery{
		ID: "AZQ-00002",
		Query: "SELECT CODE_ID, CODE, CLIENT_ID, REDIRECT_URI, AUTHORIZED_USER_ID, SCOPES, TIME_CREATED, " +
			"EXPIRY_TIME, STATE FROM AUTHORIZATION_CODE WHERE CODE = ?",
		PostgresQuery: "SELECT CODE_ID, CODE, CLIENT_ID, REDIRECT_URI, AUTHORIZED_USER_ID, SCOPES, TIME_CREATED, " +
			"EXPIRY_TIME, STATE FROM AUTHORIZATION_CODE WHERE CODE = $1",
	}

	// QueryDeactivateAuthorizationCode marks an active authorization code as consumed.
	// The state predicate makes concurrent consumption of the same code value settle on one winner.
	QueryDeactivateAuthorizationCode = dbmodel.DBQuery{
		ID:            "AZQ-00003",
		Query:         "UPDATE AUTHORIZATION_CODE SET STATE = ? WHERE CODE = ? AND STATE = ?",
		PostgresQuery: "UPDATE AUTHORIZATION_CODE SET STATE = $1 WHERE CODE = $2 AND STATE = $3",
	}

	// QueryDeleteAuthorizationCode deletes an authorization code row by its identifier.
	QueryDeleteAuthorizationCode = dbmodel.DBQuery{
		ID:            "AZQ-00004",
		Query:         "DELETE FROM AUTHORIZATION_CODE WHERE CODE_ID = ?",
		PostgresQuery: "DELETE FROM AUTHORIZATION_CODE WHERE CODE_ID = $1",
	}

	// QueryCountAuthorizationCodes counts the stored authorization code rows.
	QueryCountAuthorizationCodes = dbmodel.DBQuery{
		ID:    "AZQ-00005",
		Query: "SELECT COUNT(*) AS TOTAL FROM AUTHORIZATION_CODE",
	}
)
