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

package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/halcyonauth/halcyon/internal/oauth/oauth2/authz/constants"
	"github.com/halcyonauth/halcyon/internal/system/database/client"
)

// keepOpenDB keeps the underlying mock database open across store calls.
type keepOpenDB struct {
	*sql.DB
}

func (d keepOpenDB) Close() error {
	return nil
}

// mockDBProvider hands out clients over the mock database.
type mockDBProvider struct {
	db *sql.DB
}

func (p *mockDBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	return client.NewDBClient(keepOpenDB{p.db}, "sqlite"), nil
}

type SQLStoreTestSuite struct {
	suite.Suite
	db    *sql.DB
	mock  sqlmock.Sqlmock
	store *SQLAuthorizationCodeStore
}

func TestSQLStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLStoreTestSuite))
}

func (suite *SQLStoreTestSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	assert.NoError(suite.T(), err)

	suite.db = db
	suite.mock = mock
	suite.store = &SQLAuthorizationCodeStore{
		DBProvider: &mockDBProvider{db: db},
	}
}

func (suite *SQLStoreTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
	_ = suite.db.Close()
}

func (suite *SQLStoreTestSuite) codeRow() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"CODE_ID", "CODE", "CLIENT_ID", "REDIRECT_URI",
		"AUTHORIZED_USER_ID", "SCOPES", "TIME_CREATED", "EXPIRY_TIME", "STATE"}).
		AddRow("id-1", "code-1", "client-1", "https://example.com/callback", "user-1",
			"read write", now.Format(time.RFC3339Nano),
			now.Add(time.Minute).Format(time.RFC3339Nano), constants.AuthCodeStateActive)
}

func (suite *SQLStoreTestSuite) TestInsertAuthorizationCode() {
	suite.mock.ExpectExec("INSERT INTO AUTHORIZATION_CODE").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := suite.store.InsertAuthorizationCode(newTestAuthorizationCode("id-1", "code-1"))
	assert.NoError(suite.T(), err)
}

func (suite *SQLStoreTestSuite) TestGetAuthorizationCodeByValue() {
	suite.mock.ExpectQuery("SELECT (.+) FROM AUTHORIZATION_CODE WHERE CODE").
		WithArgs("code-1").
		WillReturnRows(suite.codeRow())

	authzCode, err := suite.store.GetAuthorizationCodeByValue("code-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "id-1", authzCode.CodeID)
	assert.Equal(suite.T(), []string{"read", "write"}, authzCode.Scopes)
	assert.Equal(suite.T(), constants.AuthCodeStateActive, authzCode.State)
}

func (suite *SQLStoreTestSuite) TestGetAuthorizationCodeByValueNotFound() {
	suite.mock.ExpectQuery("SELECT (.+) FROM AUTHORIZATION_CODE WHERE CODE").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"CODE_ID"}))

	authzCode, err := suite.store.GetAuthorizationCodeByValue("missing")
	assert.Nil(suite.T(), authzCode)
	assert.ErrorIs(suite.T(), err, constants.ErrAuthorizationCodeNotFound)
}

func (suite *SQLStoreTestSuite) TestConsumeAuthorizationCode() {
	suite.mock.ExpectQuery("SELECT (.+) FROM AUTHORIZATION_CODE WHERE CODE").
		WithArgs("code-1").
		WillReturnRows(suite.codeRow())
	suite.mock.ExpectExec("UPDATE AUTHORIZATION_CODE SET STATE").
		WithArgs(constants.AuthCodeStateInactive, "code-1", constants.AuthCodeStateActive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	authzCode, err := suite.store.ConsumeAuthorizationCode("code-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "code-1", authzCode.Code)
}

func (suite *SQLStoreTestSuite) TestConsumeAuthorizationCodeAlreadyConsumed() {
	suite.mock.ExpectQuery("SELECT (.+) FROM AUTHORIZATION_CODE WHERE CODE").
		WithArgs("code-1").
		WillReturnRows(suite.codeRow())
	// A concurrent consumer won the conditional update.
	suite.mock.ExpectExec("UPDATE AUTHORIZATION_CODE SET STATE").
		WithArgs(constants.AuthCodeStateInactive, "code-1", constants.AuthCodeStateActive).
		WillReturnResult(sqlmock.NewResult(0, 0))

	authzCode, err := suite.store.ConsumeAuthorizationCode("code-1")
	assert.Nil(suite.T(), authzCode)
	assert.ErrorIs(suite.T(), err, constants.ErrAuthorizationCodeNotFound)
}

func (suite *SQLStoreTestSuite) TestDeleteAuthorizationCode() {
	suite.mock.ExpectExec("DELETE FROM AUTHORIZATION_CODE WHERE CODE_ID").
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(suite.T(), suite.store.DeleteAuthorizationCode("id-1"))
}

func (suite *SQLStoreTestSuite) TestCountAuthorizationCodes() {
	suite.mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"TOTAL"}).AddRow(int64(3)))

	count, err := suite.store.CountAuthorizationCodes()
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), count)
}
