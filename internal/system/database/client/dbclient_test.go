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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/openportal/gate/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "TST-01",
		Query: "SELECT USER_ID, USERNAME FROM GATE_USER WHERE BLOCKED = ?",
	}
	args := []interface{}{0}
	mockArgs := []driver.Value{0}

	columns := []string{"USER_ID", "USERNAME"}
	rows := sqlmock.NewRows(columns).
		AddRow(1, "admin").
		AddRow(2, "operator")
	suite.mock.ExpectQuery("SELECT USER_ID, USERNAME FROM GATE_USER WHERE BLOCKED = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	// Column names are normalized to lowercase.
	assert.Equal(suite.T(), int64(1), results[0]["user_id"])
	assert.Equal(suite.T(), "admin", results[0]["username"])
	assert.Equal(suite.T(), int64(2), results[1]["user_id"])
	assert.Equal(suite.T(), "operator", results[1]["username"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "TST-02",
		Query: "SELECT USER_ID, USERNAME FROM GATE_USER WHERE USERNAME = ?",
	}

	rows := sqlmock.NewRows([]string{"USER_ID", "USERNAME"})
	suite.mock.ExpectQuery("SELECT USER_ID, USERNAME FROM GATE_USER WHERE USERNAME = ?").
		WithArgs("ghost").
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, "ghost")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "TST-03",
		Query: "SELECT USER_ID FROM NON_EXISTENT_TABLE",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT USER_ID FROM NON_EXISTENT_TABLE").
		WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryUsesSQLiteVariant() {
	sqliteClient := NewDBClient(model.NewDB(suite.mockDB), "sqlite")
	testQuery := model.DBQuery{
		ID:          "TST-04",
		Query:       "SELECT USERNAME FROM GATE_USER WHERE USER_ID = $1",
		SQLiteQuery: "SELECT USERNAME FROM GATE_USER WHERE USER_ID = ?",
	}

	rows := sqlmock.NewRows([]string{"USERNAME"}).AddRow("admin")
	suite.mock.ExpectQuery("SELECT USERNAME FROM GATE_USER WHERE USER_ID = \\?").
		WithArgs(7).
		WillReturnRows(rows)

	results, err := sqliteClient.Query(testQuery, 7)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "admin", results[0]["username"])
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "TST-05",
		Query: "DELETE FROM GATE_SESSION WHERE CLIENT_ID = ?",
	}

	suite.mock.ExpectExec("DELETE FROM GATE_SESSION WHERE CLIENT_ID = \\?").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))

	rowsAffected, err := suite.dbClient.Execute(testQuery, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteZeroRowsAffected() {
	testQuery := model.DBQuery{
		ID:    "TST-06",
		Query: "DELETE FROM GATE_SESSION WHERE USER_ID = ?",
	}

	suite.mock.ExpectExec("DELETE FROM GATE_SESSION WHERE USER_ID = \\?").
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rowsAffected, err := suite.dbClient.Execute(testQuery, 999)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "TST-07",
		Query: "DELETE FROM NON_EXISTENT_TABLE WHERE USER_ID = ?",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("DELETE FROM NON_EXISTENT_TABLE WHERE USER_ID = \\?").
		WithArgs(1).
		WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery, 1)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	testQuery := model.DBQuery{
		ID:    "TST-08",
		Query: "DELETE FROM GATE_SESSION WHERE CLIENT_ID = ?",
	}

	result := sqlmock.NewErrorResult(errors.New("rows affected error"))
	suite.mock.ExpectExec("DELETE FROM GATE_SESSION WHERE CLIENT_ID = \\?").
		WithArgs(1).
		WillReturnResult(result)

	rowsAffected, err := suite.dbClient.Execute(testQuery, 1)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "rows affected error")
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestBeginTxSuccess() {
	suite.mock.ExpectBegin()

	tx, err := suite.dbClient.BeginTx()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("connection lost")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestClose() {
	suite.mock.ExpectClose()

	err := suite.dbClient.Close()
	assert.NoError(suite.T(), err)
}
