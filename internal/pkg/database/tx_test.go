// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestTxManager_InTx(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		fn      func(t *testing.T, db *gorm.DB) func(ctx context.Context) error
		wantErr error
	}{
		{
			name: "全部成功提交",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `t1`").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `t2`").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(t *testing.T, db *gorm.DB) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					assert.True(t, InTransaction(ctx))
					if err := Conn(ctx, db).Exec("UPDATE `t1` SET a = 1").Error; err != nil {
						return err
					}
					return Conn(ctx, db).Exec("UPDATE `t2` SET a = 1").Error
				}
			},
		},
		{
			name: "业务失败回滚",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `t1`").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
			fn: func(t *testing.T, db *gorm.DB) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					if err := Conn(ctx, db).Exec("UPDATE `t1` SET a = 1").Error; err != nil {
						return err
					}
					return errors.New("mock biz error")
				}
			},
			wantErr: errors.New("mock biz error"),
		},
		{
			name: "嵌套事务复用外层事务",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `t1`").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(t *testing.T, db *gorm.DB) func(ctx context.Context) error {
				return func(ctx context.Context) error {
					return NewTxManager(db).InTx(ctx, func(ctx context.Context) error {
						return Conn(ctx, db).Exec("UPDATE `t1` SET a = 1").Error
					})
				}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			db := newGormDB(t, sqlDB)

			err = NewTxManager(db).InTx(context.Background(), tc.fn(t, db))
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConn(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `t1`").WillReturnResult(sqlmock.NewResult(0, 1))
	db := newGormDB(t, sqlDB)

	ctx := context.Background()
	assert.False(t, InTransaction(ctx))
	require.NoError(t, Conn(ctx, db).Exec("UPDATE `t1` SET a = 1").Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newGormDB(t *testing.T, sqlDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
