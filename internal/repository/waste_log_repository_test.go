package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecosort/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	return gdb, mock
}

func TestCreateWithAwardCommitsBothWrites(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWasteLogRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `waste_logs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT points FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(15))
	mock.ExpectCommit()

	entry := &model.WasteLog{UserID: "user-1", WasteItemID: "item-1", Quantity: 2, Points: 6}
	balance, err := repo.CreateWithAward(context.Background(), entry)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 15 {
		t.Fatalf("balance=%d want 15", balance)
	}
	if entry.ID == "" {
		t.Fatal("entry id not assigned")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateWithAwardRollsBackWhenUserMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWasteLogRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `waste_logs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	entry := &model.WasteLog{UserID: "ghost", WasteItemID: "item-1", Quantity: 1, Points: 3}
	_, err := repo.CreateWithAward(context.Background(), entry)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteWithRefundCommitsBothWrites(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWasteLogRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `waste_logs`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry := &model.WasteLog{ID: "log-1", UserID: "user-1", Points: 6}
	if err := repo.DeleteWithRefund(context.Background(), entry); err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteWithRefundRollsBackWhenRowMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWasteLogRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `waste_logs`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	entry := &model.WasteLog{ID: "log-gone", UserID: "user-1", Points: 6}
	err := repo.DeleteWithRefund(context.Background(), entry)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestFindByIDForUserScopesByOwner(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWasteLogRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `waste_logs`").
		WithArgs("log-1", "user-1", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "waste_item_id", "quantity", "points"}).
			AddRow("log-1", "user-1", "item-1", 1, 3))

	entry, err := repo.FindByIDForUser(context.Background(), "log-1", "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Points != 3 {
		t.Fatalf("points=%d want 3", entry.Points)
	}

	mock.ExpectQuery("SELECT (.+) FROM `waste_logs`").
		WithArgs("log-1", "user-2", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.FindByIDForUser(context.Background(), "log-1", "user-2"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
