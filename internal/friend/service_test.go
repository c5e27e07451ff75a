package friend

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
)

func TestAddInsertsBothEdges(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, email, name, username FROM users`).
		WithArgs("buddy@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "username"}).
			AddRow("user-2", "buddy@example.com", "Buddy", "buddy"))

	// both directed edges written by one statement
	mock.ExpectExec(`INSERT INTO friendships`).
		WithArgs("user-1", "user-2").
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	svc := NewService(mock)
	added, err := svc.Add(context.Background(), "user-1", "Buddy@example.com")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID != "user-2" {
		t.Fatalf("unexpected friend: %+v", added)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddSelfFriend(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, email, name, username FROM users`).
		WithArgs("me").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "username"}).
			AddRow("user-1", "me@example.com", "Me", "me"))

	svc := NewService(mock)
	if _, err := svc.Add(context.Background(), "user-1", "me"); err != ErrSelfFriend {
		t.Fatalf("expected ErrSelfFriend, got %v", err)
	}
}

func TestAddShortIdentifier(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Add(context.Background(), "user-1", " x "); err != ErrIdentifier {
		t.Fatalf("expected ErrIdentifier, got %v", err)
	}
}

func TestList(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT u.id, u.email, u.name, u.username`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "username"}).
			AddRow("user-2", "b@example.com", "Buddy", "buddy").
			AddRow("user-3", "c@example.com", "Carol", "carol"))

	svc := NewService(mock)
	friends, err := svc.List(context.Background(), "user-1")
	if err != nil || len(friends) != 2 {
		t.Fatalf("list: %v %d", err, len(friends))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
