package account

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
)

func TestMeAndUpdateProfile(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, email, name, username FROM users`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "username"}).
			AddRow("user-1", "u@example.com", "User", "user"))

	svc := NewService(mock)
	profile, err := svc.Me(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if profile.Username != "user" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	mock.ExpectQuery(`UPDATE users`).
		WithArgs("user-1", "", "newname").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "username"}).
			AddRow("user-1", "u@example.com", "User", "newname"))

	updated, err := svc.UpdateProfile(context.Background(), "user-1", ProfilePatch{Username: "NewName"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Username != "newname" {
		t.Fatalf("expected lowercased username, got %s", updated.Username)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateProfileConflictAndEmptyPatch(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	svc := NewService(mock)

	if _, err := svc.UpdateProfile(context.Background(), "user-1", ProfilePatch{}); err != ErrEmptyPatch {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}

	mock.ExpectQuery(`UPDATE users`).
		WithArgs("user-1", "", "taken").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	if _, err := svc.UpdateProfile(context.Background(), "user-1", ProfilePatch{Username: "taken"}); err != ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestHostCard(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	now := time.Now()

	mock.ExpectQuery(`SELECT id, name, username FROM users`).
		WithArgs("host-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "username"}).AddRow("host-1", "Host", "host"))

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("viewer-1", "host-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(`SELECT id, title, category, address, starts_at, ends_at`).
		WithArgs("host-1", now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "category", "address", "starts_at", "ends_at"}).
			AddRow("ev-1", "Show", "music", "123 Main St", now.Add(time.Hour), now.Add(3*time.Hour)))

	svc := NewService(mock)
	card, err := svc.HostCard(context.Background(), "host-1", "viewer-1", now)
	if err != nil {
		t.Fatalf("host card: %v", err)
	}
	if !card.IsFriend || len(card.UpcomingEvents) != 1 {
		t.Fatalf("unexpected card: %+v", card)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIsPremium(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	svc := NewService(mock)

	if premium, err := svc.IsPremium(context.Background(), ""); err != nil || premium {
		t.Fatalf("anonymous is never premium")
	}

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	premium, err := svc.IsPremium(context.Background(), "user-1")
	if err != nil || !premium {
		t.Fatalf("expected premium: %v", err)
	}
}
