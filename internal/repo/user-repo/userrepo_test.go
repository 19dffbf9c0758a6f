package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/greencycle/ecopoints/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	query := `SELECT id, login, password_hash FROM users WHERE login = $1`

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing login returns user",
			login: "testuser",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash"}).
					AddRow(1, "testuser", "hashedpassword")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("testuser").
					WillReturnRows(rows)
			},
			result: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"},
		},
		{
			name:  "Unknown login returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "testuser",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("testuser").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			user: &domain.User{Login: "testuser", PasswordHash: "hashedpassword"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("testuser", "hashedpassword").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			user: &domain.User{Login: "testuser", PasswordHash: "hashedpassword"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("testuser", "hashedpassword").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			result, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}
