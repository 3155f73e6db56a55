package repository

import (
	"Yatube/internal/model"
	"Yatube/internal/pkg/database"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := database.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}))
	require.NoError(t, err)
	return db, mock
}

func TestGetPostNotFoundReturnsNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "author_id"}))

	post, err := repo.GetPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountPostsForFollowerUsesSubquery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `posts` WHERE author_id IN \\(SELECT .*author_id.* FROM `follows`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountPosts(context.Background(), PostFilter{FollowerID: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListImageKeys(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery("SELECT `image` FROM `posts` WHERE image <> \\?").
		WillReturnRows(sqlmock.NewRows([]string{"image"}).AddRow("posts/a.jpg").AddRow("posts/b.png"))

	keys, err := repo.ListImageKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"posts/a.jpg", "posts/b.png"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFollowIgnoresDuplicates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `follows`.*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateFollow(context.Background(), &model.Follow{UserID: 1, AuthorID: 2})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFollow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `follows` WHERE user_id = \\? AND author_id = \\?").
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteFollow(context.Background(), 1, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry 'leo' for key 'idx_username'"})
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &model.User{Username: "leo", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_real\\`, escapeLike(`100% _real\`))
}
