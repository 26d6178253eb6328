package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/VSayann/PokeScope-v2/internal/database"
	"github.com/VSayann/PokeScope-v2/internal/session"
	"github.com/VSayann/PokeScope-v2/internal/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	old := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = old
		db.Close()
	})
	return mock
}

func newAuthRouter(t *testing.T) (*gin.Engine, *Handler) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	h := NewHandler(session.NewMemoryStore(), time.Hour)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.RequireAuth(), h.Logout)
	r.GET("/api/auth/user", h.RequireAuth(), h.Me)
	r.PUT("/api/auth/profile", h.RequireAuth(), h.UpdateProfile)
	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, h *Handler, userID uint) *http.Cookie {
	t.Helper()
	sid, err := h.Sessions.Create(context.Background(), userID, time.Hour)
	require.NoError(t, err)
	token, err := SignSessionToken(sid, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: CookieName, Value: token}
}

func TestRegister_Success(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1 OR username = \$2`).
		WithArgs("ash@pallet.town", "ash").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"ash@pallet.town","username":"ash","password":"pikachu"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ash"`)
	assert.NotContains(t, w.Body.String(), "password")

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "register establishes a session")
	assert.Equal(t, CookieName, cookies[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_UsernameTooShort(t *testing.T) {
	newMockDB(t)
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"ash@pallet.town","username":"a","password":"pikachu"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_Duplicate(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"ash@pallet.town","username":"ash","password":"pikachu"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_RaceLosesToConcurrentInsert(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	// pre-check passes but the insert hits the unique constraint
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"ash@pallet.town","username":"ash","password":"pikachu"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already taken")
}

func TestRegister_InsertFailureIsServerError(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New("connection reset by peer"))

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"email":"ash@pallet.town","username":"ash","password":"pikachu"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "already taken")
}

func userRows(t *testing.T, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := users.HashPassword(password)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "username", "password_hash", "profile_image_url"}).
		AddRow(7, "ash@pallet.town", "ash", hash, "")
}

func TestLogin_ByEmailOrUsername(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 OR username = \$2`).
		WillReturnRows(userRows(t, "pikachu"))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"identifier":"ash","password":"pikachu"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
	require.NotEmpty(t, w.Result().Cookies())
}

func TestLogin_WrongPassword(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 OR username = \$2`).
		WillReturnRows(userRows(t, "other-password"))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"identifier":"ash","password":"pikachu"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_UnknownIdentifier(t *testing.T) {
	mock := newMockDB(t)
	r, _ := newAuthRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 OR username = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"identifier":"ghost","password":"pikachu"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	mock := newMockDB(t)
	r, h := newAuthRouter(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(userRows(t, "pikachu"))

	w := doJSON(t, r, http.MethodGet, "/api/auth/user", "", sessionCookie(t, h, 7))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ash"`)
}

func TestMe_NoSession(t *testing.T) {
	newMockDB(t)
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/user", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_TamperedCookie(t *testing.T) {
	newMockDB(t)
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/user", "",
		&http.Cookie{Name: CookieName, Value: "not-a-signed-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_DestroysSession(t *testing.T) {
	newMockDB(t)
	r, h := newAuthRouter(t)

	cookie := sessionCookie(t, h, 7)
	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	// the same cookie no longer authenticates
	w = doJSON(t, r, http.MethodGet, "/api/auth/user", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfile_Partial(t *testing.T) {
	mock := newMockDB(t)
	r, h := newAuthRouter(t)

	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "username", "profile_image_url"}).
			AddRow(7, "ash@pallet.town", "ash", "http://img/ash.png"))

	w := doJSON(t, r, http.MethodPut, "/api/auth/profile",
		`{"profileImageUrl":"http://img/ash.png"}`, sessionCookie(t, h, 7))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http://img/ash.png")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_UsernameConflict(t *testing.T) {
	mock := newMockDB(t)
	r, h := newAuthRouter(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE username = \$1 AND id <> \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := doJSON(t, r, http.MethodPut, "/api/auth/profile",
		`{"username":"misty"}`, sessionCookie(t, h, 7))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username already taken")
}
