package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/a6w/mapmo/internal/errs"
	"github.com/a6w/mapmo/internal/store"
)

func newMockClient(t *testing.T) (*Client, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	c := NewClient(&DB{Pool: mock})
	c.SetClock(func() time.Time { return time.Unix(1700000000, 0) })
	return c, mock
}

func TestClient_Query(t *testing.T) {
	c, mock := newMockClient(t)

	id1 := uuid.Must(uuid.NewV4())
	id2 := uuid.Must(uuid.NewV4())
	rows := pgxmock.NewRows([]string{"id", "fields"}).
		AddRow(id1, []byte(`{"name":"a","userID":"u1"}`)).
		AddRow(id2, []byte(`{"name":"b","userID":"u1"}`))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, fields FROM documents`)).
		WithArgs("label", "userID", "u1").
		WillReturnRows(rows)

	docs, err := c.Query(context.Background(), "label", "userID", "u1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, id1.String(), docs[0].ID)
	name, ok := docs[0].GetString("name")
	require.True(t, ok)
	require.Equal(t, "a", name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetByID(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT fields FROM documents WHERE collection=$1 AND id=$2`)).
		WithArgs("label", id).
		WillReturnRows(pgxmock.NewRows([]string{"fields"}).
			AddRow([]byte(`{"name":"a","location":{"lat":1.5,"lng":2.5}}`)))

	doc, err := c.GetByID(context.Background(), "label", id.String())
	require.NoError(t, err)
	require.Equal(t, id.String(), doc.ID)
	gp, ok := doc.GetGeoPoint("location")
	require.True(t, ok)
	require.Equal(t, 1.5, gp.Lat)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetByID_NotFound(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT fields FROM documents`)).
		WithArgs("label", id).
		WillReturnError(pgx.ErrNoRows)

	_, err := c.GetByID(context.Background(), "label", id.String())
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_GetByID_BadID(t *testing.T) {
	c, _ := newMockClient(t)

	// A non-UUID id cannot exist in the table; no round trip happens.
	_, err := c.GetByID(context.Background(), "label", "not-a-uuid")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestClient_Add_ResolvesMarkers(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3)`)).
		WithArgs("mapmo", pgxmock.AnyArg(), []byte(`{"content":"milk","updatedAt":1700000000}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	doc, err := c.Add(context.Background(), "mapmo", store.Fields{
		"content":   "milk",
		"updatedAt": store.ServerTimestamp,
	})
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)

	// The returned document carries the resolved timestamp.
	ts, ok := doc.GetTimestamp("updatedAt")
	require.True(t, ok)
	require.Equal(t, int64(1700000000), ts)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Update_ReturnsMergedFields(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE documents SET fields = fields || $3`)).
		WithArgs("mapmo", id, []byte(`{"content":"bread"}`)).
		WillReturnRows(pgxmock.NewRows([]string{"fields"}).
			AddRow([]byte(`{"content":"bread","userID":"u1"}`)))

	doc, err := c.Update(context.Background(), "mapmo", id.String(), store.Fields{"content": "bread"})
	require.NoError(t, err)

	content, _ := doc.GetString("content")
	require.Equal(t, "bread", content)
	owner, _ := doc.GetString("userID")
	require.Equal(t, "u1", owner)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Update_NotFound(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE documents`)).
		WithArgs("mapmo", id, []byte(`{"content":"x"}`)).
		WillReturnError(pgx.ErrNoRows)

	_, err := c.Update(context.Background(), "mapmo", id.String(), store.Fields{"content": "x"})
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Delete(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents WHERE collection=$1 AND id=$2`)).
		WithArgs("label", id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, c.Delete(context.Background(), "label", id.String()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_Delete_NotFound(t *testing.T) {
	c, mock := newMockClient(t)

	id := uuid.Must(uuid.NewV4())
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents`)).
		WithArgs("label", id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, c.Delete(context.Background(), "label", id.String()), errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
