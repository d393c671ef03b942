package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/registrations/export", nil, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExportWorkbook(t *testing.T) {
	app, _ := newTestApp(t)

	payload := validPayload()
	resp := doJSON(t, app, http.MethodPost, "/api/registrations", payload, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	cookie := login(t, app)
	resp = doJSON(t, app, http.MethodGet, "/api/registrations/export", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Sansa_Registrations_")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Registrations")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one registration

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Student Name", rows[0][1])
	assert.Equal(t, "Rahul Kumar", rows[1][1])
	assert.Equal(t, "9876543210", rows[1][6])
}
