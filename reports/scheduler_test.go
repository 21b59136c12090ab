package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk-server/config"
	"kiosk-server/hub"
)

func TestScheduler_StartRejectsInvalidSchedule(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	cfg := &config.Config{ReportSchedule: "not a cron spec"}
	s := NewScheduler(NewGenerator(db, time.UTC), hub.New(), cfg, time.UTC)

	assert.Error(t, s.Start())
}

func TestScheduler_RunSkipsBroadcastWithoutClients(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	mock.ExpectQuery("SELECT product_name").
		WillReturnRows(sqlmock.NewRows([]string{"product_name", "total_quantity", "total_sales"}))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"daily_revenue", "total_orders"}).AddRow("0", 0))

	cfg := &config.Config{ReportSchedule: "30 19 * * *", ReportURL: "/send-daily-whatsapp"}
	s := NewScheduler(NewGenerator(db, time.UTC), hub.New(), cfg, time.UTC)

	// 没有在线客户端时只生成报表，不广播
	s.run()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduler_RunBroadcastsReportReady(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() {
		err := db.Close()
		if err != nil {
		}
	}()

	mock.ExpectQuery("SELECT product_name").
		WillReturnRows(sqlmock.NewRows([]string{"product_name", "total_quantity", "total_sales"}).
			AddRow("Cola", 4, "30.00"))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"daily_revenue", "total_orders"}).AddRow("30.00", 2))

	h := hub.New()
	srv := httptest.NewServer(http.HandlerFunc(h.HandleConnection))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer func() {
		err := conn.Close()
		if err != nil {
		}
	}()

	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	cfg := &config.Config{
		ReportSchedule: "30 19 * * *",
		ReportURL:      "/send-daily-whatsapp",
		ReportPhone:    "972500000000",
	}
	s := NewScheduler(NewGenerator(db, time.UTC), h, cfg, time.UTC)
	s.run()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, hub.EventDailyReportReady, event.Event)
	assert.Equal(t, "/send-daily-whatsapp", event.Data["url"])
	assert.NotEmpty(t, event.Data["message"])
}
