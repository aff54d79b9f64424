package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pdrpinto/tilepath"
	"github.com/pdrpinto/tilepath/grid"
	"github.com/pdrpinto/tilepath/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() *grid.Map {
	return grid.MustParse(
		"S.....",
		".####.",
		"......",
		"####..",
		".....G",
	)
}

func newTestServer(t *testing.T, base *grid.Map) (*Server, *httptest.Server) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Server.StepInterval = time.Millisecond
	cfg.Map.Seed = 11

	srv, err := New(cfg, base, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestIndex(t *testing.T) {
	_, ts := newTestServer(t, testMap())

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "<canvas")
}

func TestNextSteps(t *testing.T) {
	_, ts := newTestServer(t, testMap())

	var first snapshot
	getJSON(t, ts.URL+"/next", &first)
	assert.Equal(t, 1, first.Step)
	assert.Equal(t, 6, first.W)
	assert.Equal(t, 5, first.H)
	assert.Equal(t, [2]int{0, 0}, first.Start)
	assert.Equal(t, [2]int{5, 4}, first.Goal)
	require.NotNil(t, first.Current)
	assert.Equal(t, [2]int{0, 0}, *first.Current)
	assert.Equal(t, [][2]int{{0, 0}}, first.Closed)
	assert.False(t, first.Done)

	var last snapshot
	for i := 0; i < 100 && !last.Done; i++ {
		getJSON(t, ts.URL+"/next", &last)
	}
	m := testMap()
	want, err := tilepath.NewPathFinder(m.Tiles).Search(t.Context(), *m.Start, *m.Goal)
	require.NoError(t, err)
	assert.True(t, last.Found)
	assert.Equal(t, "found", last.State)
	assert.Equal(t, want.TotalCost, last.Cost)
	assert.Equal(t, pointsToList(want.Path), last.Path)

	resp, err := http.Post(ts.URL+"/next", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPath(t *testing.T) {
	_, ts := newTestServer(t, testMap())

	var full pathResponse
	getJSON(t, ts.URL+"/path", &full)
	assert.True(t, full.Found)
	assert.Equal(t, [2]int{0, 0}, full.Path[0])
	assert.Equal(t, [2]int{5, 4}, full.Path[len(full.Path)-1])

	var short pathResponse
	getJSON(t, ts.URL+"/path?sx=0&sy=2&gx=2&gy=2", &short)
	assert.True(t, short.Found)
	assert.Equal(t, 2*tilepath.CostStraight, short.Cost)
	assert.Equal(t, [][2]int{{0, 2}, {1, 2}, {2, 2}}, short.Path)

	var blocked pathResponse
	getJSON(t, ts.URL+"/path?gx=1&gy=1", &blocked)
	assert.False(t, blocked.Found)
	assert.Equal(t, "rejected", blocked.State)
	assert.Empty(t, blocked.Path)

	resp := getJSON(t, ts.URL+"/path?sx=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInit(t *testing.T) {
	_, ts := newTestServer(t, testMap())

	var first, second map[string]any
	getJSON(t, ts.URL+"/init?w=20&h=12&seed=3", &first)
	getJSON(t, ts.URL+"/init?w=20&h=12&seed=3", &second)
	assert.Equal(t, true, first["ok"])
	assert.EqualValues(t, 20, first["w"])
	assert.EqualValues(t, 12, first["h"])
	assert.Equal(t, first, second)

	var step snapshot
	getJSON(t, ts.URL+"/next", &step)
	assert.Equal(t, 20, step.W)

	var back map[string]any
	getJSON(t, ts.URL+"/init", &back)
	assert.EqualValues(t, 6, back["w"])
}

func TestInitRejectsOversizedMap(t *testing.T) {
	srv, ts := newTestServer(t, testMap())
	srv.cfg.Server.MaxCells = 10_000

	for _, query := range []string{
		"w=8000&h=8000&clusters=0",
		"w=101&h=100",
		"w=4294967296&h=4294967296",
	} {
		resp := getJSON(t, ts.URL+"/init?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
	}

	var ok map[string]any
	resp := getJSON(t, ts.URL+"/init?w=100&h=100&seed=2", &ok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 100, ok["w"])

	getJSON(t, ts.URL+"/init", nil)
	resp = getJSON(t, ts.URL+"/init?w=8000&h=8000", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var step snapshot
	getJSON(t, ts.URL+"/next", &step)
	assert.Equal(t, 6, step.W)
	assert.Equal(t, 5, step.H)
}

func TestRandomDefaultSession(t *testing.T) {
	_, ts := newTestServer(t, nil)

	var step snapshot
	getJSON(t, ts.URL+"/next", &step)
	assert.Equal(t, 40, step.W)
	assert.Equal(t, 24, step.H)
	assert.NotEqual(t, step.Start, step.Goal)
}

func TestWebsocketStream(t *testing.T) {
	_, ts := newTestServer(t, testMap())

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	var snapshots []snapshot
	for {
		require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
		var s snapshot
		require.NoError(t, ws.ReadJSON(&s))
		snapshots = append(snapshots, s)
		if s.Done {
			break
		}
	}

	require.NotEmpty(t, snapshots)
	for i, s := range snapshots {
		assert.Equal(t, i+1, s.Step)
	}
	last := snapshots[len(snapshots)-1]
	assert.True(t, last.Found)

	m := testMap()
	want := tilepath.NewPathFinder(m.Tiles).FindPath(*m.Start, *m.Goal)
	assert.Equal(t, pointsToList(want), last.Path)
}
