package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/server"
)

type ServerSuite struct {
	suite.Suite
	srv  *server.Server
	hook *test.Hook
}

func (s *ServerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *ServerSuite) SetupTest() {
	g, err := grid.ParseString(config.DefaultMaze)
	s.Require().NoError(err)

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	s.hook = hook
	s.srv, err = server.New(server.Config{Logger: log, Maze: g, MaxCells: 1000})
	s.Require().NoError(err)
}

func (s *ServerSuite) do(method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.srv.Handler().ServeHTTP(rec, req)

	return rec
}

func (s *ServerSuite) post(body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	return s.do(http.MethodPost, "/api/solve", bytes.NewReader(raw))
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/healthz", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *ServerSuite) TestAlgorithms() {
	rec := s.do(http.MethodGet, "/api/algorithms", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"algorithms":["bfs","dfs","astar"]}`, rec.Body.String())
}

// TestSolveDefaultMaze runs every strategy on the built-in maze.
func (s *ServerSuite) TestSolveDefaultMaze() {
	rec := s.post(map[string]any{})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp server.SolveResponse
	s.decode(rec, &resp)
	s.NotEqual(uuid.Nil, resp.ID)
	s.Equal([2]int{0, 0}, resp.Start)
	s.Equal([2]int{9, 9}, resp.End)
	s.Require().Len(resp.Results, 3)

	lengths := map[string]int{}
	for _, r := range resp.Results {
		s.True(r.Found, r.Algorithm)
		s.Equal("found", r.Status)
		s.Equal(r.Length, len(r.Path))
		s.Equal([2]int{0, 0}, r.Path[0])
		s.Equal([2]int{9, 9}, r.Path[len(r.Path)-1])
		s.GreaterOrEqual(r.ExecutionTimeMs, 0.0)
		lengths[r.Algorithm] = r.Length
	}
	s.Equal(19, lengths["bfs"])
	s.Equal(19, lengths["astar"])
	s.GreaterOrEqual(lengths["dfs"], 19)
}

func (s *ServerSuite) TestSolvePostedMaze() {
	rec := s.post(server.SolveRequest{
		Maze:      []string{"000", "010", "000"},
		Start:     &[2]int{0, 0},
		Algorithm: "BFS",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp server.SolveResponse
	s.decode(rec, &resp)
	s.Require().Len(resp.Results, 1)
	s.Equal("bfs", resp.Results[0].Algorithm)
	s.Equal([2]int{2, 2}, resp.End)
	s.Equal([][2]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, resp.Results[0].Path)
}

// TestSolveNoPath is a 200 with found=false and an empty path.
func (s *ServerSuite) TestSolveNoPath() {
	rec := s.post(server.SolveRequest{Maze: []string{"00100", "00100"}, Algorithm: "astar"})
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp server.SolveResponse
	s.decode(rec, &resp)
	s.False(resp.Results[0].Found)
	s.Equal("no_path", resp.Results[0].Status)
	s.Empty(resp.Results[0].Path)

	rec = s.post(server.SolveRequest{Maze: []string{"00", "00"}, End: &[2]int{5, 5}})
	s.decode(rec, &resp)
	for _, r := range resp.Results {
		s.Equal("invalid_endpoint", r.Status)
	}
}

func (s *ServerSuite) TestSolveRejects() {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{"maze":`, "bad request"},
		{"bad glyph", `{"maze":["01x"]}`, grid.ErrBadGlyph.Error()},
		{"ragged", `{"maze":["01","0"]}`, grid.ErrNonRectangular.Error()},
		{"unknown algorithm", `{"algorithm":"dijkstra"}`, "unknown strategy"},
		{"too large", `{"maze":["` + strings.Repeat("0", 1001) + `"]}`, server.ErrMazeTooLarge.Error()},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/api/solve", strings.NewReader(tc.body))
			s.Equal(http.StatusBadRequest, rec.Code)

			var body map[string]string
			s.decode(rec, &body)
			s.Contains(body["error"], tc.want)
		})
	}
}

// TestRequestID echoes a valid client ID and mints one otherwise.
func (s *ServerSuite) TestRequestID() {
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, id)
	rec := httptest.NewRecorder()
	s.srv.Handler().ServeHTTP(rec, req)
	s.Equal(id, rec.Header().Get(server.RequestIDHeader))

	rec = s.do(http.MethodGet, "/healthz", nil)
	_, err := uuid.Parse(rec.Header().Get(server.RequestIDHeader))
	s.NoError(err)
}

// TestAccessLog checks one structured line per request.
func (s *ServerSuite) TestAccessLog() {
	s.hook.Reset()
	s.do(http.MethodGet, "/api/algorithms", nil)

	entry := s.hook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.InfoLevel, entry.Level)
	s.Equal("/api/algorithms", entry.Data["path"])
	s.Equal(http.StatusOK, entry.Data["status"])
	s.NotEmpty(entry.Data["request_id"])

	s.hook.Reset()
	s.do(http.MethodPost, "/api/solve", strings.NewReader(`{`))
	s.Equal(logrus.WarnLevel, s.hook.LastEntry().Level)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestNew_RequiresMaze(t *testing.T) {
	_, err := server.New(server.Config{})
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	assert.NotNil(t, err)
}
