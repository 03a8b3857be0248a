package cmd

import (
	"database/sql"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lepinkainen/narou/internal/search"
	"github.com/lepinkainen/narou/internal/testutil"
	"github.com/lepinkainen/narou/internal/tui"
)

const novelsBody = `[{"allcount":2},
{"ncode":"N0001A","title":"転生したら剣でした","writer":"棚架ユウ","genre":201,"global_point":300},
{"ncode":"N0002B","title":"悪役令嬢","writer":"作者B","genre":101,"global_point":200}]`

type fakeAPI struct {
	novels  *testutil.RequestLog
	ranking *testutil.RequestLog
	history *testutil.RequestLog
	users   *testutil.RequestLog
}

// serveFakeAPI points every endpoint at its own fake server.
func serveFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{
		novels:  &testutil.RequestLog{},
		ranking: &testutil.RequestLog{},
		history: &testutil.RequestLog{},
		users:   &testutil.RequestLog{},
	}

	novels := testutil.NewAPIServer(t, f.novels, func(q url.Values) string {
		if q.Get("ncode") != "" {
			// deleted novels are simply missing from the answer
			return `[{"allcount":1},{"ncode":"N0001A","title":"転生したら剣でした","writer":"棚架ユウ"}]`
		}
		return novelsBody
	})
	r18 := testutil.NewAPIServer(t, nil, func(url.Values) string {
		return `[{"allcount":1},{"ncode":"N0003C","title":"夜","nocgenre":2}]`
	})
	rank := testutil.NewAPIServer(t, f.ranking, func(url.Values) string {
		return `[{"ncode":"N0001A","rank":1,"pt":300},{"ncode":"N9999ZZ","rank":2,"pt":200}]`
	})
	history := testutil.NewAPIServer(t, f.history, func(url.Values) string {
		return `[{"rtype":"20240101-d","pt":300,"rank":1},{"rtype":"20240102-w","pt":900,"rank":4}]`
	})
	users := testutil.NewAPIServer(t, f.users, func(url.Values) string {
		return `[{"allcount":1},{"userid":42,"name":"作者","novel_cnt":3,"review_cnt":1,"sum_global_point":999}]`
	})

	testutil.SetViperValue(t, "narou.endpoints.novel", novels.URL+"/novelapi/api/")
	testutil.SetViperValue(t, "narou.endpoints.novel18", r18.URL+"/novel18api/api/")
	testutil.SetViperValue(t, "narou.endpoints.ranking", rank.URL+"/rank/rankget/")
	testutil.SetViperValue(t, "narou.endpoints.ranking_history", history.URL+"/rank/rankin/")
	testutil.SetViperValue(t, "narou.endpoints.user", users.URL+"/userapi/api/")
	return f
}

func TestSearchCommand(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	err := runCLI(t, "search", "転生", "--genre", "201", "--not-word", "ハーレム", "--length", "1000-5000", "-l", "10", "--page", "1", "--order", "hyoka")
	require.NoError(t, err)

	require.Equal(t, 1, api.novels.Len())
	q := api.novels.Queries()[0]
	assert.Equal(t, "転生", q.Get("word"))
	assert.Equal(t, "201", q.Get("genre"))
	assert.Equal(t, "ハーレム", q.Get("notword"))
	assert.Equal(t, "1000-5000", q.Get("length"))
	assert.Equal(t, "10", q.Get("lim"))
	assert.Equal(t, "10", q.Get("st"))
	assert.Equal(t, "hyoka", q.Get("order"))
	assert.Equal(t, "json", q.Get("out"))
	assert.Equal(t, "5", q.Get("gzip"))
	assert.False(t, q.Has("of"))

	text := out.String()
	assert.Contains(t, text, "NCODE")
	assert.Contains(t, text, "N0001A")
	assert.Contains(t, text, "ハイファンタジー〔ファンタジー〕")
	assert.Contains(t, text, "novels 11-12 of 2")
}

func TestSearchCommandJSON(t *testing.T) {
	out := resetCmdState(t)
	serveFakeAPI(t)

	require.NoError(t, runCLI(t, "search", "--json", "-f", "title,ncode"))

	var res search.Results[search.NovelResult]
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, 2, res.AllCount)
	assert.Equal(t, 20, res.Limit)
	require.Len(t, res.Values, 2)
	assert.Equal(t, "悪役令嬢", res.Values[1].Title)
}

func TestSearchCommandRejectsUnknownField(t *testing.T) {
	resetCmdState(t)
	api := serveFakeAPI(t)

	err := runCLI(t, "search", "-f", "nope")
	require.ErrorContains(t, err, `unknown field "nope"`)
	assert.Zero(t, api.novels.Len())
}

func TestSearchCommandOverScriptTransport(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	require.NoError(t, runCLI(t, "--transport", "script", "search", "剣"))

	q := api.novels.Queries()[0]
	assert.Equal(t, "jsonp", q.Get("out"))
	assert.Equal(t, "0", q.Get("gzip"))
	assert.NotEmpty(t, q.Get("callback"))
	assert.Contains(t, out.String(), "転生したら剣でした")
}

func TestSearchCommandInteractive(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	var offered []search.NovelResult
	orig := selectNovel
	selectNovel = func(heading string, novels []search.NovelResult) (tui.SelectionResult, error) {
		offered = novels
		return tui.SelectionResult{Action: tui.ActionSelected, Selection: &novels[0]}, nil
	}
	t.Cleanup(func() { selectNovel = orig })

	require.NoError(t, runCLI(t, "search", "-i"))

	assert.Len(t, offered, 2)
	require.Equal(t, 1, api.history.Len())
	assert.Equal(t, "N0001A", api.history.Queries()[0].Get("ncode"))
	assert.Contains(t, out.String(), "20240102")
	assert.Contains(t, out.String(), "2 ranking appearances")
}

func TestSearchCommandInteractiveStop(t *testing.T) {
	resetCmdState(t)
	serveFakeAPI(t)

	orig := selectNovel
	selectNovel = func(string, []search.NovelResult) (tui.SelectionResult, error) {
		return tui.SelectionResult{Action: tui.ActionStopped}, nil
	}
	t.Cleanup(func() { selectNovel = orig })

	err := runCLI(t, "search", "-i")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped")
}

func TestR18Command(t *testing.T) {
	out := resetCmdState(t)
	serveFakeAPI(t)

	require.NoError(t, runCLI(t, "r18", "--site", "2"))
	assert.Contains(t, out.String(), "N0003C")
	assert.Contains(t, out.String(), "SITE")
}

func TestUsersCommand(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	require.NoError(t, runCLI(t, "users", "作者", "--min-novel", "2", "--order", "novelcnt", "-f", "u", "-f", "n"))

	q := api.users.Queries()[0]
	assert.Equal(t, "作者", q.Get("word"))
	assert.Equal(t, "2", q.Get("minnovel"))
	assert.Equal(t, "novelcnt", q.Get("order"))
	assert.Equal(t, "u-n", q.Get("of"))
	assert.Contains(t, out.String(), "999")
}

func TestRankingCommand(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	require.NoError(t, runCLI(t, "ranking", "--date", "20240101", "-f", "title", "-f", "writer"))

	require.Equal(t, 1, api.ranking.Len())
	assert.Equal(t, "20240101-d", api.ranking.Queries()[0].Get("rtype"))

	require.Equal(t, 1, api.novels.Len())
	q := api.novels.Queries()[0]
	assert.Equal(t, "N0001A-N9999ZZ", q.Get("ncode"))
	assert.Equal(t, "2", q.Get("lim"))
	assert.Equal(t, "t-w-n", q.Get("of"))

	text := out.String()
	assert.Contains(t, text, "棚架ユウ")
	assert.Contains(t, text, "(deleted)")
	assert.Contains(t, text, "ranking 20240101-d, 2 novels")
}

func TestRankingCommandExportsToDatastore(t *testing.T) {
	resetCmdState(t)
	serveFakeAPI(t)
	env := testutil.NewTestEnv(t)
	dbPath := env.Path("narou.db")

	require.NoError(t, runCLI(t, "--db", "--db-file", dbPath, "ranking", "--date", "20240101", "-t", "w"))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var ranked, novels int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM ranking WHERE rtype = '20240101-w'`).Scan(&ranked))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM novels`).Scan(&novels))
	assert.Equal(t, 2, ranked)
	assert.Equal(t, 1, novels)

	var title sql.NullString
	require.NoError(t, db.QueryRow(`SELECT title FROM ranking WHERE ncode = 'N9999ZZ'`).Scan(&title))
	assert.False(t, title.Valid)
}

func TestRankingCommandWritesFile(t *testing.T) {
	resetCmdState(t)
	serveFakeAPI(t)
	env := testutil.NewTestEnv(t)

	require.NoError(t, runCLI(t, "ranking", "--date", "20240101", "-o", env.Path("out", "rank.json")))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(env.ReadFileString("out/rank.json")), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "N0001A", rows[0]["ncode"])
	assert.Equal(t, "棚架ユウ", rows[0]["writer"])
	assert.Equal(t, float64(2), rows[1]["rank"])
	assert.NotContains(t, rows[1], "title")
}

func TestHistoryCommandYAML(t *testing.T) {
	out := resetCmdState(t)
	api := serveFakeAPI(t)

	require.NoError(t, runCLI(t, "history", "N0001A", "--yaml"))

	assert.Equal(t, "N0001A", api.history.Queries()[0].Get("ncode"))
	assert.Contains(t, out.String(), "type: d")
	assert.Contains(t, out.String(), "rank: 4")
}

func TestHistoryCommandExportsToDatastore(t *testing.T) {
	resetCmdState(t)
	serveFakeAPI(t)
	env := testutil.NewTestEnv(t)
	dbPath := testutil.SetupDatastore(t, env)

	require.NoError(t, runCLI(t, "history", "N0001A"))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var date string
	require.NoError(t, db.QueryRow(`SELECT date FROM ranking_history WHERE ncode = 'N0001A' AND type = 'w'`).Scan(&date))
	assert.Equal(t, "20240102", date)
}
