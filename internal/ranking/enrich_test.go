package ranking

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
	"github.com/lepinkainen/narou/internal/transport"
)

type titleRow struct {
	NCode string `json:"ncode"`
	Title string `json:"title"`
}

// fakeNovelAPI answers novel searches from a fixed catalog and records every
// request it saw.
type fakeNovelAPI struct {
	mu       sync.Mutex
	catalog  map[string]string
	requests []params.Bag
	fail     bool
}

func (f *fakeNovelAPI) Execute(_ context.Context, _ string, p params.Bag) (json.RawMessage, error) {
	f.mu.Lock()
	f.requests = append(f.requests, p)
	f.mu.Unlock()

	if f.fail {
		return nil, stdErrors.New("boom")
	}

	rows := []string{}
	for _, code := range strings.Split(p.Get("ncode"), "-") {
		if title, ok := f.catalog[code]; ok {
			rows = append(rows, fmt.Sprintf(`{"ncode":%q,"title":%q}`, code, title))
		}
	}
	// reverse to show the join does not depend on response order
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return json.RawMessage(fmt.Sprintf(`[{"allcount":%d}%s]`, len(rows), prefixComma(rows))), nil
}

func prefixComma(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return "," + strings.Join(rows, ",")
}

func TestEnrichDeletedNovel(t *testing.T) {
	t.Parallel()

	fake := &fakeNovelAPI{catalog: map[string]string{"N0001A": "one", "N0002B": "two"}}
	api := search.NewAPI(fake, search.Endpoints{})

	rows := []Row{
		{NCode: "N0001A", Rank: 1, Pt: 300},
		{NCode: "N9999ZZ", Rank: 2, Pt: 200},
		{NCode: "N0002B", Rank: 3, Pt: 100},
	}

	out, err := Enrich[titleRow](context.Background(), NewEnricher(api, 0), rows, []params.Field{params.FieldTitle})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, rows[0], out[0].Row)
	require.NotNil(t, out[0].Novel)
	assert.Equal(t, "one", out[0].Novel.Title)

	assert.Equal(t, "N9999ZZ", out[1].NCode)
	assert.Nil(t, out[1].Novel)

	require.NotNil(t, out[2].Novel)
	assert.Equal(t, "two", out[2].Novel.Title)

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Equal(t, "N0001A-N9999ZZ-N0002B", req.Get("ncode"))
	assert.Equal(t, "t-n", req.Get(params.KeyOf))
	assert.Equal(t, "3", req.Get(params.KeyLimit))
	assert.False(t, req.Has(params.KeyOpt))
}

func TestEnrichBatches(t *testing.T) {
	t.Parallel()

	catalog := map[string]string{}
	rows := make([]Row, 7)
	for i := range rows {
		code := fmt.Sprintf("N%04dA", i)
		catalog[code] = fmt.Sprintf("title %d", i)
		rows[i] = Row{NCode: code, Rank: i + 1}
	}

	fake := &fakeNovelAPI{catalog: catalog}
	api := search.NewAPI(fake, search.Endpoints{})

	out, err := Enrich[titleRow](context.Background(), NewEnricher(api, 3), rows, nil, params.OptionalWeeklyUnique)
	require.NoError(t, err)

	require.Len(t, fake.requests, 3)
	limits := []string{}
	for _, req := range fake.requests {
		limits = append(limits, req.Get(params.KeyLimit))
		assert.False(t, req.Has(params.KeyOf))
		assert.Equal(t, "weekly", req.Get(params.KeyOpt))
	}
	assert.ElementsMatch(t, []string{"3", "3", "1"}, limits)

	for i, e := range out {
		assert.Equal(t, i+1, e.Rank)
		require.NotNil(t, e.Novel)
		assert.Equal(t, fmt.Sprintf("title %d", i), e.Novel.Title)
	}
}

func TestEnrichEmpty(t *testing.T) {
	t.Parallel()

	fake := &fakeNovelAPI{}
	out, err := Enrich[titleRow](context.Background(), NewEnricher(search.NewAPI(fake, search.Endpoints{}), 0), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, fake.requests)
}

func TestEnrichFailureFailsWholeCall(t *testing.T) {
	t.Parallel()

	fake := &fakeNovelAPI{fail: true}
	rows := []Row{{NCode: "N1"}, {NCode: "N2"}}
	_, err := Enrich[titleRow](context.Background(), NewEnricher(search.NewAPI(fake, search.Endpoints{}), 1), rows, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestNewEnricherClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBatchSize, NewEnricher(nil, 0).BatchSize())
	assert.Equal(t, MaxLimit, NewEnricher(nil, 1000).BatchSize())
	assert.Equal(t, 10, NewEnricher(nil, 10).BatchSize())
}

func TestEnrichedMarshalJSON(t *testing.T) {
	t.Parallel()

	e := Enriched[search.NovelResult]{
		Row:   Row{NCode: "N1", Rank: 1, Pt: 50},
		Novel: &search.NovelResult{NCode: "n1", Title: "T", GlobalPoint: 10},
	}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ncode":"N1","rank":1,"pt":50,"title":"T","global_point":10}`, string(data))

	missing, err := json.Marshal(Enriched[search.NovelResult]{Row: Row{NCode: "N2", Rank: 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ncode":"N2","rank":2,"pt":0}`, string(missing))
}

func TestExecuteWithFields(t *testing.T) {
	t.Parallel()

	fake := &fakeNovelAPI{catalog: map[string]string{"N0001A": "one"}}
	var rankingBag params.Bag
	api := search.NewAPI(transport.Func(func(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error) {
		if endpoint == search.DefaultEndpoints().Ranking {
			rankingBag = p
			return json.RawMessage(`[{"ncode":"N0001A","rank":1,"pt":9}]`), nil
		}
		return fake.Execute(ctx, endpoint, p)
	}), search.Endpoints{})

	b := New(api).WithClock(func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local) })
	out, err := ExecuteWithFields[titleRow](context.Background(), b, []params.Field{params.FieldTitle})
	require.NoError(t, err)

	assert.Equal(t, "20240229-d", rankingBag.Get("rtype"))
	require.Len(t, out, 1)
	assert.Equal(t, "one", out[0].Novel.Title)
}
