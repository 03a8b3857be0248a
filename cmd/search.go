package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lepinkainen/narou/internal/cmdutil"
	"github.com/lepinkainen/narou/internal/datastore"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
)

// SearchCmd searches the general novel API.
type SearchCmd struct {
	Word        string `arg:"" optional:"" help:"Words to search for"`
	BigGenre    []int  `name:"big-genre" help:"Big genre codes"`
	NotBigGenre []int  `name:"not-big-genre" help:"Big genre codes to exclude"`
	Genre       []int  `help:"Genre codes"`
	NotGenre    []int  `name:"not-genre" help:"Genre codes to exclude"`
	UserID      []int  `name:"userid" help:"Only novels by these users"`
	R15         bool   `name:"r15" help:"Only R15 novels"`
	Interactive bool   `short:"i" help:"Pick a novel interactively and show its ranking history"`

	NovelFilterFlags `embed:""`
	PageFlags        `embed:""`
	OutputFlags      `embed:""`
}

func (s *SearchCmd) Run(ctx context.Context) error {
	api, _, closeFn, err := newAPI(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	b := api.Search(s.Word).
		BigGenre(toEnum[params.BigGenre](s.BigGenre)...).
		NotBigGenre(toEnum[params.BigGenre](s.NotBigGenre)...).
		Genre(toEnum[params.Genre](s.Genre)...).
		NotGenre(toEnum[params.Genre](s.NotGenre)...).
		UserID(s.UserID...)
	if s.R15 {
		b = b.IsR15(true)
	}
	b, err = applyNovelFilters(b, s.NovelFilterFlags, s.PageFlags)
	if err != nil {
		return err
	}

	res, err := b.Execute(ctx)
	if err != nil {
		return err
	}

	if s.Interactive {
		return pickNovel(ctx, api, fmt.Sprintf("%d novels match %q", res.AllCount, s.Word), res.Values, s.OutputFlags)
	}

	if err := cmdutil.WriteToDatastore(ctx, res.Values, datastore.NovelsSchema, datastore.NovelsTable, "novels", novelRecord[search.NovelResult]); err != nil {
		return err
	}

	return s.emit(res, func() string {
		rows := make([][]string, len(res.Values))
		for i, n := range res.Values {
			rows[i] = novelRow(n)
		}
		return renderTable(novelHeaders, rows, resultSummary(res.Length, res.AllCount, res.Start, "novels"))
	})
}

// R18Cmd searches the R18 novel API.
type R18Cmd struct {
	Word        string `arg:"" optional:"" help:"Words to search for"`
	Site        []int  `help:"Site codes: 1 Nocturne, 2 Moonlight, 3 Moonlight BL, 4 Midnight"`
	NotSite     []int  `name:"not-site" help:"Site codes to exclude"`
	XID         []int  `name:"xid" help:"Only novels by these X user ids"`
	Interactive bool   `short:"i" help:"Pick a novel interactively"`

	NovelFilterFlags `embed:""`
	PageFlags        `embed:""`
	OutputFlags      `embed:""`
}

func (r *R18Cmd) Run(ctx context.Context) error {
	api, _, closeFn, err := newAPI(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	b := api.SearchR18(r.Word).
		R18Site(toEnum[params.R18Site](r.Site)...).
		NotR18Site(toEnum[params.R18Site](r.NotSite)...).
		XID(r.XID...)
	b, err = applyNovelFilters(b, r.NovelFilterFlags, r.PageFlags)
	if err != nil {
		return err
	}

	res, err := b.Execute(ctx)
	if err != nil {
		return err
	}

	if r.Interactive {
		novels := make([]search.NovelResult, len(res.Values))
		for i, n := range res.Values {
			novels[i] = n.NovelResult
		}
		selection, err := selectNovel(fmt.Sprintf("%d R18 novels match %q", res.AllCount, r.Word), novels)
		if err != nil {
			return err
		}
		if chosen := chosenNovel(selection); chosen != nil {
			return r.emit(chosen, func() string { return novelDetail(*chosen) })
		}
		return selectionError(selection)
	}

	if err := cmdutil.WriteToDatastore(ctx, res.Values, datastore.NovelsSchema, datastore.NovelsTable, "R18 novels", novelRecord[search.R18NovelResult]); err != nil {
		return err
	}

	return r.emit(res, func() string {
		rows := make([][]string, len(res.Values))
		for i, n := range res.Values {
			rows[i] = append(novelRow(n.NovelResult), siteLabel(n.NocGenre))
		}
		headers := append(append([]string{}, novelHeaders...), "SITE")
		return renderTable(headers, rows, resultSummary(res.Length, res.AllCount, res.Start, "novels"))
	})
}

// UsersCmd searches the user API.
type UsersCmd struct {
	Word      string   `arg:"" optional:"" help:"Words to search for in user names"`
	NotWord   string   `help:"Exclude users whose names contain these words"`
	UserID    int      `name:"userid" help:"Only this user"`
	Name1st   string   `name:"name1st" help:"First kana of the user name's reading"`
	MinNovel  int      `help:"Minimum number of novels"`
	MaxNovel  int      `help:"Maximum number of novels"`
	MinReview int      `help:"Minimum number of reviews"`
	MaxReview int      `help:"Maximum number of reviews"`
	Order     string   `help:"Sort order: new, novelcnt, reviewcnt, novellength, sumglobalpoint or old"`
	Fields    []string `short:"f" help:"User field codes to return (u, n, y, 1, nc, rc, nl, sp)"`

	PageFlags   `embed:""`
	OutputFlags `embed:""`
}

func (u *UsersCmd) Run(ctx context.Context) error {
	api, _, closeFn, err := newAPI(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	b := api.SearchUsers(u.Word)
	if u.NotWord != "" {
		b = b.NotWord(u.NotWord)
	}
	if u.UserID > 0 {
		b = b.UserID(u.UserID)
	}
	if u.Name1st != "" {
		b = b.Name1st(u.Name1st)
	}
	if u.MinNovel > 0 {
		b = b.MinNovel(u.MinNovel)
	}
	if u.MaxNovel > 0 {
		b = b.MaxNovel(u.MaxNovel)
	}
	if u.MinReview > 0 {
		b = b.MinReview(u.MinReview)
	}
	if u.MaxReview > 0 {
		b = b.MaxReview(u.MaxReview)
	}
	if u.Order != "" {
		b = b.Order(params.UserOrder(u.Order))
	}
	fields := make([]params.UserField, len(u.Fields))
	for i, f := range u.Fields {
		fields[i] = params.UserField(f)
	}
	b = b.Fields(fields...).Page(u.Page, u.Limit).Gzip(params.GzipLevel(u.Gzip))

	res, err := b.Execute(ctx)
	if err != nil {
		return err
	}

	if err := cmdutil.WriteToDatastore(ctx, res.Values, datastore.UsersSchema, datastore.UsersTable, "users", func(user search.UserResult) map[string]any {
		return cmdutil.StructToMap(user, cmdutil.StructToMapOptions{})
	}); err != nil {
		return err
	}

	return u.emit(res, func() string {
		rows := make([][]string, len(res.Values))
		for i, user := range res.Values {
			rows[i] = []string{
				strconv.Itoa(user.UserID),
				user.Name,
				strconv.Itoa(user.NovelCnt),
				strconv.Itoa(user.ReviewCnt),
				strconv.Itoa(user.SumGlobalPoint),
			}
		}
		return renderTable([]string{"USERID", "NAME", "NOVELS", "REVIEWS", "POINTS"}, rows,
			resultSummary(res.Length, res.AllCount, res.Start, "users"))
	})
}
