package params

// BooleanNumber is the 0/1 encoding the API uses for flags.
type BooleanNumber int

const (
	False BooleanNumber = 0
	True  BooleanNumber = 1
)

// Bool converts a Go bool to its wire form.
func Bool(b bool) BooleanNumber {
	if b {
		return True
	}
	return False
}

// GzipLevel is the requested response compression level. Level 0 asks for
// uncompressed JSON.
type GzipLevel int

const (
	GzipNone    GzipLevel = 0
	GzipDefault GzipLevel = 5
	GzipMax     GzipLevel = 5
)

// BigGenre is the top-level genre of a novel.
type BigGenre int

const (
	BigGenreRenai    BigGenre = 1
	BigGenreFantasy  BigGenre = 2
	BigGenreBungei   BigGenre = 3
	BigGenreSf       BigGenre = 4
	BigGenreSonota   BigGenre = 99
	BigGenreNonGenre BigGenre = 98
)

// Genre is the detailed genre of a novel.
type Genre int

const (
	GenreRenaiIsekai        Genre = 101
	GenreRenaiGenjitsusekai Genre = 102
	GenreFantasyHigh        Genre = 201
	GenreFantasyLow         Genre = 202
	GenreBungeiJyunbungei   Genre = 301
	GenreBungeiHumanDrama   Genre = 302
	GenreBungeiHistory      Genre = 303
	GenreBungeiSuiri        Genre = 304
	GenreBungeiHorror       Genre = 305
	GenreBungeiAction       Genre = 306
	GenreBungeiComedy       Genre = 307
	GenreSfVRGame           Genre = 401
	GenreSfSpace            Genre = 402
	GenreSfKuusoukagaku     Genre = 403
	GenreSfPanic            Genre = 404
	GenreSonotaDouwa        Genre = 9901
	GenreSonotaShi          Genre = 9902
	GenreSonotaEssei        Genre = 9903
	GenreSonotaReplay       Genre = 9904
	GenreSonotaSonota       Genre = 9999
	GenreNonGenre           Genre = 9801
)

// R18Site selects the adult-site family (the nocgenre parameter).
type R18Site int

const (
	R18SiteNocturne    R18Site = 1
	R18SiteMoonLight   R18Site = 2
	R18SiteMoonLightBL R18Site = 3
	R18SiteMidnight    R18Site = 4
)

// NovelType filters by serialisation state.
type NovelType string

const (
	NovelTypeShort          NovelType = "t"
	NovelTypeRensaiNow      NovelType = "r"
	NovelTypeRensaiEnd      NovelType = "er"
	NovelTypeRensai         NovelType = "re"
	NovelTypeShortAndRensai NovelType = "ter"
)

// Buntai is the writing-style filter.
type Buntai int

const (
	BuntaiNoJisageKaigyouOoi   Buntai = 1
	BuntaiNoJisageKaigyoHutsuu Buntai = 2
	BuntaiJisageKaigyoOoi      Buntai = 4
	BuntaiJisageKaigyoHutsuu   Buntai = 6
)

// Stop filters long-paused series.
type Stop int

const (
	StopNoStopping Stop = 1
	StopStopping   Stop = 2
)

// Order is the sort order of novel searches.
type Order string

const (
	OrderNew                Order = "new"
	OrderFavoriteNovelCount Order = "favnovelcnt"
	OrderReviewCount        Order = "reviewcnt"
	OrderHyoka              Order = "hyoka"
	OrderHyokaAsc           Order = "hyokaasc"
	OrderDailyPoint         Order = "dailypoint"
	OrderWeeklyPoint        Order = "weeklypoint"
	OrderMonthlyPoint       Order = "monthlypoint"
	OrderQuarterPoint       Order = "quarterpoint"
	OrderYearlyPoint        Order = "yearlypoint"
	OrderImpressionCount    Order = "impressioncnt"
	OrderHyokaCount         Order = "hyokacnt"
	OrderHyokaCountAsc      Order = "hyokacntasc"
	OrderWeekly             Order = "weekly"
	OrderLengthDesc         Order = "lengthdesc"
	OrderLengthAsc          Order = "lengthasc"
	OrderNCodeDesc          Order = "ncodedesc"
	OrderOld                Order = "old"
)

// UserOrder is the sort order of user searches.
type UserOrder string

const (
	UserOrderNew            UserOrder = "new"
	UserOrderNovelCount     UserOrder = "novelcnt"
	UserOrderReviewCount    UserOrder = "reviewcnt"
	UserOrderNovelLength    UserOrder = "novellength"
	UserOrderSumGlobalPoint UserOrder = "sumglobalpoint"
	UserOrderOld            UserOrder = "old"
)

// RankingType is the period code of a ranking.
type RankingType string

const (
	RankingDaily     RankingType = "d"
	RankingWeekly    RankingType = "w"
	RankingMonthly   RankingType = "m"
	RankingQuarterly RankingType = "q"
)

// Valid reports whether t is one of the known period codes.
func (t RankingType) Valid() bool {
	switch t {
	case RankingDaily, RankingWeekly, RankingMonthly, RankingQuarterly:
		return true
	}
	return false
}

// UpdateTerm is a named period accepted by the lastup/lastupdate filters.
type UpdateTerm string

const (
	UpdateThisWeek  UpdateTerm = "thisweek"
	UpdateLastWeek  UpdateTerm = "lastweek"
	UpdateSevenDay  UpdateTerm = "sevenday"
	UpdateThisMonth UpdateTerm = "thismonth"
	UpdateLastMonth UpdateTerm = "lastmonth"
)
