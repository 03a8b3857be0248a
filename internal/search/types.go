package search

import "github.com/lepinkainen/narou/internal/params"

// NovelResult is a full novel row. Fields not requested through Fields stay
// at their zero value.
type NovelResult struct {
	Title          string          `json:"title,omitempty"`
	NCode          string          `json:"ncode,omitempty"`
	UserID         int             `json:"userid,omitempty"`
	Writer         string          `json:"writer,omitempty"`
	Story          string          `json:"story,omitempty"`
	BigGenre       params.BigGenre `json:"biggenre,omitempty"`
	Genre          params.Genre    `json:"genre,omitempty"`
	Keyword        string          `json:"keyword,omitempty"`
	GeneralFirstUp string          `json:"general_firstup,omitempty"`
	GeneralLastUp  string          `json:"general_lastup,omitempty"`
	NovelType      int             `json:"noveltype,omitempty"`
	End            int             `json:"end,omitempty"`
	GeneralAllNo   int             `json:"general_all_no,omitempty"`
	Length         int             `json:"length,omitempty"`
	Time           int             `json:"time,omitempty"`
	IsStop         int             `json:"isstop,omitempty"`
	IsR15          int             `json:"isr15,omitempty"`
	IsBL           int             `json:"isbl,omitempty"`
	IsGL           int             `json:"isgl,omitempty"`
	IsZankoku      int             `json:"iszankoku,omitempty"`
	IsTensei       int             `json:"istensei,omitempty"`
	IsTenni        int             `json:"istenni,omitempty"`
	PcOrK          int             `json:"pc_or_k,omitempty"`
	GlobalPoint    int             `json:"global_point,omitempty"`
	DailyPoint     int             `json:"daily_point,omitempty"`
	WeeklyPoint    int             `json:"weekly_point,omitempty"`
	MonthlyPoint   int             `json:"monthly_point,omitempty"`
	QuarterPoint   int             `json:"quarter_point,omitempty"`
	YearlyPoint    int             `json:"yearly_point,omitempty"`
	FavNovelCnt    int             `json:"fav_novel_cnt,omitempty"`
	ImpressionCnt  int             `json:"impression_cnt,omitempty"`
	ReviewCnt      int             `json:"review_cnt,omitempty"`
	AllPoint       int             `json:"all_point,omitempty"`
	AllHyokaCnt    int             `json:"all_hyoka_cnt,omitempty"`
	SasieCnt       int             `json:"sasie_cnt,omitempty"`
	Kaiwaritu      int             `json:"kaiwaritu,omitempty"`
	NovelUpdatedAt string          `json:"novelupdated_at,omitempty"`
	UpdatedAt      string          `json:"updated_at,omitempty"`

	// Only present with Opt(params.OptionalWeeklyUnique).
	WeeklyUnique int `json:"weekly_unique,omitempty"`
}

// R18NovelResult is a novel row from the R18 API.
type R18NovelResult struct {
	NovelResult
	NocGenre params.R18Site `json:"nocgenre,omitempty"`
	XID      int            `json:"xid,omitempty"`
}

// UserResult is a row of the user API.
type UserResult struct {
	UserID         int    `json:"userid,omitempty"`
	Name           string `json:"name,omitempty"`
	Yomikata       string `json:"yomikata,omitempty"`
	Name1st        string `json:"name1st,omitempty"`
	NovelCnt       int    `json:"novel_cnt,omitempty"`
	ReviewCnt      int    `json:"review_cnt,omitempty"`
	NovelLength    int    `json:"novel_length,omitempty"`
	SumGlobalPoint int    `json:"sum_global_point,omitempty"`
}
