package params

// Field is an output-field code for the of parameter of novel searches.
type Field string

const (
	FieldTitle          Field = "t"
	FieldNCode          Field = "n"
	FieldUserID         Field = "u"
	FieldWriter         Field = "w"
	FieldStory          Field = "s"
	FieldBigGenre       Field = "bg"
	FieldGenre          Field = "g"
	FieldKeyword        Field = "k"
	FieldGeneralFirstUp Field = "gf"
	FieldGeneralLastUp  Field = "gl"
	FieldNovelType      Field = "nt"
	FieldEnd            Field = "e"
	FieldGeneralAllNo   Field = "ga"
	FieldLength         Field = "l"
	FieldTime           Field = "ti"
	FieldIsStop         Field = "i"
	FieldIsR15          Field = "ir"
	FieldIsBL           Field = "ibl"
	FieldIsGL           Field = "igl"
	FieldIsZankoku      Field = "izk"
	FieldIsTensei       Field = "its"
	FieldIsTenni        Field = "iti"
	FieldPcOrK          Field = "p"
	FieldGlobalPoint    Field = "gp"
	FieldDailyPoint     Field = "dp"
	FieldWeeklyPoint    Field = "wp"
	FieldMonthlyPoint   Field = "mp"
	FieldQuarterPoint   Field = "qp"
	FieldYearlyPoint    Field = "yp"
	FieldFavNovelCount  Field = "f"
	FieldImpressionCnt  Field = "imp"
	FieldReviewCount    Field = "r"
	FieldAllPoint       Field = "a"
	FieldAllHyokaCount  Field = "ah"
	FieldSasieCount     Field = "sa"
	FieldKaiwaritu      Field = "ka"
	FieldNovelUpdatedAt Field = "nu"
	FieldUpdatedAt      Field = "ua"

	// R18 endpoint only.
	FieldNocGenre Field = "ng"
	FieldXID      Field = "x"
)

// OptionalField is a field only returned when asked for through opt.
type OptionalField string

const (
	OptionalWeeklyUnique OptionalField = "weekly"
)

// UserField is an output-field code for the user search.
type UserField string

const (
	UserFieldUserID         UserField = "u"
	UserFieldName           UserField = "n"
	UserFieldYomikata       UserField = "y"
	UserFieldName1st        UserField = "1"
	UserFieldNovelCount     UserField = "nc"
	UserFieldReviewCount    UserField = "rc"
	UserFieldNovelLength    UserField = "nl"
	UserFieldSumGlobalPoint UserField = "sp"
)

// fieldNames maps field codes to the JSON keys the API answers with.
var fieldNames = map[Field]string{
	FieldTitle:          "title",
	FieldNCode:          "ncode",
	FieldUserID:         "userid",
	FieldWriter:         "writer",
	FieldStory:          "story",
	FieldBigGenre:       "biggenre",
	FieldGenre:          "genre",
	FieldKeyword:        "keyword",
	FieldGeneralFirstUp: "general_firstup",
	FieldGeneralLastUp:  "general_lastup",
	FieldNovelType:      "noveltype",
	FieldEnd:            "end",
	FieldGeneralAllNo:   "general_all_no",
	FieldLength:         "length",
	FieldTime:           "time",
	FieldIsStop:         "isstop",
	FieldIsR15:          "isr15",
	FieldIsBL:           "isbl",
	FieldIsGL:           "isgl",
	FieldIsZankoku:      "iszankoku",
	FieldIsTensei:       "istensei",
	FieldIsTenni:        "istenni",
	FieldPcOrK:          "pc_or_k",
	FieldGlobalPoint:    "global_point",
	FieldDailyPoint:     "daily_point",
	FieldWeeklyPoint:    "weekly_point",
	FieldMonthlyPoint:   "monthly_point",
	FieldQuarterPoint:   "quarter_point",
	FieldYearlyPoint:    "yearly_point",
	FieldFavNovelCount:  "fav_novel_cnt",
	FieldImpressionCnt:  "impression_cnt",
	FieldReviewCount:    "review_cnt",
	FieldAllPoint:       "all_point",
	FieldAllHyokaCount:  "all_hyoka_cnt",
	FieldSasieCount:     "sasie_cnt",
	FieldKaiwaritu:      "kaiwaritu",
	FieldNovelUpdatedAt: "novelupdated_at",
	FieldUpdatedAt:      "updated_at",
	FieldNocGenre:       "nocgenre",
	FieldXID:            "xid",
}

// JSONName returns the response key for f, or "" for unknown codes.
func (f Field) JSONName() string {
	return fieldNames[f]
}

// ParseField accepts either a field code ("t") or its JSON name ("title").
func ParseField(s string) (Field, bool) {
	if _, ok := fieldNames[Field(s)]; ok {
		return Field(s), true
	}
	for code, name := range fieldNames {
		if name == s {
			return code, true
		}
	}
	return "", false
}
