package params

// BigGenreNotation holds display labels for BigGenre values.
var BigGenreNotation = map[BigGenre]string{
	BigGenreRenai:    "恋愛",
	BigGenreFantasy:  "ファンタジー",
	BigGenreBungei:   "文芸",
	BigGenreSf:       "SF",
	BigGenreSonota:   "その他",
	BigGenreNonGenre: "ノンジャンル",
}

// GenreNotation holds display labels for Genre values.
var GenreNotation = map[Genre]string{
	GenreRenaiIsekai:        "異世界〔恋愛〕",
	GenreRenaiGenjitsusekai: "現実世界〔恋愛〕",
	GenreFantasyHigh:        "ハイファンタジー〔ファンタジー〕",
	GenreFantasyLow:         "ローファンタジー〔ファンタジー〕",
	GenreBungeiJyunbungei:   "純文学〔文芸〕",
	GenreBungeiHumanDrama:   "ヒューマンドラマ〔文芸〕",
	GenreBungeiHistory:      "歴史〔文芸〕",
	GenreBungeiSuiri:        "推理〔文芸〕",
	GenreBungeiHorror:       "ホラー〔文芸〕",
	GenreBungeiAction:       "アクション〔文芸〕",
	GenreBungeiComedy:       "コメディー〔文芸〕",
	GenreSfVRGame:           "VRゲーム〔SF〕",
	GenreSfSpace:            "宇宙〔SF〕",
	GenreSfKuusoukagaku:     "空想科学〔SF〕",
	GenreSfPanic:            "パニック〔SF〕",
	GenreSonotaDouwa:        "童話〔その他〕",
	GenreSonotaShi:          "詩〔その他〕",
	GenreSonotaEssei:        "エッセイ〔その他〕",
	GenreSonotaReplay:       "リプレイ〔その他〕",
	GenreSonotaSonota:       "その他〔その他〕",
	GenreNonGenre:           "ノンジャンル〔ノンジャンル〕",
}

// R18SiteNotation holds display labels for R18Site values.
var R18SiteNotation = map[R18Site]string{
	R18SiteNocturne:    "ノクターンノベルズ(男性向け)",
	R18SiteMoonLight:   "ムーンライトノベルズ(女性向け)",
	R18SiteMoonLightBL: "ムーンライトノベルズ(BL)",
	R18SiteMidnight:    "ミッドナイトノベルズ(大人向け)",
}

// RankingTypeNotation holds display labels for ranking periods.
var RankingTypeNotation = map[RankingType]string{
	RankingDaily:     "日間",
	RankingWeekly:    "週間",
	RankingMonthly:   "月間",
	RankingQuarterly: "四半期",
}
