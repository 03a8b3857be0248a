package datastore

// Table names used by the CLI exports.
const (
	NovelsTable  = "novels"
	RankingTable = "ranking"
	UsersTable   = "users"
	HistoryTable = "ranking_history"
)

// NovelsSchema has a column for every novel field of both novel APIs.
const NovelsSchema = `
CREATE TABLE IF NOT EXISTS novels (
	ncode TEXT PRIMARY KEY,
	title TEXT,
	userid INTEGER,
	writer TEXT,
	story TEXT,
	biggenre INTEGER,
	genre INTEGER,
	keyword TEXT,
	general_firstup TEXT,
	general_lastup TEXT,
	noveltype INTEGER,
	"end" INTEGER,
	general_all_no INTEGER,
	length INTEGER,
	"time" INTEGER,
	isstop INTEGER,
	isr15 INTEGER,
	isbl INTEGER,
	isgl INTEGER,
	iszankoku INTEGER,
	istensei INTEGER,
	istenni INTEGER,
	pc_or_k INTEGER,
	global_point INTEGER,
	daily_point INTEGER,
	weekly_point INTEGER,
	monthly_point INTEGER,
	quarter_point INTEGER,
	yearly_point INTEGER,
	fav_novel_cnt INTEGER,
	impression_cnt INTEGER,
	review_cnt INTEGER,
	all_point INTEGER,
	all_hyoka_cnt INTEGER,
	sasie_cnt INTEGER,
	kaiwaritu INTEGER,
	novelupdated_at TEXT,
	updated_at TEXT,
	weekly_unique INTEGER,
	nocgenre INTEGER,
	xid INTEGER
);
`

const RankingSchema = `
CREATE TABLE IF NOT EXISTS ranking (
	rtype TEXT NOT NULL,
	ncode TEXT NOT NULL,
	rank INTEGER,
	pt INTEGER,
	title TEXT,
	writer TEXT,
	PRIMARY KEY (rtype, ncode)
);
`

const UsersSchema = `
CREATE TABLE IF NOT EXISTS users (
	userid INTEGER PRIMARY KEY,
	name TEXT,
	yomikata TEXT,
	name1st TEXT,
	novel_cnt INTEGER,
	review_cnt INTEGER,
	novel_length INTEGER,
	sum_global_point INTEGER
);
`

const HistorySchema = `
CREATE TABLE IF NOT EXISTS ranking_history (
	ncode TEXT NOT NULL,
	type TEXT NOT NULL,
	date TEXT NOT NULL,
	pt INTEGER,
	rank INTEGER,
	PRIMARY KEY (ncode, type, date)
);
`
