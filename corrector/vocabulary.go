package corrector

// correction is one literal rewrite of a known mis-transcription.
type correction struct {
	from, to string
}

// corrections are matched against whole tokens, in this order. Matching
// inside words would turn "asar" into "asarr" and "selasa" into "selasar".
var corrections = []correction{
	{"suara", "solat"},

	{"dikak", "dekat"},
	{"dikay", "dekat"},

	{"kuali", "kuala"},
	{"selamon", "selangor"},
	{"sedanguk", "selangor"},

	{"menit", "minit"},
	{"waddu", "waktu"},
	{"waduh", "waktu"},
	{"asa", "asar"},
	{"johor", "zohor"},

	// prayer/domain
	{"batu", "waktu"},
	{"soal", "solat"},

	// places
	{"kelang", "klang"},
	{"gomak", "gombak"},
	{"gumbang", "gombak"},
	{"gombang", "gombak"},

	{"sahabat", "sabak"},
	{"sabat", "sabak"},
	{"bernang", "bernam"},
	{"benam", "bernam"},

	{"koal", "kuala"},
	{"kualis", "kuala"},
	{"langur", "langat"},
}

// vocabulary is the closed set of domain tokens noisy words are snapped to.
var vocabulary = []string{
	"waktu", "solat", "dekat", "tempat", "di", "untuk",
	"imsak", "subuh", "syuruk", "dhuha", "zohor", "asar", "maghrib", "isyak",
	"gombak", "klang",
	"kuala", "selangor", "sabak", "bernam",
	"langat", "petaling", "sepang", "shah", "alam",
	"minit",

	// date/time
	"hari", "ini", "esok", "lusa",
	"minggu", "depan", "hadapan",
	"bulan", "next",

	"isnin", "selasa", "rabu", "khamis", "jumaat", "sabtu", "ahad",

	"januari", "februari", "mac", "april", "mei", "jun",
	"julai", "ogos", "september", "oktober", "november", "disember",
}

// Vocabulary returns a copy of the domain vocabulary.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}
