package constants

const (
	AppName         = "ledger"
	EnvPrefix       = "LEDGER"
	DefaultFile     = "transactions.csv"
	DefaultCurrency = "$"
	DefaultLogLevel = "warn"
)

const (
	UIModePlain = "plain"
	UIModeTUI   = "tui"
)

// CSVHeader is the first line of every ledger file.
const CSVHeader = "type,category,amount,date,description"

// CSVFieldCount is the number of comma separated fields on a record line.
const CSVFieldCount = 5
