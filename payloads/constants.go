package payloads

// Values the gateway fingerprints clients by. The properties block built
// from these must be byte-identical on every identify; changing any of them
// is a protocol-compatibility decision, not a code style one.
const (
	Capabilities   = 8189
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"
	BrowserVersion = "112.0.0.0"
	LargeThreshold = 250
)
