package payloads

import "github.com/TicketsBot/gateway-client/intents"

type Identify struct {
	Opcode OpCode       `json:"op"`
	Data   IdentifyData `json:"d"`
}

type IdentifyData struct {
	Token          string     `json:"token"`
	Capabilities   int        `json:"capabilities"`
	Properties     Properties `json:"properties"`
	Compress       bool       `json:"compress"`
	LargeThreshold int        `json:"large_threshold"`

	// User sessions do not send intents; the gateway infers subscriptions
	// from the fingerprint instead. The value is carried here so the whole
	// session configuration stays in one place, and so sending it is a
	// one-tag change if the gateway starts requiring it.
	Intents intents.Intents `json:"-"`
}

// Properties is the static client fingerprint. Every identify must carry
// this exact block (see constants.go); the gateway correlates sessions by it.
type Properties struct {
	Os               string `json:"os"`
	Browser          string `json:"browser"`
	Device           string `json:"device"`
	SystemLocale     string `json:"system_locale"`
	BrowserUserAgent string `json:"browser_user_agent"`
	BrowserVersion   string `json:"browser_version"`
	OsVersion        string `json:"os_version"`
	Referrer         string `json:"referrer"`
	ReferringDomain  string `json:"referring_domain"`
	ReleaseChannel   string `json:"release_channel"`
}

func NewIdentify(token string, combinedIntents intents.Intents) Identify {
	return Identify{
		Opcode: OpIdentify,
		Data: IdentifyData{
			Token:        token,
			Capabilities: Capabilities,
			Properties: Properties{
				Os:               "Windows",
				Browser:          "Chrome",
				Device:           "",
				SystemLocale:     "en-US",
				BrowserUserAgent: UserAgent,
				BrowserVersion:   BrowserVersion,
				OsVersion:        "10",
				Referrer:         "",
				ReferringDomain:  "",
				ReleaseChannel:   "stable",
			},
			Compress:       true,
			LargeThreshold: LargeThreshold,
			Intents:        combinedIntents,
		},
	}
}
