package payloads

import "strconv"

type RequestGuildMembers struct {
	Opcode OpCode                  `json:"op"`
	Data   RequestGuildMembersData `json:"d"`
}

// RequestGuildMembersData carries either query or user_ids, never both.
// guild_id goes over the wire as a decimal string: snowflakes overflow the
// safe integer range in some peer-side JSON parsers.
type RequestGuildMembersData struct {
	GuildId string    `json:"guild_id"`
	Limit   uint16    `json:"limit"`
	Nonce   string    `json:"nonce"`
	Query   *string   `json:"query,omitempty"`
	UserIds *[]uint64 `json:"user_ids,omitempty"`
}

// ChunkGuildFilter selects which members of a guild to request. It is a
// closed set: None, Query and UserIds. The resolve method is the exhaustive
// match; a new variant cannot compile without choosing its wire shape.
type ChunkGuildFilter interface {
	resolve(data *RequestGuildMembersData)
}

// ChunkFilterNone requests all members. The gateway distinguishes a missing
// query field from an empty one and expects the latter for "no filter".
type ChunkFilterNone struct{}

// ChunkFilterQuery requests members whose display name starts with the
// text, passed verbatim: escaping belongs to the serializer.
type ChunkFilterQuery string

// ChunkFilterUserIds requests the listed members in the order given, no
// dedup and no sort.
type ChunkFilterUserIds []uint64

func (ChunkFilterNone) resolve(data *RequestGuildMembersData) {
	query := ""
	data.Query = &query
}

func (f ChunkFilterQuery) resolve(data *RequestGuildMembersData) {
	query := string(f)
	data.Query = &query
}

func (f ChunkFilterUserIds) resolve(data *RequestGuildMembersData) {
	// always send the field, even for an empty list: a frame with neither
	// query nor user_ids would read as an unfiltered request
	ids := []uint64(f)
	if ids == nil {
		ids = []uint64{}
	}

	data.UserIds = &ids
}

func NewRequestGuildMembers(guildId uint64, limit uint16, filter ChunkGuildFilter, nonce string) RequestGuildMembers {
	payload := RequestGuildMembers{
		Opcode: OpGetGuildMembers,
		Data: RequestGuildMembersData{
			GuildId: strconv.FormatUint(guildId, 10),
			Limit:   limit,
			Nonce:   nonce,
		},
	}

	filter.resolve(&payload.Data)
	return payload
}
