package payloads

import (
	"encoding/json"
	"testing"
)

func TestNewRequestGuildMembers(t *testing.T) {
	tests := []struct {
		name   string
		guild  uint64
		limit  uint16
		filter ChunkGuildFilter
		nonce  string
		want   string
	}{
		{
			name:   "no_filter_defaults",
			guild:  500,
			filter: ChunkFilterNone{},
			want:   `{"op":8,"d":{"guild_id":"500","limit":0,"nonce":"","query":""}}`,
		},
		{
			name:   "query_filter",
			guild:  500,
			limit:  25,
			filter: ChunkFilterQuery("abc"),
			want:   `{"op":8,"d":{"guild_id":"500","limit":25,"nonce":"","query":"abc"}}`,
		},
		{
			name:   "empty_user_ids_still_sent",
			guild:  500,
			filter: ChunkFilterUserIds{},
			want:   `{"op":8,"d":{"guild_id":"500","limit":0,"nonce":"","user_ids":[]}}`,
		},
		{
			name:   "nil_user_ids_still_sent",
			guild:  500,
			filter: ChunkFilterUserIds(nil),
			want:   `{"op":8,"d":{"guild_id":"500","limit":0,"nonce":"","user_ids":[]}}`,
		},
		{
			name:   "user_ids_filter_preserves_order",
			guild:  500,
			filter: ChunkFilterUserIds{3, 1, 2, 1},
			want:   `{"op":8,"d":{"guild_id":"500","limit":0,"nonce":"","user_ids":[3,1,2,1]}}`,
		},
		{
			name:   "snowflake_rendered_as_string",
			guild:  123456789012345678,
			filter: ChunkFilterUserIds{1, 2},
			nonce:  "n1",
			want:   `{"op":8,"d":{"guild_id":"123456789012345678","limit":0,"nonce":"n1","user_ids":[1,2]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(NewRequestGuildMembers(tt.guild, tt.limit, tt.filter, tt.nonce))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			if string(encoded) != tt.want {
				t.Errorf("got %s, want %s", encoded, tt.want)
			}
		})
	}
}

func TestChunkFilterExclusivity(t *testing.T) {
	// query and user_ids must never appear in the same frame
	data := NewRequestGuildMembers(1, 0, ChunkFilterUserIds{1}, "").Data
	if data.Query != nil {
		t.Errorf("user_ids filter set query to %q", *data.Query)
	}

	data = NewRequestGuildMembers(1, 0, ChunkFilterQuery("a"), "").Data
	if data.UserIds != nil {
		t.Errorf("query filter set user_ids to %v", data.UserIds)
	}

	data = NewRequestGuildMembers(1, 0, ChunkFilterNone{}, "").Data
	if data.UserIds != nil {
		t.Errorf("none filter set user_ids to %v", data.UserIds)
	}
	if data.Query == nil || *data.Query != "" {
		t.Error("none filter must send an explicit empty query")
	}
}
