package jsonio

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/kaede-rail/railtopo/pipeline"
)

// stationRef mirrors the {"stationCode": ...} wire shape used inside left
// and right arrays.
type stationRef struct {
	StationCode int `json:"stationCode"`
}

// nextStaInfo is the wire shape of one pipeline.NextStaInfo record.
type nextStaInfo struct {
	StationCode int          `json:"stationCode"`
	Left        []stationRef `json:"left"`
	Right       []stationRef `json:"right"`
}

func toWire(records []pipeline.NextStaInfo) []nextStaInfo {
	out := make([]nextStaInfo, len(records))
	for i, r := range records {
		out[i] = nextStaInfo{
			StationCode: r.StationCode,
			Left:        toRefs(r.Left),
			Right:       toRefs(r.Right),
		}
	}
	return out
}

func toRefs(codes []int) []stationRef {
	refs := make([]stationRef, len(codes))
	for i, code := range codes {
		refs[i] = stationRef{StationCode: code}
	}
	return refs
}

// Marshal encodes one railway's NextStaInfo records as the JSON array
// the downstream consumers expect.
func Marshal(records []pipeline.NextStaInfo) ([]byte, error) {
	return json.Marshal(toWire(records))
}

// Encode writes the same JSON array Marshal produces to w.
func Encode(w io.Writer, records []pipeline.NextStaInfo) error {
	return json.NewEncoder(w).Encode(toWire(records))
}
