package nncache

import (
	"encoding/json"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnlog"
)

// cacheData is the "data" sub-object of the sidecar JSON, the part the
// top-level CheckSum is computed over.
type cacheData struct {
	FileNumber    int      `json:"fileNumber"`
	Version       int      `json:"version"`
	DeviceID      int      `json:"deviceId"`
	ModelCheckSum []uint16 `json:"modelCheckSum"`
	OpVersion     int32    `json:"opVersion"`
	// IsExceedRamLimit is 0 or 1 on disk, not a JSON bool.
	IsExceedRamLimit int `json:"isExceedRamLimit"`
}

// sidecar is the full cache_info.nncache document.
type sidecar struct {
	Data     cacheData `json:"data"`
	CheckSum uint16    `json:"CheckSum"`
}

// sidecarChecksum re-derives the CheckSum a sidecar's data sub-object
// should carry, the same way checksum16 lets Restore notice a tampered or
// truncated cache buffer before it's mmap'd.
func sidecarChecksum(data cacheData) (uint16, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return 0, nnerr.Wrap("nncache", "sidecarChecksum: marshal data", nnerr.Failed, err)
	}
	return checksum16(encoded), nil
}

func marshalSidecar(s sidecar) ([]byte, error) {
	encoded, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, nnerr.Wrap("nncache", "marshalSidecar", nnerr.Failed, err)
	}
	return encoded, nil
}

// sidecarProbe mirrors the sidecar schema with pointer fields so an
// absent key is distinguishable from a present-and-zero one —
// encoding/json collapses both to the zero value otherwise.
type sidecarProbe struct {
	Data *struct {
		FileNumber       *int      `json:"fileNumber"`
		Version          *int      `json:"version"`
		DeviceID         *int      `json:"deviceId"`
		ModelCheckSum    *[]uint16 `json:"modelCheckSum"`
		OpVersion        *int32    `json:"opVersion"`
		IsExceedRamLimit *int      `json:"isExceedRamLimit"`
	} `json:"data"`
	CheckSum *uint16 `json:"CheckSum"`
}

func unmarshalSidecar(raw []byte) (sidecar, error) {
	var probe sidecarProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return sidecar{}, nnerr.Wrap("nncache", "unmarshalSidecar", nnerr.InvalidFile, err)
	}
	if probe.Data == nil || probe.CheckSum == nil ||
		probe.Data.FileNumber == nil || probe.Data.Version == nil ||
		probe.Data.DeviceID == nil || probe.Data.ModelCheckSum == nil ||
		probe.Data.IsExceedRamLimit == nil {
		return sidecar{}, nnerr.New("nncache", "unmarshalSidecar: missing required field", nnerr.InvalidFile)
	}
	// A missing opVersion is the one tolerated omission: older writers
	// predate the field, so it defaults to 0 with a warning instead of
	// invalidating the whole cache.
	if probe.Data.OpVersion == nil {
		nnlog.Warnf(nnlog.Cache, "sidecar has no opVersion, defaulting to 0")
	}
	var s sidecar
	if err := json.Unmarshal(raw, &s); err != nil {
		return sidecar{}, nnerr.Wrap("nncache", "unmarshalSidecar", nnerr.InvalidFile, err)
	}
	return s, nil
}
