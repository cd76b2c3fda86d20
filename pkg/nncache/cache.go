package nncache

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"

	"github.com/hyperifyio/nnrt/pkg/nnerr"
	"github.com/hyperifyio/nnrt/pkg/nnlog"
)

const maxCacheBuffers = 100

const sidecarName = "cache_info.nncache"

// OpVersionReader is the one Backend capability Save needs: the op-version
// a compiled cache is only valid against. Kept as a local interface,
// mirroring nngraph.SupportedOpsBackend, so this package does not import
// pkg/nnbackend just to read one int32.
type OpVersionReader interface {
	ReadOpVersion() (int32, error)
}

// Cache holds the buffers Restore mapped off disk, read-only, ready to
// hand to a Backend's PrepareModelFromModelCache. Callers must call
// Release once they are done with the buffers.
type Cache struct {
	Buffers [][]byte

	maps  []mmap.MMap
	files []*os.File
}

// Release unmaps and closes every file Restore opened. Safe to call once;
// a second call is a no-op.
func (c *Cache) Release() {
	for _, m := range c.maps {
		_ = m.Unmap()
	}
	for _, f := range c.files {
		_ = f.Close()
	}
	c.maps = nil
	c.files = nil
	c.Buffers = nil
}

func canonicalDir(dir string) (string, error) {
	if !strings.HasPrefix(dir, "/") {
		return "", nnerr.New("nncache", "canonicalDir: path must be absolute", nnerr.InvalidFile)
	}
	if strings.Contains(dir, "//") {
		return "", nnerr.New("nncache", "canonicalDir: path must not contain //", nnerr.InvalidFile)
	}
	return filepath.Clean(dir), nil
}

// Cache files are named by direct concatenation, "<model><i>.nncache" and
// "<model>cache_info.nncache" — the layout is part of the on-disk format,
// shared with every other reader of these directories.
func bufferPath(dir, modelName string, i int) string {
	return filepath.Join(dir, modelName+strconv.Itoa(i)+".nncache")
}

func sidecarPath(dir, modelName string) string {
	return filepath.Join(dir, modelName+sidecarName)
}

// Save writes each buffer to its own file under dir, named after
// modelName, then a sidecar JSON recording a checksum over every buffer
// plus the backend identity and op-version that produced them. Files are
// written via a temp-name-then-rename so a crash mid-write never leaves a
// sidecar pointing at a partially-written buffer.
func Save(backend OpVersionReader, dir, modelName string, deviceID, version int, buffers [][]byte, exceedsRAMLimit bool) error {
	if backend == nil {
		return nnerr.New("nncache", "Save: missing backend", nnerr.NullPtr)
	}
	if len(buffers) == 0 {
		return nnerr.New("nncache", "Save: no buffers to cache", nnerr.InvalidParameter)
	}
	if len(buffers) > maxCacheBuffers {
		return nnerr.New("nncache", "Save: too many cache buffers", nnerr.InvalidParameter)
	}

	clean, err := canonicalDir(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return nnerr.Wrap("nncache", "Save: mkdir cache dir", nnerr.SaveCacheException, err)
	}

	sums := make([]uint16, len(buffers))
	for i, buf := range buffers {
		if err := atomicWrite(bufferPath(clean, modelName, i), buf); err != nil {
			return nnerr.Wrap("nncache", "Save: write cache buffer", nnerr.SaveCacheException, err)
		}
		sums[i] = checksum16(buf)
	}

	opVersion, err := backend.ReadOpVersion()
	if err != nil {
		return nnerr.Wrap("nncache", "Save: read backend op version", nnerr.SaveCacheException, err)
	}

	exceed := 0
	if exceedsRAMLimit {
		exceed = 1
	}
	data := cacheData{
		FileNumber:       len(buffers),
		Version:          version,
		DeviceID:         deviceID,
		ModelCheckSum:    sums,
		OpVersion:        opVersion,
		IsExceedRamLimit: exceed,
	}
	sum, err := sidecarChecksum(data)
	if err != nil {
		return err
	}
	encoded, err := marshalSidecar(sidecar{Data: data, CheckSum: sum})
	if err != nil {
		return err
	}
	if err := atomicWrite(sidecarPath(clean, modelName), encoded); err != nil {
		return nnerr.Wrap("nncache", "Save: write sidecar", nnerr.SaveCacheException, err)
	}

	nnlog.Infof(nnlog.Cache, "saved %d buffer(s) for %q at version %d", len(buffers), modelName, version)
	return nil
}

func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, ".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Restore validates the sidecar against requested deviceID/version before
// mmap-ing any buffer read-only. A version mismatch is reported as one of
// two distinct codes: a cache built for an older version than requested is
// stale and rejected as INVALID_FILE (the caller has moved past the format
// the file was written in); a cache built for a newer version than
// requested is rejected as OPERATION_FORBIDDEN (the caller is behind and
// should not trust a file written by a later format).
func Restore(dir, modelName string, deviceID, version int) (*Cache, error) {
	clean, err := canonicalDir(dir)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(sidecarPath(clean, modelName))
	if err != nil {
		return nil, nnerr.Wrap("nncache", "Restore: read sidecar", nnerr.InvalidFile, err)
	}
	s, err := unmarshalSidecar(raw)
	if err != nil {
		return nil, err
	}

	wantSum, err := sidecarChecksum(s.Data)
	if err != nil {
		return nil, err
	}
	if wantSum != s.CheckSum {
		return nil, nnerr.New("nncache", "Restore: sidecar checksum mismatch", nnerr.InvalidFile)
	}
	if s.Data.FileNumber <= 0 || s.Data.FileNumber > maxCacheBuffers || s.Data.FileNumber != len(s.Data.ModelCheckSum) {
		return nil, nnerr.New("nncache", "Restore: fileNumber out of range", nnerr.InvalidFile)
	}
	if s.Data.DeviceID != deviceID {
		return nil, nnerr.New("nncache", "Restore: cache belongs to a different backend", nnerr.InvalidFile)
	}
	if s.Data.Version < version {
		return nil, nnerr.New("nncache", "Restore: cache is stale", nnerr.InvalidFile)
	}
	if s.Data.Version > version {
		return nil, nnerr.New("nncache", "Restore: cache is newer than the requested version", nnerr.OperationForbidden)
	}

	c := &Cache{}
	for i := 0; i < s.Data.FileNumber; i++ {
		f, err := os.Open(bufferPath(clean, modelName, i))
		if err != nil {
			c.Release()
			return nil, nnerr.Wrap("nncache", "Restore: open cache buffer", nnerr.InvalidFile, err)
		}
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			_ = f.Close()
			c.Release()
			return nil, nnerr.Wrap("nncache", "Restore: mmap cache buffer", nnerr.InvalidFile, err)
		}
		c.files = append(c.files, f)
		c.maps = append(c.maps, m)
		if checksum16(m) != s.Data.ModelCheckSum[i] {
			c.Release()
			return nil, nnerr.New("nncache", "Restore: cache buffer checksum mismatch", nnerr.InvalidFile)
		}
		c.Buffers = append(c.Buffers, []byte(m))
	}

	nnlog.Infof(nnlog.Cache, "restored %d buffer(s) for %q at version %d", len(c.Buffers), modelName, version)
	return c, nil
}
