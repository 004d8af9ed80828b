package memstats

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGatherer struct {
	value interface{}
	err   error
	calls int
}

func (g *fakeGatherer) Gather() (interface{}, error) {
	g.calls++
	return g.value, g.err
}

func TestRegistryCollect(t *testing.T) {
	ok := &fakeGatherer{value: map[string]uint64{"free_percent": 42}}
	bad := &fakeGatherer{err: errors.New("permission denied")}

	reg := &Registry{}
	reg.Register("ok", ok)
	reg.Register("bad", bad)

	results := reg.Collect()
	require.Len(t, results, 2)

	assert.NoError(t, results["ok"].Err())
	assert.Equal(t, ok.value, results["ok"].Success)

	assert.EqualError(t, results["bad"].Err(), "permission denied")
	assert.Nil(t, results["bad"].Success)

	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, bad.calls)
}

func TestRegistryDumpJSON(t *testing.T) {
	reg := &Registry{}
	reg.Register("level", &fakeGatherer{value: &LevelStats{FreePercent: 42}})
	reg.Register("broken", &fakeGatherer{err: errors.New("boom")})

	var buf bytes.Buffer
	require.NoError(t, reg.DumpJSON(&buf))

	var out struct {
		Gatherers map[string]struct {
			Success json.RawMessage `json:"success"`
			Error   *string         `json:"error"`
		} `json:"gatherers"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out.Gatherers, 2)

	level := out.Gatherers["level"]
	assert.Nil(t, level.Error)
	assert.JSONEq(t, `{"free_percent":42}`, string(level.Success))

	broken := out.Gatherers["broken"]
	require.NotNil(t, broken.Error)
	assert.Equal(t, "boom", *broken.Error)
	assert.Equal(t, "null", string(broken.Success))
}

func TestRegistryRegisterDuplicatePanics(t *testing.T) {
	reg := &Registry{}
	reg.Register("vm", &fakeGatherer{})

	assert.Panics(t, func() {
		reg.Register("vm", &fakeGatherer{})
	})
}

type staticProber struct {
	level uint64
	err   error
}

func (p *staticProber) FreeMemoryPercent() (uint64, error) {
	return p.level, p.err
}

func TestLevelGather(t *testing.T) {
	l := &Level{Prober: &staticProber{level: 73}}

	res, err := l.Gather()
	require.NoError(t, err)
	assert.Equal(t, &LevelStats{FreePercent: 73}, res)
}

func TestLevelGatherError(t *testing.T) {
	l := &Level{Prober: &staticProber{err: errors.New("no such syscall")}}

	_, err := l.Gather()
	assert.ErrorContains(t, err, "no such syscall")
}

func TestLevelGatherNoProber(t *testing.T) {
	_, err := (&Level{}).Gather()
	assert.Error(t, err)
}
