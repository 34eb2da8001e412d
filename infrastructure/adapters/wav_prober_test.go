package adapters

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pcmWav renders a silent mono 16-bit PCM payload of the given duration.
func pcmWav(seconds float64, sampleRate int) []byte {
	samples := int(seconds * float64(sampleRate))
	dataSize := samples * 2

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(&buf, binary.LittleEndian, uint16(2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

func TestProbeReadsDurationFromHeader(t *testing.T) {
	prober := NewWavProber()

	duration, err := prober.Probe(pcmWav(1.5, 24000))
	require.NoError(t, err)
	assert.InDelta(t, 1.5, duration, 0.01)

	duration, err = prober.Probe(pcmWav(0.25, 16000))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, duration, 0.01)
}

func TestProbeRejectsNonWavPayloads(t *testing.T) {
	prober := NewWavProber()

	_, err := prober.Probe([]byte("definitely not audio"))
	assert.Error(t, err)

	_, err = prober.Probe(nil)
	assert.Error(t, err)
}
