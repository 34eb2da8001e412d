package outbound

// AudioDurationPort measures the spoken duration of synthesized audio.
type AudioDurationPort interface {
	// Probe returns the duration in seconds of the given WAV payload.
	Probe(audio []byte) (float64, error)
}
