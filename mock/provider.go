package mock_provider

import (
	"bytes"
	"encoding/binary"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
)

const (
	sampleRate     = 24000
	bitsPerSample  = 16
	secondsPerRune = 0.06
)

type mockVoice struct {
	Name        string   `json:"Name"`
	DisplayName string   `json:"DisplayName"`
	ShortName   string   `json:"ShortName"`
	Locale      string   `json:"Locale"`
	LocaleName  string   `json:"LocaleName"`
	VoiceType   string   `json:"VoiceType"`
	StyleList   []string `json:"StyleList,omitempty"`
}

var mockVoices = []mockVoice{
	{Name: "Jenny", DisplayName: "Jenny", ShortName: "en-US-JennyNeural", Locale: "en-US",
		LocaleName: "English (United States)", VoiceType: "Neural", StyleList: []string{"cheerful", "chat"}},
	{Name: "Guy", DisplayName: "Guy", ShortName: "en-US-GuyNeural", Locale: "en-US",
		LocaleName: "English (United States)", VoiceType: "Neural"},
	{Name: "Dalia", DisplayName: "Dalia", ShortName: "es-MX-DaliaNeural", Locale: "es-MX",
		LocaleName: "Spanish (Mexico)", VoiceType: "Neural"},
	{Name: "Denise", DisplayName: "Denise", ShortName: "fr-FR-DeniseNeural", Locale: "fr-FR",
		LocaleName: "French (France)", VoiceType: "Neural", StyleList: []string{"sad"}},
	{Name: "Xiaoxiao", DisplayName: "Xiaoxiao", ShortName: "zh-CN-XiaoxiaoNeural", Locale: "zh-CN",
		LocaleName: "Chinese (Mandarin, Simplified)", VoiceType: "Neural", StyleList: []string{"newscast"}},
	{Name: "Huihui", DisplayName: "Huihui", ShortName: "zh-CN-Huihui", Locale: "zh-CN",
		LocaleName: "Chinese (Mandarin, Simplified)", VoiceType: "Standard"},
}

type mockProviderController struct {
	logger outbound.LoggerPort
}

// Init registers a local stand-in for the speech and translation
// providers, so the whole service runs without provider credentials.
// Point SPEECH_ENDPOINT and TRANSLATOR_ENDPOINT at this server.
func Init(g *gin.Engine, logger outbound.LoggerPort) {
	controller := &mockProviderController{logger: logger}

	g.GET("/cognitiveservices/voices/list", controller.listVoices)
	g.POST("/cognitiveservices/v1", controller.synthesize)
	g.POST("/translate", controller.translate)
}

func (m *mockProviderController) listVoices(c *gin.Context) {
	c.JSON(http.StatusOK, mockVoices)
}

func (m *mockProviderController) synthesize(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "unreadable body")
		return
	}

	text := extractSpokenText(string(body))
	if text == "" {
		c.String(http.StatusBadRequest, "no text to speak")
		return
	}

	audio := silentWav(float64(len([]rune(text))) * secondsPerRune)

	m.logger.DebugWithFields("mock synthesis", map[string]interface{}{
		"chars": len(text),
		"bytes": len(audio),
	})

	c.Data(http.StatusOK, "audio/wav", audio)
}

func (m *mockProviderController) translate(c *gin.Context) {
	var items []struct {
		Text string `json:"Text"`
	}
	if err := c.ShouldBindJSON(&items); err != nil || len(items) == 0 {
		c.String(http.StatusBadRequest, "bad translation request")
		return
	}

	to := c.Query("to")
	c.JSON(http.StatusOK, []gin.H{
		{"translations": []gin.H{{"text": "[" + to + "] " + items[0].Text, "to": to}}},
	})
}

// extractSpokenText pulls the character data out of the SSML payload.
func extractSpokenText(ssml string) string {
	var spoken strings.Builder
	depth := 0
	for _, r := range ssml {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				spoken.WriteRune(r)
			}
		}
	}
	return strings.TrimSpace(spoken.String())
}

// silentWav renders a valid RIFF/WAV payload of silence with the given
// duration, so duration probing downstream behaves like real audio.
func silentWav(seconds float64) []byte {
	samples := int(seconds * sampleRate)
	dataSize := samples * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}
