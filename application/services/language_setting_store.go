package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/inbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/application/ports/outbound"
	"github.com/pras0411/mslearn-intro-translator-text-to-speech/domain"
)

// settingSlot pairs a language setting with its fetch bookkeeping. The
// generation counter is bumped on every locale change so that a voice
// fetch dispatched for a superseded locale can recognize it is stale.
type settingSlot struct {
	setting    domain.LanguageSetting
	voices     []domain.Voice
	fetching   bool
	generation uint64
}

type languageSettingStore struct {
	logger     outbound.LoggerPort
	catalog    outbound.CatalogPort
	workerPool outbound.TaskDispatcher

	mu       sync.Mutex
	slots    []settingSlot
	selected int
	status   domain.ProcessingStatus
}

func NewLanguageSettingStore(logger outbound.LoggerPort, catalog outbound.CatalogPort,
	workerPool outbound.TaskDispatcher, presets []domain.LanguageSetting) inbound.LanguageSettingStorePort {
	slots := make([]settingSlot, 0, len(presets))
	for _, setting := range presets {
		slots = append(slots, settingSlot{setting: setting})
	}
	return &languageSettingStore{
		logger:     logger,
		catalog:    catalog,
		workerPool: workerPool,
		slots:      slots,
		status:     domain.StatusIdle,
	}
}

func (s *languageSettingStore) Settings() []domain.LanguageSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := make([]domain.LanguageSetting, 0, len(s.slots))
	for _, slot := range s.slots {
		settings = append(settings, slot.setting)
	}
	return settings
}

func (s *languageSettingStore) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *languageSettingStore) SelectIndex(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.slots) {
		return
	}
	s.selected = i
}

func (s *languageSettingStore) SetLocale(i int, locale domain.Locale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(i); err != nil {
		return err
	}

	slot := &s.slots[i]
	if slot.setting.Locale.Code == locale.Code {
		return nil
	}

	// Locale change invalidates the voice, its adjustments and the cached
	// voice list, and supersedes any in-flight fetch. Releasing the
	// in-flight flag lets the next ResolveVoice dispatch a fresh fetch for
	// the new locale instead of coalescing into the doomed one.
	slot.setting.Locale = locale
	slot.setting.Voice = nil
	slot.setting.Adjustments = nil
	slot.voices = nil
	slot.generation++
	slot.fetching = false

	s.logger.DebugWithFields("locale changed, voice invalidated", map[string]interface{}{
		"index":  i,
		"locale": locale.Code,
	})
	return nil
}

func (s *languageSettingStore) SetVoice(i int, voice domain.Voice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(i); err != nil {
		return err
	}

	slot := &s.slots[i]
	slot.setting.Voice = &voice
	slot.setting.Adjustments = deriveDefaultAdjustments(voice)
	return nil
}

func (s *languageSettingStore) SetStyle(i int, style string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(i); err != nil {
		return err
	}

	slot := &s.slots[i]
	if slot.setting.Voice == nil {
		return domain.ErrUnresolvedVoice
	}
	for _, supported := range slot.setting.Voice.Styles {
		if supported == style {
			slot.setting.Adjustments.Style = &style
			return nil
		}
	}
	return fmt.Errorf("voice %s does not support style %q", slot.setting.Voice.ID, style)
}

func (s *languageSettingStore) SetPitch(i int, pitch float64) error {
	return s.setRangeAdjustment(i, "pitch", pitch)
}

func (s *languageSettingStore) SetRate(i int, rate float64) error {
	return s.setRangeAdjustment(i, "rate", rate)
}

func (s *languageSettingStore) setRangeAdjustment(i int, name string, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editable(i); err != nil {
		return err
	}

	slot := &s.slots[i]
	if slot.setting.Voice == nil {
		return domain.ErrUnresolvedVoice
	}

	var bounds *domain.Range
	switch name {
	case "pitch":
		bounds = slot.setting.Voice.PitchRange
	case "rate":
		bounds = slot.setting.Voice.RateRange
	}
	if bounds == nil {
		return fmt.Errorf("voice %s does not support %s tuning", slot.setting.Voice.ID, name)
	}

	clamped := value
	if clamped < bounds.Min {
		clamped = bounds.Min
	}
	if clamped > bounds.Max {
		clamped = bounds.Max
	}

	switch name {
	case "pitch":
		slot.setting.Adjustments.Pitch = &clamped
	case "rate":
		slot.setting.Adjustments.Rate = &clamped
	}
	return nil
}

func (s *languageSettingStore) ResolveVoice(ctx context.Context, i int) <-chan error {
	errCh := make(chan error, 1)

	s.mu.Lock()
	if i < 0 || i >= len(s.slots) {
		s.mu.Unlock()
		close(errCh)
		return errCh
	}

	slot := &s.slots[i]
	if slot.fetching {
		// A fetch for this setting is already in flight; coalesce.
		s.mu.Unlock()
		close(errCh)
		return errCh
	}

	slot.fetching = true
	generation := slot.generation
	locale := slot.setting.Locale.Code
	s.mu.Unlock()

	err := s.workerPool.Submit(func() {
		defer close(errCh)

		voices, fetchErr := s.catalog.FetchVoices(ctx, locale)

		s.mu.Lock()
		defer s.mu.Unlock()

		slot := &s.slots[i]
		if slot.generation != generation {
			// The locale changed while the fetch was in flight; its voices
			// and any error belong to a superseded locale. SetLocale already
			// released the in-flight flag, which may now be owned by a fetch
			// for the new locale.
			s.logger.DebugWithFields("discarding stale voice fetch", map[string]interface{}{
				"index":  i,
				"locale": locale,
			})
			return
		}
		slot.fetching = false

		if fetchErr != nil {
			s.logger.ErrorWithFields(fetchErr, "voice fetch failed", map[string]interface{}{
				"index":  i,
				"locale": locale,
			})
			errCh <- fetchErr
			return
		}

		slot.voices = voices
		if slot.setting.Voice == nil && len(voices) > 0 {
			defaultVoice := voices[0]
			slot.setting.Voice = &defaultVoice
			slot.setting.Adjustments = deriveDefaultAdjustments(defaultVoice)
		}
	})
	if err != nil {
		s.mu.Lock()
		if s.slots[i].generation == generation {
			s.slots[i].fetching = false
		}
		s.mu.Unlock()
		errCh <- err
		close(errCh)
	}

	return errCh
}

func (s *languageSettingStore) VoicesFor(i int) []domain.Voice {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.slots) {
		return nil
	}
	return s.slots[i].voices
}

func (s *languageSettingStore) Status() domain.ProcessingStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *languageSettingStore) BeginProcessing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == domain.StatusPending {
		return domain.ErrSettingsBusy
	}
	s.status = domain.StatusPending
	return nil
}

func (s *languageSettingStore) FinishProcessing(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if success {
		s.status = domain.StatusSuccess
	} else {
		s.status = domain.StatusFailure
	}
}

func (s *languageSettingStore) Targets() ([]domain.SynthesisTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	targets := make([]domain.SynthesisTarget, 0, len(s.slots))
	for i, slot := range s.slots {
		if !slot.setting.Resolved() {
			return nil, fmt.Errorf("setting %d (%s): %w", i, slot.setting.Locale.Code, domain.ErrUnresolvedVoice)
		}
		targets = append(targets, domain.SynthesisTarget{
			Locale:      slot.setting.Locale.Code,
			VoiceID:     slot.setting.Voice.ID,
			Adjustments: slot.setting.Adjustments,
		})
	}
	return targets, nil
}

func (s *languageSettingStore) editable(i int) error {
	if s.status == domain.StatusPending {
		return domain.ErrSettingsBusy
	}
	if i < 0 || i >= len(s.slots) {
		return fmt.Errorf("setting index %d out of range", i)
	}
	return nil
}

// deriveDefaultAdjustments picks the voice's first style and the midpoint
// of each tunable range. Unsupported dimensions stay nil.
func deriveDefaultAdjustments(voice domain.Voice) *domain.VoiceAdjustments {
	adjustments := &domain.VoiceAdjustments{}
	if len(voice.Styles) > 0 {
		style := voice.Styles[0]
		adjustments.Style = &style
	}
	if voice.PitchRange != nil {
		pitch := voice.PitchRange.Midpoint()
		adjustments.Pitch = &pitch
	}
	if voice.RateRange != nil {
		rate := voice.RateRange.Midpoint()
		adjustments.Rate = &rate
	}
	return adjustments
}
