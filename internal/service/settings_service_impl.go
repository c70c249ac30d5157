package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lszabadkai/quarterback/internal/capacity"
	"github.com/lszabadkai/quarterback/internal/repository"
)

// Settings keys for the capacity knobs.
const (
	keyEngineers = "team.engineers"
	keyPTO       = "team.pto_days"
	keyHolidays  = "team.holiday_days"
	keyAdhocPct  = "capacity.adhoc_pct"
	keyBugPct    = "capacity.bug_pct"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

// Capacity reads the capacity knobs, falling back to the documented
// defaults for any key never written.
func (s *settingsService) Capacity(ctx context.Context) (capacity.Settings, error) {
	out := capacity.DefaultSettings()

	if v, err := s.intSetting(ctx, keyEngineers); err != nil {
		return out, err
	} else if v != nil {
		out.Engineers = *v
	}
	if v, err := s.intSetting(ctx, keyPTO); err != nil {
		return out, err
	} else if v != nil {
		out.PTODays = *v
	}
	if v, err := s.intSetting(ctx, keyHolidays); err != nil {
		return out, err
	} else if v != nil {
		out.HolidayDays = *v
	}
	if v, err := s.floatSetting(ctx, keyAdhocPct); err != nil {
		return out, err
	} else if v != nil {
		out.AdhocReservePct = *v
	}
	if v, err := s.floatSetting(ctx, keyBugPct); err != nil {
		return out, err
	} else if v != nil {
		out.BugReservePct = *v
	}
	return out, nil
}

func (s *settingsService) SetCapacity(ctx context.Context, c capacity.Settings) error {
	if c.Engineers < 0 {
		return fmt.Errorf("engineer count cannot be negative")
	}
	pairs := map[string]string{
		keyEngineers: strconv.Itoa(c.Engineers),
		keyPTO:       strconv.Itoa(c.PTODays),
		keyHolidays:  strconv.Itoa(c.HolidayDays),
		keyAdhocPct:  strconv.FormatFloat(c.AdhocReservePct, 'f', -1, 64),
		keyBugPct:    strconv.FormatFloat(c.BugReservePct, 'f', -1, 64),
	}
	for k, v := range pairs {
		if err := s.settings.Set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *settingsService) Get(ctx context.Context, key string) (string, bool, error) {
	return s.settings.Get(ctx, key)
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	return s.settings.Set(ctx, key, value)
}

func (s *settingsService) intSetting(ctx context.Context, key string) (*int, error) {
	raw, found, err := s.settings.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}
	return &v, nil
}

func (s *settingsService) floatSetting(ctx context.Context, key string) (*float64, error) {
	raw, found, err := s.settings.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}
	return &v, nil
}
