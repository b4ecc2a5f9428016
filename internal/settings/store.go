// Package settings provides durable key-value persistence for UI and window
// state, scoped to the whole application. Values are read at startup with
// hardcoded defaults and flushed at shutdown; each read is fault-isolated so
// one bad key never blocks restoring the rest.
package settings

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AntiVntiAnti/Lil-Wiggle-Toe-Tracker-Dog-Tracking/internal/logging"
)

// Known keys, carried over from earlier releases of the tracker.
const (
	KeyLastPageIndex      = "lastPageIndex"
	KeyMoodSlider         = "lily_mood_slider"
	KeyMoodActivitySlider = "lily_mood_activity_slider"
	KeyEnergySlider       = "lily_energy_slider"
	KeyTimeInRoomSlider   = "lily_time_in_room_slider"
	KeyGaitSlider         = "lily_gait_slider"
	KeyBehaviorSlider     = "lily_behavior_slider"
	KeyNotes              = "lily_notes"
	KeyGeometry           = "geometry"
	KeyWindowState        = "windowState"
	KeyInstallID          = "install_id"
)

// SliderKeys lists the slider-value keys saved and restored as a group.
var SliderKeys = []string{
	KeyMoodSlider,
	KeyMoodActivitySlider,
	KeyEnergySlider,
	KeyTimeInRoomSlider,
	KeyGaitSlider,
	KeyBehaviorSlider,
}

// Store is a persistent key-value map holding scalars, strings, and binary
// blobs. Mutations stay in memory until Flush.
type Store struct {
	v    *viper.Viper
	path string
	log  *zap.SugaredLogger
}

// Open loads the settings file at path. A missing file is not an error: the
// store starts empty and the file appears on the first Flush.
func Open(path string, log *zap.SugaredLogger) (*Store, error) {
	if log == nil {
		log = logging.Nop()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			// First run.
			return &Store{v: v, path: path, log: log}, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return &Store{v: v, path: path, log: log}, nil
}

// Set stores value under key. The write becomes durable on Flush.
func (s *Store) Set(key string, value any) {
	s.v.Set(key, value)
}

// SetBlob stores a binary value under key, base64-encoded.
func (s *Store) SetBlob(key string, value []byte) {
	s.v.Set(key, base64.StdEncoding.EncodeToString(value))
}

// GetInt returns the integer stored under key, or def when the key is unset
// or its value cannot be coerced. Coercion failures are logged, never fatal.
func (s *Store) GetInt(key string, def int) int {
	if !s.v.IsSet(key) {
		return def
	}
	n, err := cast.ToIntE(s.v.Get(key))
	if err != nil {
		s.log.Warnw("restoring setting", "key", key, "error", err)
		return def
	}
	return n
}

// GetString returns the string stored under key, or def when unset.
func (s *Store) GetString(key, def string) string {
	if !s.v.IsSet(key) {
		return def
	}
	str, err := cast.ToStringE(s.v.Get(key))
	if err != nil {
		s.log.Warnw("restoring setting", "key", key, "error", err)
		return def
	}
	return str
}

// GetBlob returns the binary value stored under key, or def when the key is
// unset or its value does not decode.
func (s *Store) GetBlob(key string, def []byte) []byte {
	encoded := s.GetString(key, "")
	if encoded == "" {
		return def
	}
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		s.log.Warnw("restoring setting", "key", key, "error", err)
		return def
	}
	return b
}

// EnsureInstallID returns the stable installation identifier, generating and
// storing a new UUID v7 on first call.
func (s *Store) EnsureInstallID() string {
	if id := s.GetString(KeyInstallID, ""); id != "" {
		return id
	}
	id := uuid.Must(uuid.NewV7()).String()
	s.Set(KeyInstallID, id)
	return id
}

// Flush writes the settings file. Best-effort: a failure is logged and
// returned but the in-memory state is kept, so a later Flush can retry.
func (s *Store) Flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Errorw("flushing settings", "path", s.path, "error", err)
		return fmt.Errorf("flush settings: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		s.log.Errorw("flushing settings", "path", s.path, "error", err)
		return fmt.Errorf("flush settings: %w", err)
	}
	return nil
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}
